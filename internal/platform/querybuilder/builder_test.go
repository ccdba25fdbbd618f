package querybuilder

import (
	"reflect"
	"testing"
	"time"
)

func TestSelectBuilder(t *testing.T) {
	query, args, err := Select("f.id", "f.home_team").
		From("fixtures f").
		Join("JOIN match_weeks mw ON mw.id = f.match_week_id").
		Where(Eq("f.match_week_id", int64(5)), NotNull("f.home_score"), In("f.id", []int64{1, 2})).
		OrderBy("f.id").
		Limit(10).
		ForUpdate().
		ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}

	want := "SELECT f.id, f.home_team FROM fixtures f JOIN match_weeks mw ON mw.id = f.match_week_id " +
		"WHERE f.match_week_id = $1 AND f.home_score IS NOT NULL AND f.id IN ($2, $3) ORDER BY f.id LIMIT 10 FOR UPDATE"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{int64(5), int64(1), int64(2)}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestSelectBuilderEmptyIn(t *testing.T) {
	query, args, err := Select("id").From("predictions").Where(In[int64]("fixture_id", nil)).ToSQL()
	if err != nil {
		t.Fatalf("build select query: %v", err)
	}
	if query != "SELECT id FROM predictions WHERE 1=0" || len(args) != 0 {
		t.Fatalf("unexpected query=%s args=%v", query, args)
	}
}

func TestInsertModel(t *testing.T) {
	type row struct {
		ID        int64     `db:"id,auto"`
		UserID    int64     `db:"user_id"`
		HomeScore int       `db:"home_score"`
		CreatedAt time.Time `db:"created_at"`
		ignored   string
	}
	at := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)

	query, args, err := InsertModel("predictions", row{UserID: 7, HomeScore: 2, CreatedAt: at, ignored: "x"}, "id")
	if err != nil {
		t.Fatalf("build insert query: %v", err)
	}
	want := "INSERT INTO predictions (user_id, home_score, created_at) VALUES ($1, $2, $3) RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{int64(7), 2, at}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestUpdateBuilder(t *testing.T) {
	query, args, err := Update("match_weeks").
		Set("is_active", true).
		SetExpr("updated_at", "COALESCE(?, NOW())", "now").
		Where(Eq("id", int64(3))).
		Returning("id").
		ToSQL()
	if err != nil {
		t.Fatalf("build update query: %v", err)
	}

	want := "UPDATE match_weeks SET is_active = $1, updated_at = COALESCE($2, NOW()) WHERE id = $3 RETURNING id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{true, "now", int64(3)}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}

func TestBulkUpdateBuilder(t *testing.T) {
	b := BulkUpdate("predictions", "id").
		Columns([]string{"id", "points_earned"}, []string{"bigint", "integer"}).
		Row(int64(1), 3).
		Row(int64(2), 0)

	query, args, err := b.ToSQL()
	if err != nil {
		t.Fatalf("build bulk update: %v", err)
	}
	want := "UPDATE predictions AS t SET points_earned = v.points_earned FROM (VALUES ($1::bigint, $2::integer), ($3::bigint, $4::integer)) " +
		"AS v(id, points_earned) WHERE t.id = v.id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if len(args) != 4 || b.Len() != 2 {
		t.Fatalf("unexpected args=%v len=%d", args, b.Len())
	}

	if _, _, err := BulkUpdate("predictions", "id").Columns([]string{"id"}, []string{"bigint"}).ToSQL(); err == nil {
		t.Fatalf("expected error without value columns")
	}
}
