package postgres

import (
	"database/sql"
	"fmt"
	"reflect"
	"testing"

	"github.com/lib/pq"
)

func TestIsUniqueViolation(t *testing.T) {
	dup := &pq.Error{Code: "23505", Constraint: "predictions_user_fixture_key"}

	if !isUniqueViolation(dup) {
		t.Fatalf("expected unique violation")
	}
	if !isUniqueViolation(fmt.Errorf("insert prediction: %w", dup), "predictions_user_fixture_key") {
		t.Fatalf("expected wrapped unique violation on named constraint")
	}
	if isUniqueViolation(dup, "users_email_key") {
		t.Fatalf("expected constraint filter to reject other constraints")
	}
	if isUniqueViolation(&pq.Error{Code: "23503"}) {
		t.Fatalf("foreign key violation is not a unique violation")
	}
	if isUniqueViolation(sql.ErrNoRows) {
		t.Fatalf("unexpected unique violation for ErrNoRows")
	}
}

func TestIsNotFound(t *testing.T) {
	if !isNotFound(fmt.Errorf("get season: %w", sql.ErrNoRows)) {
		t.Fatalf("expected wrapped ErrNoRows to be not found")
	}
	if isNotFound(fmt.Errorf("boom")) {
		t.Fatalf("unexpected not found")
	}
}

func TestFixturesByMatchWeekQuery(t *testing.T) {
	query, args, err := fixturesByMatchWeekQuery(7)
	if err != nil {
		t.Fatalf("build query: %v", err)
	}

	want := "SELECT id, match_week_id, home_team, away_team, kickoff_at, home_score, away_score, is_completed, created_at " +
		"FROM fixtures WHERE match_week_id = $1 ORDER BY kickoff_at NULLS LAST, id"
	if query != want {
		t.Fatalf("unexpected query:\nwant: %s\ngot:  %s", want, query)
	}
	if !reflect.DeepEqual(args, []any{int64(7)}) {
		t.Fatalf("unexpected args: %+v", args)
	}
}
