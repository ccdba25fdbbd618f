package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

var matchWeekColumns = []string{
	"mw.id",
	"mw.season_id",
	"mw.week_id",
	"w.week_number",
	"mw.predictions_open_at",
	"mw.predictions_close_at",
	"mw.is_active",
	"mw.created_at",
}

type MatchWeekRepository struct {
	db *sqlx.DB
}

func NewMatchWeekRepository(db *sqlx.DB) *MatchWeekRepository {
	return &MatchWeekRepository{db: db}
}

func (r *MatchWeekRepository) Create(ctx context.Context, mw matchweek.MatchWeek, specs []fixture.Spec) (matchweek.MatchWeek, []fixture.Fixture, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("begin tx create match week: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query, args, err := qb.InsertModel("match_weeks", matchWeekTableModel{
		SeasonID:           mw.SeasonID,
		WeekID:             mw.WeekID,
		PredictionsOpenAt:  mw.PredictionsOpenAt,
		PredictionsCloseAt: mw.PredictionsCloseAt,
		IsActive:           false,
		CreatedAt:          mw.CreatedAt,
	}, "id")
	if err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("build insert match week query: %w", err)
	}
	if err := tx.GetContext(ctx, &mw.ID, query, args...); err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("insert match week: %w", err)
	}
	mw.IsActive = false

	weekQuery, weekArgs, err := qb.Select("week_number").From("weeks").Where(qb.Eq("id", mw.WeekID)).ToSQL()
	if err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("build select week number query: %w", err)
	}
	if err := tx.GetContext(ctx, &mw.WeekNumber, weekQuery, weekArgs...); err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("select week number: %w", err)
	}

	insert := qb.InsertInto("fixtures").
		Columns("match_week_id", "home_team", "away_team", "kickoff_at", "is_completed", "created_at").
		Returning("id", "match_week_id", "home_team", "away_team", "kickoff_at", "home_score", "away_score", "is_completed", "created_at")
	for _, spec := range specs {
		insert.Values(mw.ID, strings.TrimSpace(spec.HomeTeam), strings.TrimSpace(spec.AwayTeam), spec.KickoffAt, false, mw.CreatedAt)
	}
	fixtureQuery, fixtureArgs, err := insert.ToSQL()
	if err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("build insert fixtures query: %w", err)
	}

	var rows []fixtureTableModel
	if err := tx.SelectContext(ctx, &rows, fixtureQuery, fixtureArgs...); err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("insert fixtures: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("commit create match week tx: %w", err)
	}

	fixtures := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		fixtures = append(fixtures, row.toDomain())
	}
	return mw, fixtures, nil
}

func (r *MatchWeekRepository) GetByID(ctx context.Context, id int64) (matchweek.MatchWeek, bool, error) {
	query, args, err := selectMatchWeeks().Where(qb.Eq("mw.id", id)).ToSQL()
	if err != nil {
		return matchweek.MatchWeek{}, false, fmt.Errorf("build get match week query: %w", err)
	}

	var row matchWeekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return matchweek.MatchWeek{}, false, nil
		}
		return matchweek.MatchWeek{}, false, fmt.Errorf("get match week: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *MatchWeekRepository) List(ctx context.Context) ([]matchweek.MatchWeek, error) {
	return r.list(ctx, selectMatchWeeks())
}

func (r *MatchWeekRepository) ListActive(ctx context.Context) ([]matchweek.MatchWeek, error) {
	return r.list(ctx, selectMatchWeeks().Where(qb.Eq("mw.is_active", true)))
}

// Activate holds a SHARE ROW EXCLUSIVE lock on match_weeks so concurrent
// activations run one after another; the partial unique index on is_active
// backs the same rule at the schema level.
func (r *MatchWeekRepository) Activate(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx activate match week: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, "LOCK TABLE match_weeks IN SHARE ROW EXCLUSIVE MODE"); err != nil {
		return fmt.Errorf("lock match weeks: %w", err)
	}

	existsQuery, existsArgs, err := qb.Select("COUNT(1)").From("match_weeks").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fmt.Errorf("build match week exists query: %w", err)
	}
	var count int
	if err := tx.GetContext(ctx, &count, existsQuery, existsArgs...); err != nil {
		return fmt.Errorf("check match week exists: %w", err)
	}
	if count == 0 {
		return matchweek.ErrNotFound
	}

	clearQuery, clearArgs, err := qb.Update("match_weeks").
		Set("is_active", false).
		Where(qb.Eq("is_active", true)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build deactivate match weeks query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, clearQuery, clearArgs...); err != nil {
		return fmt.Errorf("deactivate match weeks: %w", err)
	}

	activateQuery, activateArgs, err := qb.Update("match_weeks").
		Set("is_active", true).
		Where(qb.Eq("id", id)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build activate match week query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, activateQuery, activateArgs...); err != nil {
		return fmt.Errorf("activate match week: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit activate match week tx: %w", err)
	}
	return nil
}

func (r *MatchWeekRepository) list(ctx context.Context, builder *qb.SelectBuilder) ([]matchweek.MatchWeek, error) {
	query, args, err := builder.OrderBy("mw.id DESC").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list match weeks query: %w", err)
	}

	var rows []matchWeekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list match weeks: %w", err)
	}

	out := make([]matchweek.MatchWeek, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func selectMatchWeeks() *qb.SelectBuilder {
	return qb.Select(matchWeekColumns...).
		From("match_weeks mw").
		Join("JOIN weeks w ON w.id = mw.week_id")
}
