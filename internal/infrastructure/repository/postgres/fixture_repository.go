package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

var fixtureColumns = []string{
	"id", "match_week_id", "home_team", "away_team", "kickoff_at",
	"home_score", "away_score", "is_completed", "created_at",
}

type FixtureRepository struct {
	db *sqlx.DB
}

func NewFixtureRepository(db *sqlx.DB) *FixtureRepository {
	return &FixtureRepository{db: db}
}

func (r *FixtureRepository) GetByID(ctx context.Context, id int64) (fixture.Fixture, bool, error) {
	query, args, err := qb.Select(fixtureColumns...).From("fixtures").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return fixture.Fixture{}, false, fmt.Errorf("build get fixture query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, false, nil
		}
		return fixture.Fixture{}, false, fmt.Errorf("get fixture: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *FixtureRepository) ListByMatchWeek(ctx context.Context, matchWeekID int64) ([]fixture.Fixture, error) {
	rows, err := selectFixturesByMatchWeek(ctx, r.db, matchWeekID)
	if err != nil {
		return nil, err
	}

	out := make([]fixture.Fixture, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *FixtureRepository) RecordResult(ctx context.Context, id int64, homeScore, awayScore int) (fixture.Fixture, error) {
	query, args, err := qb.Update("fixtures").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Set("is_completed", true).
		Where(qb.Eq("id", id)).
		Returning(fixtureColumns...).
		ToSQL()
	if err != nil {
		return fixture.Fixture{}, fmt.Errorf("build record fixture result query: %w", err)
	}

	var row fixtureTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return fixture.Fixture{}, fixture.ErrNotFound
		}
		return fixture.Fixture{}, fmt.Errorf("record fixture result: %w", err)
	}
	return row.toDomain(), nil
}

func fixturesByMatchWeekQuery(matchWeekID int64) (string, []any, error) {
	return qb.Select(fixtureColumns...).
		From("fixtures").
		Where(qb.Eq("match_week_id", matchWeekID)).
		OrderBy("kickoff_at NULLS LAST", "id").
		ToSQL()
}

func selectFixturesByMatchWeek(ctx context.Context, q sqlx.QueryerContext, matchWeekID int64) ([]fixtureTableModel, error) {
	query, args, err := fixturesByMatchWeekQuery(matchWeekID)
	if err != nil {
		return nil, fmt.Errorf("build list fixtures by match week query: %w", err)
	}

	var rows []fixtureTableModel
	if err := sqlx.SelectContext(ctx, q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list fixtures by match week: %w", err)
	}
	return rows, nil
}
