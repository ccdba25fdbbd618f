package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

type weekTableModel struct {
	ID     int64 `db:"id"`
	Number int   `db:"week_number"`
}

type WeekRepository struct {
	db *sqlx.DB
}

func NewWeekRepository(db *sqlx.DB) *WeekRepository {
	return &WeekRepository{db: db}
}

func (r *WeekRepository) List(ctx context.Context) ([]week.Week, error) {
	query, args, err := qb.Select("id", "week_number").From("weeks").OrderBy("week_number").ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list weeks query: %w", err)
	}

	var rows []weekTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list weeks: %w", err)
	}

	out := make([]week.Week, 0, len(rows))
	for _, row := range rows {
		out = append(out, week.Week{ID: row.ID, Number: row.Number})
	}
	return out, nil
}

func (r *WeekRepository) GetByID(ctx context.Context, id int64) (week.Week, bool, error) {
	query, args, err := qb.Select("id", "week_number").From("weeks").Where(qb.Eq("id", id)).ToSQL()
	if err != nil {
		return week.Week{}, false, fmt.Errorf("build get week query: %w", err)
	}

	var row weekTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return week.Week{}, false, nil
		}
		return week.Week{}, false, fmt.Errorf("get week: %w", err)
	}
	return week.Week{ID: row.ID, Number: row.Number}, true, nil
}
