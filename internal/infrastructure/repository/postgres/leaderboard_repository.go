package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

type leaderboardRow struct {
	UserID      int64  `db:"user_id"`
	UserName    string `db:"user_name"`
	TotalPoints int    `db:"total_points"`
}

type LeaderboardRepository struct {
	db *sqlx.DB
}

func NewLeaderboardRepository(db *sqlx.DB) *LeaderboardRepository {
	return &LeaderboardRepository{db: db}
}

func (r *LeaderboardRepository) ListTotals(ctx context.Context) ([]leaderboard.Total, error) {
	query, args, err := qb.Select("u.id AS user_id", "u.name AS user_name", "COALESCE(SUM(p.points_earned), 0) AS total_points").
		From("users u").
		Join("JOIN predictions p ON p.user_id = u.id").
		GroupBy("u.id", "u.name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build leaderboard totals query: %w", err)
	}

	var rows []leaderboardRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select leaderboard totals: %w", err)
	}

	out := make([]leaderboard.Total, 0, len(rows))
	for _, row := range rows {
		out = append(out, leaderboard.Total{UserID: row.UserID, UserName: row.UserName, TotalPoints: row.TotalPoints})
	}
	return out, nil
}
