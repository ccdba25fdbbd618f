package leaderboard

import "context"

type Repository interface {
	ListTotals(ctx context.Context) ([]Total, error)
}
