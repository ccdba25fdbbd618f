package matchweek

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
)

type Repository interface {
	// Create stores the match week and all of its fixtures atomically.
	Create(ctx context.Context, mw MatchWeek, fixtures []fixture.Spec) (MatchWeek, []fixture.Fixture, error)
	GetByID(ctx context.Context, id int64) (MatchWeek, bool, error)
	List(ctx context.Context) ([]MatchWeek, error)
	ListActive(ctx context.Context) ([]MatchWeek, error)
	// Activate deactivates every match week and activates id in one
	// transaction. Returns ErrNotFound without changes when id is unknown.
	Activate(ctx context.Context, id int64) error
}
