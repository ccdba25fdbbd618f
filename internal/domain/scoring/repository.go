package scoring

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

// ScoreFunc computes the points for one prediction of a completed fixture.
type ScoreFunc func(p prediction.Prediction, f fixture.Fixture) int

type Repository interface {
	// ApplyMatchWeek assigns points_earned for every prediction of every
	// completed fixture of the match week in a single transaction.
	// Incomplete fixtures are counted as skipped and left untouched.
	ApplyMatchWeek(ctx context.Context, matchWeekID int64, score ScoreFunc) (Summary, error)
}
