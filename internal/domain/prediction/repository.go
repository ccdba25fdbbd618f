package prediction

import (
	"context"
	"time"
)

type Repository interface {
	Insert(ctx context.Context, p Prediction) (Prediction, error)
	UpdateScores(ctx context.Context, userID, fixtureID int64, homeScore, awayScore int, updatedAt time.Time) (Prediction, error)
	Get(ctx context.Context, userID, fixtureID int64) (Prediction, bool, error)
	ListByUserAndFixtures(ctx context.Context, userID int64, fixtureIDs []int64) ([]Prediction, error)
}
