package prediction

import (
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/result"
)

const (
	ScoreMin = 0
	ScoreMax = 20
)

var (
	ErrScoreOutOfRange = errors.New("predicted score out of range")
	// ErrConflict is returned by Repository.Insert when the user already has a
	// prediction for the fixture.
	ErrConflict = errors.New("prediction already exists")
	ErrNotFound = errors.New("prediction not found")
)

type Prediction struct {
	ID           int64
	UserID       int64
	FixtureID    int64
	HomeScore    int
	AwayScore    int
	PointsEarned int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (p Prediction) Outcome() result.Outcome {
	return result.Resolve(p.HomeScore, p.AwayScore)
}

func ValidateScores(home, away int) error {
	if home < ScoreMin || home > ScoreMax || away < ScoreMin || away > ScoreMax {
		return fmt.Errorf("%w: got %d-%d, each must be within %d..%d", ErrScoreOutOfRange, home, away, ScoreMin, ScoreMax)
	}
	return nil
}
