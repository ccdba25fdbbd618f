package scoring

import (
	"errors"
	"fmt"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

var ErrInvalidRules = errors.New("invalid scoring rules")

// Rules holds the point values awarded per prediction.
type Rules struct {
	ExactScorePoints     int
	CorrectOutcomePoints int
	IncorrectPoints      int
}

func DefaultRules() Rules {
	return Rules{
		ExactScorePoints:     3,
		CorrectOutcomePoints: 1,
		IncorrectPoints:      0,
	}
}

func (r Rules) Validate() error {
	if r.ExactScorePoints < 0 || r.CorrectOutcomePoints < 0 || r.IncorrectPoints < 0 {
		return fmt.Errorf("%w: points must be non-negative", ErrInvalidRules)
	}
	if r.ExactScorePoints < r.CorrectOutcomePoints || r.CorrectOutcomePoints < r.IncorrectPoints {
		return fmt.Errorf("%w: expected exact >= outcome >= incorrect, got %d/%d/%d",
			ErrInvalidRules, r.ExactScorePoints, r.CorrectOutcomePoints, r.IncorrectPoints)
	}
	return nil
}

// Score returns the points p earns against f. f must be completed; scoring an
// unfinished fixture is a caller bug and panics.
func (r Rules) Score(p prediction.Prediction, f fixture.Fixture) int {
	actual, ok := f.Result()
	if !ok {
		panic(fmt.Sprintf("scoring: fixture %d is not completed", f.ID))
	}

	if p.HomeScore == *f.HomeScore && p.AwayScore == *f.AwayScore {
		return r.ExactScorePoints
	}
	if p.Outcome() == actual {
		return r.CorrectOutcomePoints
	}
	return r.IncorrectPoints
}

// Summary describes one batch scoring run over a match week.
type Summary struct {
	MatchWeekID       int64
	FixturesScored    int
	FixturesSkipped   int
	PredictionsScored int
}
