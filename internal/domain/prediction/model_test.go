package prediction

import (
	"errors"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/result"
)

func TestValidateScores(t *testing.T) {
	tests := []struct {
		name      string
		home      int
		away      int
		wantError bool
	}{
		{name: "lower bound", home: 0, away: 0},
		{name: "upper bound", home: 20, away: 20},
		{name: "home above range", home: 21, away: 0, wantError: true},
		{name: "away below range", home: 1, away: -1, wantError: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateScores(tc.home, tc.away)
			if tc.wantError && !errors.Is(err, ErrScoreOutOfRange) {
				t.Fatalf("expected ErrScoreOutOfRange, got %v", err)
			}
			if !tc.wantError && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestPredictionOutcome(t *testing.T) {
	p := Prediction{HomeScore: 0, AwayScore: 3}
	if got := p.Outcome(); got != result.Away {
		t.Fatalf("unexpected outcome: got=%s want=%s", got, result.Away)
	}
}
