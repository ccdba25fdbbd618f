package scoring

import (
	"errors"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

func completed(home, away int) fixture.Fixture {
	return fixture.Fixture{ID: 1, HomeScore: &home, AwayScore: &away, IsCompleted: true}
}

func TestRulesScore(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name    string
		fixture fixture.Fixture
		home    int
		away    int
		want    int
	}{
		{name: "exact score", fixture: completed(2, 1), home: 2, away: 1, want: 3},
		{name: "correct home win", fixture: completed(2, 1), home: 3, away: 0, want: 1},
		{name: "correct draw", fixture: completed(1, 1), home: 0, away: 0, want: 1},
		{name: "exact draw", fixture: completed(1, 1), home: 1, away: 1, want: 3},
		{name: "wrong outcome", fixture: completed(2, 1), home: 1, away: 1, want: 0},
		{name: "predicted away win for home win", fixture: completed(2, 1), home: 0, away: 1, want: 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := prediction.Prediction{HomeScore: tc.home, AwayScore: tc.away}
			if got := rules.Score(p, tc.fixture); got != tc.want {
				t.Fatalf("unexpected points: got=%d want=%d", got, tc.want)
			}
		})
	}
}

func TestRulesScoreUsesConfiguredPoints(t *testing.T) {
	rules := Rules{ExactScorePoints: 5, CorrectOutcomePoints: 2, IncorrectPoints: 1}

	if got := rules.Score(prediction.Prediction{HomeScore: 2, AwayScore: 1}, completed(2, 1)); got != 5 {
		t.Fatalf("exact: got=%d want=5", got)
	}
	if got := rules.Score(prediction.Prediction{HomeScore: 1, AwayScore: 0}, completed(2, 1)); got != 2 {
		t.Fatalf("outcome: got=%d want=2", got)
	}
	if got := rules.Score(prediction.Prediction{HomeScore: 0, AwayScore: 0}, completed(2, 1)); got != 1 {
		t.Fatalf("incorrect: got=%d want=1", got)
	}
}

func TestRulesScorePanicsOnIncompleteFixture(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for incomplete fixture")
		}
	}()

	DefaultRules().Score(prediction.Prediction{}, fixture.Fixture{ID: 9})
}

func TestRulesValidate(t *testing.T) {
	if err := DefaultRules().Validate(); err != nil {
		t.Fatalf("default rules should be valid: %v", err)
	}
	if err := (Rules{ExactScorePoints: 1, CorrectOutcomePoints: 3}).Validate(); !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules, got %v", err)
	}
	if err := (Rules{ExactScorePoints: 3, CorrectOutcomePoints: 1, IncorrectPoints: -1}).Validate(); !errors.Is(err, ErrInvalidRules) {
		t.Fatalf("expected ErrInvalidRules for negative points, got %v", err)
	}
}
