package fixture

import (
	"errors"
	"testing"

	"github.com/riskibarqy/prediction-league/internal/domain/result"
)

func TestFixtureResult(t *testing.T) {
	two, one := 2, 1

	pending := Fixture{HomeTeam: "Arsenal", AwayTeam: "Chelsea"}
	if _, ok := pending.Result(); ok {
		t.Fatalf("expected no result for incomplete fixture")
	}

	completed := Fixture{HomeScore: &two, AwayScore: &one, IsCompleted: true}
	got, ok := completed.Result()
	if !ok {
		t.Fatalf("expected result for completed fixture")
	}
	if got != result.Home {
		t.Fatalf("unexpected outcome: got=%s want=%s", got, result.Home)
	}

	reversed := Fixture{HomeScore: &one, AwayScore: &two, IsCompleted: true}
	if got, _ := reversed.Result(); got != result.Away {
		t.Fatalf("unexpected outcome: got=%s want=%s", got, result.Away)
	}

	level := Fixture{HomeScore: &one, AwayScore: &one, IsCompleted: true}
	if got, _ := level.Result(); got != result.Draw {
		t.Fatalf("unexpected outcome: got=%s want=%s", got, result.Draw)
	}
}

func TestValidateSpec(t *testing.T) {
	if err := ValidateSpec(Spec{HomeTeam: "Arsenal", AwayTeam: "Chelsea"}); err != nil {
		t.Fatalf("expected valid spec: %v", err)
	}
	if err := ValidateSpec(Spec{HomeTeam: "Arsenal", AwayTeam: " arsenal "}); !errors.Is(err, ErrInvalidTeams) {
		t.Fatalf("expected ErrInvalidTeams for same team, got %v", err)
	}
	if err := ValidateSpec(Spec{HomeTeam: "", AwayTeam: "Chelsea"}); !errors.Is(err, ErrInvalidTeams) {
		t.Fatalf("expected ErrInvalidTeams for missing team, got %v", err)
	}
}

func TestValidateScore(t *testing.T) {
	if err := ValidateScore(0, 0); err != nil {
		t.Fatalf("expected 0-0 to be valid: %v", err)
	}
	if err := ValidateScore(-1, 2); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("expected ErrInvalidScore, got %v", err)
	}
}
