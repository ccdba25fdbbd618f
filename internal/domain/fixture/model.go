package fixture

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/result"
)

const MaxPerMatchWeek = 20

var (
	ErrInvalidTeams = errors.New("invalid fixture teams")
	ErrInvalidScore = errors.New("invalid fixture score")
	ErrNotFound     = errors.New("fixture not found")
)

// Fixture represents one scheduled match inside a match week.
type Fixture struct {
	ID          int64
	MatchWeekID int64
	HomeTeam    string
	AwayTeam    string
	KickoffAt   *time.Time
	HomeScore   *int
	AwayScore   *int
	IsCompleted bool
	CreatedAt   time.Time
}

// Spec is an already-validated fixture entry used when a match week is created.
type Spec struct {
	HomeTeam  string
	AwayTeam  string
	KickoffAt *time.Time
}

// Result returns the resolved outcome; ok is false until the fixture is completed.
func (f Fixture) Result() (result.Outcome, bool) {
	if !f.IsCompleted || f.HomeScore == nil || f.AwayScore == nil {
		return "", false
	}
	return result.Resolve(*f.HomeScore, *f.AwayScore), true
}

func (f Fixture) Label() string {
	return f.HomeTeam + " vs " + f.AwayTeam
}

func ValidateSpec(spec Spec) error {
	home := strings.TrimSpace(spec.HomeTeam)
	away := strings.TrimSpace(spec.AwayTeam)
	if home == "" || away == "" {
		return fmt.Errorf("%w: home and away team are required", ErrInvalidTeams)
	}
	if strings.EqualFold(home, away) {
		return fmt.Errorf("%w: %s cannot play itself", ErrInvalidTeams, home)
	}
	return nil
}

func ValidateScore(home, away int) error {
	if home < 0 || away < 0 {
		return fmt.Errorf("%w: scores must be non-negative, got %d-%d", ErrInvalidScore, home, away)
	}
	return nil
}
