package memory

import (
	"sync"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
)

type predictionKey struct {
	userID    int64
	fixtureID int64
}

// Store holds every table behind a single lock, so operations touching more
// than one table (match week creation, activation, batch scoring) are atomic
// the same way a database transaction would make them.
type Store struct {
	mu sync.RWMutex

	seasons     map[int64]season.Season
	weeks       map[int64]week.Week
	matchWeeks  map[int64]matchweek.MatchWeek
	fixtures    map[int64]fixture.Fixture
	predictions map[int64]prediction.Prediction
	users       map[int64]user.User

	predictionByKey map[predictionKey]int64

	nextSeasonID     int64
	nextMatchWeekID  int64
	nextFixtureID    int64
	nextPredictionID int64
	nextUserID       int64

	now func() time.Time
}

// NewStore returns an empty store seeded with the 38 static weeks.
func NewStore() *Store {
	s := &Store{
		seasons:         make(map[int64]season.Season),
		weeks:           make(map[int64]week.Week),
		matchWeeks:      make(map[int64]matchweek.MatchWeek),
		fixtures:        make(map[int64]fixture.Fixture),
		predictions:     make(map[int64]prediction.Prediction),
		users:           make(map[int64]user.User),
		predictionByKey: make(map[predictionKey]int64),
		now:             time.Now,
	}
	for _, w := range week.All() {
		s.weeks[w.ID] = w
	}
	return s
}

func (s *Store) stamp(t time.Time) time.Time {
	if t.IsZero() {
		return s.now().UTC()
	}
	return t
}

func cloneFixture(f fixture.Fixture) fixture.Fixture {
	out := f
	if f.KickoffAt != nil {
		v := *f.KickoffAt
		out.KickoffAt = &v
	}
	if f.HomeScore != nil {
		v := *f.HomeScore
		out.HomeScore = &v
	}
	if f.AwayScore != nil {
		v := *f.AwayScore
		out.AwayScore = &v
	}
	return out
}
