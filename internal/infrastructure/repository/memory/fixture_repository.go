package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
)

type FixtureRepository struct {
	store *Store
}

func NewFixtureRepository(store *Store) *FixtureRepository {
	return &FixtureRepository{store: store}
}

func (r *FixtureRepository) GetByID(_ context.Context, id int64) (fixture.Fixture, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.fixtures[id]
	if !ok {
		return fixture.Fixture{}, false, nil
	}
	return cloneFixture(item), true, nil
}

func (r *FixtureRepository) ListByMatchWeek(_ context.Context, matchWeekID int64) ([]fixture.Fixture, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return fixturesOfMatchWeek(r.store, matchWeekID), nil
}

func (r *FixtureRepository) RecordResult(_ context.Context, id int64, homeScore, awayScore int) (fixture.Fixture, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	item, ok := r.store.fixtures[id]
	if !ok {
		return fixture.Fixture{}, fixture.ErrNotFound
	}
	item.HomeScore = &homeScore
	item.AwayScore = &awayScore
	item.IsCompleted = true
	r.store.fixtures[id] = cloneFixture(item)
	return cloneFixture(item), nil
}

// fixturesOfMatchWeek lists fixtures ordered by kickoff then id. Caller holds
// the store lock.
func fixturesOfMatchWeek(s *Store, matchWeekID int64) []fixture.Fixture {
	out := make([]fixture.Fixture, 0)
	for _, item := range s.fixtures {
		if item.MatchWeekID == matchWeekID {
			out = append(out, cloneFixture(item))
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].KickoffAt, out[j].KickoffAt
		switch {
		case a != nil && b != nil && !a.Equal(*b):
			return a.Before(*b)
		case a != nil && b == nil:
			return true
		case a == nil && b != nil:
			return false
		}
		return out[i].ID < out[j].ID
	})
	return out
}
