package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
)

type MatchWeekRepository struct {
	store *Store
}

func NewMatchWeekRepository(store *Store) *MatchWeekRepository {
	return &MatchWeekRepository{store: store}
}

func (r *MatchWeekRepository) Create(_ context.Context, mw matchweek.MatchWeek, specs []fixture.Spec) (matchweek.MatchWeek, []fixture.Fixture, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.seasons[mw.SeasonID]; !ok {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("season %d does not exist", mw.SeasonID)
	}
	w, ok := r.store.weeks[mw.WeekID]
	if !ok {
		return matchweek.MatchWeek{}, nil, fmt.Errorf("week %d does not exist", mw.WeekID)
	}

	r.store.nextMatchWeekID++
	mw.ID = r.store.nextMatchWeekID
	mw.WeekNumber = w.Number
	mw.CreatedAt = r.store.stamp(mw.CreatedAt)
	r.store.matchWeeks[mw.ID] = mw

	fixtures := make([]fixture.Fixture, 0, len(specs))
	for _, spec := range specs {
		r.store.nextFixtureID++
		f := fixture.Fixture{
			ID:          r.store.nextFixtureID,
			MatchWeekID: mw.ID,
			HomeTeam:    strings.TrimSpace(spec.HomeTeam),
			AwayTeam:    strings.TrimSpace(spec.AwayTeam),
			KickoffAt:   spec.KickoffAt,
			CreatedAt:   mw.CreatedAt,
		}
		f = cloneFixture(f)
		r.store.fixtures[f.ID] = f
		fixtures = append(fixtures, cloneFixture(f))
	}

	return mw, fixtures, nil
}

func (r *MatchWeekRepository) GetByID(_ context.Context, id int64) (matchweek.MatchWeek, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.matchWeeks[id]
	return item, ok, nil
}

func (r *MatchWeekRepository) List(_ context.Context) ([]matchweek.MatchWeek, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sorted(func(matchweek.MatchWeek) bool { return true }), nil
}

func (r *MatchWeekRepository) ListActive(_ context.Context) ([]matchweek.MatchWeek, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.sorted(func(mw matchweek.MatchWeek) bool { return mw.IsActive }), nil
}

func (r *MatchWeekRepository) Activate(_ context.Context, id int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matchWeeks[id]; !ok {
		return matchweek.ErrNotFound
	}
	for key, mw := range r.store.matchWeeks {
		mw.IsActive = key == id
		r.store.matchWeeks[key] = mw
	}
	return nil
}

// sorted returns matching match weeks, newest first. Caller holds the lock.
func (r *MatchWeekRepository) sorted(keep func(matchweek.MatchWeek) bool) []matchweek.MatchWeek {
	out := make([]matchweek.MatchWeek, 0, len(r.store.matchWeeks))
	for _, mw := range r.store.matchWeeks {
		if keep(mw) {
			out = append(out, mw)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out
}
