package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/prediction-league/internal/domain/week"
)

type WeekRepository struct {
	store *Store
}

func NewWeekRepository(store *Store) *WeekRepository {
	return &WeekRepository{store: store}
}

func (r *WeekRepository) List(_ context.Context) ([]week.Week, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]week.Week, 0, len(r.store.weeks))
	for _, item := range r.store.weeks {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number < out[j].Number })
	return out, nil
}

func (r *WeekRepository) GetByID(_ context.Context, id int64) (week.Week, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.weeks[id]
	return item, ok, nil
}
