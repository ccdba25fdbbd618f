package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/prediction-league/internal/domain/season"
)

type SeasonRepository struct {
	store *Store
}

func NewSeasonRepository(store *Store) *SeasonRepository {
	return &SeasonRepository{store: store}
}

func (r *SeasonRepository) Create(_ context.Context, item season.Season) (season.Season, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, existing := range r.store.seasons {
		if existing.StartYear == item.StartYear && existing.EndYear == item.EndYear {
			return season.Season{}, season.ErrDuplicate
		}
	}

	r.store.nextSeasonID++
	item.ID = r.store.nextSeasonID
	item.CreatedAt = r.store.stamp(item.CreatedAt)
	r.store.seasons[item.ID] = item
	return item, nil
}

func (r *SeasonRepository) GetByID(_ context.Context, id int64) (season.Season, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	item, ok := r.store.seasons[id]
	return item, ok, nil
}

func (r *SeasonRepository) List(_ context.Context) ([]season.Season, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]season.Season, 0, len(r.store.seasons))
	for _, item := range r.store.seasons {
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].StartYear != out[j].StartYear {
			return out[i].StartYear < out[j].StartYear
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
