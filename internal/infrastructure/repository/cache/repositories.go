package cache

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
	basecache "github.com/riskibarqy/prediction-league/internal/platform/cache"
)

const (
	leaderboardTotalsKey = "leaderboard:totals"
	seasonPrefix         = "season:"
	seasonListKey        = seasonPrefix + "list"
	weekListKey          = "week:list"
)

// LeaderboardRepository caches the aggregated totals until the TTL expires
// or a scoring run calls Invalidate.
type LeaderboardRepository struct {
	next  leaderboard.Repository
	cache *basecache.Store
}

func NewLeaderboardRepository(next leaderboard.Repository, cache *basecache.Store) *LeaderboardRepository {
	return &LeaderboardRepository{next: next, cache: cache}
}

func (r *LeaderboardRepository) ListTotals(ctx context.Context) ([]leaderboard.Total, error) {
	v, err := r.cache.GetOrLoad(ctx, leaderboardTotalsKey, func(ctx context.Context) (any, error) {
		items, err := r.next.ListTotals(ctx)
		if err != nil {
			return nil, err
		}
		return append([]leaderboard.Total(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]leaderboard.Total)
	return append([]leaderboard.Total(nil), items...), nil
}

func (r *LeaderboardRepository) Invalidate(ctx context.Context) {
	r.cache.Delete(ctx, leaderboardTotalsKey)
}

type SeasonRepository struct {
	next  season.Repository
	cache *basecache.Store
}

func NewSeasonRepository(next season.Repository, cache *basecache.Store) *SeasonRepository {
	return &SeasonRepository{next: next, cache: cache}
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) (season.Season, error) {
	created, err := r.next.Create(ctx, item)
	if err != nil {
		return season.Season{}, err
	}
	r.cache.DeletePrefix(ctx, seasonPrefix)
	return created, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, id int64) (season.Season, bool, error) {
	return r.next.GetByID(ctx, id)
}

func (r *SeasonRepository) List(ctx context.Context) ([]season.Season, error) {
	v, err := r.cache.GetOrLoad(ctx, seasonListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]season.Season(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]season.Season)
	return append([]season.Season(nil), items...), nil
}

// WeekRepository caches the static week list.
type WeekRepository struct {
	next  week.Repository
	cache *basecache.Store
}

func NewWeekRepository(next week.Repository, cache *basecache.Store) *WeekRepository {
	return &WeekRepository{next: next, cache: cache}
}

func (r *WeekRepository) List(ctx context.Context) ([]week.Week, error) {
	v, err := r.cache.GetOrLoad(ctx, weekListKey, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx)
		if err != nil {
			return nil, err
		}
		return append([]week.Week(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]week.Week)
	return append([]week.Week(nil), items...), nil
}

func (r *WeekRepository) GetByID(ctx context.Context, id int64) (week.Week, bool, error) {
	return r.next.GetByID(ctx, id)
}
