package cache

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/prediction-league/internal/platform/cache"
)

type countingLeaderboard struct {
	calls  int
	totals []leaderboard.Total
}

func (c *countingLeaderboard) ListTotals(context.Context) ([]leaderboard.Total, error) {
	c.calls++
	return c.totals, nil
}

func TestLeaderboardRepository_CachesUntilInvalidated(t *testing.T) {
	next := &countingLeaderboard{totals: []leaderboard.Total{{UserID: 1, TotalPoints: 3}}}
	repo := NewLeaderboardRepository(next, basecache.NewStore(time.Minute))
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		items, err := repo.ListTotals(ctx)
		if err != nil {
			t.Fatalf("list totals: %v", err)
		}
		if len(items) != 1 || items[0].TotalPoints != 3 {
			t.Fatalf("unexpected totals: %+v", items)
		}
	}
	if next.calls != 1 {
		t.Fatalf("expected one backend call, got %d", next.calls)
	}

	next.totals = []leaderboard.Total{{UserID: 1, TotalPoints: 4}}
	repo.Invalidate(ctx)
	items, err := repo.ListTotals(ctx)
	if err != nil {
		t.Fatalf("list totals after invalidate: %v", err)
	}
	if next.calls != 2 || items[0].TotalPoints != 4 {
		t.Fatalf("expected fresh totals after invalidate, calls=%d items=%+v", next.calls, items)
	}
}

func TestSeasonRepository_CreateInvalidatesList(t *testing.T) {
	store := memory.NewStore()
	repo := NewSeasonRepository(memory.NewSeasonRepository(store), basecache.NewStore(time.Minute))
	ctx := context.Background()

	items, err := repo.List(ctx)
	if err != nil || len(items) != 0 {
		t.Fatalf("expected empty seasons, got %v err=%v", items, err)
	}
	if _, err := repo.Create(ctx, season.Season{StartYear: 2024, EndYear: 2025}); err != nil {
		t.Fatalf("create season: %v", err)
	}
	items, err = repo.List(ctx)
	if err != nil || len(items) != 1 {
		t.Fatalf("expected new season in list, got %v err=%v", items, err)
	}
}
