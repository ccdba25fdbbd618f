package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
)

type LeaderboardService struct {
	leaderboardRepo leaderboard.Repository
}

func NewLeaderboardService(leaderboardRepo leaderboard.Repository) *LeaderboardService {
	return &LeaderboardService{leaderboardRepo: leaderboardRepo}
}

// Get returns every user with at least one prediction, ranked by total
// points. Equal totals share a rank.
func (s *LeaderboardService) Get(ctx context.Context) ([]leaderboard.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.LeaderboardService.Get")
	defer span.End()

	totals, err := s.leaderboardRepo.ListTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("list leaderboard totals: %w", err)
	}
	return leaderboard.Rank(totals), nil
}

// Invalidate clears the cached totals when the repository is cache-backed.
func (s *LeaderboardService) Invalidate(ctx context.Context) {
	if c, ok := s.leaderboardRepo.(LeaderboardInvalidator); ok {
		c.Invalidate(ctx)
	}
}
