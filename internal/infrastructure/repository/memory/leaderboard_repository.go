package memory

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
)

type LeaderboardRepository struct {
	store *Store
}

func NewLeaderboardRepository(store *Store) *LeaderboardRepository {
	return &LeaderboardRepository{store: store}
}

// ListTotals sums points_earned per user over all predictions. Users
// without predictions are not listed.
func (r *LeaderboardRepository) ListTotals(_ context.Context) ([]leaderboard.Total, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	totals := make(map[int64]int)
	for _, p := range r.store.predictions {
		totals[p.UserID] += p.PointsEarned
	}

	out := make([]leaderboard.Total, 0, len(totals))
	for userID, points := range totals {
		out = append(out, leaderboard.Total{
			UserID:      userID,
			UserName:    r.store.users[userID].Name,
			TotalPoints: points,
		})
	}
	return out, nil
}
