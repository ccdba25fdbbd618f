package memory

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
)

type ScoringRepository struct {
	store *Store
}

func NewScoringRepository(store *Store) *ScoringRepository {
	return &ScoringRepository{store: store}
}

// ApplyMatchWeek computes every new point value before writing any of them,
// so a panicking score func leaves the store unchanged.
func (r *ScoringRepository) ApplyMatchWeek(_ context.Context, matchWeekID int64, score scoring.ScoreFunc) (scoring.Summary, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.matchWeeks[matchWeekID]; !ok {
		return scoring.Summary{}, matchweek.ErrNotFound
	}

	summary := scoring.Summary{MatchWeekID: matchWeekID}
	pending := make(map[int64]int)
	for _, f := range fixturesOfMatchWeek(r.store, matchWeekID) {
		if !f.IsCompleted {
			summary.FixturesSkipped++
			continue
		}
		summary.FixturesScored++
		for id, p := range r.store.predictions {
			if p.FixtureID != f.ID {
				continue
			}
			pending[id] = score(p, f)
		}
	}

	for id, points := range pending {
		item := r.store.predictions[id]
		item.PointsEarned = points
		r.store.predictions[id] = item
	}
	summary.PredictionsScored = len(pending)
	return summary, nil
}
