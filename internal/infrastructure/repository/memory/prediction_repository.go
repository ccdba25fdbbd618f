package memory

import (
	"context"
	"sort"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
)

type PredictionRepository struct {
	store *Store
}

func NewPredictionRepository(store *Store) *PredictionRepository {
	return &PredictionRepository{store: store}
}

func (r *PredictionRepository) Insert(_ context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	key := predictionKey{userID: item.UserID, fixtureID: item.FixtureID}
	if _, exists := r.store.predictionByKey[key]; exists {
		return prediction.Prediction{}, prediction.ErrConflict
	}

	r.store.nextPredictionID++
	item.ID = r.store.nextPredictionID
	item.CreatedAt = r.store.stamp(item.CreatedAt)
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}
	r.store.predictions[item.ID] = item
	r.store.predictionByKey[key] = item.ID
	return item, nil
}

func (r *PredictionRepository) UpdateScores(_ context.Context, userID, fixtureID int64, homeScore, awayScore int, updatedAt time.Time) (prediction.Prediction, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	id, ok := r.store.predictionByKey[predictionKey{userID: userID, fixtureID: fixtureID}]
	if !ok {
		return prediction.Prediction{}, prediction.ErrNotFound
	}
	item := r.store.predictions[id]
	item.HomeScore = homeScore
	item.AwayScore = awayScore
	item.UpdatedAt = r.store.stamp(updatedAt)
	r.store.predictions[id] = item
	return item, nil
}

func (r *PredictionRepository) Get(_ context.Context, userID, fixtureID int64) (prediction.Prediction, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	id, ok := r.store.predictionByKey[predictionKey{userID: userID, fixtureID: fixtureID}]
	if !ok {
		return prediction.Prediction{}, false, nil
	}
	return r.store.predictions[id], true, nil
}

func (r *PredictionRepository) ListByUserAndFixtures(_ context.Context, userID int64, fixtureIDs []int64) ([]prediction.Prediction, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]prediction.Prediction, 0, len(fixtureIDs))
	for _, fixtureID := range fixtureIDs {
		id, ok := r.store.predictionByKey[predictionKey{userID: userID, fixtureID: fixtureID}]
		if !ok {
			continue
		}
		out = append(out, r.store.predictions[id])
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FixtureID < out[j].FixtureID })
	return out, nil
}
