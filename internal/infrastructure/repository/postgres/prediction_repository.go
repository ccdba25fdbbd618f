package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

const predictionUserFixtureConstraint = "predictions_user_id_fixture_id_key"

var predictionColumns = []string{
	"id", "user_id", "fixture_id", "home_score", "away_score",
	"points_earned", "created_at", "updated_at",
}

type PredictionRepository struct {
	db *sqlx.DB
}

func NewPredictionRepository(db *sqlx.DB) *PredictionRepository {
	return &PredictionRepository{db: db}
}

// Insert relies on the (user_id, fixture_id) unique constraint; a duplicate
// surfaces as prediction.ErrConflict.
func (r *PredictionRepository) Insert(ctx context.Context, item prediction.Prediction) (prediction.Prediction, error) {
	if item.UpdatedAt.IsZero() {
		item.UpdatedAt = item.CreatedAt
	}
	query, args, err := qb.InsertModel("predictions", predictionTableModel{
		UserID:       item.UserID,
		FixtureID:    item.FixtureID,
		HomeScore:    item.HomeScore,
		AwayScore:    item.AwayScore,
		PointsEarned: item.PointsEarned,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}, "id")
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("build insert prediction query: %w", err)
	}

	if err := r.db.GetContext(ctx, &item.ID, query, args...); err != nil {
		if isUniqueViolation(err, predictionUserFixtureConstraint) {
			return prediction.Prediction{}, prediction.ErrConflict
		}
		return prediction.Prediction{}, fmt.Errorf("insert prediction: %w", err)
	}
	return item, nil
}

func (r *PredictionRepository) UpdateScores(ctx context.Context, userID, fixtureID int64, homeScore, awayScore int, updatedAt time.Time) (prediction.Prediction, error) {
	query, args, err := qb.Update("predictions").
		Set("home_score", homeScore).
		Set("away_score", awayScore).
		Set("updated_at", updatedAt).
		Where(qb.Eq("user_id", userID), qb.Eq("fixture_id", fixtureID)).
		Returning(predictionColumns...).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("build update prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, prediction.ErrNotFound
		}
		return prediction.Prediction{}, fmt.Errorf("update prediction: %w", err)
	}
	return row.toDomain(), nil
}

func (r *PredictionRepository) Get(ctx context.Context, userID, fixtureID int64) (prediction.Prediction, bool, error) {
	query, args, err := qb.Select(predictionColumns...).
		From("predictions").
		Where(qb.Eq("user_id", userID), qb.Eq("fixture_id", fixtureID)).
		ToSQL()
	if err != nil {
		return prediction.Prediction{}, false, fmt.Errorf("build get prediction query: %w", err)
	}

	var row predictionTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return prediction.Prediction{}, false, nil
		}
		return prediction.Prediction{}, false, fmt.Errorf("get prediction: %w", err)
	}
	return row.toDomain(), true, nil
}

func (r *PredictionRepository) ListByUserAndFixtures(ctx context.Context, userID int64, fixtureIDs []int64) ([]prediction.Prediction, error) {
	if len(fixtureIDs) == 0 {
		return nil, nil
	}

	query, args, err := qb.Select(predictionColumns...).
		From("predictions").
		Where(qb.Eq("user_id", userID), qb.In("fixture_id", fixtureIDs)).
		OrderBy("fixture_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list predictions query: %w", err)
	}

	var rows []predictionTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list predictions: %w", err)
	}

	out := make([]prediction.Prediction, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
