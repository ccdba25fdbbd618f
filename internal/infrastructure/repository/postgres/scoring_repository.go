package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
	qb "github.com/riskibarqy/prediction-league/internal/platform/querybuilder"
)

const defaultScoringBatchSize = 500

type ScoringRepository struct {
	db        *sqlx.DB
	batchSize int
}

func NewScoringRepository(db *sqlx.DB, batchSize int) *ScoringRepository {
	if batchSize < 1 {
		batchSize = defaultScoringBatchSize
	}
	return &ScoringRepository{db: db, batchSize: batchSize}
}

// ApplyMatchWeek locks the match week row, reads every prediction of its
// completed fixtures and writes the recomputed points in chunks of batchSize
// inside one transaction.
func (r *ScoringRepository) ApplyMatchWeek(ctx context.Context, matchWeekID int64, score scoring.ScoreFunc) (scoring.Summary, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return scoring.Summary{}, fmt.Errorf("begin tx score match week: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	lockQuery, lockArgs, err := qb.Select("id").From("match_weeks").Where(qb.Eq("id", matchWeekID)).ForUpdate().ToSQL()
	if err != nil {
		return scoring.Summary{}, fmt.Errorf("build lock match week query: %w", err)
	}
	var lockedID int64
	if err := tx.GetContext(ctx, &lockedID, lockQuery, lockArgs...); err != nil {
		if isNotFound(err) {
			return scoring.Summary{}, matchweek.ErrNotFound
		}
		return scoring.Summary{}, fmt.Errorf("lock match week: %w", err)
	}

	fixtureRows, err := selectFixturesByMatchWeek(ctx, tx, matchWeekID)
	if err != nil {
		return scoring.Summary{}, err
	}

	summary := scoring.Summary{MatchWeekID: matchWeekID}
	completedIDs := make([]int64, 0, len(fixtureRows))
	byID := make(map[int64]fixtureTableModel, len(fixtureRows))
	for _, row := range fixtureRows {
		if !row.IsCompleted {
			summary.FixturesSkipped++
			continue
		}
		summary.FixturesScored++
		completedIDs = append(completedIDs, row.ID)
		byID[row.ID] = row
	}
	if len(completedIDs) == 0 {
		return summary, nil
	}

	predQuery, predArgs, err := qb.Select(predictionColumns...).
		From("predictions").
		Where(qb.In("fixture_id", completedIDs)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return scoring.Summary{}, fmt.Errorf("build select predictions to score query: %w", err)
	}
	var predRows []predictionTableModel
	if err := tx.SelectContext(ctx, &predRows, predQuery, predArgs...); err != nil {
		return scoring.Summary{}, fmt.Errorf("select predictions to score: %w", err)
	}

	batch := newPointsBatch()
	for _, row := range predRows {
		points := score(row.toDomain(), byID[row.FixtureID].toDomain())
		batch.Row(row.ID, points)
		if batch.Len() >= r.batchSize {
			if err := flushPoints(ctx, tx, batch); err != nil {
				return scoring.Summary{}, err
			}
			batch = newPointsBatch()
		}
	}
	if batch.Len() > 0 {
		if err := flushPoints(ctx, tx, batch); err != nil {
			return scoring.Summary{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return scoring.Summary{}, fmt.Errorf("commit score match week tx: %w", err)
	}

	summary.PredictionsScored = len(predRows)
	return summary, nil
}

func newPointsBatch() *qb.BulkUpdateBuilder {
	return qb.BulkUpdate("predictions", "id").
		Columns([]string{"id", "points_earned"}, []string{"bigint", "integer"})
}

func flushPoints(ctx context.Context, tx *sqlx.Tx, batch *qb.BulkUpdateBuilder) error {
	query, args, err := batch.ToSQL()
	if err != nil {
		return fmt.Errorf("build update points query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update points: %w", err)
	}
	return nil
}
