package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

const defaultScoringWorkers = 4

// LeaderboardInvalidator drops any cached leaderboard after points change.
type LeaderboardInvalidator interface {
	Invalidate(ctx context.Context)
}

type noopLeaderboardInvalidator struct{}

func (noopLeaderboardInvalidator) Invalidate(context.Context) {}

type ScoringConfig struct {
	Rules   scoring.Rules
	Workers int
}

type ScoreAllResult struct {
	WorkerCount int
	Summaries   []scoring.Summary
	FailedCount int
}

type ScoringService struct {
	matchWeekRepo matchweek.Repository
	scoringRepo   scoring.Repository
	leaderboard   LeaderboardInvalidator
	rules         scoring.Rules
	workers       int
	logger        *logging.Logger
}

func NewScoringService(
	matchWeekRepo matchweek.Repository,
	scoringRepo scoring.Repository,
	leaderboard LeaderboardInvalidator,
	cfg ScoringConfig,
	logger *logging.Logger,
) *ScoringService {
	if leaderboard == nil {
		leaderboard = noopLeaderboardInvalidator{}
	}
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Rules == (scoring.Rules{}) {
		cfg.Rules = scoring.DefaultRules()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultScoringWorkers
	}

	return &ScoringService{
		matchWeekRepo: matchWeekRepo,
		scoringRepo:   scoringRepo,
		leaderboard:   leaderboard,
		rules:         cfg.Rules,
		workers:       cfg.Workers,
		logger:        logger,
	}
}

func (s *ScoringService) Rules() scoring.Rules {
	return s.rules
}

// ScoreMatchWeek recomputes points_earned for every prediction of every
// completed fixture in the match week. Running it twice yields the same
// points.
func (s *ScoringService) ScoreMatchWeek(ctx context.Context, matchWeekID int64) (scoring.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreMatchWeek")
	defer span.End()

	summary, err := s.apply(ctx, matchWeekID)
	if err != nil {
		return scoring.Summary{}, err
	}
	s.leaderboard.Invalidate(ctx)

	s.logger.InfoContext(ctx, "match week scored",
		"match_week_id", summary.MatchWeekID,
		"fixtures_scored", summary.FixturesScored,
		"fixtures_skipped", summary.FixturesSkipped,
		"predictions_scored", summary.PredictionsScored,
	)
	return summary, nil
}

func (s *ScoringService) apply(ctx context.Context, matchWeekID int64) (scoring.Summary, error) {
	summary, err := s.scoringRepo.ApplyMatchWeek(ctx, matchWeekID, s.rules.Score)
	if err != nil {
		if errors.Is(err, matchweek.ErrNotFound) {
			return scoring.Summary{}, fmt.Errorf("%w: match_week=%d", ErrNotFound, matchWeekID)
		}
		return scoring.Summary{}, fmt.Errorf("apply match week scoring: %w", err)
	}
	return summary, nil
}

// ScoreAll rescores every match week on a bounded worker pool. Failures of
// individual weeks are logged and joined into the returned error; the
// summaries of the weeks that succeeded are still returned.
func (s *ScoringService) ScoreAll(ctx context.Context) (ScoreAllResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ScoringService.ScoreAll")
	defer span.End()

	items, err := s.matchWeekRepo.List(ctx)
	if err != nil {
		return ScoreAllResult{}, fmt.Errorf("list match weeks: %w", err)
	}

	workerCount := s.workers
	if workerCount > len(items) {
		workerCount = len(items)
	}
	result := ScoreAllResult{
		WorkerCount: workerCount,
		Summaries:   make([]scoring.Summary, 0, len(items)),
	}
	if len(items) == 0 {
		return result, nil
	}

	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return ScoreAllResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var (
		mu      sync.Mutex
		errs    []error
		workers sync.WaitGroup
	)
	for _, item := range items {
		matchWeekID := item.ID
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			summary, err := s.apply(ctx, matchWeekID)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.logger.WarnContext(ctx, "rescore match week failed", "match_week_id", matchWeekID, "error", err)
				errs = append(errs, fmt.Errorf("match week %d: %w", matchWeekID, err))
				return
			}
			result.Summaries = append(result.Summaries, summary)
		}); err != nil {
			workers.Done()
			return ScoreAllResult{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}
	workers.Wait()

	if len(result.Summaries) > 0 {
		s.leaderboard.Invalidate(ctx)
	}

	sort.Slice(result.Summaries, func(i, j int) bool {
		return result.Summaries[i].MatchWeekID < result.Summaries[j].MatchWeekID
	})
	result.FailedCount = len(errs)

	s.logger.InfoContext(ctx, "all match weeks rescored",
		"match_week_count", len(items),
		"worker_count", workerCount,
		"failed_count", result.FailedCount,
	)
	if len(errs) > 0 {
		return result, errors.Join(errs...)
	}
	return result, nil
}
