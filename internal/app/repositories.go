package app

import (
	"context"

	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
	cacherepo "github.com/riskibarqy/prediction-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/postgres"
	basecache "github.com/riskibarqy/prediction-league/internal/platform/cache"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

type repositories struct {
	seasons     season.Repository
	weeks       week.Repository
	matchWeeks  matchweek.Repository
	fixtures    fixture.Repository
	predictions prediction.Repository
	scoring     scoring.Repository
	users       user.Repository
	leaderboard leaderboard.Repository
}

func newRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func() error, error) {
	var (
		repos   repositories
		closeFn = func() error { return nil }
	)

	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := openPostgres(ctx, cfg, logger)
		if err != nil {
			return repositories{}, nil, err
		}
		repos = repositories{
			seasons:     postgres.NewSeasonRepository(db),
			weeks:       postgres.NewWeekRepository(db),
			matchWeeks:  postgres.NewMatchWeekRepository(db),
			fixtures:    postgres.NewFixtureRepository(db),
			predictions: postgres.NewPredictionRepository(db),
			scoring:     postgres.NewScoringRepository(db, cfg.ScoringBatchSize),
			users:       postgres.NewUserRepository(db),
			leaderboard: postgres.NewLeaderboardRepository(db),
		}
		closeFn = db.Close
	default:
		store := memory.NewStore()
		repos = repositories{
			seasons:     memory.NewSeasonRepository(store),
			weeks:       memory.NewWeekRepository(store),
			matchWeeks:  memory.NewMatchWeekRepository(store),
			fixtures:    memory.NewFixtureRepository(store),
			predictions: memory.NewPredictionRepository(store),
			scoring:     memory.NewScoringRepository(store),
			users:       memory.NewUserRepository(store),
			leaderboard: memory.NewLeaderboardRepository(store),
		}
		logger.Warn("using in-memory store, data is lost on restart")
	}

	if cfg.CacheEnabled {
		cache := basecache.NewStore(cfg.CacheTTL)
		repos.seasons = cacherepo.NewSeasonRepository(repos.seasons, cache)
		repos.weeks = cacherepo.NewWeekRepository(repos.weeks, cache)
		repos.leaderboard = cacherepo.NewLeaderboardRepository(repos.leaderboard, cache)
	}

	return repos, closeFn, nil
}
