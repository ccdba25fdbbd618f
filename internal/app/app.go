package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/riskibarqy/prediction-league/external/fixturefeed"
	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/prediction-league/internal/platform/id"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

// CloseFunc releases resources held by the server dependencies.
type CloseFunc func() error

func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, CloseFunc, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.HTTPAddr == "" {
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	repos, closeRepos, err := newRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	leaderboardSvc := usecase.NewLeaderboardService(repos.leaderboard)
	scoringSvc := usecase.NewScoringService(
		repos.matchWeeks,
		repos.scoring,
		leaderboardSvc,
		usecase.ScoringConfig{
			Rules:   cfg.ScoringRules,
			Workers: cfg.ScoringWorkers,
		},
		logger,
	)
	userSvc := usecase.NewUserService(repos.users, cfg.IsAdminEmail)

	handler := httpapi.NewHandler(httpapi.Services{
		Seasons:     usecase.NewSeasonService(repos.seasons),
		Weeks:       usecase.NewWeekService(repos.weeks),
		MatchWeeks:  usecase.NewMatchWeekService(repos.seasons, repos.weeks, repos.matchWeeks, repos.fixtures),
		Fixtures:    usecase.NewFixtureService(repos.fixtures, scoringSvc),
		Predictions: usecase.NewPredictionService(repos.users, repos.fixtures, repos.matchWeeks, repos.predictions, leaderboardSvc),
		Scoring:     scoringSvc,
		Leaderboard: leaderboardSvc,
		Import:      usecase.NewImportService(newFixtureFeed(cfg, logger), idgen.NewUUIDGenerator(), logger),
	}, logger)

	router := httpapi.NewRouter(handler, userSvc, logger, httpapi.RouterConfig{
		SwaggerEnabled:     cfg.SwaggerEnabled,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("http server configured",
		"store_driver", cfg.StoreDriver,
		"cache_enabled", cfg.CacheEnabled,
		"fixture_feed_enabled", cfg.FixtureFeedEnabled,
		"scoring_exact_points", cfg.ScoringRules.ExactScorePoints,
		"scoring_outcome_points", cfg.ScoringRules.CorrectOutcomePoints,
		"scoring_incorrect_points", cfg.ScoringRules.IncorrectPoints,
	)

	return server, CloseFunc(closeRepos), nil
}

func newFixtureFeed(cfg config.Config, logger *logging.Logger) usecase.FixtureFeed {
	if !cfg.FixtureFeedEnabled {
		logger.Info("fixture feed disabled, serving static fixtures")
		return fixturefeed.NewStaticFeed()
	}

	return fixturefeed.NewClient(fixturefeed.ClientConfig{
		BaseURL:        cfg.FixtureFeedBaseURL,
		Token:          cfg.FixtureFeedToken,
		Timeout:        cfg.FixtureFeedTimeout,
		MaxRetries:     cfg.FixtureFeedMaxRetries,
		Logger:         logger,
		CircuitBreaker: cfg.FixtureFeedCircuit,
	})
}
