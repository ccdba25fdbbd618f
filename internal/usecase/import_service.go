package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/prediction-league/internal/platform/id"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

// ExternalFixture is an upcoming match as reported by the fixture feed.
type ExternalFixture struct {
	HomeTeam  string
	AwayTeam  string
	KickoffAt time.Time
}

type FixtureFeed interface {
	FetchUpcoming(ctx context.Context) ([]ExternalFixture, error)
}

type ImportResult struct {
	RunID    string
	Count    int
	Fixtures []ExternalFixture
}

type ImportService struct {
	feed   FixtureFeed
	ids    id.Generator
	logger *logging.Logger
}

func NewImportService(feed FixtureFeed, ids id.Generator, logger *logging.Logger) *ImportService {
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &ImportService{
		feed:   feed,
		ids:    ids,
		logger: logger,
	}
}

// FetchUpcoming pulls upcoming fixtures from the feed. Nothing is stored; the
// admin picks from the result when creating a match week.
func (s *ImportService) FetchUpcoming(ctx context.Context) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.FetchUpcoming")
	defer span.End()

	runID, err := s.ids.NewID()
	if err != nil {
		return ImportResult{}, fmt.Errorf("generate import run id: %w", err)
	}

	items, err := s.feed.FetchUpcoming(ctx)
	if err != nil {
		s.logger.WarnContext(ctx, "fetch upcoming fixtures failed", "run_id", runID, "error", err)
		return ImportResult{}, fmt.Errorf("%w: fixture feed: %v", ErrDependencyUnavailable, err)
	}

	fixtures := make([]ExternalFixture, 0, len(items))
	for _, item := range items {
		item.HomeTeam = strings.TrimSpace(item.HomeTeam)
		item.AwayTeam = strings.TrimSpace(item.AwayTeam)
		if item.HomeTeam == "" || item.AwayTeam == "" {
			continue
		}
		item.KickoffAt = item.KickoffAt.UTC()
		fixtures = append(fixtures, item)
	}

	s.logger.InfoContext(ctx, "fetched upcoming fixtures", "run_id", runID, "count", len(fixtures))
	return ImportResult{
		RunID:    runID,
		Count:    len(fixtures),
		Fixtures: fixtures,
	}, nil
}
