package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
)

type CreateMatchWeekInput struct {
	SeasonID           int64
	WeekID             int64
	PredictionsOpenAt  time.Time
	PredictionsCloseAt time.Time
	Fixtures           []fixture.Spec
}

// MatchWeekDetail is a match week together with its fixtures.
type MatchWeekDetail struct {
	MatchWeek matchweek.MatchWeek
	Fixtures  []fixture.Fixture
}

type MatchWeekService struct {
	seasonRepo    season.Repository
	weekRepo      week.Repository
	matchWeekRepo matchweek.Repository
	fixtureRepo   fixture.Repository
	now           func() time.Time
}

func NewMatchWeekService(
	seasonRepo season.Repository,
	weekRepo week.Repository,
	matchWeekRepo matchweek.Repository,
	fixtureRepo fixture.Repository,
) *MatchWeekService {
	return &MatchWeekService{
		seasonRepo:    seasonRepo,
		weekRepo:      weekRepo,
		matchWeekRepo: matchWeekRepo,
		fixtureRepo:   fixtureRepo,
		now:           time.Now,
	}
}

func (s *MatchWeekService) Create(ctx context.Context, input CreateMatchWeekInput) (MatchWeekDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchWeekService.Create")
	defer span.End()

	if err := matchweek.ValidateWindow(input.PredictionsOpenAt, input.PredictionsCloseAt); err != nil {
		return MatchWeekDetail{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	specs, err := normalizeFixtureSpecs(input.Fixtures)
	if err != nil {
		return MatchWeekDetail{}, err
	}

	_, exists, err := s.seasonRepo.GetByID(ctx, input.SeasonID)
	if err != nil {
		return MatchWeekDetail{}, fmt.Errorf("get season: %w", err)
	}
	if !exists {
		return MatchWeekDetail{}, fmt.Errorf("%w: season=%d", ErrNotFound, input.SeasonID)
	}

	_, exists, err = s.weekRepo.GetByID(ctx, input.WeekID)
	if err != nil {
		return MatchWeekDetail{}, fmt.Errorf("get week: %w", err)
	}
	if !exists {
		return MatchWeekDetail{}, fmt.Errorf("%w: week=%d", ErrNotFound, input.WeekID)
	}

	mw, fixtures, err := s.matchWeekRepo.Create(ctx, matchweek.MatchWeek{
		SeasonID:           input.SeasonID,
		WeekID:             input.WeekID,
		PredictionsOpenAt:  input.PredictionsOpenAt.UTC(),
		PredictionsCloseAt: input.PredictionsCloseAt.UTC(),
		CreatedAt:          s.now().UTC(),
	}, specs)
	if err != nil {
		return MatchWeekDetail{}, fmt.Errorf("create match week: %w", err)
	}

	return MatchWeekDetail{MatchWeek: mw, Fixtures: fixtures}, nil
}

func normalizeFixtureSpecs(in []fixture.Spec) ([]fixture.Spec, error) {
	if len(in) == 0 {
		return nil, fmt.Errorf("%w: at least one fixture is required", ErrInvalidInput)
	}
	if len(in) > fixture.MaxPerMatchWeek {
		return nil, fmt.Errorf("%w: at most %d fixtures per match week, got %d", ErrInvalidInput, fixture.MaxPerMatchWeek, len(in))
	}

	out := make([]fixture.Spec, 0, len(in))
	for i, spec := range in {
		if err := fixture.ValidateSpec(spec); err != nil {
			return nil, fmt.Errorf("%w: fixture %d: %v", ErrInvalidInput, i+1, err)
		}
		spec.HomeTeam = strings.TrimSpace(spec.HomeTeam)
		spec.AwayTeam = strings.TrimSpace(spec.AwayTeam)
		if spec.KickoffAt != nil {
			kickoff := spec.KickoffAt.UTC()
			spec.KickoffAt = &kickoff
		}
		out = append(out, spec)
	}
	return out, nil
}

func (s *MatchWeekService) Get(ctx context.Context, id int64) (MatchWeekDetail, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchWeekService.Get")
	defer span.End()

	mw, exists, err := s.matchWeekRepo.GetByID(ctx, id)
	if err != nil {
		return MatchWeekDetail{}, fmt.Errorf("get match week: %w", err)
	}
	if !exists {
		return MatchWeekDetail{}, fmt.Errorf("%w: match_week=%d", ErrNotFound, id)
	}

	fixtures, err := s.fixtureRepo.ListByMatchWeek(ctx, id)
	if err != nil {
		return MatchWeekDetail{}, fmt.Errorf("list fixtures by match week: %w", err)
	}

	return MatchWeekDetail{MatchWeek: mw, Fixtures: fixtures}, nil
}

// List returns every match week, newest week first.
func (s *MatchWeekService) List(ctx context.Context) ([]matchweek.MatchWeek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchWeekService.List")
	defer span.End()

	items, err := s.matchWeekRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list match weeks: %w", err)
	}
	return items, nil
}

func (s *MatchWeekService) ListActive(ctx context.Context) ([]matchweek.MatchWeek, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchWeekService.ListActive")
	defer span.End()

	items, err := s.matchWeekRepo.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active match weeks: %w", err)
	}
	return items, nil
}

// Activate makes id the only active match week.
func (s *MatchWeekService) Activate(ctx context.Context, id int64) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchWeekService.Activate")
	defer span.End()

	if err := s.matchWeekRepo.Activate(ctx, id); err != nil {
		if errors.Is(err, matchweek.ErrNotFound) {
			return fmt.Errorf("%w: match_week=%d", ErrNotFound, id)
		}
		return fmt.Errorf("activate match week: %w", err)
	}
	return nil
}
