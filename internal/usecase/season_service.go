package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/season"
)

type CreateSeasonInput struct {
	StartYear int
	EndYear   int
}

type SeasonService struct {
	seasonRepo season.Repository
	now        func() time.Time
}

func NewSeasonService(seasonRepo season.Repository) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		now:        time.Now,
	}
}

func (s *SeasonService) Create(ctx context.Context, input CreateSeasonInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.Create")
	defer span.End()

	if err := season.ValidateYears(input.StartYear, input.EndYear); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := s.seasonRepo.Create(ctx, season.Season{
		StartYear: input.StartYear,
		EndYear:   input.EndYear,
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		if errors.Is(err, season.ErrDuplicate) {
			return season.Season{}, fmt.Errorf("%w: season %d-%d", ErrConflict, input.StartYear, input.EndYear)
		}
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	return created, nil
}

func (s *SeasonService) List(ctx context.Context) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.List")
	defer span.End()

	items, err := s.seasonRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}
	return items, nil
}
