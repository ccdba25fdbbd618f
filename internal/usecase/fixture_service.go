package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
)

type RecordResultInput struct {
	FixtureID int64
	HomeScore int
	AwayScore int
}

type RecordResultOutput struct {
	Fixture fixture.Fixture
	Scoring scoring.Summary
}

type FixtureService struct {
	fixtureRepo fixture.Repository
	scoringSvc  *ScoringService
}

func NewFixtureService(fixtureRepo fixture.Repository, scoringSvc *ScoringService) *FixtureService {
	return &FixtureService{
		fixtureRepo: fixtureRepo,
		scoringSvc:  scoringSvc,
	}
}

// RecordResult stores the final score, marks the fixture completed and
// rescores its match week. The two steps commit separately; a failed rescore
// returns ErrDependencyUnavailable and is healed by recording the result again.
func (s *FixtureService) RecordResult(ctx context.Context, input RecordResultInput) (RecordResultOutput, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.RecordResult")
	defer span.End()

	if err := fixture.ValidateScore(input.HomeScore, input.AwayScore); err != nil {
		return RecordResultOutput{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	f, err := s.fixtureRepo.RecordResult(ctx, input.FixtureID, input.HomeScore, input.AwayScore)
	if err != nil {
		if errors.Is(err, fixture.ErrNotFound) {
			return RecordResultOutput{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, input.FixtureID)
		}
		return RecordResultOutput{}, fmt.Errorf("record fixture result: %w", err)
	}

	summary, err := s.scoringSvc.ScoreMatchWeek(ctx, f.MatchWeekID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return RecordResultOutput{}, fmt.Errorf("score match week: %w", err)
		}
		// The result is already stored. Recording the same score again
		// rescores the week, so the caller is told to retry.
		return RecordResultOutput{Fixture: f}, fmt.Errorf("%w: fixture=%d recorded, match_week=%d not scored: %w",
			ErrDependencyUnavailable, f.ID, f.MatchWeekID, err)
	}

	return RecordResultOutput{Fixture: f, Scoring: summary}, nil
}

func (s *FixtureService) ListByMatchWeek(ctx context.Context, matchWeekID int64) ([]fixture.Fixture, error) {
	fixtures, err := s.fixtureRepo.ListByMatchWeek(ctx, matchWeekID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by match week: %w", err)
	}
	return fixtures, nil
}
