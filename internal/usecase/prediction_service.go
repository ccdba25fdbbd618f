package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/result"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/sourcegraph/conc/pool"
)

type SubmitPredictionInput struct {
	UserID    int64
	FixtureID int64
	HomeScore int
	AwayScore int
}

// SheetRow is one fixture on the prediction form.
type SheetRow struct {
	Fixture    fixture.Fixture
	Prediction *prediction.Prediction
	Result     *result.Outcome
}

// PredictionSheet is everything needed to render the prediction form of one
// match week for one user.
type PredictionSheet struct {
	MatchWeek matchweek.MatchWeek
	IsOpen    bool
	Rows      []SheetRow
}

type PredictionService struct {
	userRepo       user.Repository
	fixtureRepo    fixture.Repository
	matchWeekRepo  matchweek.Repository
	predictionRepo prediction.Repository
	leaderboard    LeaderboardInvalidator
	now            func() time.Time
}

func NewPredictionService(
	userRepo user.Repository,
	fixtureRepo fixture.Repository,
	matchWeekRepo matchweek.Repository,
	predictionRepo prediction.Repository,
	leaderboard LeaderboardInvalidator,
) *PredictionService {
	if leaderboard == nil {
		leaderboard = noopLeaderboardInvalidator{}
	}
	return &PredictionService{
		userRepo:       userRepo,
		fixtureRepo:    fixtureRepo,
		matchWeekRepo:  matchWeekRepo,
		predictionRepo: predictionRepo,
		leaderboard:    leaderboard,
		now:            time.Now,
	}
}

// Submit creates the user's prediction for a fixture, or overwrites its
// scores when one already exists. Points already earned are kept.
func (s *PredictionService) Submit(ctx context.Context, input SubmitPredictionInput) (prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Submit")
	defer span.End()

	if err := prediction.ValidateScores(input.HomeScore, input.AwayScore); err != nil {
		return prediction.Prediction{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	_, exists, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get user: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: user=%d", ErrNotFound, input.UserID)
	}

	f, exists, err := s.fixtureRepo.GetByID(ctx, input.FixtureID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get fixture: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: fixture=%d", ErrNotFound, input.FixtureID)
	}

	mw, exists, err := s.matchWeekRepo.GetByID(ctx, f.MatchWeekID)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("get match week: %w", err)
	}
	if !exists {
		return prediction.Prediction{}, fmt.Errorf("%w: match_week=%d", ErrNotFound, f.MatchWeekID)
	}

	now := s.now().UTC()
	if !mw.IsOpen(now) {
		return prediction.Prediction{}, fmt.Errorf("%w: match_week=%d", ErrWindowClosed, mw.ID)
	}

	created, err := s.predictionRepo.Insert(ctx, prediction.Prediction{
		UserID:    input.UserID,
		FixtureID: input.FixtureID,
		HomeScore: input.HomeScore,
		AwayScore: input.AwayScore,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err == nil {
		// A first prediction adds the user to the leaderboard.
		s.leaderboard.Invalidate(ctx)
		return created, nil
	}
	if !errors.Is(err, prediction.ErrConflict) {
		return prediction.Prediction{}, fmt.Errorf("insert prediction: %w", err)
	}

	updated, err := s.predictionRepo.UpdateScores(ctx, input.UserID, input.FixtureID, input.HomeScore, input.AwayScore, now)
	if err != nil {
		return prediction.Prediction{}, fmt.Errorf("update prediction: %w", err)
	}
	return updated, nil
}

// ListForUser returns the user's predictions in the match week keyed by
// fixture id. Fixtures without a prediction are omitted.
func (s *PredictionService) ListForUser(ctx context.Context, userID, matchWeekID int64) (map[int64]prediction.Prediction, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.ListForUser")
	defer span.End()

	_, exists, err := s.matchWeekRepo.GetByID(ctx, matchWeekID)
	if err != nil {
		return nil, fmt.Errorf("get match week: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: match_week=%d", ErrNotFound, matchWeekID)
	}

	fixtures, err := s.fixtureRepo.ListByMatchWeek(ctx, matchWeekID)
	if err != nil {
		return nil, fmt.Errorf("list fixtures by match week: %w", err)
	}
	return s.predictionsByFixture(ctx, userID, fixtures)
}

func (s *PredictionService) predictionsByFixture(ctx context.Context, userID int64, fixtures []fixture.Fixture) (map[int64]prediction.Prediction, error) {
	out := make(map[int64]prediction.Prediction, len(fixtures))
	if len(fixtures) == 0 {
		return out, nil
	}

	fixtureIDs := make([]int64, 0, len(fixtures))
	for _, f := range fixtures {
		fixtureIDs = append(fixtureIDs, f.ID)
	}

	items, err := s.predictionRepo.ListByUserAndFixtures(ctx, userID, fixtureIDs)
	if err != nil {
		return nil, fmt.Errorf("list predictions by user and fixtures: %w", err)
	}
	for _, item := range items {
		out[item.FixtureID] = item
	}
	return out, nil
}

// Sheet loads the prediction form for an open match week.
func (s *PredictionService) Sheet(ctx context.Context, userID, matchWeekID int64) (PredictionSheet, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PredictionService.Sheet")
	defer span.End()

	var (
		mw       matchweek.MatchWeek
		exists   bool
		fixtures []fixture.Fixture
	)

	loaders := pool.New().WithContext(ctx).WithCancelOnError()
	loaders.Go(func(ctx context.Context) error {
		var err error
		mw, exists, err = s.matchWeekRepo.GetByID(ctx, matchWeekID)
		if err != nil {
			return fmt.Errorf("get match week: %w", err)
		}
		return nil
	})
	loaders.Go(func(ctx context.Context) error {
		var err error
		fixtures, err = s.fixtureRepo.ListByMatchWeek(ctx, matchWeekID)
		if err != nil {
			return fmt.Errorf("list fixtures by match week: %w", err)
		}
		return nil
	})
	if err := loaders.Wait(); err != nil {
		return PredictionSheet{}, err
	}
	if !exists {
		return PredictionSheet{}, fmt.Errorf("%w: match_week=%d", ErrNotFound, matchWeekID)
	}
	if !mw.IsOpen(s.now().UTC()) {
		return PredictionSheet{}, fmt.Errorf("%w: match_week=%d", ErrWindowClosed, matchWeekID)
	}

	byFixture, err := s.predictionsByFixture(ctx, userID, fixtures)
	if err != nil {
		return PredictionSheet{}, err
	}

	rows := make([]SheetRow, 0, len(fixtures))
	for _, f := range fixtures {
		row := SheetRow{Fixture: f}
		if p, ok := byFixture[f.ID]; ok {
			p := p
			row.Prediction = &p
		}
		if outcome, ok := f.Result(); ok {
			row.Result = &outcome
		}
		rows = append(rows, row)
	}

	return PredictionSheet{
		MatchWeek: mw,
		IsOpen:    true,
		Rows:      rows,
	}, nil
}
