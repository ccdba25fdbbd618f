package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	cacherepo "github.com/riskibarqy/prediction-league/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/prediction-league/internal/infrastructure/repository/memory"
	basecache "github.com/riskibarqy/prediction-league/internal/platform/cache"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

// memoryEnv wires every service over one in-memory store with a settable clock.
type memoryEnv struct {
	now time.Time

	users       *memory.UserRepository
	seasons     *SeasonService
	matchWeeks  *MatchWeekService
	fixtures    *FixtureService
	predictions *PredictionService
	scoring     *ScoringService
	leaderboard *LeaderboardService
}

func newMemoryEnv(t *testing.T, now time.Time) *memoryEnv {
	t.Helper()

	store := memory.NewStore()
	env := &memoryEnv{now: now}
	clock := func() time.Time { return env.now }

	seasonRepo := memory.NewSeasonRepository(store)
	weekRepo := memory.NewWeekRepository(store)
	matchWeekRepo := memory.NewMatchWeekRepository(store)
	fixtureRepo := memory.NewFixtureRepository(store)
	predictionRepo := memory.NewPredictionRepository(store)
	env.users = memory.NewUserRepository(store)
	leaderboardRepo := cacherepo.NewLeaderboardRepository(memory.NewLeaderboardRepository(store), basecache.NewStore(time.Minute))

	env.seasons = NewSeasonService(seasonRepo)
	env.seasons.now = clock
	env.matchWeeks = NewMatchWeekService(seasonRepo, weekRepo, matchWeekRepo, fixtureRepo)
	env.matchWeeks.now = clock
	env.leaderboard = NewLeaderboardService(leaderboardRepo)
	env.predictions = NewPredictionService(env.users, fixtureRepo, matchWeekRepo, predictionRepo, env.leaderboard)
	env.predictions.now = clock
	env.scoring = NewScoringService(matchWeekRepo, memory.NewScoringRepository(store), env.leaderboard, ScoringConfig{}, logging.NewNop())
	env.fixtures = NewFixtureService(fixtureRepo, env.scoring)

	return env
}

func (e *memoryEnv) createUser(t *testing.T, email, name string) user.User {
	t.Helper()

	u, err := e.users.Create(context.Background(), user.User{
		Email:      email,
		Name:       name,
		ExternalID: "ext-" + email,
		CreatedAt:  e.now,
	})
	if err != nil {
		t.Fatalf("create user %s: %v", email, err)
	}
	return u
}

// createMatchWeek creates a season, then a match week for week 1 with the
// given window and fixtures.
func (e *memoryEnv) createMatchWeek(t *testing.T, weekID int64, openAt, closeAt time.Time, specs ...fixture.Spec) MatchWeekDetail {
	t.Helper()

	ctx := context.Background()
	seasons, err := e.seasons.List(ctx)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	var seasonID int64
	if len(seasons) > 0 {
		seasonID = seasons[0].ID
	} else {
		created, err := e.seasons.Create(ctx, CreateSeasonInput{StartYear: 2024, EndYear: 2025})
		if err != nil {
			t.Fatalf("create season: %v", err)
		}
		seasonID = created.ID
	}

	if len(specs) == 0 {
		specs = []fixture.Spec{{HomeTeam: "Arsenal", AwayTeam: "Chelsea"}}
	}
	detail, err := e.matchWeeks.Create(ctx, CreateMatchWeekInput{
		SeasonID:           seasonID,
		WeekID:             weekID,
		PredictionsOpenAt:  openAt,
		PredictionsCloseAt: closeAt,
		Fixtures:           specs,
	})
	if err != nil {
		t.Fatalf("create match week: %v", err)
	}
	return detail
}
