package memory

import (
	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
)

var (
	_ season.Repository      = (*SeasonRepository)(nil)
	_ week.Repository        = (*WeekRepository)(nil)
	_ matchweek.Repository   = (*MatchWeekRepository)(nil)
	_ fixture.Repository     = (*FixtureRepository)(nil)
	_ prediction.Repository  = (*PredictionRepository)(nil)
	_ scoring.Repository     = (*ScoringRepository)(nil)
	_ user.Repository        = (*UserRepository)(nil)
	_ leaderboard.Repository = (*LeaderboardRepository)(nil)
)
