package httpapi

import (
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/leaderboard"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
	"github.com/riskibarqy/prediction-league/internal/domain/week"
	"github.com/riskibarqy/prediction-league/internal/usecase"
)

type createSeasonRequest struct {
	StartYear int `json:"startYear" validate:"required,gt=1800"`
	EndYear   int `json:"endYear" validate:"required,gtfield=StartYear"`
}

type fixtureSpecRequest struct {
	HomeTeam  string     `json:"homeTeam" validate:"required,max=100"`
	AwayTeam  string     `json:"awayTeam" validate:"required,max=100"`
	KickoffAt *time.Time `json:"kickoffAt"`
}

type createMatchWeekRequest struct {
	SeasonID           int64                `json:"seasonId" validate:"required,gt=0"`
	WeekID             int64                `json:"weekId" validate:"required,gt=0"`
	PredictionsOpenAt  time.Time            `json:"predictionsOpenAt" validate:"required"`
	PredictionsCloseAt time.Time            `json:"predictionsCloseAt" validate:"required"`
	Fixtures           []fixtureSpecRequest `json:"fixtures" validate:"required,min=1,max=20,dive"`
}

type submitPredictionRequest struct {
	HomeScore *int `json:"homeScore" validate:"required"`
	AwayScore *int `json:"awayScore" validate:"required"`
}

type recordResultRequest struct {
	HomeScore *int `json:"homeScore" validate:"required,min=0"`
	AwayScore *int `json:"awayScore" validate:"required,min=0"`
}

type userDTO struct {
	ID      int64  `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

type seasonDTO struct {
	ID        int64  `json:"id"`
	StartYear int    `json:"startYear"`
	EndYear   int    `json:"endYear"`
	Label     string `json:"label"`
}

type weekDTO struct {
	ID     int64 `json:"id"`
	Number int   `json:"number"`
}

type matchWeekDTO struct {
	ID                 int64     `json:"id"`
	SeasonID           int64     `json:"seasonId"`
	WeekID             int64     `json:"weekId"`
	WeekNumber         int       `json:"weekNumber"`
	PredictionsOpenAt  time.Time `json:"predictionsOpenAt"`
	PredictionsCloseAt time.Time `json:"predictionsCloseAt"`
	IsActive           bool      `json:"isActive"`
}

type fixtureDTO struct {
	ID          int64      `json:"id"`
	MatchWeekID int64      `json:"matchWeekId"`
	HomeTeam    string     `json:"homeTeam"`
	AwayTeam    string     `json:"awayTeam"`
	KickoffAt   *time.Time `json:"kickoffAt,omitempty"`
	HomeScore   *int       `json:"homeScore,omitempty"`
	AwayScore   *int       `json:"awayScore,omitempty"`
	IsCompleted bool       `json:"isCompleted"`
	Result      string     `json:"result,omitempty"`
}

type matchWeekDetailDTO struct {
	MatchWeek matchWeekDTO `json:"matchWeek"`
	Fixtures  []fixtureDTO `json:"fixtures"`
}

type predictionDTO struct {
	ID           int64     `json:"id"`
	FixtureID    int64     `json:"fixtureId"`
	HomeScore    int       `json:"homeScore"`
	AwayScore    int       `json:"awayScore"`
	PointsEarned int       `json:"pointsEarned"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type sheetRowDTO struct {
	Fixture    fixtureDTO     `json:"fixture"`
	Prediction *predictionDTO `json:"prediction,omitempty"`
}

type predictionSheetDTO struct {
	MatchWeek matchWeekDTO  `json:"matchWeek"`
	IsOpen    bool          `json:"isOpen"`
	Rows      []sheetRowDTO `json:"rows"`
}

type leaderboardEntryDTO struct {
	Rank        int    `json:"rank"`
	UserID      int64  `json:"userId"`
	UserName    string `json:"userName"`
	TotalPoints int    `json:"totalPoints"`
}

type scoringSummaryDTO struct {
	MatchWeekID       int64 `json:"matchWeekId"`
	FixturesScored    int   `json:"fixturesScored"`
	FixturesSkipped   int   `json:"fixturesSkipped"`
	PredictionsScored int   `json:"predictionsScored"`
}

type rescoreAllDTO struct {
	WorkerCount int                 `json:"workerCount"`
	FailedCount int                 `json:"failedCount"`
	Summaries   []scoringSummaryDTO `json:"summaries"`
}

type recordResultDTO struct {
	Fixture fixtureDTO        `json:"fixture"`
	Scoring scoringSummaryDTO `json:"scoring"`
}

type externalFixtureDTO struct {
	HomeTeam  string    `json:"homeTeam"`
	AwayTeam  string    `json:"awayTeam"`
	KickoffAt time.Time `json:"kickoffAt"`
}

type importResultDTO struct {
	RunID    string               `json:"runId"`
	Count    int                  `json:"count"`
	Fixtures []externalFixtureDTO `json:"fixtures"`
}

func userToDTO(u user.User) userDTO {
	return userDTO{ID: u.ID, Email: u.Email, Name: u.Name, IsAdmin: u.IsAdmin}
}

func seasonToDTO(s season.Season) seasonDTO {
	return seasonDTO{ID: s.ID, StartYear: s.StartYear, EndYear: s.EndYear, Label: s.Label()}
}

func weekToDTO(w week.Week) weekDTO {
	return weekDTO{ID: w.ID, Number: w.Number}
}

func matchWeekToDTO(m matchweek.MatchWeek) matchWeekDTO {
	return matchWeekDTO{
		ID:                 m.ID,
		SeasonID:           m.SeasonID,
		WeekID:             m.WeekID,
		WeekNumber:         m.WeekNumber,
		PredictionsOpenAt:  m.PredictionsOpenAt,
		PredictionsCloseAt: m.PredictionsCloseAt,
		IsActive:           m.IsActive,
	}
}

func matchWeeksToDTO(items []matchweek.MatchWeek) []matchWeekDTO {
	out := make([]matchWeekDTO, 0, len(items))
	for _, item := range items {
		out = append(out, matchWeekToDTO(item))
	}
	return out
}

func fixtureToDTO(f fixture.Fixture) fixtureDTO {
	out := fixtureDTO{
		ID:          f.ID,
		MatchWeekID: f.MatchWeekID,
		HomeTeam:    f.HomeTeam,
		AwayTeam:    f.AwayTeam,
		KickoffAt:   f.KickoffAt,
		HomeScore:   f.HomeScore,
		AwayScore:   f.AwayScore,
		IsCompleted: f.IsCompleted,
	}
	if outcome, ok := f.Result(); ok {
		out.Result = outcome.Label()
	}
	return out
}

func fixturesToDTO(items []fixture.Fixture) []fixtureDTO {
	out := make([]fixtureDTO, 0, len(items))
	for _, item := range items {
		out = append(out, fixtureToDTO(item))
	}
	return out
}

func predictionToDTO(p prediction.Prediction) predictionDTO {
	return predictionDTO{
		ID:           p.ID,
		FixtureID:    p.FixtureID,
		HomeScore:    p.HomeScore,
		AwayScore:    p.AwayScore,
		PointsEarned: p.PointsEarned,
		UpdatedAt:    p.UpdatedAt,
	}
}

func sheetToDTO(sheet usecase.PredictionSheet) predictionSheetDTO {
	rows := make([]sheetRowDTO, 0, len(sheet.Rows))
	for _, row := range sheet.Rows {
		item := sheetRowDTO{Fixture: fixtureToDTO(row.Fixture)}
		if row.Prediction != nil {
			p := predictionToDTO(*row.Prediction)
			item.Prediction = &p
		}
		rows = append(rows, item)
	}
	return predictionSheetDTO{
		MatchWeek: matchWeekToDTO(sheet.MatchWeek),
		IsOpen:    sheet.IsOpen,
		Rows:      rows,
	}
}

func leaderboardToDTO(items []leaderboard.Entry) []leaderboardEntryDTO {
	out := make([]leaderboardEntryDTO, 0, len(items))
	for _, item := range items {
		out = append(out, leaderboardEntryDTO{
			Rank:        item.Rank,
			UserID:      item.UserID,
			UserName:    item.UserName,
			TotalPoints: item.TotalPoints,
		})
	}
	return out
}

func summaryToDTO(s scoring.Summary) scoringSummaryDTO {
	return scoringSummaryDTO{
		MatchWeekID:       s.MatchWeekID,
		FixturesScored:    s.FixturesScored,
		FixturesSkipped:   s.FixturesSkipped,
		PredictionsScored: s.PredictionsScored,
	}
}
