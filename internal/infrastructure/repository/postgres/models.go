package postgres

import (
	"database/sql"
	"time"

	"github.com/riskibarqy/prediction-league/internal/domain/fixture"
	"github.com/riskibarqy/prediction-league/internal/domain/matchweek"
	"github.com/riskibarqy/prediction-league/internal/domain/prediction"
	"github.com/riskibarqy/prediction-league/internal/domain/season"
	"github.com/riskibarqy/prediction-league/internal/domain/user"
)

type seasonTableModel struct {
	ID        int64     `db:"id,auto"`
	StartYear int       `db:"start_year"`
	EndYear   int       `db:"end_year"`
	CreatedAt time.Time `db:"created_at"`
}

func (m seasonTableModel) toDomain() season.Season {
	return season.Season{ID: m.ID, StartYear: m.StartYear, EndYear: m.EndYear, CreatedAt: m.CreatedAt}
}

type matchWeekTableModel struct {
	ID                 int64     `db:"id,auto"`
	SeasonID           int64     `db:"season_id"`
	WeekID             int64     `db:"week_id"`
	WeekNumber         int       `db:"week_number,auto"`
	PredictionsOpenAt  time.Time `db:"predictions_open_at"`
	PredictionsCloseAt time.Time `db:"predictions_close_at"`
	IsActive           bool      `db:"is_active"`
	CreatedAt          time.Time `db:"created_at"`
}

func (m matchWeekTableModel) toDomain() matchweek.MatchWeek {
	return matchweek.MatchWeek{
		ID:                 m.ID,
		SeasonID:           m.SeasonID,
		WeekID:             m.WeekID,
		WeekNumber:         m.WeekNumber,
		PredictionsOpenAt:  m.PredictionsOpenAt,
		PredictionsCloseAt: m.PredictionsCloseAt,
		IsActive:           m.IsActive,
		CreatedAt:          m.CreatedAt,
	}
}

type fixtureTableModel struct {
	ID          int64      `db:"id,auto"`
	MatchWeekID int64      `db:"match_week_id"`
	HomeTeam    string     `db:"home_team"`
	AwayTeam    string     `db:"away_team"`
	KickoffAt   *time.Time `db:"kickoff_at"`
	HomeScore   *int       `db:"home_score"`
	AwayScore   *int       `db:"away_score"`
	IsCompleted bool       `db:"is_completed"`
	CreatedAt   time.Time  `db:"created_at"`
}

func (m fixtureTableModel) toDomain() fixture.Fixture {
	return fixture.Fixture{
		ID:          m.ID,
		MatchWeekID: m.MatchWeekID,
		HomeTeam:    m.HomeTeam,
		AwayTeam:    m.AwayTeam,
		KickoffAt:   m.KickoffAt,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		IsCompleted: m.IsCompleted,
		CreatedAt:   m.CreatedAt,
	}
}

type predictionTableModel struct {
	ID           int64     `db:"id,auto"`
	UserID       int64     `db:"user_id"`
	FixtureID    int64     `db:"fixture_id"`
	HomeScore    int       `db:"home_score"`
	AwayScore    int       `db:"away_score"`
	PointsEarned int       `db:"points_earned"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (m predictionTableModel) toDomain() prediction.Prediction {
	return prediction.Prediction{
		ID:           m.ID,
		UserID:       m.UserID,
		FixtureID:    m.FixtureID,
		HomeScore:    m.HomeScore,
		AwayScore:    m.AwayScore,
		PointsEarned: m.PointsEarned,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

type userTableModel struct {
	ID         int64          `db:"id,auto"`
	Email      string         `db:"email"`
	Name       string         `db:"name"`
	ExternalID sql.NullString `db:"external_id"`
	IsAdmin    bool           `db:"is_admin"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (m userTableModel) toDomain() user.User {
	return user.User{
		ID:         m.ID,
		Email:      m.Email,
		Name:       m.Name,
		ExternalID: m.ExternalID.String,
		IsAdmin:    m.IsAdmin,
		CreatedAt:  m.CreatedAt,
	}
}

func nullString(v string) sql.NullString {
	return sql.NullString{String: v, Valid: v != ""}
}
