package matchweek

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrInvalidWindow = errors.New("predictions must open before they close")
	ErrNotFound      = errors.New("match week not found")
)

// MatchWeek groups the fixtures of one week of a season and carries the
// prediction window for them.
type MatchWeek struct {
	ID                 int64
	SeasonID           int64
	WeekID             int64
	WeekNumber         int
	PredictionsOpenAt  time.Time
	PredictionsCloseAt time.Time
	IsActive           bool
	CreatedAt          time.Time
}

// IsOpen reports whether now falls inside [opensAt, closesAt]. Both bounds
// are inclusive.
func IsOpen(opensAt, closesAt, now time.Time) bool {
	return !now.Before(opensAt) && !now.After(closesAt)
}

func (m MatchWeek) IsOpen(now time.Time) bool {
	return IsOpen(m.PredictionsOpenAt, m.PredictionsCloseAt, now)
}

func (m MatchWeek) Label() string {
	return fmt.Sprintf("Week %d", m.WeekNumber)
}

func ValidateWindow(opensAt, closesAt time.Time) error {
	if opensAt.IsZero() || closesAt.IsZero() {
		return fmt.Errorf("%w: both bounds are required", ErrInvalidWindow)
	}
	if !opensAt.Before(closesAt) {
		return fmt.Errorf("%w: open=%s close=%s", ErrInvalidWindow, opensAt.Format(time.RFC3339), closesAt.Format(time.RFC3339))
	}
	return nil
}
