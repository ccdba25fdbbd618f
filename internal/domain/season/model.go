package season

import (
	"errors"
	"fmt"
	"time"
)

var ErrInvalidYears = errors.New("season start year must be before end year")

// Season is one league year, e.g. 2024-2025.
type Season struct {
	ID        int64
	StartYear int
	EndYear   int
	CreatedAt time.Time
}

func (s Season) Label() string {
	return fmt.Sprintf("%d-%d", s.StartYear, s.EndYear)
}

func ValidateYears(startYear, endYear int) error {
	if startYear <= 0 || endYear <= 0 {
		return fmt.Errorf("%w: years must be positive", ErrInvalidYears)
	}
	if startYear >= endYear {
		return fmt.Errorf("%w: start=%d end=%d", ErrInvalidYears, startYear, endYear)
	}
	return nil
}
