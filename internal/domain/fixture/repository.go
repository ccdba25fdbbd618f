package fixture

import "context"

// Repository exposes fixture reads and result entry. Fixtures are created
// together with their match week, see matchweek.Repository.
type Repository interface {
	GetByID(ctx context.Context, id int64) (Fixture, bool, error)
	ListByMatchWeek(ctx context.Context, matchWeekID int64) ([]Fixture, error)
	RecordResult(ctx context.Context, id int64, homeScore, awayScore int) (Fixture, error)
}
