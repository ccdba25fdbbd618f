package fixturefeed

import (
	"context"
	"time"

	"github.com/riskibarqy/prediction-league/internal/usecase"
)

// StaticFeed serves a fixed pair of fixtures one week out. It stands in for
// the provider when FIXTURE_FEED_ENABLED is false.
type StaticFeed struct {
	now func() time.Time
}

func NewStaticFeed() *StaticFeed {
	return &StaticFeed{now: time.Now}
}

func (f *StaticFeed) FetchUpcoming(context.Context) ([]usecase.ExternalFixture, error) {
	base := f.now().UTC().Truncate(time.Minute).Add(7 * 24 * time.Hour)
	return []usecase.ExternalFixture{
		{HomeTeam: "Manchester United", AwayTeam: "Arsenal", KickoffAt: base},
		{HomeTeam: "Chelsea", AwayTeam: "Liverpool", KickoffAt: base.Add(2 * time.Hour)},
	}, nil
}
