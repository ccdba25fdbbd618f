package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/platform/id"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

type fakeFixtureFeed struct {
	items []ExternalFixture
	err   error
}

func (f fakeFixtureFeed) FetchUpcoming(context.Context) ([]ExternalFixture, error) {
	return f.items, f.err
}

func TestImportService_FetchUpcoming(t *testing.T) {
	t.Parallel()

	kickoff := time.Date(2024, 8, 10, 14, 0, 0, 0, time.FixedZone("BST", 3600))
	service := NewImportService(fakeFixtureFeed{items: []ExternalFixture{
		{HomeTeam: " Arsenal ", AwayTeam: "Chelsea", KickoffAt: kickoff},
		{HomeTeam: "", AwayTeam: "Everton", KickoffAt: kickoff},
	}}, id.Static("run-1"), logging.NewNop())

	got, err := service.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("fetch upcoming: %v", err)
	}
	if got.RunID != "run-1" {
		t.Fatalf("unexpected run id: %q", got.RunID)
	}
	if got.Count != 1 || len(got.Fixtures) != 1 {
		t.Fatalf("unexpected fixtures: %+v", got)
	}
	if got.Fixtures[0].HomeTeam != "Arsenal" {
		t.Fatalf("expected trimmed team, got %q", got.Fixtures[0].HomeTeam)
	}
	if got.Fixtures[0].KickoffAt.Location() != time.UTC || !got.Fixtures[0].KickoffAt.Equal(kickoff) {
		t.Fatalf("expected kickoff normalized to UTC, got %s", got.Fixtures[0].KickoffAt)
	}
}

func TestImportService_FetchUpcoming_EmptyFeed(t *testing.T) {
	t.Parallel()

	service := NewImportService(fakeFixtureFeed{}, id.Static("run-2"), logging.NewNop())
	got, err := service.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("fetch upcoming: %v", err)
	}
	if got.Count != 0 || got.Fixtures == nil {
		t.Fatalf("expected empty non-nil fixture list, got %+v", got)
	}
}

func TestImportService_FetchUpcoming_FeedFailure(t *testing.T) {
	t.Parallel()

	service := NewImportService(fakeFixtureFeed{err: errors.New("connection refused")}, id.Static("run-3"), logging.NewNop())
	if _, err := service.FetchUpcoming(context.Background()); !errors.Is(err, ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
}
