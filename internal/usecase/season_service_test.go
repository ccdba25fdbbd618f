package usecase

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSeasonService_Create(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	env := newMemoryEnv(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC))

	created, err := env.seasons.Create(ctx, CreateSeasonInput{StartYear: 2024, EndYear: 2025})
	if err != nil {
		t.Fatalf("create season: %v", err)
	}
	if created.ID == 0 || created.Label() != "2024-2025" {
		t.Fatalf("unexpected season: %+v", created)
	}
	if !created.CreatedAt.Equal(env.now) {
		t.Fatalf("unexpected created_at: got=%s want=%s", created.CreatedAt, env.now)
	}

	if _, err := env.seasons.Create(ctx, CreateSeasonInput{StartYear: 2024, EndYear: 2025}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict on duplicate, got %v", err)
	}
	if _, err := env.seasons.Create(ctx, CreateSeasonInput{StartYear: 2025, EndYear: 2025}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for equal years, got %v", err)
	}

	if _, err := env.seasons.Create(ctx, CreateSeasonInput{StartYear: 2023, EndYear: 2024}); err != nil {
		t.Fatalf("create earlier season: %v", err)
	}
	items, err := env.seasons.List(ctx)
	if err != nil {
		t.Fatalf("list seasons: %v", err)
	}
	if len(items) != 2 || items[0].StartYear != 2023 {
		t.Fatalf("expected seasons ordered by start year, got %+v", items)
	}
}
