package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_DeduplicatesConcurrentLoads(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		time.Sleep(20 * time.Millisecond)
		return []int{1, 2, 3}, nil
	}

	const workers = 32
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)
	errCh := make(chan error, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			v, err := store.GetOrLoad(context.Background(), "leaderboard", loader)
			if err != nil {
				errCh <- err
				return
			}
			if got, _ := v.([]int); len(got) != 3 {
				errCh <- errUnexpectedValue
			}
		}()
	}

	close(start)
	wg.Wait()
	close(errCh)
	for err := range errCh {
		t.Fatalf("unexpected error: %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_EntriesExpireAfterTTL(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	store := NewStore(time.Minute)
	store.now = func() time.Time { return now }

	store.Set(context.Background(), "k", "v")
	if _, ok := store.Get(context.Background(), "k"); !ok {
		t.Fatalf("expected fresh entry")
	}

	now = now.Add(time.Minute)
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("expected entry to expire at ttl")
	}
}

func TestStore_DeleteForcesReload(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		return calls.Add(1), nil
	}

	ctx := context.Background()
	if _, err := store.GetOrLoad(ctx, "board:all", loader); err != nil {
		t.Fatalf("first load: %v", err)
	}
	store.DeletePrefix(ctx, "board:")
	got, err := store.GetOrLoad(ctx, "board:all", loader)
	if err != nil {
		t.Fatalf("second load: %v", err)
	}
	if got.(int32) != 2 {
		t.Fatalf("expected reload after delete, got %v", got)
	}
}

func TestStore_GetOrLoad_DeleteDuringLoadDropsStaleValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		invalidate func(context.Context, *Store)
	}{
		{name: "delete", invalidate: func(ctx context.Context, s *Store) { s.Delete(ctx, "board:all") }},
		{name: "delete prefix", invalidate: func(ctx context.Context, s *Store) { s.DeletePrefix(ctx, "board:") }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			store := NewStore(time.Minute)
			ctx := context.Background()
			var calls atomic.Int32
			started := make(chan struct{})
			release := make(chan struct{})

			slow := func(context.Context) (any, error) {
				n := calls.Add(1)
				close(started)
				<-release
				return n, nil
			}

			done := make(chan any, 1)
			go func() {
				v, err := store.GetOrLoad(ctx, "board:all", slow)
				if err != nil {
					done <- err
					return
				}
				done <- v
			}()

			<-started
			tc.invalidate(ctx, store)
			close(release)

			if got := <-done; got != int32(1) {
				t.Fatalf("in-flight caller got %v, want 1", got)
			}
			if _, ok := store.Get(ctx, "board:all"); ok {
				t.Fatalf("value loaded before the delete must not be cached")
			}

			got, err := store.GetOrLoad(ctx, "board:all", func(context.Context) (any, error) {
				return calls.Add(1), nil
			})
			if err != nil {
				t.Fatalf("reload: %v", err)
			}
			if got != int32(2) {
				t.Fatalf("expected a fresh load after delete, got %v", got)
			}
		})
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")

	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("failed load must not be cached")
	}
	if _, err := store.GetOrLoad(context.Background(), "k", nil); !errors.Is(err, ErrLoaderRequired) {
		t.Fatalf("expected ErrLoaderRequired, got %v", err)
	}
}

var errUnexpectedValue = errors.New("unexpected loaded value")
