package resilience

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCircuitBreaker_Transitions(t *testing.T) {
	b := NewCircuitBreaker(2, 5*time.Second, 1)

	now := time.Date(2024, 8, 10, 12, 0, 0, 0, time.UTC)
	b.now = func() time.Time { return now }

	if err := b.Allow(); err != nil {
		t.Fatalf("expected allow in closed state: %v", err)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after first failure, got %s", state)
	}

	b.RecordFailure()
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after threshold failures, got %s", state)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected circuit open error, got %v", err)
	}

	now = now.Add(6 * time.Second)
	if err := b.Allow(); err != nil {
		t.Fatalf("expected half-open probe to pass, got %v", err)
	}
	if err := b.Allow(); !errors.Is(err, ErrCircuitOpen) {
		t.Fatalf("expected second half-open probe to be rejected, got %v", err)
	}

	b.RecordSuccess()
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("expected closed after successful probe, got %s", state)
	}
}

func TestCircuitBreaker_DoCountsOnlyMatchingErrors(t *testing.T) {
	b := NewCircuitBreaker(1, time.Minute, 1)
	transient := errors.New("transient")
	permanent := errors.New("bad request")
	isTransient := func(err error) bool { return errors.Is(err, transient) }

	err := b.Do(context.Background(), isTransient, func(context.Context) error { return permanent })
	if !errors.Is(err, permanent) {
		t.Fatalf("expected permanent error passthrough, got %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("permanent errors must not trip the breaker, got %s", state)
	}

	_ = b.Do(context.Background(), isTransient, func(context.Context) error { return transient })
	if state := b.State(); state != CircuitStateOpen {
		t.Fatalf("expected open after transient failure, got %s", state)
	}

	called := false
	err = b.Do(context.Background(), isTransient, func(context.Context) error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrCircuitOpen) || called {
		t.Fatalf("expected short circuit, err=%v called=%v", err, called)
	}
}

func TestCircuitBreaker_NilAndDisabled(t *testing.T) {
	var b *CircuitBreaker
	if err := b.Do(context.Background(), nil, func(context.Context) error { return nil }); err != nil {
		t.Fatalf("nil breaker should pass through: %v", err)
	}
	if state := b.State(); state != CircuitStateClosed {
		t.Fatalf("nil breaker reports closed, got %s", state)
	}

	cfg := DefaultCircuitBreakerConfig()
	cfg.Enabled = false
	if NewCircuitBreakerFromConfig(cfg) != nil {
		t.Fatalf("disabled config should produce nil breaker")
	}
}
