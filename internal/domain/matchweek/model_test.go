package matchweek

import (
	"errors"
	"testing"
	"time"
)

func TestIsOpen(t *testing.T) {
	opens := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	closes := time.Date(2024, 8, 10, 11, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{name: "before open", now: opens.Add(-time.Nanosecond), want: false},
		{name: "at open", now: opens, want: true},
		{name: "inside", now: opens.Add(time.Hour), want: true},
		{name: "at close", now: closes, want: true},
		{name: "after close", now: closes.Add(time.Nanosecond), want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsOpen(opens, closes, tc.now); got != tc.want {
				t.Fatalf("IsOpen() got=%v want=%v", got, tc.want)
			}
			mw := MatchWeek{PredictionsOpenAt: opens, PredictionsCloseAt: closes}
			if got := mw.IsOpen(tc.now); got != tc.want {
				t.Fatalf("MatchWeek.IsOpen() got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestIsOpenSingleInstant(t *testing.T) {
	at := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	if !IsOpen(at, at, at) {
		t.Fatalf("expected window to be open at its only instant")
	}
	if IsOpen(at, at, at.Add(time.Second)) {
		t.Fatalf("expected window to be closed after its only instant")
	}
}

func TestValidateWindow(t *testing.T) {
	opens := time.Date(2024, 8, 10, 9, 0, 0, 0, time.UTC)
	if err := ValidateWindow(opens, opens.Add(time.Hour)); err != nil {
		t.Fatalf("expected valid window: %v", err)
	}
	if err := ValidateWindow(opens, opens); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for equal bounds, got %v", err)
	}
	if err := ValidateWindow(opens, opens.Add(-time.Hour)); !errors.Is(err, ErrInvalidWindow) {
		t.Fatalf("expected ErrInvalidWindow for reversed bounds, got %v", err)
	}
}
