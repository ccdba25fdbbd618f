package fixturefeed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/platform/logging"
	"github.com/riskibarqy/prediction-league/internal/platform/resilience"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, maxRetries int, breaker resilience.CircuitBreakerConfig) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(ClientConfig{
		BaseURL:        server.URL,
		Token:          "secret-token",
		Timeout:        2 * time.Second,
		MaxRetries:     maxRetries,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
	client.backoff = func(int) time.Duration { return time.Millisecond }
	return client
}

func TestClient_FetchUpcoming_DecodesEnvelope(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != upcomingPath {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret-token" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"data":[
			{"home_team":"Manchester United","away_team":"Arsenal","match_datetime":"2024-08-10T14:00:00+01:00"},
			{"home_team":"Chelsea","away_team":"Liverpool","match_datetime":"2024-08-10 16:30:00"},
			{"home_team":"","away_team":"Everton","match_datetime":"2024-08-10T14:00:00Z"},
			{"home_team":"Fulham","away_team":"Brentford","match_datetime":"soon"}
		]}`))
	}, 0, resilience.CircuitBreakerConfig{})

	got, err := client.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("fetch upcoming: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected fixture count: got=%d want=2", len(got))
	}
	if got[0].HomeTeam != "Manchester United" || got[0].AwayTeam != "Arsenal" {
		t.Fatalf("unexpected first fixture: %+v", got[0])
	}
	wantKickoff := time.Date(2024, 8, 10, 13, 0, 0, 0, time.UTC)
	if !got[0].KickoffAt.Equal(wantKickoff) {
		t.Fatalf("unexpected kickoff: got=%s want=%s", got[0].KickoffAt, wantKickoff)
	}
	if !got[1].KickoffAt.Equal(time.Date(2024, 8, 10, 16, 30, 0, 0, time.UTC)) {
		t.Fatalf("unexpected second kickoff: %s", got[1].KickoffAt)
	}
}

func TestClient_FetchUpcoming_EmptyPayloads(t *testing.T) {
	t.Parallel()

	for _, body := range []string{``, `null`, `[]`, `{"data":[]}`, `{}`} {
		body := body
		client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(body))
		}, 0, resilience.CircuitBreakerConfig{})

		got, err := client.FetchUpcoming(context.Background())
		if err != nil {
			t.Fatalf("fetch upcoming with body %q: %v", body, err)
		}
		if len(got) != 0 {
			t.Fatalf("expected no fixtures for body %q, got %d", body, len(got))
		}
	}
}

func TestClient_FetchUpcoming_RetriesTransientStatus(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`[{"home_team":"Chelsea","away_team":"Liverpool","match_datetime":"2024-08-10T16:30:00Z"}]`))
	}, 2, resilience.CircuitBreakerConfig{})

	got, err := client.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("fetch upcoming: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("unexpected fixture count: got=%d want=1", len(got))
	}
	if calls.Load() != 2 {
		t.Fatalf("unexpected call count: got=%d want=2", calls.Load())
	}
}

func TestClient_FetchUpcoming_DoesNotRetryClientError(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}, 3, resilience.CircuitBreakerConfig{})

	_, err := client.FetchUpcoming(context.Background())
	if err == nil {
		t.Fatalf("expected error for unauthorized response")
	}
	if isTransient(err) {
		t.Fatalf("client error must not be marked transient: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("unexpected call count: got=%d want=1", calls.Load())
	}
}

func TestClient_FetchUpcoming_OpensCircuitAfterTransientFailures(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}, 0, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		_, err := client.FetchUpcoming(context.Background())
		if !isTransient(err) {
			t.Fatalf("expected transient error on attempt %d, got %v", i+1, err)
		}
	}

	_, err := client.FetchUpcoming(context.Background())
	if !errors.Is(err, resilience.ErrCircuitOpen) {
		t.Fatalf("expected ErrCircuitOpen, got %v", err)
	}
	if calls.Load() != 2 {
		t.Fatalf("open circuit must not reach the provider: calls=%d", calls.Load())
	}
}

func TestStaticFeed_FetchUpcoming(t *testing.T) {
	t.Parallel()

	now := time.Date(2024, 8, 1, 9, 30, 45, 0, time.UTC)
	feed := &StaticFeed{now: func() time.Time { return now }}

	got, err := feed.FetchUpcoming(context.Background())
	if err != nil {
		t.Fatalf("fetch upcoming: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("unexpected fixture count: got=%d want=2", len(got))
	}
	first := time.Date(2024, 8, 8, 9, 30, 0, 0, time.UTC)
	if !got[0].KickoffAt.Equal(first) || !got[1].KickoffAt.Equal(first.Add(2*time.Hour)) {
		t.Fatalf("unexpected kickoffs: %s %s", got[0].KickoffAt, got[1].KickoffAt)
	}
}
