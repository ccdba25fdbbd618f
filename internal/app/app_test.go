package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/riskibarqy/prediction-league/internal/config"
	"github.com/riskibarqy/prediction-league/internal/domain/scoring"
	"github.com/riskibarqy/prediction-league/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:             config.EnvDev,
		ServiceName:        "prediction-league-api",
		HTTPAddr:           ":0",
		ReadTimeout:        time.Second,
		WriteTimeout:       time.Second,
		CORSAllowedOrigins: []string{"*"},
		StoreDriver:        config.StoreMemory,
		CacheEnabled:       true,
		CacheTTL:           time.Minute,
		ScoringRules:       scoring.DefaultRules(),
		ScoringBatchSize:   100,
		ScoringWorkers:     2,
	}
}

func TestNewHTTPServer_Memory(t *testing.T) {
	srv, closeFn, err := NewHTTPServer(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new http server: %v", err)
	}
	defer func() {
		if err := closeFn(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}()

	rec := httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected healthz 200, got %d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/v1/weeks", nil)
	req.Header.Set("X-Auth-Subject", "sub-1")
	req.Header.Set("X-Auth-Email", "player@example.com")
	rec = httptest.NewRecorder()
	srv.Handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected weeks 200, got %d body %s", rec.Code, rec.Body.String())
	}
}

func TestNewHTTPServer_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""

	if _, _, err := NewHTTPServer(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}
