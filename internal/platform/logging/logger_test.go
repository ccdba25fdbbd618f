package logging

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestLoggerWritesJSONFields(t *testing.T) {
	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).With("component", "scoring")

	logger.Info("match week scored", "match_week_id", int64(5), "error", errors.New("boom"))
	logger.Debug("hidden")

	out := buf.String()
	for _, want := range []string{`"msg":"match week scored"`, `"component":"scoring"`, `"match_week_id":5`, `"error":"boom"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in output, got %s", want, out)
		}
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level")
	}
}

func TestLoggerMirror(t *testing.T) {
	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
		if len(args) != 4 {
			t.Errorf("expected inherited and call fields, got %v", args)
		}
	})
	t.Cleanup(func() { SetMirror(nil) })

	var buf bytes.Buffer
	logger := New(LevelInfo, &buf).With("component", "http")
	logger.WarnContext(context.Background(), "slow request", "duration_ms", 1200)
	logger.Debug("not mirrored", "k", "v")

	if len(got) != 1 || got[0] != "warn:slow request" {
		t.Fatalf("unexpected mirrored records: %v", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]Level{
		"debug": LevelDebug,
		"":      LevelInfo,
		"WARN":  LevelWarn,
		"error": LevelError,
	}
	for raw, want := range tests {
		got, err := ParseLevel(raw)
		if err != nil {
			t.Fatalf("ParseLevel(%q) error: %v", raw, err)
		}
		if got != want {
			t.Fatalf("ParseLevel(%q) got=%v want=%v", raw, got, want)
		}
	}
	if _, err := ParseLevel("verbose"); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
