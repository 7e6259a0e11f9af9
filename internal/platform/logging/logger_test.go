package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":    LevelDebug,
		" WARN ":   LevelWarn,
		"warning":  LevelWarn,
		"error":    LevelError,
		"info":     LevelInfo,
		"":         LevelInfo,
		"verbose?": LevelInfo,
	}
	for raw, want := range cases {
		if got := ParseLevel(raw); got != want {
			t.Fatalf("ParseLevel(%q) = %s, want %s", raw, got, want)
		}
	}
}

func TestLogger_KeyValueFieldsAndService(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := FromZap(zap.New(core)).WithService("matchday-api", "v1")

	logger.Warn("delete team failed", "team_id", int64(3), "error", errors.New("restricted"), "dangling")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["service"] != "matchday-api" || fields["version"] != "v1" {
		t.Fatalf("missing service fields: %+v", fields)
	}
	if fields["team_id"] != int64(3) {
		t.Fatalf("unexpected team_id: %+v", fields["team_id"])
	}
	if fields["error"] != "restricted" {
		t.Fatalf("unexpected error field: %+v", fields["error"])
	}
	if _, ok := fields["dangling"]; !ok {
		t.Fatalf("expected odd trailing key to be kept")
	}
}

func TestLogger_ContextAddsTraceIDs(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	traceID, _ := trace.TraceIDFromHex("0102030405060708090a0b0c0d0e0f10")
	spanID, _ := trace.SpanIDFromHex("0102030405060708")
	ctx := trace.ContextWithSpanContext(context.Background(), trace.NewSpanContext(trace.SpanContextConfig{
		TraceID:    traceID,
		SpanID:     spanID,
		TraceFlags: trace.FlagsSampled,
	}))

	logger.InfoContext(ctx, "http request")
	logger.DebugContext(ctx, "filtered by level")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	fields := entries[0].ContextMap()
	if fields["trace_id"] != traceID.String() || fields["span_id"] != spanID.String() {
		t.Fatalf("unexpected trace fields: %+v", fields)
	}
}

func TestDefault_FallsBackToNop(t *testing.T) {
	SetDefault(nil)
	if Default() == nil {
		t.Fatalf("expected a logger")
	}
	Default().Info("discarded")
}

func TestSetMirror_ReceivesEnabledEntries(t *testing.T) {
	core, _ := observer.New(zapcore.InfoLevel)
	logger := FromZap(zap.New(core))

	var got []string
	SetMirror(func(_ context.Context, level Level, msg string, args ...any) {
		got = append(got, level.String()+":"+msg)
	})
	t.Cleanup(func() { SetMirror(nil) })

	logger.Debug("below level")
	logger.WarnContext(t.Context(), "create team rejected", "error", errors.New("bad"))

	if len(got) != 1 || got[0] != "warn:create team rejected" {
		t.Fatalf("unexpected mirrored entries: %v", got)
	}

	SetMirror(nil)
	logger.Info("after removal")
	if len(got) != 1 {
		t.Fatalf("expected no mirroring after removal, got %v", got)
	}
}

func TestNewJSONWriter_EncodesEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := NewJSONWriter(&buf, LevelInfo).With("service", "matchday-api")

	logger.Debug("dropped")
	logger.Info("team created", "team_id", 7, 42, "orphan")
	if err := logger.Sync(); err != nil {
		t.Fatalf("sync: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d: %q", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("decode entry: %v", err)
	}
	if entry["level"] != "INFO" || entry["msg"] != "team created" || entry["service"] != "matchday-api" {
		t.Fatalf("unexpected entry: %+v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("expected time key: %+v", entry)
	}
	if caller, _ := entry["caller"].(string); !strings.HasPrefix(caller, "logging/logger_test.go") {
		t.Fatalf("expected caller at the call site, got %q", caller)
	}
	if entry["team_id"] != float64(7) || entry["arg_2"] != "orphan" {
		t.Fatalf("unexpected key/value fields: %+v", entry)
	}
}
