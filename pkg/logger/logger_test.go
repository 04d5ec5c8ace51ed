package logger

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
)

func newBufferedLogger(buf *bytes.Buffer, warnStack bool) *Logger {
	return New(Options{
		ServiceName: "sail-test",
		Level:       zerolog.DebugLevel,
		WarnStack:   warnStack,
		Output:      buf,
	})
}

func TestContextFieldsSurviveIntoEntries(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newBufferedLogger(buf, false)

	ctx := log.WithRequestID(context.Background(), "req-123")
	ctx = log.WithUserID(ctx, "user-9")
	ctx = log.WithFields(ctx, map[string]any{"grade": "316"})

	log.Error(ctx, "order.create.failed", errors.New("boom"))

	entry := buf.String()
	for _, want := range []string{`"request_id":"req-123"`, `"user_id":"user-9"`, `"grade":"316"`, `"stack"`} {
		if !bytes.Contains(buf.Bytes(), []byte(want)) {
			t.Fatalf("expected %s in entry: %s", want, entry)
		}
	}
}

func TestWarnStackToggle(t *testing.T) {
	buf := &bytes.Buffer{}
	log := newBufferedLogger(buf, true)
	log.Warn(context.Background(), "stock.seed.csv_unavailable")
	if !bytes.Contains(buf.Bytes(), []byte(`"stack"`)) {
		t.Fatalf("expected stack when warn stack enabled: %s", buf.String())
	}

	buf.Reset()
	log = newBufferedLogger(buf, false)
	log.Warn(context.Background(), "stock.seed.csv_unavailable")
	if bytes.Contains(buf.Bytes(), []byte(`"stack"`)) {
		t.Fatalf("expected no stack when warn stack disabled: %s", buf.String())
	}
}

func TestParseLevelFallsBackToInfo(t *testing.T) {
	if lvl := ParseLevel(""); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info for empty value, got %v", lvl)
	}
	if lvl := ParseLevel("not-a-level"); lvl != zerolog.InfoLevel {
		t.Fatalf("expected info for invalid value, got %v", lvl)
	}
	if lvl := ParseLevel("DEBUG"); lvl != zerolog.DebugLevel {
		t.Fatalf("expected parsing to be case insensitive, got %v", lvl)
	}
}
