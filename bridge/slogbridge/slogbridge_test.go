package slogbridge

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/logger"
)

type recordingWriter struct {
	mu    sync.Mutex
	lines []string
}

func (w *recordingWriter) Push(msg string) error {
	w.mu.Lock()
	w.lines = append(w.lines, msg)
	w.mu.Unlock()
	return nil
}

func (w *recordingWriter) Close() error { return nil }

func (w *recordingWriter) Lines() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.lines...)
}

func newLogger(t *testing.T, level core.Level) (*logger.Logger, *recordingWriter) {
	t.Helper()
	w := &recordingWriter{}
	l, err := logger.NewBuilder().WithWriter(w).WithLevel(level).Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	return l, w
}

func TestLevelToCore(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want core.Level
	}{
		{LevelTrace, core.TraceLevel},
		{slog.LevelDebug, core.DebugLevel},
		{slog.LevelInfo, core.InfoLevel},
		{slog.LevelInfo + 2, core.InfoLevel},
		{slog.LevelWarn, core.WarnLevel},
		{slog.LevelError, core.ErrorLevel},
		{slog.LevelError + 4, core.ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			if got := LevelToCore(tt.in); got != tt.want {
				t.Errorf("LevelToCore(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestHandler_Filtering(t *testing.T) {
	l, w := newLogger(t, core.InfoLevel)
	sl := slog.New(NewHandler(l))

	sl.Debug("hidden")
	sl.Info("hello", "user", "alice", "n", 3)

	lines := w.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), lines)
	}
	if !strings.HasPrefix(lines[0], "INFO [") || !strings.HasSuffix(lines[0], "] hello user=alice n=3\n") {
		t.Errorf("line = %q", lines[0])
	}
}

func TestHandler_AttrsAndGroups(t *testing.T) {
	l, w := newLogger(t, core.DebugLevel)
	sl := slog.New(NewHandler(l)).
		With("app", "api").
		WithGroup("req").
		With("id", 7)

	sl.Warn("slow",
		slog.Duration("took", 1500*time.Millisecond),
		slog.Group("db", slog.String("table", "users")),
		slog.Bool("cached", false),
	)

	lines := w.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	want := "] slow app=api req.id=7 req.took=1.5s req.db.table=users req.cached=false\n"
	if !strings.HasSuffix(lines[0], want) {
		t.Errorf("line = %q, want suffix %q", lines[0], want)
	}
}

func TestHandler_KeepsRecordTime(t *testing.T) {
	l, w := newLogger(t, core.InfoLevel)
	h := NewHandler(l)

	at := time.Date(2025, 3, 4, 5, 6, 7, 0, time.UTC)
	rec := slog.NewRecord(at, slog.LevelError, "stamped", 0)
	if err := h.Handle(context.Background(), rec); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if lines := w.Lines(); len(lines) != 1 || lines[0] != "ERROR [2025-03-04T05:06:07Z] stamped\n" {
		t.Errorf("lines = %q", lines)
	}
}

func TestInstall(t *testing.T) {
	prev := slog.Default()
	defer slog.SetDefault(prev)

	l, w := newLogger(t, core.InfoLevel)
	Install(l)

	slog.Info("through default")
	if lines := w.Lines(); len(lines) != 1 || !strings.HasSuffix(lines[0], "] through default\n") {
		t.Errorf("lines = %q", lines)
	}
}
