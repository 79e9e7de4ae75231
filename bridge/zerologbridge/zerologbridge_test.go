package zerologbridge

import (
	"strings"
	"sync"
	"testing"

	"github.com/rs/zerolog"

	"github.com/philipp01105/udplog/core"
	"github.com/philipp01105/udplog/formatter"
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

func TestLevelRoundTrip(t *testing.T) {
	for _, lvl := range []core.Level{
		core.TraceLevel, core.DebugLevel, core.InfoLevel, core.WarnLevel,
		core.ErrorLevel, core.FatalLevel, core.PanicLevel,
	} {
		if got := LevelToCore(LevelFromCore(lvl)); got != lvl {
			t.Errorf("LevelToCore(LevelFromCore(%v)) = %v", lvl, got)
		}
	}
	if got := LevelToCore(zerolog.NoLevel); got != core.InfoLevel {
		t.Errorf("LevelToCore(NoLevel) = %v, want INFO", got)
	}
}

func TestWriter_Fields(t *testing.T) {
	l, w := newLogger(t, core.InfoLevel)
	zl := zerolog.New(NewWriter(l)).With().Str("svc", "api").Logger()

	zl.Info().Int("status", 200).Bool("cached", true).Msg("handled")

	lines := w.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	if !strings.HasPrefix(lines[0], "INFO [") {
		t.Errorf("line = %q, want INFO prefix", lines[0])
	}
	want := "] handled cached=true status=200 svc=api\n"
	if !strings.HasSuffix(lines[0], want) {
		t.Errorf("line = %q, want suffix %q", lines[0], want)
	}
}

func TestWriter_KeepsEventTime(t *testing.T) {
	l, w := newLogger(t, core.InfoLevel)
	nw := NewWriter(l)

	event := `{"level":"warn","time":"2026-01-15T12:00:00Z","message":"late"}`
	if _, err := nw.WriteLevel(zerolog.WarnLevel, []byte(event+"\n")); err != nil {
		t.Fatalf("WriteLevel() error = %v", err)
	}
	want := "WARN [2026-01-15T12:00:00Z] late\n"
	if got := w.Lines(); len(got) != 1 || got[0] != want {
		t.Errorf("lines = %q, want [%q]", got, want)
	}
}

func TestWriter_Filtering(t *testing.T) {
	l, w := newLogger(t, core.ErrorLevel)
	nw := NewWriter(l)

	if n, err := nw.WriteLevel(zerolog.InfoLevel, []byte("not json")); err != nil || n != 8 {
		t.Errorf("filtered WriteLevel() = %d, %v; want 8, nil", n, err)
	}
	if len(w.Lines()) != 0 {
		t.Error("filtered event was emitted")
	}
}

func TestWriter_InvalidJSON(t *testing.T) {
	l, _ := newLogger(t, core.InfoLevel)
	if _, err := NewWriter(l).Write([]byte("{broken")); err == nil {
		t.Error("Write() with invalid JSON returned nil error")
	}
}

func TestNew_UsesLoggerLevel(t *testing.T) {
	l, w := newLogger(t, core.WarnLevel)
	zl := New(l)

	zl.Info().Msg("dropped")
	zl.Warn().Msg("kept")

	lines := w.Lines()
	if len(lines) != 1 || !strings.HasSuffix(lines[0], "] kept\n") {
		t.Errorf("lines = %q", lines)
	}
}

func TestWriter_NumbersStayNumeric(t *testing.T) {
	w := &recordingWriter{}
	l, err := logger.NewBuilder().
		WithWriter(w).
		WithFormatter(formatter.NewJSONFormatter(formatter.Config{})).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	zl := zerolog.New(NewWriter(l))
	zl.Info().Int("status", 200).Float64("ratio", 0.5).Str("id", "7").Msg("m")

	lines := w.Lines()
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1", len(lines))
	}
	want := `"fields":{"id":"7","ratio":0.5,"status":200}`
	if !strings.Contains(lines[0], want) {
		t.Errorf("line = %q, want %s", lines[0], want)
	}
}
