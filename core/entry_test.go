package core

import (
	"errors"
	"strings"
	"testing"
)

func TestLevel_String(t *testing.T) {
	tests := []struct {
		level Level
		want  string
	}{
		{TraceLevel, "TRACE"},
		{DebugLevel, "DEBUG"},
		{InfoLevel, "INFO"},
		{WarnLevel, "WARN"},
		{ErrorLevel, "ERROR"},
		{FatalLevel, "FATAL"},
		{PanicLevel, "PANIC"},
		{Level(42), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.level.String(); got != tt.want {
				t.Errorf("Level.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLevel_Enabled(t *testing.T) {
	tests := []struct {
		event     Level
		threshold Level
		want      bool
	}{
		{DebugLevel, InfoLevel, false},
		{TraceLevel, InfoLevel, false},
		{InfoLevel, InfoLevel, true},
		{WarnLevel, InfoLevel, true},
		{ErrorLevel, InfoLevel, true},
		{InfoLevel, ErrorLevel, false},
		{TraceLevel, TraceLevel, true},
	}

	for _, tt := range tests {
		t.Run(tt.event.String()+"/"+tt.threshold.String(), func(t *testing.T) {
			if got := tt.event.Enabled(tt.threshold); got != tt.want {
				t.Errorf("%v.Enabled(%v) = %v, want %v", tt.event, tt.threshold, got, tt.want)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", TraceLevel},
		{"DEBUG", DebugLevel},
		{"Info", InfoLevel},
		{"warning", WarnLevel},
		{" error ", ErrorLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if err != nil {
				t.Fatalf("ParseLevel(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	if _, err := ParseLevel("verbose"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("ParseLevel(verbose) error = %v, want ErrUnknownLevel", err)
	}
}

func TestLevel_UnmarshalText(t *testing.T) {
	var l Level
	if err := l.UnmarshalText([]byte("warn")); err != nil {
		t.Fatalf("UnmarshalText() error = %v", err)
	}
	if l != WarnLevel {
		t.Errorf("UnmarshalText() = %v, want WARN", l)
	}
	text, _ := l.MarshalText()
	if string(text) != "WARN" {
		t.Errorf("MarshalText() = %q, want WARN", text)
	}
}

func TestCallerAt(t *testing.T) {
	caller := CallerAt(0)
	if !caller.Defined() {
		t.Fatal("CallerAt(0) returned an undefined Caller")
	}
	if caller.File != "entry_test.go" {
		t.Errorf("File = %q, want entry_test.go", caller.File)
	}
	if !strings.HasPrefix(caller.String(), "entry_test.go:") {
		t.Errorf("String() = %q, want entry_test.go:<line>", caller.String())
	}
}

func TestCaller_Zero(t *testing.T) {
	var c Caller
	if c.Defined() || c.String() != "" {
		t.Errorf("zero Caller: Defined() = %v, String() = %q", c.Defined(), c.String())
	}
}
