package logger

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name  string
		level string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"invalid level", "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if log := New(tt.level); log == nil {
				t.Error("New() returned nil")
			}
		})
	}
}

func TestShouldLog(t *testing.T) {
	tests := []struct {
		name        string
		configLevel string
		logLevel    string
		shouldLog   bool
	}{
		{"debug logs at debug level", "debug", "debug", true},
		{"info logs at debug level", "debug", "info", true},
		{"debug doesn't log at info level", "info", "debug", false},
		{"info logs at info level", "info", "info", true},
		{"error always logs", "debug", "error", true},
		{"invalid config falls back to info", "verbose", "debug", false},
		{"uppercase config accepted", "WARN", "info", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log := New(tt.configLevel).(*implLogger)
			if got := log.shouldLog(tt.logLevel); got != tt.shouldLog {
				t.Errorf("shouldLog() = %v, want %v", got, tt.shouldLog)
			}
		})
	}
}

func TestRunIDPrefix(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("info", &buf)

	ctx := WithRunID(context.Background(), "abc123")
	log.Info(ctx, "transcribing %s", "standup.mp3")

	out := buf.String()
	if !strings.Contains(out, "[INFO] [run abc123] transcribing standup.mp3") {
		t.Errorf("unexpected log line: %q", out)
	}
}

func TestNoRunID(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter("debug", &buf)

	log.Debug(context.Background(), "hello")

	if strings.Contains(buf.String(), "[run") {
		t.Errorf("line without run id should not carry run prefix: %q", buf.String())
	}
	if RunID(context.Background()) != "" {
		t.Error("RunID() on bare context should be empty")
	}
}

func TestNopDiscards(t *testing.T) {
	// Should not panic
	Nop().Error(context.Background(), "dropped %d", 1)
}
