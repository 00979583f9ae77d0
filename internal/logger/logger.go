package logger

import (
	"context"
	"io"
	"log"
	"os"
	"strings"
)

type runIDKey struct{}

var levels = map[string]int{
	"debug": 0,
	"info":  1,
	"warn":  2,
	"error": 3,
}

type implLogger struct {
	logger *log.Logger
	level  int
}

// New creates a Logger writing to stderr, so stdout stays free for step output
func New(level string) Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter creates a Logger writing to w
func NewWithWriter(level string, w io.Writer) Logger {
	lvl, ok := levels[strings.ToLower(level)]
	if !ok {
		lvl = levels["info"]
	}
	return &implLogger{
		logger: log.New(w, "", log.LstdFlags),
		level:  lvl,
	}
}

// Nop returns a Logger that discards everything
func Nop() Logger {
	return NewWithWriter("error", io.Discard)
}

// WithRunID attaches a run id that is printed with every line logged under ctx
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, runIDKey{}, runID)
}

// RunID returns the run id stored in ctx, if any
func RunID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

func (l *implLogger) shouldLog(level string) bool {
	target, ok := levels[level]
	if !ok {
		return true
	}
	return target >= l.level
}

func (l *implLogger) print(ctx context.Context, tag, msg string, args []interface{}) {
	prefix := "[" + tag + "] "
	if id := RunID(ctx); id != "" {
		prefix += "[run " + id + "] "
	}
	l.logger.Printf(prefix+msg, args...)
}

func (l *implLogger) Debug(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("debug") {
		l.print(ctx, "DEBUG", msg, args)
	}
}

func (l *implLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("info") {
		l.print(ctx, "INFO", msg, args)
	}
}

func (l *implLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("warn") {
		l.print(ctx, "WARN", msg, args)
	}
}

func (l *implLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if l.shouldLog("error") {
		l.print(ctx, "ERROR", msg, args)
	}
}
