package common

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
)

// IntentLogger records intent handling for the wizard's verbose mode.
type IntentLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger IntentLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if none was installed.
func LoggerFromContext(ctx context.Context) IntentLogger {
	if logger, ok := ctx.Value(loggerKey).(IntentLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}

// stdLogger writes to the process log with sorted key=value metadata.
type stdLogger struct{}

// NewStdLogger returns a logger backed by the standard library log package.
func NewStdLogger() IntentLogger {
	return &stdLogger{}
}

func (l *stdLogger) Log(level, message string, metadata map[string]interface{}) {
	if len(metadata) == 0 {
		log.Printf("[%s] %s", level, message)
		return
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, metadata[k]))
	}
	log.Printf("[%s] %s %s", level, message, strings.Join(parts, " "))
}
