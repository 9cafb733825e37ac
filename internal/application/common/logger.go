package common

import "context"

// PlanLogger provides structured logging for plan calculations
type PlanLogger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Context keys for passing the logger through context
type contextKey int

const (
	loggerKey contextKey = iota
)

// WithLogger adds a logger to the context
func WithLogger(ctx context.Context, logger PlanLogger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// LoggerFromContext extracts the logger from context, or returns a no-op
// logger if not found
func LoggerFromContext(ctx context.Context) PlanLogger {
	if logger, ok := ctx.Value(loggerKey).(PlanLogger); ok {
		return logger
	}
	return &noOpLogger{}
}

type noOpLogger struct{}

func (l *noOpLogger) Log(level, message string, metadata map[string]interface{}) {}
