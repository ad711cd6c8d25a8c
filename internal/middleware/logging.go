package middleware

import (
	"context"
	"log/slog"
)

// loggerKey is the key used to store the logger in the context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// WithRunLogger injects a run-scoped logger into the context. The logger is
// enriched with the run ID so every stage line of one run can be correlated.
func WithRunLogger(ctx context.Context, baseLogger *slog.Logger, runID string) (context.Context, *slog.Logger) {
	runLogger := baseLogger.With(slog.String("run_id", runID))
	return context.WithValue(ctx, loggerKey, runLogger), runLogger
}

// GetLoggerFromCtx retrieves the run-scoped logger from the context.
// It returns the default logger if none is found.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return slog.Default()
	}
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok || logger == nil {
		return slog.Default()
	}
	return logger
}
