package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// StageFunc is a pipeline stage producing a value.
type StageFunc[T any] func(ctx context.Context) (T, error)

// StageValue runs fn as the named stage. It logs "Calling <name> ..." before
// delegating and "Finished <name>." after a successful return. A returned
// error or a panic is logged with the stage name and then handed back
// to the caller untouched.
func StageValue[T any](ctx context.Context, name string, fn StageFunc[T]) (result T, err error) {
	logger := GetLoggerFromCtx(ctx)
	begin := time.Now()

	logger.Info(fmt.Sprintf("Calling %s ...", name))

	defer func() {
		if r := recover(); r != nil {
			logger.Error(fmt.Sprintf("Exception raised in %s. exception: %v.", name, r),
				slog.Duration("took", time.Since(begin)))
			panic(r)
		}
	}()

	result, err = fn(ctx)
	if err != nil {
		logger.Error(fmt.Sprintf("Exception raised in %s. exception: %s.", name, err.Error()),
			slog.Duration("took", time.Since(begin)))
		return result, err
	}

	logger.Info(fmt.Sprintf("Finished %s.", name), slog.Duration("took", time.Since(begin)))
	return result, nil
}

// Stage is StageValue for stages that only report an error.
func Stage(ctx context.Context, name string, fn func(ctx context.Context) error) error {
	_, err := StageValue(ctx, name, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, fn(ctx)
	})
	return err
}
