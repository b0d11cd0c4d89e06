package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/quotations-service/internal/domain"
	"github.com/jsamuelsen/quotations-service/internal/platform/logging"
)

// Stage names one step of an Operation.
type Stage string

// Stages run in this order. Nothing is written before StagePersist, and StageRespond only
// runs once the write has committed.
const (
	StageValidate Stage = "validate"
	StageLoad     Stage = "load"
	StageApply    Stage = "apply"
	StagePersist  Stage = "persist"
	StageRespond  Stage = "respond"
)

// StageError records which stage of which operation failed. It unwraps to the cause, so
// domain.IsNotFound and friends keep working on returned errors.
type StageError struct {
	Operation string
	Stage     Stage
	Err       error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s: %s: %v", e.Operation, e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

// FailedStage reports the stage an error came from, if it came from Execute.
func FailedStage(err error) (Stage, bool) {
	var se *StageError
	if errors.As(err, &se) {
		return se.Stage, true
	}

	return "", false
}

// Operation describes a write use case as five stages over an input I, a working state S
// and a result O. Nil stages are skipped; a nil Respond yields the zero O.
type Operation[I, S, O any] struct {
	Name     string
	Validate func(ctx context.Context, in I) error
	Load     func(ctx context.Context, in I) (S, error)
	Apply    func(ctx context.Context, in I, state S) error
	Persist  func(ctx context.Context, in I, state S) error
	Respond  func(ctx context.Context, in I, state S) (O, error)
}

// Execute runs op against in, logging each failed stage and the total duration on success.
func Execute[I, S, O any](ctx context.Context, op Operation[I, S, O], in I) (O, error) {
	var (
		zero  O
		state S
	)

	logger := logging.FromContext(ctx).With(slog.String("operation", op.Name))
	start := time.Now()

	fail := func(stage Stage, err error) (O, error) {
		level := slog.LevelError
		if isCallerError(err) {
			level = slog.LevelWarn
		}
		logger.Log(ctx, level, "operation failed",
			slog.String("stage", string(stage)),
			slog.Any("error", err),
		)

		return zero, &StageError{Operation: op.Name, Stage: stage, Err: err}
	}

	if op.Validate != nil {
		if err := op.Validate(ctx, in); err != nil {
			return fail(StageValidate, err)
		}
	}

	if op.Load != nil {
		loaded, err := op.Load(ctx, in)
		if err != nil {
			return fail(StageLoad, err)
		}
		state = loaded
	}

	if op.Apply != nil {
		if err := op.Apply(ctx, in, state); err != nil {
			return fail(StageApply, err)
		}
	}

	if op.Persist != nil {
		if err := op.Persist(ctx, in, state); err != nil {
			return fail(StagePersist, err)
		}
	}

	out := zero
	if op.Respond != nil {
		var err error
		if out, err = op.Respond(ctx, in, state); err != nil {
			return fail(StageRespond, err)
		}
	}

	logger.DebugContext(ctx, "operation completed", slog.Duration("duration", time.Since(start)))

	return out, nil
}

// isCallerError reports failures caused by the request rather than the service.
func isCallerError(err error) bool {
	return domain.IsValidation(err) || domain.IsNotFound(err) ||
		domain.IsInvalidState(err) || domain.IsForbidden(err) || domain.IsConflict(err)
}
