package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen/mindnotes/internal/platform/logging"
	"github.com/jsamuelsen/mindnotes/internal/platform/telemetry"
)

// Step names one stage of a journal command. Commands run their stages in
// this order and stop at the first failure:
//
//	validate  reject blank text, unknown moods, out-of-range numbers
//	perform   build the new state (a note, a resolved reference, a tally)
//	verify    re-check that state against the current collection
//	persist   hand the verified state to the store
//	respond   shape the result for the caller
//
// Nothing is written before verify succeeds, and callers see a confirmation
// only once persist has returned.
type Step string

const (
	StepValidate Step = "validate"
	StepPerform  Step = "perform"
	StepVerify   Step = "verify"
	StepPersist  Step = "persist"
	StepRespond  Step = "respond"
)

// StepError records the stage a command stopped at.
type StepError struct {
	Step Step
	Err  error
}

func (e *StepError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s step failed", e.Step)
	}

	return fmt.Sprintf("%s step: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// StepOf reports the stage err stopped at, if it came out of Execute.
func StepOf(err error) (Step, bool) {
	var se *StepError
	if !errors.As(err, &se) {
		return "", false
	}

	return se.Step, true
}

func stepFailed(step Step, err error) error {
	return &StepError{Step: step, Err: err}
}

// Executor carries the logger commands fall back to when the context has none.
type Executor struct {
	logger *slog.Logger
}

func NewExecutor(logger *slog.Logger) *Executor {
	if logger == nil {
		logger = slog.Default()
	}

	return &Executor{logger: logger}
}

// Command is one journal operation split into its stages. Any stage may be
// nil. A nil Verify or Respond passes its input through unchanged when the
// types allow it and yields the zero value otherwise.
type Command[I, P, V, O any] struct {
	Name string

	Validate func(ctx context.Context, input I) error
	Perform  func(ctx context.Context, input I) (P, error)
	Verify   func(ctx context.Context, input I, performed P) (V, error)
	Persist  func(ctx context.Context, input I, verified V) error
	Respond  func(ctx context.Context, input I, verified V) (O, error)
}

// Execute runs cmd against input, recording a span and command metrics.
func Execute[I, P, V, O any](ctx context.Context, exec *Executor, cmd Command[I, P, V, O], input I) (out O, err error) {
	log := logging.FromContextOr(ctx, exec.logger).With(slog.String("command", cmd.Name))
	started := time.Now()

	ctx, endSpan := telemetry.StartCommandSpan(ctx, cmd.Name)
	defer func() {
		endSpan(err)
		telemetry.RecordCommand(cmd.Name, outcome(err), time.Since(started))
	}()

	if cmd.Validate != nil {
		if err = cmd.Validate(ctx, input); err != nil {
			log.DebugContext(ctx, "command rejected", slog.Any("error", err))
			return out, stepFailed(StepValidate, err)
		}
	}

	var performed P

	if cmd.Perform != nil {
		if performed, err = cmd.Perform(ctx, input); err != nil {
			log.WarnContext(ctx, "perform failed", slog.Any("error", err))
			return out, stepFailed(StepPerform, err)
		}
	}

	var verified V

	if cmd.Verify != nil {
		if verified, err = cmd.Verify(ctx, input, performed); err != nil {
			log.WarnContext(ctx, "verification failed", slog.Any("error", err))
			return out, stepFailed(StepVerify, err)
		}
	} else {
		verified, _ = any(performed).(V)
	}

	if cmd.Persist != nil {
		if err = cmd.Persist(ctx, input, verified); err != nil {
			log.ErrorContext(ctx, "persist failed", slog.Any("error", err))
			return out, stepFailed(StepPersist, err)
		}

		log.DebugContext(ctx, "state persisted")
	}

	if cmd.Respond != nil {
		if out, err = cmd.Respond(ctx, input, verified); err != nil {
			return out, stepFailed(StepRespond, err)
		}
	} else {
		out, _ = any(verified).(O)
	}

	log.InfoContext(ctx, "command completed", slog.Duration("duration", time.Since(started)))

	return out, nil
}

func outcome(err error) string {
	if err == nil {
		return telemetry.OutcomeSuccess
	}

	if step, _ := StepOf(err); step == StepValidate {
		return telemetry.OutcomeRejected
	}

	return telemetry.OutcomeFailed
}
