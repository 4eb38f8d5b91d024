// Package saga runs ordered steps with compensating actions. When a step fails, the
// compensations of every step that already completed run in reverse order. Compensation
// is best-effort: failures are reported through the rollback hook and never replace the
// error of the step that failed.
package saga

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Step pairs an action with the compensation that undoes it. A nil Compensate means
// the step has nothing to undo.
type Step struct {
	Name       string
	Action     func(ctx context.Context) error
	Compensate func(ctx context.Context) error
}

// RollbackFailure describes a compensation that could not undo its step.
type RollbackFailure struct {
	Saga string
	Step string
	Err  error
	// Cause is the error of the step that triggered the rollback.
	Cause error
}

// Runner executes named sagas.
type Runner struct {
	name              string
	logger            *slog.Logger
	tracer            trace.Tracer
	onRollbackFailure func(ctx context.Context, failure RollbackFailure)
}

type Option func(*Runner)

func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(r *Runner) {
		r.tracer = tracer
	}
}

// OnRollbackFailure registers a hook invoked once per failed compensation.
func OnRollbackFailure(fn func(ctx context.Context, failure RollbackFailure)) Option {
	return func(r *Runner) {
		r.onRollbackFailure = fn
	}
}

func New(name string, opts ...Option) *Runner {
	r := &Runner{
		name:   name,
		logger: slog.Default(),
		tracer: otel.Tracer("lscmis/saga"),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes steps in order and returns the first step error unchanged.
func (r *Runner) Run(ctx context.Context, steps ...Step) error {
	ctx, span := r.tracer.Start(ctx, "saga."+r.name)
	defer span.End()

	for i, step := range steps {
		if err := r.runStep(ctx, step); err != nil {
			span.SetStatus(codes.Error, step.Name)
			span.SetAttributes(attribute.String("saga.failed_step", step.Name))
			r.compensate(ctx, steps[:i], err)
			return err
		}
	}
	return nil
}

func (r *Runner) runStep(ctx context.Context, step Step) error {
	ctx, span := r.tracer.Start(ctx, "saga."+r.name+"."+step.Name)
	defer span.End()

	if err := step.Action(ctx); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "step failed")
		return err
	}
	return nil
}

// compensate undoes completed steps newest first. It runs detached from the caller's
// cancellation so an aborted request still rolls back.
func (r *Runner) compensate(ctx context.Context, completed []Step, cause error) {
	ctx = context.WithoutCancel(ctx)
	for i := len(completed) - 1; i >= 0; i-- {
		step := completed[i]
		if step.Compensate == nil {
			continue
		}

		stepCtx, span := r.tracer.Start(ctx, "saga."+r.name+".compensate."+step.Name)
		err := step.Compensate(stepCtx)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "rollback failed")
		}
		span.End()

		if err == nil {
			continue
		}
		r.logger.ErrorContext(ctx, "rollback failed",
			"saga", r.name,
			"step", step.Name,
			"error", err,
			"cause", cause,
		)
		if r.onRollbackFailure != nil {
			r.onRollbackFailure(ctx, RollbackFailure{Saga: r.name, Step: step.Name, Err: err, Cause: cause})
		}
	}
}
