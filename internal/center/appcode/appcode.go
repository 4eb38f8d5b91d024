// Package appcode draws the numeric application codes handed to self-registered centers.
package appcode

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"strconv"

	"lscmis/internal/platform/config"
	dErrors "lscmis/pkg/domain-errors"
	"lscmis/pkg/platform/sentinel"
)

// Lookup reports whether a code is already held by a center.
type Lookup interface {
	ExistsCode(ctx context.Context, code string) (bool, error)
}

// Reserver claims a candidate for a short time so concurrent submitters on other
// replicas skip it. Reserve reports false when someone else holds the candidate.
type Reserver interface {
	Reserve(ctx context.Context, code string) (bool, error)
}

// Observer is told about every attempt.
type Observer interface {
	IncCodeAttempt(outcome string)
}

const (
	OutcomeAccepted  = "accepted"
	OutcomeExists    = "exists"
	OutcomeReserved  = "reserved"
	OutcomeCollision = "collision"
)

// Generator draws codes in [Min+offset, Min+Span+offset) and retries on collision up
// to MaxAttempts times.
type Generator struct {
	cfg      config.AppCodeConfig
	lookup   Lookup
	reserver Reserver
	observer Observer
	logger   *slog.Logger
	intN     func(n int) int
}

type Option func(*Generator)

func WithReserver(r Reserver) Option {
	return func(g *Generator) {
		g.reserver = r
	}
}

func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

// WithRand replaces the random source. intN must return a value in [0, n).
func WithRand(intN func(n int) int) Option {
	return func(g *Generator) {
		g.intN = intN
	}
}

func New(cfg config.AppCodeConfig, lookup Lookup, opts ...Option) *Generator {
	g := &Generator{cfg: cfg, lookup: lookup, intN: rand.IntN}
	for _, opt := range opts {
		opt(g)
	}
	if g.cfg.Span <= 0 {
		g.cfg.Span = 1
	}
	if g.cfg.MaxAttempts <= 0 {
		g.cfg.MaxAttempts = 1
	}
	if g.logger == nil {
		g.logger = slog.Default()
	}
	return g
}

// Generate draws candidates and hands each free one to claim. claim persists the
// code; returning sentinel.ErrAlreadyUsed marks a store-level collision and costs an
// attempt, any other error aborts. offset is added to every draw (the center count).
func (g *Generator) Generate(ctx context.Context, offset int, claim func(ctx context.Context, code string) error) (string, error) {
	for attempt := 1; attempt <= g.cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeTimeout, "code generation cancelled")
		}
		code := strconv.Itoa(g.cfg.Min + g.intN(g.cfg.Span) + offset)

		exists, err := g.lookup.ExistsCode(ctx, code)
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeStore, "failed to check application code")
		}
		if exists {
			g.observe(OutcomeExists)
			continue
		}

		if g.reserver != nil {
			reserved, err := g.reserver.Reserve(ctx, code)
			if err != nil {
				return "", dErrors.Wrap(err, dErrors.CodeStore, "failed to reserve application code")
			}
			if !reserved {
				g.observe(OutcomeReserved)
				continue
			}
		}

		if err := claim(ctx, code); err != nil {
			if errors.Is(err, sentinel.ErrAlreadyUsed) {
				g.observe(OutcomeCollision)
				g.logger.WarnContext(ctx, "application code collided on insert", "attempt", attempt)
				continue
			}
			return "", err
		}
		g.observe(OutcomeAccepted)
		return code, nil
	}
	return "", dErrors.New(dErrors.CodeCodeGeneration, "could not generate a unique application code")
}

func (g *Generator) observe(outcome string) {
	if g.observer != nil {
		g.observer.IncCodeAttempt(outcome)
	}
}
