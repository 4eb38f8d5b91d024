// Package publisher emits audit events to a Store, synchronously or through a bounded buffer.
package publisher

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	id "lscmis/pkg/domain"
	audit "lscmis/pkg/platform/audit"
	"lscmis/pkg/requestcontext"
)

// ErrBufferFull is returned by Emit in async mode when the buffer cannot accept the event.
var ErrBufferFull = errors.New("audit buffer full")

// Lister is implemented by stores that can be read back, used for admin views and tests.
type Lister interface {
	ListByUser(ctx context.Context, userID id.UserID) ([]audit.Event, error)
}

// Metrics receives publisher counters.
type Metrics interface {
	IncAuditEmitted(category string)
	IncAuditDropped()
}

type Publisher struct {
	store   audit.Store
	logger  *slog.Logger
	metrics Metrics

	buffer  chan audit.Event
	wg      sync.WaitGroup
	closeMu sync.Once
}

type Option func(*Publisher)

// WithAsyncBuffer decouples Emit from the store with a buffer of the given size.
// A full buffer drops the event and returns ErrBufferFull.
func WithAsyncBuffer(size int) Option {
	return func(p *Publisher) {
		if size > 0 {
			p.buffer = make(chan audit.Event, size)
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(p *Publisher) {
		p.logger = logger
	}
}

func WithMetrics(m Metrics) Option {
	return func(p *Publisher) {
		p.metrics = m
	}
}

func NewPublisher(store audit.Store, opts ...Option) *Publisher {
	p := &Publisher{store: store}
	for _, opt := range opts {
		opt(p)
	}
	if p.buffer != nil {
		p.wg.Add(1)
		go p.drain()
	}
	return p
}

// Emit enriches the event with request metadata and stores it.
func (p *Publisher) Emit(ctx context.Context, event audit.Event) error {
	event = enrich(ctx, event)

	if p.buffer == nil {
		return p.persist(ctx, event)
	}

	select {
	case p.buffer <- event:
		return nil
	default:
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.metrics != nil {
		p.metrics.IncAuditDropped()
	}
	if p.logger != nil {
		p.logger.WarnContext(ctx, "audit event dropped", "action", event.Action, "subject", event.Subject)
	}
	return ErrBufferFull
}

// List reads events for a user back from the store when it supports reads.
func (p *Publisher) List(ctx context.Context, userID id.UserID) ([]audit.Event, error) {
	lister, ok := p.store.(Lister)
	if !ok {
		return nil, errors.New("audit store is write-only")
	}
	return lister.ListByUser(ctx, userID)
}

// Close stops accepting events and drains the buffer.
func (p *Publisher) Close() {
	p.closeMu.Do(func() {
		if p.buffer != nil {
			close(p.buffer)
			p.wg.Wait()
		}
	})
}

func (p *Publisher) drain() {
	defer p.wg.Done()
	for event := range p.buffer {
		_ = p.persist(context.Background(), event)
	}
}

func (p *Publisher) persist(ctx context.Context, event audit.Event) error {
	if err := p.store.Append(ctx, event); err != nil {
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "audit persistence failed",
				"action", event.Action,
				"subject", event.Subject,
				"error", err,
			)
		}
		return err
	}
	if p.metrics != nil {
		p.metrics.IncAuditEmitted(string(event.Category))
	}
	return nil
}

func enrich(ctx context.Context, event audit.Event) audit.Event {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}
	if event.RequestID == "" {
		event.RequestID = requestcontext.RequestID(ctx)
	}
	if event.ActorID == "" {
		if actor := requestcontext.UserID(ctx); !actor.IsNil() {
			event.ActorID = actor.String()
		}
	}
	if event.ClientIP == "" {
		event.ClientIP = requestcontext.ClientIP(ctx)
	}
	if event.UserAgent == "" {
		event.UserAgent = requestcontext.UserAgent(ctx)
	}
	return event
}
