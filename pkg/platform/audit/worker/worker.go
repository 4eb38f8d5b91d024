package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lscmis/internal/platform/kafka"
	"lscmis/pkg/platform/audit/store/postgres"
	"lscmis/pkg/platform/tx"
)

// Outbox is the relay's view of the audit outbox table.
type Outbox interface {
	FetchPending(ctx context.Context, limit int) ([]postgres.OutboxEntry, error)
	MarkPublished(ctx context.Context, ids []uuid.UUID) error
}

// Producer publishes relayed entries.
type Producer interface {
	Publish(ctx context.Context, msgs ...kafka.Message) error
}

// Relay moves outbox rows to Kafka. Each batch is fetched, published and marked inside
// one transaction, so a failed publish leaves the rows pending for the next tick.
type Relay struct {
	outbox   Outbox
	producer Producer
	runner   tx.Runner
	logger   *slog.Logger
	interval time.Duration
	batch    int
}

func NewRelay(outbox Outbox, producer Producer, runner tx.Runner, logger *slog.Logger) *Relay {
	return &Relay{
		outbox:   outbox,
		producer: producer,
		runner:   runner,
		logger:   logger,
		interval: time.Second,
		batch:    100,
	}
}

// Run relays until ctx is cancelled.
func (r *Relay) Run(ctx context.Context) error {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			n, err := r.RelayOnce(ctx)
			if err != nil {
				r.logger.WarnContext(ctx, "outbox relay failed", "error", err)
				continue
			}
			if n > 0 {
				r.logger.DebugContext(ctx, "outbox relayed", "count", n)
			}
		}
	}
}

// RelayOnce publishes one batch and reports how many entries were relayed.
func (r *Relay) RelayOnce(ctx context.Context) (int, error) {
	var relayed int
	err := r.runner.RunInTx(ctx, func(ctx context.Context) error {
		entries, err := r.outbox.FetchPending(ctx, r.batch)
		if err != nil || len(entries) == 0 {
			return err
		}
		msgs := make([]kafka.Message, 0, len(entries))
		ids := make([]uuid.UUID, 0, len(entries))
		for _, e := range entries {
			msgs = append(msgs, kafka.Message{
				Key:     []byte(e.EventID.String()),
				Value:   e.Payload,
				Headers: map[string]string{"event_type": e.EventType},
			})
			ids = append(ids, e.ID)
		}
		if err := r.producer.Publish(ctx, msgs...); err != nil {
			return err
		}
		if err := r.outbox.MarkPublished(ctx, ids); err != nil {
			return err
		}
		relayed = len(entries)
		return nil
	})
	return relayed, err
}
