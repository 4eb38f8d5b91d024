package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"lscmis/internal/platform/kafka/consumer"
	audit "lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/audit/store/postgres"
)

// EventStore materializes relayed events for querying.
type EventStore interface {
	AppendWithID(ctx context.Context, eventID uuid.UUID, event audit.Event) error
}

// EventHandler writes relayed audit events into the queryable audit table.
// Reconciliation events are additionally logged at error level so they page whoever
// watches the logs.
type EventHandler struct {
	store  EventStore
	logger *slog.Logger
}

func NewEventHandler(store EventStore, logger *slog.Logger) *EventHandler {
	return &EventHandler{store: store, logger: logger}
}

func (h *EventHandler) Handle(ctx context.Context, msg *consumer.Message) error {
	eventID, err := uuid.Parse(string(msg.Key))
	if err != nil {
		h.logger.Error("failed to parse audit event ID",
			"key", string(msg.Key),
			"error", err,
		)
		// malformed messages must not block the partition
		return nil
	}

	var payload postgres.Payload
	if err := json.Unmarshal(msg.Value, &payload); err != nil {
		h.logger.Error("failed to unmarshal audit payload",
			"event_id", eventID,
			"error", err,
		)
		return nil
	}

	event := payload.Event
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	if event.Category == "" {
		event.Category = audit.AuditEvent(event.Action).Category()
	}

	if err := h.store.AppendWithID(ctx, eventID, event); err != nil {
		h.logger.Error("failed to store audit event",
			"event_id", eventID,
			"action", event.Action,
			"error", err,
		)
		return fmt.Errorf("store audit event: %w", err)
	}

	if event.Category == audit.CategoryReconciliation {
		h.logger.ErrorContext(ctx, "reconciliation required",
			"event_id", eventID,
			"action", event.Action,
			"subject", event.Subject,
			"reason", event.Reason,
		)
	}
	return nil
}
