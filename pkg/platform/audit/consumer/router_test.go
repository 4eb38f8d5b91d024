package consumer

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lscmis/internal/platform/kafka/consumer"
	audit "lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/audit/store/postgres"
)

type dropCount int

func (d *dropCount) IncAuditDropped() { *d++ }

type topicRecorder struct{ topics []string }

func (h *topicRecorder) Handle(_ context.Context, msg *consumer.Message) error {
	h.topics = append(h.topics, msg.Topic)
	return nil
}

func TestRouter(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()
	raw, err := json.Marshal(postgres.Payload{ID: eventID.String(), Event: audit.Event{
		Action:  string(audit.EventCenterProvisioned),
		Subject: "center",
	}})
	require.NoError(t, err)

	t.Run("dispatches registered topic", func(t *testing.T) {
		store := &recordingStore{}
		var dropped dropCount
		r := NewRouter(discard(), nil, WithDropCounter(&dropped)).
			Register("lsc.audit", NewEventHandler(store, discard()))

		require.NoError(t, r.Handle(ctx, &consumer.Message{Topic: "lsc.audit", Key: []byte(eventID.String()), Value: raw}))
		assert.Contains(t, store.events, eventID)
		assert.Zero(t, dropped)
	})

	t.Run("unrouted topic is committed and counted", func(t *testing.T) {
		store := &recordingStore{}
		var dropped dropCount
		r := NewRouter(discard(), nil, WithDropCounter(&dropped)).
			Register("lsc.audit", NewEventHandler(store, discard()))

		require.NoError(t, r.Handle(ctx, &consumer.Message{Topic: "other", Key: []byte("x"), Partition: 2, Offset: 7}))
		assert.Empty(t, store.events)
		assert.Equal(t, dropCount(1), dropped)
	})

	t.Run("fallback takes unrouted topics", func(t *testing.T) {
		fallback := &topicRecorder{}
		var dropped dropCount
		r := NewRouter(discard(), fallback, WithDropCounter(&dropped))

		require.NoError(t, r.Handle(ctx, &consumer.Message{Topic: "other"}))
		assert.Equal(t, []string{"other"}, fallback.topics)
		assert.Zero(t, dropped)
	})

	t.Run("counter is optional", func(t *testing.T) {
		r := NewRouter(discard(), nil)
		require.NoError(t, r.Handle(ctx, &consumer.Message{Topic: "other"}))
	})
}
