package publisher

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "lscmis/pkg/domain"
	audit "lscmis/pkg/platform/audit"
	"lscmis/pkg/platform/audit/store/memory"
	"lscmis/pkg/requestcontext"
)

func TestPublisher_SyncMode(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)
	defer pub.Close()

	userID := id.UserID(uuid.New())
	err := pub.Emit(context.Background(), audit.Event{
		UserID: userID,
		Action: string(audit.EventUserCreated),
	})
	require.NoError(t, err)

	events, err := pub.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, string(audit.EventUserCreated), events[0].Action)
	assert.Equal(t, audit.CategoryCompliance, events[0].Category)
}

func TestPublisher_AsyncDrainsOnClose(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(100))

	userID := id.UserID(uuid.New())
	for range 10 {
		err := pub.Emit(context.Background(), audit.Event{
			UserID: userID,
			Action: string(audit.EventCenterProvisioned),
		})
		require.NoError(t, err)
	}

	pub.Close()

	events, err := store.ListByUser(context.Background(), userID)
	require.NoError(t, err)
	assert.Len(t, events, 10, "all events should be drained on close")
}

func TestPublisher_BufferFull_DoesNotBlock(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store, WithAsyncBuffer(1))
	defer pub.Close()

	userID := id.UserID(uuid.New())
	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := pub.Emit(context.Background(), audit.Event{UserID: userID, Action: string(audit.EventUserCreated)})
			if err != nil {
				assert.ErrorIs(t, err, ErrBufferFull)
			}
		}()
	}
	wg.Wait()
}

func TestPublisher_Timestamps(t *testing.T) {
	t.Run("sets missing timestamp", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		pub := NewPublisher(store)
		userID := id.UserID(uuid.New())

		before := time.Now()
		require.NoError(t, pub.Emit(context.Background(), audit.Event{UserID: userID, Action: string(audit.EventUserDeleted)}))
		after := time.Now()

		events, err := pub.List(context.Background(), userID)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.False(t, events[0].Timestamp.Before(before))
		assert.False(t, events[0].Timestamp.After(after))
	})

	t.Run("preserves existing timestamp", func(t *testing.T) {
		store := memory.NewInMemoryStore()
		pub := NewPublisher(store)
		userID := id.UserID(uuid.New())
		custom := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

		require.NoError(t, pub.Emit(context.Background(), audit.Event{UserID: userID, Action: string(audit.EventUserDeleted), Timestamp: custom}))

		events, err := pub.List(context.Background(), userID)
		require.NoError(t, err)
		assert.Equal(t, custom, events[0].Timestamp)
	})
}

func TestPublisher_EnrichesFromRequestContext(t *testing.T) {
	store := memory.NewInMemoryStore()
	pub := NewPublisher(store)

	actor := id.UserID(uuid.New())
	ctx := requestcontext.WithRequestID(context.Background(), "req-7")
	ctx = requestcontext.WithUserID(ctx, actor)
	ctx = requestcontext.WithClientMetadata(ctx, "10.0.0.9", "Firefox 120 (Linux)")

	require.NoError(t, pub.Emit(ctx, audit.Event{Action: string(audit.EventRollbackFailed), Subject: "center"}))

	events, err := store.ListByAction(ctx, audit.EventRollbackFailed)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "req-7", events[0].RequestID)
	assert.Equal(t, actor.String(), events[0].ActorID)
	assert.Equal(t, "10.0.0.9", events[0].ClientIP)
	assert.Equal(t, audit.CategoryReconciliation, events[0].Category)
}
