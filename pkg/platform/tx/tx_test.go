package tx

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "lscmis/pkg/domain-errors"
)

func TestLockRunner(t *testing.T) {
	t.Run("propagates callback error", func(t *testing.T) {
		r := NewLockRunner(0)
		want := errors.New("insert failed")
		err := r.RunInTx(context.Background(), func(context.Context) error { return want })
		assert.ErrorIs(t, err, want)
	})

	t.Run("cancelled context aborts before callback", func(t *testing.T) {
		r := NewLockRunner(0)
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		called := false
		err := r.RunInTx(ctx, func(context.Context) error { called = true; return nil })
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeTimeout))
		assert.False(t, called)
	})

	t.Run("applies default deadline", func(t *testing.T) {
		r := NewLockRunner(time.Second)
		err := r.RunInTx(context.Background(), func(ctx context.Context) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("serializes same shard", func(t *testing.T) {
		r := NewLockRunner(0)
		ctx := WithShardKey(context.Background(), "center-1")
		var mu sync.Mutex
		inside, maxInside := 0, 0

		var wg sync.WaitGroup
		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_ = r.RunInTx(ctx, func(context.Context) error {
					mu.Lock()
					inside++
					maxInside = max(maxInside, inside)
					mu.Unlock()
					time.Sleep(time.Millisecond)
					mu.Lock()
					inside--
					mu.Unlock()
					return nil
				})
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, maxInside)
	})
}

func TestFrom_WithoutTx(t *testing.T) {
	_, ok := From(context.Background())
	assert.False(t, ok)
	assert.Equal(t, context.Background(), WithTx(context.Background(), nil))
}
