// Package tx carries a SQL transaction through context and provides the transactional
// boundary services use for multi-statement mutations.
package tx

import (
	"context"
	"database/sql"
	"sync"
	"time"

	dErrors "lscmis/pkg/domain-errors"
)

type ctxKey struct{}

var txKey = ctxKey{}

// WithTx stores a SQL transaction in context for downstream store usage.
func WithTx(ctx context.Context, tx *sql.Tx) context.Context {
	if tx == nil {
		return ctx
	}
	return context.WithValue(ctx, txKey, tx)
}

// From extracts a SQL transaction from context if present.
func From(ctx context.Context) (*sql.Tx, bool) {
	tx, ok := ctx.Value(txKey).(*sql.Tx)
	return tx, ok
}

// Runner executes fn inside a transactional boundary. Stores participating in the
// transaction read it back with From.
type Runner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// DefaultTimeout bounds a transaction when the caller has no deadline.
const DefaultTimeout = 5 * time.Second

func withDeadline(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc, error) {
	if err := ctx.Err(); err != nil {
		return ctx, func() {}, dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if _, hasDeadline := ctx.Deadline(); hasDeadline {
		return ctx, func() {}, nil
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	return ctx, cancel, nil
}

// SQLRunner runs fn in a database/sql transaction.
type SQLRunner struct {
	db      *sql.DB
	timeout time.Duration
}

func NewSQLRunner(db *sql.DB, timeout time.Duration) *SQLRunner {
	return &SQLRunner{db: db, timeout: timeout}
}

func (r *SQLRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := From(ctx); ok {
		// already inside a transaction; join it
		return fn(ctx)
	}

	ctx, cancel, err := withDeadline(ctx, r.timeout)
	defer cancel()
	if err != nil {
		return err
	}

	sqlTx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to begin transaction")
	}
	defer func() {
		_ = sqlTx.Rollback()
	}()

	if err := fn(WithTx(ctx, sqlTx)); err != nil {
		return err
	}

	if err := sqlTx.Commit(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeStore, "failed to commit transaction")
	}
	return nil
}

// numShards spreads in-memory transactions over independent locks.
const numShards = 64

type shardKey struct{}

// WithShardKey scopes in-memory transactions to a key such as a center id, so
// unrelated transactions do not serialize on a single lock.
func WithShardKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, shardKey{}, key)
}

// LockRunner is the in-memory Runner. It serializes transactions per shard; it does
// not undo partial writes, so in-memory stores must validate before mutating.
type LockRunner struct {
	shards  [numShards]sync.Mutex
	timeout time.Duration
}

func NewLockRunner(timeout time.Duration) *LockRunner {
	return &LockRunner{timeout: timeout}
}

func (r *LockRunner) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, cancel, err := withDeadline(ctx, r.timeout)
	defer cancel()
	if err != nil {
		return err
	}

	shard := r.selectShard(ctx)
	r.shards[shard].Lock()
	defer r.shards[shard].Unlock()

	if err := ctx.Err(); err != nil {
		return dErrors.Wrap(err, dErrors.CodeTimeout, "transaction aborted: context cancelled")
	}
	return fn(ctx)
}

func (r *LockRunner) selectShard(ctx context.Context) int {
	if key, ok := ctx.Value(shardKey{}).(string); ok && key != "" {
		return int(hashString(key) % numShards)
	}
	return 0
}

// hashString is FNV-1a.
func hashString(s string) uint32 {
	const (
		fnvOffset = 2166136261
		fnvPrime  = 16777619
	)
	h := uint32(fnvOffset)
	for i := 0; i < len(s); i++ {
		h ^= uint32(s[i])
		h *= fnvPrime
	}
	return h
}
