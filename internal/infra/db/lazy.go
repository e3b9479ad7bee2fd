package db

import (
	"context"
	"sync"

	"event-bookings/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/singleflight"
)

// ConnectFunc establishes a pool. Injected so the cache can be exercised
// without a live database.
type ConnectFunc func(ctx context.Context) (*pgxpool.Pool, error)

// LazyPool hands back a ready-to-use connection pool, establishing it lazily
// and at most once per process. Concurrent callers that arrive while an
// acquisition is in flight collapse onto the same underlying connect attempt
// and observe the same outcome. A failed attempt leaves no cached pool and no
// in-flight marker, so the next call retries from scratch; the cache itself
// never retries.
type LazyPool struct {
	connect ConnectFunc

	group singleflight.Group

	mu   sync.RWMutex
	pool *pgxpool.Pool
}

// NewLazyPool builds the cache over the standard Connect path.
func NewLazyPool(cfg config.DBConfig) *LazyPool {
	return NewLazyPoolWithConnect(func(ctx context.Context) (*pgxpool.Pool, error) {
		return Connect(ctx, cfg)
	})
}

func NewLazyPoolWithConnect(connect ConnectFunc) *LazyPool {
	return &LazyPool{connect: connect}
}

// Acquire returns the cached pool, or establishes it. Once established the
// same pool is returned for the lifetime of the process; there is no
// invalidation path.
func (l *LazyPool) Acquire(ctx context.Context) (*pgxpool.Pool, error) {
	l.mu.RLock()
	pool := l.pool
	l.mu.RUnlock()
	if pool != nil {
		return pool, nil
	}

	v, err, _ := l.group.Do("connect", func() (any, error) {
		// A flight that finished between the fast path and Do already
		// populated the cache.
		l.mu.RLock()
		cached := l.pool
		l.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		// Detached from the triggering caller: once an acquisition
		// starts it runs to completion, and one canceled request must
		// not fail the outcome shared by every collapsed caller.
		pool, err := l.connect(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}

		l.mu.Lock()
		l.pool = pool
		l.mu.Unlock()
		return pool, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*pgxpool.Pool), nil
}

// Established reports whether a pool is currently cached.
func (l *LazyPool) Established() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.pool != nil
}

// Close releases the cached pool if one was ever established. Shutdown hook
// only; the cache is not designed to be reused afterwards.
func (l *LazyPool) Close() {
	l.mu.Lock()
	pool := l.pool
	l.pool = nil
	l.mu.Unlock()

	if pool != nil {
		pool.Close()
	}
}
