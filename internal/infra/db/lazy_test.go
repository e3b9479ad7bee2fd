//go:build unit

package db_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"event-bookings/internal/infra/db"
	"event-bookings/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLazyPool_ConcurrentCallersCollapse(t *testing.T) {
	ctx := context.Background()

	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})
	sharedPool := &pgxpool.Pool{}

	lazy := db.NewLazyPoolWithConnect(func(_ context.Context) (*pgxpool.Pool, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(entered)
		}
		<-release
		return sharedPool, nil
	})

	const callers = 5
	results := make(chan *pgxpool.Pool, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			pool, err := lazy.Acquire(ctx)
			assert.NoError(t, err)
			results <- pool
		}()
	}

	// Let the first attempt start, give the rest a moment to pile on,
	// then let the single connect finish.
	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(results)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent callers must share one connect attempt")
	for pool := range results {
		assert.Same(t, sharedPool, pool, "all callers must resolve to the same pool")
	}
}

func TestLazyPool_CachedPoolReused(t *testing.T) {
	ctx := context.Background()

	var calls int32
	sharedPool := &pgxpool.Pool{}
	lazy := db.NewLazyPoolWithConnect(func(_ context.Context) (*pgxpool.Pool, error) {
		atomic.AddInt32(&calls, 1)
		return sharedPool, nil
	})

	first, err := lazy.Acquire(ctx)
	require.NoError(t, err)
	second, err := lazy.Acquire(ctx)
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "a cached pool must not trigger a new attempt")
	assert.True(t, lazy.Established())
}

func TestLazyPool_FailureResetsAndRetries(t *testing.T) {
	ctx := context.Background()
	connectErr := errs.New("connection refused")

	var calls int32
	sharedPool := &pgxpool.Pool{}
	lazy := db.NewLazyPoolWithConnect(func(_ context.Context) (*pgxpool.Pool, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			return nil, connectErr
		}
		return sharedPool, nil
	})

	_, err := lazy.Acquire(ctx)
	require.ErrorIs(t, err, connectErr)
	assert.False(t, lazy.Established(), "a failed attempt must not be cached")

	// The next call starts a fresh attempt rather than replaying the failure.
	pool, err := lazy.Acquire(ctx)
	require.NoError(t, err)
	assert.Same(t, sharedPool, pool)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestLazyPool_FailureSharedByCollapsedCallers(t *testing.T) {
	ctx := context.Background()
	connectErr := errs.New("auth failed")

	var calls int32
	entered := make(chan struct{})
	release := make(chan struct{})
	lazy := db.NewLazyPoolWithConnect(func(_ context.Context) (*pgxpool.Pool, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			close(entered)
		}
		<-release
		return nil, connectErr
	})

	const callers = 3
	errsCh := make(chan error, callers)
	var wg sync.WaitGroup
	for range callers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := lazy.Acquire(ctx)
			errsCh <- err
		}()
	}

	<-entered
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()
	close(errsCh)

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	for err := range errsCh {
		assert.ErrorIs(t, err, connectErr, "collapsed callers must observe the same failure")
	}
}
