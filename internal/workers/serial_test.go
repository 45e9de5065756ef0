package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/toolbox-vault/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startSerial(t *testing.T, size int) *Serial {
	t.Helper()
	s := NewSerial(size, logger.Nop())
	s.Run(context.Background())
	t.Cleanup(s.Stop)
	return s
}

func TestSerial_ReturnsJobResult(t *testing.T) {
	s := startSerial(t, 1)

	assert.NoError(t, s.Do(context.Background(), func(context.Context) error { return nil }))
	assert.ErrorIs(t, s.Do(context.Background(), func(context.Context) error { return assert.AnError }), assert.AnError)
}

// TestSerial_FIFO submits jobs from one goroutine without waiting and checks
// they ran in submission order.
func TestSerial_FIFO(t *testing.T) {
	s := NewSerial(100, logger.Nop())

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	// queue everything before the worker starts so arrival order is fixed
	for i := range 50 {
		wg.Add(1)
		ready := make(chan struct{})
		go func() {
			defer wg.Done()
			close(ready)
			_ = s.Do(context.Background(), func(context.Context) error {
				mu.Lock()
				order = append(order, i)
				mu.Unlock()
				return nil
			})
		}()
		<-ready
		require.Eventually(t, func() bool { return len(s.jobs) == i+1 }, time.Second, time.Millisecond)
	}

	s.Run(context.Background())
	wg.Wait()
	s.Stop()

	require.Len(t, order, 50)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

func TestSerial_NeverOverlaps(t *testing.T) {
	s := startSerial(t, 4)

	var running, maxRunning int32
	var wg sync.WaitGroup
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Do(context.Background(), func(context.Context) error {
				n := atomic.AddInt32(&running, 1)
				for {
					m := atomic.LoadInt32(&maxRunning)
					if n <= m || atomic.CompareAndSwapInt32(&maxRunning, m, n) {
						break
					}
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&maxRunning))
}

// TestSerial_CancelledCallerDoesNotCancelJob checks that a job keeps running
// after its submitter stopped waiting.
func TestSerial_CancelledCallerDoesNotCancelJob(t *testing.T) {
	s := startSerial(t, 1)

	started := make(chan struct{})
	release := make(chan struct{})
	jobCtxErr := make(chan error, 1)
	finished := make(chan error, 1)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		finished <- s.Do(ctx, func(jobCtx context.Context) error {
			close(started)
			<-release
			jobCtxErr <- jobCtx.Err()
			return nil
		})
	}()

	<-started
	cancel()
	assert.ErrorIs(t, <-finished, context.Canceled)

	close(release)
	assert.NoError(t, <-jobCtxErr)
}

func TestSerial_JobSeesSubmitterValues(t *testing.T) {
	s := startSerial(t, 1)

	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")

	var got any
	require.NoError(t, s.Do(ctx, func(jobCtx context.Context) error {
		got = jobCtx.Value(key{})
		return nil
	}))
	assert.Equal(t, "v", got)
}

func TestSerial_RecoversPanic(t *testing.T) {
	s := startSerial(t, 1)

	err := s.Do(context.Background(), func(context.Context) error { panic("boom") })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.NoError(t, s.Do(context.Background(), func(context.Context) error { return nil }))
}

func TestSerial_DoAfterStop(t *testing.T) {
	s := NewSerial(1, logger.Nop())
	s.Run(context.Background())
	s.Stop()

	err := s.Do(context.Background(), func(context.Context) error { return nil })
	assert.True(t, errors.Is(err, ErrQueueClosed))

	// Stop is idempotent
	s.Stop()
}

func TestSerial_StopsWithContext(t *testing.T) {
	s := NewSerial(1, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	s.Run(ctx)
	cancel()

	select {
	case <-s.done:
	case <-time.After(time.Second):
		t.Fatal("worker did not exit after context cancellation")
	}
	assert.ErrorIs(t, s.Do(context.Background(), func(context.Context) error { return nil }), ErrQueueClosed)
}
