package rtree

import (
	"context"
	"sync/atomic"
	"time"
)

// DefaultProgressInterval is the default interval for progress updates.
const DefaultProgressInterval = 100 * time.Millisecond

// Counter is incremented once for every file visited.
type Counter interface {
	Inc()
}

// AtomicCounter is a Counter safe for concurrent use.
type AtomicCounter struct {
	n atomic.Int64
}

// Inc adds one to the counter.
func (c *AtomicCounter) Inc() {
	c.n.Add(1)
}

// Load returns the current count.
func (c *AtomicCounter) Load() int64 {
	return c.n.Load()
}

// startProgressReporter invokes hook(files) on each tick until ctx is done or
// the returned stop function is called. stop waits for the reporter to exit,
// so no hook call happens after it returns.
func startProgressReporter(ctx context.Context, c *AtomicCounter, hook func(int64), interval time.Duration) (stop func()) {
	if hook == nil {
		return func() {}
	}

	if interval <= 0 {
		interval = DefaultProgressInterval
	}

	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	ticker := time.NewTicker(interval)

	go func() {
		defer close(done)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				hook(c.Load())
			case <-ctx.Done():
				return
			}
		}
	}()

	return func() {
		cancel()
		<-done
	}
}
