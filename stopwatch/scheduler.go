package stopwatch

import (
	"context"
	"time"
)

// Scheduler arms recurring callbacks.
type Scheduler interface {
	// Every invokes fn once per period until the returned Handle is cancelled.
	// It must not invoke fn synchronously.
	Every(period time.Duration, fn func()) Handle
}

// Handle is a recurring callback registration.
// Cancel is idempotent and must not block on an in-flight callback.
type Handle interface {
	Cancel()
}

// TickerScheduler runs each registration on its own goroutine driven by a time.Ticker.
// All registrations stop when the parent context is done.
type TickerScheduler struct {
	ctx context.Context
}

var _ Scheduler = (*TickerScheduler)(nil)

func NewTickerScheduler(ctx context.Context) *TickerScheduler {
	return &TickerScheduler{ctx: ctx}
}

func (t *TickerScheduler) Every(period time.Duration, fn func()) Handle {
	ctx, cancel := context.WithCancel(t.ctx)
	tick := time.NewTicker(period)
	go func() {
		defer tick.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-tick.C:
				// a cancel racing with a tick is resolved by the stopwatch's generation check
				fn()
			}
		}
	}()
	return cancelHandle(cancel)
}

type cancelHandle context.CancelFunc

func (c cancelHandle) Cancel() {
	c()
}
