package util

import (
	"sync"
	"time"
)

// WallClock measures real running time between Start and Stop.
// The stopwatch accumulates tick periods instead; the difference
// between the two is the drift reported to the user.
type WallClock struct {
	mu      sync.Mutex
	now     func() time.Time
	running bool
	started time.Time
	elapsed time.Duration
}

// NewWallClock returns a WallClock reading time from now, or time.Now if nil.
func NewWallClock(now func() time.Time) *WallClock {
	if now == nil {
		now = time.Now
	}
	return &WallClock{now: now}
}

func (w *WallClock) Start() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return
	}
	w.started = w.now()
	w.running = true
}

func (w *WallClock) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.running {
		return
	}
	w.elapsed += w.now().Sub(w.started)
	w.running = false
}

func (w *WallClock) Elapsed() time.Duration {
	w.mu.Lock()
	defer w.mu.Unlock()
	e := w.elapsed
	if w.running {
		e += w.now().Sub(w.started)
	}
	return e
}

func (w *WallClock) Reset() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.running = false
	w.elapsed = time.Duration(0)
}
