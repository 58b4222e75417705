// Package stopwatch implements the elapsed-time and lap state machine
// together with the periodic tick source that drives it.
package stopwatch

import (
	"slices"
	"sync"
	"time"
)

const (
	DefaultPeriod = 10 * time.Millisecond
	MinPeriod     = time.Millisecond
	MaxPeriod     = time.Second
)

// Stopwatch accumulates elapsed time by adding exactly one period per tick.
// Drift against the wall clock is not corrected.
//
// Commands and ticks are serialized on an internal lock, so a Stopwatch may be
// driven from the UI, IPC and D-Bus goroutines at once. Callbacks run after the
// lock is released.
type Stopwatch struct {
	mu     sync.Mutex
	state  Snapshot
	sched  Scheduler
	period time.Duration
	handle Handle
	gen    uint64
	closed bool

	onTick []func(time.Duration)
}

func New(sched Scheduler, period time.Duration) *Stopwatch {
	return &Stopwatch{sched: sched, period: ClampPeriod(period)}
}

// ClampPeriod truncates d to whole milliseconds within [MinPeriod, MaxPeriod].
func ClampPeriod(d time.Duration) time.Duration {
	d = d.Truncate(time.Millisecond)
	if d < MinPeriod {
		return MinPeriod
	}
	if d > MaxPeriod {
		return MaxPeriod
	}
	return d
}

// Registers a callback that is notified with the new elapsed time after every accepted tick.
func (s *Stopwatch) OnTick(cb func(time.Duration)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onTick = append(s.onTick, cb)
}

func (s *Stopwatch) Start() bool      { return s.Do(CommandStart) }
func (s *Stopwatch) Pause() bool      { return s.Do(CommandPause) }
func (s *Stopwatch) StartPause() bool { return s.Do(CommandStartPause) }
func (s *Stopwatch) Lap() bool        { return s.Do(CommandLap) }
func (s *Stopwatch) Reset() bool      { return s.Do(CommandReset) }

// Do applies c and re-arms or disarms the tick source on entering or
// leaving Running. It reports whether the observable state changed.
func (s *Stopwatch) Do(c Command) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return false
	}

	prev := s.state
	s.state = Reduce(prev, c)
	switch {
	case !prev.Running() && s.state.Running():
		s.arm()
	case prev.Running() && !s.state.Running():
		s.disarm()
	}
	return !prev.sameAs(s.state)
}

func (s *Stopwatch) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := s.state
	snap.Laps = slices.Clone(s.state.Laps)
	return snap
}

func (s *Stopwatch) Elapsed() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Elapsed
}

func (s *Stopwatch) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.State
}

func (s *Stopwatch) Period() time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.period
}

// SetPeriod changes the tick period. A tick source that is already
// armed keeps its period until the next time the stopwatch enters Running.
func (s *Stopwatch) SetPeriod(d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.period = ClampPeriod(d)
}

// Close cancels any active tick source. Later commands are ignored.
func (s *Stopwatch) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.disarm()
	s.gen++
	s.closed = true
}

// must be called with s.mu held
func (s *Stopwatch) arm() {
	s.disarm()
	s.gen++
	gen, period := s.gen, s.period
	s.handle = s.sched.Every(period, func() { s.tick(gen, period) })
}

// must be called with s.mu held
func (s *Stopwatch) disarm() {
	if s.handle != nil {
		s.handle.Cancel()
		s.handle = nil
	}
}

func (s *Stopwatch) tick(gen uint64, period time.Duration) {
	s.mu.Lock()
	if gen != s.gen || !s.state.Running() {
		// stale tick from a cancelled source
		s.mu.Unlock()
		return
	}
	s.state = Accumulate(s.state, period)
	elapsed := s.state.Elapsed
	cbs := s.onTick
	s.mu.Unlock()

	for _, cb := range cbs {
		cb(elapsed)
	}
}
