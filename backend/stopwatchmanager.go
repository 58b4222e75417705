package backend

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/lapwatch-app/lapwatch/backend/ipc"
	"github.com/lapwatch-app/lapwatch/backend/util"
	"github.com/lapwatch-app/lapwatch/sharedutil"
	"github.com/lapwatch-app/lapwatch/stopwatch"
)

var _ ipc.StopwatchHandler = (*StopwatchManager)(nil)

// StopwatchManager is the application-facing front of the stopwatch.
// It tracks the session ID and wall-clock drift of the current run,
// and sends callbacks on ticks, state changes, laps and resets.
type StopwatchManager struct {
	sw   *stopwatch.Stopwatch
	wall *util.WallClock
	cfg  *StopwatchConfig

	// serializes commands so before/after snapshots are consistent
	cmdLock           sync.Mutex
	sessionID         uuid.UUID
	callbacksDisabled atomic.Bool

	// registered callbacks
	onTick        []func(time.Duration)
	onStateChange []func(stopwatch.State)
	onLap         []func(stopwatch.Lap)
	onReset       []func()
}

func NewStopwatchManager(sched stopwatch.Scheduler, cfg *StopwatchConfig, now func() time.Time) *StopwatchManager {
	cfg.TickIntervalMS = clamp(cfg.TickIntervalMS, 1, 1000)
	m := &StopwatchManager{
		sw:   stopwatch.New(sched, time.Duration(cfg.TickIntervalMS)*time.Millisecond),
		wall: util.NewWallClock(now),
		cfg:  cfg,
	}
	m.sw.OnTick(func(elapsed time.Duration) {
		// a command handled since the tick (or by an earlier callback)
		// supersedes it, and its own callbacks carry the new state
		for _, cb := range m.onTick {
			if m.callbacksDisabled.Load() || !m.tickCurrent(elapsed) {
				return
			}
			cb(elapsed)
		}
	})
	return m
}

// Registers a callback that is notified after every tick with the new elapsed time.
// Called from the tick goroutine.
func (m *StopwatchManager) OnTick(cb func(time.Duration)) {
	m.onTick = append(m.onTick, cb)
}

// Registers a callback that is notified whenever the stopwatch changes between Idle, Running and Paused.
func (m *StopwatchManager) OnStateChange(cb func(stopwatch.State)) {
	m.onStateChange = append(m.onStateChange, cb)
}

// Registers a callback that is notified whenever a lap is recorded.
func (m *StopwatchManager) OnLap(cb func(stopwatch.Lap)) {
	m.onLap = append(m.onLap, cb)
}

// Registers a callback that is notified whenever the stopwatch is reset.
func (m *StopwatchManager) OnReset(cb func()) {
	m.onReset = append(m.onReset, cb)
}

// Disables callbacks being sent
func (m *StopwatchManager) DisableCallbacks() {
	m.callbacksDisabled.Store(true)
}

func (m *StopwatchManager) Start()      { m.do(stopwatch.CommandStart) }
func (m *StopwatchManager) Pause()      { m.do(stopwatch.CommandPause) }
func (m *StopwatchManager) StartPause() { m.do(stopwatch.CommandStartPause) }
func (m *StopwatchManager) Lap()        { m.do(stopwatch.CommandLap) }
func (m *StopwatchManager) Reset()      { m.do(stopwatch.CommandReset) }

func (m *StopwatchManager) Snapshot() stopwatch.Snapshot {
	return m.sw.Snapshot()
}

func (m *StopwatchManager) SessionID() uuid.UUID {
	m.cmdLock.Lock()
	defer m.cmdLock.Unlock()
	return m.sessionID
}

// Drift returns how far the accumulated elapsed time lags behind
// the wall-clock time spent running. It is reported, never corrected.
func (m *StopwatchManager) Drift() time.Duration {
	m.cmdLock.Lock()
	defer m.cmdLock.Unlock()
	return m.wall.Elapsed() - m.sw.Elapsed()
}

func (m *StopwatchManager) TickInterval() time.Duration {
	return m.sw.Period()
}

// SetTickInterval updates the configured tick period.
// It takes effect the next time the stopwatch starts or resumes.
func (m *StopwatchManager) SetTickInterval(ms int) {
	m.cfg.TickIntervalMS = clamp(ms, 1, 1000)
	m.sw.SetPeriod(time.Duration(m.cfg.TickIntervalMS) * time.Millisecond)
}

func (m *StopwatchManager) Status() ipc.Status {
	snap := m.Snapshot()
	session := ""
	if id := m.SessionID(); id != uuid.Nil {
		session = id.String()
	}
	return ipc.Status{
		State:      snap.State.String(),
		ElapsedMS:  snap.Elapsed.Milliseconds(),
		Formatted:  stopwatch.FormatTime(snap.Elapsed),
		HasStarted: snap.HasStarted,
		Session:    session,
		DriftMS:    m.Drift().Milliseconds(),
		Laps: sharedutil.MapSlice(snap.Laps, func(l stopwatch.Lap) ipc.LapStatus {
			return ipc.LapStatus{
				Number:    l.Number,
				ElapsedMS: l.Time.Milliseconds(),
				Formatted: stopwatch.FormatTime(l.Time),
			}
		}),
	}
}

// Shutdown stops the tick source. The stopwatch ignores commands afterwards.
func (m *StopwatchManager) Shutdown() {
	m.DisableCallbacks()
	m.sw.Close()
}

func (m *StopwatchManager) do(c stopwatch.Command) {
	m.cmdLock.Lock()
	before := m.sw.Snapshot()
	if !m.sw.Do(c) {
		m.cmdLock.Unlock()
		return
	}
	after := m.sw.Snapshot()
	stateChanged := before.State != after.State
	if stateChanged {
		m.trackRun(before, after)
	}
	m.cmdLock.Unlock()

	if m.callbacksDisabled.Load() {
		return
	}
	if stateChanged {
		for _, cb := range m.onStateChange {
			cb(after.State)
		}
	}
	if len(after.Laps) > len(before.Laps) {
		lap, _ := after.LastLap()
		for _, cb := range m.onLap {
			cb(lap)
		}
	}
	if after.State == stopwatch.Idle {
		for _, cb := range m.onReset {
			cb()
		}
	}
}

// reports whether a tick's elapsed value still describes the stopwatch
func (m *StopwatchManager) tickCurrent(elapsed time.Duration) bool {
	m.cmdLock.Lock()
	defer m.cmdLock.Unlock()
	snap := m.sw.Snapshot()
	return snap.State == stopwatch.Running && snap.Elapsed == elapsed
}

// must be called with cmdLock held
func (m *StopwatchManager) trackRun(before, after stopwatch.Snapshot) {
	switch after.State {
	case stopwatch.Running:
		if before.State == stopwatch.Idle {
			m.sessionID = uuid.New()
		}
		m.wall.Start()
	case stopwatch.Paused:
		m.wall.Stop()
	case stopwatch.Idle:
		m.wall.Stop()
		drift := m.wall.Elapsed() - before.Elapsed
		log.Printf("stopwatch reset at %s after %d laps (drift %v)",
			stopwatch.FormatTime(before.Elapsed), len(before.Laps), drift)
		m.wall.Reset()
		m.sessionID = uuid.Nil
	}
}
