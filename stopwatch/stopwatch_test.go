package stopwatch_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/lapwatch-app/lapwatch/stopwatch/testutil"
)

const period = stopwatch.DefaultPeriod

func newFakeStopwatch() (*stopwatch.Stopwatch, *testutil.FakeScheduler) {
	sched := &testutil.FakeScheduler{}
	return stopwatch.New(sched, period), sched
}

func TestStopwatch_InitialState(t *testing.T) {
	sw, sched := newFakeStopwatch()
	s := sw.Snapshot()
	if s.State != stopwatch.Idle || s.Elapsed != 0 || s.HasStarted || len(s.Laps) != 0 {
		t.Errorf("unexpected initial state %+v", s)
	}
	if sched.Active() != 0 {
		t.Errorf("tick source armed before Start")
	}
}

func TestStopwatch_LapScenario(t *testing.T) {
	sw, sched := newFakeStopwatch()

	if !sw.Start() {
		t.Fatal("Start from idle reported no change")
	}
	for sw.Elapsed() < time.Second {
		sched.Advance(period)
	}
	sw.Lap()

	laps := sw.Snapshot().Laps
	if len(laps) != 1 || laps[0].Number != 1 {
		t.Fatalf("got laps %+v, want a single lap numbered 1", laps)
	}
	if laps[0].Time < time.Second {
		t.Errorf("lap time %v, want >= 1s", laps[0].Time)
	}
	if laps[0].Time%period != 0 {
		t.Errorf("lap time %v is not a multiple of the tick period", laps[0].Time)
	}

	sw.Pause()
	sw.Reset()
	s := sw.Snapshot()
	if s.State != stopwatch.Idle || s.Elapsed != 0 || s.HasStarted || len(s.Laps) != 0 {
		t.Errorf("after reset got %+v, want initial state", s)
	}
	if sched.Active() != 0 {
		t.Errorf("tick source still active after reset")
	}
}

func TestStopwatch_PausedElapsedConstant(t *testing.T) {
	sw, sched := newFakeStopwatch()
	sw.Start()
	sched.Advance(50 * period)
	sw.Pause()
	frozen := sw.Elapsed()
	if frozen != 50*period {
		t.Fatalf("got %v after 50 ticks, want %v", frozen, 50*period)
	}
	sched.Advance(time.Second)
	if e := sw.Elapsed(); e != frozen {
		t.Errorf("elapsed moved while paused: %v -> %v", frozen, e)
	}

	// resume continues from the frozen value
	sw.Start()
	sched.Advance(period)
	if e := sw.Elapsed(); e != frozen+period {
		t.Errorf("got %v after resume, want %v", e, frozen+period)
	}
}

func TestStopwatch_LapWhileNotRunning(t *testing.T) {
	sw, sched := newFakeStopwatch()
	if sw.Lap() {
		t.Error("Lap while idle reported a change")
	}
	sw.Start()
	sched.Advance(3 * period)
	sw.Lap()
	sw.Pause()
	if sw.Lap() {
		t.Error("Lap while paused reported a change")
	}
	if n := len(sw.Snapshot().Laps); n != 1 {
		t.Errorf("got %d laps, want 1", n)
	}
}

func TestStopwatch_ElapsedNonDecreasingWhileRunning(t *testing.T) {
	sw, sched := newFakeStopwatch()
	var last time.Duration
	var decreased bool
	sw.OnTick(func(e time.Duration) {
		if e < last {
			decreased = true
		}
		last = e
	})
	sw.Start()
	for i := 0; i < 200; i++ {
		sched.Advance(period)
		if i%7 == 0 {
			sw.Lap()
		}
	}
	if decreased {
		t.Error("elapsed decreased during a running interval")
	}
	if last != 200*period {
		t.Errorf("got %v, want %v", last, 200*period)
	}
}

func TestStopwatch_RapidToggleSingleTickSource(t *testing.T) {
	sw, sched := newFakeStopwatch()
	sw.Start()

	for i := 0; i < 100; i++ {
		// several toggles inside a single period
		for j := 0; j < 5; j++ {
			sw.StartPause()
			if sched.Active() > 1 {
				t.Fatalf("%d tick sources active", sched.Active())
			}
		}
		before := sw.Elapsed()
		sched.Advance(period)
		if d := sw.Elapsed() - before; d > period {
			t.Fatalf("accumulated %v in one period", d)
		}
	}
	if e := sw.Elapsed(); e > 100*period {
		t.Errorf("accumulated %v over 100 periods", e)
	}
}

func TestStopwatch_StartTwiceArmsOnce(t *testing.T) {
	sw, sched := newFakeStopwatch()
	sw.Start()
	if sw.Start() {
		t.Error("second Start reported a change")
	}
	if sched.Armed() != 1 {
		t.Errorf("tick source armed %d times, want 1", sched.Armed())
	}
	sched.Advance(period)
	if e := sw.Elapsed(); e != period {
		t.Errorf("got %v, want %v", e, period)
	}
}

func TestStopwatch_SetPeriodAppliesOnNextStart(t *testing.T) {
	sw, sched := newFakeStopwatch()
	sw.Start()
	sw.SetPeriod(100 * time.Millisecond)
	sched.Advance(100 * time.Millisecond)
	if e := sw.Elapsed(); e != 100*time.Millisecond {
		t.Errorf("got %v with the old period, want 100ms", e)
	}
	sw.Pause()
	sw.Start()
	sched.Advance(100 * time.Millisecond)
	if e := sw.Elapsed(); e != 200*time.Millisecond {
		t.Errorf("got %v with the new period, want 200ms", e)
	}
}

func TestStopwatch_CloseCancelsTickSource(t *testing.T) {
	sw, sched := newFakeStopwatch()
	sw.Start()
	sw.Close()
	if sched.Active() != 0 {
		t.Error("tick source active after Close")
	}
	sw.Close() // idempotent
	if sw.Start() {
		t.Error("Start after Close reported a change")
	}
}

func TestClampPeriod(t *testing.T) {
	inputs := []time.Duration{0, 500 * time.Microsecond, 10 * time.Millisecond, 15500 * time.Microsecond, time.Minute}
	outputs := []time.Duration{time.Millisecond, time.Millisecond, 10 * time.Millisecond, 15 * time.Millisecond, time.Second}
	for i, input := range inputs {
		if d := stopwatch.ClampPeriod(input); d != outputs[i] {
			t.Errorf("ClampPeriod(%v): got %v, want %v", input, d, outputs[i])
		}
	}
}

func TestStopwatch_ReduceAgreement(t *testing.T) {
	sw, sched := newFakeStopwatch()
	cmds := []stopwatch.Command{
		stopwatch.CommandLap, stopwatch.CommandStart, stopwatch.CommandLap, stopwatch.CommandStartPause,
		stopwatch.CommandLap, stopwatch.CommandStartPause, stopwatch.CommandLap, stopwatch.CommandReset,
		stopwatch.CommandStart, stopwatch.CommandPause, stopwatch.CommandPause, stopwatch.CommandStart,
	}
	want := stopwatch.Snapshot{}
	for _, c := range cmds {
		sw.Do(c)
		want = stopwatch.Reduce(want, c)
		sched.Advance(period)
		want = stopwatch.Accumulate(want, period)

		got := sw.Snapshot()
		if got.State != want.State || got.Elapsed != want.Elapsed || len(got.Laps) != len(want.Laps) {
			t.Fatalf("after %v: got %+v, want %+v", c, got, want)
		}
	}
}

func TestTickerScheduler(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var ticks atomic.Int32
	h := stopwatch.NewTickerScheduler(ctx).Every(time.Millisecond, func() { ticks.Add(1) })
	time.Sleep(30 * time.Millisecond)
	h.Cancel()
	h.Cancel() // idempotent
	if ticks.Load() == 0 {
		t.Fatal("no ticks delivered")
	}
	time.Sleep(5 * time.Millisecond)
	n := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != n {
		t.Error("ticks delivered after Cancel")
	}
}

func TestStopwatch_ConcurrentAccess(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sw := stopwatch.New(stopwatch.NewTickerScheduler(ctx), time.Millisecond)

	var wg sync.WaitGroup
	const goroutines = 5
	const iterations = 100
	wg.Add(goroutines * 3)
	for i := 0; i < goroutines; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sw.StartPause()
				time.Sleep(time.Microsecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				sw.Lap()
				time.Sleep(time.Microsecond)
			}
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < iterations; j++ {
				_ = sw.Snapshot()
				time.Sleep(time.Microsecond)
			}
		}()
	}
	wg.Wait()
	sw.Close()

	laps := sw.Snapshot().Laps
	for i, l := range laps {
		if l.Number != i+1 {
			t.Fatalf("lap %d has number %d", i, l.Number)
		}
	}
}
