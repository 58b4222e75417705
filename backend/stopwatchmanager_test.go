package backend

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lapwatch-app/lapwatch/stopwatch"
	"github.com/lapwatch-app/lapwatch/stopwatch/testutil"
	"github.com/quarckster/go-mpris-server/pkg/events"
	"github.com/quarckster/go-mpris-server/pkg/types"
)

func newTestManager() (*StopwatchManager, *testutil.FakeScheduler, *time.Duration) {
	sched := &testutil.FakeScheduler{}
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	var skew time.Duration
	now := func() time.Time { return base.Add(sched.Now() + skew) }
	return NewStopwatchManager(sched, &StopwatchConfig{TickIntervalMS: 10}, now), sched, &skew
}

func TestStopwatchManager_Callbacks(t *testing.T) {
	m, sched, _ := newTestManager()

	var states []stopwatch.State
	var laps []stopwatch.Lap
	var ticks, resets int
	m.OnStateChange(func(s stopwatch.State) { states = append(states, s) })
	m.OnLap(func(l stopwatch.Lap) { laps = append(laps, l) })
	m.OnTick(func(time.Duration) { ticks++ })
	m.OnReset(func() { resets++ })

	m.Lap() // ignored while idle
	m.Start()
	sched.Advance(100 * time.Millisecond)
	m.Lap()
	m.Start() // no change, no callback
	m.Pause()
	m.Reset()

	wantStates := []stopwatch.State{stopwatch.Running, stopwatch.Paused, stopwatch.Idle}
	if len(states) != len(wantStates) {
		t.Fatalf("got states %v, want %v", states, wantStates)
	}
	for i := range wantStates {
		if states[i] != wantStates[i] {
			t.Errorf("state %d: got %s, want %s", i, states[i], wantStates[i])
		}
	}
	if len(laps) != 1 || laps[0].Number != 1 || laps[0].Time != 100*time.Millisecond {
		t.Errorf("got laps %+v", laps)
	}
	if ticks != 10 {
		t.Errorf("got %d ticks, want 10", ticks)
	}
	if resets != 1 {
		t.Errorf("got %d resets, want 1", resets)
	}
}

func TestStopwatchManager_TickAfterReset(t *testing.T) {
	m, sched, _ := newTestManager()

	// the first listener resets, as if a Reset arrived between the tick and its delivery
	m.OnTick(func(time.Duration) { m.Reset() })
	var delivered []time.Duration
	m.OnTick(func(e time.Duration) { delivered = append(delivered, e) })

	m.Start()
	sched.Advance(10 * time.Millisecond)

	if s := m.Snapshot(); s.State != stopwatch.Idle || s.Elapsed != 0 {
		t.Fatalf("got %s at %v, want Idle at 0", s.State, s.Elapsed)
	}
	if len(delivered) != 0 {
		t.Errorf("got stale ticks %v delivered after reset", delivered)
	}
}

func TestStopwatchManager_DisableCallbacksConcurrent(t *testing.T) {
	m, sched, _ := newTestManager()
	var ticks int
	m.OnTick(func(time.Duration) { ticks++ })
	m.Start()

	done := make(chan struct{})
	go func() {
		m.DisableCallbacks()
		close(done)
	}()
	<-done
	sched.Advance(100 * time.Millisecond)
	if ticks != 0 {
		t.Errorf("got %d ticks after callbacks were disabled", ticks)
	}
}

func TestStopwatchManager_Session(t *testing.T) {
	m, sched, _ := newTestManager()
	if m.SessionID() != uuid.Nil {
		t.Error("session set before start")
	}
	m.Start()
	first := m.SessionID()
	if first == uuid.Nil {
		t.Fatal("no session after start")
	}
	sched.Advance(time.Second)
	m.Pause()
	m.Start()
	if m.SessionID() != first {
		t.Error("resume started a new session")
	}
	m.Pause()
	m.Reset()
	if m.SessionID() != uuid.Nil {
		t.Error("session kept after reset")
	}
	m.Start()
	if id := m.SessionID(); id == uuid.Nil || id == first {
		t.Error("restart after reset reused the old session")
	}
}

func TestStopwatchManager_Drift(t *testing.T) {
	m, sched, skew := newTestManager()
	m.Start()
	sched.Advance(time.Second)
	if d := m.Drift(); d != 0 {
		t.Errorf("got drift %v with a perfect scheduler, want 0", d)
	}
	*skew = 30 * time.Millisecond
	if d := m.Drift(); d != 30*time.Millisecond {
		t.Errorf("got drift %v, want 30ms", d)
	}
	if e := m.Snapshot().Elapsed; e != time.Second {
		t.Errorf("drift changed elapsed time to %v", e)
	}
}

func TestStopwatchManager_Status(t *testing.T) {
	m, sched, _ := newTestManager()
	m.Start()
	sched.Advance(61230 * time.Millisecond)
	m.Lap()
	m.Pause()

	s := m.Status()
	if s.State != "Paused" || s.ElapsedMS != 61230 || s.Formatted != "01:01:23" || !s.HasStarted {
		t.Errorf("unexpected status %+v", s)
	}
	if s.Session == "" {
		t.Error("status missing session ID")
	}
	if len(s.Laps) != 1 || s.Laps[0].Formatted != "01:01:23" {
		t.Errorf("unexpected laps %+v", s.Laps)
	}
}

func TestStopwatchManager_SetTickInterval(t *testing.T) {
	m, sched, _ := newTestManager()
	m.SetTickInterval(5000)
	if m.TickInterval() != time.Second || m.cfg.TickIntervalMS != 1000 {
		t.Errorf("got %v / %dms, want clamped to 1s", m.TickInterval(), m.cfg.TickIntervalMS)
	}
	m.SetTickInterval(50)
	m.Start()
	sched.Advance(time.Second)
	if e := m.Snapshot().Elapsed; e != time.Second {
		t.Errorf("got %v, want 1s", e)
	}
}

func TestStopwatchManager_Shutdown(t *testing.T) {
	m, sched, _ := newTestManager()
	var ticks int
	m.OnTick(func(time.Duration) { ticks++ })
	m.Start()
	m.Shutdown()
	sched.Advance(time.Second)
	if ticks != 0 {
		t.Errorf("got %d ticks after shutdown", ticks)
	}
	if sched.Active() != 0 {
		t.Error("tick source active after shutdown")
	}
}

func TestPlaybackStatus(t *testing.T) {
	inputs := []stopwatch.State{stopwatch.Idle, stopwatch.Running, stopwatch.Paused}
	outputs := []types.PlaybackStatus{types.PlaybackStatusStopped, types.PlaybackStatusPlaying, types.PlaybackStatusPaused}
	for i, input := range inputs {
		if got, err := playbackStatus(input); err != nil || got != outputs[i] {
			t.Errorf("playbackStatus(%s): got %s, %v, want %s", input, got, err, outputs[i])
		}
	}
	if _, err := playbackStatus(stopwatch.State(42)); err == nil {
		t.Error("expected error for unknown state")
	}
}

func TestSessionMetadata(t *testing.T) {
	md := sessionMetadata("Lapwatch", uuid.Nil, stopwatch.Snapshot{})
	if md.TrackId != noTrackObjectPath || md.Title != "Lapwatch" {
		t.Errorf("unexpected idle metadata %+v", md)
	}

	id := uuid.MustParse("0b6c8e0a-3c4f-4d7a-9b2e-1f0a5c6d7e8f")
	snap := stopwatch.Snapshot{
		State: stopwatch.Running,
		Laps:  []stopwatch.Lap{{Number: 1, Time: time.Second}, {Number: 2, Time: 2500 * time.Millisecond}},
	}
	md = sessionMetadata("Lapwatch", id, snap)
	if want := "/Lapwatch/Session/0b6c8e0a3c4f4d7a9b2e1f0a5c6d7e8f"; string(md.TrackId) != want {
		t.Errorf("got track ID %s, want %s", md.TrackId, want)
	}
	if want := "Lap 2 - 00:02:50"; md.Title != want {
		t.Errorf("got title %q, want %q", md.Title, want)
	}
}

type recordingPlayerEvents struct {
	types.OrgMprisMediaPlayer2PlayerEventHandler
	events []string
}

func (r *recordingPlayerEvents) OnPlayPause() error {
	r.events = append(r.events, "playpause")
	return nil
}
func (r *recordingPlayerEvents) OnTitle() error   { r.events = append(r.events, "title"); return nil }
func (r *recordingPlayerEvents) OnOptions() error { r.events = append(r.events, "options"); return nil }
func (r *recordingPlayerEvents) OnSeek(types.Microseconds) error {
	r.events = append(r.events, "seek")
	return nil
}

func TestMPRISHandler_StateChangeSignals(t *testing.T) {
	m, _, _ := newTestManager()
	h := NewMPRISHandler("Lapwatch", m)
	rec := &recordingPlayerEvents{}
	h.evt = &events.EventHandler{Player: rec}
	h.connErr = nil

	if ok, _ := h.CanGoNext(); ok {
		t.Error("CanGoNext while idle")
	}
	m.Start()
	if ok, _ := h.CanGoNext(); !ok {
		t.Error("CanGoNext false while running")
	}
	want := []string{"playpause", "title", "options"}
	if len(rec.events) != len(want) {
		t.Fatalf("got events %v, want %v", rec.events, want)
	}
	for i := range want {
		if rec.events[i] != want[i] {
			t.Errorf("event %d: got %s, want %s", i, rec.events[i], want[i])
		}
	}

	rec.events = nil
	m.Pause()
	if ok, _ := h.CanGoNext(); ok {
		t.Error("CanGoNext while paused")
	}
	found := false
	for _, e := range rec.events {
		found = found || e == "options"
	}
	if !found {
		t.Errorf("pause emitted %v without an options change", rec.events)
	}
}
