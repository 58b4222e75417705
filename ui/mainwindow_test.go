package ui

import (
	"testing"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/lapwatch-app/lapwatch/backend"
	"github.com/lapwatch-app/lapwatch/stopwatch/testutil"
)

func newTestMainWindow(t *testing.T) (*MainWindow, *testutil.FakeScheduler) {
	t.Helper()
	fyneApp := test.NewTempApp(t)
	cfg := backend.DefaultConfig("v0.0.0")
	sched := &testutil.FakeScheduler{}
	app := &backend.App{
		Config:           cfg,
		StopwatchManager: backend.NewStopwatchManager(sched, &cfg.Stopwatch, time.Now),
	}
	m := NewMainWindow(fyneApp, "lapwatch", "Lapwatch", "0.0.0", app, fyne.NewSize(420, 640))
	t.Cleanup(app.StopwatchManager.Shutdown)
	return m, sched
}

func TestMainWindow_FollowsStopwatch(t *testing.T) {
	m, sched := newTestMainWindow(t)
	typeKey := m.Canvas().OnTypedKey()

	if m.lapList.Visible() {
		t.Error("lap panel shown before any laps")
	}
	typeKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	sched.Advance(1230 * time.Millisecond)
	if got := m.timeDisplay.Text(); got != "00:01:23" {
		t.Errorf("got display %s, want 00:01:23", got)
	}
	typeKey(&fyne.KeyEvent{Name: fyne.KeyL})
	if !m.lapList.Visible() || m.lapList.Len() != 1 {
		t.Errorf("got lap panel visible=%v with %d laps, want 1 lap shown", m.lapList.Visible(), m.lapList.Len())
	}

	typeKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	sched.Advance(time.Second)
	if got := m.timeDisplay.Text(); got != "00:01:23" {
		t.Errorf("display changed to %s while paused", got)
	}

	m.App.StopwatchManager.Reset()
	if m.lapList.Visible() || m.timeDisplay.Text() != "00:00:00" {
		t.Error("reset did not clear the display and lap panel")
	}
}

func TestMainWindow_CopyLapTimes(t *testing.T) {
	m, sched := newTestMainWindow(t)
	sm := m.App.StopwatchManager

	m.CopyLapTimes()
	if got := fyne.CurrentApp().Clipboard().Content(); got != "" {
		t.Errorf("clipboard set to %q with no laps", got)
	}
	if !m.toasts.HasToast() {
		t.Error("no message shown for empty lap list")
	}

	sm.Start()
	sched.Advance(time.Second)
	sm.Lap()
	sched.Advance(500 * time.Millisecond)
	sm.Lap()
	m.CopyLapTimes()
	want := "Lap 1\t00:01:00\nLap 2\t00:01:50\n"
	if got := fyne.CurrentApp().Clipboard().Content(); got != want {
		t.Errorf("got clipboard %q, want %q", got, want)
	}
}

func TestMainWindow_ResetDuringTick(t *testing.T) {
	m, sched := newTestMainWindow(t)
	sm := m.App.StopwatchManager

	resetOnce := true
	sm.OnTick(func(time.Duration) {
		if resetOnce {
			resetOnce = false
			sm.Reset()
		}
	})
	sm.Start()
	sched.Advance(10 * time.Millisecond)

	if got := m.timeDisplay.Text(); got != "00:00:00" {
		t.Errorf("got display %s after reset, want 00:00:00", got)
	}
}
