package widgets

import (
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/lapwatch-app/lapwatch/stopwatch"
)

func TestTimeDisplay_SetElapsed(t *testing.T) {
	test.NewTempApp(t)
	d := NewTimeDisplay()
	if d.Text() != "00:00:00" {
		t.Errorf("got initial text %s", d.Text())
	}
	d.SetElapsed(61230 * time.Millisecond)
	if d.Text() != "01:01:23" {
		t.Errorf("got %s, want 01:01:23", d.Text())
	}
}

func TestStopwatchControls_Update(t *testing.T) {
	test.NewTempApp(t)
	c := NewStopwatchControls()
	var taps []string
	c.OnStartPause(func() { taps = append(taps, "startpause") })
	c.OnLap(func() { taps = append(taps, "lap") })
	c.OnReset(func() { taps = append(taps, "reset") })

	snaps := []stopwatch.Snapshot{
		{},
		{State: stopwatch.Running, HasStarted: true},
		{State: stopwatch.Paused, HasStarted: true},
	}
	labels := []string{"Start", "Pause", "Resume"}
	lapDisabled := []bool{true, false, true}
	for i, s := range snaps {
		c.Update(s)
		if got := c.startPauseLabel.Text; got != labels[i] {
			t.Errorf("%s: got label %s, want %s", s.State, got, labels[i])
		}
		if c.lap.Disabled() != lapDisabled[i] {
			t.Errorf("%s: got lap disabled=%v, want %v", s.State, c.lap.Disabled(), lapDisabled[i])
		}
	}

	test.Tap(c.startPause)
	test.Tap(c.lap) // disabled while paused
	test.Tap(c.reset)
	if len(taps) != 2 || taps[0] != "startpause" || taps[1] != "reset" {
		t.Errorf("got taps %v", taps)
	}
}

func TestLapList_NewestFirst(t *testing.T) {
	test.NewTempApp(t)
	l := NewLapList()
	l.SetLaps([]stopwatch.Lap{
		{Number: 1, Time: time.Second},
		{Number: 2, Time: 2 * time.Second},
		{Number: 3, Time: 3 * time.Second},
	})
	if l.Len() != 3 {
		t.Fatalf("got %d laps, want 3", l.Len())
	}
	if l.laps[0].Number != 3 || l.laps[2].Number != 1 {
		t.Errorf("got display order %v, want newest first", l.laps)
	}

	row := newLapRow()
	row.Update(l.laps[0])
	if row.number.Text != "Lap 3" || row.time.Text != "00:03:00" {
		t.Errorf("got row %q / %q", row.number.Text, row.time.Text)
	}
}

func TestDigitsOnly(t *testing.T) {
	allowed := DigitsOnly(4)
	type input struct {
		cur, sel string
		r        rune
	}
	inputs := []input{{"", "", '1'}, {"12", "", 'a'}, {"1234", "", '5'}, {"1234", "34", '5'}}
	outputs := []bool{true, false, false, true}
	for i, in := range inputs {
		if got := allowed(in.cur, in.sel, in.r); got != outputs[i] {
			t.Errorf("DigitsOnly(4)(%q, %q, %q): got %v, want %v", in.cur, in.sel, in.r, got, outputs[i])
		}
	}

	test.NewTempApp(t)
	e := NewTextRestrictedEntry(allowed)
	test.Type(e, "1a2b3")
	if e.Text != "123" {
		t.Errorf("got entry text %q, want 123", e.Text)
	}
}
