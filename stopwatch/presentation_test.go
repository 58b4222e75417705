package stopwatch

import "testing"

func TestControlLabel(t *testing.T) {
	s := Snapshot{}
	if l := ControlLabel(s); l != "Start" {
		t.Errorf("idle: got %s, want Start", l)
	}
	s = Reduce(s, CommandStart)
	if l := ControlLabel(s); l != "Pause" {
		t.Errorf("running: got %s, want Pause", l)
	}
	if !LapEnabled(s) {
		t.Error("lap should be enabled while running")
	}
	s = Reduce(s, CommandPause)
	if l := ControlLabel(s); l != "Resume" {
		t.Errorf("paused: got %s, want Resume", l)
	}
	if LapEnabled(s) {
		t.Error("lap should be disabled while paused")
	}
	s = Reduce(s, CommandReset)
	if l := ControlLabel(s); l != "Start" {
		t.Errorf("after reset: got %s, want Start", l)
	}
}

func TestDisplayLaps(t *testing.T) {
	laps := []Lap{{Number: 1}, {Number: 2}, {Number: 3}}
	disp := DisplayLaps(laps)
	for i, want := range []int{3, 2, 1} {
		if disp[i].Number != want {
			t.Errorf("index %d: got lap %d, want %d", i, disp[i].Number, want)
		}
	}
	if laps[0].Number != 1 {
		t.Error("DisplayLaps modified its input")
	}
}
