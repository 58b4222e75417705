package stopwatch

import "github.com/lapwatch-app/lapwatch/sharedutil"

// ControlLabel is the caption shown under the Start/Pause toggle.
func ControlLabel(s Snapshot) string {
	if !s.HasStarted {
		return "Start"
	}
	if s.Running() {
		return "Pause"
	}
	return "Resume"
}

func LapEnabled(s Snapshot) bool {
	return s.Running()
}

// DisplayLaps returns laps newest first.
func DisplayLaps(laps []Lap) []Lap {
	return sharedutil.Reversed(laps)
}
