package stopwatch

import "time"

type State int

const (
	Idle State = iota
	Running
	Paused
)

func (s State) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Running:
		return "Running"
	case Paused:
		return "Paused"
	}
	return "Unknown"
}

// Lap is the elapsed time captured by the Nth Lap command.
type Lap struct {
	Number int
	Time   time.Duration
}

// Snapshot is an immutable copy of the full stopwatch state.
type Snapshot struct {
	State      State
	Elapsed    time.Duration
	HasStarted bool
	Laps       []Lap
}

func (s Snapshot) Running() bool {
	return s.State == Running
}

func (s Snapshot) LastLap() (Lap, bool) {
	if len(s.Laps) == 0 {
		return Lap{}, false
	}
	return s.Laps[len(s.Laps)-1], true
}

func (s Snapshot) sameAs(o Snapshot) bool {
	return s.State == o.State &&
		s.Elapsed == o.Elapsed &&
		s.HasStarted == o.HasStarted &&
		len(s.Laps) == len(o.Laps)
}
