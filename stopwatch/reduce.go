package stopwatch

import (
	"slices"
	"time"
)

type Command int

const (
	CommandStart Command = iota
	CommandPause
	CommandStartPause
	CommandLap
	CommandReset
)

func (c Command) String() string {
	switch c {
	case CommandStart:
		return "start"
	case CommandPause:
		return "pause"
	case CommandStartPause:
		return "start-pause"
	case CommandLap:
		return "lap"
	case CommandReset:
		return "reset"
	}
	return "unknown"
}

// Reduce returns the state that results from applying c to s.
// Every command is valid in every state; combinations that make
// no sense (Lap while paused, Pause while idle) leave s unchanged.
// The result never shares a Laps backing array that a later append could mutate.
func Reduce(s Snapshot, c Command) Snapshot {
	switch c {
	case CommandStartPause:
		if s.State == Running {
			return Reduce(s, CommandPause)
		}
		return Reduce(s, CommandStart)
	case CommandStart:
		if s.State != Running {
			s.State = Running
			s.HasStarted = true
		}
	case CommandPause:
		if s.State == Running {
			s.State = Paused
		}
	case CommandLap:
		if s.State == Running {
			s.Laps = append(slices.Clip(s.Laps), Lap{Number: len(s.Laps) + 1, Time: s.Elapsed})
		}
	case CommandReset:
		return Snapshot{}
	}
	return s
}

// Accumulate applies one tick of the given period.
// Elapsed time only moves while running.
func Accumulate(s Snapshot, period time.Duration) Snapshot {
	if s.State == Running {
		s.Elapsed += period
	}
	return s
}
