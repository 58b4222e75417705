package backend

import (
	"flag"

	"github.com/lapwatch-app/lapwatch/backend/ipc"
)

var (
	FlagStart       = flag.Bool("start", false, "start or resume the stopwatch")
	FlagPause       = flag.Bool("pause", false, "pause the stopwatch")
	FlagStartPause  = flag.Bool("start-pause", false, "toggle the running state of the stopwatch")
	FlagLap         = flag.Bool("lap", false, "record a lap if the stopwatch is running")
	FlagReset       = flag.Bool("reset", false, "stop the stopwatch and clear elapsed time and laps")
	FlagToggleTheme = flag.Bool("toggle-theme", false, "switch between light and dark appearance")
	FlagStatus      = flag.Bool("status", false, "print the state of the running instance and exit")
	FlagVersion     = flag.Bool("version", false, "print app version and exit")
	FlagHelp        = flag.Bool("help", false, "print command line options and exit")
)

func HaveCommandLineOptions() bool {
	visitedAny := false
	flag.Visit(func(*flag.Flag) {
		visitedAny = true
	})
	return visitedAny
}

// StopwatchCommander is the set of stopwatch operations reachable from
// command line flags. Both the IPC client and the running app satisfy it.
type StopwatchCommander interface {
	Start() error
	Pause() error
	StartPause() error
	Lap() error
	Reset() error
	ToggleTheme() error
}

var _ StopwatchCommander = (*ipc.Client)(nil)

// ApplyCommandLineOptions issues the commands requested by flags,
// in the order start, start-pause, lap, pause, reset, toggle-theme.
func ApplyCommandLineOptions(c StopwatchCommander) error {
	cmds := []struct {
		set bool
		fn  func() error
	}{
		{*FlagStart, c.Start},
		{*FlagStartPause, c.StartPause},
		{*FlagLap, c.Lap},
		{*FlagPause, c.Pause},
		{*FlagReset, c.Reset},
		{*FlagToggleTheme, c.ToggleTheme},
	}
	for _, cmd := range cmds {
		if !cmd.set {
			continue
		}
		if err := cmd.fn(); err != nil {
			return err
		}
	}
	return nil
}
