package stopwatch

import (
	"fmt"
	"strings"
	"time"
)

// FormatTime renders d as MM:SS:CC (minutes, seconds, centiseconds).
// Minutes do not roll over and may exceed two digits.
func FormatTime(d time.Duration) string {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	minutes := ms / 60000
	seconds := (ms % 60000) / 1000
	centis := (ms % 1000) / 10
	return fmt.Sprintf("%02d:%02d:%02d", minutes, seconds, centis)
}

// LapsText renders laps one per line as "Lap N<TAB>MM:SS:CC", in capture order.
func LapsText(laps []Lap) string {
	var sb strings.Builder
	for _, l := range laps {
		fmt.Fprintf(&sb, "Lap %d\t%s\n", l.Number, FormatTime(l.Time))
	}
	return sb.String()
}
