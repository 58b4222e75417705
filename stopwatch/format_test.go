package stopwatch

import (
	"testing"
	"time"
)

func TestFormatTime(t *testing.T) {
	inputs := []time.Duration{
		0,
		61_230 * time.Millisecond,
		599_990 * time.Millisecond,
		9 * time.Millisecond,
		59_999 * time.Millisecond,
		100 * time.Minute,
		-5 * time.Second,
	}
	outputs := []string{
		"00:00:00",
		"01:01:23",
		"09:59:99",
		"00:00:00",
		"00:59:99",
		"100:00:00",
		"00:00:00",
	}
	for i, input := range inputs {
		if s := FormatTime(input); s != outputs[i] {
			t.Errorf("FormatTime(%v): got %s, want %s", input, s, outputs[i])
		}
	}
}

func TestLapsText(t *testing.T) {
	laps := []Lap{
		{Number: 1, Time: 1230 * time.Millisecond},
		{Number: 2, Time: 61_000 * time.Millisecond},
	}
	want := "Lap 1\t00:01:23\nLap 2\t01:01:00\n"
	if got := LapsText(laps); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if got := LapsText(nil); got != "" {
		t.Errorf("got %q for no laps, want empty", got)
	}
}
