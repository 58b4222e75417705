package sharedutil

import (
	"slices"
	"strconv"
	"testing"
)

func Test_Reversed(t *testing.T) {
	if Reversed[int](nil) != nil {
		t.Error("Reversed(nil) should be nil")
	}
	in := []int{1, 2, 3, 4}
	got := Reversed(in)
	if want := []int{4, 3, 2, 1}; !slices.Equal(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if in[0] != 1 {
		t.Error("Reversed modified its input")
	}
	if got := Reversed([]int{}); got == nil || len(got) != 0 {
		t.Errorf("got %v for empty input, want empty non-nil slice", got)
	}
}

func Test_MapSlice(t *testing.T) {
	if MapSlice[int, string](nil, strconv.Itoa) != nil {
		t.Error("MapSlice(nil) should be nil")
	}
	strs := MapSlice([]int{2, 4, 6}, strconv.Itoa)
	if want := []string{"2", "4", "6"}; !slices.Equal(strs, want) {
		t.Errorf("MapSlice: got %v, want %v", strs, want)
	}
	if !SliceContains(strs, "4") || SliceContains(strs, "5") {
		t.Error("SliceContains returned wrong result")
	}
}
