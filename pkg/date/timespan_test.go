package date

import (
	"reflect"
	"testing"
	"time"
)

func timeDate(year int, month time.Month, day int, hour int, min int, seconds int) time.Time {
	loc, _ := time.LoadLocation("Local")
	return time.Date(year, month, day, hour, min, seconds, 0, loc)
}

func TestTimespan_Duration(t *testing.T) {
	timespan := Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 12, 30, 0)}

	if timespan.Duration() != 3*time.Hour+30*time.Minute {
		t.Errorf("got %s, want 3h30m", timespan.Duration())
	}
}

func TestTimespan_IsStartBeforeEnd(t *testing.T) {
	var timespanTests = []struct {
		in  Timespan
		out bool
	}{
		{Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)}, true},
		{Timespan{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 9, 0, 0)}, false},
		{Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 9, 0, 0)}, false},
	}

	for _, tt := range timespanTests {
		if got := tt.in.IsStartBeforeEnd(); got != tt.out {
			t.Errorf("%s: got %v, want %v", tt.in.String(), got, tt.out)
		}
	}
}

func TestTimespan_IntersectsWith(t *testing.T) {
	var intersectionTests = []struct {
		in    Timespan
		other Timespan
		out   bool
	}{
		// Overlapping
		{
			Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 12, 0, 0)},
			true,
		},
		// Contained
		{
			Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 1, 12, 0, 0), End: timeDate(2021, 3, 1, 13, 0, 0)},
			true,
		},
		// Touching ends don't intersect
		{
			Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			false,
		},
		// Disjoint
		{
			Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 2, 9, 0, 0), End: timeDate(2021, 3, 2, 10, 0, 0)},
			false,
		},
	}

	for _, tt := range intersectionTests {
		if got := tt.in.IntersectsWith(tt.other); got != tt.out {
			t.Errorf("%s vs %s: got %v, want %v", tt.in.String(), tt.other.String(), got, tt.out)
		}
	}
}

func TestTimespan_ClampTo(t *testing.T) {
	bounds := Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)}

	var clampTests = []struct {
		in   Timespan
		out  Timespan
		left bool
	}{
		// Fully inside
		{
			Timespan{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			true,
		},
		// Overflows both ends
		{
			Timespan{Start: timeDate(2021, 3, 1, 7, 0, 0), End: timeDate(2021, 3, 1, 19, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			true,
		},
		// Entirely before the bounds
		{
			Timespan{Start: timeDate(2021, 3, 1, 6, 0, 0), End: timeDate(2021, 3, 1, 8, 0, 0)},
			Timespan{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 8, 0, 0)},
			false,
		},
	}

	for _, tt := range clampTests {
		clamped, left := tt.in.ClampTo(bounds)
		if left != tt.left {
			t.Errorf("%s: got left=%v, want %v", tt.in.String(), left, tt.left)
			continue
		}
		if left && !reflect.DeepEqual(clamped, tt.out) {
			t.Errorf("%s: got %s, want %s", tt.in.String(), clamped.String(), tt.out.String())
		}
	}
}

func TestMergeTimespans(t *testing.T) {
	var mergeTests = []struct {
		in  []Timespan
		out []Timespan
	}{
		// Case empty
		{nil, nil},
		// Case unsorted overlapping
		{
			[]Timespan{
				{Start: timeDate(2021, 3, 1, 13, 0, 0), End: timeDate(2021, 3, 1, 14, 0, 0)},
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)},
				{Start: timeDate(2021, 3, 1, 9, 30, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			},
			[]Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
				{Start: timeDate(2021, 3, 1, 13, 0, 0), End: timeDate(2021, 3, 1, 14, 0, 0)},
			},
		},
		// Case touching spans merge
		{
			[]Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)},
				{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			},
			[]Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 11, 0, 0)},
			},
		},
		// Case contained span disappears
		{
			[]Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
				{Start: timeDate(2021, 3, 1, 12, 0, 0), End: timeDate(2021, 3, 1, 13, 0, 0)},
			},
			[]Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			},
		},
	}

	for index, tt := range mergeTests {
		got := MergeTimespans(tt.in)
		if !reflect.DeepEqual(got, tt.out) {
			t.Errorf("case %d: got %v, want %v", index, got, tt.out)
		}
	}
}

func TestMergeTimespans_DoesNotMutateInput(t *testing.T) {
	input := []Timespan{
		{Start: timeDate(2021, 3, 1, 13, 0, 0), End: timeDate(2021, 3, 1, 14, 0, 0)},
		{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)},
	}

	original := make([]Timespan, len(input))
	copy(original, input)

	MergeTimespans(input)

	if !reflect.DeepEqual(input, original) {
		t.Errorf("input was mutated: got %v, want %v", input, original)
	}
}
