package scheduling

import (
	"reflect"
	"testing"
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
)

func TestBuildSlots(t *testing.T) {
	preferences := testPreferences()

	var slotTests = []struct {
		name        string
		commitments []FixedCommitment
		window      date.Timespan
		out         []date.Timespan
	}{
		{
			"empty day yields one slot spanning the work hours",
			nil,
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 23, 59, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			},
		},
		{
			"commitment splits the day",
			[]FixedCommitment{
				testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 12, 0, 0), End: timeDate(2021, 3, 1, 13, 0, 0)}, "lunch"),
			},
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 23, 59, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 12, 0, 0)},
				{Start: timeDate(2021, 3, 1, 13, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			},
		},
		{
			"commitment overlapping the work day start",
			[]FixedCommitment{
				testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 8, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)}, "commute"),
			},
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 23, 59, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			},
		},
		{
			"gap below the minimum block size is discarded",
			[]FixedCommitment{
				testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 9, 20, 0), End: timeDate(2021, 3, 1, 12, 0, 0)}, "workshop"),
			},
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 23, 59, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 1, 12, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			},
		},
		{
			"weekend days yield no slots",
			nil,
			// Friday through Monday
			date.Timespan{Start: timeDate(2021, 3, 5, 0, 0, 0), End: timeDate(2021, 3, 8, 23, 59, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 5, 9, 0, 0), End: timeDate(2021, 3, 5, 17, 0, 0)},
				{Start: timeDate(2021, 3, 8, 9, 0, 0), End: timeDate(2021, 3, 8, 17, 0, 0)},
			},
		},
		{
			"window end mid-day clamps the last slot",
			nil,
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 14, 30, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 14, 30, 0)},
			},
		},
		{
			"overlapping commitments are merged before carving",
			[]FixedCommitment{
				testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 10, 0, 0), End: timeDate(2021, 3, 1, 12, 0, 0)}, "call"),
				testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 11, 0, 0), End: timeDate(2021, 3, 1, 13, 0, 0)}, "review"),
			},
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 23, 59, 0)},
			[]date.Timespan{
				{Start: timeDate(2021, 3, 1, 9, 0, 0), End: timeDate(2021, 3, 1, 10, 0, 0)},
				{Start: timeDate(2021, 3, 1, 13, 0, 0), End: timeDate(2021, 3, 1, 17, 0, 0)},
			},
		},
		{
			"day fully covered by a commitment yields no slots",
			[]FixedCommitment{
				testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 8, 0, 0), End: timeDate(2021, 3, 1, 18, 0, 0)}, "conference"),
			},
			date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 1, 23, 59, 0)},
			nil,
		},
	}

	for _, tt := range slotTests {
		t.Run(tt.name, func(t *testing.T) {
			slots := BuildSlots(tt.commitments, &preferences, tt.window)

			var spans []date.Timespan
			for _, slot := range slots {
				spans = append(spans, slot.Timespan)

				if !slot.Cursor.Equal(slot.Start) {
					t.Errorf("slot cursor should start at the slot start, got %s", slot.Cursor)
				}
			}

			if !reflect.DeepEqual(spans, tt.out) {
				t.Errorf("got %v, want %v", spans, tt.out)
			}
		})
	}
}

func TestBuildSlots_ConfigurableWeekdays(t *testing.T) {
	preferences := testPreferences()
	preferences.ActiveWeekdays = []time.Weekday{time.Saturday, time.Sunday}

	// Friday through Monday again; this time only the weekend is active
	window := date.Timespan{Start: timeDate(2021, 3, 5, 0, 0, 0), End: timeDate(2021, 3, 8, 23, 59, 0)}

	slots := BuildSlots(nil, &preferences, window)

	want := []date.Timespan{
		{Start: timeDate(2021, 3, 6, 9, 0, 0), End: timeDate(2021, 3, 6, 17, 0, 0)},
		{Start: timeDate(2021, 3, 7, 9, 0, 0), End: timeDate(2021, 3, 7, 17, 0, 0)},
	}

	var spans []date.Timespan
	for _, slot := range slots {
		spans = append(spans, slot.Timespan)
	}

	if !reflect.DeepEqual(spans, want) {
		t.Errorf("got %v, want %v", spans, want)
	}
}

func TestBuildSlots_Idempotent(t *testing.T) {
	preferences := testPreferences()

	commitments := []FixedCommitment{
		testCommitment(date.Timespan{Start: timeDate(2021, 3, 1, 12, 0, 0), End: timeDate(2021, 3, 1, 13, 0, 0)}, "lunch"),
		testCommitment(date.Timespan{Start: timeDate(2021, 3, 2, 9, 0, 0), End: timeDate(2021, 3, 2, 11, 0, 0)}, "standup"),
	}
	window := date.Timespan{Start: timeDate(2021, 3, 1, 0, 0, 0), End: timeDate(2021, 3, 5, 23, 59, 0)}

	first := BuildSlots(commitments, &preferences, window)
	second := BuildSlots(commitments, &preferences, window)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("identical inputs produced different slot lists: %v vs %v", first, second)
	}
}

func TestBuildSlots_EmptyWindow(t *testing.T) {
	preferences := testPreferences()

	window := date.Timespan{Start: timeDate(2021, 3, 1, 12, 0, 0), End: timeDate(2021, 3, 1, 12, 0, 0)}

	if slots := BuildSlots(nil, &preferences, window); len(slots) != 0 {
		t.Errorf("got %d slots, want 0", len(slots))
	}
}
