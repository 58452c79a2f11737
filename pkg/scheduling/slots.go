package scheduling

import (
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/users"
)

// FreeSlot is a gap between commitments inside a work day. The Cursor marks how
// far allocation has consumed the slot; it only ever moves forward. Slots live
// for one scheduling run and are never persisted.
type FreeSlot struct {
	date.Timespan
	Cursor time.Time
}

// Remaining returns the capacity left in the slot
func (s *FreeSlot) Remaining() time.Duration {
	remaining := s.End.Sub(s.Cursor)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Consume advances the cursor; the cursor may overshoot the slot end, which
// just means the slot is used up
func (s *FreeSlot) Consume(duration time.Duration) {
	s.Cursor = s.Cursor.Add(duration)
}

// BuildSlots turns the commitments and work-hour preferences inside a planning
// window into an ordered list of free slots. Slots are chronological,
// non-overlapping and each at least MinimumBlockSize long. Days outside the
// active weekday set yield no slots; days without commitments yield one slot
// spanning the whole work-hour window. The inputs are not mutated, so identical
// inputs always produce an identical slot list.
func BuildSlots(commitments []FixedCommitment, preferences *users.SchedulingPreferences, window date.Timespan) []*FreeSlot {
	var slots []*FreeSlot

	if !window.IsStartBeforeEnd() {
		return slots
	}

	location := window.Start.Location()

	busy := make([]date.Timespan, 0, len(commitments))
	for _, commitment := range commitments {
		busy = append(busy, commitment.Date)
	}
	busy = date.MergeTimespans(busy)

	dayCursor := time.Date(window.Start.Year(), window.Start.Month(), window.Start.Day(), 0, 0, 0, 0, location)

	for !dayCursor.After(window.End) {
		day := dayCursor
		dayCursor = dayCursor.AddDate(0, 0, 1)

		if !preferences.IsActiveDay(day.Weekday()) {
			continue
		}

		workDay := date.Timespan{
			Start: preferences.WorkDayStart.On(day),
			End:   preferences.WorkDayEnd.On(day),
		}

		workDay, ok := workDay.ClampTo(window)
		if !ok {
			continue
		}

		slots = append(slots, carveDay(workDay, busy, preferences.MinimumBlockSize)...)
	}

	return slots
}

// carveDay walks the busy spans that touch one work day and emits the gaps
// between them
func carveDay(workDay date.Timespan, busy []date.Timespan, minimumBlockSize time.Duration) []*FreeSlot {
	var slots []*FreeSlot

	cursor := workDay.Start

	for _, span := range busy {
		if !span.IntersectsWith(workDay) {
			continue
		}

		clamped, ok := span.ClampTo(workDay)
		if !ok {
			continue
		}

		if cursor.Before(clamped.Start) {
			slots = appendSlot(slots, date.Timespan{Start: cursor, End: clamped.Start}, minimumBlockSize)
		}

		cursor = date.MaxTime(cursor, clamped.End)
	}

	if cursor.Before(workDay.End) {
		slots = appendSlot(slots, date.Timespan{Start: cursor, End: workDay.End}, minimumBlockSize)
	}

	return slots
}

func appendSlot(slots []*FreeSlot, gap date.Timespan, minimumBlockSize time.Duration) []*FreeSlot {
	if gap.Duration() < minimumBlockSize {
		return slots
	}

	return append(slots, &FreeSlot{Timespan: gap, Cursor: gap.Start})
}

// TotalCapacity sums the remaining capacity over a slot list
func TotalCapacity(slots []*FreeSlot) time.Duration {
	var total time.Duration
	for _, slot := range slots {
		total += slot.Remaining()
	}
	return total
}
