package date

import (
	"fmt"
	"sort"
	"time"
)

// TimeBeforeOrEquals returns whether t1 is before or equal t2
func TimeBeforeOrEquals(t1 time.Time, t2 time.Time) bool {
	return t1.UnixNano() <= t2.UnixNano()
}

// TimeAfterOrEquals returns whether t1 is after or equal t2
func TimeAfterOrEquals(t1 time.Time, t2 time.Time) bool {
	return t1.UnixNano() >= t2.UnixNano()
}

// Timespan is a simple timespan between two times/dates
type Timespan struct {
	Start time.Time `json:"start" bson:"start" validate:"required"`
	End   time.Time `json:"end" bson:"end" validate:"required"`
}

// Duration simply gets the duration of a Timespan
func (t *Timespan) Duration() time.Duration {
	return t.End.Sub(t.Start)
}

// IsStartBeforeEnd checks if start is earlier than end
func (t *Timespan) IsStartBeforeEnd() bool {
	return t.Start.Before(t.End)
}

// String prints a timespan string
func (t *Timespan) String() string {
	return fmt.Sprintf("%s - %s", t.Start, t.End)
}

// IntersectsWith checks if one timespan intersects with another
func (t *Timespan) IntersectsWith(timespan Timespan) bool {
	return t.Start.Before(timespan.End) && t.End.After(timespan.Start)
}

// Contains checks if timespan t contains another Timespan timespan
func (t *Timespan) Contains(timespan Timespan) bool {
	return TimeAfterOrEquals(timespan.Start, t.Start) &&
		TimeBeforeOrEquals(timespan.End, t.End)
}

// In changes the location on a Timespan
func (t *Timespan) In(location *time.Location) Timespan {
	t.Start = t.Start.In(location)
	t.End = t.End.In(location)

	return *t
}

// ClampTo cuts a Timespan down to the bounds of another and reports whether
// anything is left of it
func (t *Timespan) ClampTo(bounds Timespan) (Timespan, bool) {
	clamped := *t
	if clamped.Start.Before(bounds.Start) {
		clamped.Start = bounds.Start
	}
	if clamped.End.After(bounds.End) {
		clamped.End = bounds.End
	}

	return clamped, clamped.IsStartBeforeEnd()
}

// MinTime returns the earlier of two times
func MinTime(a, b time.Time) time.Time {
	if a.UnixNano() < b.UnixNano() {
		return a
	}
	return b
}

// MaxTime returns the later of two times
func MaxTime(a, b time.Time) time.Time {
	if a.UnixNano() > b.UnixNano() {
		return a
	}
	return b
}

// MergeTimespans merges Timespan structs together in case they overlap, they don't have to be presorted
func MergeTimespans(timespans []Timespan) []Timespan {
	if len(timespans) == 0 {
		return nil
	}

	merged := make([]Timespan, len(timespans))
	copy(merged, timespans)

	sort.Slice(merged, func(i, j int) bool {
		return merged[i].Start.Before(merged[j].Start)
	})

	index := 0

	for i := 1; i < len(merged); i++ {
		if merged[index].End.UnixNano() >= merged[i].Start.UnixNano() {
			merged[index].End = MaxTime(merged[index].End, merged[i].End)
		} else {
			index++
			merged[index] = merged[i]
		}
	}

	return merged[:index+1]
}
