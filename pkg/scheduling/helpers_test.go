package scheduling

import (
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"github.com/allocator-app/allocator-backend/pkg/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// 2021-03-01 is a Monday, which keeps the weekday arithmetic in these tests readable

func timeDate(year int, month time.Month, day int, hour int, min int, seconds int) time.Time {
	loc, _ := time.LoadLocation("Local")
	return time.Date(year, month, day, hour, min, seconds, 0, loc)
}

func testPreferences() users.SchedulingPreferences {
	return users.SchedulingPreferences{
		WorkDayStart: date.NewClock(9, 0),
		WorkDayEnd:   date.NewClock(17, 0),
		ActiveWeekdays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		MaxContinuousWork: 120 * time.Minute,
		BreakBuffer:       15 * time.Minute,
		MinimumBlockSize:  30 * time.Minute,
	}
}

func testWorkItem(title string, duration time.Duration, difficulty int, importance int, dueAt time.Time) *WorkItem {
	return &WorkItem{
		ID:                primitive.NewObjectID(),
		UserID:            primitive.NewObjectID(),
		Title:             title,
		EstimatedDuration: duration,
		Difficulty:        difficulty,
		Importance:        importance,
		DueAt:             dueAt,
		Status:            StatusPending,
	}
}

func testCommitment(span date.Timespan, label string) FixedCommitment {
	return FixedCommitment{
		ID:    primitive.NewObjectID(),
		Date:  span,
		Label: label,
	}
}
