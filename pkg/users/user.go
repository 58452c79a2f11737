package users

import (
	"time"

	"github.com/allocator-app/allocator-backend/pkg/date"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the model for a user profile and its scheduling preferences
type User struct {
	ID             primitive.ObjectID `json:"id" bson:"_id"`
	Firstname      string             `json:"firstname" bson:"firstname" validate:"required"`
	Lastname       string             `json:"lastname" bson:"lastname" validate:"required"`
	Email          string             `json:"email" bson:"email" validate:"required,email"`
	Timezone       string             `json:"timezone" bson:"timezone"`
	CreatedAt      time.Time          `json:"createdAt" bson:"createdAt" validate:"isdefault"`
	LastModifiedAt time.Time          `json:"lastModifiedAt" bson:"lastModifiedAt" validate:"isdefault"`

	Preferences SchedulingPreferences `json:"preferences" bson:"preferences"`
}

// SchedulingPreferences control how free slots are carved out of a user's days
type SchedulingPreferences struct {
	WorkDayStart      date.Clock     `json:"workDayStart" bson:"workDayStart"`
	WorkDayEnd        date.Clock     `json:"workDayEnd" bson:"workDayEnd"`
	ActiveWeekdays    []time.Weekday `json:"activeWeekdays" bson:"activeWeekdays"`
	MaxContinuousWork time.Duration  `json:"maxContinuousWork" bson:"maxContinuousWork" validate:"required,gt=0"`
	BreakBuffer       time.Duration  `json:"breakBuffer" bson:"breakBuffer" validate:"min=0"`
	MinimumBlockSize  time.Duration  `json:"minimumBlockSize" bson:"minimumBlockSize" validate:"required,gt=0"`
}

// DefaultPreferences returns the preferences new users start with
func DefaultPreferences() SchedulingPreferences {
	return SchedulingPreferences{
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

// IsActiveDay reports whether the given weekday is part of the active set
func (p *SchedulingPreferences) IsActiveDay(weekday time.Weekday) bool {
	for _, active := range p.ActiveWeekdays {
		if active == weekday {
			return true
		}
	}
	return false
}
