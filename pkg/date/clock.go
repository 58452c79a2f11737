package date

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a time of day without a date, used for recurring day bounds like
// work-hour windows
type Clock struct {
	Hour   int `json:"hour" bson:"hour" validate:"min=0,max=23"`
	Minute int `json:"minute" bson:"minute" validate:"min=0,max=59"`
}

// NewClock builds a Clock from an hour and a minute
func NewClock(hour int, minute int) Clock {
	return Clock{Hour: hour, Minute: minute}
}

// ParseClock parses a "15:04" style string into a Clock
func ParseClock(value string) (Clock, error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return Clock{}, fmt.Errorf("clock %q is not in HH:MM format", value)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return Clock{}, fmt.Errorf("clock %q has an invalid hour: %v", value, err)
	}

	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return Clock{}, fmt.Errorf("clock %q has an invalid minute: %v", value, err)
	}

	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return Clock{}, fmt.Errorf("clock %q is out of range", value)
	}

	return Clock{Hour: hour, Minute: minute}, nil
}

// On anchors a Clock on the calendar day of the given time, in that time's location
func (c Clock) On(day time.Time) time.Time {
	year, month, dayOfMonth := day.Date()
	return time.Date(year, month, dayOfMonth, c.Hour, c.Minute, 0, 0, day.Location())
}

// SecondsFromMidnight converts a Clock into seconds since midnight
func (c Clock) SecondsFromMidnight() int {
	return c.Hour*3600 + c.Minute*60
}

// Before reports whether c reads earlier on the dial than other
func (c Clock) Before(other Clock) bool {
	return c.SecondsFromMidnight() < other.SecondsFromMidnight()
}

// String prints a clock in HH:MM format
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}
