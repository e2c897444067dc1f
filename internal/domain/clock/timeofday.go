package clock

import (
	"fmt"
	"time"
)

const TimeLayout = "15:04"

// TimeOfDay is a wall-clock time with minute granularity, stored as
// minutes since midnight. Values past 23:59 only appear as the exclusive
// end of an interval.
type TimeOfDay int

func At(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts HH:MM (00:00..23:59).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeLayout, s)
	if err != nil {
		return 0, fmt.Errorf("invalid time of day %q: %w", s, err)
	}
	return At(t.Hour(), t.Minute()), nil
}

func (t TimeOfDay) Hour() int {
	return int(t) / 60
}

// Minute is the minute within the hour.
func (t TimeOfDay) Minute() int {
	return int(t) % 60
}

func (t TimeOfDay) Add(minutes int) TimeOfDay {
	return t + TimeOfDay(minutes)
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
