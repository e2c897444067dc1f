package reservation

import (
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/timezone"
)

// Allowed reservation lengths in minutes.
const (
	ShortDuration = 30
	LongDuration  = 60
)

// Request is an admission request after boundary parsing.
type Request struct {
	StudentID string
	CanteenID string
	Date      time.Time
	Start     clock.TimeOfDay
	Duration  int
}

func (r Request) End() clock.TimeOfDay {
	return r.Start.Add(r.Duration)
}

// CheckShape runs the checks that need no store access, in order: the
// date is not before today, the duration is 30 or 60, and the start
// sits on the hour or half hour.
func CheckShape(r Request, now time.Time) error {
	if r.Date.Before(timezone.Today(now)) {
		return ErrPastDate
	}
	if r.Duration != ShortDuration && r.Duration != LongDuration {
		return ErrInvalidDur
	}
	if m := r.Start.Minute(); m != 0 && m != 30 {
		return ErrInvalidAlign
	}
	return nil
}

// ParseSchedule parses the YYYY-MM-DD date and HH:MM start of a request.
func ParseSchedule(date, start string) (time.Time, clock.TimeOfDay, error) {
	d, err := timezone.ParseDate(date)
	if err != nil {
		return time.Time{}, 0, ErrInvalidDate
	}
	t, err := clock.ParseTimeOfDay(start)
	if err != nil {
		return time.Time{}, 0, ErrInvalidTime
	}
	return d, t, nil
}
