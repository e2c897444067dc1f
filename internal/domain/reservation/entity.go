package reservation

import (
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel moves an Active reservation to Cancelled. It reports false and
// leaves r untouched when r is already Cancelled.
func Cancel(r *models.Reservation, now time.Time) bool {
	if Status(r.Status) == StatusCancelled {
		return false
	}

	r.Status = string(StatusCancelled)
	r.CancelledAt = &now
	return true
}

// StartOf is the first minute of r's [start, end) interval.
func StartOf(r *models.Reservation) clock.TimeOfDay {
	return clock.TimeOfDay(r.StartMinute)
}
