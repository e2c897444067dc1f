package dto

import (
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type ReservationDTO struct {
	ID          string     `json:"id"`
	StudentID   string     `json:"student_id"`
	CanteenID   string     `json:"canteen_id"`
	Date        string     `json:"date"`
	Time        string     `json:"time"`
	Duration    int        `json:"duration"`
	Status      string     `json:"status"`
	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

func Reservation(r *models.Reservation) ReservationDTO {
	return ReservationDTO{
		ID:          r.ID,
		StudentID:   r.StudentID,
		CanteenID:   r.CanteenID,
		Date:        r.Date,
		Time:        clock.TimeOfDay(r.StartMinute).String(),
		Duration:    r.Duration,
		Status:      r.Status,
		CancelledAt: r.CancelledAt,
		CreatedAt:   r.CreatedAt,
	}
}
