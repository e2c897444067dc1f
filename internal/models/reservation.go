package models

import "time"

// Reservation rows are never deleted; cancellation only flips Status.
// EndMinute is StartMinute+Duration, stored so overlap predicates stay
// plain column comparisons.
type Reservation struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	StudentID string `gorm:"size:36;not null;index:idx_reservations_student_date,priority:1" json:"student_id"`
	CanteenID string `gorm:"size:36;not null;index:idx_reservations_canteen_date,priority:1" json:"canteen_id"`

	Date        string `gorm:"size:10;not null;index:idx_reservations_student_date,priority:2;index:idx_reservations_canteen_date,priority:2" json:"date"`
	StartMinute int    `gorm:"not null" json:"start_minute"`
	EndMinute   int    `gorm:"not null" json:"end_minute"`
	Duration    int    `gorm:"not null" json:"duration"`

	Status      string     `gorm:"size:20;not null;default:'active'" json:"status"`
	CancelledAt *time.Time `json:"cancelled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
