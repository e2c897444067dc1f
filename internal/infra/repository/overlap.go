package repository

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

// countActiveOverlapping counts Active reservations where ownerColumn
// equals ownerID on date and [start_minute, end_minute) overlaps
// [start, end). Touching intervals do not count.
func countActiveOverlapping(
	db *gorm.DB,
	ownerColumn string,
	ownerID string,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (int64, error) {

	var count int64
	if err := db.
		Model(&models.Reservation{}).
		Where(ownerColumn+" = ? AND date = ? AND status = ?", ownerID, date, string(domain.StatusActive)).
		Where("start_minute < ? AND end_minute > ?", int(end), int(start)).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("count overlapping reservations: %w", err)
	}

	return count, nil
}
