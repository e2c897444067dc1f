package canteen

import (
	"context"
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type Repository interface {
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Canteen --------
	Create(
		ctx context.Context,
		c *models.Canteen,
	) error

	// GetByID preloads working hours. Missing rows yield ErrCanteenNotFound.
	GetByID(
		ctx context.Context,
		id string,
	) (*models.Canteen, error)

	// LockByID is GetByID plus a row lock held until the surrounding
	// transaction ends. Admissions lock the same row, so none can commit
	// for this canteen while the lock is held.
	LockByID(
		ctx context.Context,
		id string,
	) (*models.Canteen, error)

	// List returns every canteen ordered by name.
	List(ctx context.Context) ([]models.Canteen, error)

	// NameTaken reports whether another canteen (not excludeID) already
	// uses nameKey.
	NameTaken(
		ctx context.Context,
		nameKey string,
		excludeID string,
	) (bool, error)

	// Save persists scalar fields only.
	Save(
		ctx context.Context,
		c *models.Canteen,
	) error

	ReplaceWorkingHours(
		ctx context.Context,
		canteenID string,
		hours []models.WorkingHour,
	) error

	Delete(
		ctx context.Context,
		id string,
	) error

	// -------- Reservations --------

	// CancelActiveReservations flips every Active reservation of the
	// canteen to Cancelled and returns how many changed.
	CancelActiveReservations(
		ctx context.Context,
		canteenID string,
		at time.Time,
	) (int64, error)

	CountActiveOverlapping(
		ctx context.Context,
		canteenID string,
		date string,
		start clock.TimeOfDay,
		end clock.TimeOfDay,
	) (int64, error)
}
