package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type Repository interface {
	// Transaction runs fn against a repository bound to one store
	// transaction. fn returning an error rolls everything back.
	Transaction(ctx context.Context, fn func(tx Repository) error) error

	// -------- Canteen --------

	// LockCanteen loads the canteen with its working hours and holds a
	// row lock until the surrounding transaction ends.
	LockCanteen(
		ctx context.Context,
		canteenID string,
	) (*models.Canteen, error)

	// -------- Student --------
	StudentExists(
		ctx context.Context,
		studentID string,
	) (bool, error)

	// -------- Overlap counts --------
	CountStudentOverlapping(
		ctx context.Context,
		studentID string,
		date string,
		start clock.TimeOfDay,
		end clock.TimeOfDay,
	) (int64, error)

	CountActiveOverlapping(
		ctx context.Context,
		canteenID string,
		date string,
		start clock.TimeOfDay,
		end clock.TimeOfDay,
	) (int64, error)

	// -------- Reservation --------
	Create(
		ctx context.Context,
		r *models.Reservation,
	) error

	GetByID(
		ctx context.Context,
		id string,
	) (*models.Reservation, error)

	MarkCancelled(
		ctx context.Context,
		id string,
		at time.Time,
	) error
}

// Locker serializes admissions that share a key across every running
// instance. unlock must be called exactly once.
type Locker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// AdmissionKey scopes admission serialization to one canteen and day.
func AdmissionKey(canteenID, date string) string {
	return "admission:" + canteenID + ":" + date
}

// StudentKey serializes one student's admissions on a day across
// canteens. It is always taken after AdmissionKey, and a request holds
// one key of each kind, so two admissions cannot wait on each other.
func StudentKey(studentID, date string) string {
	return "student:" + studentID + ":" + date
}
