package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type ReservationGormRepository struct {
	db *gorm.DB
}

func NewReservationGormRepository(db *gorm.DB) *ReservationGormRepository {
	return &ReservationGormRepository{db: db}
}

func (r *ReservationGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&ReservationGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Canteen
// --------------------------------------------------

func (r *ReservationGormRepository) LockCanteen(
	ctx context.Context,
	canteenID string,
) (*models.Canteen, error) {

	var c models.Canteen
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&c, "id = ?", canteenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCanteenNotFound
		}
		return nil, fmt.Errorf("lock canteen: %w", err)
	}
	return &c, nil
}

// --------------------------------------------------
// Student
// --------------------------------------------------

func (r *ReservationGormRepository) StudentExists(
	ctx context.Context,
	studentID string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("id = ?", studentID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("lookup student: %w", err)
	}
	return count > 0, nil
}

// --------------------------------------------------
// Overlap counts
// --------------------------------------------------

func (r *ReservationGormRepository) CountStudentOverlapping(
	ctx context.Context,
	studentID string,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (int64, error) {
	return countActiveOverlapping(r.db.WithContext(ctx), "student_id", studentID, date, start, end)
}

func (r *ReservationGormRepository) CountActiveOverlapping(
	ctx context.Context,
	canteenID string,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (int64, error) {
	return countActiveOverlapping(r.db.WithContext(ctx), "canteen_id", canteenID, date, start, end)
}

// --------------------------------------------------
// Reservation
// --------------------------------------------------

func (r *ReservationGormRepository) Create(
	ctx context.Context,
	res *models.Reservation,
) error {
	if err := r.db.WithContext(ctx).Create(res).Error; err != nil {
		return fmt.Errorf("create reservation: %w", err)
	}
	return nil
}

func (r *ReservationGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Reservation, error) {

	var res models.Reservation
	if err := r.db.WithContext(ctx).
		First(&res, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get reservation: %w", err)
	}
	return &res, nil
}

// MarkCancelled only touches rows that are still Active.
func (r *ReservationGormRepository) MarkCancelled(
	ctx context.Context,
	id string,
	at time.Time,
) error {

	if err := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("id = ? AND status = ?", id, string(domain.StatusActive)).
		Updates(map[string]any{
			"status":       string(domain.StatusCancelled),
			"cancelled_at": at,
			"updated_at":   at,
		}).Error; err != nil {
		return fmt.Errorf("cancel reservation: %w", err)
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReservationGormRepository)(nil)
