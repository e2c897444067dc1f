package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type CanteenGormRepository struct {
	db *gorm.DB
}

func NewCanteenGormRepository(db *gorm.DB) *CanteenGormRepository {
	return &CanteenGormRepository{db: db}
}

func (r *CanteenGormRepository) Transaction(
	ctx context.Context,
	fn func(tx domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&CanteenGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Canteen
// --------------------------------------------------

func (r *CanteenGormRepository) Create(
	ctx context.Context,
	c *models.Canteen,
) error {

	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("create canteen: %w", err)
	}
	return nil
}

func (r *CanteenGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Canteen, error) {

	var c models.Canteen
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCanteenNotFound
		}
		return nil, fmt.Errorf("get canteen: %w", err)
	}
	return &c, nil
}

func (r *CanteenGormRepository) LockByID(
	ctx context.Context,
	id string,
) (*models.Canteen, error) {

	var c models.Canteen
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCanteenNotFound
		}
		return nil, fmt.Errorf("lock canteen: %w", err)
	}
	return &c, nil
}

func (r *CanteenGormRepository) List(ctx context.Context) ([]models.Canteen, error) {
	var canteens []models.Canteen
	if err := r.db.WithContext(ctx).
		Preload("WorkingHours", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("name_key ASC").
		Find(&canteens).Error; err != nil {
		return nil, fmt.Errorf("list canteens: %w", err)
	}
	return canteens, nil
}

func (r *CanteenGormRepository) NameTaken(
	ctx context.Context,
	nameKey string,
	excludeID string,
) (bool, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Canteen{}).
		Where("name_key = ?", nameKey)
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return false, fmt.Errorf("check canteen name: %w", err)
	}
	return count > 0, nil
}

func (r *CanteenGormRepository) Save(
	ctx context.Context,
	c *models.Canteen,
) error {

	res := r.db.WithContext(ctx).
		Model(&models.Canteen{}).
		Where("id = ?", c.ID).
		Updates(map[string]any{
			"name":       c.Name,
			"name_key":   c.NameKey,
			"location":   c.Location,
			"capacity":   c.Capacity,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		if httperr.IsUniqueViolation(res.Error) {
			return domain.ErrDuplicateName
		}
		return fmt.Errorf("update canteen: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCanteenNotFound
	}
	return nil
}

func (r *CanteenGormRepository) ReplaceWorkingHours(
	ctx context.Context,
	canteenID string,
	hours []models.WorkingHour,
) error {

	db := r.db.WithContext(ctx)
	if err := db.
		Where("canteen_id = ?", canteenID).
		Delete(&models.WorkingHour{}).Error; err != nil {
		return fmt.Errorf("clear working hours: %w", err)
	}

	if len(hours) == 0 {
		return nil
	}
	if err := db.Create(&hours).Error; err != nil {
		return fmt.Errorf("store working hours: %w", err)
	}
	return nil
}

func (r *CanteenGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	db := r.db.WithContext(ctx)
	if err := db.
		Where("canteen_id = ?", id).
		Delete(&models.WorkingHour{}).Error; err != nil {
		return fmt.Errorf("delete working hours: %w", err)
	}

	res := db.Delete(&models.Canteen{}, "id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete canteen: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrCanteenNotFound
	}
	return nil
}

// --------------------------------------------------
// Reservations
// --------------------------------------------------

func (r *CanteenGormRepository) CancelActiveReservations(
	ctx context.Context,
	canteenID string,
	at time.Time,
) (int64, error) {

	res := r.db.WithContext(ctx).
		Model(&models.Reservation{}).
		Where("canteen_id = ? AND status = ?", canteenID, string(reservation.StatusActive)).
		Updates(map[string]any{
			"status":       string(reservation.StatusCancelled),
			"cancelled_at": at,
			"updated_at":   at,
		})
	if res.Error != nil {
		return 0, fmt.Errorf("cancel canteen reservations: %w", res.Error)
	}
	return res.RowsAffected, nil
}

func (r *CanteenGormRepository) CountActiveOverlapping(
	ctx context.Context,
	canteenID string,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (int64, error) {
	return countActiveOverlapping(r.db.WithContext(ctx), "canteen_id", canteenID, date, start, end)
}

// Compile-time check
var _ domain.Repository = (*CanteenGormRepository)(nil)
