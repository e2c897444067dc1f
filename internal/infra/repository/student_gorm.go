package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/student"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type StudentGormRepository struct {
	db *gorm.DB
}

func NewStudentGormRepository(db *gorm.DB) *StudentGormRepository {
	return &StudentGormRepository{db: db}
}

func (r *StudentGormRepository) Create(
	ctx context.Context,
	s *models.Student,
) error {
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return domain.ErrDuplicateEmail
		}
		return fmt.Errorf("create student: %w", err)
	}
	return nil
}

func (r *StudentGormRepository) GetByID(
	ctx context.Context,
	id string,
) (*models.Student, error) {

	var s models.Student
	if err := r.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get student: %w", err)
	}
	return &s, nil
}

func (r *StudentGormRepository) EmailTaken(
	ctx context.Context,
	email string,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Student{}).
		Where("email = ?", email).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("check student email: %w", err)
	}
	return count > 0, nil
}

// Compile-time check
var _ domain.Repository = (*StudentGormRepository)(nil)
