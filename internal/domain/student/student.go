package student

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
	"github.com/BruksfildServices01/canteen-scheduler/internal/validators"
)

var (
	ErrNotFound       = httperr.ErrNotFound("student_not_found")
	ErrDuplicateEmail = httperr.ErrConflict("duplicate_email")
)

const maxNameLength = 200

type Repository interface {
	Create(ctx context.Context, s *models.Student) error
	GetByID(ctx context.Context, id string) (*models.Student, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
}

// Draft is a student as submitted for registration.
type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
}

// Normalize trims the name and lower-cases the email.
func (d Draft) Normalize() Draft {
	d.Name = strings.TrimSpace(d.Name)
	d.Email = validators.NormalizeEmail(d.Email)
	return d
}

func (d Draft) Validate() []string {
	var violations []string

	switch name := strings.TrimSpace(d.Name); {
	case name == "":
		violations = append(violations, "name is required")
	case utf8.RuneCountInString(name) > maxNameLength:
		violations = append(violations, fmt.Sprintf("name cannot exceed %d characters", maxNameLength))
	}

	if !validators.IsEmailSyntaxValid(d.Email) {
		violations = append(violations, "email is not a valid address")
	}

	return violations
}
