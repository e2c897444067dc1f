// Package auth answers whether a caller may use administrative operations.
package auth

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/student"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
)

type Service struct {
	students student.Repository
	log      *zerolog.Logger
}

func NewService(students student.Repository, log *zerolog.Logger) *Service {
	return &Service{students: students, log: log}
}

// IsAdmin is false for malformed or unknown subjects. Store failures are
// returned so the caller can answer 500 instead of 403.
func (s *Service) IsAdmin(ctx context.Context, subjectID string) (bool, error) {
	id, err := ids.Parse(subjectID)
	if err != nil {
		return false, nil
	}

	st, err := s.students.GetByID(ctx, id)
	if errors.Is(err, student.ErrNotFound) {
		s.log.Debug().Str("subject", id).Msg("admin check for unknown subject")
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return st.IsAdmin, nil
}
