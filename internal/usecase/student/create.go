package student

import (
	"context"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/student"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
	"github.com/BruksfildServices01/canteen-scheduler/internal/validators"
)

type CreateStudent struct {
	repo         domain.Repository
	audit        *audit.Dispatcher
	verifyDomain bool
}

// NewCreateStudent builds the registration use case. With verifyDomain
// set, the email domain must resolve in DNS.
func NewCreateStudent(
	repo domain.Repository,
	audit *audit.Dispatcher,
	verifyDomain bool,
) *CreateStudent {
	return &CreateStudent{
		repo:         repo,
		audit:        audit,
		verifyDomain: verifyDomain,
	}
}

func (uc *CreateStudent) Execute(
	ctx context.Context,
	in domain.Draft,
) (*models.Student, error) {

	in = in.Normalize()
	violations := in.Validate()
	if len(violations) == 0 && uc.verifyDomain && !validators.IsEmailDomainValid(in.Email) {
		violations = append(violations, "email domain does not accept mail")
	}
	if len(violations) > 0 {
		return nil, httperr.Violations(violations)
	}

	taken, err := uc.repo.EmailTaken(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateEmail
	}

	s := &models.Student{
		ID:      ids.New(),
		Name:    in.Name,
		Email:   in.Email,
		IsAdmin: in.IsAdmin,
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  s.ID,
		Action:   "student_created",
		Entity:   "student",
		EntityID: s.ID,
	})

	return s, nil
}

type GetStudent struct {
	repo domain.Repository
}

func NewGetStudent(repo domain.Repository) *GetStudent {
	return &GetStudent{repo: repo}
}

func (uc *GetStudent) Execute(ctx context.Context, studentID string) (*models.Student, error) {
	id, err := ids.Parse(studentID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}
