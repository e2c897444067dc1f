package canteen

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type CreateCanteen struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateCanteen(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateCanteen {
	return &CreateCanteen{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateCanteen) Execute(
	ctx context.Context,
	actorID string,
	in domain.Draft,
) (*models.Canteen, error) {

	hours, violations := in.Validate()
	if len(violations) > 0 {
		return nil, httperr.Violations(violations)
	}

	name := strings.TrimSpace(in.Name)
	key := domain.NameKey(name)

	taken, err := uc.repo.NameTaken(ctx, key, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrDuplicateName
	}

	id := ids.New()
	c := &models.Canteen{
		ID:           id,
		Name:         name,
		NameKey:      key,
		Location:     strings.TrimSpace(in.Location),
		Capacity:     in.Capacity,
		WorkingHours: domain.ToModels(id, hours),
	}

	// the unique index on name_key still catches a concurrent create
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "canteen_created",
		Entity:   "canteen",
		EntityID: c.ID,
		Metadata: map[string]any{"name": c.Name, "capacity": c.Capacity},
	})

	return c, nil
}
