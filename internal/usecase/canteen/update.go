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

type UpdateCanteen struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateCanteen(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateCanteen {
	return &UpdateCanteen{
		repo:  repo,
		audit: audit,
	}
}

// Execute changes only the fields present in patch. Supplied working
// hours replace the whole set.
func (uc *UpdateCanteen) Execute(
	ctx context.Context,
	actorID string,
	canteenID string,
	patch domain.Patch,
) (*models.Canteen, error) {

	id, err := ids.Parse(canteenID)
	if err != nil {
		return nil, err
	}

	hours, violations := patch.Validate()
	if len(violations) > 0 {
		return nil, httperr.Violations(violations)
	}

	var changed []string
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		c, err := tx.LockByID(ctx, id)
		if err != nil {
			return err
		}

		if name, ok := patch.Name.Get(); ok {
			name = strings.TrimSpace(name)
			key := domain.NameKey(name)
			if key != c.NameKey {
				taken, err := tx.NameTaken(ctx, key, c.ID)
				if err != nil {
					return err
				}
				if taken {
					return domain.ErrDuplicateName
				}
			}
			c.Name, c.NameKey = name, key
			changed = append(changed, "name")
		}
		if location, ok := patch.Location.Get(); ok {
			c.Location = strings.TrimSpace(location)
			changed = append(changed, "location")
		}
		if capacity, ok := patch.Capacity.Get(); ok {
			c.Capacity = capacity
			changed = append(changed, "capacity")
		}

		if len(changed) > 0 {
			if err := tx.Save(ctx, c); err != nil {
				return err
			}
		}

		if hours != nil {
			if err := tx.ReplaceWorkingHours(ctx, c.ID, domain.ToModels(c.ID, hours)); err != nil {
				return err
			}
			changed = append(changed, "working_hours")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	updated, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if len(changed) > 0 {
		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   "canteen_updated",
			Entity:   "canteen",
			EntityID: id,
			Metadata: map[string]any{"fields": changed},
		})
	}

	return updated, nil
}
