package canteen

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/metrics"
	"github.com/BruksfildServices01/canteen-scheduler/internal/timezone"
)

type DeleteCanteen struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	log   *zerolog.Logger
	now   func() time.Time
}

func NewDeleteCanteen(
	repo domain.Repository,
	audit *audit.Dispatcher,
	log *zerolog.Logger,
) *DeleteCanteen {
	return &DeleteCanteen{
		repo:  repo,
		audit: audit,
		log:   log,
		now:   timezone.Now,
	}
}

// Execute cancels every Active reservation of the canteen and removes it
// in one transaction; either both happen or neither does. Reservations
// of other canteens are untouched.
func (uc *DeleteCanteen) Execute(
	ctx context.Context,
	actorID string,
	canteenID string,
) error {

	id, err := ids.Parse(canteenID)
	if err != nil {
		return err
	}

	var cancelled int64
	err = uc.repo.Transaction(ctx, func(tx domain.Repository) error {
		// blocks admissions for this canteen until the delete commits
		if _, err := tx.LockByID(ctx, id); err != nil {
			return err
		}

		n, err := tx.CancelActiveReservations(ctx, id, uc.now())
		if err != nil {
			return err
		}
		cancelled = n

		return tx.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	metrics.AddCancellations(metrics.ReasonCascade, int(cancelled))
	uc.log.Info().
		Str("canteen_id", id).
		Int64("cancelled_reservations", cancelled).
		Msg("canteen deleted")

	uc.audit.Dispatch(audit.Event{
		ActorID:  actorID,
		Action:   "canteen_deleted",
		Entity:   "canteen",
		EntityID: id,
		Metadata: map[string]any{"cancelled_reservations": cancelled},
	})

	return nil
}
