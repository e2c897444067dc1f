package reservation

import (
	"context"
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/metrics"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
	"github.com/BruksfildServices01/canteen-scheduler/internal/timezone"
)

type CancelReservation struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCancelReservation(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelReservation {
	return &CancelReservation{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute checks existence, then ownership, before any mutation.
// Cancelling an already cancelled reservation returns it unchanged.
func (uc *CancelReservation) Execute(
	ctx context.Context,
	reservationID string,
	requesterID string,
) (*models.Reservation, error) {

	id, err := ids.Parse(reservationID)
	if err != nil {
		return nil, err
	}

	res, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	requester, err := ids.Parse(requesterID)
	if err != nil || requester != res.StudentID {
		return nil, domain.ErrNotOwner
	}

	now := uc.now()
	if !domain.Cancel(res, now) {
		return res, nil
	}

	if err := uc.repo.MarkCancelled(ctx, res.ID, now); err != nil {
		return nil, err
	}

	metrics.AddCancellations(metrics.ReasonOwner, 1)
	uc.audit.Dispatch(audit.Event{
		ActorID:  requester,
		Action:   "reservation_cancelled",
		Entity:   "reservation",
		EntityID: res.ID,
	})

	return res, nil
}
