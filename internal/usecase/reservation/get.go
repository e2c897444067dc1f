package reservation

import (
	"context"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/reservation"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type GetReservation struct {
	repo domain.Repository
}

func NewGetReservation(repo domain.Repository) *GetReservation {
	return &GetReservation{repo: repo}
}

func (uc *GetReservation) Execute(ctx context.Context, reservationID string) (*models.Reservation, error) {
	id, err := ids.Parse(reservationID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}
