package canteen

import (
	"context"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type GetCanteen struct {
	repo domain.Repository
}

func NewGetCanteen(repo domain.Repository) *GetCanteen {
	return &GetCanteen{repo: repo}
}

func (uc *GetCanteen) Execute(ctx context.Context, canteenID string) (*models.Canteen, error) {
	id, err := ids.Parse(canteenID)
	if err != nil {
		return nil, err
	}
	return uc.repo.GetByID(ctx, id)
}

type ListCanteens struct {
	repo domain.Repository
}

func NewListCanteens(repo domain.Repository) *ListCanteens {
	return &ListCanteens{repo: repo}
}

func (uc *ListCanteens) Execute(ctx context.Context) ([]models.Canteen, error) {
	return uc.repo.List(ctx)
}
