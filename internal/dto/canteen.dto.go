package dto

import (
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

type WorkingHourDTO struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

type CanteenDTO struct {
	ID           string           `json:"id"`
	Name         string           `json:"name"`
	Location     string           `json:"location"`
	Capacity     int              `json:"capacity"`
	WorkingHours []WorkingHourDTO `json:"working_hours"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

func Canteen(c *models.Canteen) CanteenDTO {
	hours := canteen.FromModels(c.WorkingHours)
	out := CanteenDTO{
		ID:           c.ID,
		Name:         c.Name,
		Location:     c.Location,
		Capacity:     c.Capacity,
		WorkingHours: make([]WorkingHourDTO, 0, len(hours)),
		CreatedAt:    c.CreatedAt,
		UpdatedAt:    c.UpdatedAt,
	}
	for _, wh := range hours {
		out.WorkingHours = append(out.WorkingHours, WorkingHourDTO{
			Meal: string(wh.Meal),
			From: wh.Start.String(),
			To:   wh.End.String(),
		})
	}
	return out
}

func Canteens(cs []models.Canteen) []CanteenDTO {
	out := make([]CanteenDTO, 0, len(cs))
	for i := range cs {
		out = append(out, Canteen(&cs[i]))
	}
	return out
}
