package canteen

import (
	"fmt"
	"sort"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/interval"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

// WorkingHour is a canteen's recurring daily open window for one meal.
type WorkingHour struct {
	Meal  Meal
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

// WorkingHourInput is the raw, unparsed form accepted at the boundary.
type WorkingHourInput struct {
	Meal string `json:"meal"`
	From string `json:"from"`
	To   string `json:"to"`
}

// ParseWorkingHours parses and validates a full working-hour set. It
// returns every violation found rather than stopping at the first.
func ParseWorkingHours(in []WorkingHourInput) ([]WorkingHour, []string) {
	var (
		out        = make([]WorkingHour, 0, len(in))
		violations []string
	)

	for _, raw := range in {
		meal, err := ParseMeal(raw.Meal)
		if err != nil {
			violations = append(violations, err.Error())
			continue
		}
		from, errFrom := clock.ParseTimeOfDay(raw.From)
		to, errTo := clock.ParseTimeOfDay(raw.To)
		if errFrom != nil || errTo != nil {
			violations = append(violations, fmt.Sprintf("%s: time must be in HH:mm format (00:00-23:59)", meal))
			continue
		}
		out = append(out, WorkingHour{Meal: meal, Start: from, End: to})
	}

	violations = append(violations, ValidateWorkingHours(out)...)
	return out, violations
}

// ValidateWorkingHours checks the per-canteen rules: start < end,
// each meal at most once, no two windows overlapping.
func ValidateWorkingHours(hours []WorkingHour) []string {
	var violations []string

	seen := make(map[Meal]bool, len(hours))
	for _, wh := range hours {
		if seen[wh.Meal] {
			violations = append(violations, fmt.Sprintf("duplicate meal: %s", wh.Meal))
		}
		seen[wh.Meal] = true

		if wh.Start >= wh.End {
			violations = append(violations, fmt.Sprintf("%s: from time must be earlier than to time", wh.Meal))
		}
	}

	for i := 0; i < len(hours); i++ {
		for j := i + 1; j < len(hours); j++ {
			a, b := hours[i], hours[j]
			if interval.Overlaps(a.Start, a.End, b.Start, b.End) {
				violations = append(violations, fmt.Sprintf(
					"working hours overlap: %s (%s-%s) and %s (%s-%s)",
					a.Meal, a.Start, a.End, b.Meal, b.Start, b.End,
				))
			}
		}
	}

	return violations
}

// Fits reports whether [start, end) lies fully inside at least one window.
func Fits(hours []WorkingHour, start, end clock.TimeOfDay) bool {
	for _, wh := range hours {
		if interval.Contains(wh.Start, wh.End, start, end) {
			return true
		}
	}
	return false
}

// FromModels restores stored order.
func FromModels(rows []models.WorkingHour) []WorkingHour {
	sorted := append([]models.WorkingHour(nil), rows...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Position < sorted[j].Position
	})

	out := make([]WorkingHour, 0, len(sorted))
	for _, r := range sorted {
		out = append(out, WorkingHour{
			Meal:  Meal(r.Meal),
			Start: clock.TimeOfDay(r.StartMinute),
			End:   clock.TimeOfDay(r.EndMinute),
		})
	}
	return out
}

func ToModels(canteenID string, hours []WorkingHour) []models.WorkingHour {
	out := make([]models.WorkingHour, 0, len(hours))
	for i, wh := range hours {
		out = append(out, models.WorkingHour{
			CanteenID:   canteenID,
			Position:    i,
			Meal:        string(wh.Meal),
			StartMinute: int(wh.Start),
			EndMinute:   int(wh.End),
		})
	}
	return out
}
