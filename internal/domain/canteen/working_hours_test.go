package canteen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

func TestParseMeal(t *testing.T) {
	for _, in := range []string{"lunch", "LUNCH", " Lunch "} {
		m, err := ParseMeal(in)
		require.NoError(t, err)
		assert.Equal(t, MealLunch, m)
	}
	_, err := ParseMeal("brunch")
	assert.Error(t, err)
}

func TestParseWorkingHours(t *testing.T) {
	tests := []struct {
		name       string
		in         []WorkingHourInput
		violations int
	}{
		{
			name: "valid",
			in: []WorkingHourInput{
				{Meal: "breakfast", From: "07:00", To: "09:00"},
				{Meal: "LUNCH", From: "11:00", To: "13:00"},
			},
		},
		{
			name: "adjacent windows do not overlap",
			in: []WorkingHourInput{
				{Meal: "breakfast", From: "07:00", To: "11:00"},
				{Meal: "lunch", From: "11:00", To: "13:00"},
			},
		},
		{
			name: "duplicate meal in different case",
			in: []WorkingHourInput{
				{Meal: "lunch", From: "11:00", To: "12:00"},
				{Meal: "LUNCH", From: "13:00", To: "14:00"},
			},
			violations: 1,
		},
		{
			name: "overlap",
			in: []WorkingHourInput{
				{Meal: "lunch", From: "11:00", To: "13:00"},
				{Meal: "dinner", From: "12:30", To: "14:00"},
			},
			violations: 1,
		},
		{
			name:       "start not before end",
			in:         []WorkingHourInput{{Meal: "dinner", From: "19:00", To: "18:00"}},
			violations: 1,
		},
		{
			name:       "bad format",
			in:         []WorkingHourInput{{Meal: "dinner", From: "7pm", To: "21:00"}},
			violations: 1,
		},
		{
			name:       "unknown meal",
			in:         []WorkingHourInput{{Meal: "snack", From: "16:00", To: "17:00"}},
			violations: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, violations := ParseWorkingHours(tt.in)
			assert.Len(t, violations, tt.violations, violations)
		})
	}
}

func TestFits(t *testing.T) {
	hours := []WorkingHour{
		{Meal: MealBreakfast, Start: clock.At(7, 0), End: clock.At(9, 0)},
		{Meal: MealLunch, Start: clock.At(11, 0), End: clock.At(13, 0)},
	}

	assert.True(t, Fits(hours, clock.At(12, 30), clock.At(13, 0)))
	assert.True(t, Fits(hours, clock.At(7, 0), clock.At(8, 0)))
	assert.False(t, Fits(hours, clock.At(12, 30), clock.At(13, 30)))
	assert.False(t, Fits(hours, clock.At(8, 30), clock.At(11, 30)), "spanning two windows is not contained in either")
	assert.False(t, Fits(nil, clock.At(12, 0), clock.At(12, 30)))
}

func TestModelsRoundTripKeepsOrder(t *testing.T) {
	hours := []WorkingHour{
		{Meal: MealDinner, Start: clock.At(18, 0), End: clock.At(20, 0)},
		{Meal: MealBreakfast, Start: clock.At(7, 0), End: clock.At(9, 0)},
	}

	rows := ToModels("c1", hours)
	// storage returns rows in arbitrary order
	shuffled := []models.WorkingHour{rows[1], rows[0]}

	assert.Equal(t, hours, FromModels(shuffled))
	assert.Equal(t, "c1", rows[0].CanteenID)
}
