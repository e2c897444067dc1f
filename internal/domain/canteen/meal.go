package canteen

import (
	"fmt"
	"strings"
)

type Meal string

const (
	MealBreakfast Meal = "BREAKFAST"
	MealLunch     Meal = "LUNCH"
	MealDinner    Meal = "DINNER"
)

// ParseMeal is case-insensitive and returns the canonical upper-case tag.
func ParseMeal(s string) (Meal, error) {
	switch m := Meal(strings.ToUpper(strings.TrimSpace(s))); m {
	case MealBreakfast, MealLunch, MealDinner:
		return m, nil
	}
	return "", fmt.Errorf("meal must be BREAKFAST, LUNCH, or DINNER (got %q)", s)
}

func (m Meal) String() string {
	return string(m)
}
