package canteen

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/BruksfildServices01/canteen-scheduler/internal/optional"
)

const (
	maxNameLength     = 200
	maxLocationLength = 200
	minCapacity       = 1
	maxCapacity       = 1000
)

// Draft is a full canteen definition as submitted for creation.
type Draft struct {
	Name         string             `json:"name"`
	Location     string             `json:"location"`
	Capacity     int                `json:"capacity"`
	WorkingHours []WorkingHourInput `json:"working_hours"`
}

// Validate returns the parsed working hours and every violation found.
func (d Draft) Validate() ([]WorkingHour, []string) {
	var violations []string
	violations = append(violations, validateName(d.Name)...)
	violations = append(violations, validateLocation(d.Location)...)
	violations = append(violations, validateCapacity(d.Capacity)...)

	if d.WorkingHours == nil {
		violations = append(violations, "working_hours is required")
	}
	hours, whViolations := ParseWorkingHours(d.WorkingHours)
	violations = append(violations, whViolations...)

	return hours, violations
}

// Patch carries only the fields the caller supplied.
type Patch struct {
	Name         optional.Value[string]             `json:"name"`
	Location     optional.Value[string]             `json:"location"`
	Capacity     optional.Value[int]                `json:"capacity"`
	WorkingHours optional.Value[[]WorkingHourInput] `json:"working_hours"`
}

// Validate checks only present fields. hours is nil when working hours
// were not supplied.
func (p Patch) Validate() (hours []WorkingHour, violations []string) {
	if name, ok := p.Name.Get(); ok {
		violations = append(violations, validateName(name)...)
	}
	if location, ok := p.Location.Get(); ok {
		violations = append(violations, validateLocation(location)...)
	}
	if capacity, ok := p.Capacity.Get(); ok {
		violations = append(violations, validateCapacity(capacity)...)
	}
	if raw, ok := p.WorkingHours.Get(); ok {
		var whViolations []string
		hours, whViolations = ParseWorkingHours(raw)
		if hours == nil {
			hours = []WorkingHour{}
		}
		violations = append(violations, whViolations...)
	}
	return hours, violations
}

// ValidateSlotQuery checks an availability status request.
func ValidateSlotQuery(q SlotQuery, maxRangeDays int) []string {
	var violations []string

	if q.StartDate.After(q.EndDate) {
		violations = append(violations, "startDate must be less than or equal to endDate")
	}
	if q.StartTime >= q.EndTime {
		violations = append(violations, "startTime must be less than endTime")
	}
	if q.Duration != 30 && q.Duration != 60 {
		violations = append(violations, "duration must be either 30 or 60 minutes")
	}
	if maxRangeDays > 0 && q.EndDate.Sub(q.StartDate).Hours()/24 > float64(maxRangeDays) {
		violations = append(violations, fmt.Sprintf("date range is too large, maximum allowed is %d days", maxRangeDays))
	}

	return violations
}

// NameKey is the canonical form used for case-insensitive uniqueness.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func validateName(name string) []string {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return []string{"name is required"}
	case utf8.RuneCountInString(name) > maxNameLength:
		return []string{fmt.Sprintf("name cannot exceed %d characters", maxNameLength)}
	}
	return nil
}

func validateLocation(location string) []string {
	location = strings.TrimSpace(location)
	switch {
	case location == "":
		return []string{"location is required"}
	case utf8.RuneCountInString(location) > maxLocationLength:
		return []string{fmt.Sprintf("location cannot exceed %d characters", maxLocationLength)}
	}
	return nil
}

func validateCapacity(capacity int) []string {
	if capacity < minCapacity || capacity > maxCapacity {
		return []string{fmt.Sprintf("capacity must be between %d and %d", minCapacity, maxCapacity)}
	}
	return nil
}
