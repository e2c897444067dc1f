package canteen

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/canteen-scheduler/internal/domain/canteen"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/capacity"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/httperr"
	"github.com/BruksfildServices01/canteen-scheduler/internal/ids"
	"github.com/BruksfildServices01/canteen-scheduler/internal/metrics"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
	"github.com/BruksfildServices01/canteen-scheduler/internal/timezone"
)

// ======================================================
// INPUT / OUTPUT
// ======================================================

type StatusInput struct {
	StartDate string
	EndDate   string
	StartTime string
	EndTime   string
	Duration  int
}

type SlotAvailability struct {
	Date              string `json:"date"`
	Meal              string `json:"meal"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	RemainingCapacity int    `json:"remaining_capacity"`
}

type CanteenAvailability struct {
	CanteenID string             `json:"canteen_id"`
	Name      string             `json:"name"`
	Capacity  int                `json:"capacity"`
	Slots     []SlotAvailability `json:"slots"`
}

// ======================================================
// USE CASE
// ======================================================

// CanteenStatus reports remaining capacity per slot. Each slot is counted
// separately, so a reservation committed mid-query may show up in later
// slots only.
type CanteenStatus struct {
	repo         domain.Repository
	maxRangeDays int
}

func NewCanteenStatus(repo domain.Repository, maxRangeDays int) *CanteenStatus {
	return &CanteenStatus{repo: repo, maxRangeDays: maxRangeDays}
}

// Execute computes availability for one canteen.
func (uc *CanteenStatus) Execute(
	ctx context.Context,
	canteenID string,
	in StatusInput,
) (*CanteenAvailability, error) {

	id, err := ids.Parse(canteenID)
	if err != nil {
		return nil, err
	}
	q, err := uc.query(in)
	if err != nil {
		return nil, err
	}

	c, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	return uc.resolve(ctx, c, q)
}

// ExecuteAll computes availability for every canteen, ordered by name.
func (uc *CanteenStatus) ExecuteAll(
	ctx context.Context,
	in StatusInput,
) ([]CanteenAvailability, error) {

	q, err := uc.query(in)
	if err != nil {
		return nil, err
	}

	canteens, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]CanteenAvailability, 0, len(canteens))
	for i := range canteens {
		a, err := uc.resolve(ctx, &canteens[i], q)
		if err != nil {
			return nil, err
		}
		out = append(out, *a)
	}
	return out, nil
}

func (uc *CanteenStatus) query(in StatusInput) (domain.SlotQuery, error) {
	var (
		q          domain.SlotQuery
		violations []string
		err        error
	)

	if q.StartDate, err = timezone.ParseDate(in.StartDate); err != nil {
		violations = append(violations, "startDate must be in YYYY-MM-DD format")
	}
	if q.EndDate, err = timezone.ParseDate(in.EndDate); err != nil {
		violations = append(violations, "endDate must be in YYYY-MM-DD format")
	}
	if q.StartTime, err = clock.ParseTimeOfDay(in.StartTime); err != nil {
		violations = append(violations, "startTime must be in HH:mm format")
	}
	if q.EndTime, err = clock.ParseTimeOfDay(in.EndTime); err != nil {
		violations = append(violations, "endTime must be in HH:mm format")
	}
	q.Duration = in.Duration

	if len(violations) > 0 {
		return q, httperr.Violations(violations)
	}
	if violations = domain.ValidateSlotQuery(q, uc.maxRangeDays); len(violations) > 0 {
		return q, httperr.Violations(violations)
	}
	return q, nil
}

func (uc *CanteenStatus) resolve(
	ctx context.Context,
	c *models.Canteen,
	q domain.SlotQuery,
) (*CanteenAvailability, error) {

	slots, err := domain.GenerateSlots(domain.FromModels(c.WorkingHours), q)
	if err != nil {
		return nil, err
	}

	resolver := capacity.NewResolver(uc.repo)
	out := &CanteenAvailability{
		CanteenID: c.ID,
		Name:      c.Name,
		Capacity:  c.Capacity,
		Slots:     []SlotAvailability{},
	}

	for slot := range slots {
		date := timezone.FormatDate(slot.Date)
		remaining, err := resolver.Remaining(ctx, c.ID, c.Capacity, date, slot.Start, slot.End)
		if err != nil {
			return nil, fmt.Errorf("resolve %s %s: %w", date, slot.Start, err)
		}
		out.Slots = append(out.Slots, SlotAvailability{
			Date:              date,
			Meal:              string(slot.Meal),
			StartTime:         slot.Start.String(),
			EndTime:           slot.End.String(),
			RemainingCapacity: remaining,
		})
	}

	metrics.ObserveStatusSlots(len(out.Slots))
	return out, nil
}
