// Package capacity derives remaining seats for a slot from the active
// reservations that overlap it. Counts are read at call time and never
// cached, so a multi-slot query is not one snapshot.
package capacity

import (
	"context"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
)

// Counter counts Active reservations of a canteen on date whose
// [start, end) overlaps the given interval.
type Counter interface {
	CountActiveOverlapping(
		ctx context.Context,
		canteenID string,
		date string,
		start clock.TimeOfDay,
		end clock.TimeOfDay,
	) (int64, error)
}

type Resolver struct {
	counter Counter
}

func NewResolver(counter Counter) *Resolver {
	return &Resolver{counter: counter}
}

// Remaining returns max(0, capacity - overlapping).
func (r *Resolver) Remaining(
	ctx context.Context,
	canteenID string,
	capacity int,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (int, error) {
	count, err := r.counter.CountActiveOverlapping(ctx, canteenID, date, start, end)
	if err != nil {
		return 0, err
	}
	return Clamp(capacity, count), nil
}

// HasRoom reports whether one more reservation fits.
func (r *Resolver) HasRoom(
	ctx context.Context,
	canteenID string,
	capacity int,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (bool, error) {
	remaining, err := r.Remaining(ctx, canteenID, capacity, date, start, end)
	if err != nil {
		return false, err
	}
	return remaining > 0, nil
}

func Clamp(capacity int, count int64) int {
	return int(max(0, int64(capacity)-count))
}
