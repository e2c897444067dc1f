package canteen

import (
	"iter"
	"slices"
	"time"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/interval"
)

// SlotQuery selects the days [StartDate, EndDate] (inclusive) and the
// daily window [StartTime, EndTime) to tile into Duration-minute slots.
type SlotQuery struct {
	StartDate time.Time
	EndDate   time.Time
	StartTime clock.TimeOfDay
	EndTime   clock.TimeOfDay
	Duration  int
}

// Slot is derived on demand and never stored.
type Slot struct {
	Date  time.Time
	Meal  Meal
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

type window struct {
	meal Meal
	span interval.Span[clock.TimeOfDay]
}

// GenerateSlots returns the candidate slots ordered by date, then working
// hour in stored order, then start time. The last slot of a window is
// clipped to the window end and may be shorter than Duration. The
// sequence is lazy and can be ranged over more than once.
func GenerateSlots(hours []WorkingHour, q SlotQuery) (iter.Seq[Slot], error) {
	if q.Duration <= 0 {
		return nil, ErrInvalidSlotDuration
	}

	var windows []window
	for _, wh := range slices.Clone(hours) {
		span, ok := interval.Intersect(q.StartTime, q.EndTime, wh.Start, wh.End)
		if !ok {
			continue
		}
		windows = append(windows, window{meal: wh.Meal, span: span})
	}

	startDate, endDate := q.StartDate, q.EndDate

	return func(yield func(Slot) bool) {
		for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
			for _, w := range windows {
				for start := w.span.Start; start < w.span.End; {
					// compare before adding so huge durations cannot overflow
					end := w.span.End
					if q.Duration < int(w.span.End-start) {
						end = start.Add(q.Duration)
					}
					if !yield(Slot{Date: day, Meal: w.meal, Start: start, End: end}) {
						return
					}
					start = end
				}
			}
		}
	}, nil
}
