package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	admissions = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Name:      "reservation_admissions_total",
			Help:      "Admission decisions by outcome (admitted or rejection code).",
		},
		[]string{"outcome"},
	)

	cancellations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "canteen",
			Name:      "reservation_cancellations_total",
			Help:      "Reservations moved to cancelled, by reason.",
		},
		[]string{"reason"},
	)

	statusSlots = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "canteen",
			Name:      "status_slots",
			Help:      "Slots returned per availability status query.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		},
	)
)

// Register registers metrics (idempotent).
func Register() {
	once.Do(func() {
		prometheus.MustRegister(admissions, cancellations, statusSlots)
	})
}

const (
	OutcomeAdmitted = "admitted"

	ReasonOwner   = "owner"
	ReasonCascade = "cascade"
)

func IncAdmission(outcome string) {
	admissions.WithLabelValues(outcome).Inc()
}

func AddCancellations(reason string, n int) {
	cancellations.WithLabelValues(reason).Add(float64(n))
}

func ObserveStatusSlots(n int) {
	statusSlots.Observe(float64(n))
}
