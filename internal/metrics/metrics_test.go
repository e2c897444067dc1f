package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	Register()
	Register()

	before := testutil.ToFloat64(admissions.WithLabelValues("capacity_exceeded"))
	IncAdmission("capacity_exceeded")
	assert.Equal(t, before+1, testutil.ToFloat64(admissions.WithLabelValues("capacity_exceeded")))

	before = testutil.ToFloat64(cancellations.WithLabelValues(ReasonCascade))
	AddCancellations(ReasonCascade, 3)
	assert.Equal(t, before+3, testutil.ToFloat64(cancellations.WithLabelValues(ReasonCascade)))
}
