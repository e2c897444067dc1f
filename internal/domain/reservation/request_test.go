package reservation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
	"github.com/BruksfildServices01/canteen-scheduler/internal/models"
)

func TestCheckShape(t *testing.T) {
	now := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
	today := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		req  Request
		want error
	}{
		{"today is allowed", Request{Date: today, Start: clock.At(12, 0), Duration: 30}, nil},
		{"future long", Request{Date: today.AddDate(0, 0, 7), Start: clock.At(12, 30), Duration: 60}, nil},
		{"yesterday", Request{Date: today.AddDate(0, 0, -1), Start: clock.At(12, 0), Duration: 30}, ErrPastDate},
		{"duration 45", Request{Date: today, Start: clock.At(12, 0), Duration: 45}, ErrInvalidDur},
		{"duration 0", Request{Date: today, Start: clock.At(12, 0), Duration: 0}, ErrInvalidDur},
		{"quarter past", Request{Date: today, Start: clock.At(12, 15), Duration: 30}, ErrInvalidAlign},
		{"past date wins over bad duration", Request{Date: today.AddDate(0, 0, -1), Start: clock.At(12, 15), Duration: 45}, ErrPastDate},
		{"duration wins over alignment", Request{Date: today, Start: clock.At(12, 15), Duration: 45}, ErrInvalidDur},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckShape(tt.req, now)
			if tt.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestParseSchedule(t *testing.T) {
	d, start, err := ParseSchedule("2026-03-10", "12:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), d)
	assert.Equal(t, clock.At(12, 30), start)

	_, _, err = ParseSchedule("10/03/2026", "12:30")
	assert.ErrorIs(t, err, ErrInvalidDate)

	_, _, err = ParseSchedule("2026-03-10", "25:00")
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	r := &models.Reservation{Status: string(StatusActive)}

	assert.True(t, Cancel(r, now))
	assert.Equal(t, string(StatusCancelled), r.Status)
	require.NotNil(t, r.CancelledAt)
	assert.Equal(t, now, *r.CancelledAt)

	assert.False(t, Cancel(r, now.Add(time.Hour)))
	assert.Equal(t, now, *r.CancelledAt)
}

func TestAdmissionKey(t *testing.T) {
	assert.Equal(t, "admission:c1:2026-03-10", AdmissionKey("c1", "2026-03-10"))
	assert.Equal(t, "student:s1:2026-03-10", StudentKey("s1", "2026-03-10"))
	assert.NotEqual(t, AdmissionKey("x", "2026-03-10"), StudentKey("x", "2026-03-10"))
}
