package capacity

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/canteen-scheduler/internal/domain/clock"
)

type mockCounter struct {
	mock.Mock
}

func (m *mockCounter) CountActiveOverlapping(
	ctx context.Context,
	canteenID string,
	date string,
	start clock.TimeOfDay,
	end clock.TimeOfDay,
) (int64, error) {
	args := m.Called(ctx, canteenID, date, start, end)
	return args.Get(0).(int64), args.Error(1)
}

func TestClamp(t *testing.T) {
	tests := []struct {
		capacity int
		count    int64
		want     int
	}{
		{10, 0, 10},
		{10, 3, 7},
		{1, 1, 0},
		{2, 5, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp(tt.capacity, tt.count))
	}
}

func TestResolver_Remaining(t *testing.T) {
	ctx := context.Background()
	counter := new(mockCounter)
	counter.On("CountActiveOverlapping", ctx, "c1", "2026-03-10", clock.At(12, 0), clock.At(12, 30)).
		Return(int64(4), nil).Once()

	r := NewResolver(counter)
	remaining, err := r.Remaining(ctx, "c1", 3, "2026-03-10", clock.At(12, 0), clock.At(12, 30))
	require.NoError(t, err)
	assert.Equal(t, 0, remaining)
	counter.AssertExpectations(t)
}

func TestResolver_HasRoom(t *testing.T) {
	ctx := context.Background()
	counter := new(mockCounter)
	counter.On("CountActiveOverlapping", ctx, "c1", "2026-03-10", clock.At(12, 0), clock.At(13, 0)).
		Return(int64(1), nil).Once()
	counter.On("CountActiveOverlapping", ctx, "c2", "2026-03-10", clock.At(12, 0), clock.At(13, 0)).
		Return(int64(0), errors.New("connection reset")).Once()

	r := NewResolver(counter)

	ok, err := r.HasRoom(ctx, "c1", 2, "2026-03-10", clock.At(12, 0), clock.At(13, 0))
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.HasRoom(ctx, "c2", 2, "2026-03-10", clock.At(12, 0), clock.At(13, 0))
	assert.EqualError(t, err, "connection reset")
}
