package clock

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tod, err := ParseTimeOfDay("12:30")
	require.NoError(t, err)
	assert.Equal(t, At(12, 30), tod)
	assert.Equal(t, 12, tod.Hour())
	assert.Equal(t, 30, tod.Minute())
	assert.Equal(t, "12:30", tod.String())

	for _, bad := range []string{"", "24:00", "12:60", "noon", "7:5"} {
		_, err := ParseTimeOfDay(bad)
		assert.Error(t, err, bad)
	}
}

func TestTimeOfDay_Add(t *testing.T) {
	assert.Equal(t, "13:00", At(12, 30).Add(30).String())
	assert.Equal(t, "24:00", At(23, 30).Add(30).String())
}
