package interval

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{"identical", 10, 20, 10, 20, true},
		{"partial left", 10, 20, 5, 15, true},
		{"partial right", 10, 20, 15, 25, true},
		{"inner", 10, 40, 20, 30, true},
		{"outer", 20, 30, 10, 40, true},
		{"touching at end", 10, 20, 20, 30, false},
		{"touching at start", 20, 30, 10, 20, false},
		{"disjoint", 10, 20, 30, 40, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// symmetric
			assert.Equal(t, tt.want, Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestIntersect(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       Span[int]
		ok                         bool
	}{
		{"query wider than window", 600, 900, 660, 780, Span[int]{660, 780}, true},
		{"query inside window", 700, 720, 660, 780, Span[int]{700, 720}, true},
		{"left clip", 600, 700, 660, 780, Span[int]{660, 700}, true},
		{"touching", 600, 660, 660, 780, Span[int]{}, false},
		{"disjoint", 0, 100, 200, 300, Span[int]{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Intersect(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestContains(t *testing.T) {
	assert.True(t, Contains(660, 780, 720, 750))
	assert.True(t, Contains(660, 780, 660, 780))
	assert.False(t, Contains(660, 780, 750, 810))
	assert.False(t, Contains(660, 780, 630, 690))
}
