// Package interval holds the half-open [start, end) arithmetic every
// availability and admission rule is expressed in. Touching endpoints
// never overlap.
package interval

import "cmp"

type Span[T cmp.Ordered] struct {
	Start T
	End   T
}

func (s Span[T]) Empty() bool {
	return s.Start >= s.End
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share any point.
func Overlaps[T cmp.Ordered](aStart, aEnd, bStart, bEnd T) bool {
	return aStart < bEnd && bStart < aEnd
}

// Intersect returns the common sub-interval, or false when
// max(aStart, bStart) >= min(aEnd, bEnd).
func Intersect[T cmp.Ordered](aStart, aEnd, bStart, bEnd T) (Span[T], bool) {
	s := Span[T]{Start: max(aStart, bStart), End: min(aEnd, bEnd)}
	if s.Empty() {
		return Span[T]{}, false
	}
	return s, true
}

// Contains reports whether the inner interval lies fully within the outer one.
func Contains[T cmp.Ordered](outerStart, outerEnd, innerStart, innerEnd T) bool {
	return innerStart >= outerStart && innerEnd <= outerEnd
}
