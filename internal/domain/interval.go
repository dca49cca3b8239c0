package domain

import "time"

// Interval is a half-open [Start, End) time span
type Interval struct {
	Start time.Time
	End   time.Time
}

// Slot is a candidate bookable interval produced by the slot generator.
// End - Start always equals the service duration.
type Slot struct {
	Start time.Time
	End   time.Time
}

// Overlaps is the single overlap rule of the engine: half-open intervals
// [aStart, aEnd) and [bStart, bEnd) intersect iff aStart < bEnd && bStart < aEnd.
// A slot that ends exactly when a busy interval begins does not conflict.
// The store's conflict SQL (start_time < $end AND end_time > $start) must
// match this rule exactly.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Overlaps reports whether the interval intersects other
func (i Interval) Overlaps(other Interval) bool {
	return Overlaps(i.Start, i.End, other.Start, other.End)
}

// OverlapsAny reports whether the slot intersects any of the busy intervals
func (s Slot) OverlapsAny(busy []Interval) bool {
	for _, b := range busy {
		if Overlaps(s.Start, s.End, b.Start, b.End) {
			return true
		}
	}
	return false
}
