package domain

import "time"

// TimeInterval is a candidate or stored appointment time range.
// The type itself enforces nothing: intervals are built from user-supplied
// start + duration and an inverted interval must surface as a validation
// result, not as a constructor failure.
type TimeInterval struct {
	Start time.Time
	End   time.Time
}

// Overlaps reports whether the two intervals share any instant, using
// half-open semantics: back-to-back intervals where one ends exactly when
// the other starts do NOT overlap.
func (i TimeInterval) Overlaps(other TimeInterval) bool {
	return i.Start.Before(other.End) && i.End.After(other.Start)
}

// Duration returns End - Start. Negative for inverted intervals.
func (i TimeInterval) Duration() time.Duration {
	return i.End.Sub(i.Start)
}

// isSameDay reports whether two instants fall on the same calendar day.
func isSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
