package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Monday 2025-06-16 12:00 local salon time. All rule tests derive their
// candidates from this instant so boundaries stay explicit.
var testNow = time.Date(2025, 6, 16, 12, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2025, 6, day, hour, minute, 0, 0, time.UTC)
}

func interval(start, end time.Time) TimeInterval {
	return TimeInterval{Start: start, End: end}
}

func openContext() RuleContext {
	return RuleContext{
		MinLeadTimeMinutes: 0,
		MaxAdvanceDays:     365,
		OpeningHours:       OpeningHours{StartHour: 9, EndHour: 18},
		ExistingSlots:      nil,
	}
}

func TestValidateSlot_AcceptsSlotInsideOpeningWindow(t *testing.T) {
	// Next day, fully inside 9-18, no lead/advance pressure, no occupancy.
	candidate := interval(at(17, 10, 0), at(17, 11, 0))

	result := ValidateSlot(candidate, openContext(), testNow)

	require.True(t, result.OK)
	assert.Empty(t, result.Reasons)
}

func TestValidateSlot_LeadTime(t *testing.T) {
	ctx := openContext()
	ctx.MinLeadTimeMinutes = 60

	tests := []struct {
		name     string
		start    time.Time
		violated bool
	}{
		{"30 minutes ahead is too short", testNow.Add(30 * time.Minute), true},
		{"59 minutes ahead is too short", testNow.Add(59 * time.Minute), true},
		{"exactly 60 minutes ahead is allowed", testNow.Add(60 * time.Minute), false},
		{"negative lead time is too short", testNow.Add(-30 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidate := interval(tt.start, tt.start.Add(30*time.Minute))
			result := ValidateSlot(candidate, ctx, testNow)
			if tt.violated {
				assert.Contains(t, result.Reasons, ViolationLeadTimeTooShort)
			} else {
				assert.NotContains(t, result.Reasons, ViolationLeadTimeTooShort)
			}
		})
	}
}

func TestValidateSlot_AdvanceWindow(t *testing.T) {
	ctx := openContext()
	ctx.MaxAdvanceDays = 30

	t.Run("31 days out is too far", func(t *testing.T) {
		start := time.Date(2025, 7, 17, 10, 0, 0, 0, time.UTC)
		result := ValidateSlot(interval(start, start.Add(time.Hour)), ctx, testNow)
		assert.Contains(t, result.Reasons, ViolationTooFarInAdvance)
	})

	t.Run("exactly 30 days out is allowed", func(t *testing.T) {
		start := testNow.AddDate(0, 0, 30)
		result := ValidateSlot(interval(start, start.Add(time.Hour)), ctx, testNow)
		assert.NotContains(t, result.Reasons, ViolationTooFarInAdvance)
	})

	t.Run("negative lead time never trips the advance check", func(t *testing.T) {
		start := testNow.Add(-2 * time.Hour)
		result := ValidateSlot(interval(start, start.Add(time.Hour)), ctx, testNow)
		assert.NotContains(t, result.Reasons, ViolationTooFarInAdvance)
	})
}

func TestValidateSlot_OpeningHours(t *testing.T) {
	ctx := openContext() // 9-18

	tests := []struct {
		name     string
		slot     TimeInterval
		violated bool
	}{
		{"08:00-09:00 starts too early", interval(at(17, 8, 0), at(17, 9, 0)), true},
		{"09:00-10:00 at opening is fine", interval(at(17, 9, 0), at(17, 10, 0)), false},
		{"17:00-18:00 ending exactly at close is fine", interval(at(17, 17, 0), at(17, 18, 0)), false},
		{"17:30-18:30 spills past close", interval(at(17, 17, 30), at(17, 18, 30)), true},
		{"crossing midnight is rejected", interval(at(17, 17, 0), at(18, 10, 0)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSlot(tt.slot, ctx, testNow)
			if tt.violated {
				assert.Contains(t, result.Reasons, ViolationOutsideOpeningHours)
			} else {
				assert.NotContains(t, result.Reasons, ViolationOutsideOpeningHours)
			}
		})
	}
}

func TestValidateSlot_Overlap(t *testing.T) {
	existing := interval(at(17, 10, 0), at(17, 11, 0))
	ctx := openContext()
	ctx.ExistingSlots = []TimeInterval{existing}

	tests := []struct {
		name     string
		slot     TimeInterval
		violated bool
	}{
		{"identical interval overlaps", interval(at(17, 10, 0), at(17, 11, 0)), true},
		{"partial overlap from the left", interval(at(17, 9, 30), at(17, 10, 30)), true},
		{"contained interval overlaps", interval(at(17, 10, 15), at(17, 10, 45)), true},
		{"back-to-back after does not overlap", interval(at(17, 11, 0), at(17, 12, 0)), false},
		{"back-to-back before does not overlap", interval(at(17, 9, 0), at(17, 10, 0)), false},
		{"disjoint later slot does not overlap", interval(at(17, 14, 0), at(17, 15, 0)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateSlot(tt.slot, ctx, testNow)
			if tt.violated {
				assert.Contains(t, result.Reasons, ViolationOverlapsExisting)
			} else {
				assert.NotContains(t, result.Reasons, ViolationOverlapsExisting)
			}
		})
	}
}

func TestValidateSlot_EndNotAfterStart(t *testing.T) {
	t.Run("inverted interval", func(t *testing.T) {
		result := ValidateSlot(interval(at(17, 11, 0), at(17, 10, 0)), openContext(), testNow)
		assert.Contains(t, result.Reasons, ViolationEndNotAfterStart)
	})

	t.Run("zero-length interval", func(t *testing.T) {
		result := ValidateSlot(interval(at(17, 10, 0), at(17, 10, 0)), openContext(), testNow)
		assert.Contains(t, result.Reasons, ViolationEndNotAfterStart)
	})
}

// A slot in the past fails the lead-time check (negative lead below any
// non-negative minimum) AND the non-past check. Both reasons are reported;
// callers may depend on seeing them independently.
func TestValidateSlot_PastSlotReportsBothViolations(t *testing.T) {
	start := at(16, 10, 0) // two hours before testNow
	result := ValidateSlot(interval(start, start.Add(time.Hour)), openContext(), testNow)

	require.False(t, result.OK)
	assert.Contains(t, result.Reasons, ViolationLeadTimeTooShort)
	assert.Contains(t, result.Reasons, ViolationSlotInPast)
}

// Reasons must come back in declared check order: lead time, advance,
// opening hours, overlap, ordering, past.
func TestValidateSlot_ReasonOrderIsDeterministic(t *testing.T) {
	ctx := openContext()
	ctx.ExistingSlots = []TimeInterval{interval(at(16, 7, 0), at(16, 9, 0))}

	// Inverted early-morning interval in the past, overlapping an existing
	// slot: everything except the advance check fires.
	candidate := interval(at(16, 8, 30), at(16, 8, 0))

	result := ValidateSlot(candidate, ctx, testNow)

	require.False(t, result.OK)
	assert.Equal(t, []SlotViolation{
		ViolationLeadTimeTooShort,
		ViolationOutsideOpeningHours,
		ViolationOverlapsExisting,
		ViolationEndNotAfterStart,
		ViolationSlotInPast,
	}, result.Reasons)
}

func TestValidateSlot_Idempotent(t *testing.T) {
	ctx := openContext()
	ctx.MinLeadTimeMinutes = 45
	ctx.ExistingSlots = []TimeInterval{interval(at(17, 10, 0), at(17, 11, 0))}
	candidate := interval(at(17, 10, 30), at(17, 11, 30))

	first := ValidateSlot(candidate, ctx, testNow)
	second := ValidateSlot(candidate, ctx, testNow)

	assert.Equal(t, first, second)
}

func TestTimeInterval_Overlaps(t *testing.T) {
	a := interval(at(17, 10, 0), at(17, 11, 0))

	assert.True(t, a.Overlaps(interval(at(17, 10, 30), at(17, 11, 30))))
	assert.True(t, a.Overlaps(interval(at(17, 9, 0), at(17, 10, 1))))
	assert.False(t, a.Overlaps(interval(at(17, 11, 0), at(17, 12, 0))), "touching endpoints must not overlap")
	assert.False(t, a.Overlaps(interval(at(17, 9, 0), at(17, 10, 0))), "touching endpoints must not overlap")
}
