package domain

import "time"

// SlotViolation identifies a booking rule broken by a candidate slot.
type SlotViolation string

const (
	ViolationLeadTimeTooShort    SlotViolation = "lead_time_too_short"
	ViolationTooFarInAdvance     SlotViolation = "too_far_in_advance"
	ViolationOutsideOpeningHours SlotViolation = "outside_opening_hours"
	ViolationOverlapsExisting    SlotViolation = "overlaps_existing_booking"
	ViolationEndNotAfterStart    SlotViolation = "end_not_after_start"
	ViolationSlotInPast          SlotViolation = "slot_in_past"
)

// OpeningHours is a single daily opening window. Callers substitute a
// day-specific window before validation when the salon schedule varies.
type OpeningHours struct {
	StartHour int // 0-23
	EndHour   int // 0-23
}

// RuleContext carries the booking policy and current occupancy a candidate
// slot is validated against. It is assembled fresh from storage for every
// validation call and never retained.
type RuleContext struct {
	MinLeadTimeMinutes int
	MaxAdvanceDays     float64
	OpeningHours       OpeningHours
	ExistingSlots      []TimeInterval
}

// SlotValidation is the outcome of ValidateSlot. Reasons preserves the
// check order below so callers can rely on a deterministic listing.
type SlotValidation struct {
	OK      bool
	Reasons []SlotViolation
}

// ValidateSlot decides whether a candidate appointment interval is legal.
//
// Every rule is evaluated; nothing short-circuits. The UI reports all
// problems at once, so a slot in the past carries both the lead-time and
// the in-past violation. The signed lead time is computed once and feeds
// both the lead-time and the advance-window checks.
func ValidateSlot(candidate TimeInterval, ctx RuleContext, now time.Time) SlotValidation {
	reasons := make([]SlotViolation, 0, 2)

	// Whole minutes, truncated toward zero; may be negative.
	leadMinutes := int(candidate.Start.Sub(now).Minutes())
	if leadMinutes < ctx.MinLeadTimeMinutes {
		reasons = append(reasons, ViolationLeadTimeTooShort)
	}

	advanceDays := float64(leadMinutes) / (60 * 24)
	if advanceDays > ctx.MaxAdvanceDays {
		reasons = append(reasons, ViolationTooFarInAdvance)
	}

	if !withinOpeningHours(candidate, ctx.OpeningHours) {
		reasons = append(reasons, ViolationOutsideOpeningHours)
	}

	if overlapsAny(candidate, ctx.ExistingSlots) {
		reasons = append(reasons, ViolationOverlapsExisting)
	}

	if !candidate.End.After(candidate.Start) {
		reasons = append(reasons, ViolationEndNotAfterStart)
	}

	if !candidate.Start.After(now) {
		reasons = append(reasons, ViolationSlotInPast)
	}

	return SlotValidation{OK: len(reasons) == 0, Reasons: reasons}
}

// withinOpeningHours checks the candidate against the daily window.
// An end exactly on the closing hour (e.g. 18:00 with EndHour=18) is legal;
// only a nonzero-minute spillover past EndHour counts as a violation.
func withinOpeningHours(candidate TimeInterval, hours OpeningHours) bool {
	startsTooEarly := candidate.Start.Hour() < hours.StartHour
	endsTooLate := candidate.End.Hour() >= hours.EndHour && candidate.End.Minute() > 0
	crossDay := !isSameDay(candidate.Start, candidate.End)
	return !(startsTooEarly || endsTooLate || crossDay)
}

func overlapsAny(candidate TimeInterval, existing []TimeInterval) bool {
	for _, slot := range existing {
		if candidate.Overlaps(slot) {
			return true
		}
	}
	return false
}
