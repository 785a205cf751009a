package domain

// TemplateKey identifies a notification template.
type TemplateKey string

const (
	TemplateBookingConfirmation TemplateKey = "booking_confirmation"
	TemplateCancellation        TemplateKey = "cancellation"
	TemplateOrderReceipt        TemplateKey = "order_receipt"
)

// requiredVariables lists, per template, the variable names a payload must
// carry. Order is part of the contract: Missing reports names in this order.
var requiredVariables = map[TemplateKey][]string{
	TemplateBookingConfirmation: {"customerName", "appointmentTime"},
	TemplateCancellation:        {"customerName", "appointmentTime"},
	TemplateOrderReceipt:        {"customerName", "orderNumber", "total"},
}

// ValidateTemplate reports whether key names a known template. Callers must
// check this before PrepareNotification; the preparer has no defined
// behavior for unknown keys.
func ValidateTemplate(key string) bool {
	_, ok := requiredVariables[TemplateKey(key)]
	return ok
}

// NotificationContent is a complete payload ready for the delivery
// collaborator.
type NotificationContent struct {
	Template  TemplateKey
	Variables map[string]string
}

// NotificationPayload is the outcome of PrepareNotification. When OK is
// false, Missing lists the absent or empty required variables in declared
// order and the send must not be attempted.
type NotificationPayload struct {
	OK      bool
	Payload *NotificationContent
	Missing []string
}

// PrepareNotification validates variable completeness for a template before
// handoff to delivery. An empty value counts as missing.
func PrepareNotification(key TemplateKey, variables map[string]string) NotificationPayload {
	var missing []string
	for _, name := range requiredVariables[key] {
		if variables[name] == "" {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return NotificationPayload{OK: false, Missing: missing}
	}

	return NotificationPayload{
		OK:      true,
		Payload: &NotificationContent{Template: key, Variables: variables},
	}
}
