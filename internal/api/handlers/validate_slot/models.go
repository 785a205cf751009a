package validate_slot

import (
	"time"

	validateSlot "github.com/carosellagiuliano-max/SWK-SalonService/internal/usecase/validate_slot"
)

// ValidateSlotRequest HTTP request model
type ValidateSlotRequest struct {
	SalonID         string `json:"salonId"`
	ServiceID       string `json:"serviceId"`
	StartAt         string `json:"startAt"` // RFC 3339
	DurationMinutes int    `json:"durationMinutes,omitempty"`
}

// ValidateSlotResponse HTTP response model
type ValidateSlotResponse struct {
	OK      bool     `json:"ok"`
	Reasons []string `json:"reasons"`
}

// ToUseCaseRequest converts the HTTP request into the usecase model.
func (r *ValidateSlotRequest) ToUseCaseRequest() (*validateSlot.Request, error) {
	startAt, err := time.Parse(time.RFC3339, r.StartAt)
	if err != nil {
		return nil, err
	}

	return &validateSlot.Request{
		SalonID:         r.SalonID,
		ServiceID:       r.ServiceID,
		StartAt:         startAt,
		DurationMinutes: r.DurationMinutes,
	}, nil
}

// FromUseCaseResponse converts the usecase response into the HTTP response.
func FromUseCaseResponse(resp *validateSlot.Response) *ValidateSlotResponse {
	reasons := make([]string, 0, len(resp.Reasons))
	for _, reason := range resp.Reasons {
		reasons = append(reasons, string(reason))
	}
	return &ValidateSlotResponse{OK: resp.OK, Reasons: reasons}
}
