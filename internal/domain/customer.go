package domain

import "time"

// Customer represents a salon customer linked to an identity-provider user.
type Customer struct {
	ID        string
	SalonID   string
	ProfileID string
	Email     string
	FirstName string
	LastName  string
	Phone     *string

	LoyaltyTier   LoyaltyTier
	LoyaltyPoints int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName returns the display name used in notification payloads.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}
