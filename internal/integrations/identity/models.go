package identity

// User is the identity-provider account linked to a salon customer.
type User struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Created bool   `json:"created"` // true when the account was just created
}

type findOrCreateRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}
