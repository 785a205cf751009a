package middleware

import (
	"context"
	"net/http"
)

type contextKey string

const customerIDKey contextKey = "customerID"

// CustomerIDHeader carries the authenticated customer's ID. The gateway in
// front of this service validates the session and injects the header.
const CustomerIDHeader = "X-Customer-ID"

// Auth extracts the customer ID from the request header into the context.
// Routes that require a customer reject requests without it themselves; the
// middleware only transports the value.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if customerID := r.Header.Get(CustomerIDHeader); customerID != "" {
			r = r.WithContext(context.WithValue(r.Context(), customerIDKey, customerID))
		}
		next.ServeHTTP(w, r)
	})
}

// GetCustomerID returns the authenticated customer's ID from the context.
func GetCustomerID(ctx context.Context) (string, bool) {
	customerID, ok := ctx.Value(customerIDKey).(string)
	return customerID, ok
}
