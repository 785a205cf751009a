package payments

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger is the logging surface the client needs.
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client talks to the payment provider. Checkout sessions are created over
// HTTP; webhook events are verified locally against the shared secret.
type Client struct {
	baseURL       string
	webhookSecret string
	httpClient    *http.Client
	log           Logger
}

func NewClient(baseURL, webhookSecret string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:       baseURL,
		webhookSecret: webhookSecret,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// CreateCheckoutSession opens a hosted payment session for the order.
func (c *Client) CreateCheckoutSession(ctx context.Context, orderID string, amountChf float64) (*CheckoutSession, error) {
	body, err := json.Marshal(createSessionRequest{
		OrderID:   orderID,
		AmountChf: amountChf,
		Currency:  "chf",
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	url := c.baseURL + "/v1/checkout/sessions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	var session CheckoutSession
	if err := json.NewDecoder(resp.Body).Decode(&session); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &session, nil
}

// VerifyAndParseEvent checks the webhook signature (hex-encoded HMAC-SHA256
// of the raw body) and decodes the event.
func (c *Client) VerifyAndParseEvent(payload []byte, signature string) (*Event, error) {
	mac := hmac.New(sha256.New, []byte(c.webhookSecret))
	mac.Write(payload)
	expected := hex.EncodeToString(mac.Sum(nil))

	if !hmac.Equal([]byte(expected), []byte(signature)) {
		return nil, ErrInvalidSignature
	}

	var event Event
	if err := json.Unmarshal(payload, &event); err != nil {
		return nil, fmt.Errorf("%w: failed to decode event: %v", ErrInvalidEvent, err)
	}
	if event.Type == "" || event.OrderID == "" {
		return nil, fmt.Errorf("%w: missing type or orderId", ErrInvalidEvent)
	}

	return &event, nil
}
