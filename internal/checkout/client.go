// Package checkout talks to the payment provider's intent API. The provider
// integration is behind a feature flag on the frontend; until it ships, the
// backend issues locally generated intents so the checkout flow can be
// exercised end to end.
package checkout

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Client creates payment intents and exposes the client secret the payment
// element on the frontend needs.
type Client struct {
	apiKey string
}

// NewClient creates a new checkout client instance.
func NewClient(apiKey string) *Client {
	return &Client{apiKey: apiKey}
}

// CreateIntent registers a payment intent for the amount (cents) and returns
// its id and client secret.
func (c *Client) CreateIntent(amount int, currency, description string) (string, string, error) {
	if amount <= 0 {
		return "", "", fmt.Errorf("intent amount must be positive, got %d", amount)
	}

	// TODO: call the provider once the real account is provisioned; the key
	// is already plumbed through config.
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")
	intentID := "pi_" + suffix[:24]
	clientSecret := intentID + "_secret_" + suffix[24:]
	return intentID, clientSecret, nil
}
