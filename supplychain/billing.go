package supplychain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Billing intervals accepted by the checkout endpoint.
const (
	IntervalMonth = "month"
	IntervalYear  = "year"
)

// CheckoutRequest describes the subscription to start a checkout session
// for. Interval defaults to IntervalMonth when empty.
type CheckoutRequest struct {
	PlanCode       string `json:"plan_code"`
	Interval       string `json:"interval"`
	OverageEnabled bool   `json:"overage_enabled"`
}

// sessionResponse holds the hosted-session URL returned by both billing
// endpoints.
type sessionResponse struct {
	URL string `json:"url"`
}

// CreateCheckoutSession starts a billing checkout session and returns the
// hosted checkout URL. An empty url field in the response yields an empty
// string, not an error.
func (c *Client) CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error) {
	if req.PlanCode == "" {
		return "", ErrMissingPlanCode
	}
	if req.Interval == "" {
		req.Interval = IntervalMonth
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/v1/billing/checkout-session", nil, req)
	if err != nil {
		return "", err
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().Str("plan", req.PlanCode).Str("interval", req.Interval).Msg("Created checkout session")
	return session.URL, nil
}

// CreatePortalSession creates a billing portal session for the calling
// account and returns the hosted portal URL, with the same extraction
// policy as CreateCheckoutSession.
func (c *Client) CreatePortalSession(ctx context.Context) (string, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/v1/billing/portal-session", nil, nil)
	if err != nil {
		return "", err
	}

	var session sessionResponse
	if err := json.Unmarshal(body, &session); err != nil {
		return "", fmt.Errorf("failed to parse response: %w", err)
	}

	return session.URL, nil
}
