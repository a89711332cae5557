package supplychain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Me returns plan and billing-period information for the calling API key.
func (c *Client) Me(ctx context.Context) (*AccountInfo, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/me", nil, nil)
	if err != nil {
		return nil, err
	}

	var info AccountInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &info, nil
}

// GetLimits returns the rate limits and monthly quota of the calling
// account's plan.
func (c *Client) GetLimits(ctx context.Context) (*Limits, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/limits", nil, nil)
	if err != nil {
		return nil, err
	}

	var limits Limits
	if err := json.Unmarshal(body, &limits); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &limits, nil
}
