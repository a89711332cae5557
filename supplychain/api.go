package supplychain

import (
	"context"
)

// API defines the read and billing operations available to regular API
// keys. *Client satisfies it; consumers can mock it in tests.
type API interface {
	// ListAlerts retrieves alerts matching the given options
	ListAlerts(ctx context.Context, opts AlertListOptions) (*AlertsResponse, error)

	// GetAlert retrieves a single alert by ID
	GetAlert(ctx context.Context, alertID string) (*Alert, error)

	// GetUsage returns the current-period usage summary
	GetUsage(ctx context.Context) (*UsageSummary, error)

	// GetUsageTimeseries returns bucketed usage for the calling account
	GetUsageTimeseries(ctx context.Context, opts TimeseriesOptions) (*UsageTimeseries, error)

	// CreateCheckoutSession starts a checkout session and returns its hosted URL
	CreateCheckoutSession(ctx context.Context, req CheckoutRequest) (string, error)

	// CreatePortalSession creates a billing portal session and returns its hosted URL
	CreatePortalSession(ctx context.Context) (string, error)

	// Me returns plan and period info for the calling API key
	Me(ctx context.Context) (*AccountInfo, error)

	// GetLimits returns rate limits and quota for the calling account
	GetLimits(ctx context.Context) (*Limits, error)

	// Health checks the API health endpoint
	Health(ctx context.Context) (*Health, error)
}

var _ API = (*Client)(nil)
