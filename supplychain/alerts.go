package supplychain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// AlertListOptions narrows the alerts listing. Zero-valued fields are
// omitted from the query string rather than sent empty.
type AlertListOptions struct {
	Sources     []string
	Severities  []string
	Disruptions []string
	Regions     []string
	Countries   []string
	Since       time.Time
	Until       time.Time
	Limit       int
	Offset      int
}

// values encodes the options as repeated query parameters, matching the
// server's filter keys.
func (o AlertListOptions) values() url.Values {
	params := url.Values{}
	for _, s := range o.Sources {
		params.Add("source", s)
	}
	for _, s := range o.Severities {
		params.Add("severity", s)
	}
	for _, d := range o.Disruptions {
		params.Add("disruption", d)
	}
	for _, r := range o.Regions {
		params.Add("region", r)
	}
	for _, c := range o.Countries {
		params.Add("country", c)
	}
	if !o.Since.IsZero() {
		params.Set("since", o.Since.Format(time.RFC3339))
	}
	if !o.Until.IsZero() {
		params.Set("until", o.Until.Format(time.RFC3339))
	}
	if o.Limit > 0 {
		params.Set("limit", strconv.Itoa(o.Limit))
	}
	if o.Offset > 0 {
		params.Set("offset", strconv.Itoa(o.Offset))
	}
	return params
}

// ListAlerts retrieves alerts matching the given options.
func (c *Client) ListAlerts(ctx context.Context, opts AlertListOptions) (*AlertsResponse, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/alerts", opts.values(), nil)
	if err != nil {
		return nil, err
	}

	var response AlertsResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().Int("count", response.Count).Msg("Retrieved alerts")
	return &response, nil
}

// GetAlert retrieves a single alert by ID.
func (c *Client) GetAlert(ctx context.Context, alertID string) (*Alert, error) {
	if alertID == "" {
		return nil, fmt.Errorf("alert ID is required")
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/v1/alerts/"+url.PathEscape(alertID), nil, nil)
	if err != nil {
		return nil, err
	}

	var alert Alert
	if err := json.Unmarshal(body, &alert); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &alert, nil
}
