package supplychain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// Timeseries bucket widths accepted by the server.
const (
	BucketHour = "hour"
	BucketDay  = "day"
)

// TimeseriesOptions selects the bucketing and window of a usage timeseries.
// Start and End are omitted from the query when zero; the server then falls
// back to its default window.
type TimeseriesOptions struct {
	Bucket string
	Start  time.Time
	End    time.Time
}

// GetUsage returns the current-period usage summary for the calling account.
func (c *Client) GetUsage(ctx context.Context) (*UsageSummary, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/usage", nil, nil)
	if err != nil {
		return nil, err
	}

	var summary UsageSummary
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &summary, nil
}

// GetUsageTimeseries returns bucketed usage for the calling account. The
// bucket defaults to BucketDay when unset.
func (c *Client) GetUsageTimeseries(ctx context.Context, opts TimeseriesOptions) (*UsageTimeseries, error) {
	bucket := opts.Bucket
	if bucket == "" {
		bucket = BucketDay
	}

	params := url.Values{}
	params.Set("bucket", bucket)
	if !opts.Start.IsZero() {
		params.Set("start", opts.Start.Format(time.RFC3339))
	}
	if !opts.End.IsZero() {
		params.Set("end", opts.End.Format(time.RFC3339))
	}

	body, err := c.doRequest(ctx, http.MethodGet, "/v1/usage/timeseries", params, nil)
	if err != nil {
		return nil, err
	}

	var series UsageTimeseries
	if err := json.Unmarshal(body, &series); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Debug().Str("bucket", series.Bucket).Int("points", len(series.Data)).Msg("Retrieved usage timeseries")
	return &series, nil
}
