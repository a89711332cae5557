// Package supplychain provides a client for the SupplyChain API.
//
// The client is a thin wrapper: it builds authenticated requests against the
// alerting, usage-metering and billing-session endpoints and returns decoded
// response bodies. It performs no retries, no pagination and no caching;
// failures propagate to the caller unchanged.
//
// # Usage
//
// Create a client with your API key:
//
//	logger := zerolog.New(os.Stderr)
//	client, err := supplychain.NewClient("", "your-api-key", "", logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
//
//	alerts, err := client.ListAlerts(ctx, supplychain.AlertListOptions{
//		Severities: []string{supplychain.SeverityHigh},
//		Limit:      50,
//	})
//
// An empty base URL selects the production endpoint. The API key falls back
// to the API_KEY environment variable, the caller-type tag to CLIENT_TYPE
// (default "agent"); both are resolved once, at construction.
//
// # Error Handling
//
// Non-2xx responses are returned as *APIError carrying the status code and
// the raw response body:
//
//	var apiErr *supplychain.APIError
//	if errors.As(err, &apiErr) && apiErr.IsRateLimited() {
//		// back off
//	}
//
// Transport-level failures (connection refused, timeouts) are returned as
// wrapped errors distinct from *APIError.
//
// A Client is safe for sequential reuse; it holds one connection-reusing
// HTTP session for its lifetime. Concurrent use relies on the thread safety
// of the underlying *http.Client.
package supplychain
