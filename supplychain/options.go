package supplychain

import (
	"net/http"
	"time"
)

// Option configures a Client during construction.
type Option func(*Client)

// WithTimeout sets the HTTP client timeout. It only affects the client's own
// transport; injected HTTP clients keep their configured timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if c.ownsHTTP && timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// WithHTTPClient replaces the underlying HTTP client. The caller keeps
// ownership of the injected client; Close becomes a no-op.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		if httpClient != nil {
			c.httpClient = httpClient
			c.ownsHTTP = false
		}
	}
}

// WithUserAgent sets a custom User-Agent header on every request.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}
