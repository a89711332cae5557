package supplychain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production API endpoint used when no base URL is given.
	DefaultBaseURL = "https://api.supplychain.example.com"

	// DefaultClientType is the caller-type tag used when neither the
	// constructor argument nor the CLIENT_TYPE variable provides one.
	DefaultClientType = "agent"

	defaultTimeout = 30 * time.Second
)

// Client represents a SupplyChain API client. Configuration is fixed at
// construction; every request derives its headers from the same snapshot.
type Client struct {
	baseURL    string
	apiKey     string
	clientType string
	userAgent  string
	httpClient *http.Client
	ownsHTTP   bool
	logger     zerolog.Logger
}

// NewClient creates a new SupplyChain client.
//
// The credential resolves from the apiKey argument, then the API_KEY
// environment variable. The caller-type tag resolves from the clientType
// argument, then CLIENT_TYPE, then DefaultClientType. Both lookups happen
// here, once; requests never read the process environment.
func NewClient(baseURL, apiKey, clientType string, logger zerolog.Logger, opts ...Option) (*Client, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")

	env := defaultsFromEnv()
	if apiKey == "" {
		apiKey = env.APIKey
	}
	if clientType == "" {
		clientType = env.ClientType
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		clientType: clientType,
		httpClient: &http.Client{Timeout: defaultTimeout},
		ownsHTTP:   true,
		logger:     logger,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// BaseURL returns the resolved API endpoint.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the client's own transport.
// It is a no-op when the HTTP client was injected via WithHTTPClient.
func (c *Client) Close() {
	if c.ownsHTTP {
		c.httpClient.CloseIdleConnections()
	}
}

// doRequest performs one authenticated request/response exchange and returns
// the raw body. Non-2xx responses surface as *APIError with the body carried
// verbatim; the error body is never decoded.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, params url.Values, payload any) ([]byte, error) {
	requestURL := c.baseURL + endpoint
	if len(params) > 0 {
		requestURL += "?" + params.Encode()
	}

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.clientType != "" {
		req.Header.Set("X-Client-Type", c.clientType)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// Health checks the API health endpoint. Useful as a connectivity test.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/health", nil, nil)
	if err != nil {
		return nil, err
	}

	var health Health
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &health, nil
}

// ServerVersion returns build information for the remote service.
func (c *Client) ServerVersion(ctx context.Context) (*VersionInfo, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/version", nil, nil)
	if err != nil {
		return nil, err
	}

	var info VersionInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &info, nil
}
