package supplychain

import (
	"errors"
	"fmt"
)

// Common errors
var (
	// ErrMissingAPIKey indicates no credential was supplied and none was
	// found in the API_KEY environment variable.
	ErrMissingAPIKey = errors.New("supplychain: API key is required (pass one explicitly or set API_KEY)")

	// ErrMissingPlanCode indicates a checkout session was requested without a plan.
	ErrMissingPlanCode = errors.New("supplychain: plan_code is required")
)

// APIError represents a non-2xx response from the SupplyChain API. The
// response body is carried verbatim for diagnostics; it is never parsed.
type APIError struct {
	StatusCode int
	Body       string
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("supplychain API error: status %d: %s", e.StatusCode, e.Body)
}

// IsNotFound checks if the error indicates a missing resource
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == 404
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == 401 || e.StatusCode == 403
}

// IsRateLimited checks if the error indicates the account hit its quota
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == 429
}
