package supplychain

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// Caller types accepted when minting API keys.
const (
	ClientTypeAgent = "agent"
	ClientTypeHuman = "human"
)

// CreateAccountRequest is the payload for the owner-scoped account creation
// endpoint.
type CreateAccountRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// CreateAccountResponse carries the ID of the freshly created account.
type CreateAccountResponse struct {
	AccountID string `json:"account_id"`
}

// CreateAPIKeyRequest mints a new API key for an account.
type CreateAPIKeyRequest struct {
	ClientType string `json:"client_type"`
	Label      string `json:"label"`
	Env        string `json:"env"`
}

// CreateAPIKeyResponse carries the raw key (shown once) and its ID.
type CreateAPIKeyResponse struct {
	APIKey string `json:"api_key"`
	KeyID  string `json:"key_id"`
}

// RevokeAPIKeyResponse confirms a key revocation.
type RevokeAPIKeyResponse struct {
	Status string `json:"status"`
	KeyID  string `json:"key_id"`
}

// AdminUsage aggregates usage across all accounts.
type AdminUsage struct {
	TotalAccounts int              `json:"total_accounts"`
	TotalUsage    int              `json:"total_usage"`
	ByAccount     []map[string]any `json:"by_account"`
}

// CreateAccount creates a new account. Requires an owner-scoped API key.
func (c *Client) CreateAccount(ctx context.Context, req CreateAccountRequest) (*CreateAccountResponse, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("account name is required")
	}

	body, err := c.doRequest(ctx, http.MethodPost, "/v1/admin/accounts", nil, req)
	if err != nil {
		return nil, err
	}

	var response CreateAccountResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Info().Str("account_id", response.AccountID).Msg("Created account")
	return &response, nil
}

// CreateAPIKey mints a new API key for the given account. ClientType must be
// ClientTypeAgent or ClientTypeHuman; the server rejects anything else.
func (c *Client) CreateAPIKey(ctx context.Context, accountID string, req CreateAPIKeyRequest) (*CreateAPIKeyResponse, error) {
	if accountID == "" {
		return nil, fmt.Errorf("account ID is required")
	}

	endpoint := "/v1/admin/accounts/" + url.PathEscape(accountID) + "/keys"
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, req)
	if err != nil {
		return nil, err
	}

	var response CreateAPIKeyResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	c.logger.Info().Str("key_id", response.KeyID).Str("account_id", accountID).Msg("Created API key")
	return &response, nil
}

// RevokeAPIKey revokes an API key by ID.
func (c *Client) RevokeAPIKey(ctx context.Context, keyID string) (*RevokeAPIKeyResponse, error) {
	if keyID == "" {
		return nil, fmt.Errorf("key ID is required")
	}

	endpoint := "/v1/admin/keys/" + url.PathEscape(keyID) + "/revoke"
	body, err := c.doRequest(ctx, http.MethodPost, endpoint, nil, nil)
	if err != nil {
		return nil, err
	}

	var response RevokeAPIKeyResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &response, nil
}

// GetAdminUsage returns the cross-account usage summary.
func (c *Client) GetAdminUsage(ctx context.Context) (*AdminUsage, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/v1/admin/usage", nil, nil)
	if err != nil {
		return nil, err
	}

	var usage AdminUsage
	if err := json.Unmarshal(body, &usage); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return &usage, nil
}
