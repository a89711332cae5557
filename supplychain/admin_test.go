package supplychain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminEndpoints(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("create account", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/admin/accounts", r.URL.Path)
			assert.Equal(t, "Bearer owner-key", r.Header.Get("Authorization"))

			var req CreateAccountRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "Acme Inc", req.Name)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(CreateAccountResponse{AccountID: "acct-9"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "owner-key", "", logger)
		require.NoError(t, err)

		resp, err := client.CreateAccount(context.Background(), CreateAccountRequest{
			Name:  "Acme Inc",
			Email: "owner@example.com",
		})
		require.NoError(t, err)
		assert.Equal(t, "acct-9", resp.AccountID)
	})

	t.Run("create account requires a name", func(t *testing.T) {
		client, err := NewClient("http://localhost:0", "owner-key", "", logger)
		require.NoError(t, err)

		_, err = client.CreateAccount(context.Background(), CreateAccountRequest{})
		require.Error(t, err)
	})

	t.Run("create API key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/admin/accounts/acct-9/keys", r.URL.Path)

			var req CreateAPIKeyRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, ClientTypeAgent, req.ClientType)

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(CreateAPIKeyResponse{APIKey: "sk-raw", KeyID: "key-3"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "owner-key", "", logger)
		require.NoError(t, err)

		resp, err := client.CreateAPIKey(context.Background(), "acct-9", CreateAPIKeyRequest{
			ClientType: ClientTypeAgent,
			Label:      "ci",
			Env:        "prod",
		})
		require.NoError(t, err)
		assert.Equal(t, "sk-raw", resp.APIKey)
		assert.Equal(t, "key-3", resp.KeyID)
	})

	t.Run("revoke API key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/v1/admin/keys/key-3/revoke", r.URL.Path)
			json.NewEncoder(w).Encode(RevokeAPIKeyResponse{Status: "revoked", KeyID: "key-3"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "owner-key", "", logger)
		require.NoError(t, err)

		resp, err := client.RevokeAPIKey(context.Background(), "key-3")
		require.NoError(t, err)
		assert.Equal(t, "revoked", resp.Status)
	})

	t.Run("admin usage", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/admin/usage", r.URL.Path)
			json.NewEncoder(w).Encode(AdminUsage{TotalAccounts: 12, TotalUsage: 90000})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "owner-key", "", logger)
		require.NoError(t, err)

		usage, err := client.GetAdminUsage(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 12, usage.TotalAccounts)
	})
}
