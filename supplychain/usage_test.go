package supplychain

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetUsage(t *testing.T) {
	logger := zerolog.Nop()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/usage", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		json.NewEncoder(w).Encode(UsageSummary{
			AccountID:   "acct-1",
			Total:       1200,
			PerEndpoint: map[string]int{"/v1/alerts:GET": 1200},
		})
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-key", "", logger)
	require.NoError(t, err)

	summary, err := client.GetUsage(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "acct-1", summary.AccountID)
	assert.Equal(t, 1200, summary.Total)
	assert.Equal(t, 1200, summary.PerEndpoint["/v1/alerts:GET"])
}

func TestGetUsageTimeseries(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("bucket defaults to day, window omitted when unset", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/usage/timeseries", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, BucketDay, q.Get("bucket"))
			assert.False(t, q.Has("start"))
			assert.False(t, q.Has("end"))
			json.NewEncoder(w).Encode(UsageTimeseries{Bucket: BucketDay})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", "", logger)
		require.NoError(t, err)

		series, err := client.GetUsageTimeseries(context.Background(), TimeseriesOptions{})
		require.NoError(t, err)
		assert.Equal(t, BucketDay, series.Bucket)
	})

	t.Run("window sent when supplied", func(t *testing.T) {
		start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			q := r.URL.Query()
			assert.Equal(t, BucketHour, q.Get("bucket"))
			assert.Equal(t, "2024-03-01T00:00:00Z", q.Get("start"))
			assert.Equal(t, "2024-03-08T00:00:00Z", q.Get("end"))
			json.NewEncoder(w).Encode(UsageTimeseries{
				Bucket: BucketHour,
				Start:  start,
				End:    end,
				Data:   []UsageBucket{{Timestamp: start, Total: 7}},
			})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", "", logger)
		require.NoError(t, err)

		series, err := client.GetUsageTimeseries(context.Background(), TimeseriesOptions{
			Bucket: BucketHour,
			Start:  start,
			End:    end,
		})
		require.NoError(t, err)
		require.Len(t, series.Data, 1)
		assert.Equal(t, 7, series.Data[0].Total)
	})
}

func TestAccountEndpoints(t *testing.T) {
	logger := zerolog.Nop()

	t.Run("me", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/me", r.URL.Path)
			json.NewEncoder(w).Encode(AccountInfo{AccountID: "acct-1", Plan: "pro", OverageEnabled: true})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", "", logger)
		require.NoError(t, err)

		info, err := client.Me(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "pro", info.Plan)
		assert.True(t, info.OverageEnabled)
	})

	t.Run("limits", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/limits", r.URL.Path)
			json.NewEncoder(w).Encode(Limits{
				PerMinute:    map[string]int{"/v1/alerts:GET": 60},
				MonthlyQuota: 1350000,
			})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", "", logger)
		require.NoError(t, err)

		limits, err := client.GetLimits(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 60, limits.PerMinute["/v1/alerts:GET"])
		assert.Equal(t, 1350000, limits.MonthlyQuota)
	})

	t.Run("health", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/health", r.URL.Path)
			json.NewEncoder(w).Encode(Health{Status: "ok", Version: "1.4.2"})
		}))
		defer server.Close()

		client, err := NewClient(server.URL, "test-key", "", logger)
		require.NoError(t, err)

		health, err := client.Health(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "ok", health.Status)
	})
}
