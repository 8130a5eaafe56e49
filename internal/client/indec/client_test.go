package indec

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpClient "github.com/ingagustinmarcel/prop-flow/internal/client/http"
	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
)

func init() {
	logger.InitLogger("test")
}

// testRetryConfig keeps retry backoff short enough for unit tests
func testRetryConfig() *httpClient.RetryConfig {
	return &httpClient.RetryConfig{
		MaxRetries:           2,
		InitialInterval:      time.Millisecond,
		MaxInterval:          5 * time.Millisecond,
		Multiplier:           1.5,
		MaxElapsedTime:       time.Second,
		RetryableStatusCodes: []int{500, 502, 503},
	}
}

func TestClient_FetchSeries(t *testing.T) {
	const payload = `{
		"data": [
			["2025-01-01", 0.022],
			["2025-02-01", 0.024],
			["2025-03-01", 3.7],
			["2025-04-01", null]
		],
		"meta": [{"frequency": "month"}]
	}`

	var gotPath string
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = map[string]string{
			"ids":    r.URL.Query().Get("ids"),
			"limit":  r.URL.Query().Get("limit"),
			"format": r.URL.Query().Get("format"),
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRetryConfig(testRetryConfig()))

	entries, err := client.FetchSeries(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "/series/api/series", gotPath)
	assert.Equal(t, constants.IPCSeriesID, gotQuery["ids"])
	assert.Equal(t, "5000", gotQuery["limit"])
	assert.Equal(t, "json", gotQuery["format"])

	// The null observation is dropped; the 3.7 percentage is normalized
	require.Len(t, entries, 3)
	assert.Equal(t, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC), entries[0].Month)
	assert.InDelta(t, 0.022, entries[0].Value, 1e-9)
	assert.InDelta(t, 0.024, entries[1].Value, 1e-9)
	assert.InDelta(t, 0.037, entries[2].Value, 1e-9, "percentage points should be divided by 100")
}

func TestClient_FetchSeries_CustomSeriesID(t *testing.T) {
	var gotSeriesID string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSeriesID = r.URL.Query().Get("ids")
		_, _ = w.Write([]byte(`{"data": []}`))
	}))
	defer server.Close()

	client := NewClient(
		WithBaseURL(server.URL),
		WithSeriesID("101.1_I2NG_2016_M_22"),
		WithRetryConfig(testRetryConfig()),
	)

	entries, err := client.FetchSeries(context.Background())
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Equal(t, "101.1_I2NG_2016_M_22", gotSeriesID)
	assert.Equal(t, "101.1_I2NG_2016_M_22", client.SeriesID())
}

func TestClient_FetchSeries_RetriesOnServerError(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = w.Write([]byte(`{"data": [["2025-05-01", 0.015]]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRetryConfig(testRetryConfig()))

	entries, err := client.FetchSeries(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.InDelta(t, 0.015, entries[0].Value, 1e-9)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "first attempt should be retried")
}

func TestClient_FetchSeries_ClientErrorIsNotRetried(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error": "series not found"}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRetryConfig(testRetryConfig()))

	_, err := client.FetchSeries(context.Background())
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	var httpErr *httpClient.HTTPError
	require.True(t, errors.As(err, &httpErr), "cause should be the typed HTTP error")
	assert.Equal(t, http.StatusNotFound, httpErr.StatusCode)
	assert.Contains(t, httpErr.Body, "series not found")
}

func TestClient_FetchSeries_MalformedRow(t *testing.T) {
	testCases := []struct {
		name    string
		payload string
	}{
		{
			name:    "Row with missing value",
			payload: `{"data": [["2025-01-01"]]}`,
		},
		{
			name:    "Non-string date",
			payload: `{"data": [[20250101, 0.02]]}`,
		},
		{
			name:    "Unparseable date",
			payload: `{"data": [["enero", 0.02]]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.payload))
			}))
			defer server.Close()

			client := NewClient(WithBaseURL(server.URL), WithRetryConfig(testRetryConfig()))

			_, err := client.FetchSeries(context.Background())
			assert.Error(t, err)
		})
	}
}

func TestClient_FetchLatest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": [
				["2025-01-01", 0.022],
				["2025-02-01", 0.024],
				["2025-03-01", 0.028],
				["2025-04-01", 0.031],
				["2025-05-01", 0.015],
				["2025-06-01", 0.019]
			]
		}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithRetryConfig(testRetryConfig()))

	t.Run("returns the trailing window oldest first", func(t *testing.T) {
		entries, err := client.FetchLatest(context.Background(), 4)
		require.NoError(t, err)
		require.Len(t, entries, 4)
		assert.Equal(t, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), entries[0].Month)
		assert.Equal(t, time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC), entries[3].Month)
	})

	t.Run("window larger than history returns everything", func(t *testing.T) {
		entries, err := client.FetchLatest(context.Background(), 100)
		require.NoError(t, err)
		assert.Len(t, entries, 6)
	})

	t.Run("non-positive window returns everything", func(t *testing.T) {
		entries, err := client.FetchLatest(context.Background(), 0)
		require.NoError(t, err)
		assert.Len(t, entries, 6)
	})
}

func TestNormalizeRate(t *testing.T) {
	assert.InDelta(t, 0.04, normalizeRate(0.04), 1e-9)
	assert.InDelta(t, 0.047, normalizeRate(4.7), 1e-9)
	assert.InDelta(t, 0.02, normalizeRate(2.0), 1e-9, "boundary value is treated as percentage points")
	assert.InDelta(t, 1.9, normalizeRate(1.9), 1e-9)
}
