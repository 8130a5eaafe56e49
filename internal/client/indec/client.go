package indec

import (
	"context"
	"strconv"
	"time"

	"github.com/pkg/errors"

	httpClient "github.com/ingagustinmarcel/prop-flow/internal/client/http"
	"github.com/ingagustinmarcel/prop-flow/internal/constants"
)

// seriesPageLimit covers the full monthly history of the IPC series in one
// page; the API caps pages at 5000 rows.
const seriesPageLimit = 5000

// SeriesEntry is one normalized observation: the month it covers and the
// monthly variation as a decimal fraction (0.04 means 4%).
type SeriesEntry struct {
	Month time.Time `json:"month"`
	Value float64   `json:"value"`
}

// SeriesResponse mirrors the datos.gob.ar series API payload. Each data row
// is a [date, value] pair.
type SeriesResponse struct {
	Data [][]interface{} `json:"data"`
}

// Client fetches INDEC inflation series from the datos.gob.ar time-series API.
type Client struct {
	httpClient  *httpClient.HTTPClient
	baseURL     string
	seriesID    string
	retryConfig *httpClient.RetryConfig
}

// Option configures the Client
type Option func(*Client)

// WithBaseURL points the client at a different API host
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithSeriesID selects a series other than the IPC nivel general
func WithSeriesID(seriesID string) Option {
	return func(c *Client) {
		c.seriesID = seriesID
	}
}

// WithRetryConfig overrides the default retry behavior
func WithRetryConfig(config *httpClient.RetryConfig) Option {
	return func(c *Client) {
		c.retryConfig = config
	}
}

// NewClient creates an INDEC series client. Defaults target the official API
// and the IPC nivel general monthly-variation series.
func NewClient(options ...Option) *Client {
	c := &Client{
		baseURL:  constants.IndecAPIBaseURL,
		seriesID: constants.IPCSeriesID,
	}
	for _, option := range options {
		option(c)
	}

	clientOptions := []httpClient.ClientOption{
		httpClient.WithBaseURL(c.baseURL),
		httpClient.WithTimeout(20 * time.Second),
	}
	if c.retryConfig != nil {
		clientOptions = append(clientOptions, httpClient.WithRetryConfig(c.retryConfig))
	}
	c.httpClient = httpClient.NewHTTPClient(clientOptions...)

	return c
}

// SeriesID returns the series the client is configured to fetch
func (c *Client) SeriesID() string {
	return c.seriesID
}

// FetchSeries retrieves the full published history for the configured series,
// oldest observation first.
func (c *Client) FetchSeries(ctx context.Context) ([]SeriesEntry, error) {
	resp, err := c.httpClient.Get(
		ctx,
		"/series/api/series",
		httpClient.WithQueryParam("ids", c.seriesID),
		httpClient.WithQueryParam("limit", strconv.Itoa(seriesPageLimit)),
		httpClient.WithQueryParam("format", "json"),
	)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching series %s", c.seriesID)
	}

	var payload SeriesResponse
	if err := c.httpClient.ProcessJSONResponse(resp, &payload); err != nil {
		return nil, errors.Wrapf(err, "decoding series %s response", c.seriesID)
	}

	return normalizeEntries(payload.Data)
}

// FetchLatest returns the most recent n observations, oldest first.
func (c *Client) FetchLatest(ctx context.Context, n int) ([]SeriesEntry, error) {
	entries, err := c.FetchSeries(ctx)
	if err != nil {
		return nil, err
	}
	if n <= 0 || n >= len(entries) {
		return entries, nil
	}
	return entries[len(entries)-n:], nil
}

func normalizeEntries(rows [][]interface{}) ([]SeriesEntry, error) {
	entries := make([]SeriesEntry, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, errors.Errorf("malformed series row: %v", row)
		}
		rawDate, ok := row[0].(string)
		if !ok {
			return nil, errors.Errorf("unexpected date type %T in series row", row[0])
		}
		month, err := time.Parse("2006-01-02", rawDate)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing series date %q", rawDate)
		}

		// Months not yet published come through as null
		value, ok := row[1].(float64)
		if !ok {
			continue
		}

		entries = append(entries, SeriesEntry{Month: month, Value: normalizeRate(value)})
	}
	return entries, nil
}

// normalizeRate absorbs upstream format drift. The series publishes decimal
// fractions (0.06 for 6%), but a value of 2 or more is read as percentage
// points and divided by 100.
func normalizeRate(value float64) float64 {
	if value >= 2 {
		return value / 100
	}
	return value
}
