package helpers

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paginationContext(t *testing.T, query string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?"+query, nil)
	return c
}

func TestParsePaginationParams(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected PaginationParams
	}{
		{
			name:     "defaults when nothing is passed",
			query:    "",
			expected: PaginationParams{Limit: 10, Offset: 0, Page: 1},
		},
		{
			name:     "page based",
			query:    "page=3&limit=20",
			expected: PaginationParams{Limit: 20, Offset: 40, Page: 3},
		},
		{
			name:     "offset based derives the page",
			query:    "offset=25&limit=10",
			expected: PaginationParams{Limit: 10, Offset: 25, Page: 3},
		},
		{
			name:     "page wins over offset",
			query:    "page=2&offset=90&limit=10",
			expected: PaginationParams{Limit: 10, Offset: 10, Page: 2},
		},
		{
			name:     "limit is capped",
			query:    "limit=5000",
			expected: PaginationParams{Limit: 100, Offset: 0, Page: 1},
		},
		{
			name:     "non-positive values keep the defaults",
			query:    "page=0&limit=-5",
			expected: PaginationParams{Limit: 10, Offset: 0, Page: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := ParsePaginationParams(paginationContext(t, tt.query))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, params)
		})
	}
}

func TestParsePaginationParams_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{name: "non-numeric limit", query: "limit=ten"},
		{name: "non-numeric page", query: "page=first"},
		{name: "non-numeric offset", query: "offset=1.5"},
		{name: "overflowing page", query: "page=3000000000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePaginationParams(paginationContext(t, tt.query))
			assert.Error(t, err)
		})
	}
}

func TestSafeParseInt32(t *testing.T) {
	v, err := SafeParseInt32("42")
	require.NoError(t, err)
	assert.Equal(t, int32(42), v)

	_, err = SafeParseInt32("2147483648")
	assert.ErrorContains(t, err, "overflows int32")

	_, err = SafeParseInt32("-2147483649")
	assert.Error(t, err)

	_, err = SafeParseInt32("abc")
	assert.Error(t, err)
}
