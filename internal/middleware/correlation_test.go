package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCorrelationID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name                 string
		requestCorrelationID string
		expectNewID          bool
	}{
		{
			name:                 "new ID generated when header not present",
			requestCorrelationID: "",
			expectNewID:          true,
		},
		{
			name:                 "existing ID preserved when header present",
			requestCorrelationID: "test-correlation-id-123",
			expectNewID:          false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CorrelationID())

			router.GET("/test", func(c *gin.Context) {
				c.JSON(http.StatusOK, gin.H{
					"correlation_id": GetCorrelationID(c),
				})
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.requestCorrelationID != "" {
				req.Header.Set(CorrelationIDHeader, tt.requestCorrelationID)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)

			responseCorrelationID := w.Header().Get(CorrelationIDHeader)
			assert.NotEmpty(t, responseCorrelationID)

			if tt.expectNewID {
				// Generated IDs are UUIDs (36 chars with dashes)
				assert.Len(t, responseCorrelationID, 36)
			} else {
				assert.Equal(t, tt.requestCorrelationID, responseCorrelationID)
			}
		})
	}
}

func TestCorrelationID_PropagatesToRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(CorrelationID())

	var fromContext string
	router.GET("/test", func(c *gin.Context) {
		fromContext = CorrelationIDFromContext(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"correlation_id": fromContext})
	})

	testID := "test-correlation-id-456"
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(CorrelationIDHeader, testID)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testID, fromContext)
	assert.Equal(t, testID, w.Header().Get(CorrelationIDHeader))
}

func TestCorrelationIDFromContext_Absent(t *testing.T) {
	assert.Equal(t, "", CorrelationIDFromContext(context.Background()))

	ctx := WithCorrelationID(context.Background(), "abc-123")
	assert.Equal(t, "abc-123", CorrelationIDFromContext(ctx))
}
