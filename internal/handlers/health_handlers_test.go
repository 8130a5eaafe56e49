package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestHealthHandler_Healthz(t *testing.T) {
	gin.SetMode(gin.TestMode)

	handler := NewHealthHandler(&CommonServices{})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)

	handler.Healthz(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "ok", response["status"])
}

func TestHealthHandler_Readyz_NoPool(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Services built without a pool cannot verify database connectivity.
	handler := NewHealthHandler(NewCommonServices(CommonServicesConfig{}))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/readyz", nil)

	handler.Readyz(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
