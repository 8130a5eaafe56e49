package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	common *CommonServices
}

func NewHealthHandler(common *CommonServices) *HealthHandler {
	return &HealthHandler{common: common}
}

// HealthResponse is the body returned by the probe endpoints.
type HealthResponse struct {
	Status string `json:"status"`
}

// Healthz godoc
// @Summary Liveness probe
// @Description Returns a simple "ok" status
// @Tags health
// @Accept json
// @Produce json
// @Tags exclude
func (h *HealthHandler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}

// Readyz godoc
// @Summary Readiness probe
// @Description Verifies the database is reachable
// @Tags health
// @Accept json
// @Produce json
// @Tags exclude
func (h *HealthHandler) Readyz(c *gin.Context) {
	pool, err := h.common.GetDBPool()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "no database"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := pool.Ping(ctx); err != nil {
		c.JSON(http.StatusServiceUnavailable, HealthResponse{Status: "database unreachable"})
		return
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
	})
}
