package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// DashboardHandler exposes workspace-level aggregates.
type DashboardHandler struct {
	common *CommonServices
}

func NewDashboardHandler(common *CommonServices) *DashboardHandler {
	return &DashboardHandler{common: common}
}

// GetCashflow godoc
// @Summary Monthly cashflow summary
// @Description Returns income, expenses, and net per calendar month in the range, inclusive
// @Tags dashboard
// @Accept json
// @Produce json
// @Param from query string true "Start month (YYYY-MM)"
// @Param to query string true "End month (YYYY-MM)"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /dashboard/cashflow [get]
func (h *DashboardHandler) GetCashflow(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	from, err := helpers.ParseYearMonth(c.Query("from"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid from month, expected YYYY-MM", err)
		return
	}

	to, err := helpers.ParseYearMonth(c.Query("to"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid to month, expected YYYY-MM", err)
		return
	}

	summary, err := h.common.CashflowService.MonthlySummary(c.Request.Context(), workspaceID, from, to)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to compute cashflow summary", err)
		return
	}

	sendList(c, summary)
}

// GetUpcomingIncrements godoc
// @Summary Upcoming rent escalations
// @Description Lists active leases whose next escalation lands within the lookahead window
// @Tags dashboard
// @Accept json
// @Produce json
// @Param days query int false "Lookahead window in days, default 30"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /dashboard/upcoming-increments [get]
func (h *DashboardHandler) GetUpcomingIncrements(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	windowDays := constants.DefaultNoticeWindowDays
	if raw := c.Query("days"); raw != "" {
		windowDays, err = strconv.Atoi(raw)
		if err != nil || windowDays <= 0 {
			sendError(c, http.StatusBadRequest, "days must be a positive integer", err)
			return
		}
	}

	upcoming, err := h.common.LeaseService.UpcomingIncrementsForWorkspace(c.Request.Context(), workspaceID, time.Now(), windowDays)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to compute upcoming increments", err)
		return
	}

	sendList(c, upcoming)
}
