package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

// LeaseHandler handles lease CRUD and the rent escalation endpoints.
type LeaseHandler struct {
	common *CommonServices
}

func NewLeaseHandler(common *CommonServices) *LeaseHandler {
	return &LeaseHandler{common: common}
}

type CreateLeaseRequest struct {
	UnitID          string  `json:"unit_id" binding:"required"`
	TenantID        string  `json:"tenant_id" binding:"required"`
	Rent            float64 `json:"rent" binding:"required"`
	Deposit         float64 `json:"deposit,omitempty"`
	LeaseStart      string  `json:"lease_start" binding:"required"`
	LeaseEnd        string  `json:"lease_end,omitempty"`
	FrequencyMonths int32   `json:"frequency_months,omitempty"`
}

type UpdateLeaseRequest struct {
	Rent            float64 `json:"rent" binding:"required"`
	Deposit         float64 `json:"deposit,omitempty"`
	LeaseEnd        string  `json:"lease_end,omitempty"`
	FrequencyMonths int32   `json:"frequency_months,omitempty"`
}

type EndLeaseRequest struct {
	EndDate string `json:"end_date" binding:"required"`
}

type RentOverrideRequest struct {
	Amount float64 `json:"amount" binding:"required"`
}

type ApplyIncrementRequest struct {
	NewRent *float64 `json:"new_rent,omitempty"`
}

// LeaseResponse represents the API shape of a lease.
type LeaseResponse struct {
	ID                string   `json:"id"`
	Object            string   `json:"object"`
	UnitID            string   `json:"unit_id"`
	TenantID          string   `json:"tenant_id"`
	Rent              float64  `json:"rent"`
	Deposit           float64  `json:"deposit"`
	LeaseStart        string   `json:"lease_start"`
	LeaseEnd          string   `json:"lease_end,omitempty"`
	LastIncrementDate string   `json:"last_increment_date,omitempty"`
	RentOverride      *float64 `json:"rent_override,omitempty"`
	FrequencyMonths   int32    `json:"frequency_months"`
	Status            string   `json:"status"`
	CreatedAt         int64    `json:"created_at"`
	UpdatedAt         int64    `json:"updated_at"`
}

// ScheduleResponse wraps the escalation schedule of a lease.
// FrequencyMonths echoes the caller's cadence override and is absent when the
// lease's own cadence was used.
type ScheduleResponse struct {
	Object          string                   `json:"object"`
	LeaseID         string                   `json:"lease_id"`
	FrequencyMonths int                      `json:"frequency_months,omitempty"`
	Entries         []services.ScheduleEntry `json:"entries"`
}

// NextIncrementResponse wraps the next pending escalation of a lease. Next is
// absent when the lease has no pending escalation inside its term.
type NextIncrementResponse struct {
	Object     string               `json:"object"`
	LeaseID    string               `json:"lease_id"`
	HasPending bool                 `json:"has_pending"`
	Next       *services.NextUpdate `json:"next,omitempty"`
}

// ApplyIncrementResponse reports an applied escalation and the updated lease.
type ApplyIncrementResponse struct {
	Object  string              `json:"object"`
	Lease   LeaseResponse       `json:"lease"`
	Applied services.NextUpdate `json:"applied"`
}

// CreateLease godoc
// @Summary Create a lease
// @Description Opens a lease on a unit. Fails when the unit already has an active lease.
// @Tags leases
// @Accept json
// @Produce json
// @Param request body CreateLeaseRequest true "Lease details"
// @Success 201 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Security Bearer
// @Router /leases [post]
func (h *LeaseHandler) CreateLease(c *gin.Context) {
	var req CreateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
		return
	}

	tenantID, err := uuid.Parse(req.TenantID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	leaseStart, err := helpers.ParseDate(req.LeaseStart)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease start date, expected YYYY-MM-DD", err)
		return
	}

	var leaseEnd *time.Time
	if req.LeaseEnd != "" {
		parsed, err := helpers.ParseDate(req.LeaseEnd)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid lease end date, expected YYYY-MM-DD", err)
			return
		}
		leaseEnd = &parsed
	}

	lease, err := h.common.LeaseService.CreateLease(c.Request.Context(), services.CreateLeaseInput{
		WorkspaceID:     workspaceID,
		UnitID:          unitID,
		TenantID:        tenantID,
		Rent:            req.Rent,
		Deposit:         req.Deposit,
		LeaseStart:      leaseStart,
		LeaseEnd:        leaseEnd,
		FrequencyMonths: req.FrequencyMonths,
	})
	if err != nil {
		var existsErr *services.ActiveLeaseExistsError
		if errors.As(err, &existsErr) {
			sendError(c, http.StatusConflict, "Unit already has an active lease", err)
			return
		}
		sendError(c, http.StatusBadRequest, "Failed to create lease", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toLeaseResponse(lease))
}

// GetLease godoc
// @Summary Get a lease
// @Description Retrieves a lease by ID
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id} [get]
func (h *LeaseHandler) GetLease(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	lease, err := h.common.GetDB().GetLease(c.Request.Context(), db.GetLeaseParams{
		ID:          leaseID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Lease not found")
		return
	}

	sendSuccess(c, http.StatusOK, toLeaseResponse(lease))
}

// ListLeases godoc
// @Summary List leases
// @Description Lists leases in the workspace. Filter by unit with unit_id, by tenant with tenant_id, or restrict to active leases with status=active.
// @Tags leases
// @Accept json
// @Produce json
// @Param unit_id query string false "Filter by unit"
// @Param tenant_id query string false "Filter by tenant"
// @Param status query string false "Filter by status (active)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /leases [get]
func (h *LeaseHandler) ListLeases(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if unitIDStr := c.Query("unit_id"); unitIDStr != "" {
		unitID, err := uuid.Parse(unitIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
			return
		}
		leases, err := h.common.GetDB().ListLeasesByUnit(c.Request.Context(), db.ListLeasesByUnitParams{
			UnitID:      unitID,
			WorkspaceID: workspaceID,
		})
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve leases", err)
			return
		}
		sendList(c, toLeaseResponses(leases))
		return
	}

	if tenantIDStr := c.Query("tenant_id"); tenantIDStr != "" {
		tenantID, err := uuid.Parse(tenantIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
			return
		}
		leases, err := h.common.GetDB().ListLeasesByTenant(c.Request.Context(), db.ListLeasesByTenantParams{
			TenantID:    tenantID,
			WorkspaceID: workspaceID,
		})
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve leases", err)
			return
		}
		sendList(c, toLeaseResponses(leases))
		return
	}

	if status := c.Query("status"); status != "" {
		if status != string(db.LeaseStatusActive) {
			sendError(c, http.StatusBadRequest, "Unsupported status filter, only 'active' is supported", nil)
			return
		}
		leases, err := h.common.GetDB().ListActiveLeasesByWorkspace(c.Request.Context(), workspaceID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve leases", err)
			return
		}
		sendList(c, toLeaseResponses(leases))
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	leases, err := h.common.GetDB().ListLeases(c.Request.Context(), db.ListLeasesParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve leases", err)
		return
	}

	total, err := h.common.GetDB().CountLeases(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count leases", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, toLeaseResponses(leases), int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateLease godoc
// @Summary Update a lease
// @Description Updates a lease's rent, deposit, end date, or escalation cadence
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param request body UpdateLeaseRequest true "Lease details"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id} [put]
func (h *LeaseHandler) UpdateLease(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	var req UpdateLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if req.Rent <= 0 {
		sendError(c, http.StatusBadRequest, "Rent must be positive", nil)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	var leaseEnd *time.Time
	if req.LeaseEnd != "" {
		parsed, err := helpers.ParseDate(req.LeaseEnd)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid lease end date, expected YYYY-MM-DD", err)
			return
		}
		leaseEnd = &parsed
	}

	frequency := req.FrequencyMonths
	if frequency <= 0 {
		existing, err := h.common.GetDB().GetLease(c.Request.Context(), db.GetLeaseParams{
			ID:          leaseID,
			WorkspaceID: workspaceID,
		})
		if err != nil {
			handleDBError(c, err, "Lease not found")
			return
		}
		frequency = existing.FrequencyMonths
	}

	lease, err := h.common.GetDB().UpdateLease(c.Request.Context(), db.UpdateLeaseParams{
		ID:              leaseID,
		WorkspaceID:     workspaceID,
		Rent:            helpers.Float64ToNumeric(req.Rent),
		Deposit:         helpers.Float64ToNumeric(req.Deposit),
		LeaseEnd:        helpers.TimeToNullableDate(leaseEnd),
		FrequencyMonths: frequency,
	})
	if err != nil {
		handleDBError(c, err, "Lease not found")
		return
	}

	sendSuccess(c, http.StatusOK, toLeaseResponse(lease))
}

// EndLease godoc
// @Summary End a lease
// @Description Marks a lease as ended on the given date
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param request body EndLeaseRequest true "End date"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id}/end [post]
func (h *LeaseHandler) EndLease(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	var req EndLeaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	endDate, err := helpers.ParseDate(req.EndDate)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid end date, expected YYYY-MM-DD", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	lease, err := h.common.LeaseService.EndLease(c.Request.Context(), workspaceID, leaseID, endDate)
	if err != nil {
		handleDBError(c, err, "Lease not found")
		return
	}

	sendSuccess(c, http.StatusOK, toLeaseResponse(lease))
}

// GetSchedule godoc
// @Summary Get the escalation schedule of a lease
// @Description Computes the full rent escalation schedule for a lease. Pass frequency_months to recompute the schedule at a different cadence.
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param frequency_months query int false "Override the escalation cadence"
// @Success 200 {object} ScheduleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id}/schedule [get]
func (h *LeaseHandler) GetSchedule(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	frequency := 0
	if raw := c.Query("frequency_months"); raw != "" {
		frequency, err = strconv.Atoi(raw)
		if err != nil || frequency <= 0 {
			sendError(c, http.StatusBadRequest, "frequency_months must be a positive integer", err)
			return
		}
	}

	entries, err := h.common.LeaseService.Schedule(c.Request.Context(), workspaceID, leaseID, frequency)
	if err != nil {
		handleDBError(c, err, "Lease not found")
		return
	}

	sendSuccess(c, http.StatusOK, ScheduleResponse{
		Object:          "schedule",
		LeaseID:         leaseID.String(),
		FrequencyMonths: frequency,
		Entries:         entries,
	})
}

// GetNextIncrement godoc
// @Summary Get the next escalation of a lease
// @Description Returns the next pending rent escalation, with projection and override flags
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} NextIncrementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id}/next-increment [get]
func (h *LeaseHandler) GetNextIncrement(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	next, ok, err := h.common.LeaseService.NextIncrement(c.Request.Context(), workspaceID, leaseID)
	if err != nil {
		handleDBError(c, err, "Lease not found")
		return
	}

	response := NextIncrementResponse{
		Object:     "next_increment",
		LeaseID:    leaseID.String(),
		HasPending: ok,
	}
	if ok {
		response.Next = &next
	}

	sendSuccess(c, http.StatusOK, response)
}

// SetRentOverride godoc
// @Summary Set a one-shot rent override
// @Description Pins the next escalation to a fixed amount instead of the index-derived one
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param request body RentOverrideRequest true "Override amount"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id}/rent-override [put]
func (h *LeaseHandler) SetRentOverride(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	var req RentOverrideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	lease, err := h.common.LeaseService.SetRentOverride(c.Request.Context(), workspaceID, leaseID, req.Amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			handleDBError(c, err, "Lease not found")
			return
		}
		sendError(c, http.StatusBadRequest, "Failed to set rent override", err)
		return
	}

	sendSuccess(c, http.StatusOK, toLeaseResponse(lease))
}

// ClearRentOverride godoc
// @Summary Clear the rent override of a lease
// @Description Removes the pinned amount so the next escalation follows the index again
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Success 200 {object} LeaseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id}/rent-override [delete]
func (h *LeaseHandler) ClearRentOverride(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	lease, err := h.common.LeaseService.ClearRentOverride(c.Request.Context(), workspaceID, leaseID)
	if err != nil {
		handleDBError(c, err, "Lease not found")
		return
	}

	sendSuccess(c, http.StatusOK, toLeaseResponse(lease))
}

// ApplyIncrement godoc
// @Summary Apply the next escalation of a lease
// @Description Commits the next pending escalation: updates the rent, advances the checkpoint, and clears any override. Pass new_rent to commit an explicit amount instead.
// @Tags leases
// @Accept json
// @Produce json
// @Param lease_id path string true "Lease ID"
// @Param request body ApplyIncrementRequest false "Optional explicit amount"
// @Success 200 {object} ApplyIncrementResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /leases/{lease_id}/apply-increment [post]
func (h *LeaseHandler) ApplyIncrement(c *gin.Context) {
	leaseID, err := uuid.Parse(c.Param("lease_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	var req ApplyIncrementRequest
	if c.Request.Body != nil && c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			sendError(c, http.StatusBadRequest, "Invalid request body", err)
			return
		}
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	lease, applied, err := h.common.LeaseService.ApplyIncrement(c.Request.Context(), workspaceID, leaseID, req.NewRent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			handleDBError(c, err, "Lease not found")
			return
		}
		sendError(c, http.StatusBadRequest, "Failed to apply increment", err)
		return
	}

	sendSuccess(c, http.StatusOK, ApplyIncrementResponse{
		Object:  "increment_result",
		Lease:   toLeaseResponse(lease),
		Applied: applied,
	})
}

func toLeaseResponse(l db.Lease) LeaseResponse {
	resp := LeaseResponse{
		ID:              l.ID.String(),
		Object:          "lease",
		UnitID:          l.UnitID.String(),
		TenantID:        l.TenantID.String(),
		Rent:            helpers.NumericToFloat64(l.Rent),
		Deposit:         helpers.NumericToFloat64(l.Deposit),
		FrequencyMonths: l.FrequencyMonths,
		Status:          string(l.Status),
		CreatedAt:       l.CreatedAt.Time.Unix(),
		UpdatedAt:       l.UpdatedAt.Time.Unix(),
	}
	if l.LeaseStart.Valid {
		resp.LeaseStart = l.LeaseStart.Time.Format("2006-01-02")
	}
	if l.LeaseEnd.Valid {
		resp.LeaseEnd = l.LeaseEnd.Time.Format("2006-01-02")
	}
	if l.LastIncrementDate.Valid {
		resp.LastIncrementDate = l.LastIncrementDate.Time.Format("2006-01-02")
	}
	resp.RentOverride = helpers.NumericToNullableFloat64(l.RentOverride)
	return resp
}

func toLeaseResponses(leases []db.Lease) []LeaseResponse {
	response := make([]LeaseResponse, len(leases))
	for i, lease := range leases {
		response[i] = toLeaseResponse(lease)
	}
	return response
}
