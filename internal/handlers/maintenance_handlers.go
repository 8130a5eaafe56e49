package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// MaintenanceHandler handles maintenance requests on units.
type MaintenanceHandler struct {
	common *CommonServices
}

func NewMaintenanceHandler(common *CommonServices) *MaintenanceHandler {
	return &MaintenanceHandler{common: common}
}

type CreateMaintenanceRequestRequest struct {
	UnitID      string `json:"unit_id" binding:"required"`
	TenantID    string `json:"tenant_id,omitempty"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority,omitempty"`
	OpenedOn    string `json:"opened_on,omitempty"`
}

type UpdateMaintenanceStatusRequest struct {
	Status     string `json:"status" binding:"required"`
	ResolvedOn string `json:"resolved_on,omitempty"`
}

// MaintenanceRequestResponse represents the API shape of a maintenance request.
type MaintenanceRequestResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	UnitID      string `json:"unit_id"`
	TenantID    string `json:"tenant_id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	OpenedOn    string `json:"opened_on"`
	ResolvedOn  string `json:"resolved_on,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// CreateMaintenanceRequest godoc
// @Summary Open a maintenance request
// @Description Opens a maintenance request against a unit
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request body CreateMaintenanceRequestRequest true "Request details"
// @Success 201 {object} MaintenanceRequestResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /maintenance-requests [post]
func (h *MaintenanceHandler) CreateMaintenanceRequest(c *gin.Context) {
	var req CreateMaintenanceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	unitID, err := uuid.Parse(req.UnitID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
		return
	}

	var tenantID *uuid.UUID
	if req.TenantID != "" {
		parsed, err := uuid.Parse(req.TenantID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
			return
		}
		tenantID = &parsed
	}

	priority := db.MaintenancePriorityMedium
	if req.Priority != "" {
		priority, err = parseMaintenancePriority(req.Priority)
		if err != nil {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
	}

	openedOn := time.Now()
	if req.OpenedOn != "" {
		openedOn, err = helpers.ParseDate(req.OpenedOn)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid opened_on date, expected YYYY-MM-DD", err)
			return
		}
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	request, err := h.common.GetDB().CreateMaintenanceRequest(c.Request.Context(), db.CreateMaintenanceRequestParams{
		WorkspaceID: workspaceID,
		UnitID:      unitID,
		TenantID:    helpers.UUIDToNullableUUID(tenantID),
		Title:       req.Title,
		Description: helpers.StringToNullableText(req.Description),
		Priority:    priority,
		OpenedOn:    helpers.TimeToDate(openedOn),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create maintenance request", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toMaintenanceRequestResponse(request))
}

// GetMaintenanceRequest godoc
// @Summary Get a maintenance request
// @Description Retrieves a maintenance request by ID
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Success 200 {object} MaintenanceRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /maintenance-requests/{request_id} [get]
func (h *MaintenanceHandler) GetMaintenanceRequest(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	request, err := h.common.GetDB().GetMaintenanceRequest(c.Request.Context(), db.GetMaintenanceRequestParams{
		ID:          requestID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Maintenance request not found")
		return
	}

	sendSuccess(c, http.StatusOK, toMaintenanceRequestResponse(request))
}

// ListMaintenanceRequests godoc
// @Summary List maintenance requests
// @Description Lists workspace maintenance requests, paginated. Pass status to filter.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param status query string false "Filter by status (open, in_progress, resolved, cancelled)"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /maintenance-requests [get]
func (h *MaintenanceHandler) ListMaintenanceRequests(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if statusStr := c.Query("status"); statusStr != "" {
		status, err := parseMaintenanceStatus(statusStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		requests, err := h.common.GetDB().ListMaintenanceRequestsByStatus(c.Request.Context(), db.ListMaintenanceRequestsByStatusParams{
			WorkspaceID: workspaceID,
			Status:      status,
		})
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve maintenance requests", err)
			return
		}
		sendList(c, toMaintenanceRequestResponses(requests))
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	requests, err := h.common.GetDB().ListMaintenanceRequests(c.Request.Context(), db.ListMaintenanceRequestsParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve maintenance requests", err)
		return
	}

	total, err := h.common.GetDB().CountMaintenanceRequests(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count maintenance requests", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, toMaintenanceRequestResponses(requests), int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateMaintenanceStatus godoc
// @Summary Update a maintenance request's status
// @Description Moves a maintenance request through its lifecycle. Resolving requires or defaults a resolved_on date.
// @Tags maintenance
// @Accept json
// @Produce json
// @Param request_id path string true "Request ID"
// @Param request body UpdateMaintenanceStatusRequest true "New status"
// @Success 200 {object} MaintenanceRequestResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /maintenance-requests/{request_id}/status [patch]
func (h *MaintenanceHandler) UpdateMaintenanceStatus(c *gin.Context) {
	requestID, err := uuid.Parse(c.Param("request_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request ID format", err)
		return
	}

	var req UpdateMaintenanceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	status, err := parseMaintenanceStatus(req.Status)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	var resolvedOn *time.Time
	if req.ResolvedOn != "" {
		parsed, err := helpers.ParseDate(req.ResolvedOn)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid resolved_on date, expected YYYY-MM-DD", err)
			return
		}
		resolvedOn = &parsed
	} else if status == db.MaintenanceStatusResolved {
		now := time.Now()
		resolvedOn = &now
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	request, err := h.common.GetDB().UpdateMaintenanceRequestStatus(c.Request.Context(), db.UpdateMaintenanceRequestStatusParams{
		ID:          requestID,
		WorkspaceID: workspaceID,
		Status:      status,
		ResolvedOn:  helpers.TimeToNullableDate(resolvedOn),
	})
	if err != nil {
		handleDBError(c, err, "Maintenance request not found")
		return
	}

	sendSuccess(c, http.StatusOK, toMaintenanceRequestResponse(request))
}

func parseMaintenancePriority(raw string) (db.MaintenancePriority, error) {
	priority := db.MaintenancePriority(raw)
	switch priority {
	case db.MaintenancePriorityLow, db.MaintenancePriorityMedium, db.MaintenancePriorityHigh:
		return priority, nil
	}
	return "", fmt.Errorf("invalid priority %q, expected low, medium, or high", raw)
}

func parseMaintenanceStatus(raw string) (db.MaintenanceStatus, error) {
	status := db.MaintenanceStatus(raw)
	switch status {
	case db.MaintenanceStatusOpen, db.MaintenanceStatusInProgress,
		db.MaintenanceStatusResolved, db.MaintenanceStatusCancelled:
		return status, nil
	}
	return "", fmt.Errorf("invalid status %q, expected open, in_progress, resolved, or cancelled", raw)
}

func toMaintenanceRequestResponse(r db.MaintenanceRequest) MaintenanceRequestResponse {
	resp := MaintenanceRequestResponse{
		ID:          r.ID.String(),
		Object:      "maintenance_request",
		UnitID:      r.UnitID.String(),
		TenantID:    helpers.NullableUUIDToString(r.TenantID),
		Title:       r.Title,
		Description: r.Description.String,
		Status:      string(r.Status),
		Priority:    string(r.Priority),
		CreatedAt:   r.CreatedAt.Time.Unix(),
		UpdatedAt:   r.UpdatedAt.Time.Unix(),
	}
	if r.OpenedOn.Valid {
		resp.OpenedOn = r.OpenedOn.Time.Format("2006-01-02")
	}
	if r.ResolvedOn.Valid {
		resp.ResolvedOn = r.ResolvedOn.Time.Format("2006-01-02")
	}
	return resp
}

func toMaintenanceRequestResponses(requests []db.MaintenanceRequest) []MaintenanceRequestResponse {
	response := make([]MaintenanceRequestResponse, len(requests))
	for i, request := range requests {
		response[i] = toMaintenanceRequestResponse(request)
	}
	return response
}
