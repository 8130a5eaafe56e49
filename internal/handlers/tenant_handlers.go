package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// TenantHandler handles tenant CRUD.
type TenantHandler struct {
	common *CommonServices
}

func NewTenantHandler(common *CommonServices) *TenantHandler {
	return &TenantHandler{common: common}
}

type CreateTenantRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

type UpdateTenantRequest struct {
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
}

// TenantResponse represents the API shape of a tenant.
type TenantResponse struct {
	ID         string `json:"id"`
	Object     string `json:"object"`
	FullName   string `json:"full_name"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	DocumentID string `json:"document_id,omitempty"`
	Notes      string `json:"notes,omitempty"`
	CreatedAt  int64  `json:"created_at"`
	UpdatedAt  int64  `json:"updated_at"`
}

// CreateTenant godoc
// @Summary Create a tenant
// @Description Registers a tenant in the current workspace
// @Tags tenants
// @Accept json
// @Produce json
// @Param request body CreateTenantRequest true "Tenant details"
// @Success 201 {object} TenantResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	tenant, err := h.common.GetDB().CreateTenant(c.Request.Context(), db.CreateTenantParams{
		WorkspaceID: workspaceID,
		FullName:    req.FullName,
		Email:       helpers.StringToNullableText(req.Email),
		Phone:       helpers.StringToNullableText(req.Phone),
		DocumentID:  helpers.StringToNullableText(req.DocumentID),
		Notes:       helpers.StringToNullableText(req.Notes),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create tenant", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toTenantResponse(tenant))
}

// GetTenant godoc
// @Summary Get a tenant
// @Description Retrieves a tenant by ID
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /tenants/{tenant_id} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	tenant, err := h.common.GetDB().GetTenant(c.Request.Context(), db.GetTenantParams{
		ID:          tenantID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Tenant not found")
		return
	}

	sendSuccess(c, http.StatusOK, toTenantResponse(tenant))
}

// ListTenants godoc
// @Summary List tenants
// @Description Lists the tenants of the current workspace, paginated
// @Tags tenants
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	tenants, err := h.common.GetDB().ListTenants(c.Request.Context(), db.ListTenantsParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve tenants", err)
		return
	}

	total, err := h.common.GetDB().CountTenants(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count tenants", err)
		return
	}

	response := make([]TenantResponse, len(tenants))
	for i, tenant := range tenants {
		response[i] = toTenantResponse(tenant)
	}

	sendPaginatedSuccess(c, http.StatusOK, response, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateTenant godoc
// @Summary Update a tenant
// @Description Updates a tenant's contact details
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Param request body UpdateTenantRequest true "Tenant details"
// @Success 200 {object} TenantResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /tenants/{tenant_id} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	var req UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	tenant, err := h.common.GetDB().UpdateTenant(c.Request.Context(), db.UpdateTenantParams{
		ID:          tenantID,
		WorkspaceID: workspaceID,
		FullName:    req.FullName,
		Email:       helpers.StringToNullableText(req.Email),
		Phone:       helpers.StringToNullableText(req.Phone),
		DocumentID:  helpers.StringToNullableText(req.DocumentID),
		Notes:       helpers.StringToNullableText(req.Notes),
	})
	if err != nil {
		handleDBError(c, err, "Tenant not found")
		return
	}

	sendSuccess(c, http.StatusOK, toTenantResponse(tenant))
}

// DeleteTenant godoc
// @Summary Delete a tenant
// @Description Removes a tenant from the workspace
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant_id path string true "Tenant ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /tenants/{tenant_id} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenant_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid tenant ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if err := h.common.GetDB().DeleteTenant(c.Request.Context(), db.DeleteTenantParams{
		ID:          tenantID,
		WorkspaceID: workspaceID,
	}); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete tenant", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Tenant deleted")
}

func toTenantResponse(t db.Tenant) TenantResponse {
	return TenantResponse{
		ID:         t.ID.String(),
		Object:     "tenant",
		FullName:   t.FullName,
		Email:      t.Email.String,
		Phone:      t.Phone.String,
		DocumentID: t.DocumentID.String,
		Notes:      t.Notes.String,
		CreatedAt:  t.CreatedAt.Time.Unix(),
		UpdatedAt:  t.UpdatedAt.Time.Unix(),
	}
}
