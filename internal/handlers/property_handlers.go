package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// PropertyHandler handles property CRUD and the units-of-property listing.
type PropertyHandler struct {
	common *CommonServices
}

func NewPropertyHandler(common *CommonServices) *PropertyHandler {
	return &PropertyHandler{common: common}
}

type CreatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	AddressLine string `json:"address_line" binding:"required"`
	City        string `json:"city,omitempty"`
	Province    string `json:"province,omitempty"`
}

type UpdatePropertyRequest struct {
	Name        string `json:"name" binding:"required"`
	AddressLine string `json:"address_line" binding:"required"`
	City        string `json:"city,omitempty"`
	Province    string `json:"province,omitempty"`
}

// PropertyResponse represents the API shape of a property.
type PropertyResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Name        string `json:"name"`
	AddressLine string `json:"address_line"`
	City        string `json:"city,omitempty"`
	Province    string `json:"province,omitempty"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// CreateProperty godoc
// @Summary Create a property
// @Description Registers a building or house in the current workspace
// @Tags properties
// @Accept json
// @Produce json
// @Param request body CreatePropertyRequest true "Property details"
// @Success 201 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /properties [post]
func (h *PropertyHandler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	property, err := h.common.GetDB().CreateProperty(c.Request.Context(), db.CreatePropertyParams{
		WorkspaceID: workspaceID,
		Name:        req.Name,
		AddressLine: req.AddressLine,
		City:        helpers.StringToNullableText(req.City),
		Province:    helpers.StringToNullableText(req.Province),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create property", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toPropertyResponse(property))
}

// GetProperty godoc
// @Summary Get a property
// @Description Retrieves a property by ID
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /properties/{property_id} [get]
func (h *PropertyHandler) GetProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	property, err := h.common.GetDB().GetProperty(c.Request.Context(), db.GetPropertyParams{
		ID:          propertyID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Property not found")
		return
	}

	sendSuccess(c, http.StatusOK, toPropertyResponse(property))
}

// ListProperties godoc
// @Summary List properties
// @Description Lists the properties of the current workspace, paginated
// @Tags properties
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /properties [get]
func (h *PropertyHandler) ListProperties(c *gin.Context) {
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

	properties, err := h.common.GetDB().ListProperties(c.Request.Context(), db.ListPropertiesParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve properties", err)
		return
	}

	total, err := h.common.GetDB().CountProperties(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count properties", err)
		return
	}

	response := make([]PropertyResponse, len(properties))
	for i, property := range properties {
		response[i] = toPropertyResponse(property)
	}

	sendPaginatedSuccess(c, http.StatusOK, response, int(pagination.Page), int(pagination.Limit), int(total))
}

// ListPropertyUnits godoc
// @Summary List units of a property
// @Description Lists all units belonging to a property
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /properties/{property_id}/units [get]
func (h *PropertyHandler) ListPropertyUnits(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	units, err := h.common.GetDB().ListUnitsByProperty(c.Request.Context(), db.ListUnitsByPropertyParams{
		PropertyID:  propertyID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve units", err)
		return
	}

	response := make([]UnitResponse, len(units))
	for i, unit := range units {
		response[i] = toUnitResponse(unit)
	}

	sendList(c, response)
}

// UpdateProperty godoc
// @Summary Update a property
// @Description Updates a property's details
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Param request body UpdatePropertyRequest true "Property details"
// @Success 200 {object} PropertyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /properties/{property_id} [put]
func (h *PropertyHandler) UpdateProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	property, err := h.common.GetDB().UpdateProperty(c.Request.Context(), db.UpdatePropertyParams{
		ID:          propertyID,
		WorkspaceID: workspaceID,
		Name:        req.Name,
		AddressLine: req.AddressLine,
		City:        helpers.StringToNullableText(req.City),
		Province:    helpers.StringToNullableText(req.Province),
	})
	if err != nil {
		handleDBError(c, err, "Property not found")
		return
	}

	sendSuccess(c, http.StatusOK, toPropertyResponse(property))
}

// DeleteProperty godoc
// @Summary Delete a property
// @Description Removes a property and its units from the workspace
// @Tags properties
// @Accept json
// @Produce json
// @Param property_id path string true "Property ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /properties/{property_id} [delete]
func (h *PropertyHandler) DeleteProperty(c *gin.Context) {
	propertyID, err := uuid.Parse(c.Param("property_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if err := h.common.GetDB().DeleteProperty(c.Request.Context(), db.DeletePropertyParams{
		ID:          propertyID,
		WorkspaceID: workspaceID,
	}); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete property", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Property deleted")
}

func toPropertyResponse(p db.Property) PropertyResponse {
	return PropertyResponse{
		ID:          p.ID.String(),
		Object:      "property",
		Name:        p.Name,
		AddressLine: p.AddressLine,
		City:        p.City.String,
		Province:    p.Province.String,
		CreatedAt:   p.CreatedAt.Time.Unix(),
		UpdatedAt:   p.UpdatedAt.Time.Unix(),
	}
}
