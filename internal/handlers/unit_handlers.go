package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// UnitHandler handles unit CRUD.
type UnitHandler struct {
	common *CommonServices
}

func NewUnitHandler(common *CommonServices) *UnitHandler {
	return &UnitHandler{common: common}
}

type CreateUnitRequest struct {
	PropertyID string   `json:"property_id" binding:"required"`
	Label      string   `json:"label" binding:"required"`
	Floor      string   `json:"floor,omitempty"`
	Bedrooms   *int32   `json:"bedrooms,omitempty"`
	AreaM2     *float64 `json:"area_m2,omitempty"`
}

type UpdateUnitRequest struct {
	Label    string   `json:"label" binding:"required"`
	Floor    string   `json:"floor,omitempty"`
	Bedrooms *int32   `json:"bedrooms,omitempty"`
	AreaM2   *float64 `json:"area_m2,omitempty"`
}

// UnitResponse represents the API shape of a rentable unit.
type UnitResponse struct {
	ID         string   `json:"id"`
	Object     string   `json:"object"`
	PropertyID string   `json:"property_id"`
	Label      string   `json:"label"`
	Floor      string   `json:"floor,omitempty"`
	Bedrooms   *int32   `json:"bedrooms,omitempty"`
	AreaM2     *float64 `json:"area_m2,omitempty"`
	CreatedAt  int64    `json:"created_at"`
	UpdatedAt  int64    `json:"updated_at"`
}

// CreateUnit godoc
// @Summary Create a unit
// @Description Registers a rentable unit under a property
// @Tags units
// @Accept json
// @Produce json
// @Param request body CreateUnitRequest true "Unit details"
// @Success 201 {object} UnitResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /units [post]
func (h *UnitHandler) CreateUnit(c *gin.Context) {
	var req CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	// The property must belong to the workspace before a unit can hang off it.
	if _, err := h.common.GetDB().GetProperty(c.Request.Context(), db.GetPropertyParams{
		ID:          propertyID,
		WorkspaceID: workspaceID,
	}); err != nil {
		handleDBError(c, err, "Property not found")
		return
	}

	unit, err := h.common.GetDB().CreateUnit(c.Request.Context(), db.CreateUnitParams{
		WorkspaceID: workspaceID,
		PropertyID:  propertyID,
		Label:       req.Label,
		Floor:       helpers.StringToNullableText(req.Floor),
		Bedrooms:    int32PtrToNullableInt4(req.Bedrooms),
		AreaM2:      helpers.Float64ToNullableNumeric(req.AreaM2),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create unit", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toUnitResponse(unit))
}

// GetUnit godoc
// @Summary Get a unit
// @Description Retrieves a unit by ID
// @Tags units
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /units/{unit_id} [get]
func (h *UnitHandler) GetUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	unit, err := h.common.GetDB().GetUnit(c.Request.Context(), db.GetUnitParams{
		ID:          unitID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Unit not found")
		return
	}

	sendSuccess(c, http.StatusOK, toUnitResponse(unit))
}

// ListUnits godoc
// @Summary List units
// @Description Lists the units of the current workspace, paginated
// @Tags units
// @Accept json
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /units [get]
func (h *UnitHandler) ListUnits(c *gin.Context) {
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

	units, err := h.common.GetDB().ListUnits(c.Request.Context(), db.ListUnitsParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve units", err)
		return
	}

	total, err := h.common.GetDB().CountUnits(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count units", err)
		return
	}

	response := make([]UnitResponse, len(units))
	for i, unit := range units {
		response[i] = toUnitResponse(unit)
	}

	sendPaginatedSuccess(c, http.StatusOK, response, int(pagination.Page), int(pagination.Limit), int(total))
}

// UpdateUnit godoc
// @Summary Update a unit
// @Description Updates a unit's details
// @Tags units
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Param request body UpdateUnitRequest true "Unit details"
// @Success 200 {object} UnitResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /units/{unit_id} [put]
func (h *UnitHandler) UpdateUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
		return
	}

	var req UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	unit, err := h.common.GetDB().UpdateUnit(c.Request.Context(), db.UpdateUnitParams{
		ID:          unitID,
		WorkspaceID: workspaceID,
		Label:       req.Label,
		Floor:       helpers.StringToNullableText(req.Floor),
		Bedrooms:    int32PtrToNullableInt4(req.Bedrooms),
		AreaM2:      helpers.Float64ToNullableNumeric(req.AreaM2),
	})
	if err != nil {
		handleDBError(c, err, "Unit not found")
		return
	}

	sendSuccess(c, http.StatusOK, toUnitResponse(unit))
}

// DeleteUnit godoc
// @Summary Delete a unit
// @Description Removes a unit from the workspace
// @Tags units
// @Accept json
// @Produce json
// @Param unit_id path string true "Unit ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /units/{unit_id} [delete]
func (h *UnitHandler) DeleteUnit(c *gin.Context) {
	unitID, err := uuid.Parse(c.Param("unit_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if err := h.common.GetDB().DeleteUnit(c.Request.Context(), db.DeleteUnitParams{
		ID:          unitID,
		WorkspaceID: workspaceID,
	}); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete unit", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Unit deleted")
}

func int32PtrToNullableInt4(v *int32) pgtype.Int4 {
	if v == nil {
		return pgtype.Int4{}
	}
	return pgtype.Int4{Int32: *v, Valid: true}
}

func toUnitResponse(u db.Unit) UnitResponse {
	resp := UnitResponse{
		ID:         u.ID.String(),
		Object:     "unit",
		PropertyID: u.PropertyID.String(),
		Label:      u.Label,
		Floor:      u.Floor.String,
		CreatedAt:  u.CreatedAt.Time.Unix(),
		UpdatedAt:  u.UpdatedAt.Time.Unix(),
	}
	if u.Bedrooms.Valid {
		bedrooms := u.Bedrooms.Int32
		resp.Bedrooms = &bedrooms
	}
	resp.AreaM2 = helpers.NumericToNullableFloat64(u.AreaM2)
	return resp
}
