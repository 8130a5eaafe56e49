package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// ExpenseHandler handles property expense tracking.
type ExpenseHandler struct {
	common *CommonServices
}

func NewExpenseHandler(common *CommonServices) *ExpenseHandler {
	return &ExpenseHandler{common: common}
}

type CreateExpenseRequest struct {
	PropertyID  string  `json:"property_id" binding:"required"`
	UnitID      string  `json:"unit_id,omitempty"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	IncurredOn  string  `json:"incurred_on" binding:"required"`
	Description string  `json:"description,omitempty"`
}

// ExpenseResponse represents the API shape of an expense.
type ExpenseResponse struct {
	ID          string  `json:"id"`
	Object      string  `json:"object"`
	PropertyID  string  `json:"property_id"`
	UnitID      string  `json:"unit_id,omitempty"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	IncurredOn  string  `json:"incurred_on"`
	Description string  `json:"description,omitempty"`
	CreatedAt   int64   `json:"created_at"`
}

// CreateExpense godoc
// @Summary Record an expense
// @Description Records an expense against a property, optionally tied to one unit
// @Tags expenses
// @Accept json
// @Produce json
// @Param request body CreateExpenseRequest true "Expense details"
// @Success 201 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /expenses [post]
func (h *ExpenseHandler) CreateExpense(c *gin.Context) {
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	propertyID, err := uuid.Parse(req.PropertyID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
		return
	}

	var unitID *uuid.UUID
	if req.UnitID != "" {
		parsed, err := uuid.Parse(req.UnitID)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid unit ID format", err)
			return
		}
		unitID = &parsed
	}

	category, err := parseExpenseCategory(req.Category)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	if req.Amount <= 0 {
		sendError(c, http.StatusBadRequest, "Amount must be positive", nil)
		return
	}

	incurredOn, err := helpers.ParseDate(req.IncurredOn)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid incurred_on date, expected YYYY-MM-DD", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	expense, err := h.common.GetDB().CreateExpense(c.Request.Context(), db.CreateExpenseParams{
		WorkspaceID: workspaceID,
		PropertyID:  propertyID,
		UnitID:      helpers.UUIDToNullableUUID(unitID),
		Category:    category,
		Amount:      helpers.Float64ToNumeric(req.Amount),
		IncurredOn:  helpers.TimeToDate(incurredOn),
		Description: helpers.StringToNullableText(req.Description),
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to create expense", err)
		return
	}

	sendSuccess(c, http.StatusCreated, toExpenseResponse(expense))
}

// GetExpense godoc
// @Summary Get an expense
// @Description Retrieves an expense by ID
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} ExpenseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /expenses/{expense_id} [get]
func (h *ExpenseHandler) GetExpense(c *gin.Context) {
	expenseID, err := uuid.Parse(c.Param("expense_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid expense ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	expense, err := h.common.GetDB().GetExpense(c.Request.Context(), db.GetExpenseParams{
		ID:          expenseID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Expense not found")
		return
	}

	sendSuccess(c, http.StatusOK, toExpenseResponse(expense))
}

// ListExpenses godoc
// @Summary List expenses
// @Description Lists workspace expenses, paginated. Pass property_id to list one property's expenses, or from and to (YYYY-MM-DD) to list a date range.
// @Tags expenses
// @Accept json
// @Produce json
// @Param property_id query string false "Filter by property"
// @Param from query string false "Start date (YYYY-MM-DD), requires to"
// @Param to query string false "End date (YYYY-MM-DD), requires from"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /expenses [get]
func (h *ExpenseHandler) ListExpenses(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		propertyID, err := uuid.Parse(propertyIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid property ID format", err)
			return
		}
		expenses, err := h.common.GetDB().ListExpensesByProperty(c.Request.Context(), db.ListExpensesByPropertyParams{
			PropertyID:  propertyID,
			WorkspaceID: workspaceID,
		})
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve expenses", err)
			return
		}
		sendList(c, toExpenseResponses(expenses))
		return
	}

	if c.Query("from") != "" || c.Query("to") != "" {
		from, err := helpers.ParseDate(c.Query("from"))
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD", err)
			return
		}
		to, err := helpers.ParseDate(c.Query("to"))
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD", err)
			return
		}
		if to.Before(from) {
			sendError(c, http.StatusBadRequest, "Invalid range, from is after to", nil)
			return
		}
		expenses, err := h.common.GetDB().ListExpensesByDateRange(c.Request.Context(), db.ListExpensesByDateRangeParams{
			WorkspaceID: workspaceID,
			FromDate:    helpers.TimeToDate(from),
			ToDate:      helpers.TimeToDate(to),
		})
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve expenses", err)
			return
		}
		sendList(c, toExpenseResponses(expenses))
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	expenses, err := h.common.GetDB().ListExpenses(c.Request.Context(), db.ListExpensesParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve expenses", err)
		return
	}

	total, err := h.common.GetDB().CountExpenses(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count expenses", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, toExpenseResponses(expenses), int(pagination.Page), int(pagination.Limit), int(total))
}

// DeleteExpense godoc
// @Summary Delete an expense
// @Description Removes an expense from the workspace
// @Tags expenses
// @Accept json
// @Produce json
// @Param expense_id path string true "Expense ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /expenses/{expense_id} [delete]
func (h *ExpenseHandler) DeleteExpense(c *gin.Context) {
	expenseID, err := uuid.Parse(c.Param("expense_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid expense ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if err := h.common.GetDB().DeleteExpense(c.Request.Context(), db.DeleteExpenseParams{
		ID:          expenseID,
		WorkspaceID: workspaceID,
	}); err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to delete expense", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Expense deleted")
}

func parseExpenseCategory(raw string) (db.ExpenseCategory, error) {
	category := db.ExpenseCategory(raw)
	switch category {
	case db.ExpenseCategoryMaintenance, db.ExpenseCategoryTaxes, db.ExpenseCategoryUtilities,
		db.ExpenseCategoryInsurance, db.ExpenseCategoryOther:
		return category, nil
	}
	return "", fmt.Errorf("invalid expense category %q, expected maintenance, taxes, utilities, insurance, or other", raw)
}

func toExpenseResponse(e db.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:          e.ID.String(),
		Object:      "expense",
		PropertyID:  e.PropertyID.String(),
		UnitID:      helpers.NullableUUIDToString(e.UnitID),
		Category:    string(e.Category),
		Amount:      helpers.NumericToFloat64(e.Amount),
		Description: e.Description.String,
		CreatedAt:   e.CreatedAt.Time.Unix(),
	}
	if e.IncurredOn.Valid {
		resp.IncurredOn = e.IncurredOn.Time.Format("2006-01-02")
	}
	return resp
}

func toExpenseResponses(expenses []db.Expense) []ExpenseResponse {
	response := make([]ExpenseResponse, len(expenses))
	for i, expense := range expenses {
		response[i] = toExpenseResponse(expense)
	}
	return response
}
