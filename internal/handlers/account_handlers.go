package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
)

// AccountHandler serves the authenticated caller's account.
type AccountHandler struct {
	common *CommonServices
}

func NewAccountHandler(common *CommonServices) *AccountHandler {
	return &AccountHandler{common: common}
}

// AccountResponse represents the API shape of an account.
type AccountResponse struct {
	ID          string `json:"id"`
	Object      string `json:"object"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name,omitempty"`
	AccountType string `json:"account_type"`
	CreatedAt   int64  `json:"created_at"`
	UpdatedAt   int64  `json:"updated_at"`
}

// GetCurrentAccount godoc
// @Summary Get the current account
// @Description Returns the account of the authenticated caller. The row is created by the auth layer on the first authenticated request.
// @Tags accounts
// @Accept json
// @Produce json
// @Success 200 {object} AccountResponse
// @Failure 401 {object} ErrorResponse
// @Security Bearer
// @Router /accounts/me [get]
func (h *AccountHandler) GetCurrentAccount(c *gin.Context) {
	accountID, err := requestAccountID(c)
	if err != nil {
		sendError(c, http.StatusUnauthorized, "No authenticated account", err)
		return
	}

	account, err := h.common.GetDB().GetAccount(c.Request.Context(), accountID)
	if err != nil {
		handleDBError(c, err, "Account not found")
		return
	}

	sendSuccess(c, http.StatusOK, toAccountResponse(account))
}

func toAccountResponse(a db.Account) AccountResponse {
	return AccountResponse{
		ID:          a.ID.String(),
		Object:      "account",
		Email:       a.Email,
		DisplayName: a.DisplayName.String,
		AccountType: string(a.AccountType),
		CreatedAt:   a.CreatedAt.Time.Unix(),
		UpdatedAt:   a.UpdatedAt.Time.Unix(),
	}
}
