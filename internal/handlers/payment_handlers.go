package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

// PaymentHandler handles rent payments and receipt emails.
type PaymentHandler struct {
	common *CommonServices
}

func NewPaymentHandler(common *CommonServices) *PaymentHandler {
	return &PaymentHandler{common: common}
}

type RecordPaymentRequest struct {
	LeaseID     string  `json:"lease_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	PeriodYear  int32   `json:"period_year" binding:"required"`
	PeriodMonth int32   `json:"period_month" binding:"required"`
	PaidOn      string  `json:"paid_on,omitempty"`
	Method      string  `json:"method" binding:"required"`
	Reference   string  `json:"reference,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	SendReceipt bool    `json:"send_receipt,omitempty"`
}

// PaymentResponse represents the API shape of a payment.
type PaymentResponse struct {
	ID          string  `json:"id"`
	Object      string  `json:"object"`
	LeaseID     string  `json:"lease_id"`
	Amount      float64 `json:"amount"`
	PeriodYear  int32   `json:"period_year"`
	PeriodMonth int32   `json:"period_month"`
	PaidOn      string  `json:"paid_on"`
	Method      string  `json:"method"`
	Reference   string  `json:"reference,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	ReceiptSent bool    `json:"receipt_sent"`
	CreatedAt   int64   `json:"created_at"`
}

// RecordPayment godoc
// @Summary Record a payment
// @Description Records a rent payment against a lease period. Set send_receipt to email a receipt to the tenant.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body RecordPaymentRequest true "Payment details"
// @Success 201 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /payments [post]
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	leaseID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
		return
	}

	method, err := parsePaymentMethod(req.Method)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	var paidOn time.Time
	if req.PaidOn != "" {
		paidOn, err = helpers.ParseDate(req.PaidOn)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid paid_on date, expected YYYY-MM-DD", err)
			return
		}
	}

	payment, err := h.common.PaymentService.RecordPayment(c.Request.Context(), services.RecordPaymentInput{
		WorkspaceID: workspaceID,
		LeaseID:     leaseID,
		Amount:      req.Amount,
		PeriodYear:  req.PeriodYear,
		PeriodMonth: req.PeriodMonth,
		PaidOn:      paidOn,
		Method:      method,
		Reference:   req.Reference,
		Notes:       req.Notes,
	})
	if err != nil {
		sendError(c, http.StatusBadRequest, "Failed to record payment", err)
		return
	}

	if req.SendReceipt {
		if err := h.emailReceipt(c.Request.Context(), payment); err != nil {
			h.common.GetLogger().Warn("Payment recorded but receipt email failed",
				zap.Error(err),
				zap.String("payment_id", payment.ID.String()))
		} else {
			payment.ReceiptSent = true
		}
	}

	sendSuccess(c, http.StatusCreated, toPaymentResponse(payment))
}

// GetPayment godoc
// @Summary Get a payment
// @Description Retrieves a payment by ID
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} PaymentResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /payments/{payment_id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	payment, err := h.common.GetDB().GetPayment(c.Request.Context(), db.GetPaymentParams{
		ID:          paymentID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Payment not found")
		return
	}

	sendSuccess(c, http.StatusOK, toPaymentResponse(payment))
}

// ListPayments godoc
// @Summary List payments
// @Description Lists workspace payments, paginated. Pass lease_id to list one lease's payments, or from and to (YYYY-MM) to list a period range.
// @Tags payments
// @Accept json
// @Produce json
// @Param lease_id query string false "Filter by lease"
// @Param from query string false "Start period (YYYY-MM), requires to"
// @Param to query string false "End period (YYYY-MM), requires from"
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} PaginatedResponse
// @Failure 400 {object} ErrorResponse
// @Security Bearer
// @Router /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	if leaseIDStr := c.Query("lease_id"); leaseIDStr != "" {
		leaseID, err := uuid.Parse(leaseIDStr)
		if err != nil {
			sendError(c, http.StatusBadRequest, "Invalid lease ID format", err)
			return
		}
		payments, err := h.common.PaymentService.PaymentsForLease(c.Request.Context(), workspaceID, leaseID)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve payments", err)
			return
		}
		sendList(c, toPaymentResponses(payments))
		return
	}

	if c.Query("from") != "" || c.Query("to") != "" {
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
		if to.Before(from) {
			sendError(c, http.StatusBadRequest, "Invalid range, from is after to", nil)
			return
		}
		payments, err := h.common.PaymentService.PaymentsForPeriod(c.Request.Context(), workspaceID, from, to)
		if err != nil {
			sendError(c, http.StatusInternalServerError, "Failed to retrieve payments", err)
			return
		}
		sendList(c, toPaymentResponses(payments))
		return
	}

	pagination, err := helpers.ParsePaginationParams(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	payments, err := h.common.GetDB().ListPayments(c.Request.Context(), db.ListPaymentsParams{
		WorkspaceID: workspaceID,
		Limit:       pagination.Limit,
		Offset:      pagination.Offset,
	})
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to retrieve payments", err)
		return
	}

	total, err := h.common.GetDB().CountPayments(c.Request.Context(), workspaceID)
	if err != nil {
		sendError(c, http.StatusInternalServerError, "Failed to count payments", err)
		return
	}

	sendPaginatedSuccess(c, http.StatusOK, toPaymentResponses(payments), int(pagination.Page), int(pagination.Limit), int(total))
}

// ResendReceipt godoc
// @Summary Resend a payment receipt
// @Description Emails the receipt for a payment to the tenant again
// @Tags payments
// @Accept json
// @Produce json
// @Param payment_id path string true "Payment ID"
// @Success 200 {object} SuccessResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security Bearer
// @Router /payments/{payment_id}/resend-receipt [post]
func (h *PaymentHandler) ResendReceipt(c *gin.Context) {
	paymentID, err := uuid.Parse(c.Param("payment_id"))
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid payment ID format", err)
		return
	}

	workspaceID, err := requestWorkspaceID(c)
	if err != nil {
		sendError(c, http.StatusBadRequest, "Invalid workspace ID", err)
		return
	}

	payment, err := h.common.GetDB().GetPayment(c.Request.Context(), db.GetPaymentParams{
		ID:          paymentID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		handleDBError(c, err, "Payment not found")
		return
	}

	if err := h.emailReceipt(c.Request.Context(), payment); err != nil {
		sendError(c, http.StatusBadRequest, "Failed to send receipt", err)
		return
	}

	sendSuccessMessage(c, http.StatusOK, "Receipt sent")
}

// emailReceipt walks payment -> lease -> unit -> property -> tenant, sends the
// receipt email, and records that it went out.
func (h *PaymentHandler) emailReceipt(ctx context.Context, payment db.Payment) error {
	if h.common.EmailService == nil {
		return fmt.Errorf("email service not configured")
	}

	queries := h.common.GetDB()

	lease, err := queries.GetLease(ctx, db.GetLeaseParams{ID: payment.LeaseID, WorkspaceID: payment.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get lease: %w", err)
	}

	tenant, err := queries.GetTenant(ctx, db.GetTenantParams{ID: lease.TenantID, WorkspaceID: payment.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get tenant: %w", err)
	}
	if !tenant.Email.Valid || tenant.Email.String == "" {
		return fmt.Errorf("tenant %s has no email address", tenant.ID)
	}

	unit, err := queries.GetUnit(ctx, db.GetUnitParams{ID: lease.UnitID, WorkspaceID: payment.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get unit: %w", err)
	}

	property, err := queries.GetProperty(ctx, db.GetPropertyParams{ID: unit.PropertyID, WorkspaceID: payment.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get property: %w", err)
	}

	if err := h.common.EmailService.SendReceipt(ctx, services.ReceiptEmailParams{
		To:           tenant.Email.String,
		TenantName:   tenant.FullName,
		PropertyName: property.Name,
		UnitLabel:    unit.Label,
		Amount:       helpers.NumericToFloat64(payment.Amount),
		PeriodYear:   payment.PeriodYear,
		PeriodMonth:  payment.PeriodMonth,
		PaidOn:       payment.PaidOn.Time,
	}); err != nil {
		return err
	}

	return h.common.PaymentService.MarkReceiptSent(ctx, payment.ID)
}

func parsePaymentMethod(raw string) (db.PaymentMethod, error) {
	method := db.PaymentMethod(raw)
	switch method {
	case db.PaymentMethodTransfer, db.PaymentMethodCash, db.PaymentMethodCard, db.PaymentMethodOther:
		return method, nil
	}
	return "", fmt.Errorf("invalid payment method %q, expected transfer, cash, card, or other", raw)
}

func toPaymentResponse(p db.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:          p.ID.String(),
		Object:      "payment",
		LeaseID:     p.LeaseID.String(),
		Amount:      helpers.NumericToFloat64(p.Amount),
		PeriodYear:  p.PeriodYear,
		PeriodMonth: p.PeriodMonth,
		Method:      string(p.Method),
		Reference:   p.Reference.String,
		Notes:       p.Notes.String,
		ReceiptSent: p.ReceiptSent,
		CreatedAt:   p.CreatedAt.Time.Unix(),
	}
	if p.PaidOn.Valid {
		resp.PaidOn = p.PaidOn.Time.Format("2006-01-02")
	}
	return resp
}

func toPaymentResponses(payments []db.Payment) []PaymentResponse {
	response := make([]PaymentResponse, len(payments))
	for i, payment := range payments {
		response[i] = toPaymentResponse(payment)
	}
	return response
}
