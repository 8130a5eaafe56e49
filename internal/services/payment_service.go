package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// PaymentService records rent payments against leases.
type PaymentService struct {
	queries db.Querier
	logger  *zap.Logger
}

// NewPaymentService creates a new payment service
func NewPaymentService(queries db.Querier) *PaymentService {
	return &PaymentService{
		queries: queries,
		logger:  zap.L(),
	}
}

// RecordPaymentInput carries the fields needed to record a rent payment.
type RecordPaymentInput struct {
	WorkspaceID uuid.UUID
	LeaseID     uuid.UUID
	Amount      float64
	PeriodYear  int32
	PeriodMonth int32
	PaidOn      time.Time
	Method      db.PaymentMethod
	Reference   string
	Notes       string
}

// RecordPayment stores a payment for a lease period. The lease must belong to
// the workspace.
func (s *PaymentService) RecordPayment(ctx context.Context, input RecordPaymentInput) (db.Payment, error) {
	if input.Amount <= 0 {
		return db.Payment{}, fmt.Errorf("payment amount must be positive, got %v", input.Amount)
	}
	if input.PeriodMonth < 1 || input.PeriodMonth > 12 {
		return db.Payment{}, fmt.Errorf("period month must be 1-12, got %d", input.PeriodMonth)
	}
	if input.PaidOn.IsZero() {
		input.PaidOn = time.Now()
	}

	lease, err := s.queries.GetLease(ctx, db.GetLeaseParams{ID: input.LeaseID, WorkspaceID: input.WorkspaceID})
	if err != nil {
		return db.Payment{}, fmt.Errorf("failed to get lease: %w", err)
	}

	payment, err := s.queries.CreatePayment(ctx, db.CreatePaymentParams{
		WorkspaceID: input.WorkspaceID,
		LeaseID:     lease.ID,
		Amount:      helpers.Float64ToNumeric(input.Amount),
		PeriodYear:  input.PeriodYear,
		PeriodMonth: input.PeriodMonth,
		PaidOn:      helpers.TimeToDate(input.PaidOn),
		Method:      input.Method,
		Reference:   helpers.StringToNullableText(input.Reference),
		Notes:       helpers.StringToNullableText(input.Notes),
	})
	if err != nil {
		return db.Payment{}, fmt.Errorf("failed to create payment: %w", err)
	}

	s.logger.Info("Recorded payment",
		zap.String("payment_id", payment.ID.String()),
		zap.String("lease_id", lease.ID.String()),
		zap.Float64("amount", input.Amount),
		zap.Int32("period_year", input.PeriodYear),
		zap.Int32("period_month", input.PeriodMonth))

	return payment, nil
}

// GetPayment fetches one payment scoped to a workspace.
func (s *PaymentService) GetPayment(ctx context.Context, workspaceID, paymentID uuid.UUID) (db.Payment, error) {
	payment, err := s.queries.GetPayment(ctx, db.GetPaymentParams{ID: paymentID, WorkspaceID: workspaceID})
	if err != nil {
		return db.Payment{}, fmt.Errorf("failed to get payment: %w", err)
	}
	return payment, nil
}

// PaymentsForLease returns a lease's payments, most recent period first.
func (s *PaymentService) PaymentsForLease(ctx context.Context, workspaceID, leaseID uuid.UUID) ([]db.Payment, error) {
	payments, err := s.queries.ListPaymentsByLease(ctx, db.ListPaymentsByLeaseParams{
		LeaseID:     leaseID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// PaymentsForPeriod returns the workspace's payments whose billing period
// falls between the from and to months inclusive.
func (s *PaymentService) PaymentsForPeriod(ctx context.Context, workspaceID uuid.UUID, from, to time.Time) ([]db.Payment, error) {
	from = helpers.FirstOfMonth(from)
	to = helpers.FirstOfMonth(to)
	if to.Before(from) {
		return nil, fmt.Errorf("invalid range: from %s is after to %s", helpers.FormatYearMonth(from), helpers.FormatYearMonth(to))
	}

	payments, err := s.queries.ListPaymentsByPeriod(ctx, db.ListPaymentsByPeriodParams{
		WorkspaceID: workspaceID,
		FromYear:    int32(from.Year()),
		FromMonth:   int32(from.Month()),
		ToYear:      int32(to.Year()),
		ToMonth:     int32(to.Month()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}

// MarkReceiptSent flags that the receipt email for a payment went out.
func (s *PaymentService) MarkReceiptSent(ctx context.Context, paymentID uuid.UUID) error {
	if err := s.queries.MarkPaymentReceiptSent(ctx, paymentID); err != nil {
		return fmt.Errorf("failed to mark receipt sent: %w", err)
	}
	return nil
}
