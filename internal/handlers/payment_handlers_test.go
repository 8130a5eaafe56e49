package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

func TestPaymentHandler_RecordPayment_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		requestBody   interface{}
		expectedError string
	}{
		{
			name:          "missing amount",
			requestBody:   RecordPaymentRequest{LeaseID: testLeaseID.String(), PeriodYear: 2025, PeriodMonth: 3, Method: "transfer"},
			expectedError: "Invalid request body",
		},
		{
			name: "unknown method",
			requestBody: RecordPaymentRequest{
				LeaseID: testLeaseID.String(), Amount: 100000,
				PeriodYear: 2025, PeriodMonth: 3, Method: "barter",
			},
			expectedError: "invalid payment method",
		},
		{
			name: "malformed lease id",
			requestBody: RecordPaymentRequest{
				LeaseID: "not-a-uuid", Amount: 100000,
				PeriodYear: 2025, PeriodMonth: 3, Method: "cash",
			},
			expectedError: "Invalid lease ID format",
		},
		{
			name: "bad paid_on date",
			requestBody: RecordPaymentRequest{
				LeaseID: testLeaseID.String(), Amount: 100000,
				PeriodYear: 2025, PeriodMonth: 3, Method: "cash", PaidOn: "03/03/2025",
			},
			expectedError: "Invalid paid_on date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewPaymentHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

			c, w := newAuthedTestContext(t, http.MethodPost, "/payments", tt.requestBody)
			handler.RecordPayment(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeBody(t, w)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestPaymentHandler_RecordPayment_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lease := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 100000, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))
	lease.ID = testLeaseID

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetLease(gomock.Any(), db.GetLeaseParams{ID: testLeaseID, WorkspaceID: testWorkspaceID}).
		Return(lease, nil).
		Times(1)
	mockQuerier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			assert.Equal(t, testLeaseID, arg.LeaseID)
			assert.Equal(t, int32(2025), arg.PeriodYear)
			assert.Equal(t, int32(3), arg.PeriodMonth)
			return db.Payment{
				ID:          uuid.New(),
				WorkspaceID: arg.WorkspaceID,
				LeaseID:     arg.LeaseID,
				Amount:      arg.Amount,
				PeriodYear:  arg.PeriodYear,
				PeriodMonth: arg.PeriodMonth,
				PaidOn:      arg.PaidOn,
				Method:      arg.Method,
				Reference:   arg.Reference,
				Notes:       arg.Notes,
				CreatedAt:   pgtype.Timestamptz{Time: time.Now(), Valid: true},
			}, nil
		}).
		Times(1)

	handler := NewPaymentHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodPost, "/payments", RecordPaymentRequest{
		LeaseID:     testLeaseID.String(),
		Amount:      117000,
		PeriodYear:  2025,
		PeriodMonth: 3,
		PaidOn:      "2025-03-05",
		Method:      "transfer",
		Reference:   "TRX-9931",
	})
	handler.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "payment", response["object"])
	assert.Equal(t, testLeaseID.String(), response["lease_id"])
	assert.InDelta(t, 117000, response["amount"], 0.001)
	assert.Equal(t, "2025-03-05", response["paid_on"])
	assert.Equal(t, "transfer", response["method"])
	assert.Equal(t, false, response["receipt_sent"])
}

// Recording with send_receipt set must still succeed when no email service is
// wired up. The payment lands, the receipt flag just stays false.
func TestPaymentHandler_RecordPayment_ReceiptWithoutEmailService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	lease := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 100000, time.Date(2024, 7, 10, 0, 0, 0, 0, time.UTC))
	lease.ID = testLeaseID

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetLease(gomock.Any(), gomock.Any()).
		Return(lease, nil).
		Times(1)
	mockQuerier.EXPECT().
		CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreatePaymentParams) (db.Payment, error) {
			return db.Payment{
				ID:          uuid.New(),
				WorkspaceID: arg.WorkspaceID,
				LeaseID:     arg.LeaseID,
				Amount:      arg.Amount,
				PeriodYear:  arg.PeriodYear,
				PeriodMonth: arg.PeriodMonth,
				PaidOn:      arg.PaidOn,
				Method:      arg.Method,
			}, nil
		}).
		Times(1)

	handler := NewPaymentHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodPost, "/payments", RecordPaymentRequest{
		LeaseID:     testLeaseID.String(),
		Amount:      117000,
		PeriodYear:  2025,
		PeriodMonth: 4,
		Method:      "transfer",
		SendReceipt: true,
	})
	handler.RecordPayment(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, false, response["receipt_sent"])
}

func TestPaymentHandler_RecordPayment_RejectsBadMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPaymentHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

	c, w := newAuthedTestContext(t, http.MethodPost, "/payments", RecordPaymentRequest{
		LeaseID:     testLeaseID.String(),
		Amount:      100000,
		PeriodYear:  2025,
		PeriodMonth: 13,
		Method:      "cash",
	})
	handler.RecordPayment(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Failed to record payment")
}

func TestPaymentHandler_ResendReceipt_NoEmailService(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentID := uuid.New()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetPayment(gomock.Any(), db.GetPaymentParams{ID: paymentID, WorkspaceID: testWorkspaceID}).
		Return(db.Payment{ID: paymentID, WorkspaceID: testWorkspaceID, LeaseID: testLeaseID}, nil).
		Times(1)

	handler := NewPaymentHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodPost, "/payments/"+paymentID.String()+"/resend-receipt", nil)
	c.Params = []gin.Param{{Key: "payment_id", Value: paymentID.String()}}
	handler.ResendReceipt(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Failed to send receipt")
}

func TestPaymentHandler_ListPayments_ByLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListPaymentsByLease(gomock.Any(), db.ListPaymentsByLeaseParams{LeaseID: testLeaseID, WorkspaceID: testWorkspaceID}).
		Return([]db.Payment{
			{ID: uuid.New(), WorkspaceID: testWorkspaceID, LeaseID: testLeaseID, PeriodYear: 2025, PeriodMonth: 3, Method: db.PaymentMethodTransfer},
			{ID: uuid.New(), WorkspaceID: testWorkspaceID, LeaseID: testLeaseID, PeriodYear: 2025, PeriodMonth: 2, Method: db.PaymentMethodTransfer},
		}, nil).
		Times(1)

	handler := NewPaymentHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/payments?lease_id="+testLeaseID.String(), nil)
	handler.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "list", response["object"])
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 2)
}

func TestPaymentHandler_ListPayments_ByPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListPaymentsByPeriod(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, params db.ListPaymentsByPeriodParams) ([]db.Payment, error) {
			assert.Equal(t, testWorkspaceID, params.WorkspaceID)
			assert.Equal(t, int32(2025), params.FromYear)
			assert.Equal(t, int32(1), params.FromMonth)
			assert.Equal(t, int32(2025), params.ToYear)
			assert.Equal(t, int32(3), params.ToMonth)
			return []db.Payment{
				{ID: uuid.New(), WorkspaceID: testWorkspaceID, LeaseID: testLeaseID, PeriodYear: 2025, PeriodMonth: 3, Method: db.PaymentMethodTransfer},
			}, nil
		}).
		Times(1)

	handler := NewPaymentHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/payments?from=2025-01&to=2025-03", nil)
	handler.ListPayments(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "list", response["object"])
	data, ok := response["data"].([]interface{})
	assert.True(t, ok)
	assert.Len(t, data, 1)
}

func TestPaymentHandler_ListPayments_RejectsInvertedPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewPaymentHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

	c, w := newAuthedTestContext(t, http.MethodGet, "/payments?from=2025-06&to=2025-03", nil)
	handler.ListPayments(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Invalid range")
}
