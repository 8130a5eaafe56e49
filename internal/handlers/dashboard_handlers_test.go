package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

func TestDashboardHandler_GetCashflow_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		query         string
		expectedError string
	}{
		{
			name:          "missing from",
			query:         "?to=2025-06",
			expectedError: "Invalid from month",
		},
		{
			name:          "missing to",
			query:         "?from=2025-01",
			expectedError: "Invalid to month",
		},
		{
			name:          "inverted range",
			query:         "?from=2025-06&to=2025-01",
			expectedError: "Failed to compute cashflow summary",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewDashboardHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

			c, w := newAuthedTestContext(t, http.MethodGet, "/dashboard/cashflow"+tt.query, nil)
			handler.GetCashflow(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			response := decodeBody(t, w)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestDashboardHandler_GetCashflow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		SumPaymentsByMonth(gomock.Any(), db.SumPaymentsByMonthParams{
			WorkspaceID: testWorkspaceID,
			FromYear:    2025,
			FromMonth:   1,
			ToYear:      2025,
			ToMonth:     3,
		}).
		Return([]db.SumPaymentsByMonthRow{
			{PeriodYear: 2025, PeriodMonth: 1, Total: helpers.Float64ToNumeric(250000)},
			{PeriodYear: 2025, PeriodMonth: 3, Total: helpers.Float64ToNumeric(117000)},
		}, nil).
		Times(1)
	mockQuerier.EXPECT().
		SumExpensesByMonth(gomock.Any(), gomock.Any()).
		Return([]db.SumExpensesByMonthRow{
			{PeriodYear: 2025, PeriodMonth: 1, Total: helpers.Float64ToNumeric(40000)},
		}, nil).
		Times(1)

	handler := NewDashboardHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/dashboard/cashflow?from=2025-01&to=2025-03", nil)
	handler.GetCashflow(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "list", response["object"])

	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	require.Len(t, data, 3, "every month in the range gets a row")

	january, ok := data[0].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 2025, january["year"], 0.001)
	assert.InDelta(t, 1, january["month"], 0.001)
	assert.Equal(t, "250000", january["income"])
	assert.Equal(t, "40000", january["expenses"])
	assert.Equal(t, "210000", january["net"])

	february, ok := data[1].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "0", february["income"])
	assert.Equal(t, "0", february["net"])
}

func TestDashboardHandler_GetUpcomingIncrements_RejectsBadDays(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	for _, query := range []string{"?days=-5", "?days=soon", "?days=0"} {
		handler := NewDashboardHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

		c, w := newAuthedTestContext(t, http.MethodGet, "/dashboard/upcoming-increments"+query, nil)
		handler.GetUpcomingIncrements(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeBody(t, w)
		assert.Contains(t, response["error"], "days must be a positive integer")
	}
}

func TestDashboardHandler_GetUpcomingIncrements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("surfaces an escalation inside the window", func(t *testing.T) {
		// Lease started just over one interval ago, so the first escalation
		// lands about two weeks from now.
		leaseStart := time.Now().UTC().AddDate(0, -int(constants.DefaultFrequencyMonths), 15)
		lease := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 100000, leaseStart)
		history := indexHistory(helpers.FirstOfMonth(leaseStart), int(constants.DefaultFrequencyMonths)+1, 0.03)

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			ListActiveLeasesByWorkspace(gomock.Any(), testWorkspaceID).
			Return([]db.Lease{lease}, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(history, nil).
			Times(1)

		handler := NewDashboardHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodGet, "/dashboard/upcoming-increments", nil)
		handler.GetUpcomingIncrements(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, "list", response["object"])

		data, ok := response["data"].([]interface{})
		require.True(t, ok)
		require.Len(t, data, 1)

		item, ok := data[0].(map[string]interface{})
		require.True(t, ok)
		assert.Equal(t, lease.ID.String(), item["lease_id"])
		assert.InDelta(t, 100000, item["current_rent"], 0.001)
		assert.Greater(t, item["new_rent"].(float64), 100000.0)

		days := item["days_remaining"].(float64)
		assert.GreaterOrEqual(t, days, 0.0)
		assert.LessOrEqual(t, days, float64(constants.DefaultNoticeWindowDays))
	})

	t.Run("drops escalations beyond the window", func(t *testing.T) {
		// First escalation is about two months out, past a 45 day window.
		leaseStart := time.Now().UTC().AddDate(0, -2, 0)
		lease := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 100000, leaseStart)
		history := indexHistory(helpers.FirstOfMonth(leaseStart), int(constants.DefaultFrequencyMonths)+1, 0.03)

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			ListActiveLeasesByWorkspace(gomock.Any(), testWorkspaceID).
			Return([]db.Lease{lease}, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(history, nil).
			Times(1)

		handler := NewDashboardHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodGet, "/dashboard/upcoming-increments?days=45", nil)
		handler.GetUpcomingIncrements(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)

		data, ok := response["data"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, data)
	})
}
