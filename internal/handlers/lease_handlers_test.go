package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

// indexHistory builds stored index rows at a constant monthly rate.
func indexHistory(from time.Time, months int, rate float64) []db.IndexEntry {
	rows := make([]db.IndexEntry, 0, months)
	for m := 0; m < months; m++ {
		rows = append(rows, testutil.CreateTestIndexEntry(constants.IPCSeriesID, from.AddDate(0, m, 0), rate))
	}
	return rows
}

func TestNewLeaseHandler(t *testing.T) {
	common := &CommonServices{}
	handler := NewLeaseHandler(common)

	require.NotNil(t, handler)
	assert.Equal(t, common, handler.common)
}

func TestLeaseHandler_CreateLease_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "invalid JSON",
			requestBody:    "not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "missing rent",
			requestBody: CreateLeaseRequest{
				UnitID:     testUnitID.String(),
				TenantID:   testTenantID.String(),
				LeaseStart: "2025-03-01",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name: "invalid unit ID",
			requestBody: CreateLeaseRequest{
				UnitID:     "not-a-uuid",
				TenantID:   testTenantID.String(),
				Rent:       320000,
				LeaseStart: "2025-03-01",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid unit ID format",
		},
		{
			name: "invalid tenant ID",
			requestBody: CreateLeaseRequest{
				UnitID:     testUnitID.String(),
				TenantID:   "not-a-uuid",
				Rent:       320000,
				LeaseStart: "2025-03-01",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid tenant ID format",
		},
		{
			name: "invalid start date",
			requestBody: CreateLeaseRequest{
				UnitID:     testUnitID.String(),
				TenantID:   testTenantID.String(),
				Rent:       320000,
				LeaseStart: "01/03/2025",
			},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid lease start date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := NewLeaseHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

			c, w := newAuthedTestContext(t, http.MethodPost, "/leases", tt.requestBody)
			handler.CreateLease(c)

			assert.Equal(t, tt.expectedStatus, w.Code)
			response := decodeBody(t, w)
			assert.Contains(t, response["error"], tt.expectedError)
		})
	}
}

func TestLeaseHandler_CreateLease_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leaseStart := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	existing := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 280000, leaseStart)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetActiveLeaseByUnit(gomock.Any(), db.GetActiveLeaseByUnitParams{
			UnitID:      testUnitID,
			WorkspaceID: testWorkspaceID,
		}).
		Return(existing, nil).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodPost, "/leases", CreateLeaseRequest{
		UnitID:     testUnitID.String(),
		TenantID:   testTenantID.String(),
		Rent:       320000,
		LeaseStart: "2025-03-01",
	})
	handler.CreateLease(c)

	assert.Equal(t, http.StatusConflict, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "already has an active lease")
}

func TestLeaseHandler_CreateLease_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leaseStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetActiveLeaseByUnit(gomock.Any(), gomock.Any()).
		Return(db.Lease{}, pgx.ErrNoRows).
		Times(1)
	mockQuerier.EXPECT().
		CreateLease(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.CreateLeaseParams) (db.Lease, error) {
			assert.Equal(t, int32(6), arg.FrequencyMonths)
			return testutil.CreateTestLease(arg.WorkspaceID, arg.UnitID, arg.TenantID, 320000, leaseStart), nil
		}).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodPost, "/leases", CreateLeaseRequest{
		UnitID:          testUnitID.String(),
		TenantID:        testTenantID.String(),
		Rent:            320000,
		Deposit:         320000,
		LeaseStart:      "2025-03-01",
		FrequencyMonths: 6,
	})
	handler.CreateLease(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "lease", response["object"])
	assert.Equal(t, "active", response["status"])
	assert.InDelta(t, 320000, response["rent"], 0.001)
}

func TestLeaseHandler_GetLease_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetLease(gomock.Any(), db.GetLeaseParams{ID: testLeaseID, WorkspaceID: testWorkspaceID}).
		Return(db.Lease{}, pgx.ErrNoRows).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/leases/"+testLeaseID.String(), nil)
	c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
	handler.GetLease(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Lease not found")
}

func TestLeaseHandler_GetSchedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leaseStart := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	lease := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 100000, leaseStart)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetLease(gomock.Any(), db.GetLeaseParams{ID: lease.ID, WorkspaceID: testWorkspaceID}).
		Return(lease, nil).
		Times(1)
	mockQuerier.EXPECT().
		ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
		Return(indexHistory(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), 24, 0.04), nil).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/leases/"+lease.ID.String()+"/schedule", nil)
	c.Params = []gin.Param{{Key: "lease_id", Value: lease.ID.String()}}
	handler.GetSchedule(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "schedule", response["object"])

	entries, ok := response["entries"].([]interface{})
	require.True(t, ok)
	// Two year lease adjusted every four months: six escalations.
	require.Len(t, entries, 6)

	first, ok := entries[0].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "pending", first["status"])
	assert.Equal(t, true, first["rent_known"])
	assert.InDelta(t, 117000, first["new_rent"], 0.001)
}

func TestLeaseHandler_GetSchedule_RejectsBadFrequency(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLeaseHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

	c, w := newAuthedTestContext(t, http.MethodGet, "/leases/"+testLeaseID.String()+"/schedule?frequency_months=zero", nil)
	c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
	handler.GetSchedule(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "frequency_months must be a positive integer")
}

func TestLeaseHandler_GetNextIncrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	leaseStart := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	lease := testutil.CreateTestLease(testWorkspaceID, testUnitID, testTenantID, 100000, leaseStart)

	t.Run("returns the pending escalation", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(lease, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(indexHistory(time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC), 24, 0.04), nil).
			Times(1)

		handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodGet, "/leases/"+lease.ID.String()+"/next-increment", nil)
		c.Params = []gin.Param{{Key: "lease_id", Value: lease.ID.String()}}
		handler.GetNextIncrement(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, "next_increment", response["object"])
		assert.Equal(t, true, response["has_pending"])

		next, ok := response["next"].(map[string]interface{})
		require.True(t, ok)
		assert.InDelta(t, 100000, next["current_rent"], 0.001)
		assert.InDelta(t, 117000, next["new_rent"], 0.001)
		assert.InDelta(t, 17000, next["increase_amount"], 0.001)
	})

	t.Run("reports nothing pending on an empty index", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(lease, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return([]db.IndexEntry{}, nil).
			Times(1)

		handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodGet, "/leases/"+lease.ID.String()+"/next-increment", nil)
		c.Params = []gin.Param{{Key: "lease_id", Value: lease.ID.String()}}
		handler.GetNextIncrement(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, false, response["has_pending"])
		assert.NotContains(t, response, "next")
	})
}

func TestLeaseHandler_SetRentOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		handler := NewLeaseHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

		c, w := newAuthedTestContext(t, http.MethodPut, "/leases/"+testLeaseID.String()+"/rent-override",
			RentOverrideRequest{Amount: -100})
		c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
		handler.SetRentOverride(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("persists the override", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			SetLeaseRentOverride(gomock.Any(), gomock.Any()).
			Return(db.Lease{ID: testLeaseID, WorkspaceID: testWorkspaceID, Status: db.LeaseStatusActive}, nil).
			Times(1)

		handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodPut, "/leases/"+testLeaseID.String()+"/rent-override",
			RentOverrideRequest{Amount: 150000})
		c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
		handler.SetRentOverride(c)

		assert.Equal(t, http.StatusOK, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, testLeaseID.String(), response["id"])
	})
}

func TestLeaseHandler_ClearRentOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ClearLeaseRentOverride(gomock.Any(), db.ClearLeaseRentOverrideParams{
			ID:          testLeaseID,
			WorkspaceID: testWorkspaceID,
		}).
		Return(db.Lease{ID: testLeaseID, Status: db.LeaseStatusActive}, nil).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodDelete, "/leases/"+testLeaseID.String()+"/rent-override", nil)
	c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
	handler.ClearRentOverride(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaseHandler_ApplyIncrement_RequiresPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// The mocked services carry no pool, so the transactional path refuses.
	handler := NewLeaseHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

	c, w := newAuthedTestContext(t, http.MethodPost, "/leases/"+testLeaseID.String()+"/apply-increment", nil)
	c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
	handler.ApplyIncrement(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Failed to apply increment")
}

func TestLeaseHandler_EndLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		EndLease(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.EndLeaseParams) (db.Lease, error) {
			assert.Equal(t, testLeaseID, arg.ID)
			assert.Equal(t, "2025-12-31", arg.LeaseEnd.Time.Format("2006-01-02"))
			return db.Lease{ID: testLeaseID, Status: db.LeaseStatusEnded}, nil
		}).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodPost, "/leases/"+testLeaseID.String()+"/end",
		EndLeaseRequest{EndDate: "2025-12-31"})
	c.Params = []gin.Param{{Key: "lease_id", Value: testLeaseID.String()}}
	handler.EndLease(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "ended", response["status"])
}

func TestLeaseHandler_ListLeases_RejectsUnknownStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLeaseHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

	c, w := newAuthedTestContext(t, http.MethodGet, "/leases?status=paused", nil)
	handler.ListLeases(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Unsupported status filter")
}

func TestLeaseHandler_ListLeases_FiltersByUnit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListLeasesByUnit(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, arg db.ListLeasesByUnitParams) ([]db.Lease, error) {
			assert.Equal(t, testUnitID, arg.UnitID)
			assert.Equal(t, testWorkspaceID, arg.WorkspaceID)
			return []db.Lease{
				{ID: testLeaseID, UnitID: testUnitID, Status: db.LeaseStatusEnded},
				{ID: uuid.New(), UnitID: testUnitID, Status: db.LeaseStatusActive},
			}, nil
		}).
		Times(1)

	handler := NewLeaseHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/leases?unit_id="+testUnitID.String(), nil)
	handler.ListLeases(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "list", response["object"])
	assert.Len(t, response["data"], 2)
}

func TestLeaseHandler_ListLeases_RejectsMalformedUnitID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewLeaseHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

	c, w := newAuthedTestContext(t, http.MethodGet, "/leases?unit_id=not-a-uuid", nil)
	handler.ListLeases(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	response := decodeBody(t, w)
	assert.Contains(t, response["error"], "Invalid unit ID")
}
