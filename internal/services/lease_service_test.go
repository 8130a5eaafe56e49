package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

// newTestLeaseService wires a lease service without a pool. The series
// fetcher is never reached because the lease service always queries storage
// with an explicit series ID.
func newTestLeaseService(querier db.Querier) *services.LeaseService {
	index := services.NewIndexService(querier, new(testutil.MockSeriesFetcher))
	return services.NewLeaseService(querier, nil, index)
}

// dbHistory builds stored index rows at a constant monthly rate.
func dbHistory(from time.Time, months int, rate float64) []db.IndexEntry {
	rows := make([]db.IndexEntry, 0, months)
	for m := 0; m < months; m++ {
		rows = append(rows, testutil.CreateTestIndexEntry(constants.IPCSeriesID, from.AddDate(0, m, 0), rate))
	}
	return rows
}

func TestLeaseService_CreateLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workspaceID := uuid.New()
	unitID := uuid.New()
	tenantID := uuid.New()
	leaseStart := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)

	validInput := func() services.CreateLeaseInput {
		return services.CreateLeaseInput{
			WorkspaceID: workspaceID,
			UnitID:      unitID,
			TenantID:    tenantID,
			Rent:        320000,
			Deposit:     320000,
			LeaseStart:  leaseStart,
		}
	}

	tests := []struct {
		name        string
		input       func() services.CreateLeaseInput
		setupMocks  func(m *mocks.MockQuerier)
		wantErr     bool
		errorString string
	}{
		{
			name: "successfully creates lease with default frequency",
			input: func() services.CreateLeaseInput {
				return validInput()
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetActiveLeaseByUnit(gomock.Any(), gomock.Any()).
					Return(db.Lease{}, pgx.ErrNoRows).
					Times(1)
				m.EXPECT().
					CreateLease(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, arg db.CreateLeaseParams) (db.Lease, error) {
						assert.Equal(t, int32(constants.DefaultFrequencyMonths), arg.FrequencyMonths)
						assert.False(t, arg.LeaseEnd.Valid)
						assert.InDelta(t, 320000, helpers.NumericToFloat64(arg.Rent), 0.001)
						return testutil.CreateTestLease(arg.WorkspaceID, arg.UnitID, arg.TenantID, 320000, leaseStart), nil
					}).
					Times(1)
			},
		},
		{
			name: "rejects non-positive rent",
			input: func() services.CreateLeaseInput {
				in := validInput()
				in.Rent = 0
				return in
			},
			setupMocks:  func(m *mocks.MockQuerier) {},
			wantErr:     true,
			errorString: "rent must be positive",
		},
		{
			name: "rejects missing start date",
			input: func() services.CreateLeaseInput {
				in := validInput()
				in.LeaseStart = time.Time{}
				return in
			},
			setupMocks:  func(m *mocks.MockQuerier) {},
			wantErr:     true,
			errorString: "lease start date is required",
		},
		{
			name: "rejects end date before start",
			input: func() services.CreateLeaseInput {
				in := validInput()
				end := leaseStart.AddDate(0, -1, 0)
				in.LeaseEnd = &end
				return in
			},
			setupMocks:  func(m *mocks.MockQuerier) {},
			wantErr:     true,
			errorString: "lease end must be after lease start",
		},
		{
			name: "rejects unit with an active lease",
			input: func() services.CreateLeaseInput {
				return validInput()
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetActiveLeaseByUnit(gomock.Any(), gomock.Any()).
					Return(testutil.CreateTestLease(workspaceID, unitID, tenantID, 280000, leaseStart.AddDate(-1, 0, 0)), nil).
					Times(1)
			},
			wantErr:     true,
			errorString: "already has an active lease",
		},
		{
			name: "propagates lease lookup errors",
			input: func() services.CreateLeaseInput {
				return validInput()
			},
			setupMocks: func(m *mocks.MockQuerier) {
				m.EXPECT().
					GetActiveLeaseByUnit(gomock.Any(), gomock.Any()).
					Return(db.Lease{}, assert.AnError).
					Times(1)
			},
			wantErr:     true,
			errorString: "failed to check for active lease",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockQuerier := mocks.NewMockQuerier(ctrl)
			tt.setupMocks(mockQuerier)
			service := newTestLeaseService(mockQuerier)

			lease, err := service.CreateLease(ctx, tt.input())
			if tt.wantErr {
				assert.Error(t, err)
				if tt.errorString != "" {
					assert.Contains(t, err.Error(), tt.errorString)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, workspaceID, lease.WorkspaceID)
		})
	}

	t.Run("occupied unit surfaces a typed error", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetActiveLeaseByUnit(gomock.Any(), gomock.Any()).
			Return(testutil.CreateTestLease(workspaceID, unitID, tenantID, 280000, leaseStart.AddDate(-1, 0, 0)), nil).
			Times(1)
		service := newTestLeaseService(mockQuerier)

		_, err := service.CreateLease(ctx, validInput())
		var exists *services.ActiveLeaseExistsError
		require.ErrorAs(t, err, &exists)
		assert.Equal(t, unitID, exists.UnitID)
	})
}

func TestLeaseService_Schedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workspaceID := uuid.New()
	leaseStart := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	lease := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, leaseStart)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetLease(gomock.Any(), db.GetLeaseParams{ID: lease.ID, WorkspaceID: workspaceID}).
		Return(lease, nil).
		Times(1)
	mockQuerier.EXPECT().
		ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
		Return(dbHistory(monthDate(2024, time.July), 24, 0.04), nil).
		Times(1)

	service := newTestLeaseService(mockQuerier)

	schedule, err := service.Schedule(ctx, workspaceID, lease.ID, 0)
	require.NoError(t, err)

	// Two year lease adjusted every four months: six escalations.
	require.Len(t, schedule, 6)

	first := schedule[0]
	assert.Equal(t, time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, services.StatusPending, first.Status)
	assert.True(t, first.RentKnown)
	assert.InDelta(t, 117000, first.NewRent, 0.001)
	assert.InDelta(t, 16.99, first.PercentChange, 0.001)
	assert.False(t, first.Projected)

	// Each pending entry compounds on the previous one's rounded rent.
	second := schedule[1]
	assert.InDelta(t, 137000, second.NewRent, 0.001)

	last := schedule[5]
	assert.Equal(t, time.Date(2026, time.July, 10, 0, 0, 0, 0, time.UTC), last.Date)
}

func TestLeaseService_NextIncrement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workspaceID := uuid.New()
	leaseStart := time.Date(2024, time.July, 10, 0, 0, 0, 0, time.UTC)
	lease := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, leaseStart)

	t.Run("returns the first pending escalation", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(lease, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2024, time.July), 24, 0.04), nil).
			Times(1)
		service := newTestLeaseService(mockQuerier)

		next, ok, err := service.NextIncrement(ctx, workspaceID, lease.ID)
		require.NoError(t, err)
		require.True(t, ok)
		assert.Equal(t, time.Date(2024, time.November, 10, 0, 0, 0, 0, time.UTC), next.NextDate)
		assert.InDelta(t, 100000, next.CurrentRent, 0.001)
		assert.InDelta(t, 117000, next.NewRent, 0.001)
		assert.InDelta(t, 17000, next.IncreaseAmount, 0.001)
	})

	t.Run("reports nothing pending when the index is empty", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(lease, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return([]db.IndexEntry{}, nil).
			Times(1)
		service := newTestLeaseService(mockQuerier)

		_, ok, err := service.NextIncrement(ctx, workspaceID, lease.ID)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestLeaseService_SetRentOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workspaceID := uuid.New()
	leaseID := uuid.New()

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		service := newTestLeaseService(mocks.NewMockQuerier(ctrl))
		_, err := service.SetRentOverride(ctx, workspaceID, leaseID, 0)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "override amount must be positive")
	})

	t.Run("persists the override amount", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			SetLeaseRentOverride(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.SetLeaseRentOverrideParams) (db.Lease, error) {
				assert.Equal(t, leaseID, arg.ID)
				assert.Equal(t, workspaceID, arg.WorkspaceID)
				assert.InDelta(t, 150000, helpers.NumericToFloat64(arg.RentOverride), 0.001)
				return db.Lease{ID: leaseID, WorkspaceID: workspaceID}, nil
			}).
			Times(1)
		service := newTestLeaseService(mockQuerier)

		lease, err := service.SetRentOverride(ctx, workspaceID, leaseID, 150000)
		require.NoError(t, err)
		assert.Equal(t, leaseID, lease.ID)
	})
}

func TestLeaseService_ApplyIncrement_RequiresPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := newTestLeaseService(mocks.NewMockQuerier(ctrl))

	_, _, err := service.ApplyIncrement(context.Background(), uuid.New(), uuid.New(), nil)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires a database pool")
}

func TestLeaseService_UpcomingIncrements(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)

	workspaceID := uuid.New()
	// Next escalation 2025-09-01, seven days out.
	dueSoon := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, monthDate(2025, time.May))
	// Next escalation 2025-11-01, outside a 30 day window.
	dueLater := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 200000, monthDate(2025, time.July))
	// First escalation long past, filtered as overdue.
	overdue := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 150000, monthDate(2024, time.January))

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListAllActiveLeases(gomock.Any()).
		Return([]db.Lease{dueSoon, dueLater, overdue}, nil).
		Times(1)
	mockQuerier.EXPECT().
		ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
		Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
		Times(1)

	service := newTestLeaseService(mockQuerier)

	upcoming, err := service.UpcomingIncrements(ctx, now, 30)
	require.NoError(t, err)
	require.Len(t, upcoming, 1)

	got := upcoming[0]
	assert.Equal(t, dueSoon.ID, got.LeaseID)
	assert.Equal(t, workspaceID, got.WorkspaceID)
	assert.Equal(t, monthDate(2025, time.September), got.NextDate)
	assert.Equal(t, 7, got.DaysRemaining)
	assert.InDelta(t, 100000, got.CurrentRent, 0.001)
	assert.InDelta(t, 117000, got.NewRent, 0.001)
	assert.False(t, got.Projected)
}

func TestLeaseService_EndLease(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceID := uuid.New()
	leaseID := uuid.New()
	endDate := time.Date(2025, time.December, 31, 0, 0, 0, 0, time.UTC)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		EndLease(gomock.Any(), db.EndLeaseParams{
			ID:          leaseID,
			WorkspaceID: workspaceID,
			LeaseEnd:    helpers.TimeToDate(endDate),
		}).
		Return(db.Lease{ID: leaseID, Status: db.LeaseStatusEnded}, nil).
		Times(1)

	service := newTestLeaseService(mockQuerier)

	lease, err := service.EndLease(context.Background(), workspaceID, leaseID, endDate)
	require.NoError(t, err)
	assert.Equal(t, db.LeaseStatusEnded, lease.Status)
}
