package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

// queuedTestNotice builds a stored notice row in queued status.
func queuedTestNotice(workspaceID, leaseID uuid.UUID, effectiveDate time.Time, newRent float64) db.IncrementNotice {
	return db.IncrementNotice{
		ID:            uuid.New(),
		WorkspaceID:   workspaceID,
		LeaseID:       leaseID,
		EffectiveDate: helpers.TimeToDate(effectiveDate),
		NewRent:       helpers.Float64ToNumeric(newRent),
		Status:        db.NoticeStatusQueued,
	}
}

func TestNotificationService_QueueUpcomingNotices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	// 2025-08-25: the May lease's second escalation lands 2025-09-01, seven
	// days out.
	now := time.Date(2025, time.August, 25, 0, 0, 0, 0, time.UTC)
	workspaceID := uuid.New()

	t.Run("creates and dispatches a notice per due lease", func(t *testing.T) {
		lease := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, monthDate(2025, time.May))

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			ListAllActiveLeases(gomock.Any()).
			Return([]db.Lease{lease}, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
			Times(1)
		mockQuerier.EXPECT().
			GetIncrementNoticeByLeaseAndDate(gomock.Any(), db.GetIncrementNoticeByLeaseAndDateParams{
				LeaseID:       lease.ID,
				EffectiveDate: helpers.TimeToDate(monthDate(2025, time.September)),
			}).
			Return(db.IncrementNotice{}, pgx.ErrNoRows).
			Times(1)

		created := queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000)
		mockQuerier.EXPECT().
			CreateIncrementNotice(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateIncrementNoticeParams) (db.IncrementNotice, error) {
				assert.Equal(t, workspaceID, arg.WorkspaceID)
				assert.Equal(t, lease.ID, arg.LeaseID)
				assert.InDelta(t, 117000, helpers.NumericToFloat64(arg.NewRent), 0.001)
				return created, nil
			}).
			Times(1)

		var sent services.NoticeMessage
		queue := new(testutil.MockNoticeQueue)
		queue.On("SendJSONMessage", mock.Anything, mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				sent = args.Get(1).(services.NoticeMessage)
			}).
			Return(nil)

		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), nil, queue)

		queued, err := service.QueueUpcomingNotices(ctx, now, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, queued)

		queue.AssertNumberOfCalls(t, "SendJSONMessage", 1)
		assert.Equal(t, created.ID.String(), sent.NoticeID)
		assert.Equal(t, workspaceID.String(), sent.WorkspaceID)
		assert.Equal(t, lease.ID.String(), sent.LeaseID)
	})

	t.Run("skips leases that already have a notice for the date", func(t *testing.T) {
		lease := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, monthDate(2025, time.May))

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			ListAllActiveLeases(gomock.Any()).
			Return([]db.Lease{lease}, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
			Times(1)
		mockQuerier.EXPECT().
			GetIncrementNoticeByLeaseAndDate(gomock.Any(), gomock.Any()).
			Return(queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000), nil).
			Times(1)

		queue := new(testutil.MockNoticeQueue)
		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), nil, queue)

		queued, err := service.QueueUpcomingNotices(ctx, now, 30)
		require.NoError(t, err)
		assert.Zero(t, queued)
		queue.AssertNotCalled(t, "SendJSONMessage")
	})

	t.Run("notice survives a dispatch failure", func(t *testing.T) {
		lease := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, monthDate(2025, time.May))

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			ListAllActiveLeases(gomock.Any()).
			Return([]db.Lease{lease}, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
			Times(1)
		mockQuerier.EXPECT().
			GetIncrementNoticeByLeaseAndDate(gomock.Any(), gomock.Any()).
			Return(db.IncrementNotice{}, pgx.ErrNoRows).
			Times(1)
		mockQuerier.EXPECT().
			CreateIncrementNotice(gomock.Any(), gomock.Any()).
			Return(queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000), nil).
			Times(1)

		queue := new(testutil.MockNoticeQueue)
		queue.On("SendJSONMessage", mock.Anything, mock.Anything, mock.Anything).Return(assert.AnError)

		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), nil, queue)

		queued, err := service.QueueUpcomingNotices(ctx, now, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, queued)
	})

	t.Run("nil queue leaves notices in queued status", func(t *testing.T) {
		lease := testutil.CreateTestLease(workspaceID, uuid.New(), uuid.New(), 100000, monthDate(2025, time.May))

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			ListAllActiveLeases(gomock.Any()).
			Return([]db.Lease{lease}, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
			Times(1)
		mockQuerier.EXPECT().
			GetIncrementNoticeByLeaseAndDate(gomock.Any(), gomock.Any()).
			Return(db.IncrementNotice{}, pgx.ErrNoRows).
			Times(1)
		mockQuerier.EXPECT().
			CreateIncrementNotice(gomock.Any(), gomock.Any()).
			Return(queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000), nil).
			Times(1)

		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), nil, nil)

		queued, err := service.QueueUpcomingNotices(ctx, now, 30)
		require.NoError(t, err)
		assert.Equal(t, 1, queued)
	})
}

func TestNotificationService_DeliverNotice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	workspaceID := uuid.New()

	property := testutil.CreateTestProperty(workspaceID, "Edificio Lavalle")
	unit := testutil.CreateTestUnit(workspaceID, property.ID, "3A")
	tenant := testutil.CreateTestTenant(workspaceID, "María González", "maria@example.com")
	lease := testutil.CreateTestLease(workspaceID, unit.ID, tenant.ID, 100000, monthDate(2025, time.May))

	t.Run("emails the tenant and marks the notice sent", func(t *testing.T) {
		notice := queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000)

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetIncrementNotice(gomock.Any(), notice.ID).
			Return(notice, nil).
			Times(1)
		// Fetched once for the notice and again by the increment recompute.
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), db.GetLeaseParams{ID: lease.ID, WorkspaceID: workspaceID}).
			Return(lease, nil).
			Times(2)
		mockQuerier.EXPECT().
			GetTenant(gomock.Any(), db.GetTenantParams{ID: tenant.ID, WorkspaceID: workspaceID}).
			Return(tenant, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetUnit(gomock.Any(), db.GetUnitParams{ID: unit.ID, WorkspaceID: workspaceID}).
			Return(unit, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetProperty(gomock.Any(), db.GetPropertyParams{ID: property.ID, WorkspaceID: workspaceID}).
			Return(property, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
			Times(1)
		mockQuerier.EXPECT().
			MarkIncrementNoticeSent(gomock.Any(), notice.ID).
			Return(nil).
			Times(1)

		var delivered services.IncrementNoticeEmailParams
		mailer := new(testutil.MockNoticeMailer)
		mailer.On("SendIncrementNotice", mock.Anything, mock.Anything).
			Run(func(args mock.Arguments) {
				delivered = args.Get(1).(services.IncrementNoticeEmailParams)
			}).
			Return(nil)

		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), mailer, nil)

		require.NoError(t, service.DeliverNotice(ctx, notice.ID))

		assert.Equal(t, "maria@example.com", delivered.To)
		assert.Equal(t, "María González", delivered.TenantName)
		assert.Equal(t, "Edificio Lavalle", delivered.PropertyName)
		assert.Equal(t, "3A", delivered.UnitLabel)
		assert.InDelta(t, 100000, delivered.CurrentRent, 0.001)
		assert.InDelta(t, 117000, delivered.NewRent, 0.001)
		assert.InDelta(t, 16.99, delivered.PercentChange, 0.001)
		assert.Equal(t, monthDate(2025, time.September), delivered.EffectiveDate)
		assert.False(t, delivered.Projected)
	})

	t.Run("already sent notice is a no-op", func(t *testing.T) {
		notice := queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000)
		notice.Status = db.NoticeStatusSent

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetIncrementNotice(gomock.Any(), notice.ID).
			Return(notice, nil).
			Times(1)

		mailer := new(testutil.MockNoticeMailer)
		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), mailer, nil)

		require.NoError(t, service.DeliverNotice(ctx, notice.ID))
		mailer.AssertNotCalled(t, "SendIncrementNotice")
	})

	t.Run("tenant without email marks the notice failed", func(t *testing.T) {
		emailless := testutil.CreateTestTenant(workspaceID, "Sin Correo", "")
		orphanLease := testutil.CreateTestLease(workspaceID, unit.ID, emailless.ID, 100000, monthDate(2025, time.May))
		notice := queuedTestNotice(workspaceID, orphanLease.ID, monthDate(2025, time.September), 117000)

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetIncrementNotice(gomock.Any(), notice.ID).
			Return(notice, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(orphanLease, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetTenant(gomock.Any(), gomock.Any()).
			Return(emailless, nil).
			Times(1)
		mockQuerier.EXPECT().
			MarkIncrementNoticeFailed(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.MarkIncrementNoticeFailedParams) error {
				assert.Equal(t, notice.ID, arg.ID)
				assert.Contains(t, arg.LastError.String, "no email")
				return nil
			}).
			Times(1)

		mailer := new(testutil.MockNoticeMailer)
		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), mailer, nil)

		require.NoError(t, service.DeliverNotice(ctx, notice.ID))
		mailer.AssertNotCalled(t, "SendIncrementNotice")
	})

	t.Run("send failure marks the notice failed and returns the error", func(t *testing.T) {
		notice := queuedTestNotice(workspaceID, lease.ID, monthDate(2025, time.September), 117000)

		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			GetIncrementNotice(gomock.Any(), notice.ID).
			Return(notice, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(lease, nil).
			Times(2)
		mockQuerier.EXPECT().
			GetTenant(gomock.Any(), gomock.Any()).
			Return(tenant, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetUnit(gomock.Any(), gomock.Any()).
			Return(unit, nil).
			Times(1)
		mockQuerier.EXPECT().
			GetProperty(gomock.Any(), gomock.Any()).
			Return(property, nil).
			Times(1)
		mockQuerier.EXPECT().
			ListIndexEntries(gomock.Any(), constants.IPCSeriesID).
			Return(dbHistory(monthDate(2025, time.May), 6, 0.04), nil).
			Times(1)
		mockQuerier.EXPECT().
			MarkIncrementNoticeFailed(gomock.Any(), gomock.Any()).
			Return(nil).
			Times(1)

		mailer := new(testutil.MockNoticeMailer)
		mailer.On("SendIncrementNotice", mock.Anything, mock.Anything).Return(assert.AnError)

		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), mailer, nil)

		err := service.DeliverNotice(ctx, notice.ID)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to send notice email")
	})

	t.Run("fails without a mailer", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), nil, nil)

		err := service.DeliverNotice(ctx, uuid.New())
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "no mailer configured")
	})
}

func TestNotificationService_DeliverQueued(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	workspaceID := uuid.New()
	// Both already sent: DeliverNotice short-circuits, which keeps this sweep
	// test independent of the full delivery chain.
	first := queuedTestNotice(workspaceID, uuid.New(), monthDate(2025, time.September), 117000)
	first.Status = db.NoticeStatusSent
	second := queuedTestNotice(workspaceID, uuid.New(), monthDate(2025, time.September), 234000)

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListQueuedIncrementNotices(gomock.Any()).
		Return([]db.IncrementNotice{first, second}, nil).
		Times(1)
	mockQuerier.EXPECT().
		GetIncrementNotice(gomock.Any(), first.ID).
		Return(first, nil).
		Times(1)
	// The second notice hits a storage error and is skipped, not fatal.
	mockQuerier.EXPECT().
		GetIncrementNotice(gomock.Any(), second.ID).
		Return(db.IncrementNotice{}, assert.AnError).
		Times(1)

	mailer := new(testutil.MockNoticeMailer)
	service := services.NewNotificationService(mockQuerier, newTestLeaseService(mockQuerier), mailer, nil)

	delivered, err := service.DeliverQueued(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, delivered)
}
