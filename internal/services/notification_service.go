package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// NoticeQueue dispatches notice messages to the delivery worker. Implemented
// by the SQS client in deployed environments.
type NoticeQueue interface {
	SendJSONMessage(ctx context.Context, payload interface{}, attributes map[string]string) error
}

// NoticeMailer sends increment notice emails. Implemented by EmailService.
type NoticeMailer interface {
	SendIncrementNotice(ctx context.Context, params IncrementNoticeEmailParams) error
}

// NoticeMessage is the queue payload pointing the delivery worker at a
// persisted notice row.
type NoticeMessage struct {
	NoticeID    string `json:"notice_id"`
	WorkspaceID string `json:"workspace_id"`
	LeaseID     string `json:"lease_id"`
}

// NotificationService persists increment notices for upcoming rent updates
// and delivers them to tenants by email.
type NotificationService struct {
	queries db.Querier
	leases  *LeaseService
	mailer  NoticeMailer
	queue   NoticeQueue
	logger  *zap.Logger
}

// NewNotificationService creates a new notification service. The queue may be
// nil when running locally: notices then stay in queued status until
// DeliverQueued sweeps them.
func NewNotificationService(queries db.Querier, leases *LeaseService, mailer NoticeMailer, queue NoticeQueue) *NotificationService {
	return &NotificationService{
		queries: queries,
		leases:  leases,
		mailer:  mailer,
		queue:   queue,
		logger:  zap.L(),
	}
}

// QueueUpcomingNotices scans active leases for increments due within
// windowDays, persists a notice per lease and increment date, and dispatches
// a message for each new notice. A lease that already has a notice for the
// same effective date is skipped, so the scan is safe to run daily. Returns
// the number of notices created.
func (s *NotificationService) QueueUpcomingNotices(ctx context.Context, now time.Time, windowDays int) (int, error) {
	upcoming, err := s.leases.UpcomingIncrements(ctx, now, windowDays)
	if err != nil {
		return 0, fmt.Errorf("failed to collect upcoming increments: %w", err)
	}

	queued := 0
	for _, up := range upcoming {
		effectiveDate := helpers.TimeToDate(up.NextDate)

		_, err := s.queries.GetIncrementNoticeByLeaseAndDate(ctx, db.GetIncrementNoticeByLeaseAndDateParams{
			LeaseID:       up.LeaseID,
			EffectiveDate: effectiveDate,
		})
		if err == nil {
			continue
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn("Failed to check for existing notice",
				zap.Error(err),
				zap.String("lease_id", up.LeaseID.String()))
			continue
		}

		notice, err := s.queries.CreateIncrementNotice(ctx, db.CreateIncrementNoticeParams{
			WorkspaceID:   up.WorkspaceID,
			LeaseID:       up.LeaseID,
			EffectiveDate: effectiveDate,
			NewRent:       helpers.Float64ToNumeric(up.NewRent),
		})
		if err != nil {
			s.logger.Error("Failed to create increment notice",
				zap.Error(err),
				zap.String("lease_id", up.LeaseID.String()))
			continue
		}
		queued++

		s.logger.Info("Queued increment notice",
			zap.String("notice_id", notice.ID.String()),
			zap.String("lease_id", up.LeaseID.String()),
			zap.Time("effective_date", up.NextDate),
			zap.Float64("new_rent", up.NewRent))

		if s.queue == nil {
			continue
		}
		msg := NoticeMessage{
			NoticeID:    notice.ID.String(),
			WorkspaceID: up.WorkspaceID.String(),
			LeaseID:     up.LeaseID.String(),
		}
		attributes := map[string]string{"notice_type": "rent_increment"}
		if err := s.queue.SendJSONMessage(ctx, msg, attributes); err != nil {
			// The notice row stays queued, so a later DeliverQueued
			// sweep still picks it up.
			s.logger.Error("Failed to dispatch notice message",
				zap.Error(err),
				zap.String("notice_id", notice.ID.String()))
		}
	}

	return queued, nil
}

// DeliverNotice emails the notice to the lease's tenant and marks it sent.
// A notice that was already sent is skipped. Deterministic failures such as
// a tenant without an email address mark the notice failed without returning
// an error; transient send failures return the error so the caller can retry.
func (s *NotificationService) DeliverNotice(ctx context.Context, noticeID uuid.UUID) error {
	if s.mailer == nil {
		return errors.New("notification service has no mailer configured")
	}

	notice, err := s.queries.GetIncrementNotice(ctx, noticeID)
	if err != nil {
		return fmt.Errorf("failed to get notice: %w", err)
	}
	if notice.Status == db.NoticeStatusSent {
		s.logger.Debug("Notice already sent, skipping",
			zap.String("notice_id", noticeID.String()))
		return nil
	}

	lease, err := s.queries.GetLease(ctx, db.GetLeaseParams{ID: notice.LeaseID, WorkspaceID: notice.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get lease for notice: %w", err)
	}
	tenant, err := s.queries.GetTenant(ctx, db.GetTenantParams{ID: lease.TenantID, WorkspaceID: notice.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get tenant for notice: %w", err)
	}
	if !tenant.Email.Valid || tenant.Email.String == "" {
		s.failNotice(ctx, noticeID, "tenant has no email address")
		s.logger.Warn("Cannot deliver notice, tenant has no email",
			zap.String("notice_id", noticeID.String()),
			zap.String("tenant_id", tenant.ID.String()))
		return nil
	}

	unit, err := s.queries.GetUnit(ctx, db.GetUnitParams{ID: lease.UnitID, WorkspaceID: notice.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get unit for notice: %w", err)
	}
	property, err := s.queries.GetProperty(ctx, db.GetPropertyParams{ID: unit.PropertyID, WorkspaceID: notice.WorkspaceID})
	if err != nil {
		return fmt.Errorf("failed to get property for notice: %w", err)
	}

	params := s.noticeEmailParams(ctx, notice, lease, tenant, unit, property)
	if err := s.mailer.SendIncrementNotice(ctx, params); err != nil {
		s.failNotice(ctx, noticeID, err.Error())
		return fmt.Errorf("failed to send notice email: %w", err)
	}

	if err := s.queries.MarkIncrementNoticeSent(ctx, noticeID); err != nil {
		return fmt.Errorf("failed to mark notice sent: %w", err)
	}

	s.logger.Info("Delivered increment notice",
		zap.String("notice_id", noticeID.String()),
		zap.String("tenant_email", tenant.Email.String))

	return nil
}

// DeliverQueued delivers every notice still in queued status. Used by the
// local notification worker, where there is no queue between scanning and
// delivery. Returns the number of notices delivered.
func (s *NotificationService) DeliverQueued(ctx context.Context) (int, error) {
	notices, err := s.queries.ListQueuedIncrementNotices(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to list queued notices: %w", err)
	}

	delivered := 0
	for _, notice := range notices {
		if err := s.DeliverNotice(ctx, notice.ID); err != nil {
			s.logger.Error("Failed to deliver queued notice",
				zap.Error(err),
				zap.String("notice_id", notice.ID.String()))
			continue
		}
		delivered++
	}
	return delivered, nil
}

// noticeEmailParams assembles the email payload. The increment is recomputed
// so the email carries the projected flag and percent change; when the
// increment was applied between queueing and delivery the recomputed date no
// longer matches and the stored values are used instead.
func (s *NotificationService) noticeEmailParams(ctx context.Context, notice db.IncrementNotice, lease db.Lease, tenant db.Tenant, unit db.Unit, property db.Property) IncrementNoticeEmailParams {
	currentRent := helpers.NumericToFloat64(lease.Rent)
	newRent := helpers.NumericToFloat64(notice.NewRent)
	effectiveDate := notice.EffectiveDate.Time

	percentChange := 0.0
	if currentRent > 0 {
		percentChange = (newRent/currentRent - 1) * 100
	}
	projected := false

	upd, ok, err := s.leases.NextIncrement(ctx, notice.WorkspaceID, notice.LeaseID)
	if err != nil {
		s.logger.Warn("Failed to recompute increment for notice",
			zap.Error(err),
			zap.String("notice_id", notice.ID.String()))
	} else if ok && sameDay(upd.NextDate, effectiveDate) {
		percentChange = upd.PercentChange
		projected = upd.Projected
	}

	return IncrementNoticeEmailParams{
		To:            tenant.Email.String,
		TenantName:    tenant.FullName,
		PropertyName:  property.Name,
		UnitLabel:     unit.Label,
		CurrentRent:   currentRent,
		NewRent:       newRent,
		PercentChange: percentChange,
		EffectiveDate: effectiveDate,
		Projected:     projected,
	}
}

func (s *NotificationService) failNotice(ctx context.Context, noticeID uuid.UUID, reason string) {
	err := s.queries.MarkIncrementNoticeFailed(ctx, db.MarkIncrementNoticeFailedParams{
		ID:        noticeID,
		LastError: helpers.StringToNullableText(reason),
	})
	if err != nil {
		s.logger.Error("Failed to mark notice as failed",
			zap.Error(err),
			zap.String("notice_id", noticeID.String()))
	}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
