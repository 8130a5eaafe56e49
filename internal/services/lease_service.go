package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
)

// ErrNoPendingIncrement is returned when a lease has no pending escalation to
// apply, either because the index history is empty or the schedule is
// exhausted.
var ErrNoPendingIncrement = errors.New("lease has no pending increment")

// ActiveLeaseExistsError is returned when a unit already has an active lease.
type ActiveLeaseExistsError struct {
	UnitID uuid.UUID
}

func (e *ActiveLeaseExistsError) Error() string {
	return fmt.Sprintf("unit %s already has an active lease", e.UnitID)
}

// LeaseService handles lease lifecycle operations and bridges stored leases
// to the escalation engine.
type LeaseService struct {
	queries  db.Querier
	pool     *pgxpool.Pool
	engine   *EscalationEngine
	index    *IndexService
	seriesID string
	logger   *zap.Logger
}

// NewLeaseService creates a new lease service. The pool may be nil when no
// transactional operations will run (workers that only read).
func NewLeaseService(queries db.Querier, pool *pgxpool.Pool, index *IndexService) *LeaseService {
	return &LeaseService{
		queries:  queries,
		pool:     pool,
		engine:   NewEscalationEngine(),
		index:    index,
		seriesID: constants.IPCSeriesID,
		logger:   zap.L(),
	}
}

// CreateLeaseInput carries the fields needed to open a lease.
type CreateLeaseInput struct {
	WorkspaceID     uuid.UUID
	UnitID          uuid.UUID
	TenantID        uuid.UUID
	Rent            float64
	Deposit         float64
	LeaseStart      time.Time
	LeaseEnd        *time.Time
	FrequencyMonths int32
}

// UpcomingIncrement is a lease whose next escalation lands inside a lookahead
// window.
type UpcomingIncrement struct {
	LeaseID        uuid.UUID `json:"lease_id"`
	WorkspaceID    uuid.UUID `json:"workspace_id"`
	UnitID         uuid.UUID `json:"unit_id"`
	TenantID       uuid.UUID `json:"tenant_id"`
	CurrentRent    float64   `json:"current_rent"`
	NextDate       time.Time `json:"next_date"`
	NewRent        float64   `json:"new_rent"`
	IncreaseAmount float64   `json:"increase_amount"`
	PercentChange  float64   `json:"percent_change"`
	Projected      bool      `json:"projected"`
	ManualOverride bool      `json:"manual_override"`
	DaysRemaining  int       `json:"days_remaining"`
}

// CreateLease opens a lease after checking the unit is free. A unit can hold
// only one active lease at a time.
func (s *LeaseService) CreateLease(ctx context.Context, input CreateLeaseInput) (db.Lease, error) {
	if input.Rent <= 0 {
		return db.Lease{}, fmt.Errorf("rent must be positive, got %v", input.Rent)
	}
	if input.LeaseStart.IsZero() {
		return db.Lease{}, fmt.Errorf("lease start date is required")
	}
	if input.LeaseEnd != nil && !input.LeaseEnd.After(input.LeaseStart) {
		return db.Lease{}, fmt.Errorf("lease end must be after lease start")
	}

	frequency := input.FrequencyMonths
	if frequency <= 0 {
		frequency = constants.DefaultFrequencyMonths
	}

	existing, err := s.queries.GetActiveLeaseByUnit(ctx, db.GetActiveLeaseByUnitParams{
		UnitID:      input.UnitID,
		WorkspaceID: input.WorkspaceID,
	})
	if err == nil {
		return db.Lease{}, &ActiveLeaseExistsError{UnitID: existing.UnitID}
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return db.Lease{}, fmt.Errorf("failed to check for active lease: %w", err)
	}

	lease, err := s.queries.CreateLease(ctx, db.CreateLeaseParams{
		WorkspaceID:     input.WorkspaceID,
		UnitID:          input.UnitID,
		TenantID:        input.TenantID,
		Rent:            helpers.Float64ToNumeric(input.Rent),
		Deposit:         helpers.Float64ToNumeric(input.Deposit),
		LeaseStart:      helpers.TimeToDate(input.LeaseStart),
		LeaseEnd:        helpers.TimeToNullableDate(input.LeaseEnd),
		FrequencyMonths: frequency,
	})
	if err != nil {
		return db.Lease{}, fmt.Errorf("failed to create lease: %w", err)
	}

	s.logger.Info("Created lease",
		zap.String("lease_id", lease.ID.String()),
		zap.String("unit_id", lease.UnitID.String()),
		zap.Float64("rent", input.Rent))

	return lease, nil
}

// Schedule computes the full escalation schedule for a lease from the stored
// index history. A positive frequencyMonths recomputes the schedule at that
// cadence instead of the lease's own; pass 0 to use the stored cadence.
func (s *LeaseService) Schedule(ctx context.Context, workspaceID, leaseID uuid.UUID, frequencyMonths int) ([]ScheduleEntry, error) {
	lease, err := s.queries.GetLease(ctx, db.GetLeaseParams{ID: leaseID, WorkspaceID: workspaceID})
	if err != nil {
		return nil, fmt.Errorf("failed to get lease: %w", err)
	}

	history, err := s.index.History(ctx, s.seriesID)
	if err != nil {
		return nil, err
	}

	if frequencyMonths <= 0 {
		frequencyMonths = int(lease.FrequencyMonths)
	}

	return s.engine.FullSchedule(leaseToTerms(lease), history, frequencyMonths), nil
}

// NextIncrement returns the next pending escalation for a lease. The second
// return is false when nothing is pending.
func (s *LeaseService) NextIncrement(ctx context.Context, workspaceID, leaseID uuid.UUID) (NextUpdate, bool, error) {
	lease, err := s.queries.GetLease(ctx, db.GetLeaseParams{ID: leaseID, WorkspaceID: workspaceID})
	if err != nil {
		return NextUpdate{}, false, fmt.Errorf("failed to get lease: %w", err)
	}

	history, err := s.index.History(ctx, s.seriesID)
	if err != nil {
		return NextUpdate{}, false, err
	}

	next, ok := s.engine.NextRent(leaseToTerms(lease), history, int(lease.FrequencyMonths))
	return next, ok, nil
}

// SetRentOverride fixes the amount the next increment will move the rent to,
// replacing the index-derived value until it is applied or cleared.
func (s *LeaseService) SetRentOverride(ctx context.Context, workspaceID, leaseID uuid.UUID, amount float64) (db.Lease, error) {
	if amount <= 0 {
		return db.Lease{}, fmt.Errorf("override amount must be positive, got %v", amount)
	}

	lease, err := s.queries.SetLeaseRentOverride(ctx, db.SetLeaseRentOverrideParams{
		ID:           leaseID,
		WorkspaceID:  workspaceID,
		RentOverride: helpers.Float64ToNumeric(amount),
	})
	if err != nil {
		return db.Lease{}, fmt.Errorf("failed to set rent override: %w", err)
	}

	s.logger.Info("Set rent override",
		zap.String("lease_id", leaseID.String()),
		zap.Float64("amount", amount))

	return lease, nil
}

// ClearRentOverride removes a pending manual override.
func (s *LeaseService) ClearRentOverride(ctx context.Context, workspaceID, leaseID uuid.UUID) (db.Lease, error) {
	lease, err := s.queries.ClearLeaseRentOverride(ctx, db.ClearLeaseRentOverrideParams{
		ID:          leaseID,
		WorkspaceID: workspaceID,
	})
	if err != nil {
		return db.Lease{}, fmt.Errorf("failed to clear rent override: %w", err)
	}
	return lease, nil
}

// ApplyIncrement makes the next pending escalation permanent: the lease row
// is locked, the schedule recomputed from current data, and the new rent and
// increment date persisted. Any override is consumed by the update. A non-nil
// explicitRent replaces the computed figure, for rents negotiated outside the
// index.
func (s *LeaseService) ApplyIncrement(ctx context.Context, workspaceID, leaseID uuid.UUID, explicitRent *float64) (db.Lease, NextUpdate, error) {
	if s.pool == nil {
		return db.Lease{}, NextUpdate{}, fmt.Errorf("apply increment requires a database pool")
	}
	if explicitRent != nil && *explicitRent <= 0 {
		return db.Lease{}, NextUpdate{}, fmt.Errorf("explicit rent must be positive, got %v", *explicitRent)
	}

	history, err := s.index.History(ctx, s.seriesID)
	if err != nil {
		return db.Lease{}, NextUpdate{}, err
	}

	var updated db.Lease
	var applied NextUpdate

	err = helpers.WithTransaction(ctx, s.pool, func(tx pgx.Tx) error {
		qtx := db.New(tx)

		lease, err := qtx.GetLeaseForUpdate(ctx, db.GetLeaseForUpdateParams{ID: leaseID, WorkspaceID: workspaceID})
		if err != nil {
			return fmt.Errorf("failed to lock lease: %w", err)
		}
		if lease.Status != db.LeaseStatusActive {
			return fmt.Errorf("cannot apply increment to %s lease", lease.Status)
		}

		next, ok := s.engine.NextRent(leaseToTerms(lease), history, int(lease.FrequencyMonths))
		if !ok {
			return ErrNoPendingIncrement
		}
		if explicitRent != nil {
			currentRent := helpers.NumericToFloat64(lease.Rent)
			next.NewRent = helpers.Round2(*explicitRent)
			next.IncreaseAmount = helpers.Round2(next.NewRent - currentRent)
			if currentRent > 0 {
				next.PercentChange = helpers.Round2((next.NewRent/currentRent - 1) * 100)
			}
			next.ManualOverride = true
		}
		applied = next

		updated, err = qtx.ApplyLeaseIncrement(ctx, db.ApplyLeaseIncrementParams{
			ID:                leaseID,
			WorkspaceID:       workspaceID,
			Rent:              helpers.Float64ToNumeric(next.NewRent),
			LastIncrementDate: helpers.TimeToDate(next.NextDate),
		})
		if err != nil {
			return fmt.Errorf("failed to persist increment: %w", err)
		}
		return nil
	})
	if err != nil {
		return db.Lease{}, NextUpdate{}, err
	}

	s.logger.Info("Applied rent increment",
		zap.String("lease_id", leaseID.String()),
		zap.Float64("new_rent", applied.NewRent),
		zap.Time("effective_date", applied.NextDate),
		zap.Bool("manual_override", applied.ManualOverride))

	return updated, applied, nil
}

// EndLease marks a lease ended as of endDate.
func (s *LeaseService) EndLease(ctx context.Context, workspaceID, leaseID uuid.UUID, endDate time.Time) (db.Lease, error) {
	lease, err := s.queries.EndLease(ctx, db.EndLeaseParams{
		ID:          leaseID,
		WorkspaceID: workspaceID,
		LeaseEnd:    helpers.TimeToDate(endDate),
	})
	if err != nil {
		return db.Lease{}, fmt.Errorf("failed to end lease: %w", err)
	}

	s.logger.Info("Ended lease",
		zap.String("lease_id", leaseID.String()),
		zap.Time("end_date", endDate))

	return lease, nil
}

// UpcomingIncrementsForWorkspace scans a workspace's active leases and
// returns the ones whose next escalation falls within windowDays of now.
func (s *LeaseService) UpcomingIncrementsForWorkspace(ctx context.Context, workspaceID uuid.UUID, now time.Time, windowDays int) ([]UpcomingIncrement, error) {
	leases, err := s.queries.ListActiveLeasesByWorkspace(ctx, workspaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active leases: %w", err)
	}
	return s.upcomingFromLeases(ctx, leases, now, windowDays)
}

// UpcomingIncrements scans every active lease across workspaces. Used by the
// scheduled notice worker.
func (s *LeaseService) UpcomingIncrements(ctx context.Context, now time.Time, windowDays int) ([]UpcomingIncrement, error) {
	leases, err := s.queries.ListAllActiveLeases(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list active leases: %w", err)
	}
	return s.upcomingFromLeases(ctx, leases, now, windowDays)
}

func (s *LeaseService) upcomingFromLeases(ctx context.Context, leases []db.Lease, now time.Time, windowDays int) ([]UpcomingIncrement, error) {
	history, err := s.index.History(ctx, s.seriesID)
	if err != nil {
		return nil, err
	}

	upcoming := []UpcomingIncrement{}
	for _, lease := range leases {
		next, ok := s.engine.NextRent(leaseToTerms(lease), history, int(lease.FrequencyMonths))
		if !ok {
			continue
		}

		days := helpers.DaysUntil(now, next.NextDate)
		if days < 0 || days > windowDays {
			continue
		}

		upcoming = append(upcoming, UpcomingIncrement{
			LeaseID:        lease.ID,
			WorkspaceID:    lease.WorkspaceID,
			UnitID:         lease.UnitID,
			TenantID:       lease.TenantID,
			CurrentRent:    next.CurrentRent,
			NextDate:       next.NextDate,
			NewRent:        next.NewRent,
			IncreaseAmount: next.IncreaseAmount,
			PercentChange:  next.PercentChange,
			Projected:      next.Projected,
			ManualOverride: next.ManualOverride,
			DaysRemaining:  days,
		})
	}
	return upcoming, nil
}

// leaseToTerms maps a stored lease row into the engine's input shape.
func leaseToTerms(lease db.Lease) LeaseTerms {
	return LeaseTerms{
		Rent:              helpers.NumericToFloat64(lease.Rent),
		LeaseStart:        lease.LeaseStart.Time,
		LeaseEnd:          helpers.DateToNullableTime(lease.LeaseEnd),
		LastIncrementDate: helpers.DateToNullableTime(lease.LastIncrementDate),
		RentOverride:      helpers.NumericToNullableFloat64(lease.RentOverride),
	}
}
