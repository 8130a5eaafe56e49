package testutil

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
)

// MockDatabase provides utilities for database mocking in unit tests
type MockDatabase struct {
	ctrl    *gomock.Controller
	Querier *mocks.MockQuerier
	t       *testing.T
}

// NewMockDatabase creates a new mock database for unit testing
func NewMockDatabase(t *testing.T) *MockDatabase {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	return &MockDatabase{
		ctrl:    ctrl,
		Querier: mocks.NewMockQuerier(ctrl),
		t:       t,
	}
}

// ExpectWorkspaceExists sets up expectation for workspace existence check
func (m *MockDatabase) ExpectWorkspaceExists(workspaceID uuid.UUID, exists bool) {
	if exists {
		m.Querier.EXPECT().
			GetWorkspace(gomock.Any(), workspaceID).
			Return(db.Workspace{
				ID:   workspaceID,
				Name: "Test Workspace",
			}, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetWorkspace(gomock.Any(), workspaceID).
			Return(db.Workspace{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectLeaseExists sets up expectation for lease retrieval
func (m *MockDatabase) ExpectLeaseExists(leaseID uuid.UUID, lease *db.Lease) {
	if lease != nil {
		m.Querier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(*lease, nil).
			Times(1)
	} else {
		m.Querier.EXPECT().
			GetLease(gomock.Any(), gomock.Any()).
			Return(db.Lease{}, pgx.ErrNoRows).
			Times(1)
	}
}

// ExpectIndexHistory sets up expectation for loading an index series
func (m *MockDatabase) ExpectIndexHistory(seriesID string, entries []db.IndexEntry) {
	m.Querier.EXPECT().
		ListIndexEntries(gomock.Any(), seriesID).
		Return(entries, nil).
		Times(1)
}

// ExpectActiveLeases sets up expectation for listing all active leases
func (m *MockDatabase) ExpectActiveLeases(leases []db.Lease) {
	m.Querier.EXPECT().
		ListAllActiveLeases(gomock.Any()).
		Return(leases, nil).
		Times(1)
}

// CreateTestWorkspace creates a test workspace with realistic data
func CreateTestWorkspace(name string) db.Workspace {
	return db.Workspace{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		Name:      name,
		CreatedAt: pgtype.Timestamptz{Valid: true},
		UpdatedAt: pgtype.Timestamptz{Valid: true},
	}
}

// CreateTestProperty creates a test property with realistic data
func CreateTestProperty(workspaceID uuid.UUID, name string) db.Property {
	return db.Property{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		Name:        name,
		AddressLine: "Av. Corrientes 1234",
		City:        pgtype.Text{String: "Buenos Aires", Valid: true},
		Province:    pgtype.Text{String: "CABA", Valid: true},
		CreatedAt:   pgtype.Timestamptz{Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Valid: true},
	}
}

// CreateTestUnit creates a test unit with realistic data
func CreateTestUnit(workspaceID, propertyID uuid.UUID, label string) db.Unit {
	return db.Unit{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		PropertyID:  propertyID,
		Label:       label,
		Floor:       pgtype.Text{String: "3", Valid: true},
		Bedrooms:    pgtype.Int4{Int32: 2, Valid: true},
		CreatedAt:   pgtype.Timestamptz{Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Valid: true},
	}
}

// CreateTestTenant creates a test tenant with realistic data
func CreateTestTenant(workspaceID uuid.UUID, fullName, email string) db.Tenant {
	return db.Tenant{
		ID:          uuid.New(),
		WorkspaceID: workspaceID,
		FullName:    fullName,
		Email:       helpers.StringToNullableText(email),
		Phone:       pgtype.Text{String: "+54 11 5555-0101", Valid: true},
		CreatedAt:   pgtype.Timestamptz{Valid: true},
		UpdatedAt:   pgtype.Timestamptz{Valid: true},
	}
}

// CreateTestLease creates an active test lease starting at leaseStart with a
// two year term and the default adjustment frequency.
func CreateTestLease(workspaceID, unitID, tenantID uuid.UUID, rent float64, leaseStart time.Time) db.Lease {
	leaseEnd := leaseStart.AddDate(2, 0, 0)
	return db.Lease{
		ID:              uuid.New(),
		WorkspaceID:     workspaceID,
		UnitID:          unitID,
		TenantID:        tenantID,
		Rent:            helpers.Float64ToNumeric(rent),
		Deposit:         helpers.Float64ToNumeric(rent),
		LeaseStart:      helpers.TimeToDate(leaseStart),
		LeaseEnd:        helpers.TimeToDate(leaseEnd),
		FrequencyMonths: 4,
		Status:          db.LeaseStatusActive,
		CreatedAt:       pgtype.Timestamptz{Valid: true},
		UpdatedAt:       pgtype.Timestamptz{Valid: true},
	}
}

// CreateTestIndexEntry creates a test inflation index entry for the given
// month. The value is the monthly variation as a fraction, 0.04 for 4%.
func CreateTestIndexEntry(seriesID string, month time.Time, value float64) db.IndexEntry {
	return db.IndexEntry{
		ID:         uuid.New(),
		SeriesID:   seriesID,
		EntryMonth: helpers.TimeToDate(month),
		Value:      helpers.Float64ToNumeric(value),
		Source:     db.IndexSourceIndec,
		CreatedAt:  pgtype.Timestamptz{Valid: true},
	}
}
