package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/mocks"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

func TestTenantHandler_CreateTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("rejects a missing name", func(t *testing.T) {
		handler := NewTenantHandler(newMockedCommonServices(mocks.NewMockQuerier(ctrl)))

		c, w := newAuthedTestContext(t, http.MethodPost, "/tenants", CreateTenantRequest{Email: "x@y.com"})
		handler.CreateTenant(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		response := decodeBody(t, w)
		assert.Contains(t, response["error"], "Invalid request body")
	})

	t.Run("creates the tenant", func(t *testing.T) {
		mockQuerier := mocks.NewMockQuerier(ctrl)
		mockQuerier.EXPECT().
			CreateTenant(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, arg db.CreateTenantParams) (db.Tenant, error) {
				assert.Equal(t, testWorkspaceID, arg.WorkspaceID)
				assert.Equal(t, "Marta Suarez", arg.FullName)
				assert.False(t, arg.Notes.Valid)
				return testutil.CreateTestTenant(arg.WorkspaceID, arg.FullName, arg.Email.String), nil
			}).
			Times(1)

		handler := NewTenantHandler(newMockedCommonServices(mockQuerier))

		c, w := newAuthedTestContext(t, http.MethodPost, "/tenants", CreateTenantRequest{
			FullName: "Marta Suarez",
			Email:    "marta@example.com",
		})
		handler.CreateTenant(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		response := decodeBody(t, w)
		assert.Equal(t, "tenant", response["object"])
		assert.Equal(t, "Marta Suarez", response["full_name"])
		assert.Equal(t, "marta@example.com", response["email"])
	})
}

func TestTenantHandler_GetTenant_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		GetTenant(gomock.Any(), db.GetTenantParams{ID: testTenantID, WorkspaceID: testWorkspaceID}).
		Return(db.Tenant{}, pgx.ErrNoRows).
		Times(1)

	handler := NewTenantHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/tenants/"+testTenantID.String(), nil)
	c.Params = []gin.Param{{Key: "tenant_id", Value: testTenantID.String()}}
	handler.GetTenant(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTenantHandler_ListTenants_Paginated(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenants := []db.Tenant{
		testutil.CreateTestTenant(testWorkspaceID, "Marta Suarez", "marta@example.com"),
		testutil.CreateTestTenant(testWorkspaceID, "Julio Paz", "julio@example.com"),
	}

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		ListTenants(gomock.Any(), db.ListTenantsParams{
			WorkspaceID: testWorkspaceID,
			Limit:       10,
			Offset:      0,
		}).
		Return(tenants, nil).
		Times(1)
	mockQuerier.EXPECT().
		CountTenants(gomock.Any(), testWorkspaceID).
		Return(int64(12), nil).
		Times(1)

	handler := NewTenantHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodGet, "/tenants", nil)
	handler.ListTenants(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "list", response["object"])
	assert.Equal(t, true, response["has_more"])

	data, ok := response["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, data, 2)

	pagination, ok := response["pagination"].(map[string]interface{})
	require.True(t, ok)
	assert.InDelta(t, 12, pagination["total_items"], 0.001)
	assert.InDelta(t, 2, pagination["total_pages"], 0.001)
}

func TestTenantHandler_DeleteTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQuerier := mocks.NewMockQuerier(ctrl)
	mockQuerier.EXPECT().
		DeleteTenant(gomock.Any(), db.DeleteTenantParams{ID: testTenantID, WorkspaceID: testWorkspaceID}).
		Return(nil).
		Times(1)

	handler := NewTenantHandler(newMockedCommonServices(mockQuerier))

	c, w := newAuthedTestContext(t, http.MethodDelete, "/tenants/"+testTenantID.String(), nil)
	c.Params = []gin.Param{{Key: "tenant_id", Value: testTenantID.String()}}
	handler.DeleteTenant(c)

	assert.Equal(t, http.StatusOK, w.Code)
	response := decodeBody(t, w)
	assert.Equal(t, "Tenant deleted", response["message"])
}
