package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
	"github.com/ingagustinmarcel/prop-flow/internal/testutil"
)

// Test helpers and fixtures

func init() {
	// Initialize logger for tests to avoid panic
	logger.Log = zap.NewNop()
}

var (
	testWorkspaceID = uuid.MustParse("01234567-89ab-cdef-0123-456789abcdef")
	testAccountID   = uuid.MustParse("11234567-89ab-cdef-0123-456789abcdef")
	testTenantID    = uuid.MustParse("21234567-89ab-cdef-0123-456789abcdef")
	testUnitID      = uuid.MustParse("31234567-89ab-cdef-0123-456789abcdef")
	testLeaseID     = uuid.MustParse("41234567-89ab-cdef-0123-456789abcdef")
)

// newMockedCommonServices wires real services around a mocked querier. The
// pool stays nil, so transactional paths report their pool requirement.
func newMockedCommonServices(querier db.Querier) *CommonServices {
	index := services.NewIndexService(querier, new(testutil.MockSeriesFetcher))
	return NewCommonServices(CommonServicesConfig{
		DB:              querier,
		Logger:          zap.NewNop(),
		LeaseService:    services.NewLeaseService(querier, nil, index),
		IndexService:    index,
		PaymentService:  services.NewPaymentService(querier),
		CashflowService: services.NewCashflowService(querier),
	})
}

// newAuthedTestContext builds a gin test context carrying the auth values the
// middleware would have set.
func newAuthedTestContext(t *testing.T, method, path string, body interface{}) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	var buf bytes.Buffer
	if body != nil {
		if raw, ok := body.(string); ok {
			buf.WriteString(raw)
		} else {
			data, err := json.Marshal(body)
			if err != nil {
				t.Fatalf("failed to marshal request body: %v", err)
			}
			buf.Write(data)
		}
	}

	c.Request = httptest.NewRequest(method, path, &buf)
	c.Request.Header.Set("Content-Type", "application/json")
	c.Set("workspaceID", testWorkspaceID.String())
	c.Set("accountID", testAccountID.String())

	return c, w
}

// decodeBody unmarshals a recorded JSON response.
func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
	return response
}
