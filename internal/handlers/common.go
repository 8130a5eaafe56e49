package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

// CommonServices holds the dependencies shared across handlers.
type CommonServices struct {
	db     db.Querier
	dbPool *pgxpool.Pool
	logger *zap.Logger

	LeaseService        *services.LeaseService
	IndexService        *services.IndexService
	PaymentService      *services.PaymentService
	CashflowService     *services.CashflowService
	EmailService        *services.EmailService
	NotificationService *services.NotificationService
}

// CommonServicesConfig contains everything needed to build CommonServices.
type CommonServicesConfig struct {
	DB     db.Querier
	DBPool *pgxpool.Pool
	Logger *zap.Logger

	LeaseService        *services.LeaseService
	IndexService        *services.IndexService
	PaymentService      *services.PaymentService
	CashflowService     *services.CashflowService
	EmailService        *services.EmailService
	NotificationService *services.NotificationService
}

// NewCommonServices creates a CommonServices from its config.
func NewCommonServices(config CommonServicesConfig) *CommonServices {
	if config.Logger == nil {
		config.Logger = logger.Log
	}

	return &CommonServices{
		db:                  config.DB,
		dbPool:              config.DBPool,
		logger:              config.Logger,
		LeaseService:        config.LeaseService,
		IndexService:        config.IndexService,
		PaymentService:      config.PaymentService,
		CashflowService:     config.CashflowService,
		EmailService:        config.EmailService,
		NotificationService: config.NotificationService,
	}
}

// GetDB returns the database querier.
func (s *CommonServices) GetDB() db.Querier {
	return s.db
}

// GetDBPool returns the connection pool, or an error when the services were
// built without one (mock-backed tests).
func (s *CommonServices) GetDBPool() (*pgxpool.Pool, error) {
	if s.dbPool != nil {
		return s.dbPool, nil
	}
	return nil, errors.New("pool not available - please provide DBPool in CommonServicesConfig")
}

// GetLogger returns the shared logger.
func (s *CommonServices) GetLogger() *zap.Logger {
	return s.logger
}

// ErrorResponse represents a standard error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse represents a standard success response.
type SuccessResponse struct {
	Message string `json:"message"`
}

type PaginatedResponse struct {
	Data       interface{} `json:"data"`
	Object     string      `json:"object"`
	HasMore    bool        `json:"has_more"`
	Pagination Pagination  `json:"pagination"`
}

type Pagination struct {
	CurrentPage int `json:"current_page"`
	PerPage     int `json:"per_page"`
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
}

// sendError logs the failure and sends a JSON error response carrying the
// request's correlation ID for debugging.
func sendError(c *gin.Context, statusCode int, message string, err error) {
	correlationID := ""
	if id, exists := c.Get("correlationID"); exists {
		correlationID, _ = id.(string)
	}

	logger.Error(message,
		zap.Error(err),
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.String("correlation_id", correlationID),
	)

	response := struct {
		Error         string `json:"error"`
		CorrelationID string `json:"correlation_id,omitempty"`
	}{
		Error:         message,
		CorrelationID: correlationID,
	}

	c.JSON(statusCode, response)
}

// handleDBError maps database errors to HTTP responses. A missing row is the
// caller's 404; everything else is a 500.
func handleDBError(c *gin.Context, err error, notFoundMsg string) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, pgx.ErrNoRows):
		sendError(c, http.StatusNotFound, notFoundMsg, err)
	default:
		sendError(c, http.StatusInternalServerError, "Internal server error", err)
	}
}

// sendSuccess sends a success response.
func sendSuccess(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// sendSuccessMessage sends a bare message response.
func sendSuccessMessage(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, SuccessResponse{Message: message})
}

// sendList sends an unpaginated list response.
func sendList(c *gin.Context, items interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"object": "list",
		"data":   items,
	})
}

// sendPaginatedSuccess sends a paginated list response.
func sendPaginatedSuccess(c *gin.Context, statusCode int, data interface{}, page, limit, total int) {
	hasMore := (total+limit-1)/limit > page
	c.JSON(statusCode, PaginatedResponse{
		Data:    data,
		Object:  "list",
		HasMore: hasMore,
		Pagination: Pagination{
			CurrentPage: page,
			PerPage:     limit,
			TotalItems:  total,
			TotalPages:  (total + limit - 1) / limit,
		},
	})
}

// requestWorkspaceID resolves the workspace scope of a request. The value set
// by the auth middleware wins; the X-Workspace-ID header is the fallback for
// contexts that bypass it.
func requestWorkspaceID(c *gin.Context) (uuid.UUID, error) {
	workspaceIDStr := c.GetString("workspaceID")
	if workspaceIDStr == "" {
		workspaceIDStr = c.GetHeader("X-Workspace-ID")
	}
	if workspaceIDStr == "" {
		return uuid.Nil, fmt.Errorf("workspace ID not found")
	}
	return uuid.Parse(workspaceIDStr)
}

// requestAccountID resolves the authenticated account set by the auth
// middleware.
func requestAccountID(c *gin.Context) (uuid.UUID, error) {
	accountIDStr := c.GetString("accountID")
	if accountIDStr == "" {
		return uuid.Nil, fmt.Errorf("account ID not found")
	}
	return uuid.Parse(accountIDStr)
}
