package server

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/ingagustinmarcel/prop-flow/docs" // This will be generated
	"github.com/ingagustinmarcel/prop-flow/internal/auth"
	awsclient "github.com/ingagustinmarcel/prop-flow/internal/client/aws"
	"github.com/ingagustinmarcel/prop-flow/internal/client/indec"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/handlers"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
	"github.com/ingagustinmarcel/prop-flow/internal/middleware"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

// Handler Definitions
var (
	accountHandler     *handlers.AccountHandler
	apiKeyHandler      *handlers.APIKeyHandler
	workspaceHandler   *handlers.WorkspaceHandler
	tenantHandler      *handlers.TenantHandler
	propertyHandler    *handlers.PropertyHandler
	unitHandler        *handlers.UnitHandler
	leaseHandler       *handlers.LeaseHandler
	paymentHandler     *handlers.PaymentHandler
	expenseHandler     *handlers.ExpenseHandler
	maintenanceHandler *handlers.MaintenanceHandler
	indexHandler       *handlers.IndexHandler
	dashboardHandler   *handlers.DashboardHandler
	healthHandler      *handlers.HealthHandler

	authClient *auth.AuthClient

	// Database
	dbQueries *db.Queries
)

func InitializeHandlers() {
	ctx := context.Background()
	stage := helpers.GetStage()

	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	dsn := resolveDatabaseDSN(ctx, stage, secretsClient)

	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database connection string", zap.Error(err))
	}

	// Configure the connection pool
	poolConfig.MaxConns = 20
	poolConfig.MinConns = 5
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 30

	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}

	// Create queries instance with the connection pool
	dbQueries = db.New(connPool)

	// Index series client, overridable for staging runs against a fixture
	// server
	var indecOptions []indec.Option
	if baseURL := os.Getenv("INDEC_API_BASE_URL"); baseURL != "" {
		indecOptions = append(indecOptions, indec.WithBaseURL(baseURL))
	}
	if seriesID := os.Getenv("INDEC_SERIES_ID"); seriesID != "" {
		indecOptions = append(indecOptions, indec.WithSeriesID(seriesID))
	}
	indecClient := indec.NewClient(indecOptions...)

	indexService := services.NewIndexService(dbQueries, indecClient)
	leaseService := services.NewLeaseService(dbQueries, connPool, indexService)
	paymentService := services.NewPaymentService(dbQueries)
	cashflowService := services.NewCashflowService(dbQueries)

	emailService := initializeEmailService(ctx, secretsClient)

	// The mailer stays a nil interface when email is not configured;
	// notices then queue without delivery.
	var mailer services.NoticeMailer
	if emailService != nil {
		mailer = emailService
	}
	notificationService := services.NewNotificationService(dbQueries, leaseService, mailer, nil)

	authClient = auth.NewAuthClient()

	commonServices := handlers.NewCommonServices(handlers.CommonServicesConfig{
		DB:                  dbQueries,
		DBPool:              connPool,
		Logger:              logger.Log,
		LeaseService:        leaseService,
		IndexService:        indexService,
		PaymentService:      paymentService,
		CashflowService:     cashflowService,
		EmailService:        emailService,
		NotificationService: notificationService,
	})

	// API Handler initialization
	accountHandler = handlers.NewAccountHandler(commonServices)
	apiKeyHandler = handlers.NewAPIKeyHandler(commonServices)
	workspaceHandler = handlers.NewWorkspaceHandler(commonServices)
	tenantHandler = handlers.NewTenantHandler(commonServices)
	propertyHandler = handlers.NewPropertyHandler(commonServices)
	unitHandler = handlers.NewUnitHandler(commonServices)
	leaseHandler = handlers.NewLeaseHandler(commonServices)
	paymentHandler = handlers.NewPaymentHandler(commonServices)
	expenseHandler = handlers.NewExpenseHandler(commonServices)
	maintenanceHandler = handlers.NewMaintenanceHandler(commonServices)
	indexHandler = handlers.NewIndexHandler(commonServices)
	dashboardHandler = handlers.NewDashboardHandler(commonServices)
	healthHandler = handlers.NewHealthHandler(commonServices)
}

func InitializeRoutes(router *gin.Engine) {
	stage := helpers.GetStage()

	// Configure and apply CORS middleware
	router.Use(configureCORS())

	router.Use(middleware.CorrelationID())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.EnhancedLogging(stage == helpers.StageLocal))
	router.Use(middleware.DefaultRateLimiter.Middleware())

	// Add Swagger endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health checks
	router.GET("/healthz", healthHandler.Healthz)
	router.GET("/readyz", healthHandler.Readyz)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// No public routes for now

		// Protected routes (authentication required)
		protected := v1.Group("/")
		protected.Use(authClient.EnsureValidAPIKeyOrToken(dbQueries))
		{
			// Current Account routes
			protected.GET("/accounts/me", accountHandler.GetCurrentAccount)

			// API Keys
			apiKeys := protected.Group("/api-keys")
			{
				apiKeys.GET("", apiKeyHandler.ListAPIKeys)
				apiKeys.POST("", middleware.StrictRateLimiter.Middleware(), apiKeyHandler.CreateAPIKey)
				apiKeys.DELETE("/:key_id", apiKeyHandler.RevokeAPIKey)
			}

			// Workspaces
			workspaces := protected.Group("/workspaces")
			{
				workspaces.GET("", workspaceHandler.ListWorkspaces)
				workspaces.POST("", workspaceHandler.CreateWorkspace)
				workspaces.GET("/:workspace_id", workspaceHandler.GetWorkspace)
				workspaces.GET("/:workspace_id/members", workspaceHandler.ListMembers)
				workspaces.POST("/:workspace_id/members", workspaceHandler.AddMember)
			}

			// Tenants
			tenants := protected.Group("/tenants")
			{
				tenants.GET("", tenantHandler.ListTenants)
				tenants.POST("", tenantHandler.CreateTenant)
				tenants.GET("/:tenant_id", tenantHandler.GetTenant)
				tenants.PUT("/:tenant_id", tenantHandler.UpdateTenant)
				tenants.DELETE("/:tenant_id", tenantHandler.DeleteTenant)
			}

			// Properties
			properties := protected.Group("/properties")
			{
				properties.GET("", propertyHandler.ListProperties)
				properties.POST("", propertyHandler.CreateProperty)
				properties.GET("/:property_id", propertyHandler.GetProperty)
				properties.PUT("/:property_id", propertyHandler.UpdateProperty)
				properties.DELETE("/:property_id", propertyHandler.DeleteProperty)
				properties.GET("/:property_id/units", propertyHandler.ListPropertyUnits)
			}

			// Units
			units := protected.Group("/units")
			{
				units.GET("", unitHandler.ListUnits)
				units.POST("", unitHandler.CreateUnit)
				units.GET("/:unit_id", unitHandler.GetUnit)
				units.PUT("/:unit_id", unitHandler.UpdateUnit)
				units.DELETE("/:unit_id", unitHandler.DeleteUnit)
			}

			// Leases and the escalation schedule
			leases := protected.Group("/leases")
			{
				leases.GET("", leaseHandler.ListLeases)
				leases.POST("", leaseHandler.CreateLease)
				leases.GET("/:lease_id", leaseHandler.GetLease)
				leases.PUT("/:lease_id", leaseHandler.UpdateLease)
				leases.POST("/:lease_id/end", leaseHandler.EndLease)
				leases.GET("/:lease_id/schedule", leaseHandler.GetSchedule)
				leases.GET("/:lease_id/next-increment", leaseHandler.GetNextIncrement)
				leases.PUT("/:lease_id/rent-override", leaseHandler.SetRentOverride)
				leases.DELETE("/:lease_id/rent-override", leaseHandler.ClearRentOverride)
				leases.POST("/:lease_id/apply-increment", leaseHandler.ApplyIncrement)
			}

			// Payments
			payments := protected.Group("/payments")
			{
				payments.GET("", paymentHandler.ListPayments)
				payments.POST("", paymentHandler.RecordPayment)
				payments.GET("/:payment_id", paymentHandler.GetPayment)
				payments.POST("/:payment_id/resend-receipt", paymentHandler.ResendReceipt)
			}

			// Expenses
			expenses := protected.Group("/expenses")
			{
				expenses.GET("", expenseHandler.ListExpenses)
				expenses.POST("", expenseHandler.CreateExpense)
				expenses.GET("/:expense_id", expenseHandler.GetExpense)
				expenses.DELETE("/:expense_id", expenseHandler.DeleteExpense)
			}

			// Maintenance requests
			maintenance := protected.Group("/maintenance-requests")
			{
				maintenance.GET("", maintenanceHandler.ListMaintenanceRequests)
				maintenance.POST("", maintenanceHandler.CreateMaintenanceRequest)
				maintenance.GET("/:request_id", maintenanceHandler.GetMaintenanceRequest)
				maintenance.PATCH("/:request_id/status", maintenanceHandler.UpdateMaintenanceStatus)
			}

			// Inflation index entries. Writes are admin-only; the index is
			// shared across workspaces.
			indexEntries := protected.Group("/index-entries")
			{
				indexEntries.GET("", indexHandler.ListIndexEntries)
				indexEntries.GET("/latest", indexHandler.GetLatestIndexEntry)
				indexEntries.POST("", authClient.RequireRoles("admin"), indexHandler.UpsertIndexEntry)
				indexEntries.DELETE("/:entry_id", authClient.RequireRoles("admin"), indexHandler.DeleteIndexEntry)
				indexEntries.POST("/sync", authClient.RequireRoles("admin"), indexHandler.SyncIndexSeries)
			}

			// Dashboard
			dashboard := protected.Group("/dashboard")
			dashboard.Use(middleware.RelaxedRateLimiter.Middleware())
			{
				dashboard.GET("/cashflow", dashboardHandler.GetCashflow)
				dashboard.GET("/upcoming-increments", dashboardHandler.GetUpcomingIncrements)
			}
		}
	}
}

// resolveDatabaseDSN builds the connection string. Deployed stages read the
// managed credentials from Secrets Manager; local runs use DATABASE_URL.
func resolveDatabaseDSN(ctx context.Context, stage string, secretsClient *awsclient.SecretsManagerClient) string {
	if stage == helpers.StageProd || stage == helpers.StageDev {
		dbHost := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbHost == "" || dbName == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment (DB_HOST, DB_NAME)")
		}
		if dbSSLMode == "" {
			dbSSLMode = "require"
			logger.Warn("DB_SSLMODE not set, defaulting to 'require'")
		}

		type RdsSecret struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		var secretData RdsSecret
		if err := secretsClient.GetSecretJSON(ctx, "RDS_SECRET_ARN", &secretData); err != nil {
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data")
		}

		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbHost, dbName, dbSSLMode)
	}

	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil || dsn == "" {
		logger.Fatal("DATABASE_URL is required and not found", zap.Error(err))
	}
	return dsn
}

// initializeEmailService builds the Resend-backed email service. Returns nil
// when the API key or sender address is not configured; receipts and notices
// are then disabled rather than failing startup.
func initializeEmailService(ctx context.Context, secretsClient *awsclient.SecretsManagerClient) *services.EmailService {
	apiKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || apiKey == "" {
		logger.Warn("Resend API key not configured, email delivery is disabled", zap.Error(err))
		return nil
	}

	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		logger.Warn("EMAIL_FROM_ADDRESS not set, email delivery is disabled")
		return nil
	}

	return services.NewEmailService(apiKey, fromEmail, os.Getenv("EMAIL_FROM_NAME"))
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	// Get allowed origins from environment variable
	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		// Default to localhost if not set
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		// Split and trim the origins
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	// Get allowed methods from environment variable
	methodsEnv := os.Getenv("CORS_ALLOWED_METHODS")
	if methodsEnv == "" {
		corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	} else {
		methods := strings.Split(methodsEnv, ",")
		for i, method := range methods {
			methods[i] = strings.TrimSpace(method)
		}
		corsConfig.AllowMethods = methods
	}

	// Get allowed headers from environment variable
	headersEnv := os.Getenv("CORS_ALLOWED_HEADERS")
	if headersEnv == "" {
		corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-API-Key", "X-Workspace-ID", "X-Correlation-ID"}
	} else {
		headers := strings.Split(headersEnv, ",")
		for i, header := range headers {
			headers[i] = strings.TrimSpace(header)
		}
		corsConfig.AllowHeaders = headers
	}

	// Get exposed headers from environment variable
	exposedHeadersEnv := os.Getenv("CORS_EXPOSED_HEADERS")
	if exposedHeadersEnv != "" {
		exposedHeaders := strings.Split(exposedHeadersEnv, ",")
		for i, header := range exposedHeaders {
			exposedHeaders[i] = strings.TrimSpace(header)
		}
		corsConfig.ExposeHeaders = exposedHeaders
	}

	// Set credentials allowed
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
