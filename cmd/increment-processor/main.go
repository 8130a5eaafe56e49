package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/ingagustinmarcel/prop-flow/internal/client/aws"
	"github.com/ingagustinmarcel/prop-flow/internal/client/indec"
	"github.com/ingagustinmarcel/prop-flow/internal/constants"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

// Application holds all dependencies for the Lambda handler
type Application struct {
	notificationService *services.NotificationService
	windowDays          int
}

// HandleRequest scans active leases for rent increments landing inside the
// notice window and queues a notice per upcoming increment. Runs on a daily
// schedule; already-noticed increments are skipped, so re-runs are safe.
func (app *Application) HandleRequest(ctx context.Context) error {
	logger.Info("Starting upcoming increment scan",
		zap.Int("window_days", app.windowDays))

	queued, err := app.notificationService.QueueUpcomingNotices(ctx, time.Now().UTC(), app.windowDays)
	if err != nil {
		logger.Error("Error scanning for upcoming increments", zap.Error(err))
		return fmt.Errorf("HandleRequest: error from QueueUpcomingNotices: %w", err)
	}

	logger.Info("Upcoming increment scan finished",
		zap.Int("notices_queued", queued))
	return nil
}

func main() {
	// Load .env file for local development
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v. Proceeding with environment variables/secrets.", err)
	}

	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = helpers.StageLocal
		log.Printf("Warning: STAGE environment variable not set, defaulting to '%s'", stage)
	}
	if !helpers.IsValidStage(stage) {
		log.Fatalf("Invalid STAGE environment variable: '%s'. Must be one of: %s, %s, %s",
			stage, helpers.StageProd, helpers.StageDev, helpers.StageLocal)
	}

	// Initialize logger (AFTER stage validation)
	logger.InitLogger(stage)
	logger.Info("Lambda Cold Start: Initializing increment processor for stage", zap.String("stage", stage))
	defer func() {
		// Sync logger before exit (important for Lambda)
		_ = logger.Sync()
	}()

	ctx := context.Background()

	// --- Initialize AWS Secrets Manager Client ---
	secretsClient, err := awsclient.NewSecretsManagerClient(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize AWS Secrets Manager client", zap.Error(err))
	}

	// --- Database Connection Setup ---
	dsn := resolveDatabaseDSN(ctx, stage, secretsClient)

	// --- Database Pool Initialization ---
	poolConfig, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		logger.Fatal("Unable to parse database DSN", zap.Error(err))
	}
	poolConfig.MaxConns = 5
	poolConfig.MinConns = 1
	poolConfig.MaxConnLifetime = time.Hour
	poolConfig.MaxConnIdleTime = time.Minute * 15
	connPool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		logger.Fatal("Unable to create connection pool", zap.Error(err))
	}
	// Do NOT defer connPool.Close() here; the pool persists for warm starts.

	dbQueries := db.New(connPool)

	// --- Notice Queue Setup ---
	// Deployed stages dispatch each notice to SQS for the notification
	// processor. Locally there is no queue; notices stay queued in the
	// database until the notification processor sweeps them.
	var queue services.NoticeQueue
	queueURL := os.Getenv("NOTICE_QUEUE_URL")
	if stage == helpers.StageProd || stage == helpers.StageDev {
		if queueURL == "" {
			logger.Fatal("NOTICE_QUEUE_URL environment variable is required in deployed stages")
		}
		sqsClient, err := awsclient.NewSQSClient(ctx, queueURL)
		if err != nil {
			logger.Fatal("Failed to initialize SQS client", zap.Error(err))
		}
		queue = sqsClient
	} else if queueURL != "" {
		sqsClient, err := awsclient.NewSQSClient(ctx, queueURL)
		if err != nil {
			logger.Warn("Failed to initialize SQS client, notices will stay queued", zap.Error(err))
		} else {
			queue = sqsClient
		}
	}

	// --- Notice Window ---
	windowDays := constants.DefaultNoticeWindowDays
	if windowEnv := os.Getenv("NOTICE_WINDOW_DAYS"); windowEnv != "" {
		parsed, err := strconv.Atoi(windowEnv)
		if err != nil || parsed <= 0 {
			logger.Fatal("Invalid NOTICE_WINDOW_DAYS environment variable", zap.String("value", windowEnv))
		}
		windowDays = parsed
	}

	// --- Create Services and Application Struct ---
	indexService := services.NewIndexService(dbQueries, indec.NewClient())
	leaseService := services.NewLeaseService(dbQueries, connPool, indexService)
	app := &Application{
		notificationService: services.NewNotificationService(dbQueries, leaseService, nil, queue),
		windowDays:          windowDays,
	}

	if stage == helpers.StageLocal {
		if err := app.HandleRequest(ctx); err != nil {
			logger.Fatal("Error in HandleRequest", zap.Error(err))
		}
		return
	}

	// --- Start the Lambda Handler ---
	lambda.Start(app.HandleRequest)
}

// resolveDatabaseDSN builds the connection string. Deployed stages read the
// managed credentials from Secrets Manager; local runs use DATABASE_URL.
func resolveDatabaseDSN(ctx context.Context, stage string, secretsClient *awsclient.SecretsManagerClient) string {
	if stage == helpers.StageProd || stage == helpers.StageDev {
		logger.Info("Running in deployed stage, fetching DB credentials from Secrets Manager", zap.String("stage", stage))
		dbEndpoint := os.Getenv("DB_HOST")
		dbName := os.Getenv("DB_NAME")
		dbSecretArn := os.Getenv("RDS_SECRET_ARN")
		dbSSLMode := os.Getenv("DB_SSLMODE")

		if dbEndpoint == "" || dbName == "" || dbSecretArn == "" {
			logger.Fatal("Missing required DB environment variables for deployed environment (DB_HOST, DB_NAME, RDS_SECRET_ARN)")
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
			logger.Fatal("Failed to retrieve or parse RDS secret", zap.Error(err), zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}
		if secretData.Username == "" || secretData.Password == "" {
			logger.Fatal("Username or password not found in RDS secret data", zap.String("secretArnEnvVar", "RDS_SECRET_ARN"))
		}
		return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
			url.QueryEscape(secretData.Username), url.QueryEscape(secretData.Password),
			dbEndpoint, dbName, dbSSLMode)
	}

	// Local
	logger.Info("Running in local stage, using DATABASE_URL from env/secrets")
	dsn, err := secretsClient.GetSecretString(ctx, "DATABASE_URL_ARN", "DATABASE_URL")
	if err != nil {
		logger.Fatal("Failed to get DATABASE_URL", zap.Error(err))
	}
	if dsn == "" {
		logger.Fatal("DATABASE_URL is required for local development and not found")
	}
	return dsn
}
