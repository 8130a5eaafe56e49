package main

import (
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	awsclient "github.com/ingagustinmarcel/prop-flow/internal/client/aws"
	"github.com/ingagustinmarcel/prop-flow/internal/client/indec"
	"github.com/ingagustinmarcel/prop-flow/internal/db"
	"github.com/ingagustinmarcel/prop-flow/internal/helpers"
	"github.com/ingagustinmarcel/prop-flow/internal/logger"
	"github.com/ingagustinmarcel/prop-flow/internal/services"
)

// Application holds all dependencies for the notification processor Lambda
// handler
type Application struct {
	notificationService *services.NotificationService
}

// HandleSQSEvent delivers increment notices queued by the increment
// processor.
func (app *Application) HandleSQSEvent(ctx context.Context, event events.SQSEvent) error {
	logger.Info("Notification processor handling SQS event",
		zap.Int("record_count", len(event.Records)))

	for _, record := range event.Records {
		if err := app.processNoticeRecord(ctx, record); err != nil {
			logger.Error("Failed to process notice record",
				zap.String("message_id", record.MessageId),
				zap.Error(err))
			// Return the error so SQS retries the failed message; notices
			// already delivered in this batch are skipped on redelivery.
			return fmt.Errorf("failed to process message %s: %w", record.MessageId, err)
		}
	}

	logger.Info("Successfully processed all notice records",
		zap.Int("count", len(event.Records)))
	return nil
}

// processNoticeRecord delivers a single queued notice.
func (app *Application) processNoticeRecord(ctx context.Context, record events.SQSMessage) error {
	var msg services.NoticeMessage
	if err := json.Unmarshal([]byte(record.Body), &msg); err != nil {
		return fmt.Errorf("failed to unmarshal notice message: %w", err)
	}

	noticeID, err := uuid.Parse(msg.NoticeID)
	if err != nil {
		return fmt.Errorf("invalid notice ID %q: %w", msg.NoticeID, err)
	}

	logger.Info("Delivering increment notice",
		zap.String("notice_id", msg.NoticeID),
		zap.String("lease_id", msg.LeaseID),
		zap.String("workspace_id", msg.WorkspaceID))

	return app.notificationService.DeliverNotice(ctx, noticeID)
}

// LocalHandleRequest sweeps every queued notice once. Local runs have no SQS
// queue between the increment scan and delivery.
func (app *Application) LocalHandleRequest(ctx context.Context) error {
	delivered, err := app.notificationService.DeliverQueued(ctx)
	if err != nil {
		return err
	}
	logger.Info("Local notice sweep finished", zap.Int("delivered", delivered))
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
	logger.Info("Lambda Cold Start: Initializing notification processor for stage", zap.String("stage", stage))
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

	// --- Email Service ---
	// The delivery worker cannot run without a mailer.
	resendAPIKey, err := secretsClient.GetSecretString(ctx, "RESEND_API_KEY_ARN", "RESEND_API_KEY")
	if err != nil || resendAPIKey == "" {
		logger.Fatal("Failed to get Resend API key", zap.Error(err))
	}
	fromEmail := os.Getenv("EMAIL_FROM_ADDRESS")
	if fromEmail == "" {
		logger.Fatal("EMAIL_FROM_ADDRESS environment variable is required and not set")
	}
	emailService := services.NewEmailService(resendAPIKey, fromEmail, os.Getenv("EMAIL_FROM_NAME"))

	// --- Create Services and Application Struct ---
	indexService := services.NewIndexService(dbQueries, indec.NewClient())
	leaseService := services.NewLeaseService(dbQueries, connPool, indexService)
	app := &Application{
		notificationService: services.NewNotificationService(dbQueries, leaseService, emailService, nil),
	}

	if stage == helpers.StageLocal {
		if err := app.LocalHandleRequest(ctx); err != nil {
			logger.Fatal("Error in LocalHandleRequest", zap.Error(err))
		}
		return
	}

	// --- Start the Lambda Handler ---
	lambda.Start(app.HandleSQSEvent)
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
