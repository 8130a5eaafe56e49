package aws

import (
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/logger"
)

// SecretsManagerClient wraps the AWS Secrets Manager client.
type SecretsManagerClient struct {
	svc *secretsmanager.Client
	cfg aws.Config
}

// NewSecretsManagerClient creates a Secrets Manager client using the default
// AWS configuration chain (environment, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SecretsManagerClient{
		svc: secretsmanager.NewFromConfig(cfg),
		cfg: cfg,
	}, nil
}

// GetSecretString resolves a plain-text secret. The ARN is read from
// secretArnEnvVar; when that variable is unset or the fetch fails, the value
// of fallbackEnvVar is used directly. Local stages run entirely on the
// fallback.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	secretArn := os.Getenv(secretArnEnvVar)

	if secretArn != "" {
		input := &secretsmanager.GetSecretValueInput{
			SecretId: aws.String(secretArn),
		}

		result, err := c.svc.GetSecretValue(ctx, input)
		if err == nil && result.SecretString != nil && *result.SecretString != "" {
			logger.Debug("Fetched secret from Secrets Manager", zap.String("secretArn", secretArn))
			return *result.SecretString, nil
		}

		logger.Warn("Secrets Manager fetch failed, falling back to env var",
			zap.String("secretArnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err))
	}

	secretValue := os.Getenv(fallbackEnvVar)
	if secretValue != "" {
		return secretValue, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var %q or direct env var %q", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON resolves a JSON secret (the managed database credential
// format) and unmarshals it into target. There is no non-JSON fallback: if
// the Secrets Manager fetch fails, the caller is expected to build its config
// from plain env vars instead.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("secret ARN env var %q is not set", secretArnEnvVar)
	}

	input := &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	}

	result, err := c.svc.GetSecretValue(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to retrieve secret %s: %w", secretArn, err)
	}
	if result.SecretString == nil {
		return fmt.Errorf("secret %s has no string value", secretArn)
	}

	if err := json.Unmarshal([]byte(*result.SecretString), target); err != nil {
		return fmt.Errorf("failed to unmarshal secret %s: %w", secretArn, err)
	}

	logger.Debug("Fetched and parsed JSON secret from Secrets Manager", zap.String("secretArn", secretArn))
	return nil
}
