package aws

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"
	json "github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/logger"
)

// SQSClient wraps the AWS SQS client for a single queue.
type SQSClient struct {
	svc      *sqs.Client
	queueURL string
}

// NewSQSClient creates an SQS client bound to queueURL using the default AWS
// configuration chain.
func NewSQSClient(ctx context.Context, queueURL string) (*SQSClient, error) {
	if queueURL == "" {
		return nil, fmt.Errorf("queue URL is required")
	}

	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("unable to load AWS SDK config: %w", err)
	}

	return &SQSClient{
		svc:      sqs.NewFromConfig(cfg),
		queueURL: queueURL,
	}, nil
}

// QueueURL returns the queue the client sends to
func (c *SQSClient) QueueURL() string {
	return c.queueURL
}

// SendJSONMessage marshals payload and sends it to the queue. Each attribute
// becomes a String message attribute, which consumers can filter on without
// parsing the body.
func (c *SQSClient) SendJSONMessage(ctx context.Context, payload interface{}, attributes map[string]string) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal message payload: %w", err)
	}

	input := &sqs.SendMessageInput{
		QueueUrl:    aws.String(c.queueURL),
		MessageBody: aws.String(string(body)),
	}

	if len(attributes) > 0 {
		input.MessageAttributes = make(map[string]types.MessageAttributeValue, len(attributes))
		for key, value := range attributes {
			input.MessageAttributes[key] = types.MessageAttributeValue{
				DataType:    aws.String("String"),
				StringValue: aws.String(value),
			}
		}
	}

	result, err := c.svc.SendMessage(ctx, input)
	if err != nil {
		return fmt.Errorf("failed to send message to SQS: %w", err)
	}

	logger.Debug("Queued SQS message",
		zap.String("queue_url", c.queueURL),
		zap.Stringp("message_id", result.MessageId))

	return nil
}
