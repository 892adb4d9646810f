package mail

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	deliverycontext "accountd/internal/delivery/context"
	"accountd/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// pubsubSender hands messages to the mail worker through Google Cloud Pub/Sub.
type pubsubSender struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	logger    *slog.Logger
}

// NewPubSubSender creates a Pub/Sub backed sender.
func NewPubSubSender(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.MailSender, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	// Check if topic exists using TopicAdminClient
	topicPath := fmt.Sprintf("projects/%s/topics/%s", projectID, topicID)
	_, err = client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{
		Topic: topicPath,
	})
	if err != nil {
		client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicID)
	}

	publisher := client.Publisher(topicID)

	logger.Info("Pub/Sub mail sender initialized",
		slog.String("project_id", projectID),
		slog.String("topic_id", topicID),
	)

	return &pubsubSender{
		client:    client,
		publisher: publisher,
		logger:    logger,
	}, nil
}

// Send publishes one message for the mail worker to deliver.
func (s *pubsubSender) Send(ctx context.Context, msg *service.MailMessage) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	attributes := map[string]string{
		"recipient": msg.Recipient,
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		attributes["request_id"] = requestID
	}

	result := s.publisher.Publish(ctx, &pubsub.Message{
		Data:       data,
		Attributes: attributes,
	})

	serverID, err := result.Get(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	s.logger.Debug("[PubSubMail] Message published",
		slog.String("recipient", msg.Recipient),
		slog.String("server_id", serverID),
	)

	return nil
}

// Close releases Pub/Sub client resources.
func (s *pubsubSender) Close() error {
	if s.publisher != nil {
		s.publisher.Stop()
	}
	if s.client != nil {
		return errors.WithStack(s.client.Close())
	}

	return nil
}
