// Package mail contains the outbound mail senders. The provider is picked by
// configuration: direct SMTP delivery, a Pub/Sub hand-off to the mail
// worker, or a no-op sender for local development.
package mail

import (
	"context"
	"log/slog"

	"accountd/config"
	"accountd/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Provider names accepted in configuration.
const (
	ProviderSMTP   = "smtp"
	ProviderPubSub = "pubsub"
)

// noopSender is a no-op implementation when mail delivery is disabled.
type noopSender struct {
	logger *slog.Logger
}

func (s *noopSender) Send(ctx context.Context, msg *service.MailMessage) error {
	s.logger.Debug("[NoopMail] Delivery disabled, dropping message",
		slog.String("recipient", msg.Recipient),
		slog.String("subject", msg.Subject),
	)

	return nil
}

func (s *noopSender) Close() error {
	return nil
}

// SenderParams holds dependencies for MailSender, injected by Fx.
type SenderParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewMailSender creates a MailSender based on configuration.
func NewMailSender(params SenderParams) (service.MailSender, error) {
	cfg := params.Config.Mail
	logger := params.Logger

	// If mail is not configured, return a no-op sender.
	if cfg == nil || cfg.Provider == "" {
		logger.Info("Mail not configured, using no-op sender")

		return &noopSender{logger: logger}, nil
	}

	var sender service.MailSender
	var err error

	switch cfg.Provider {
	case ProviderSMTP:
		if cfg.SMTP.Host == "" {
			return nil, errors.New("smtp host is required for smtp provider")
		}
		logger.Info("Using SMTP mail sender",
			slog.String("host", cfg.SMTP.Host),
		)

		sender = NewSMTPSender(cfg, logger)

	case ProviderPubSub:
		if cfg.PubSub.ProjectID == "" {
			return nil, errors.New("project ID is required for pubsub provider")
		}
		if cfg.PubSub.TopicID == "" {
			return nil, errors.New("topic ID is required for pubsub provider")
		}
		logger.Info("Using Pub/Sub mail sender",
			slog.String("project_id", cfg.PubSub.ProjectID),
			slog.String("topic_id", cfg.PubSub.TopicID),
		)

		sender, err = NewPubSubSender(params.Ctx, cfg.PubSub.ProjectID, cfg.PubSub.TopicID, logger)
		if err != nil {
			return nil, err
		}

	default:
		return nil, errors.Errorf("unknown mail provider: %s", cfg.Provider)
	}

	// Register lifecycle hook to close the sender on shutdown.
	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing MailSender")

			return sender.Close()
		},
	})

	return sender, nil
}

// Module provides the mail FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewMailSender),
)
