package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"accountd/config"
	"accountd/internal/domain/service"

	"github.com/pkg/errors"
)

// smtpSender delivers mail directly through an SMTP relay.
type smtpSender struct {
	host     string
	port     int
	username string
	password string
	from     string
	logger   *slog.Logger
}

// NewSMTPSender creates an SMTP-backed sender.
func NewSMTPSender(cfg *config.MailConfig, logger *slog.Logger) service.MailSender {
	return &smtpSender{
		host:     cfg.SMTP.Host,
		port:     cfg.SMTP.Port,
		username: cfg.SMTP.Username,
		password: cfg.SMTP.Password,
		from:     cfg.From,
		logger:   logger,
	}
}

// Send dispatches one message through the relay.
func (s *smtpSender) Send(ctx context.Context, msg *service.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, "context cancelled before send")
	}

	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	addr := fmt.Sprintf("%s:%d", s.host, s.port)
	payload := s.buildPayload(msg)

	if err := smtp.SendMail(addr, auth, s.from, []string{msg.Recipient}, payload); err != nil {
		return errors.Wrap(err, "failed to send mail over smtp")
	}

	s.logger.Debug("[SMTP] Message sent",
		slog.String("recipient", msg.Recipient),
		slog.String("subject", msg.Subject),
	)

	return nil
}

// Close is a no-op; smtp.SendMail opens a connection per message.
func (s *smtpSender) Close() error {
	return nil
}

func (s *smtpSender) buildPayload(msg *service.MailMessage) []byte {
	var b strings.Builder

	body := msg.HTMLBody
	contentType := "text/html; charset=\"UTF-8\""
	if body == "" {
		body = msg.TextBody
		contentType = "text/plain; charset=\"UTF-8\""
	}

	fmt.Fprintf(&b, "From: %s\r\n", s.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.Recipient)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&b, "Content-Type: %s\r\n", contentType)
	b.WriteString("\r\n")
	b.WriteString(body)

	return []byte(b.String())
}
