package service

import "context"

// MailMessage is one outbound email. Both bodies are optional but at least
// one should be set.
type MailMessage struct {
	Recipient string `json:"recipient"`
	Subject   string `json:"subject"`
	TextBody  string `json:"text_body,omitempty"`
	HTMLBody  string `json:"html_body,omitempty"`
}

// MailSender is the outbound message-send capability. Delivery is
// best-effort: callers log failures but never roll back domain state
// because a message could not be sent.
type MailSender interface {
	// Send dispatches one message.
	Send(ctx context.Context, msg *MailMessage) error

	// Close releases any resources held by the sender.
	Close() error
}
