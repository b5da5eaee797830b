package notifier

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"mentorhub/internal/platform/config"
)

const mailgunSendTimeout = 30 * time.Second

// mailgunSender delivers mail through the Mailgun API.
type mailgunSender struct {
	client *mailgun.MailgunImpl
}

func newMailgunSender(cfg config.Email) (*mailgunSender, error) {
	if cfg.MailgunDomain == "" || cfg.MailgunAPIKey == "" {
		return nil, fmt.Errorf("mailgun domain and api key are required")
	}
	return &mailgunSender{
		client: mailgun.NewMailgun(cfg.MailgunDomain, cfg.MailgunAPIKey),
	}, nil
}

func (s *mailgunSender) Send(ctx context.Context, from, to, subject, body string) error {
	ctx, cancel := context.WithTimeout(ctx, mailgunSendTimeout)
	defer cancel()

	message := s.client.NewMessage(from, subject, body, to)
	if _, _, err := s.client.Send(ctx, message); err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	return nil
}
