package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"mentorhub/internal/platform/config"
)

// smtpSender delivers mail through a plain SMTP relay.
type smtpSender struct {
	host     string
	port     string
	username string
	password string
}

func newSMTPSender(cfg config.Email) (*smtpSender, error) {
	if cfg.SMTPHost == "" || cfg.SMTPPort == "" {
		return nil, fmt.Errorf("smtp host and port are required")
	}
	return &smtpSender{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}, nil
}

func (s *smtpSender) Send(_ context.Context, from, to, subject, body string) error {
	var auth smtp.Auth
	if s.username != "" {
		auth = smtp.PlainAuth("", s.username, s.password, s.host)
	}

	msg := fmt.Appendf(nil, "From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n", from, to, subject, body)

	addr := fmt.Sprintf("%s:%s", s.host, s.port)
	if err := smtp.SendMail(addr, auth, from, []string{to}, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
