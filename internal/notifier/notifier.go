// Package notifier sends templated transactional email. Delivery outcome is
// always reported to the caller; workflows decide what a failure means.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"mentorhub/internal/platform/config"
	"mentorhub/internal/platform/metrics"
	dErrors "mentorhub/pkg/domain-errors"
)

// Template identifies a message template.
type Template string

const (
	TemplateAdminOTP       Template = "admin_otp"
	TemplateMentorApproved Template = "mentor_approved"
	TemplateMentorRejected Template = "mentor_rejected"
	TemplateAccountDeleted Template = "account_deleted"
	TemplateTopMentor      Template = "top_mentor_status"
)

// Message is a rendered-template request addressed to one recipient.
type Message struct {
	To       string
	Template Template
	Vars     map[string]string
}

// Sender delivers a single email through a concrete provider.
type Sender interface {
	Send(ctx context.Context, from, to, subject, body string) error
}

// Notifier renders templates and hands them to the configured provider.
type Notifier struct {
	sender  Sender
	from    string
	logger  *slog.Logger
	metrics *metrics.Metrics
}

type Option func(*Notifier)

func WithLogger(logger *slog.Logger) Option {
	return func(n *Notifier) {
		n.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(n *Notifier) {
		n.metrics = m
	}
}

func New(sender Sender, from string, opts ...Option) *Notifier {
	n := &Notifier{
		sender: sender,
		from:   from,
	}
	for _, opt := range opts {
		opt(n)
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

// NewSenderFromConfig selects a provider implementation by configuration.
func NewSenderFromConfig(cfg config.Email, logger *slog.Logger) (Sender, error) {
	switch cfg.Provider {
	case "smtp":
		return newSMTPSender(cfg)
	case "mailgun":
		return newMailgunSender(cfg)
	case "log":
		return &logSender{logger: logger}, nil
	default:
		return nil, fmt.Errorf("unknown email provider %q", cfg.Provider)
	}
}

// Send renders the message template and delivers it. A failure is returned as
// a plain error; callers wrap it into whatever domain error their contract
// requires.
func (n *Notifier) Send(ctx context.Context, msg Message) error {
	subject, body, err := render(msg.Template, msg.Vars)
	if err != nil {
		return err
	}

	if err := n.sender.Send(ctx, n.from, msg.To, subject, body); err != nil {
		n.logger.ErrorContext(ctx, "email delivery failed",
			"template", string(msg.Template),
			"to", msg.To,
			"error", err,
		)
		return fmt.Errorf("send %s email: %w", msg.Template, err)
	}

	if n.metrics != nil {
		n.metrics.EmailsSent.WithLabelValues(string(msg.Template)).Inc()
	}
	n.logger.InfoContext(ctx, "email sent",
		"template", string(msg.Template),
		"to", msg.To,
	)
	return nil
}

func render(tmpl Template, vars map[string]string) (subject, body string, err error) {
	get := func(key string) string { return vars[key] }
	switch tmpl {
	case TemplateAdminOTP:
		return "Your MentorHub admin verification code",
			fmt.Sprintf("Your one-time passcode is %s. It expires in %s and can be used once.",
				get("otp"), get("ttl")), nil
	case TemplateMentorApproved:
		return "Your mentor application was approved",
			fmt.Sprintf("Hi %s, congratulations! Your mentor application has been approved and your profile is now live.",
				get("name")), nil
	case TemplateMentorRejected:
		return "Update on your mentor application",
			fmt.Sprintf("Hi %s, we are sorry to let you know that your mentor application was not approved and your account has been removed.",
				get("name")), nil
	case TemplateAccountDeleted:
		return "Your MentorHub account was removed",
			fmt.Sprintf("Hi %s, your account has been removed by an administrator. If you believe this is a mistake, contact support.",
				get("name")), nil
	case TemplateTopMentor:
		return "Your top mentor status changed",
			fmt.Sprintf("Hi %s, your top mentor status is now: %s.",
				get("name"), get("status")), nil
	default:
		return "", "", dErrors.New(dErrors.CodeInternal, fmt.Sprintf("unknown email template %q", tmpl))
	}
}

// logSender is the development provider: it records the message instead of
// delivering it.
type logSender struct {
	logger *slog.Logger
}

func (s *logSender) Send(ctx context.Context, from, to, subject, _ string) error {
	s.logger.InfoContext(ctx, "email (log provider, not delivered)",
		"from", from,
		"to", to,
		"subject", subject,
	)
	return nil
}
