// Package service implements the two-factor admin authentication flow:
// password check, emailed one-time passcode, then a signed session token.
package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"mentorhub/internal/audit"
	"mentorhub/internal/auth/models"
	"mentorhub/internal/notifier"
	"mentorhub/internal/platform/metrics"
	"mentorhub/internal/platform/middleware"
)

// AdminStore defines the persistence interface for admin accounts.
// Error Contract: Find methods return sentinel.ErrNotFound (wrapped) when the
// account doesn't exist; Create returns sentinel.ErrAlreadyUsed (wrapped) on
// a duplicate email.
type AdminStore interface {
	Create(ctx context.Context, account *models.AdminAccount) error
	FindByEmail(ctx context.Context, email string) (*models.AdminAccount, error)
	FindByID(ctx context.Context, adminID uuid.UUID) (*models.AdminAccount, error)
}

// OTPEngine issues and verifies one-time passcodes bound to an account.
type OTPEngine interface {
	Issue(ctx context.Context, account *models.AdminAccount) (string, error)
	Verify(ctx context.Context, account *models.AdminAccount, candidate string) error
	TTL() time.Duration
}

// TokenIssuer mints signed session tokens.
type TokenIssuer interface {
	Issue(adminID uuid.UUID, email string) (string, error)
}

// Notifier delivers the passcode email.
type Notifier interface {
	Send(ctx context.Context, msg notifier.Message) error
}

// Lockout throttles repeated failed attempts per account.
type Lockout interface {
	Check(ctx context.Context, identifier string) error
	RecordFailure(ctx context.Context, identifier string) error
	Clear(ctx context.Context, identifier string) error
}

// AuditPublisher records authentication events.
type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

type Service struct {
	admins         AdminStore
	otp            OTPEngine
	tokens         TokenIssuer
	notifier       Notifier
	lockout        Lockout
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLockout enables per-account attempt throttling on login and OTP
// verification. Without it, attempts are unthrottled.
func WithLockout(lockout Lockout) Option {
	return func(s *Service) {
		s.lockout = lockout
	}
}

func NewService(admins AdminStore, otpEngine OTPEngine, tokens TokenIssuer, n Notifier, opts ...Option) *Service {
	svc := &Service{
		admins:   admins,
		otp:      otpEngine,
		tokens:   tokens,
		notifier: n,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc
}

func (s *Service) logAudit(ctx context.Context, event string, subject string, attributes ...any) {
	requestID := middleware.GetRequestID(ctx)
	if requestID != "" {
		attributes = append(attributes, "request_id", requestID)
	}
	args := append(attributes, "event", event, "subject", subject, "log_type", "audit")
	s.logger.InfoContext(ctx, event, args...)

	if s.auditPublisher == nil {
		return
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		Subject: subject,
		Action:  event,
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event", "error", err)
	}
}

// authFailure records a failed attempt in metrics, the audit trail, and the
// lockout counter.
func (s *Service) authFailure(ctx context.Context, reason, email string) {
	s.logger.WarnContext(ctx, string(audit.EventAuthFailed),
		"reason", reason,
		"email", email,
		"request_id", middleware.GetRequestID(ctx),
	)
	if s.metrics != nil {
		s.metrics.AuthFailures.Inc()
	}
	if s.auditPublisher != nil {
		if err := s.auditPublisher.Emit(ctx, audit.Event{
			Subject: email,
			Action:  string(audit.EventAuthFailed),
			Reason:  reason,
		}); err != nil {
			s.logger.ErrorContext(ctx, "failed to emit auth failure audit event", "error", err)
		}
	}
	if s.lockout != nil {
		if err := s.lockout.RecordFailure(ctx, email); err != nil {
			s.logger.ErrorContext(ctx, "failed to record auth failure", "error", err)
		}
	}
}

// checkLockout returns the throttling error for the account, if any.
func (s *Service) checkLockout(ctx context.Context, email string) error {
	if s.lockout == nil {
		return nil
	}
	return s.lockout.Check(ctx, email)
}
