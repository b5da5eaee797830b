// Package service implements the moderation workflows: approve or reject
// mentor applications, delete users, toggle top-mentor status, and replace
// the site banner. Every workflow commits its database mutation first and
// then attempts a best-effort email notification.
package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"mentorhub/internal/audit"
	"mentorhub/internal/moderation/models"
	"mentorhub/internal/notifier"
	"mentorhub/internal/platform/metrics"
	"mentorhub/internal/platform/middleware"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
)

// UserStore defines the persistence interface for platform users.
// Error Contract: Find and Delete return sentinel.ErrNotFound (wrapped) when
// the entity doesn't exist.
type UserStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// MentorStore defines the persistence interface for mentor profiles.
// Error Contract: Find, Save, and Delete return sentinel.ErrNotFound
// (wrapped) when the entity doesn't exist.
type MentorStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Mentor, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*models.Mentor, error)
	Save(ctx context.Context, mentor *models.Mentor) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// BannerStore defines the persistence interface for the site banner.
type BannerStore interface {
	Replace(ctx context.Context, banner *models.Banner) error
	Active(ctx context.Context) (*models.Banner, error)
}

// Notifier delivers templated email to affected parties.
type Notifier interface {
	Send(ctx context.Context, msg notifier.Message) error
}

// AuditPublisher records moderation actions for compliance.
type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

type Service struct {
	users          UserStore
	mentors        MentorStore
	banners        BannerStore
	notifier       Notifier
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
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

// WithTracer injects a pre-configured tracer. Defaults to the global
// provider's tracer.
func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

func NewService(users UserStore, mentors MentorStore, banners BannerStore, n Notifier, opts ...Option) *Service {
	svc := &Service{
		users:    users,
		mentors:  mentors,
		banners:  banners,
		notifier: n,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	if svc.tracer == nil {
		svc.tracer = otel.Tracer("mentorhub/moderation")
	}
	return svc
}

// parseSubjectID turns an externally supplied identifier into a UUID. A
// malformed id is reported exactly like a missing record so that the shape of
// valid identifiers cannot be probed.
func parseSubjectID(raw, subject string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeNotFound, subject+" not found")
	}
	return id, nil
}

// resolveMentor looks up a mentor by raw id, mapping both parse and lookup
// failures to NotFound.
func (s *Service) resolveMentor(ctx context.Context, rawID string) (*models.Mentor, error) {
	mentorID, err := parseSubjectID(rawID, "mentor")
	if err != nil {
		return nil, err
	}
	mentor, err := s.mentors.FindByID(ctx, mentorID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return nil, dErrors.New(dErrors.CodeNotFound, "mentor not found")
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup mentor")
	}
	return mentor, nil
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
	var adminID string
	if principal, ok := middleware.GetPrincipal(ctx); ok {
		adminID = principal.AdminID.String()
	}
	if err := s.auditPublisher.Emit(ctx, audit.Event{
		AdminID: adminID,
		Subject: subject,
		Action:  event,
	}); err != nil {
		s.logger.ErrorContext(ctx, "failed to emit audit event", "error", err)
	}
}
