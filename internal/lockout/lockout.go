// Package lockout throttles repeated authentication failures per account.
// A numeric passcode is brute-forceable inside its validity window without
// this, so both the password and the OTP step consult it.
package lockout

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mentorhub/internal/platform/metrics"
	dErrors "mentorhub/pkg/domain-errors"
)

const keyPrefix = "auth"

// Record tracks failures for one identifier inside the current window.
type Record struct {
	Identifier    string
	FailureCount  int
	LastFailureAt time.Time
	LockedUntil   *time.Time
}

// IsLocked reports whether the record is hard-locked at the given instant.
func (r *Record) IsLocked(now time.Time) bool {
	return r.LockedUntil != nil && now.Before(*r.LockedUntil)
}

// Store persists lockout records. Implementations return a nil record (not an
// error) when the identifier has no failures on file.
type Store interface {
	Get(ctx context.Context, identifier string) (*Record, error)
	RecordFailure(ctx context.Context, identifier string) (*Record, error)
	Update(ctx context.Context, record *Record) error
	Clear(ctx context.Context, identifier string) error
}

// Config controls window sizing and the hard lock.
type Config struct {
	AttemptsPerWindow int
	WindowDuration    time.Duration
	HardLockDuration  time.Duration
}

func DefaultConfig() Config {
	return Config{
		AttemptsPerWindow: 5,
		WindowDuration:    15 * time.Minute,
		HardLockDuration:  15 * time.Minute,
	}
}

// Service enforces the lockout policy on top of a Store.
type Service struct {
	store   Store
	config  Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	now     func() time.Time
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithConfig(cfg Config) Option {
	return func(s *Service) {
		s.config = cfg
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithClock overrides the time source. Tests use this to cross the window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

func New(store Store, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, fmt.Errorf("lockout store is required")
	}
	svc := &Service{
		store:  store,
		config: DefaultConfig(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	if svc.logger == nil {
		svc.logger = slog.Default()
	}
	return svc, nil
}

// Check returns a domain error with CodeTooManyRequests when the identifier
// is currently locked; nil means the attempt may proceed.
func (s *Service) Check(ctx context.Context, identifier string) error {
	key := key(identifier)
	record, err := s.store.Get(ctx, key)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to read lockout record")
	}
	if record == nil {
		return nil
	}

	now := s.now()
	if record.IsLocked(now) {
		retryAfter := record.LockedUntil.Sub(now).Round(time.Second)
		s.logger.WarnContext(ctx, "account locked",
			"identifier", identifier,
			"locked_until", record.LockedUntil,
		)
		return dErrors.New(dErrors.CodeTooManyRequests,
			fmt.Sprintf("Too many failed attempts, try again in %s", retryAfter))
	}

	// Stale window: failures older than the window no longer count.
	if now.Sub(record.LastFailureAt) > s.config.WindowDuration {
		if err := s.store.Clear(ctx, key); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to reset lockout window")
		}
	}
	return nil
}

// RecordFailure registers a failed attempt and applies the hard lock once the
// window threshold is crossed. An expired lock does not shield the account:
// as long as the failure count stays at or above the threshold, the next
// failure locks it again.
func (s *Service) RecordFailure(ctx context.Context, identifier string) error {
	record, err := s.store.RecordFailure(ctx, key(identifier))
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to record auth failure")
	}

	if record.FailureCount >= s.config.AttemptsPerWindow && !record.IsLocked(s.now()) {
		lockedUntil := s.now().Add(s.config.HardLockDuration)
		record.LockedUntil = &lockedUntil
		if err := s.store.Update(ctx, record); err != nil {
			return dErrors.Wrap(err, dErrors.CodeInternal, "failed to apply lockout")
		}
		if s.metrics != nil {
			s.metrics.LockoutsEngaged.Inc()
		}
		s.logger.WarnContext(ctx, "lockout triggered",
			"identifier", identifier,
			"failures", record.FailureCount,
			"locked_until", lockedUntil,
		)
	}
	return nil
}

// Clear removes the failure record after a fully successful authentication.
func (s *Service) Clear(ctx context.Context, identifier string) error {
	if err := s.store.Clear(ctx, key(identifier)); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to clear auth failures")
	}
	return nil
}

func key(identifier string) string {
	return fmt.Sprintf("%s:%s", keyPrefix, identifier)
}
