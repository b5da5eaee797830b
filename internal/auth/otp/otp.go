package otp

import (
	"context"
	"log/slog"
	"time"

	"mentorhub/internal/auth/models"
	dErrors "mentorhub/pkg/domain-errors"
	"mentorhub/pkg/secrets"
)

const defaultTTL = 5 * time.Minute

// AccountStore persists OTP state changes on the admin account.
type AccountStore interface {
	Save(ctx context.Context, account *models.AdminAccount) error
}

// Engine generates, stores (hashed, expiring), and verifies one-time
// passcodes bound to an admin account. Issuing a new passcode always
// invalidates whatever was pending; verification consumes exactly once and
// fails closed on every other path.
type Engine struct {
	store  AccountStore
	ttl    time.Duration
	logger *slog.Logger
	now    func() time.Time
}

type Option func(*Engine)

func WithTTL(ttl time.Duration) Option {
	return func(e *Engine) {
		if ttl > 0 {
			e.ttl = ttl
		}
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithClock overrides the time source. Tests use this to force expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

func New(store AccountStore, opts ...Option) *Engine {
	e := &Engine{
		store: store,
		ttl:   defaultTTL,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.logger == nil {
		e.logger = slog.Default()
	}
	return e
}

// TTL reports how long an issued passcode stays valid.
func (e *Engine) TTL() time.Duration {
	return e.ttl
}

// Issue generates a fresh passcode for the account, overwriting any pending
// one (last write wins), and persists the hashed state. The plaintext code is
// returned exactly once, for delivery; it is never stored.
func (e *Engine) Issue(ctx context.Context, account *models.AdminAccount) (string, error) {
	code, err := secrets.GenerateOTP()
	if err != nil {
		return "", err
	}

	account.OTPHash = secrets.HashOTP(code)
	account.OTPExpiresAt = e.now().Add(e.ttl)
	account.OTPConsumed = false

	if err := e.store.Save(ctx, account); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "failed to persist passcode")
	}

	e.logger.InfoContext(ctx, "otp issued",
		"admin_id", account.ID.String(),
		"expires_at", account.OTPExpiresAt,
	)

	return code, nil
}

// Verify checks a candidate passcode. It fails closed: no pending code,
// expired code, already-consumed code, and wrong code are all the same
// rejection, and the hash comparison runs in constant time on every path so
// the cases are not distinguishable by timing either.
func (e *Engine) Verify(ctx context.Context, account *models.AdminAccount, candidate string) error {
	storedHash := account.OTPHash
	usable := account.HasPendingOTP(e.now())
	if !usable {
		storedHash = ""
	}

	if !secrets.VerifyOTP(candidate, storedHash) {
		return dErrors.New(dErrors.CodeInvalidOTP, "Invalid OTP")
	}

	account.OTPConsumed = true
	if err := e.store.Save(ctx, account); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "failed to consume passcode")
	}

	e.logger.InfoContext(ctx, "otp verified",
		"admin_id", account.ID.String(),
	)

	return nil
}
