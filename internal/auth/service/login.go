package service

import (
	"context"
	"errors"

	"mentorhub/internal/audit"
	"mentorhub/internal/auth/models"
	"mentorhub/internal/notifier"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
	"mentorhub/pkg/secrets"
)

// invalidCredentialsMessage is shared by "unknown email" and "wrong password"
// so responses cannot be used to enumerate accounts.
const invalidCredentialsMessage = "Invalid email or password"

// Login checks the password and, on success, emails a one-time passcode. The
// response says only that an email went out; the passcode itself never
// appears in it.
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResult, error) {
	if err := s.checkLockout(ctx, req.Email); err != nil {
		return nil, err
	}

	account, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.authFailure(ctx, "unknown email", req.Email)
			s.countLogin("failure")
			return nil, dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup account")
	}

	if err := secrets.VerifyPassword(req.Password, account.PasswordHash); err != nil {
		s.authFailure(ctx, "wrong password", req.Email)
		s.countLogin("failure")
		return nil, dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMessage)
	}

	code, err := s.otp.Issue(ctx, account)
	if err != nil {
		return nil, err
	}
	if s.metrics != nil {
		s.metrics.OTPIssued.Inc()
	}
	s.logAudit(ctx, string(audit.EventOTPIssued), account.ID.String(),
		"email", account.Email,
	)

	// The passcode only exists in this email; if delivery fails the login
	// cannot proceed, so this failure is fatal for the attempt. The persisted
	// OTP state stays behind and is simply overwritten by the next login.
	err = s.notifier.Send(ctx, notifier.Message{
		To:       account.Email,
		Template: notifier.TemplateAdminOTP,
		Vars: map[string]string{
			"otp": code,
			"ttl": s.otp.TTL().String(),
		},
	})
	if err != nil {
		s.countLogin("failure")
		return nil, dErrors.Wrap(err, dErrors.CodeNotificationFailed,
			"Failed to send the verification email, please try again")
	}

	s.countLogin("success")
	return &models.LoginResult{
		Message: "A verification code has been sent to your email",
		Email:   account.Email,
	}, nil
}

func (s *Service) countLogin(outcome string) {
	if s.metrics != nil {
		s.metrics.LoginAttempts.WithLabelValues(outcome).Inc()
	}
}
