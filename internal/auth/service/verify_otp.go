package service

import (
	"context"
	"errors"

	"mentorhub/internal/audit"
	"mentorhub/internal/auth/models"
	"mentorhub/internal/sentinel"
	dErrors "mentorhub/pkg/domain-errors"
)

// VerifyOTP exchanges a pending passcode for a session token. The account
// lookup failure is indistinguishable from bad credentials, and the passcode
// check itself fails closed inside the OTP engine.
func (s *Service) VerifyOTP(ctx context.Context, req *models.VerifyOTPRequest) (*models.VerifyOTPResult, error) {
	if err := s.checkLockout(ctx, req.Email); err != nil {
		return nil, err
	}

	account, err := s.admins.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			s.authFailure(ctx, "unknown email", req.Email)
			s.countOTPVerified("failure")
			return nil, dErrors.New(dErrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to lookup account")
	}

	if err := s.otp.Verify(ctx, account, req.OTP); err != nil {
		if dErrors.HasCode(err, dErrors.CodeInvalidOTP) {
			s.authFailure(ctx, "invalid otp", req.Email)
			s.countOTPVerified("failure")
		}
		return nil, err
	}
	s.countOTPVerified("success")
	s.logAudit(ctx, string(audit.EventOTPVerified), account.ID.String(),
		"email", account.Email,
	)

	token, err := s.tokens.Issue(account.ID, account.Email)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to issue session token")
	}
	if s.metrics != nil {
		s.metrics.SessionsIssued.Inc()
	}
	s.logAudit(ctx, string(audit.EventSessionIssued), account.ID.String())

	// Fully authenticated; past failures no longer count against the account.
	if s.lockout != nil {
		if err := s.lockout.Clear(ctx, req.Email); err != nil {
			s.logger.ErrorContext(ctx, "failed to clear auth failures", "error", err)
		}
	}

	return &models.VerifyOTPResult{
		Message:      "Login successful",
		Admin:        account.Profile(),
		SessionToken: token,
	}, nil
}

func (s *Service) countOTPVerified(outcome string) {
	if s.metrics != nil {
		s.metrics.OTPVerified.WithLabelValues(outcome).Inc()
	}
}
