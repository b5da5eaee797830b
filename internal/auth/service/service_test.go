package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/suite"

	"mentorhub/internal/auth/models"
	"mentorhub/internal/auth/otp"
	adminStore "mentorhub/internal/auth/store/admin"
	"mentorhub/internal/lockout"
	"mentorhub/internal/notifier"
	"mentorhub/internal/token"
	dErrors "mentorhub/pkg/domain-errors"
)

// stubNotifier records sends and can be forced to fail.
type stubNotifier struct {
	sent []notifier.Message
	err  error
}

func (n *stubNotifier) Send(_ context.Context, msg notifier.Message) error {
	if n.err != nil {
		return n.err
	}
	n.sent = append(n.sent, msg)
	return nil
}

// lastOTP returns the passcode from the most recent email.
func (n *stubNotifier) lastOTP() string {
	if len(n.sent) == 0 {
		return ""
	}
	return n.sent[len(n.sent)-1].Vars["otp"]
}

type AuthServiceSuite struct {
	suite.Suite
	ctx      context.Context
	admins   *adminStore.InMemoryStore
	notifier *stubNotifier
	tokens   *token.Service
	svc      *Service
}

func (s *AuthServiceSuite) SetupTest() {
	s.ctx = context.Background()
	s.admins = adminStore.New()
	s.notifier = &stubNotifier{}
	s.tokens = token.NewService("test-signing-key", 0)

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))
	locks, err := lockout.New(lockout.NewInMemoryStore(), lockout.WithLogger(discard))
	s.Require().NoError(err)

	s.svc = NewService(
		s.admins,
		otp.New(s.admins, otp.WithLogger(discard)),
		s.tokens,
		s.notifier,
		WithLogger(discard),
		WithLockout(locks),
	)
}

func TestAuthServiceSuite(t *testing.T) {
	suite.Run(t, new(AuthServiceSuite))
}

func (s *AuthServiceSuite) createAdmin(email, password string) {
	_, err := s.svc.CreateAdmin(s.ctx, &models.CreateAdminRequest{
		Email:    email,
		Password: password,
	})
	s.Require().NoError(err)
}

func (s *AuthServiceSuite) TestCreateAdminDuplicateEmailConflicts() {
	s.createAdmin("a@x.com", "correct-horse")

	_, err := s.svc.CreateAdmin(s.ctx, &models.CreateAdminRequest{
		Email:    "A@X.COM",
		Password: "different-pass",
	})
	s.True(dErrors.HasCode(err, dErrors.CodeConflict))
}

func (s *AuthServiceSuite) TestLoginWrongPasswordAndUnknownEmailLookIdentical() {
	s.createAdmin("a@x.com", "correct-horse")

	_, errWrongPass := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
	_, errNoAccount := s.svc.Login(s.ctx, &models.LoginRequest{Email: "ghost@x.com", Password: "wrong"})

	s.Require().Error(errWrongPass)
	s.Require().Error(errNoAccount)
	s.True(dErrors.HasCode(errWrongPass, dErrors.CodeUnauthorized))
	s.True(dErrors.HasCode(errNoAccount, dErrors.CodeUnauthorized))
	s.Equal(errWrongPass.Error(), errNoAccount.Error())
	s.Empty(s.notifier.sent)
}

func (s *AuthServiceSuite) TestLoginSendsOTPWithoutLeakingIt() {
	s.createAdmin("a@x.com", "correct-horse")

	res, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.Require().NoError(err)
	s.Equal("a@x.com", res.Email)

	s.Require().Len(s.notifier.sent, 1)
	s.Equal(notifier.TemplateAdminOTP, s.notifier.sent[0].Template)
	code := s.notifier.lastOTP()
	s.Len(code, 6)
	s.NotContains(res.Message, code)
}

func (s *AuthServiceSuite) TestLoginFailsWhenOTPEmailCannotBeSent() {
	s.createAdmin("a@x.com", "correct-horse")
	s.notifier.err = errors.New("relay down")

	_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.True(dErrors.HasCode(err, dErrors.CodeNotificationFailed))
}

func (s *AuthServiceSuite) TestFullFlowWrongOTPThenCorrect() {
	s.createAdmin("a@x.com", "correct-horse")

	_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.Require().NoError(err)
	code := s.notifier.lastOTP()

	wrong := "000000"
	if wrong == code {
		wrong = "000001"
	}
	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: wrong})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidOTP))

	// A wrong attempt does not consume the pending passcode.
	res, err := s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: code})
	s.Require().NoError(err)
	s.Equal("a@x.com", res.Admin.Email)
	s.NotEmpty(res.SessionToken)

	adminID, email, err := s.tokens.Validate(res.SessionToken)
	s.Require().NoError(err)
	s.Equal(res.Admin.ID, adminID)
	s.Equal("a@x.com", email)
}

func (s *AuthServiceSuite) TestOTPIsSingleUse() {
	s.createAdmin("a@x.com", "correct-horse")

	_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.Require().NoError(err)
	code := s.notifier.lastOTP()

	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: code})
	s.Require().NoError(err)

	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: code})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidOTP))
}

func (s *AuthServiceSuite) TestSecondLoginInvalidatesFirstOTP() {
	s.createAdmin("a@x.com", "correct-horse")

	_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.Require().NoError(err)
	first := s.notifier.lastOTP()

	_, err = s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.Require().NoError(err)
	second := s.notifier.lastOTP()

	if first == second {
		s.T().Skip("colliding passcodes, cannot distinguish")
	}

	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: first})
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidOTP))

	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: second})
	s.NoError(err)
}

func (s *AuthServiceSuite) TestVerifyOTPUnknownEmailIsUnauthorized() {
	_, err := s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "ghost@x.com", OTP: "123456"})
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *AuthServiceSuite) TestRepeatedFailuresLockTheAccount() {
	s.createAdmin("a@x.com", "correct-horse")

	for range 5 {
		_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
		s.Require().Error(err)
	}

	// Even the correct password is rejected while locked.
	_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.True(dErrors.HasCode(err, dErrors.CodeTooManyRequests))

	// Verification for the same account is throttled too.
	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: "123456"})
	s.True(dErrors.HasCode(err, dErrors.CodeTooManyRequests))
}

func (s *AuthServiceSuite) TestSuccessfulVerifyClearsLockoutCounter() {
	s.createAdmin("a@x.com", "correct-horse")

	for range 4 {
		_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
		s.Require().Error(err)
	}

	_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.Require().NoError(err)
	_, err = s.svc.VerifyOTP(s.ctx, &models.VerifyOTPRequest{Email: "a@x.com", OTP: s.notifier.lastOTP()})
	s.Require().NoError(err)

	// Counter reset: four more failures still leave the account usable.
	for range 4 {
		_, err := s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "wrong"})
		s.Require().Error(err)
	}
	_, err = s.svc.Login(s.ctx, &models.LoginRequest{Email: "a@x.com", Password: "correct-horse"})
	s.NoError(err)
}
