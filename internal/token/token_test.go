package token

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	dErrors "mentorhub/pkg/domain-errors"
)

type TokenSuite struct {
	suite.Suite
	svc *Service
}

func (s *TokenSuite) SetupTest() {
	s.svc = NewService("test-signing-key", 24*time.Hour)
}

func TestTokenSuite(t *testing.T) {
	suite.Run(t, new(TokenSuite))
}

func (s *TokenSuite) TestIssueAndValidate() {
	adminID := uuid.New()

	tok, err := s.svc.Issue(adminID, "admin@mentorhub.io")
	s.Require().NoError(err)
	s.NotEmpty(tok)

	gotID, gotEmail, err := s.svc.Validate(tok)
	s.Require().NoError(err)
	s.Equal(adminID, gotID)
	s.Equal("admin@mentorhub.io", gotEmail)
}

func (s *TokenSuite) TestValidateRejectsGarbage() {
	_, _, err := s.svc.Validate("not-a-token")
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *TokenSuite) TestValidateRejectsForeignKey() {
	other := NewService("different-key", 24*time.Hour)
	tok, err := other.Issue(uuid.New(), "admin@mentorhub.io")
	s.Require().NoError(err)

	_, _, err = s.svc.Validate(tok)
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *TokenSuite) TestValidateRejectsExpired() {
	short := NewService("test-signing-key", time.Nanosecond)
	tok, err := short.Issue(uuid.New(), "admin@mentorhub.io")
	s.Require().NoError(err)

	time.Sleep(10 * time.Millisecond)

	_, _, err = short.Validate(tok)
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *TokenSuite) TestDefaultTTL() {
	svc := NewService("k", 0)
	s.Equal(24*time.Hour, svc.TTL())
}
