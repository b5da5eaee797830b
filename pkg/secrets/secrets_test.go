package secrets

import (
	"testing"

	"github.com/stretchr/testify/suite"

	dErrors "mentorhub/pkg/domain-errors"
)

type SecretsSuite struct {
	suite.Suite
}

func TestSecretsSuite(t *testing.T) {
	suite.Run(t, new(SecretsSuite))
}

func (s *SecretsSuite) TestPasswordRoundTrip() {
	hash, err := HashPassword("correct horse battery staple")
	s.Require().NoError(err)
	s.NotEqual("correct horse battery staple", hash)

	s.NoError(VerifyPassword("correct horse battery staple", hash))

	err = VerifyPassword("wrong", hash)
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func (s *SecretsSuite) TestHashPasswordRejectsEmpty() {
	_, err := HashPassword("")
	s.Error(err)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}

func (s *SecretsSuite) TestGenerateOTP() {
	seen := make(map[string]bool)
	for range 20 {
		code, err := GenerateOTP()
		s.Require().NoError(err)
		s.Len(code, OTPLength)
		for _, r := range code {
			s.True(r >= '0' && r <= '9')
		}
		seen[code] = true
	}
	// 20 identical 6-digit codes would mean a broken generator.
	s.Greater(len(seen), 1)
}

func (s *SecretsSuite) TestVerifyOTP() {
	code, err := GenerateOTP()
	s.Require().NoError(err)
	hash := HashOTP(code)

	s.True(VerifyOTP(code, hash))
	s.False(VerifyOTP("000000", hash))
	s.False(VerifyOTP(code, ""))
	s.False(VerifyOTP("", hash))
}
