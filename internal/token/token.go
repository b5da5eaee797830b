package token

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	dErrors "mentorhub/pkg/domain-errors"
)

const issuer = "mentorhub-admin"

// SessionClaims are the claims carried by an admin session token.
type SessionClaims struct {
	AdminID string `json:"admin_id"`
	Email   string `json:"email"`
	jwt.RegisteredClaims
}

// Service mints and validates self-verifying admin session tokens.
// Tokens carry a fixed validity window; there is no server-side revocation,
// logout works by clearing the client cookie.
type Service struct {
	signingKey []byte
	ttl        time.Duration
}

func NewService(signingKey string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Service{
		signingKey: []byte(signingKey),
		ttl:        ttl,
	}
}

// TTL reports the validity window applied to issued tokens.
func (s *Service) TTL() time.Duration {
	return s.ttl
}

// Issue mints a signed session token for the given admin.
func (s *Service) Issue(adminID uuid.UUID, email string) (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate token id")
	}
	jti := hex.EncodeToString(b)
	now := time.Now()

	newToken := jwt.NewWithClaims(jwt.SigningMethodHS256, SessionClaims{
		AdminID: adminID.String(),
		Email:   email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   adminID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    issuer,
			ID:        jti,
		},
	})

	signedToken, err := newToken.SignedString(s.signingKey)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not sign session token")
	}
	return signedToken, nil
}

// Validate parses and verifies a session token, returning the admin identity
// it carries. Expired, malformed, or foreign-signed tokens all fail.
func (s *Service) Validate(tokenString string) (uuid.UUID, string, error) {
	parsed, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenUnverifiable
		}
		return s.signingKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return uuid.Nil, "", dErrors.New(dErrors.CodeUnauthorized, "session expired")
		}
		return uuid.Nil, "", dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}
	if !parsed.Valid {
		return uuid.Nil, "", dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	claims, ok := parsed.Claims.(*SessionClaims)
	if !ok || claims.Issuer != issuer {
		return uuid.Nil, "", dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	adminID, err := uuid.Parse(claims.AdminID)
	if err != nil {
		return uuid.Nil, "", dErrors.New(dErrors.CodeUnauthorized, "invalid session token")
	}

	return adminID, claims.Email, nil
}
