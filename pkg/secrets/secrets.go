package secrets

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"math/big"

	"golang.org/x/crypto/bcrypt"

	dErrors "mentorhub/pkg/domain-errors"
)

// OTPLength is the number of decimal digits in a one-time passcode.
const OTPLength = 6

// HashPassword creates a bcrypt hash of the provided password.
func HashPassword(password string) (string, error) {
	if password == "" {
		return "", dErrors.New(dErrors.CodeValidation, "password cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", dErrors.New(dErrors.CodeValidation, "password is too long")
		}
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not hash password")
	}
	return string(hashed), nil
}

// VerifyPassword checks if a plaintext password matches a bcrypt hash.
func VerifyPassword(password, hash string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "invalid secret")
		}
		return dErrors.Wrap(err, dErrors.CodeInternal, "could not verify password")
	}
	return nil
}

// GenerateOTP creates a cryptographically random passcode of OTPLength
// decimal digits, left-padded with zeros.
func GenerateOTP() (string, error) {
	const digits = "0123456789"
	code := make([]byte, OTPLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(digits))))
		if err != nil {
			return "", dErrors.Wrap(err, dErrors.CodeInternal, "could not generate passcode")
		}
		code[i] = digits[n.Int64()]
	}
	return string(code), nil
}

// HashOTP produces the stored form of a passcode. SHA-256 is sufficient here:
// the input space is rate-limited and short-lived, and a fixed-width digest
// enables constant-time comparison.
func HashOTP(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// VerifyOTP compares a candidate passcode against a stored hash in constant
// time. When no hash is stored, it still performs a comparison against a
// dummy digest so "no passcode pending" and "wrong passcode" are
// indistinguishable by timing.
func VerifyOTP(candidate, storedHash string) bool {
	candidateHash := HashOTP(candidate)
	if storedHash == "" {
		subtle.ConstantTimeCompare([]byte(candidateHash), []byte(HashOTP("")))
		return false
	}
	return subtle.ConstantTimeCompare([]byte(candidateHash), []byte(storedHash)) == 1
}
