package models

import (
	"time"

	"github.com/google/uuid"
)

// AdminAccount is the single admin principal type managed by this control
// plane. OTP state lives on the account: at most one passcode is live at a
// time and issuing a new one overwrites whatever was pending.
type AdminAccount struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string

	// Pending OTP state. Zero values mean no passcode pending.
	OTPHash      string
	OTPExpiresAt time.Time
	OTPConsumed  bool

	CreatedAt time.Time
}

// HasPendingOTP reports whether a live (unexpired, unconsumed) passcode exists.
func (a *AdminAccount) HasPendingOTP(now time.Time) bool {
	return a.OTPHash != "" && !a.OTPConsumed && now.Before(a.OTPExpiresAt)
}

// ClearOTP resets the OTP state after consumption or invalidation.
func (a *AdminAccount) ClearOTP() {
	a.OTPHash = ""
	a.OTPExpiresAt = time.Time{}
	a.OTPConsumed = false
}

// Profile is the secret-free view of an admin account returned to clients.
type Profile struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// Profile returns the account view with all secrets stripped.
func (a *AdminAccount) Profile() Profile {
	return Profile{ID: a.ID, Email: a.Email}
}
