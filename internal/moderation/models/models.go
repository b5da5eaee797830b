// Package models defines the moderation subject records: platform users,
// mentor profiles, and the site banner.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User is a platform account subject to moderation.
type User struct {
	ID        uuid.UUID
	Email     string
	Name      string
	CreatedAt time.Time
}

// Mentor is a mentor profile linked to a platform user. Approval and the
// top-mentor flag are moderation-controlled.
type Mentor struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Email     string
	Name      string
	Approved  bool
	TopMentor bool
	CreatedAt time.Time
}

// Banner is the site-wide announcement banner. The store holds at most one
// active banner; replacing it removes every previous record.
type Banner struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	ImageURL  string    `json:"image_url,omitempty"`
	TargetURL string    `json:"target_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
