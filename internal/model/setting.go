package model

import (
	"time"

	"github.com/google/uuid"
)

// SettingAnnouncementText is the settings key holding the homepage banner copy.
const SettingAnnouncementText = "announcement_text"

// Setting is a flat key/value pair from the settings collection.
type Setting struct {
	Key   string `json:"key" db:"key"`
	Value string `json:"value" db:"value"`
}

// AdminUser is an operator allowed to sign in to the console.
type AdminUser struct {
	ID           uuid.UUID `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Session is a server-side record of a signed-in operator.
type Session struct {
	ID        uuid.UUID `json:"-" db:"id"`
	AdminID   uuid.UUID `json:"-" db:"admin_id"`
	ExpiresAt time.Time `json:"expires_at" db:"expires_at"`
	CreatedAt time.Time `json:"-" db:"created_at"`
}

// LoginRequest carries operator credentials.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token for a new session.
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AnnouncementRequest is the payload for replacing the banner copy.
type AnnouncementRequest struct {
	Text string `json:"text"`
}
