package models

import (
	"regexp"
	"time"
)

// User is a registered relay user, keyed by an identifier derived from the email
type User struct {
	UserID    string    `json:"userId" db:"user_id"`
	Name      string    `json:"name" db:"name"`
	Email     string    `json:"email" db:"email"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

var unsafeIDChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// DeriveUserID maps an email to a storage-safe identifier by replacing every
// character outside [A-Za-z0-9_-] with an underscore
func DeriveUserID(email string) string {
	return unsafeIDChars.ReplaceAllString(email, "_")
}
