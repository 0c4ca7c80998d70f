package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a registered user account.
// Folders are owned by users; members may link to them.
type User struct {
	// ID is the unique identifier for the user (UUID format, or the demo user ID).
	ID string

	// Email is the user's email address (unique).
	Email string

	// DisplayName is the name shown in the UI.
	DisplayName string

	// PasswordHash is the bcrypt hash of the password. Empty for the demo user,
	// which therefore cannot log in with a password.
	PasswordHash string

	// CreatedAt is the Unix timestamp when the user account was created.
	CreatedAt int64

	// UpdatedAt is the Unix timestamp of the last change.
	UpdatedAt int64
}

// NewUser creates a user with a fresh ID and timestamps.
func NewUser(email, displayName, passwordHash string) *User {
	now := time.Now().Unix()
	return &User{
		ID:           uuid.New().String(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
