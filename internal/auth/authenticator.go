// Package auth issues and checks user credentials: bcrypt-hashed passwords
// for login and HS256 JWTs for the requests that follow.
package auth

import (
	"context"

	"github.com/echuwok12/SplitPayment/internal/models"
)

// Authenticator defines the interface for authentication implementations.
// Services depend on this rather than on password handling directly, so the
// login method can change without touching them.
type Authenticator interface {
	// Register creates a new user account with the given email and credential.
	// Returns the created user or an error if registration fails.
	Register(ctx context.Context, email, displayName, credential string) (*models.User, error)

	// Authenticate verifies the user's credentials and returns the user if successful.
	Authenticate(ctx context.Context, email, credential string) (*models.User, error)

	// User loads the account behind an already established identity.
	User(ctx context.Context, userID string) (*models.User, error)

	// ValidateCredential checks if the credential meets the implementation's requirements.
	ValidateCredential(credential string) error
}
