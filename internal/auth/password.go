package auth

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/models"
)

// MinPasswordLength is the shortest password Register accepts.
const MinPasswordLength = 8

var (
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", apperr.ErrUnauthenticated)
	ErrWeakPassword       = fmt.Errorf("%w: password must be at least %d characters", apperr.ErrValidation, MinPasswordLength)
	ErrInvalidEmail       = fmt.Errorf("%w: invalid email address", apperr.ErrValidation)
	ErrEmailExists        = errors.New("email already registered")
)

// UserStorage defines the user persistence operations the authenticator needs.
// Lookups of a missing user return an apperr not-found error.
type UserStorage interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetUserByID(ctx context.Context, id string) (*models.User, error)
}

// PasswordAuthenticator implements password-based authentication using bcrypt.
type PasswordAuthenticator struct {
	storage UserStorage
	cost    int
}

// NewPasswordAuthenticator creates a new password-based authenticator.
func NewPasswordAuthenticator(storage UserStorage) *PasswordAuthenticator {
	return &PasswordAuthenticator{
		storage: storage,
		cost:    bcrypt.DefaultCost,
	}
}

// ValidateCredential checks if the password meets minimum requirements.
func (a *PasswordAuthenticator) ValidateCredential(credential string) error {
	if len(credential) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}

// Register creates a new user account with a hashed password.
// Emails are compared case-insensitively.
func (a *PasswordAuthenticator) Register(ctx context.Context, email, displayName, credential string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	displayName = strings.TrimSpace(displayName)
	if displayName == "" {
		return nil, apperr.Validationf("display name is required")
	}
	if err := a.ValidateCredential(credential); err != nil {
		return nil, err
	}

	existing, err := a.storage.GetUserByEmail(ctx, email)
	if err == nil && existing != nil {
		return nil, ErrEmailExists
	}
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(credential), a.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.NewUser(email, displayName, string(hashedPassword))
	if err := a.storage.CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration.
		if apperr.IsValidation(err) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	return user, nil
}

// Authenticate verifies the email and password, returning the user if valid.
// Accounts without a password hash, such as the demo user, never authenticate.
func (a *PasswordAuthenticator) Authenticate(ctx context.Context, email, credential string) (*models.User, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	user, err := a.storage.GetUserByEmail(ctx, email)
	if err != nil {
		if apperr.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	if user.PasswordHash == "" {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(credential)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// User returns the account with the given ID.
func (a *PasswordAuthenticator) User(ctx context.Context, userID string) (*models.User, error) {
	return a.storage.GetUserByID(ctx, userID)
}

func normalizeEmail(email string) (string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return "", ErrInvalidEmail
	}
	return email, nil
}
