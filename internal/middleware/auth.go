package middleware

import (
	"context"
	"strings"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	// UserIDKey is the context key for storing the authenticated user ID.
	UserIDKey contextKey = "user_id"
	// EmailKey is the context key for storing the authenticated user's email.
	EmailKey contextKey = "email"
)

// GetUserID extracts the user ID from the context.
// Returns empty string if not found.
func GetUserID(ctx context.Context) string {
	userID, _ := ctx.Value(UserIDKey).(string)
	return userID
}

// GetEmail extracts the user email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// WithUser returns a copy of ctx carrying the given identity.
func WithUser(ctx context.Context, userID, email string) context.Context {
	ctx = context.WithValue(ctx, UserIDKey, userID)
	if email != "" {
		ctx = context.WithValue(ctx, EmailKey, email)
	}
	return ctx
}

// Authenticate returns an interceptor that establishes the caller's identity.
//
// A request with a valid bearer token acts as the token's user. A request
// without an Authorization header acts as demoUserID; when demoUserID is empty
// such requests are rejected. A malformed or invalid token is always rejected,
// except on the public procedures, which then proceed without an identity.
func Authenticate(jwtManager *auth.JWTManager, demoUserID string, public ...string) connect.UnaryInterceptorFunc {
	isPublic := make(map[string]bool, len(public))
	for _, p := range public {
		isPublic[p] = true
	}

	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			authHeader := req.Header().Get("Authorization")
			if authHeader == "" {
				if demoUserID == "" && !isPublic[req.Spec().Procedure] {
					return nil, connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
				}
				if demoUserID != "" {
					ctx = WithUser(ctx, demoUserID, "")
				}
				return next(ctx, req)
			}

			claims, err := parseBearer(jwtManager, authHeader)
			if err != nil {
				if isPublic[req.Spec().Procedure] {
					return next(ctx, req)
				}
				return nil, connect.NewError(connect.CodeUnauthenticated, err)
			}

			return next(WithUser(ctx, claims.UserID, claims.Email), req)
		}
	}
}

func parseBearer(jwtManager *auth.JWTManager, header string) (*auth.Claims, error) {
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
		return nil, auth.ErrInvalidToken
	}
	return jwtManager.Validate(strings.TrimSpace(token))
}
