package service

import (
	"context"
	"errors"

	"connectrpc.com/connect"

	"github.com/echuwok12/SplitPayment/internal/apperr"
	"github.com/echuwok12/SplitPayment/internal/auth"
	"github.com/echuwok12/SplitPayment/internal/middleware"
)

// connectError maps an error kind to its Connect code. Storage failures and
// inconsistent stored data are reported as internal errors without details.
func connectError(err error) *connect.Error {
	var connectErr *connect.Error
	if errors.As(err, &connectErr) {
		return connectErr
	}

	switch {
	case errors.Is(err, auth.ErrEmailExists):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case apperr.IsValidation(err):
		return connect.NewError(connect.CodeInvalidArgument, err)
	case apperr.IsNotFound(err):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, apperr.ErrUnauthenticated):
		return connect.NewError(connect.CodeUnauthenticated, err)
	case apperr.IsPersistence(err):
		return connect.NewError(connect.CodeInternal, errors.New("storage operation failed"))
	case apperr.IsInconsistent(err):
		return connect.NewError(connect.CodeInternal, errors.New("stored ledger data is inconsistent"))
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

// requireUser returns the caller's user ID as set by the auth interceptor.
func requireUser(ctx context.Context) (string, error) {
	userID := middleware.GetUserID(ctx)
	if userID == "" {
		return "", connect.NewError(connect.CodeUnauthenticated, auth.ErrMissingToken)
	}
	return userID, nil
}
