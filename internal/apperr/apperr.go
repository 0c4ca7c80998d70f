// Package apperr defines the error kinds shared by the calculator, storage and
// service layers. Callers classify errors with errors.Is against the sentinels.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks malformed input.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a referenced folder, member, expense or user that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrPersistence marks a failed storage operation, including transaction rollback.
	ErrPersistence = errors.New("persistence failure")

	// ErrInconsistent marks stored records that contradict each other, such as
	// a share whose expense or member is missing.
	ErrInconsistent = errors.New("inconsistent data")

	// ErrUnauthenticated marks a request without a usable identity.
	ErrUnauthenticated = errors.New("unauthenticated")
)

// Validationf returns an error wrapping ErrValidation.
func Validationf(format string, args ...any) error {
	return &kindError{kind: ErrValidation, msg: fmt.Sprintf(format, args...)}
}

// NotFoundf returns an error wrapping ErrNotFound.
func NotFoundf(format string, args ...any) error {
	return &kindError{kind: ErrNotFound, msg: fmt.Sprintf(format, args...)}
}

// Persistence wraps a storage failure for the named operation.
// The cause stays reachable through errors.Is / errors.As.
func Persistence(op string, err error) error {
	return &kindError{kind: ErrPersistence, msg: "failed to " + op, cause: err}
}

// Inconsistentf returns an error wrapping ErrInconsistent.
func Inconsistentf(format string, args ...any) error {
	return &kindError{kind: ErrInconsistent, msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }

// IsNotFound reports whether err is a not-found error.
func IsNotFound(err error) bool { return errors.Is(err, ErrNotFound) }

// IsPersistence reports whether err is a persistence error.
func IsPersistence(err error) bool { return errors.Is(err, ErrPersistence) }

// IsInconsistent reports whether err is an inconsistent-data error.
func IsInconsistent(err error) bool { return errors.Is(err, ErrInconsistent) }

type kindError struct {
	kind  error
	msg   string
	cause error
}

func (e *kindError) Error() string {
	if e.cause != nil {
		return e.msg + ": " + e.cause.Error()
	}
	return e.msg
}

func (e *kindError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.kind, e.cause}
	}
	return []error{e.kind}
}
