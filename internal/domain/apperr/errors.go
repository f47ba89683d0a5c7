// Package apperr defines the failure kinds shared by every domain package.
// Handlers translate them to HTTP responses in internal/api/respond.
package apperr

import (
	"errors"
	"fmt"
)

var (
	ErrValidation     = errors.New("validation failed")
	ErrDuplicateEmail = errors.New("email already registered")
	ErrNotFound       = errors.New("not found")
	ErrAlreadyMarked  = errors.New("attendance already marked for today")
	ErrForbidden      = errors.New("access denied")
	ErrConflict       = errors.New("conflict")
	ErrUnauthorized   = errors.New("invalid credentials")
	ErrPersistence    = errors.New("persistence failure")
)

// Validation returns an ErrValidation carrying a client-facing message.
func Validation(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Msg: fmt.Sprintf(format, args...)}
}

// NotFound returns an ErrNotFound naming the missing entity.
func NotFound(entity string) error {
	return &Error{Kind: ErrNotFound, Msg: entity + " not found"}
}

// Conflict returns an ErrConflict with a client-facing message.
func Conflict(msg string) error {
	return &Error{Kind: ErrConflict, Msg: msg}
}

// Persistence wraps a storage error. The cause is kept for logs but never
// shown to clients.
func Persistence(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: ErrPersistence, Msg: "database error", Cause: fmt.Errorf("%s: %w", op, err)}
}

type Error struct {
	Kind  error
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Msg + ": " + e.Cause.Error()
	}
	return e.Msg
}

// Is lets errors.Is match the error's kind sentinel.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Message returns the text that may be shown to a client.
func Message(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Msg
	}
	switch {
	case errors.Is(err, ErrDuplicateEmail):
		return "Email already registered"
	case errors.Is(err, ErrAlreadyMarked):
		return "Attendance already marked for today"
	case errors.Is(err, ErrForbidden):
		return "Access denied"
	case errors.Is(err, ErrNotFound):
		return "Not found"
	case errors.Is(err, ErrConflict):
		return "Record was modified concurrently, reload and retry"
	case errors.Is(err, ErrUnauthorized):
		return "Invalid credentials"
	case errors.Is(err, ErrValidation):
		return "Invalid input"
	}
	return "Internal server error"
}
