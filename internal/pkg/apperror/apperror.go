// Package apperror holds the error kinds surfaced to API callers.
package apperror

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindInvalidArgument Kind = "invalid-argument"
	KindNotFound        Kind = "not-found"
	KindInternal        Kind = "internal"
)

// AppError is a caller-facing error. Message is safe to return to clients;
// Err carries the underlying cause for server-side logs only.
type AppError struct {
	Kind          Kind
	Message       string
	CorrelationId string
	Err           error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Message + ": " + e.Err.Error()
	}
	return string(e.Kind) + ": " + e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches any *AppError of the same kind, so sentinels like ErrNotFound
// work with errors.Is.
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindInvalidArgument:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

var (
	ErrUnauthenticated = &AppError{Kind: KindUnauthenticated}
	ErrInvalidArgument = &AppError{Kind: KindInvalidArgument}
	ErrNotFound        = &AppError{Kind: KindNotFound}
	ErrInternal        = &AppError{Kind: KindInternal}
)

func NewUnauthenticatedError(message string) *AppError {
	return &AppError{Kind: KindUnauthenticated, Message: message}
}

func NewInvalidArgumentError(message string) *AppError {
	return &AppError{Kind: KindInvalidArgument, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Kind: KindNotFound, Message: message}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{Kind: KindInternal, Message: message, Err: cause}
}

func (e *AppError) WithCorrelationId(id string) *AppError {
	e.CorrelationId = id
	return e
}

// As returns the *AppError in err's chain, or nil.
func As(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// KindOf classifies err. Anything that is not an *AppError is internal.
func KindOf(err error) Kind {
	if appErr := As(err); appErr != nil {
		return appErr.Kind
	}
	return KindInternal
}
