package errors

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrEmptyText          = fmt.Errorf("message text is empty")
	ErrTextTooLong        = fmt.Errorf("message text exceeds the maximum length")
	ErrUnknownReceiver    = fmt.Errorf("receiver does not exist")
	ErrUserAlreadyExists  = fmt.Errorf("user already exists")
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrInvalidPassword    = fmt.Errorf("password does not meet complexity requirements")
	ErrNotFound           = fmt.Errorf("not found")
	ErrSinkFull           = fmt.Errorf("connection buffer full")
	ErrWorkerPanic        = fmt.Errorf("worker panic")
	ErrEmptyWordList      = fmt.Errorf("no censored words have been found")
)

// MapToHTTPStatus converts a domain error into the HTTP status code
// exposed by the REST layer. Unknown errors map to 500 so that internal
// details never leak to clients.
func MapToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrEmptyText),
		errors.Is(err, ErrTextTooLong),
		errors.Is(err, ErrInvalidPassword):
		return http.StatusBadRequest
	case errors.Is(err, ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrUnknownReceiver):
		return http.StatusNotFound
	case errors.Is(err, ErrUserAlreadyExists):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
