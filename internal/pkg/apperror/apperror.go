package apperror

import (
	"errors"
	"net/http"
)

// AppError is an error that knows the HTTP status it should be reported with.
type AppError struct {
	Code    int    // HTTP Status Code (e.g., 400, 404)
	Message string // User-facing error message
	Err     error  // The underlying error, if any (not exposed to user)
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// WithMessage returns a copy of e that reports msg to the user.
// The copy unwraps to e, so errors.Is against the original sentinel still holds.
func (e *AppError) WithMessage(msg string) *AppError {
	if msg == "" {
		msg = e.Message
	}
	return &AppError{
		Code:    e.Code,
		Message: msg,
		Err:     e,
	}
}

// New creates a new AppError with a status code and message.
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// StatusCode returns the HTTP status carried by err, or 500 when err is not an AppError.
func StatusCode(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return http.StatusInternalServerError
}
