package booking

import (
	"fmt"

	"github.com/nekogravitycat/court-booking-web/internal/pkg/apperror"
)

type FailureKind string

const (
	KindNotFound    FailureKind = "not_found"
	KindRejected    FailureKind = "rejected"
	KindUnreachable FailureKind = "unreachable"
)

// LookupError is returned when a booking lookup reached the network and failed.
type LookupError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("lookup %s: %s", e.Kind, e.public().Message)
}

func (e *LookupError) public() *apperror.AppError {
	if e.Kind == KindNotFound {
		return ErrNotFound.WithMessage(e.Message)
	}
	return ErrUnreachable.WithMessage(e.Message)
}

// Unwrap exposes the user-facing AppError and the underlying cause.
func (e *LookupError) Unwrap() []error {
	return unwrap(e.public(), e.Err)
}

// SubmissionError is returned when the backend did not complete a booking.
// The caller keeps its form state and may resubmit.
type SubmissionError struct {
	Kind    FailureKind
	Message string
	Err     error
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("submission %s: %s", e.Kind, e.public().Message)
}

func (e *SubmissionError) public() *apperror.AppError {
	if e.Kind == KindRejected {
		return ErrRejected.WithMessage(e.Message)
	}
	return ErrUnreachable.WithMessage(e.Message)
}

func (e *SubmissionError) Unwrap() []error {
	return unwrap(e.public(), e.Err)
}

func unwrap(public, cause error) []error {
	if cause == nil {
		return []error{public}
	}
	return []error{public, cause}
}
