// Package errors holds the error taxonomy shared by every layer.
// Services wrap these sentinels with fmt.Errorf("%w: ...") so callers
// can classify failures with errors.Is.
package errors

import (
	"errors"
	"fmt"
)

var (
	ErrValidation = fmt.Errorf("validation error")
	ErrAuth       = fmt.Errorf("authentication error")
	ErrNotFound   = fmt.Errorf("not found")
	ErrDuplicate  = fmt.Errorf("already exists")
	ErrRemote     = fmt.Errorf("remote store error")
	ErrDecode     = fmt.Errorf("decode error")

	ErrNotSignedIn       = fmt.Errorf("no principal signed in")
	ErrInvalidTransition = fmt.Errorf("invalid session transition")
	ErrWorkerPanic       = fmt.Errorf("worker panic")
)

// Is and Join are re-exported so callers importing this package
// do not need to alias the standard library one.
func Is(err, target error) bool { return errors.Is(err, target) }

func Join(errs ...error) error { return errors.Join(errs...) }

// Message turns an error into the text shown to the user.
// Wrapped detail after the sentinel is kept when present,
// otherwise a generic line per category is used.
func Message(err error) string {
	if err == nil {
		return ""
	}
	var generic string
	switch {
	case errors.Is(err, ErrValidation):
		generic = "Please fill all the fields"
	case errors.Is(err, ErrAuth):
		generic = "Log in failed"
	case errors.Is(err, ErrNotFound):
		generic = "Not found"
	case errors.Is(err, ErrDuplicate):
		generic = "Already exists"
	case errors.Is(err, ErrNotSignedIn):
		generic = "Please log in first"
	case errors.Is(err, ErrInvalidTransition):
		generic = "Action not allowed right now"
	case errors.Is(err, ErrDecode):
		generic = "Invalid data"
	case errors.Is(err, ErrRemote):
		generic = "Something went wrong, please try again"
	default:
		return err.Error()
	}
	var detailed *DetailedError
	if errors.As(err, &detailed) && detailed.Detail != "" {
		return detailed.Detail
	}
	return generic
}

// DetailedError attaches a user-facing detail to a sentinel.
type DetailedError struct {
	Kind   error
	Detail string
	Cause  error
}

func (e *DetailedError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%v: %s: %v", e.Kind, e.Detail, e.Cause)
	}
	return fmt.Sprintf("%v: %s", e.Kind, e.Detail)
}

func (e *DetailedError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

// New builds a DetailedError of the given kind.
func New(kind error, detail string) error {
	return &DetailedError{Kind: kind, Detail: detail}
}

// Wrap builds a DetailedError of the given kind around cause.
func Wrap(kind error, detail string, cause error) error {
	return &DetailedError{Kind: kind, Detail: detail, Cause: cause}
}
