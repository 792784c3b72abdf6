package errs

import (
	cr "github.com/cockroachdb/errors"
)

// Error kinds shared by every layer. Concrete errors carry one of these
// so that handlers can map them to a status without knowing the origin.
var (
	ErrNotFound           = New("resource not found")
	ErrInsufficientCredit = New("insufficient credit")
	ErrInvalidState       = New("invalid state transition")
	ErrForbidden          = New("operation not permitted for caller")
	ErrPolicyUnavailable  = New("cancellation policy unavailable")
	ErrInvalidArgument    = New("invalid argument")
)

type kindError struct {
	msg  string
	kind error
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Is(target error) bool { return target == e.kind }

// Kind builds a sentinel that matches itself and the given kind, but not
// other sentinels of the same kind.
func Kind(msg string, kind error) error {
	return &kindError{msg: msg, kind: kind}
}

// WithCause returns sentinel as the primary error and keeps cause for
// detailed formatting only.
func WithCause(sentinel, cause error) error {
	if cause == nil {
		return sentinel
	}
	return cr.WithSecondaryError(sentinel, cause)
}

// KindOf reports which of the shared kinds err carries, or nil.
func KindOf(err error) error {
	for _, k := range []error{
		ErrNotFound,
		ErrInsufficientCredit,
		ErrInvalidState,
		ErrForbidden,
		ErrPolicyUnavailable,
		ErrInvalidArgument,
	} {
		if Is(err, k) {
			return k
		}
	}
	return nil
}
