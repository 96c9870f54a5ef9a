package gateway

import (
	"errors"

	"emy-orders/internal/pkg/errs"
)

type ErrorKind string

// Gateway-specific error kinds. Transport and application failures are
// both surfaced to callers as a single failure value carrying the
// human-readable message; the kind exists for logging and tests.
const (
	KindUnavailable ErrorKind = "UNAVAILABLE"  // collaborator unreachable or non-2xx status
	KindRejected    ErrorKind = "REJECTED"     // collaborator answered success=false
	KindBadResponse ErrorKind = "BAD_RESPONSE" // 2xx body that is not a valid envelope
)

type Error struct {
	Kind ErrorKind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

// Message is the text shown to the user, verbatim from the collaborator
// when it provided one.
func (e Error) Message() string {
	return e.msg
}

// NewError builds a gateway failure value without a wrapped cause.
// Used by fakes that simulate collaborator behavior.
func NewError(kind ErrorKind, msg string) error {
	return Error{Kind: kind, msg: msg}
}

func wrapErr(kind ErrorKind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind ErrorKind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}

// UserMessage extracts the displayable message from any error chain
// that contains a gateway Error; otherwise it falls back to err.Error().
func UserMessage(err error) string {
	var e Error
	if errors.As(err, &e) {
		return e.msg
	}
	if err != nil {
		return err.Error()
	}
	return ""
}
