package errs

import (
	"errors"
	"fmt"
)

// Kind classifies engine errors so callers can map them to distinct
// user-visible outcomes.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindPreconditionFailed
	KindInvalidInput
	KindConfigurationMissing
	KindUpstreamTimeout
	KindLocationUnavailable
)

// Error is a typed engine error carrying its taxonomy kind.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches two typed errors by kind and message, so sentinel values below
// work with errors.Is through wrapping.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && (t.Msg == "" || t.Msg == e.Msg)
}

// New creates a typed error.
func New(kind Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// Wrap attaches a cause to a typed error.
func Wrap(kind Kind, msg string, err error) *Error {
	return &Error{Kind: kind, Msg: msg, Err: err}
}

// KindOf extracts the taxonomy kind from err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// Engine sentinel errors. Handlers and tests match these with errors.Is.
var (
	ErrTripNotFound        = New(KindNotFound, "trip not found")
	ErrDriverNotFound      = New(KindNotFound, "driver not found")
	ErrFareConfigMissing   = New(KindConfigurationMissing, "no active fare entry for category and vehicle class")
	ErrDriverNotAvailable  = New(KindPreconditionFailed, "driver is not online")
	ErrDriverNotVerified   = New(KindPreconditionFailed, "driver is not verified")
	ErrTripAlreadyAssigned = New(KindPreconditionFailed, "trip already assigned")
	ErrIllegalTransition   = New(KindPreconditionFailed, "illegal trip status transition")
	ErrInvalidParameter    = New(KindInvalidInput, "invalid parameter")
	ErrUpstreamTimeout     = New(KindUpstreamTimeout, "store call exceeded its time bound")
	ErrLocationUnavailable = New(KindLocationUnavailable, "no position fix obtainable")
)
