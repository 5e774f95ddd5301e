package line

import "errors"

var (
	// ErrNotFound is returned by Get when no part of the requested kind exists on the chain.
	ErrNotFound = errors.New("line: part not found")

	// ErrNoAppender is returned when no appender is reachable from the chain toward its root.
	ErrNoAppender = errors.New("line: no appender reachable from chain")

	// ErrCannotAppend is returned when the reachable appender refuses the requested kind.
	ErrCannotAppend = errors.New("line: cannot append kind")

	// ErrInvalidArgument is returned when the arguments do not fit the requested kind.
	ErrInvalidArgument = errors.New("line: invalid argument")

	// ErrMalformedKey is returned when key text cannot be parsed into parameters.
	ErrMalformedKey = errors.New("line: malformed key text")
)

// AppendError describes a refused or malformed append.
// It wraps one of ErrNoAppender, ErrCannotAppend or ErrInvalidArgument.
type AppendError struct {
	Kind   Kind
	Reason string
	Err    error
}

// Error implements the error interface.
func (e *AppendError) Error() string {
	msg := e.Err.Error() + ": " + e.Kind.String()
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

// Unwrap returns the sentinel error so callers can use errors.Is.
func (e *AppendError) Unwrap() error {
	return e.Err
}
