package linetree

import "errors"

var (
	// ErrInvalidValue is returned by FromMap for values that are neither
	// strings, scalars, lists nor maps.
	ErrInvalidValue = errors.New("linetree: invalid value")

	// ErrInvalidKey is returned by FromMap for keys that are not key text.
	ErrInvalidKey = errors.New("linetree: invalid key")
)
