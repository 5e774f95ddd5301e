package format

import "errors"

var (
	// ErrUnclosedBrace is reported when a placeholder is not closed.
	ErrUnclosedBrace = errors.New("format: unclosed placeholder")

	// ErrUnexpectedBrace is reported for a lone '}' outside a placeholder.
	ErrUnexpectedBrace = errors.New("format: unexpected closing brace")

	// ErrInvalidPlaceholder is reported when a placeholder body cannot be parsed.
	ErrInvalidPlaceholder = errors.New("format: invalid placeholder")
)
