package goi18n

import "errors"

var (
	// ErrUnknownArgument is returned when a message template references a
	// field that has no argument index.
	ErrUnknownArgument = errors.New("goi18n: unknown template argument")

	// ErrUnsupportedTemplate is returned for template actions other than a
	// plain field reference such as {{.Name}}.
	ErrUnsupportedTemplate = errors.New("goi18n: unsupported template action")

	// ErrLoadFailed is returned when a message file cannot be read or parsed.
	ErrLoadFailed = errors.New("goi18n: failed to load message file")
)
