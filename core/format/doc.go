// Package format parses and renders the numbered placeholder format strings
// carried by lines.
//
//	text, status := format.String("en", "{0} has {1,3} items", []any{"cart", 7}, nil)
//	// text == "cart has   7 items"
//
// Placeholders may declare a plural category ({cardinal:0}, {ordinal:0},
// {optional:0}); the resolver uses these to pick the plural form of a line
// before rendering. Malformed format strings still render: unreadable
// placeholders are emitted as literal text and the status reports
// FormatErrorMalformed.
package format
