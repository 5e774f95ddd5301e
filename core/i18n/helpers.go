package i18n

import (
	"fmt"
	"strings"
)

// M is a map of named placeholder values.
type M map[string]any

// ReplacePlaceholders replaces %{name} placeholders in template with values
// from placeholders. Unknown placeholders are left unchanged.
//
// Example:
//
//	template: "Hello, %{name}! You have %{count} messages."
//	placeholders: M{"name": "John", "count": 5}
//	returns: "Hello, John! You have 5 messages."
func ReplacePlaceholders(template string, placeholders M) string {
	if len(placeholders) == 0 || !strings.Contains(template, "%{") {
		return template
	}

	pairs := make([]string, 0, len(placeholders)*2)
	for key, value := range placeholders {
		pairs = append(pairs, "%{"+key+"}", fmt.Sprintf("%v", value))
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
