package format

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/ka4ep/lexical/core/line"
)

// Render substitutes args into the template. Arguments are rendered by fp
// when it handles them, otherwise by Default. Missing arguments leave the
// placeholder text in place.
//
// The returned status carries a Placeholder and a Format section code.
func (t *Template) Render(culture string, args []any, fp line.FormatProvider) (string, line.Status) {
	var (
		b           strings.Builder
		placeholder = line.PlaceholderOkNotUsed
		formatCode  = line.FormatOk
	)
	if t.Err != nil {
		formatCode = line.FormatErrorMalformed
	}

	for _, seg := range t.Segments {
		if !seg.Placeholder {
			b.WriteString(seg.Text)
			continue
		}
		if placeholder == line.PlaceholderOkNotUsed {
			placeholder = line.PlaceholderOk
		}
		if seg.Index >= len(args) {
			placeholder = line.PlaceholderErrorArgumentMissing
			b.WriteString(seg.Text)
			continue
		}

		arg := args[seg.Index]
		text, handled := "", false
		if fp != nil {
			text, handled = fp.Format(culture, seg.Format, arg)
		}
		if !handled {
			text = Default(seg.Format, arg)
			if fp != nil && seg.Format != "" && placeholder == line.PlaceholderOk {
				placeholder = line.PlaceholderWarningFallback
			}
		}
		b.WriteString(Align(text, seg.Alignment))
	}
	return b.String(), placeholder | formatCode
}

// Default renders arg without a provider. Formats starting with '%' are fmt
// verbs; anything else is ignored.
func Default(format string, arg any) string {
	if arg == nil {
		return ""
	}
	if strings.HasPrefix(format, "%") {
		return fmt.Sprintf(format, arg)
	}
	return fmt.Sprint(arg)
}

// Align pads s with spaces to width columns: right aligned for positive
// widths, left aligned for negative ones. Widths are capped at MaxAlignment.
func Align(s string, width int) string {
	left := width < 0
	if left {
		width = -width
	}
	width = min(width, MaxAlignment)
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	pad := strings.Repeat(" ", width-n)
	if left {
		return s + pad
	}
	return pad + s
}

// String parses and renders format in one step.
func String(culture, format string, args []any, fp line.FormatProvider) (string, line.Status) {
	return Parse(format).Render(culture, args, fp)
}
