package format

import (
	"fmt"
	"strconv"
	"strings"
)

// Plural categories a placeholder can declare.
const (
	CategoryCardinal = "cardinal"
	CategoryOrdinal  = "ordinal"
	CategoryOptional = "optional"
)

// MaxAlignment bounds the padding width a placeholder may request.
const MaxAlignment = 1024

// Segment is literal text or a placeholder.
type Segment struct {
	// Text is the literal text, or the source text of a placeholder.
	Text        string
	Placeholder bool

	Index     int
	Category  string
	Alignment int
	Format    string
}

// Template is a parsed format string. Parsing never fails outright: text
// that cannot be read as a placeholder is kept as literal text and Err
// reports the first problem.
type Template struct {
	Source   string
	Segments []Segment
	Err      error
}

// Parse reads a format string with numbered placeholders:
//
//	{0}            argument 0
//	{0,-8}         argument 0 left aligned in 8 columns
//	{0:N2}         argument 0 with format "N2"
//	{cardinal:0}   argument 0, plural category declared
//
// "{{" and "}}" are literal braces.
func Parse(s string) *Template {
	t := &Template{Source: s}
	var lit strings.Builder

	flush := func() {
		if lit.Len() > 0 {
			t.Segments = append(t.Segments, Segment{Text: lit.String()})
			lit.Reset()
		}
	}
	fail := func(err error) {
		if t.Err == nil {
			t.Err = err
		}
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '{' && i+1 < len(s) && s[i+1] == '{':
			lit.WriteByte('{')
			i++
		case c == '}' && i+1 < len(s) && s[i+1] == '}':
			lit.WriteByte('}')
			i++
		case c == '}':
			fail(fmt.Errorf("%w at offset %d", ErrUnexpectedBrace, i))
			lit.WriteByte('}')
		case c == '{':
			end := strings.IndexByte(s[i+1:], '}')
			if end < 0 {
				fail(fmt.Errorf("%w at offset %d", ErrUnclosedBrace, i))
				lit.WriteString(s[i:])
				i = len(s)
				continue
			}
			src := s[i : i+end+2]
			seg, err := parsePlaceholder(s[i+1 : i+1+end])
			if err != nil {
				fail(fmt.Errorf("%w %q: %v", ErrInvalidPlaceholder, src, err))
				lit.WriteString(src)
			} else {
				flush()
				seg.Text = src
				t.Segments = append(t.Segments, seg)
			}
			i += end + 1
		default:
			lit.WriteByte(c)
		}
	}
	flush()
	return t
}

func parsePlaceholder(body string) (Segment, error) {
	seg := Segment{Placeholder: true}

	if head, rest, ok := strings.Cut(body, ":"); ok {
		switch strings.ToLower(strings.TrimSpace(head)) {
		case CategoryCardinal, CategoryOrdinal, CategoryOptional:
			seg.Category = strings.ToLower(strings.TrimSpace(head))
			body = rest
		}
	}

	body, seg.Format, _ = strings.Cut(body, ":")
	body, align, hasAlign := strings.Cut(body, ",")

	idx, err := strconv.Atoi(strings.TrimSpace(body))
	if err != nil {
		return seg, fmt.Errorf("index: %w", err)
	}
	if idx < 0 {
		return seg, fmt.Errorf("negative index %d", idx)
	}
	seg.Index = idx

	if hasAlign {
		if seg.Alignment, err = strconv.Atoi(strings.TrimSpace(align)); err != nil {
			return seg, fmt.Errorf("alignment: %w", err)
		}
		if seg.Alignment > MaxAlignment || seg.Alignment < -MaxAlignment {
			return seg, fmt.Errorf("alignment %d exceeds %d", seg.Alignment, MaxAlignment)
		}
	}
	return seg, nil
}

// Placeholders returns the placeholder segments in order of appearance.
func (t *Template) Placeholders() []Segment {
	var out []Segment
	for _, s := range t.Segments {
		if s.Placeholder {
			out = append(out, s)
		}
	}
	return out
}

// PluralIndices returns the distinct argument indices that declare a plural
// category, in order of appearance, with the category of their first use.
func (t *Template) PluralIndices() []Segment {
	var (
		out  []Segment
		seen = make(map[int]bool)
	)
	for _, s := range t.Segments {
		if s.Placeholder && s.Category != "" && !seen[s.Index] {
			seen[s.Index] = true
			out = append(out, s)
		}
	}
	return out
}

// MaxIndex returns the highest argument index used, or -1.
func (t *Template) MaxIndex() int {
	maxIdx := -1
	for _, s := range t.Segments {
		if s.Placeholder && s.Index > maxIdx {
			maxIdx = s.Index
		}
	}
	return maxIdx
}
