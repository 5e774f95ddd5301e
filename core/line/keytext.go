package line

import (
	"fmt"
	"strings"
)

// Key text is the flat rendering of a chain's parameters:
// "Name:Value:Name:Value". A name may carry the kind of its part as
// "Kind@Name", for parts whose kind decides a role the classification would
// not give the name. ':', '|', '@' and '\' inside names and values are
// escaped with a backslash.

const (
	keySep    = ':'
	keyGroup  = '|'
	keyKind   = '@'
	keyEscape = '\\'
)

func escapeKeyText(b *strings.Builder, s string) {
	for _, r := range s {
		if r == keySep || r == keyGroup || r == keyKind || r == keyEscape {
			b.WriteRune(keyEscape)
		}
		b.WriteRune(r)
	}
}

// FormatKey renders params as key text.
func FormatKey(params []Parameter) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteRune(keySep)
		}
		escapeKeyText(&b, p.Name)
		b.WriteRune(keySep)
		escapeKeyText(&b, p.Value)
	}
	return b.String()
}

// FormatOccurrences renders occs as key text. Occurrences of the
// CanonicalKey, NonCanonicalKey and Hint kinds whose role differs from the
// role c gives their name are written as "Kind@Name", so ParseKey rebuilds
// a chain with the same identity.
func FormatOccurrences(occs []Occurrence, c Classification) string {
	var b strings.Builder
	for i, o := range occs {
		if i > 0 {
			b.WriteRune(keySep)
		}
		if typedKind(o.Kind) && o.Role(c) != tableRole(c, o.Name) {
			b.WriteString(o.Kind.String())
			b.WriteRune(keyKind)
		}
		escapeKeyText(&b, o.Name)
		b.WriteRune(keySep)
		escapeKeyText(&b, o.Value)
	}
	return b.String()
}

func tableRole(c Classification, name string) Role {
	if c == nil {
		return RoleUnclassified
	}
	return c.Role(name)
}

func typedKind(k Kind) bool {
	return k == KindCanonicalKey || k == KindNonCanonicalKey || k == KindHint || k == KindParameter
}

// KeyEntry is one parameter of key text with the kind its name declared,
// KindParameter when none.
type KeyEntry struct {
	Parameter
	Kind Kind
}

// ParseEntries splits key text into entries. Empty text yields no entries.
func ParseEntries(text string) ([]KeyEntry, error) {
	if text == "" {
		return nil, nil
	}

	type segment struct {
		text  string
		kind  string // text before an unescaped '@'
		typed bool
	}
	var (
		segments []segment
		cur      strings.Builder
		kind     string
		hasKind  bool
		escaped  bool
	)
	for _, r := range text {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case r == keyEscape:
			escaped = true
		case r == keyKind && !hasKind && len(segments)%2 == 0:
			kind, hasKind = cur.String(), true
			cur.Reset()
		case r == keySep:
			segments = append(segments, segment{text: cur.String(), kind: kind, typed: hasKind})
			cur.Reset()
			kind, hasKind = "", false
		default:
			cur.WriteRune(r)
		}
	}
	if escaped {
		return nil, fmt.Errorf("%w: dangling escape in %q", ErrMalformedKey, text)
	}
	segments = append(segments, segment{text: cur.String(), kind: kind, typed: hasKind})

	if len(segments)%2 != 0 {
		return nil, fmt.Errorf("%w: odd number of segments in %q", ErrMalformedKey, text)
	}
	entries := make([]KeyEntry, 0, len(segments)/2)
	for i := 0; i < len(segments); i += 2 {
		name := segments[i]
		if name.text == "" {
			return nil, fmt.Errorf("%w: empty parameter name in %q", ErrMalformedKey, text)
		}
		e := KeyEntry{Parameter: Parameter{Name: name.text, Value: segments[i+1].text}, Kind: KindParameter}
		if name.typed {
			k, ok := ParseKind(name.kind)
			if !ok || !typedKind(k) {
				return nil, fmt.Errorf("%w: unknown kind %q in %q", ErrMalformedKey, name.kind, text)
			}
			e.Kind = k
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ParseParameters splits key text into parameters, dropping kind markers.
// Empty text yields no parameters.
func ParseParameters(text string) ([]Parameter, error) {
	entries, err := ParseEntries(text)
	if err != nil {
		return nil, err
	}
	if entries == nil {
		return nil, nil
	}
	params := make([]Parameter, len(entries))
	for i, e := range entries {
		params[i] = e.Parameter
	}
	return params, nil
}

// ParseKey parses key text and appends each parameter to chain in text
// order. Names marked with a kind get that kind; Culture, Type and Module
// names get their dedicated kinds; the rest become generic parameters.
// Empty text returns chain unchanged.
func ParseKey(chain *Part, text string) (*Part, error) {
	entries, err := ParseEntries(text)
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		if chain, err = AppendEntry(chain, e); err != nil {
			return nil, err
		}
	}
	return chain, nil
}

// AppendEntry appends e with its declared kind, or as AppendParameter does
// when it declares none.
func AppendEntry(chain *Part, e KeyEntry) (*Part, error) {
	if e.Kind == KindParameter {
		return AppendParameter(chain, e.Parameter)
	}
	return Append(chain, e.Kind, Args{Name: e.Name, Value: e.Value})
}

// AppendParameter appends p with the kind matching its name.
func AppendParameter(chain *Part, p Parameter) (*Part, error) {
	switch p.Name {
	case ParamCulture:
		return Append(chain, KindCulture, Args{Value: p.Value})
	case ParamModule:
		if p.Value != "" {
			return Append(chain, KindModule, Args{Value: p.Value})
		}
	}
	return Append(chain, KindParameter, Args{Name: p.Name, Value: p.Value})
}
