package resolve

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/ka4ep/lexical/core/line"
)

type candidate struct {
	culture string
	code    line.Status
}

// Parents returns the truncation parents of culture, most specific first,
// excluding culture itself and the invariant culture: "sr-Latn-RS" yields
// "sr-Latn", "sr".
func Parents(culture string) []string {
	var out []string
	c := culture
	for {
		i := strings.LastIndexAny(c, "-_")
		if i <= 0 {
			return out
		}
		c = c[:i]
		out = append(out, c)
	}
}

// candidates returns the cultures to try in order. An explicit culture is
// tried first, then its parents as a degraded fallback. Without one the
// policy list is used as is.
func (q *request) candidates() []candidate {
	if q.hasCulture {
		if q.culture != "" {
			if _, err := language.Parse(q.culture); err != nil {
				return []candidate{{culture: q.culture, code: line.CultureErrorInvalid}}
			}
		}
		out := []candidate{{culture: q.culture, code: line.CultureOkRequested}}
		for _, p := range Parents(q.culture) {
			out = append(out, candidate{culture: p, code: line.CultureWarningFallback})
		}
		return out
	}

	if q.policy == nil {
		return nil
	}
	var (
		out  []candidate
		seen = make(map[string]bool)
	)
	for _, c := range q.policy.Cultures() {
		if seen[c] {
			continue
		}
		seen[c] = true
		out = append(out, candidate{culture: c, code: line.CultureOkPolicy})
	}
	return out
}

// keyFor returns the key whose effective culture is culture.
func (q *request) keyFor(culture string) (*line.Part, error) {
	if q.hasCulture && culture == q.culture {
		return q.key, nil
	}
	base, err := q.agnosticKey()
	if err != nil {
		return nil, err
	}
	return line.Append(base, line.KindCulture, line.Args{Value: culture})
}

// agnosticKey returns the key without culture parameters. Appending a
// culture to a key that has one would be shadowed, so the key is rebuilt.
func (q *request) agnosticKey() (*line.Part, error) {
	if !q.hasCulture {
		return q.key, nil
	}
	if q.stripped == nil && q.strippedErr == nil {
		q.stripped, q.strippedErr = line.Filter(q.key, func(o line.Occurrence) bool {
			return o.Name != line.ParamCulture
		})
	}
	return q.stripped, q.strippedErr
}

// renderCulture is the culture used to format arguments of a culture
// agnostic match.
func (q *request) renderCulture() string {
	if q.hasCulture {
		return q.culture
	}
	if q.policy != nil {
		if cultures := q.policy.Cultures(); len(cultures) > 0 {
			return cultures[0]
		}
	}
	return q.defaultCulture
}
