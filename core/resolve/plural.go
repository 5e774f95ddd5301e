package resolve

import (
	"strconv"

	"github.com/ka4ep/lexical/core/format"
	"github.com/ka4ep/lexical/core/line"
)

// pluralDim is the candidate cases of one plural argument, most specific
// first, always ending with Other.
type pluralDim struct {
	index int
	cases []line.PluralCase
}

// plural replaces tpl with the plural form selected by the numeric
// arguments. Plural forms are lines keyed by the matched key plus one "N"
// parameter per argument ("N" for argument 0, "N1" for argument 1, ...)
// whose value is the case name. The matched line itself is the Other form.
func (r *Resolver) plural(q *request, m *match, tpl *format.Template, args []any) (*format.Template, line.Status) {
	segs := tpl.PluralIndices()
	if len(segs) == 0 || len(args) == 0 {
		return tpl, line.PluralityOkNotUsed
	}

	fns := r.functions
	if p := line.Find(q.key, line.KindFunctions); p != nil {
		fns = p.FunctionsOf()
	}
	if fns == nil {
		return tpl, line.PluralityErrorRulesNotFound
	}

	var dims []pluralDim
	for _, seg := range segs {
		if seg.Index >= len(args) {
			continue
		}
		n, ok := Number(args[seg.Index])
		if !ok {
			return tpl, line.PluralityErrorNotNumber
		}
		category := seg.Category
		if category == format.CategoryOptional {
			category = format.CategoryCardinal
		}
		cases, ok := fns.PluralCases(m.culture, category, n)
		if !ok {
			return tpl, line.PluralityErrorRulesNotFound
		}
		dims = append(dims, pluralDim{index: seg.Index, cases: withOther(cases, seg.Category == format.CategoryOptional)})
	}
	if len(dims) == 0 {
		return tpl, line.PluralityOkNotUsed
	}

	// Odometer over the case lists, first dimension most significant.
	pos := make([]int, len(dims))
	for {
		if !allOther(dims, pos) {
			if l, ok := r.pluralLine(q, m, dims, pos); ok {
				return format.Parse(textOf(l)), pluralCode(dims, pos)
			}
		}
		if !advance(dims, pos) {
			break
		}
	}

	for i, d := range dims {
		pos[i] = len(d.cases) - 1
	}
	return tpl, pluralCode(dims, pos)
}

func (r *Resolver) pluralLine(q *request, m *match, dims []pluralDim, pos []int) (*line.Part, bool) {
	key := m.lookup
	for i, d := range dims {
		c := d.cases[pos[i]]
		if c.Name == line.CaseOther {
			continue
		}
		var err error
		key, err = line.AppendParameter(key, line.Parameter{Name: line.PluralParam(d.index), Value: c.Name})
		if err != nil {
			return nil, false
		}
	}
	l, _, ok := q.lookup(key)
	if !ok || !hasText(l) {
		return nil, false
	}
	return l, true
}

// pluralCode degrades the result when a required case preceding the chosen
// one was skipped.
func pluralCode(dims []pluralDim, pos []int) line.Status {
	for i, d := range dims {
		for _, c := range d.cases[:pos[i]] {
			if !c.Optional && c.Name != line.CaseOther {
				return line.PluralityWarningDefault
			}
		}
	}
	return line.PluralityOkMatched
}

func withOther(cases []line.PluralCase, optional bool) []line.PluralCase {
	out := make([]line.PluralCase, 0, len(cases)+1)
	for _, c := range cases {
		if c.Name == line.CaseOther {
			continue
		}
		if optional {
			c.Optional = true
		}
		out = append(out, c)
	}
	return append(out, line.PluralCase{Name: line.CaseOther})
}

func allOther(dims []pluralDim, pos []int) bool {
	for i := range dims {
		if pos[i] != len(dims[i].cases)-1 {
			return false
		}
	}
	return true
}

func advance(dims []pluralDim, pos []int) bool {
	for i := len(dims) - 1; i >= 0; i-- {
		pos[i]++
		if pos[i] < len(dims[i].cases) {
			return true
		}
		pos[i] = 0
	}
	return false
}

// Number converts a format argument to a float64 for plural matching.
// Strings are parsed; other types are not numbers.
func Number(arg any) (float64, bool) {
	switch v := arg.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}
