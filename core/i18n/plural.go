package i18n

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"

	"github.com/ka4ep/lexical/core/line"
)

// PluralRule selects the plural case of a number. It returns one of the
// line.Case constants.
type PluralRule func(n float64) string

// Plural rule categories understood by PluralTable.
const (
	Cardinal = "cardinal"
	Ordinal  = "ordinal"
)

func intAbs(n float64) int64 {
	return int64(math.Abs(n))
}

func isInt(n float64) bool {
	return n == math.Trunc(n)
}

// EnglishRule: one for 1, other otherwise.
var EnglishRule PluralRule = func(n float64) string {
	if isInt(n) && intAbs(n) == 1 {
		return line.CaseOne
	}
	return line.CaseOther
}

// SlavicRule covers Polish, Czech, Ukrainian and related languages: one for
// 1, few for numbers ending in 2-4 except 12-14, many for other integers.
var SlavicRule PluralRule = func(n float64) string {
	if !isInt(n) {
		return line.CaseOther
	}
	i := intAbs(n)
	mod10, mod100 := i%10, i%100
	switch {
	case i == 1:
		return line.CaseOne
	case mod10 >= 2 && mod10 <= 4 && (mod100 < 12 || mod100 > 14):
		return line.CaseFew
	default:
		return line.CaseMany
	}
}

// RomanceRule covers French, Italian and Portuguese: one for 0 and 1, many
// for millions.
var RomanceRule PluralRule = func(n float64) string {
	i := intAbs(n)
	switch {
	case i <= 1:
		return line.CaseOne
	case isInt(n) && i != 0 && i%1_000_000 == 0:
		return line.CaseMany
	default:
		return line.CaseOther
	}
}

// ArabicRule: zero, one, two, few for 3-10, many for 11-99 modulo 100.
var ArabicRule PluralRule = func(n float64) string {
	if !isInt(n) {
		return line.CaseOther
	}
	i := intAbs(n)
	mod100 := i % 100
	switch {
	case i == 0:
		return line.CaseZero
	case i == 1:
		return line.CaseOne
	case i == 2:
		return line.CaseTwo
	case mod100 >= 3 && mod100 <= 10:
		return line.CaseFew
	case mod100 >= 11:
		return line.CaseMany
	default:
		return line.CaseOther
	}
}

// InvariantRule never distinguishes numbers (Japanese, Chinese, Korean, ...).
var InvariantRule PluralRule = func(float64) string {
	return line.CaseOther
}

// RuleForLanguage returns the simplified cardinal rule of a language family
// by its ISO 639-1 code, for use with WithRule when CLDR data is not wanted.
func RuleForLanguage(lang string) (PluralRule, bool) {
	base, _, _ := strings.Cut(strings.ToLower(lang), "-")
	base, _, _ = strings.Cut(base, "_")
	switch base {
	case "en", "de", "nl", "sv", "no", "da", "is", "es":
		return EnglishRule, true
	case "pl", "ru", "cs", "uk", "hr", "sr", "sk", "sl", "bg":
		return SlavicRule, true
	case "fr", "it", "pt":
		return RomanceRule, true
	case "ar":
		return ArabicRule, true
	case "ja", "zh", "ko", "th", "vi", "id", "ms":
		return InvariantRule, true
	default:
		return nil, false
	}
}

// PluralTable implements line.Functions with CLDR plural rules from
// golang.org/x/text. Rules registered with WithRule replace CLDR for the
// cardinal category of a language.
//
// For 0 and 1 the table also offers Zero and One as optional cases when the
// language's rule puts them in another case, so "no items" style strings
// can be provided without being required.
type PluralTable struct {
	rules        map[string]PluralRule
	optionalForm bool
}

// PluralOption configures a PluralTable.
type PluralOption func(*PluralTable)

// WithRule registers a cardinal rule for a base language ("pl", "en").
func WithRule(lang string, rule PluralRule) PluralOption {
	return func(t *PluralTable) {
		if lang != "" && rule != nil {
			t.rules[strings.ToLower(lang)] = rule
		}
	}
}

// WithOptionalForms toggles the optional Zero and One cases. Enabled by default.
func WithOptionalForms(enabled bool) PluralOption {
	return func(t *PluralTable) {
		t.optionalForm = enabled
	}
}

// NewPluralTable creates a plural table.
func NewPluralTable(opts ...PluralOption) *PluralTable {
	t := &PluralTable{
		rules:        make(map[string]PluralRule),
		optionalForm: true,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// PluralCases implements line.Functions.
func (t *PluralTable) PluralCases(culture, category string, n float64) ([]line.PluralCase, bool) {
	tag := language.English
	if culture != "" {
		var err error
		if tag, err = language.Parse(culture); err != nil {
			return nil, false
		}
	}

	var name string
	switch category {
	case Cardinal:
		base, _ := tag.Base()
		if rule, ok := t.rules[base.String()]; ok {
			name = rule(n)
		} else {
			name = match(plural.Cardinal, tag, n)
		}
	case Ordinal:
		name = match(plural.Ordinal, tag, n)
	default:
		return nil, false
	}

	var cases []line.PluralCase
	if t.optionalForm && category == Cardinal {
		switch {
		case n == 0 && name != line.CaseZero:
			cases = append(cases, line.PluralCase{Name: line.CaseZero, Optional: true})
		case n == 1 && name != line.CaseOne:
			cases = append(cases, line.PluralCase{Name: line.CaseOne, Optional: true})
		}
	}
	return append(cases, line.PluralCase{Name: name}), true
}

// match falls back to Other when n has no int sized operands.
func match(rules *plural.Rules, tag language.Tag, n float64) string {
	i, v, w, f, t, ok := operands(n)
	if !ok {
		return line.CaseOther
	}
	return caseName(rules.MatchPlural(tag, i, v, w, f, t))
}

// operands returns the CLDR plural operands i, v, w, f, t of n.
func operands(n float64) (i, v, w, f, t int, ok bool) {
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, 0, 0, 0, 0, false
	}
	s := strconv.FormatFloat(math.Abs(n), 'f', -1, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	var err error
	if i, err = strconv.Atoi(intPart); err != nil {
		return 0, 0, 0, 0, 0, false
	}
	if frac == "" {
		return i, 0, 0, 0, 0, true
	}
	if f, err = strconv.Atoi(frac); err != nil {
		return 0, 0, 0, 0, 0, false
	}
	trimmed := strings.TrimRight(frac, "0")
	t, _ = strconv.Atoi(trimmed)
	return i, len(frac), len(trimmed), f, t, true
}

func caseName(f plural.Form) string {
	switch f {
	case plural.Zero:
		return line.CaseZero
	case plural.One:
		return line.CaseOne
	case plural.Two:
		return line.CaseTwo
	case plural.Few:
		return line.CaseFew
	case plural.Many:
		return line.CaseMany
	default:
		return line.CaseOther
	}
}
