package i18n

import (
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/ka4ep/lexical/core/resolve"
)

// LocaleFormat contains formatting rules for one culture.
// It is immutable after creation and safe for concurrent use.
type LocaleFormat struct {
	decimalSeparator  string
	thousandSeparator string
	currencySymbol    string
	currencyPosition  string // "before" or "after"
	percentSymbol     string
	dateFormat        string
	timeFormat        string
	dateTimeFormat    string
}

// LocaleFormatOption configures a LocaleFormat during construction.
type LocaleFormatOption func(*LocaleFormat)

// NewLocaleFormat creates a LocaleFormat. Without options it formats like
// US English.
func NewLocaleFormat(opts ...LocaleFormatOption) *LocaleFormat {
	lf := &LocaleFormat{
		decimalSeparator:  ".",
		thousandSeparator: ",",
		currencySymbol:    "$",
		currencyPosition:  "before",
		percentSymbol:     "%",
		dateFormat:        "01/02/2006",
		timeFormat:        "3:04 PM",
		dateTimeFormat:    "01/02/2006 3:04 PM",
	}
	for _, opt := range opts {
		opt(lf)
	}
	return lf
}

// NewEnglishFormat creates a LocaleFormat with US English formatting.
func NewEnglishFormat() *LocaleFormat {
	return NewLocaleFormat()
}

// WithDecimalSeparator sets the decimal separator.
func WithDecimalSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.decimalSeparator = sep
	}
}

// WithThousandSeparator sets the thousand separator.
func WithThousandSeparator(sep string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.thousandSeparator = sep
	}
}

// WithCurrencySymbol sets the currency symbol.
func WithCurrencySymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.currencySymbol = symbol
	}
}

// WithCurrencyPosition sets the currency position ("before" or "after").
func WithCurrencyPosition(pos string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		if pos == "before" || pos == "after" {
			lf.currencyPosition = pos
		}
	}
}

// WithPercentSymbol sets the percent symbol.
func WithPercentSymbol(symbol string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.percentSymbol = symbol
	}
}

// WithDateFormat sets the time layout used by the "d" specifier.
func WithDateFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateFormat = layout
	}
}

// WithTimeFormat sets the time layout used by the "t" specifier.
func WithTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.timeFormat = layout
	}
}

// WithDateTimeFormat sets the time layout used by the "g" specifier and by
// time values without a specifier.
func WithDateTimeFormat(layout string) LocaleFormatOption {
	return func(lf *LocaleFormat) {
		lf.dateTimeFormat = layout
	}
}

// FormatNumber formats n with up to two decimals, trailing zeros trimmed.
func (lf *LocaleFormat) FormatNumber(n float64) string {
	return lf.number(n, 2, true)
}

// FormatCurrency formats amount with two decimals and the currency symbol.
func (lf *LocaleFormat) FormatCurrency(amount float64) string {
	return lf.currency(amount, 2)
}

// FormatPercent formats a ratio as a percentage: 0.255 is "25.5%".
func (lf *LocaleFormat) FormatPercent(n float64) string {
	return lf.percent(n, 1, true)
}

// FormatDate formats t with the date layout.
func (lf *LocaleFormat) FormatDate(t time.Time) string {
	return t.Format(lf.dateFormat)
}

// FormatTime formats t with the time layout.
func (lf *LocaleFormat) FormatTime(t time.Time) string {
	return t.Format(lf.timeFormat)
}

// FormatDateTime formats t with the datetime layout.
func (lf *LocaleFormat) FormatDateTime(t time.Time) string {
	return t.Format(lf.dateTimeFormat)
}

// Format renders arg for a placeholder format specifier:
//
//	N, N0..N9  number, default up to two decimals
//	C, C0..C9  currency, default two decimals
//	P, P0..P9  percentage of a ratio, default up to one decimal
//	d, t, g    date, time and datetime of a time.Time
//
// Time values without a specifier use the datetime layout. Anything else is
// reported as not handled.
func (lf *LocaleFormat) Format(spec string, arg any) (string, bool) {
	if t, ok := arg.(time.Time); ok {
		switch spec {
		case "d":
			return lf.FormatDate(t), true
		case "t":
			return lf.FormatTime(t), true
		case "g", "":
			return lf.FormatDateTime(t), true
		default:
			return "", false
		}
	}

	kind, prec, fixed, ok := parseSpec(spec)
	if !ok {
		return "", false
	}
	n, ok := resolve.Number(arg)
	if !ok {
		return "", false
	}
	switch kind {
	case 'N':
		if !fixed {
			prec = 2
		}
		return lf.number(n, prec, !fixed), true
	case 'C':
		if !fixed {
			prec = 2
		}
		return lf.currency(n, prec), true
	default:
		if !fixed {
			prec = 1
		}
		return lf.percent(n, prec, !fixed), true
	}
}

// parseSpec splits "N2" into its kind and precision.
func parseSpec(spec string) (kind byte, prec int, fixed, ok bool) {
	if spec == "" {
		return 0, 0, false, false
	}
	kind = spec[0] &^ 0x20 // upper case
	if kind != 'N' && kind != 'C' && kind != 'P' {
		return 0, 0, false, false
	}
	if len(spec) == 1 {
		return kind, 0, false, true
	}
	prec, err := strconv.Atoi(spec[1:])
	if err != nil || prec < 0 || prec > 9 {
		return 0, 0, false, false
	}
	return kind, prec, true, true
}

func (lf *LocaleFormat) number(n float64, prec int, trim bool) string {
	negative := n < 0
	s := strconv.FormatFloat(math.Abs(n), 'f', prec, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if trim {
		frac = strings.TrimRight(frac, "0")
	}

	result := lf.group(intPart)
	if frac != "" {
		result += lf.decimalSeparator + frac
	}
	if negative && strings.Trim(intPart+frac, "0") != "" {
		result = "-" + result
	}
	return result
}

func (lf *LocaleFormat) group(digits string) string {
	if len(digits) <= 3 || lf.thousandSeparator == "" {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteString(lf.thousandSeparator)
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func (lf *LocaleFormat) currency(amount float64, prec int) string {
	num := lf.number(math.Abs(amount), prec, false)

	var result string
	switch {
	case lf.currencyPosition == "after":
		result = num + " " + lf.currencySymbol
	case strings.HasSuffix(lf.currencySymbol, "$") || lf.currencySymbol == "¥" || lf.currencySymbol == "£":
		result = lf.currencySymbol + num
	default:
		result = lf.currencySymbol + " " + num
	}
	if amount < 0 && num != lf.number(0, prec, false) {
		result = "-" + result
	}
	return result
}

func (lf *LocaleFormat) percent(n float64, prec int, trim bool) string {
	// Percentages are not grouped.
	s := strconv.FormatFloat(math.Abs(n*100), 'f', prec, 64)
	intPart, frac, _ := strings.Cut(s, ".")
	if trim {
		frac = strings.TrimRight(frac, "0")
	}
	result := intPart
	if frac != "" {
		result += lf.decimalSeparator + frac
	}
	if n < 0 && strings.Trim(intPart+frac, "0") != "" {
		result = "-" + result
	}
	return result + lf.percentSymbol
}

// LocaleFormats is a culture keyed registry of LocaleFormat. It implements
// line.FormatProvider: a culture without a registered format uses the
// nearest registered parent ("de-AT" uses "de"), and cultures with no
// registered ancestor are formatted from CLDR data.
type LocaleFormats struct {
	mu      sync.RWMutex
	formats map[string]*LocaleFormat
}

// NewLocaleFormats creates a registry preloaded with en, de, fr, es and pl.
func NewLocaleFormats() *LocaleFormats {
	return &LocaleFormats{formats: map[string]*LocaleFormat{
		"en": NewEnglishFormat(),
		"de": NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator("."),
			WithCurrencySymbol("€"),
			WithCurrencyPosition("after"),
			WithDateFormat("02.01.2006"),
			WithTimeFormat("15:04"),
			WithDateTimeFormat("02.01.2006 15:04"),
		),
		"fr": NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator(" "),
			WithCurrencySymbol("€"),
			WithCurrencyPosition("after"),
			WithPercentSymbol(" %"),
			WithDateFormat("02/01/2006"),
			WithTimeFormat("15:04"),
			WithDateTimeFormat("02/01/2006 15:04"),
		),
		"es": NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator("."),
			WithCurrencySymbol("€"),
			WithCurrencyPosition("after"),
			WithDateFormat("02/01/2006"),
			WithTimeFormat("15:04"),
			WithDateTimeFormat("02/01/2006 15:04"),
		),
		"pl": NewLocaleFormat(
			WithDecimalSeparator(","),
			WithThousandSeparator(" "),
			WithCurrencySymbol("zł"),
			WithCurrencyPosition("after"),
			WithDateFormat("02.01.2006"),
			WithTimeFormat("15:04"),
			WithDateTimeFormat("02.01.2006 15:04"),
		),
	}}
}

// Set registers lf for culture, replacing any previous format.
func (f *LocaleFormats) Set(culture string, lf *LocaleFormat) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lf == nil {
		delete(f.formats, culture)
		return
	}
	f.formats[culture] = lf
}

// Get returns the format registered for culture or its nearest parent.
func (f *LocaleFormats) Get(culture string) (*LocaleFormat, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	if lf, ok := f.formats[culture]; ok {
		return lf, true
	}
	for _, parent := range resolve.Parents(culture) {
		if lf, ok := f.formats[parent]; ok {
			return lf, true
		}
	}
	return nil, false
}

// Format implements line.FormatProvider.
func (f *LocaleFormats) Format(culture, spec string, arg any) (string, bool) {
	if lf, ok := f.Get(culture); ok {
		return lf.Format(spec, arg)
	}
	if culture == "" {
		if lf, ok := f.Get("en"); ok {
			return lf.Format(spec, arg)
		}
	}
	return cldrFormat(culture, spec, arg)
}

// cldrFormat renders numbers for cultures without a LocaleFormat.
func cldrFormat(culture, spec string, arg any) (string, bool) {
	tag, err := language.Parse(culture)
	if err != nil {
		return "", false
	}
	kind, prec, fixed, ok := parseSpec(spec)
	if !ok {
		return "", false
	}
	n, ok := resolve.Number(arg)
	if !ok {
		return "", false
	}

	p := message.NewPrinter(tag)
	switch kind {
	case 'N':
		if fixed {
			return p.Sprint(number.Decimal(n, number.Scale(prec))), true
		}
		return p.Sprint(number.Decimal(n, number.MaxFractionDigits(2))), true
	case 'P':
		if fixed {
			return p.Sprint(number.Percent(n, number.Scale(prec))), true
		}
		return p.Sprint(number.Percent(n, number.MaxFractionDigits(1))), true
	default:
		unit, _ := currency.FromTag(tag)
		return p.Sprint(currency.Symbol(unit.Amount(n))), true
	}
}
