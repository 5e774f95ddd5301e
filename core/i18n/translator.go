package i18n

import (
	"time"

	"github.com/ka4ep/lexical/core/line"
)

// Translator fixes the language and namespace of an I18n instance.
type Translator struct {
	i18n      *I18n
	language  string
	namespace string
	format    *LocaleFormat
}

// NewTranslator creates a Translator. An empty language selects the default.
func NewTranslator(i18n *I18n, language, namespace string) *Translator {
	if i18n == nil {
		panic("localization service is not provided")
	}
	if language == "" {
		language = i18n.DefaultLanguage()
	}
	lf, ok := i18n.Formats().Get(language)
	if !ok {
		lf, _ = i18n.Formats().Get(i18n.DefaultLanguage())
	}
	if lf == nil {
		lf = NewEnglishFormat()
	}
	return &Translator{
		i18n:      i18n,
		language:  language,
		namespace: namespace,
		format:    lf,
	}
}

// T translates key.
func (t *Translator) T(key string, placeholders ...M) string {
	return t.i18n.T(t.language, t.namespace, key, placeholders...)
}

// Tn translates key with the plural form for n.
func (t *Translator) Tn(key string, n int, placeholders ...M) string {
	return t.i18n.Tn(t.language, t.namespace, key, n, placeholders...)
}

// Key returns the line key of a translation in the translator's context.
func (t *Translator) Key(key string) *line.Part {
	return t.i18n.Key(t.language, t.namespace, key)
}

// Language returns the language of the translator.
func (t *Translator) Language() string {
	return t.language
}

// Namespace returns the namespace of the translator.
func (t *Translator) Namespace() string {
	return t.namespace
}

// FormatNumber formats a number with the language's separators:
// 1234.5 is "1,234.5" in English and "1.234,5" in German.
func (t *Translator) FormatNumber(n float64) string {
	return t.format.FormatNumber(n)
}

// FormatCurrency formats an amount with the language's currency.
func (t *Translator) FormatCurrency(amount float64) string {
	return t.format.FormatCurrency(amount)
}

// FormatPercent formats a ratio as a percentage (0.5 is "50%").
func (t *Translator) FormatPercent(n float64) string {
	return t.format.FormatPercent(n)
}

// FormatDate formats a date with the language's layout.
func (t *Translator) FormatDate(date time.Time) string {
	return t.format.FormatDate(date)
}

// FormatTime formats a time of day with the language's layout.
func (t *Translator) FormatTime(tm time.Time) string {
	return t.format.FormatTime(tm)
}

// FormatDateTime formats a date and time with the language's layout.
func (t *Translator) FormatDateTime(datetime time.Time) string {
	return t.format.FormatDateTime(datetime)
}

// NewTranslatorWithFormat creates a Translator with an explicit LocaleFormat.
func NewTranslatorWithFormat(i18n *I18n, language, namespace string, format *LocaleFormat) *Translator {
	t := NewTranslator(i18n, language, namespace)
	if format != nil {
		t.format = format
	}
	return t
}

// Format returns the LocaleFormat used by the Format* methods.
func (t *Translator) Format() *LocaleFormat {
	return t.format
}
