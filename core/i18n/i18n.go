package i18n

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"strings"

	"github.com/ka4ep/lexical/core/asset"
	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/resolve"
)

// DefaultLang is the default language code used when no default language is specified.
const DefaultLang = "en"

// Plural form names accepted as keys of plural translation maps.
var pluralForms = map[string]string{
	"zero":  line.CaseZero,
	"one":   line.CaseOne,
	"two":   line.CaseTwo,
	"few":   line.CaseFew,
	"many":  line.CaseMany,
	"other": line.CaseOther,
}

// I18n is a translation catalog addressed by language, namespace and dotted
// key. Translations are stored as lines in an asset.Memory and resolved by a
// resolve.Resolver, so the catalog can be shared with code that builds keys
// directly. It is immutable after creation and safe for concurrent use.
type I18n struct {
	root     *line.Part
	memory   *asset.Memory
	resolver *resolve.Resolver
	plurals  *PluralTable
	formats  *LocaleFormats

	pluralRules map[string]PluralRule
	observers   []line.Observer
	logger      *slog.Logger
	pending     []*line.Part

	defaultLang string
	languages   []string

	// Called when a key is not found in any language, including the default.
	missingKeyHandler func(lang, namespace, key string)
}

// Option configures the I18n instance during construction.
type Option func(*I18n) error

// New creates an I18n instance. All configuration happens during
// construction.
func New(opts ...Option) (*I18n, error) {
	i := &I18n{
		root:        line.NewRoot(),
		formats:     NewLocaleFormats(),
		pluralRules: make(map[string]PluralRule),
		defaultLang: DefaultLang,
	}

	for _, opt := range opts {
		if err := opt(i); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}
	if i.defaultLang == "" {
		return nil, errors.New("default language cannot be empty")
	}

	ruleOpts := make([]PluralOption, 0, len(i.pluralRules))
	for lang, rule := range i.pluralRules {
		ruleOpts = append(ruleOpts, WithRule(lang, rule))
	}
	i.plurals = NewPluralTable(ruleOpts...)
	i.memory = asset.NewMemory(i.pending)
	i.pending = nil

	resolverOpts := []resolve.Option{
		resolve.WithAsset(i.memory),
		resolve.WithFunctions(i.plurals),
		resolve.WithFormatProvider(i.formats),
		resolve.WithDefaultCulture(i.defaultLang),
		resolve.WithLogger(i.logger),
	}
	for _, o := range i.observers {
		resolverOpts = append(resolverOpts, resolve.WithObserver(o))
	}
	i.resolver = resolve.New(resolverOpts...)
	i.languages = i.buildLanguagesList()

	return i, nil
}

// WithDefaultLanguage sets the default/fallback language.
func WithDefaultLanguage(lang string) Option {
	return func(i *I18n) error {
		if lang == "" {
			return errors.New("language cannot be empty")
		}
		i.defaultLang = lang
		return nil
	}
}

// WithPluralRule registers a plural rule for a language, replacing CLDR data.
func WithPluralRule(lang string, rule PluralRule) Option {
	return func(i *I18n) error {
		if lang == "" {
			return errors.New("language cannot be empty")
		}
		if rule == nil {
			return errors.New("plural rule cannot be nil")
		}
		i.pluralRules[lang] = rule
		return nil
	}
}

// WithLanguages sets the supported languages. The default language is
// always first; the others are sorted alphabetically.
func WithLanguages(langs ...string) Option {
	return func(i *I18n) error {
		if len(langs) == 0 {
			return nil
		}
		i.languages = append(i.languages, langs...)
		return nil
	}
}

// WithMissingKeyHandler sets a handler called when a key is not found in
// any language, including the default fallback.
func WithMissingKeyHandler(handler func(lang, namespace, key string)) Option {
	return func(i *I18n) error {
		i.missingKeyHandler = handler
		return nil
	}
}

// WithLogger sets the logger reporting panicking observers.
func WithLogger(logger *slog.Logger) Option {
	return func(i *I18n) error {
		i.logger = logger
		return nil
	}
}

// WithObserver adds an observer notified with the outcome of every T and Tn
// call. It is also attached to the resolver returned by Resolver.
func WithObserver(o line.Observer) Option {
	return func(i *I18n) error {
		if o != nil {
			i.observers = append(i.observers, o)
		}
		return nil
	}
}

// WithLocaleFormat registers the number and date format of a culture.
func WithLocaleFormat(lang string, lf *LocaleFormat) Option {
	return func(i *I18n) error {
		if lang == "" {
			return errors.New("language cannot be empty")
		}
		i.formats.Set(lang, lf)
		return nil
	}
}

// WithLines adds lines built on any root. Their format strings use numbered
// placeholders ("{0}") and may declare plural categories.
func WithLines(lines ...*line.Part) Option {
	return func(i *I18n) error {
		i.pending = append(i.pending, lines...)
		return nil
	}
}

// WithTranslations loads translations for a language and namespace. The map
// may be nested; nested keys are joined with dots. A nested map whose keys
// are all plural form names (zero, one, two, few, many, other) is a plural
// entry for Tn. Values use %{name} placeholders.
func WithTranslations(lang, namespace string, translations map[string]any) Option {
	return func(i *I18n) error {
		if lang == "" {
			return errors.New("language cannot be empty")
		}
		if namespace == "" {
			return errors.New("namespace cannot be empty")
		}
		if len(translations) == 0 {
			return nil
		}

		base := i.root.Culture(lang).Section(namespace)
		i.flatten(base, translations, "")

		if _, exists := i.pluralRules[lang]; !exists {
			if rule, ok := RuleForLanguage(lang); ok {
				i.pluralRules[lang] = rule
			}
		}
		return nil
	}
}

// braces escapes text so that the format parser reads it literally.
var braces = strings.NewReplacer("{", "{{", "}", "}}")

func (i *I18n) flatten(base *line.Part, data map[string]any, prefix string) {
	for key, value := range data {
		full := key
		if prefix != "" {
			full = prefix + "." + key
		}

		switch v := value.(type) {
		case map[string]any:
			if isPluralMap(v) {
				for form, text := range v {
					i.addPlural(base, full, form, fmt.Sprintf("%v", text))
				}
			}
			i.flatten(base, v, full)
		case map[string]string:
			if isPluralMap(v) {
				for form, text := range v {
					i.addPlural(base, full, form, text)
				}
			}
			for sub, text := range v {
				i.add(base.Key(full+"."+sub), text)
			}
		case string:
			i.add(base.Key(full), v)
		default:
			i.add(base.Key(full), fmt.Sprintf("%v", v))
		}
	}
}

func (i *I18n) add(key *line.Part, text string) {
	i.pending = append(i.pending, key.Format(braces.Replace(text)))
}

func (i *I18n) addPlural(base *line.Part, key, form, text string) {
	name := pluralForms[form]
	k := base.Key(key)
	if name != line.CaseOther {
		k = k.Parameter(line.ParamN, name)
	}
	i.add(k, text)
}

func isPluralMap[V any](m map[string]V) bool {
	if len(m) == 0 {
		return false
	}
	for k := range m {
		if _, ok := pluralForms[k]; !ok {
			return false
		}
	}
	return true
}

// T returns the translation of key in lang, falling back to the parent
// cultures of lang and then to the default language. Placeholders are
// replaced with values from the given maps. The key itself is returned when
// no translation exists.
func (i *I18n) T(lang, namespace, key string, placeholders ...M) string {
	res, ok := i.translate(lang, namespace, key, nil)
	if !ok {
		return key
	}
	return ReplacePlaceholders(res.Value, merge(nil, placeholders))
}

// Tn returns the plural form of key for n. The form is chosen by the plural
// rule of each candidate language; a language without a matching form is
// skipped in favour of the next. The count placeholder holds n unless
// overridden, and n is also format argument 0.
func (i *I18n) Tn(lang, namespace, key string, n int, placeholders ...M) string {
	res, ok := i.translate(lang, namespace, key, &n)
	if !ok {
		return key
	}
	return ReplacePlaceholders(res.Value, merge(M{"count": n}, placeholders))
}

// Resolve returns the full resolution result of key for lang without
// placeholder substitution.
func (i *I18n) Resolve(lang, namespace, key string) line.String {
	res, _ := i.translate(lang, namespace, key, nil)
	return res
}

func (i *I18n) translate(lang, namespace, key string, n *int) (line.String, bool) {
	var last line.String
	for _, culture := range Fallback(lang, i.defaultLang).Cultures() {
		for _, form := range i.forms(culture, n) {
			k := i.lookupKey(culture, namespace, key, form, n)
			res := i.resolver.ResolveString(k)
			last = res
			if res.Failed() {
				continue
			}
			// Parent cultures are tried by the outer loop in order.
			if culture != "" && res.Status.Get(line.SectionCulture) != line.CultureOkRequested {
				continue
			}
			i.resolver.Notify(k, res)
			return res, true
		}
	}

	if i.missingKeyHandler != nil {
		i.missingKeyHandler(lang, namespace, key)
	}
	i.resolver.Notify(i.Key(lang, namespace, key), last)
	return last, false
}

// forms lists the plural cases to try for n, most specific first, ending
// with Other. Without n only Other is tried.
func (i *I18n) forms(culture string, n *int) []string {
	if n == nil {
		return []string{line.CaseOther}
	}
	cases, _ := i.plurals.PluralCases(culture, Cardinal, float64(*n))
	out := make([]string, 0, len(cases)+1)
	for _, c := range cases {
		if c.Name != line.CaseOther {
			out = append(out, c.Name)
		}
	}
	return append(out, line.CaseOther)
}

func (i *I18n) lookupKey(culture, namespace, key, form string, n *int) *line.Part {
	k := i.root
	if culture != "" {
		k = k.Culture(culture)
	}
	k = k.Section(namespace).Key(key)
	if form != line.CaseOther {
		k = k.Parameter(line.ParamN, form)
	}
	if n != nil {
		k = k.FormatArgs(*n)
	}
	return k
}

// Key returns the line key of a translation, for use with Resolver or Asset.
func (i *I18n) Key(lang, namespace, key string) *line.Part {
	return i.root.Culture(lang).Section(namespace).Key(key)
}

// Asset returns the asset holding the translations.
func (i *I18n) Asset() *asset.Memory {
	return i.memory
}

// Resolver returns the resolver used for translations.
func (i *I18n) Resolver() *resolve.Resolver {
	return i.resolver
}

// Formats returns the locale formats used to render format arguments.
func (i *I18n) Formats() *LocaleFormats {
	return i.formats
}

// Plurals returns the plural rule table.
func (i *I18n) Plurals() *PluralTable {
	return i.plurals
}

// Languages returns the configured languages, default first.
func (i *I18n) Languages() []string {
	return i.languages
}

// DefaultLanguage returns the default language code.
func (i *I18n) DefaultLanguage() string {
	return i.defaultLang
}

// Policy returns the culture policy for a request language: lang, its
// parents, then the default language.
func (i *I18n) Policy(lang string) line.CulturePolicy {
	return Fallback(lang, i.defaultLang)
}

// buildLanguagesList runs after every option, so the default language is
// known whatever the option order.
func (i *I18n) buildLanguagesList() []string {
	set := make(map[string]bool, len(i.languages))
	for _, lang := range i.languages {
		if lang != "" && lang != i.defaultLang {
			set[lang] = true
		}
	}
	return append([]string{i.defaultLang}, slices.Sorted(maps.Keys(set))...)
}

func merge(base M, placeholders []M) M {
	if base == nil && len(placeholders) == 0 {
		return nil
	}
	merged := make(M, len(base))
	maps.Copy(merged, base)
	for _, p := range placeholders {
		maps.Copy(merged, p)
	}
	return merged
}
