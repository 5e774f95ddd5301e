// Package i18n is a translation catalog on top of the line model.
//
// Translations are loaded per language and namespace from nested maps and
// stored as lines of the form Culture(lang).Section(namespace).Key(path).
// Lookups go through a resolve.Resolver, so the same catalog serves both the
// map-style API below and code that builds keys directly with Key.
//
// # Basic Usage
//
//	tr, err := i18n.New(
//		i18n.WithDefaultLanguage("en"),
//		i18n.WithTranslations("en", "app", map[string]any{
//			"welcome": "Welcome to our application",
//			"goodbye": "Goodbye, %{name}!",
//		}),
//		i18n.WithTranslations("es", "app", map[string]any{
//			"welcome": "Bienvenido a nuestra aplicación",
//			"goodbye": "¡Adiós, %{name}!",
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	tr.T("es", "app", "goodbye", i18n.M{"name": "Juan"}) // "¡Adiós, Juan!"
//
// Nested maps are addressed with dot notation ("buttons.save").
//
// # Pluralization
//
// A nested map whose keys are all plural form names is a plural entry:
//
//	"items": map[string]any{
//		"zero":  "No items",
//		"one":   "%{count} item",
//		"other": "%{count} items",
//	}
//
// Tn picks the form with the language's plural rule. The forms are stored as
// lines with an "N" parameter ("N:One"), the other form being the plain key.
// Zero and One are offered as optional forms for 0 and 1 in languages whose
// rule files them elsewhere. Rules come from CLDR data
// (golang.org/x/text/feature/plural); the simplified rules of common
// language families (EnglishRule, SlavicRule, RomanceRule, ArabicRule,
// InvariantRule) are applied automatically to loaded languages and can be
// replaced with WithPluralRule.
//
// # Language Fallback
//
// A lookup tries the requested language, its parent cultures ("en-GB" then
// "en"), the default language and finally lines without a culture. Use
// Fallback and AcceptLanguage to build the same policies for keys resolved
// elsewhere, and ParseAcceptLanguage to pick a single language from a
// request header.
//
// # Formatting
//
// LocaleFormats renders format arguments such as "{0:N2}", "{0:C}" or
// "{0:d}" with per-culture separators, currency and date layouts. Cultures
// without a registered LocaleFormat are formatted from CLDR data.
//
// # Thread Safety
//
// An I18n instance is immutable after New and safe for concurrent use.
package i18n
