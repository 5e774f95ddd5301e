package middleware

import (
	"context"
	"net/http"

	"github.com/ka4ep/lexical/core/i18n"
	"github.com/ka4ep/lexical/core/line"
)

type i18nTranslatorContextKey struct{}

type i18nPolicyContextKey struct{}

// I18nConfig configures the i18n middleware.
type I18nConfig struct {
	// Skip defines a function to skip middleware execution for specific requests
	Skip func(r *http.Request) bool
	// I18n is the i18n instance to use for translations (required)
	I18n *i18n.I18n
	// LanguageExtractor defines how to extract the language from the request
	// Default: first supported language of the Accept-Language header
	LanguageExtractor func(r *http.Request) string
	// Namespace is the translation namespace to use
	Namespace string
	// FallbackLanguage is the language to use if extraction fails
	// Default: uses I18n's default language
	FallbackLanguage string
}

// I18n creates an i18n middleware with default configuration.
// It extracts language from Accept-Language header and stores a translator
// and a culture policy in the request context.
func I18n(i18nInstance *i18n.I18n, namespace string) func(http.Handler) http.Handler {
	return I18nWithConfig(I18nConfig{
		I18n:      i18nInstance,
		Namespace: namespace,
	})
}

// I18nWithConfig creates an i18n middleware with custom configuration.
func I18nWithConfig(cfg I18nConfig) func(http.Handler) http.Handler {
	if cfg.I18n == nil {
		panic("i18n middleware: i18n instance is required")
	}

	if cfg.Namespace == "" {
		panic("i18n middleware: namespace is required")
	}

	if cfg.FallbackLanguage == "" {
		cfg.FallbackLanguage = cfg.I18n.DefaultLanguage()
	}

	if cfg.LanguageExtractor == nil {
		cfg.LanguageExtractor = func(r *http.Request) string {
			acceptLang := r.Header.Get("Accept-Language")
			if acceptLang == "" {
				return cfg.FallbackLanguage
			}
			accepted := i18n.AcceptedLanguages(acceptLang, cfg.I18n.Languages())
			if len(accepted) == 0 {
				return cfg.FallbackLanguage
			}
			return accepted[0]
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			language := cfg.LanguageExtractor(r)
			if language == "" {
				language = cfg.FallbackLanguage
			}

			translator := i18n.NewTranslator(cfg.I18n, language, cfg.Namespace)
			policy := i18n.AcceptLanguage(r.Header.Get("Accept-Language"), cfg.I18n.Languages(), cfg.FallbackLanguage)

			ctx := context.WithValue(r.Context(), i18nTranslatorContextKey{}, translator)
			ctx = context.WithValue(ctx, i18nPolicyContextKey{}, policy)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetTranslator retrieves the i18n translator from the context.
func GetTranslator(ctx context.Context) (*i18n.Translator, bool) {
	translator, ok := ctx.Value(i18nTranslatorContextKey{}).(*i18n.Translator)
	return translator, ok
}

// GetCulturePolicy retrieves the culture policy built from the request's
// Accept-Language header. Attach it to keys with (*line.Part).CulturePolicy
// to resolve them in the client's preferred cultures.
func GetCulturePolicy(ctx context.Context) (line.CulturePolicy, bool) {
	policy, ok := ctx.Value(i18nPolicyContextKey{}).(line.CulturePolicy)
	return policy, ok
}
