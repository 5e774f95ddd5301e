package i18n_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ka4ep/lexical/core/i18n"
	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/logger"
	"github.com/ka4ep/lexical/core/resolve"
)

func TestNew(t *testing.T) {
	t.Run("creates instance with defaults", func(t *testing.T) {
		i18nInstance, err := i18n.New()
		require.NoError(t, err)
		assert.NotNil(t, i18nInstance)
	})

	t.Run("sets custom default language", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("pl"),
		)
		require.NoError(t, err)
		assert.NotNil(t, i18nInstance)
	})

	t.Run("returns error for empty default language", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithDefaultLanguage(""),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "language cannot be empty")
	})

	t.Run("loads translations", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithTranslations("en", "general", map[string]any{
				"hello": "Hello",
			}),
		)
		require.NoError(t, err)
		assert.NotNil(t, i18nInstance)
	})

	t.Run("returns error for empty language in translations", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithTranslations("", "general", map[string]any{
				"hello": "Hello",
			}),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "language cannot be empty")
	})

	t.Run("returns error for empty namespace in translations", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithTranslations("en", "", map[string]any{
				"hello": "Hello",
			}),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "namespace cannot be empty")
	})

	t.Run("allows empty translations map", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithTranslations("en", "general", map[string]any{}),
		)
		require.NoError(t, err)
		assert.NotNil(t, i18nInstance)
	})

	t.Run("sets custom plural rule", func(t *testing.T) {
		customRule := func(n float64) string {
			if n == 1 {
				return line.CaseOne
			}
			return line.CaseOther
		}

		i18nInstance, err := i18n.New(
			i18n.WithPluralRule("en", customRule),
		)
		require.NoError(t, err)
		assert.NotNil(t, i18nInstance)
	})

	t.Run("returns error for nil plural rule", func(t *testing.T) {
		_, err := i18n.New(
			i18n.WithPluralRule("en", nil),
		)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "plural rule cannot be nil")
	})
}

func TestT(t *testing.T) {
	setup := func() *i18n.I18n {
		i18nInstance, _ := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", "general", map[string]any{
				"hello":   "Hello",
				"welcome": "Welcome, %{name}!",
				"goodbye": "Goodbye, %{name}! See you %{when}.",
				"errors": map[string]any{
					"not_found": "Resource not found",
					"validation": map[string]any{
						"required": "Field %{field} is required",
						"email":    "Invalid email format",
					},
				},
			}),
			i18n.WithTranslations("pl", "general", map[string]any{
				"hello":   "Cześć",
				"welcome": "Witaj, %{name}!",
				"errors": map[string]any{
					"not_found": "Zasób nie znaleziony",
				},
			}),
		)
		return i18nInstance
	}

	t.Run("returns simple translation", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "hello")
		assert.Equal(t, "Hello", result)
	})

	t.Run("returns translation with placeholder", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "welcome", i18n.M{"name": "John"})
		assert.Equal(t, "Welcome, John!", result)
	})

	t.Run("returns translation with multiple placeholders", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "goodbye", i18n.M{
			"name": "Alice",
			"when": "tomorrow",
		})
		assert.Equal(t, "Goodbye, Alice! See you tomorrow.", result)
	})

	t.Run("merges multiple placeholder maps", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "goodbye",
			i18n.M{"name": "Bob"},
			i18n.M{"when": "later"},
		)
		assert.Equal(t, "Goodbye, Bob! See you later.", result)
	})

	t.Run("later placeholder maps override earlier ones", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "welcome",
			i18n.M{"name": "Initial"},
			i18n.M{"name": "Override"},
		)
		assert.Equal(t, "Welcome, Override!", result)
	})

	t.Run("returns nested translation using dot notation", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "errors.not_found")
		assert.Equal(t, "Resource not found", result)
	})

	t.Run("returns deeply nested translation", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "errors.validation.email")
		assert.Equal(t, "Invalid email format", result)
	})

	t.Run("returns nested translation with placeholder", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "errors.validation.required",
			i18n.M{"field": "username"},
		)
		assert.Equal(t, "Field username is required", result)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		i18nInstance := setup()
		// "goodbye" doesn't exist in Polish
		result := i18nInstance.T("pl", "general", "goodbye", i18n.M{
			"name": "Anna",
			"when": "jutro",
		})
		assert.Equal(t, "Goodbye, Anna! See you jutro.", result)
	})

	t.Run("returns key when translation not found", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "non.existent.key")
		assert.Equal(t, "non.existent.key", result)
	})

	t.Run("returns key when namespace not found", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "nonexistent", "hello")
		assert.Equal(t, "hello", result)
	})

	t.Run("leaves unmatched placeholders unchanged", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "welcome", i18n.M{"other": "value"})
		assert.Equal(t, "Welcome, %{name}!", result)
	})

	t.Run("handles empty placeholder maps", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "welcome")
		assert.Equal(t, "Welcome, %{name}!", result)
	})

	t.Run("handles nil placeholder maps", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.T("en", "general", "welcome", nil)
		assert.Equal(t, "Welcome, %{name}!", result)
	})
}

func TestTn(t *testing.T) {
	setup := func() *i18n.I18n {
		i18nInstance, _ := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithPluralRule("en", i18n.EnglishRule),
			i18n.WithPluralRule("pl", i18n.SlavicRule),
			i18n.WithTranslations("en", "general", map[string]any{
				"items": map[string]any{
					"zero":  "No items",
					"one":   "%{count} item",
					"other": "%{count} items",
				},
				"messages": map[string]any{
					"one":   "You have %{count} new message",
					"other": "You have %{count} new messages",
				},
			}),
			i18n.WithTranslations("pl", "general", map[string]any{
				"items": map[string]any{
					"zero": "Brak elementów",
					"one":  "%{count} element",
					"few":  "%{count} elementy",
					"many": "%{count} elementów",
				},
			}),
		)
		return i18nInstance
	}

	t.Run("selects correct plural form for English", func(t *testing.T) {
		i18nInstance := setup()

		assert.Equal(t, "No items", i18nInstance.Tn("en", "general", "items", 0))
		assert.Equal(t, "1 item", i18nInstance.Tn("en", "general", "items", 1))
		assert.Equal(t, "2 items", i18nInstance.Tn("en", "general", "items", 2))
		assert.Equal(t, "5 items", i18nInstance.Tn("en", "general", "items", 5))
		assert.Equal(t, "100 items", i18nInstance.Tn("en", "general", "items", 100))
	})

	t.Run("selects correct plural form for Polish", func(t *testing.T) {
		i18nInstance := setup()

		assert.Equal(t, "Brak elementów", i18nInstance.Tn("pl", "general", "items", 0))
		assert.Equal(t, "1 element", i18nInstance.Tn("pl", "general", "items", 1))
		assert.Equal(t, "2 elementy", i18nInstance.Tn("pl", "general", "items", 2))
		assert.Equal(t, "3 elementy", i18nInstance.Tn("pl", "general", "items", 3))
		assert.Equal(t, "4 elementy", i18nInstance.Tn("pl", "general", "items", 4))
		assert.Equal(t, "5 elementów", i18nInstance.Tn("pl", "general", "items", 5))
		assert.Equal(t, "12 elementów", i18nInstance.Tn("pl", "general", "items", 12))
		assert.Equal(t, "22 elementy", i18nInstance.Tn("pl", "general", "items", 22))
		assert.Equal(t, "100 elementów", i18nInstance.Tn("pl", "general", "items", 100))
	})

	t.Run("falls back to other form when specific form not found", func(t *testing.T) {
		i18nInstance := setup()
		// "messages" doesn't have "zero" form
		assert.Equal(t, "You have 0 new messages", i18nInstance.Tn("en", "general", "messages", 0))
	})

	t.Run("injects count placeholder automatically", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.Tn("en", "general", "items", 5)
		assert.Equal(t, "5 items", result)
	})

	t.Run("merges additional placeholders with count", func(t *testing.T) {
		i18nInstance, _ := i18n.New(
			i18n.WithTranslations("en", "general", map[string]any{
				"files": map[string]any{
					"one":   "%{count} file in %{folder}",
					"other": "%{count} files in %{folder}",
				},
			}),
		)

		result := i18nInstance.Tn("en", "general", "files", 3, i18n.M{"folder": "Documents"})
		assert.Equal(t, "3 files in Documents", result)
	})

	t.Run("additional placeholders can override count", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.Tn("en", "general", "items", 5, i18n.M{"count": "many"})
		assert.Equal(t, "many items", result)
	})

	t.Run("falls back to default language", func(t *testing.T) {
		i18nInstance := setup()
		// "messages" doesn't exist in Polish
		result := i18nInstance.Tn("pl", "general", "messages", 3)
		assert.Equal(t, "You have 3 new messages", result)
	})

	t.Run("returns key when translation not found", func(t *testing.T) {
		i18nInstance := setup()
		result := i18nInstance.Tn("en", "general", "nonexistent", 5)
		assert.Equal(t, "nonexistent", result)
	})

	t.Run("uses auto-assigned plural rule based on language code", func(t *testing.T) {
		i18nInstance, _ := i18n.New(
			i18n.WithTranslations("fr", "general", map[string]any{
				"items": map[string]any{
					"one":   "%{count} élément",
					"many":  "%{count} éléments (beaucoup)",
					"other": "%{count} éléments",
				},
			}),
		)

		// French uses RomanceRule: one (0,1), many (1M+), other
		assert.Equal(t, "0 élément", i18nInstance.Tn("fr", "general", "items", 0))
		assert.Equal(t, "1 élément", i18nInstance.Tn("fr", "general", "items", 1))
		assert.Equal(t, "3 éléments", i18nInstance.Tn("fr", "general", "items", 3))
		assert.Equal(t, "10 éléments", i18nInstance.Tn("fr", "general", "items", 10))
		assert.Equal(t, "100 éléments", i18nInstance.Tn("fr", "general", "items", 100))
		assert.Equal(t, "1000000 éléments (beaucoup)", i18nInstance.Tn("fr", "general", "items", 1000000))
	})

	t.Run("handles negative numbers", func(t *testing.T) {
		i18nInstance := setup()
		assert.Equal(t, "-1 item", i18nInstance.Tn("en", "general", "items", -1))
		assert.Equal(t, "-5 items", i18nInstance.Tn("en", "general", "items", -5))
	})
}

func TestFlattenTranslations(t *testing.T) {
	t.Run("flattens nested structures correctly", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithTranslations("en", "test", map[string]any{
				"simple": "Simple value",
				"nested": map[string]any{
					"level1": "Level 1",
					"deeper": map[string]any{
						"level2": "Level 2",
						"evenDeeper": map[string]any{
							"level3": "Level 3",
						},
					},
				},
				"plural": map[string]string{
					"one":   "One item",
					"other": "Many items",
				},
				"number":  42,
				"boolean": true,
			}),
		)
		require.NoError(t, err)

		// Test flattened keys work
		assert.Equal(t, "Simple value", i18nInstance.T("en", "test", "simple"))
		assert.Equal(t, "Level 1", i18nInstance.T("en", "test", "nested.level1"))
		assert.Equal(t, "Level 2", i18nInstance.T("en", "test", "nested.deeper.level2"))
		assert.Equal(t, "Level 3", i18nInstance.T("en", "test", "nested.deeper.evenDeeper.level3"))
		assert.Equal(t, "One item", i18nInstance.T("en", "test", "plural.one"))
		assert.Equal(t, "Many items", i18nInstance.T("en", "test", "plural.other"))
		assert.Equal(t, "42", i18nInstance.T("en", "test", "number"))
		assert.Equal(t, "true", i18nInstance.T("en", "test", "boolean"))
	})
}

func TestConcurrency(t *testing.T) {
	t.Run("concurrent reads are safe", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			i18n.WithDefaultLanguage("en"),
			i18n.WithTranslations("en", "general", map[string]any{
				"hello": "Hello",
				"world": "World",
				"items": map[string]any{
					"one":   "%{count} item",
					"other": "%{count} items",
				},
			}),
		)
		require.NoError(t, err)

		// Run multiple goroutines accessing the same instance
		done := make(chan bool, 100)
		for i := 0; i < 100; i++ {
			go func(n int) {
				defer func() { done <- true }()

				// Mix different types of operations
				switch n % 3 {
				case 0:
					result := i18nInstance.T("en", "general", "hello")
					assert.Equal(t, "Hello", result)
				case 1:
					result := i18nInstance.T("en", "general", "world")
					assert.Equal(t, "World", result)
				case 2:
					result := i18nInstance.Tn("en", "general", "items", n)
					if n == 1 {
						assert.Equal(t, "1 item", result)
					} else {
						assert.Contains(t, result, "items")
					}
				}
			}(i)
		}

		// Wait for all goroutines to complete
		for i := 0; i < 100; i++ {
			<-done
		}
	})
}

func TestAutoPluraRuleAssignment(t *testing.T) {
	t.Run("automatically assigns appropriate plural rule based on language", func(t *testing.T) {
		i18nInstance, err := i18n.New(
			// Don't explicitly set plural rules
			i18n.WithTranslations("en", "general", map[string]any{
				"items": map[string]any{
					"zero":  "No items",
					"one":   "One item",
					"other": "%{count} items",
				},
			}),
			i18n.WithTranslations("pl", "general", map[string]any{
				"items": map[string]any{
					"zero": "Brak",
					"one":  "Jeden",
					"few":  "Kilka %{count}",
					"many": "Wiele %{count}",
				},
			}),
			i18n.WithTranslations("ar", "general", map[string]any{
				"items": map[string]any{
					"zero":  "صفر",
					"one":   "واحد",
					"two":   "اثنان",
					"few":   "قليل %{count}",
					"many":  "كثير %{count}",
					"other": "آخر %{count}",
				},
			}),
		)
		require.NoError(t, err)

		// Test English (EnglishRule)
		assert.Equal(t, "No items", i18nInstance.Tn("en", "general", "items", 0))
		assert.Equal(t, "One item", i18nInstance.Tn("en", "general", "items", 1))
		assert.Equal(t, "5 items", i18nInstance.Tn("en", "general", "items", 5))

		// Test Polish (SlavicRule)
		assert.Equal(t, "Kilka 3", i18nInstance.Tn("pl", "general", "items", 3))
		assert.Equal(t, "Wiele 5", i18nInstance.Tn("pl", "general", "items", 5))

		// Test Arabic (ArabicRule)
		assert.Equal(t, "واحد", i18nInstance.Tn("ar", "general", "items", 1))
		assert.Equal(t, "اثنان", i18nInstance.Tn("ar", "general", "items", 2))
		assert.Equal(t, "قليل 3", i18nInstance.Tn("ar", "general", "items", 3))
		assert.Equal(t, "كثير 11", i18nInstance.Tn("ar", "general", "items", 11))
	})
}

func TestLines(t *testing.T) {
	t.Parallel()

	root := line.NewRoot()
	cart := root.Culture("en").Section("app").Key("cart")
	tr, err := i18n.New(
		i18n.WithLines(
			cart.Format("{cardinal:0} items in cart"),
			cart.Parameter(line.ParamN, line.CaseOne).Format("{cardinal:0} item in cart"),
			root.Culture("de").Section("app").Key("total").Format("Summe: {0:N2}"),
		),
	)
	require.NoError(t, err)

	t.Run("resolver selects plural line", func(t *testing.T) {
		t.Parallel()
		res := tr.Resolver().Resolve(tr.Key("en", "app", "cart").FormatArgs(1))
		assert.Equal(t, "1 item in cart", res.Value)
		assert.Equal(t, line.PluralityOkMatched, res.Status.Get(line.SectionPlurality))

		res = tr.Resolver().Resolve(tr.Key("en", "app", "cart").FormatArgs(3))
		assert.Equal(t, "3 items in cart", res.Value)
	})

	t.Run("Tn uses numbered placeholders", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "1 item in cart", tr.Tn("en", "app", "cart", 1))
		assert.Equal(t, "7 items in cart", tr.Tn("en-GB", "app", "cart", 7))
	})

	t.Run("format arguments use locale formats", func(t *testing.T) {
		t.Parallel()
		res := tr.Resolver().Resolve(tr.Key("de", "app", "total").FormatArgs(1234.5))
		assert.Equal(t, "Summe: 1.234,50", res.Value)
		assert.True(t, res.Ok())
	})
}

func TestFallbackCultures(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(
		i18n.WithDefaultLanguage("en"),
		i18n.WithTranslations("en", "general", map[string]any{"color": "color", "hello": "Hello"}),
		i18n.WithTranslations("en-GB", "general", map[string]any{"color": "colour"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "colour", tr.T("en-GB", "general", "color"))
	assert.Equal(t, "Hello", tr.T("en-GB", "general", "hello"))
	assert.Equal(t, "color", tr.T("en-US", "general", "color"))
	assert.Equal(t, "Hello", tr.T("fr", "general", "hello"))

	res := tr.Resolve("en-GB", "general", "hello")
	assert.Equal(t, "en", res.Culture)
	assert.Equal(t, line.ResolveOk, res.Status.Get(line.SectionResolve))
}

func TestMissingKeys(t *testing.T) {
	t.Parallel()

	var (
		missing  []string
		observed []line.String
	)
	tr, err := i18n.New(
		i18n.WithTranslations("en", "general", map[string]any{"hello": "Hello"}),
		i18n.WithMissingKeyHandler(func(lang, namespace, key string) {
			missing = append(missing, lang+"/"+namespace+"/"+key)
		}),
		i18n.WithObserver(line.ObserverFunc(func(_ *line.Part, res line.String) {
			observed = append(observed, res)
		})),
	)
	require.NoError(t, err)

	assert.Equal(t, "Hello", tr.T("pl", "general", "hello"))
	assert.Equal(t, "absent", tr.T("pl", "general", "absent"))

	assert.Equal(t, []string{"pl/general/absent"}, missing)
	require.Len(t, observed, 2)
	assert.True(t, observed[0].Ok())
	assert.True(t, observed[1].Failed())

	res := tr.Resolve("pl", "general", "absent")
	assert.Equal(t, line.ResolveFailedNoResult, res.Status.Get(line.SectionResolve))
}

func TestPanickingObserver(t *testing.T) {
	t.Parallel()

	var (
		buf  bytes.Buffer
		seen int
	)
	tr, err := i18n.New(
		i18n.WithTranslations("en", "app", map[string]any{"hi": "Hello"}),
		i18n.WithLogger(logger.New(logger.WithJSONFormatter(), logger.WithLevel(slog.LevelDebug), logger.WithOutput(&buf))),
		i18n.WithObserver(line.ObserverFunc(func(*line.Part, line.String) { panic("boom") })),
		i18n.WithObserver(line.ObserverFunc(func(*line.Part, line.String) { seen++ })),
	)
	require.NoError(t, err)

	var got string
	require.NotPanics(t, func() { got = tr.T("en", "app", "hi") })
	assert.Equal(t, "Hello", got)
	require.NotPanics(t, func() { got = tr.T("en", "app", "absent") })
	assert.Equal(t, "absent", got)

	assert.Equal(t, 2, seen)
	assert.Contains(t, buf.String(), "resolution observer panicked")
}

func TestLanguages(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(
		i18n.WithDefaultLanguage("pl"),
		i18n.WithLanguages("en", "de", "pl", "", "en"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"pl", "de", "en"}, tr.Languages())
	assert.Equal(t, "pl", tr.DefaultLanguage())
	assert.Equal(t, line.CultureList{"de-AT", "de", "pl", ""}, tr.Policy("de-AT"))

	tr, err = i18n.New(
		i18n.WithLanguages("fi", "de"),
		i18n.WithDefaultLanguage("sv"),
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"sv", "de", "fi"}, tr.Languages())

	tr, err = i18n.New()
	require.NoError(t, err)
	assert.Equal(t, []string{i18n.DefaultLang}, tr.Languages())
}

func TestCatalogSharedWithResolver(t *testing.T) {
	t.Parallel()

	tr, err := i18n.New(
		i18n.WithTranslations("en", "general", map[string]any{"hello": "Hello, {0}"}),
	)
	require.NoError(t, err)

	// Braces of loaded translations are literal for the resolver.
	res := tr.Resolver().Resolve(tr.Key("en", "general", "hello").FormatArgs("Ann"))
	assert.Equal(t, "Hello, {0}", res.Value)
	assert.Equal(t, line.PlaceholderOkNotUsed, res.Status.Get(line.SectionPlaceholder))

	r := resolve.New(resolve.WithAsset(tr.Asset()), resolve.WithCulturePolicy(i18n.Fallback("en-US")))
	res = r.Resolve(line.NewRoot().Section("general").Key("hello"))
	assert.Equal(t, "Hello, {0}", res.Value)
	assert.Equal(t, "en", res.Culture)
}
