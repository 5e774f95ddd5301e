// Package lexical is a localization toolkit built on the line model: keys are
// immutable chains of parameters, assets map keys to format strings or
// binary resources, and a resolver picks the culture, the plural form and
// renders the placeholders.
//
// # Package Organization
//
// The module is organized into three groups:
//
//   - Core: the line model, resolution and the translation API
//   - Middleware: net/http integration
//   - Integrations: Redis storage and file formats
//
// # Getting Documentation
//
// For detailed documentation on any package, use the go doc command:
//
//	go doc github.com/ka4ep/lexical/core/line
//	go doc -all github.com/ka4ep/lexical/core/resolve
//
// # Core Packages
//
//	github.com/ka4ep/lexical/core/line      - Parts, chains, classification, comparison, status codes
//	github.com/ka4ep/lexical/core/format    - Numbered placeholder format strings
//	github.com/ka4ep/lexical/core/resolve   - Culture, plural and placeholder resolution
//	github.com/ka4ep/lexical/core/linetree  - Hierarchical line trees and map exchange
//	github.com/ka4ep/lexical/core/asset     - In-memory, composite and caching assets
//	github.com/ka4ep/lexical/core/cache     - Generic LRU cache
//	github.com/ka4ep/lexical/core/i18n      - Translation catalog, plural rules, locale formats, culture policies
//	github.com/ka4ep/lexical/core/logger    - slog setup, attributes and the resolution observer
//	github.com/ka4ep/lexical/core/config    - Type-safe environment variable loading
//
// # Middleware
//
//	github.com/ka4ep/lexical/middleware     - Accept-Language translator and culture policy
//
// # Integrations
//
//	github.com/ka4ep/lexical/integration/database/redis    - Redis connection with retry and health check
//	github.com/ka4ep/lexical/integration/asset/redisasset  - Lines stored in a Redis hash
//	github.com/ka4ep/lexical/integration/asset/goi18n      - go-i18n message files as an asset
//	github.com/ka4ep/lexical/integration/linefile          - YAML, TOML and JSON line files
//
// # Quick Start
//
//	root := line.NewRoot()
//	store := asset.NewMemory([]*line.Part{
//		root.Culture("en").Section("cart").Key("items").Format("{cardinal:0} items"),
//		root.Culture("en").Section("cart").Key("items").Parameter(line.ParamN, line.CaseOne).Format("{cardinal:0} item"),
//	})
//
//	r := resolve.New(
//		resolve.WithAsset(store),
//		resolve.WithFunctions(i18n.NewPluralTable()),
//		resolve.WithFormatProvider(i18n.NewLocaleFormats()),
//		resolve.WithObserver(logger.NewObserver(logger.New())),
//	)
//
//	res := r.Resolve(root.Culture("en").Section("cart").Key("items").FormatArgs(1))
//	fmt.Println(res.Value, res.Status) // 1 item ResolveOk|CultureOkRequested|...
//
// For the translation API with nested maps and Accept-Language handling see
// the i18n and middleware packages.
package lexical
