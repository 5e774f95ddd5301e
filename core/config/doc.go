// Package config provides type-safe environment variable loading with caching
// using Go generics. Each configuration type is loaded once and cached for
// subsequent calls.
//
// The package automatically loads .env files on first use and uses the
// caarlos0/env library for parsing environment variables into struct fields.
//
// Basic usage:
//
//	import "github.com/ka4ep/lexical/core/config"
//
//	var cfg resolve.Config
//	if err := config.Load(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	r := resolve.NewFromConfig(cfg)
//
//	// Or panic on failure at startup
//	config.MustLoad(&cfg)
//
// # Caching Behavior
//
// Each configuration type is loaded only once per application lifetime:
//
//	var cfg1 resolve.Config
//	config.Load(&cfg1) // Loads from environment
//
//	var cfg2 resolve.Config
//	config.Load(&cfg2) // Returns cached value, cfg1 == cfg2
//
// Different types are cached independently:
//
//	// Each type has its own cache entry
//	config.MustLoad(&resolve.Config{})
//	config.MustLoad(&redisasset.Config{})
package config
