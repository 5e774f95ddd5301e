package redisasset

import (
	"time"

	"github.com/ka4ep/lexical/core/config"
)

// Config holds the settings of a Redis line store.
type Config struct {
	// Hash is the Redis hash holding the lines.
	Hash string `env:"LEXICAL_REDIS_HASH" envDefault:"lexical:lines"`
	// Timeout bounds each lookup made through GetLine.
	Timeout time.Duration `env:"LEXICAL_REDIS_TIMEOUT" envDefault:"500ms"`
}

// DefaultConfig returns the default settings.
func DefaultConfig() Config {
	return Config{
		Hash:    "lexical:lines",
		Timeout: 500 * time.Millisecond,
	}
}

// MustLoadConfig reads Config from the environment and panics when a
// variable cannot be parsed.
func MustLoadConfig() Config {
	var cfg Config
	config.MustLoad(&cfg)
	return cfg
}
