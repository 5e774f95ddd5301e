package resolve

import "github.com/ka4ep/lexical/core/config"

// Config holds the environment driven defaults of a Resolver.
// Values carried by the resolved chain always take precedence.
type Config struct {
	// Cultures is the fallback culture list used when a chain carries neither
	// a culture nor a culture policy.
	Cultures []string `env:"LEXICAL_CULTURES" envSeparator:","`

	// DefaultCulture renders format arguments of culture agnostic matches.
	DefaultCulture string `env:"LEXICAL_DEFAULT_CULTURE" envDefault:"en"`

	// FailureFormat renders failed resolutions; it receives the status and
	// the key text.
	FailureFormat string `env:"LEXICAL_PLACEHOLDER_FORMAT" envDefault:"[%s] %s"`
}

// DefaultConfig returns the defaults used by New.
func DefaultConfig() Config {
	return Config{
		DefaultCulture: "en",
		FailureFormat:  "[%s] %s",
	}
}

// LoadConfig reads Config from the environment and a .env file in the
// working directory.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
