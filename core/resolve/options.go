package resolve

import (
	"log/slog"

	"github.com/ka4ep/lexical/core/line"
)

// Option configures a Resolver.
type Option func(*Resolver)

// WithAsset sets the asset used when the chain carries none.
func WithAsset(a line.Asset) Option {
	return func(r *Resolver) {
		if a != nil {
			r.asset = a
		}
	}
}

// WithCulturePolicy sets the policy used when the chain carries none.
func WithCulturePolicy(p line.CulturePolicy) Option {
	return func(r *Resolver) {
		if p != nil {
			r.policy = p
		}
	}
}

// WithCultures is WithCulturePolicy with a fixed list.
func WithCultures(cultures ...string) Option {
	return func(r *Resolver) {
		if len(cultures) > 0 {
			r.policy = line.CultureList(cultures)
		}
	}
}

// WithFormatProvider sets the provider used when the chain carries none.
func WithFormatProvider(fp line.FormatProvider) Option {
	return func(r *Resolver) {
		if fp != nil {
			r.formatProvider = fp
		}
	}
}

// WithFunctions sets the plural rule table used when the chain carries none.
func WithFunctions(f line.Functions) Option {
	return func(r *Resolver) {
		if f != nil {
			r.functions = f
		}
	}
}

// WithObserver adds an observer notified after every Resolve, in addition to
// the Logger parts of the chain.
func WithObserver(o line.Observer) Option {
	return func(r *Resolver) {
		if o != nil {
			r.observers = append(r.observers, o)
		}
	}
}

// WithDefaultCulture sets the culture used to render culture agnostic matches.
func WithDefaultCulture(culture string) Option {
	return func(r *Resolver) {
		r.defaultCulture = culture
	}
}

// WithFailureFormat sets the fmt format of failure placeholders. It receives
// the status and the key text.
func WithFailureFormat(format string) Option {
	return func(r *Resolver) {
		if format != "" {
			r.failureFormat = format
		}
	}
}

// WithLogger sets the logger reporting misbehaving collaborators.
// The default logger discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Resolver) {
		if logger != nil {
			r.logger = logger
		}
	}
}
