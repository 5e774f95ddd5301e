package logger

import (
	"log/slog"
	"runtime"
	"strconv"
	"time"

	"github.com/ka4ep/lexical/core/line"
)

// Attribute helpers return the empty Attr for nil or empty input, so calls
// like log.Info("msg", logger.Error(err)) need no nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	// Count non-nil errors first to allocate exact size
	count := 0
	for _, err := range errs {
		if err != nil {
			count++
		}
	}
	if count == 0 {
		return slog.Attr{}
	}

	as := make([]slog.Attr, 0, count)
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// Returns empty Attr for nil errors, enabling safe usage without nil checks.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// ============================================================================
// Performance and Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed calculates and logs the duration since the start time.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Action creates an attribute for action names.
func Action(action string) slog.Attr {
	return slog.String("action", action)
}

// Result creates an attribute for operation results (success/failure/pending).
func Result(result string) slog.Attr {
	return slog.String("result", result)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// RetryCount creates an attribute for retry attempts.
func RetryCount(count int) slog.Attr {
	return slog.Int("retry_count", count)
}

// ============================================================================
// Localization
// ============================================================================

// LineKey renders a key chain as key text under "key". Empty chains are dropped.
func LineKey(key *line.Part) slog.Attr {
	if key == nil {
		return slog.Attr{}
	}
	return slog.String("key", key.String())
}

// Culture creates an attribute for a culture name. The invariant culture is
// logged as an empty string.
func Culture(culture string) slog.Attr {
	return slog.String("culture", culture)
}

// Status creates an attribute listing the codes of a resolution status.
func Status(s line.Status) slog.Attr {
	return slog.String("status", s.String())
}

// Severity creates an attribute for the worst severity of a status.
func Severity(s line.Status) slog.Attr {
	return slog.String("severity", s.Severity().String())
}

// Resolution groups the format string and rendered value of a resolution
// under "resolution".
func Resolution(res line.String) slog.Attr {
	return Group("resolution",
		slog.String("format", res.Format),
		slog.String("value", res.Value),
	)
}

// ============================================================================
// Debugging
// ============================================================================

// Stack captures and returns the current stack trace.
func Stack() slog.Attr {
	const size = 64 << 10
	buf := make([]byte, size)
	buf = buf[:runtime.Stack(buf, false)]
	return slog.String("stack", string(buf))
}
