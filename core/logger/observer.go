package logger

import (
	"context"
	"log/slog"

	"github.com/ka4ep/lexical/core/line"
)

// Observer logs resolution outcomes. Ok results are logged at debug level,
// degraded ones at warn and failures at error.
type Observer struct {
	log *slog.Logger
}

// NewObserver creates an observer writing to log, or to the slog default
// logger when log is nil.
func NewObserver(log *slog.Logger) *Observer {
	if log == nil {
		log = slog.Default()
	}
	return &Observer{log: log.With(Component("lexical"))}
}

// Observe implements line.Observer.
func (o *Observer) Observe(key *line.Part, res line.String) {
	level := slog.LevelDebug
	switch res.Severity() {
	case line.SeverityWarning:
		level = slog.LevelWarn
	case line.SeverityError, line.SeverityFailed:
		level = slog.LevelError
	}

	ctx := context.Background()
	if !o.log.Enabled(ctx, level) {
		return
	}
	o.log.LogAttrs(ctx, level, "string resolved",
		LineKey(key),
		Culture(res.Culture),
		Status(res.Status),
		Severity(res.Status),
		Resolution(res),
	)
}
