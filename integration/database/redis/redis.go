package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ka4ep/lexical/core/logger"
)

// Options parses cfg.ConnectionURL into client options.
func Options(cfg Config) (*redis.Options, error) {
	if cfg.ConnectionURL == "" {
		return nil, ErrEmptyConnectionURL
	}
	if !strings.HasPrefix(cfg.ConnectionURL, "redis://") && !strings.HasPrefix(cfg.ConnectionURL, "rediss://") {
		return nil, fmt.Errorf("%w: unsupported scheme", ErrFailedToParseRedisConnString)
	}
	opts, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseRedisConnString, err)
	}
	return opts, nil
}

// ConnectOption configures Connect.
type ConnectOption func(*connectOptions)

type connectOptions struct {
	logger *slog.Logger
}

// WithLogger sets the logger reporting connection attempts.
// The default logger discards everything.
func WithLogger(l *slog.Logger) ConnectOption {
	return func(o *connectOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// Connect creates a client and waits until it answers PING. Attempts are
// spaced by RetryInterval, doubling after each failure, within
// ConnectTimeout.
func Connect(ctx context.Context, cfg Config, opts ...ConnectOption) (*redis.Client, error) {
	o := connectOptions{logger: logger.Discard()}
	for _, opt := range opts {
		opt(&o)
	}
	log := o.logger.With(logger.Component("redis"), logger.Action("ping"))

	redisOpts, err := Options(cfg)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(redisOpts)

	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}

	start := time.Now()
	attempts := max(cfg.RetryAttempts, 1)
	interval := cfg.RetryInterval
	var lastErr error
	for attempt := range attempts {
		if lastErr = client.Ping(ctx).Err(); lastErr == nil {
			log.Debug("redis connected", logger.Result("ok"), logger.RetryCount(attempt), logger.Elapsed(start))
			return client, nil
		}
		if attempt == attempts-1 {
			break
		}
		log.Warn("redis not ready, retrying",
			logger.RetryCount(attempt+1),
			logger.Duration(interval),
			logger.Error(lastErr),
		)
		select {
		case <-ctx.Done():
			_ = client.Close()
			log.Error("redis connect aborted", logger.Result("failed"), logger.Elapsed(start), logger.Errors(ctx.Err(), lastErr))
			return nil, errors.Join(ErrRedisNotReady, ctx.Err(), lastErr)
		case <-time.After(interval):
		}
		interval *= 2
	}
	_ = client.Close()
	log.Error("redis connect failed", logger.Result("failed"), logger.RetryCount(attempts-1), logger.Elapsed(start), logger.Error(lastErr))
	return nil, errors.Join(ErrRedisNotReady, lastErr)
}

// Healthcheck returns a function that pings client.
func Healthcheck(client redis.UniversalClient) func(context.Context) error {
	return func(ctx context.Context) error {
		if err := client.Ping(ctx).Err(); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}
