package redisasset

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/logger"
)

// ErrCorruptRecord is returned when a stored record cannot be decoded.
var ErrCorruptRecord = errors.New("redisasset: corrupt record")

// Asset stores lines in a Redis hash. Fields are the comparer fingerprints
// of the line keys, so lookups need a single HGET. It implements line.Asset
// and is safe for concurrent use.
type Asset struct {
	client  redis.UniversalClient
	cmp     *line.Comparer
	root    *line.Part
	hash    string
	timeout time.Duration
	batch   int64
	logger  *slog.Logger
}

// Option configures an Asset.
type Option func(*Asset)

// WithComparer sets the comparer keys are fingerprinted with.
func WithComparer(cmp *line.Comparer) Option {
	return func(a *Asset) {
		if cmp != nil {
			a.cmp = cmp
		}
	}
}

// WithRoot sets the root lines read back from Redis are built on.
func WithRoot(root *line.Part) Option {
	return func(a *Asset) {
		if root != nil {
			a.root = root
		}
	}
}

// WithHash sets the Redis hash name.
func WithHash(hash string) Option {
	return func(a *Asset) {
		if hash != "" {
			a.hash = hash
		}
	}
}

// WithTimeout bounds each GetLine call.
func WithTimeout(d time.Duration) Option {
	return func(a *Asset) {
		if d > 0 {
			a.timeout = d
		}
	}
}

// WithScanBatchSize sets the HSCAN count used by Lines.
func WithScanBatchSize(n int) Option {
	return func(a *Asset) {
		if n > 0 {
			a.batch = int64(n)
		}
	}
}

// WithLogger sets the logger lookup errors are reported to.
func WithLogger(l *slog.Logger) Option {
	return func(a *Asset) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an asset on client.
func New(client redis.UniversalClient, opts ...Option) *Asset {
	cfg := DefaultConfig()
	a := &Asset{
		client:  client,
		cmp:     line.DefaultComparer(),
		root:    line.NewRoot(),
		hash:    cfg.Hash,
		timeout: cfg.Timeout,
		batch:   1000,
		logger:  logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// NewFromConfig creates an asset from configuration. Options override
// config values.
func NewFromConfig(client redis.UniversalClient, cfg Config, opts ...Option) *Asset {
	return New(client, append([]Option{WithHash(cfg.Hash), WithTimeout(cfg.Timeout)}, opts...)...)
}

type param struct {
	Kind  string `json:"k"`
	Name  string `json:"n"`
	Value string `json:"v"`
}

type record struct {
	Params   []param `json:"p"`
	Text     *string `json:"t,omitempty"`
	Resource []byte  `json:"r,omitempty"`
}

func encode(l *line.Part) ([]byte, error) {
	var rec record
	for _, o := range line.OccurrencesFromRoot(l) {
		kind := o.Kind
		if kind == line.KindTypeRef {
			// The reflect.Type cannot be stored; the name keeps the identity.
			kind = line.KindNonCanonicalKey
		}
		rec.Params = append(rec.Params, param{Kind: kind.String(), Name: o.Name, Value: o.Value})
	}
	if text, ok := line.Find(l, line.KindValue).Text(); ok {
		rec.Text = &text
	} else if p := line.Find(l, line.KindResource); p != nil {
		rec.Resource = p.ResourceOf()
	} else {
		return nil, fmt.Errorf("redisasset: line %s has no value", l)
	}
	return json.Marshal(rec)
}

func (a *Asset) decode(data []byte) (*line.Part, error) {
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	l := a.root
	for _, p := range rec.Params {
		kind, ok := line.ParseKind(p.Kind)
		if !ok {
			return nil, fmt.Errorf("%w: unknown kind %q", ErrCorruptRecord, p.Kind)
		}
		var err error
		if l, err = line.Append(l, kind, line.Args{Name: p.Name, Value: p.Value}); err != nil {
			return nil, errors.Join(ErrCorruptRecord, err)
		}
	}

	var err error
	switch {
	case rec.Text != nil:
		l, err = line.Append(l, line.KindValue, line.Args{Value: *rec.Text})
	case rec.Resource != nil:
		l, err = line.Append(l, line.KindResource, line.Args{Resource: rec.Resource})
	default:
		err = errors.New("record has no value")
	}
	if err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}
	return l, nil
}

// Store writes lines, replacing lines with an equal key.
func (a *Asset) Store(ctx context.Context, lines ...*line.Part) error {
	if len(lines) == 0 {
		return nil
	}
	values := make(map[string]any, len(lines))
	for _, l := range lines {
		data, err := encode(l)
		if err != nil {
			return err
		}
		values[a.cmp.Fingerprint(l)] = data
	}
	if err := a.client.HSet(ctx, a.hash, values).Err(); err != nil {
		return fmt.Errorf("redisasset: store: %w", err)
	}
	a.logger.Debug("lines stored",
		logger.Component("redisasset"),
		logger.Count("lines", len(values)),
	)
	return nil
}

// Delete removes the lines equal to keys and returns how many existed.
func (a *Asset) Delete(ctx context.Context, keys ...*line.Part) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}
	fields := make([]string, len(keys))
	for i, k := range keys {
		fields[i] = a.cmp.Fingerprint(k)
	}
	n, err := a.client.HDel(ctx, a.hash, fields...).Result()
	if err != nil {
		return 0, fmt.Errorf("redisasset: delete: %w", err)
	}
	return n, nil
}

// Len returns the number of stored lines.
func (a *Asset) Len(ctx context.Context) (int64, error) {
	n, err := a.client.HLen(ctx, a.hash).Result()
	if err != nil {
		return 0, fmt.Errorf("redisasset: len: %w", err)
	}
	return n, nil
}

// Lines reads every stored line. The hash is scanned in batches so large
// catalogs do not block the server.
func (a *Asset) Lines(ctx context.Context) ([]*line.Part, error) {
	var (
		out    []*line.Part
		cursor uint64
	)
	start := time.Now()
	for {
		kv, next, err := a.client.HScan(ctx, a.hash, cursor, "", a.batch).Result()
		if err != nil {
			return nil, fmt.Errorf("redisasset: lines: %w", err)
		}
		// kv alternates field and value.
		for i := 1; i < len(kv); i += 2 {
			l, err := a.decode([]byte(kv[i]))
			if err != nil {
				return nil, err
			}
			out = append(out, l)
		}
		if next == 0 {
			a.logger.Debug("lines scanned",
				logger.Component("redisasset"),
				logger.Count("lines", len(out)),
				logger.Elapsed(start),
			)
			return out, nil
		}
		cursor = next
	}
}

// Lookup returns the line equal to key.
func (a *Asset) Lookup(ctx context.Context, key *line.Part) (*line.Part, bool, error) {
	data, err := a.client.HGet(ctx, a.hash, a.cmp.Fingerprint(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redisasset: lookup: %w", err)
	}
	l, err := a.decode(data)
	if err != nil {
		return nil, false, err
	}
	return l, true, nil
}

// GetLine implements line.Asset. Redis errors are logged and reported as a
// miss so resolution continues with the next candidate.
func (a *Asset) GetLine(key *line.Part) (*line.Part, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), a.timeout)
	defer cancel()

	l, ok, err := a.Lookup(ctx, key)
	if err != nil {
		a.logger.Warn("line lookup failed",
			logger.Component("redisasset"),
			logger.LineKey(key),
			logger.Error(err),
		)
		return nil, false
	}
	return l, ok
}
