package resolve

import (
	"fmt"
	"log/slog"

	"github.com/ka4ep/lexical/core/format"
	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/logger"
)

// Resolver turns keys into formatted strings. Capabilities carried by the
// key (asset, culture policy, format provider, plural rules) take precedence
// over the resolver's own defaults. A Resolver is immutable after New and
// safe for concurrent use.
type Resolver struct {
	asset          line.Asset
	policy         line.CulturePolicy
	formatProvider line.FormatProvider
	functions      line.Functions
	observers      []line.Observer
	defaultCulture string
	failureFormat  string
	logger         *slog.Logger
}

// New creates a resolver.
func New(opts ...Option) *Resolver {
	cfg := DefaultConfig()
	r := &Resolver{
		defaultCulture: cfg.DefaultCulture,
		failureFormat:  cfg.FailureFormat,
		logger:         logger.Discard(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// NewFromConfig creates a resolver from configuration. Options override
// config values.
func NewFromConfig(cfg Config, opts ...Option) *Resolver {
	allOpts := append([]Option{
		WithCultures(cfg.Cultures...),
		WithDefaultCulture(cfg.DefaultCulture),
		WithFailureFormat(cfg.FailureFormat),
	}, opts...)
	return New(allOpts...)
}

var std = New()

// Resolve resolves key with a resolver that relies only on the capabilities
// carried by key.
func Resolve(key *line.Part) line.String {
	return std.Resolve(key)
}

// request is the state of one resolution.
type request struct {
	key            *line.Part
	asset          line.Asset
	policy         line.CulturePolicy
	culture        string
	hasCulture     bool
	defaultCulture string

	stripped    *line.Part
	strippedErr error
}

func (r *Resolver) newRequest(key *line.Part) *request {
	q := &request{
		key:            key,
		asset:          r.asset,
		policy:         r.policy,
		defaultCulture: r.defaultCulture,
	}
	if p := line.Find(key, line.KindAsset); p != nil {
		q.asset = p.AssetOf()
	}
	if p := line.Find(key, line.KindCulturePolicy); p != nil {
		q.policy = p.PolicyOf()
	}
	q.culture, q.hasCulture = line.EffectiveValue(key, line.ParamCulture, line.ClassificationOf(key))
	return q
}

// match is a line found for a request.
type match struct {
	line     *line.Part
	lookup   *line.Part
	culture  string
	agnostic bool
	status   line.Status
}

// lookup consults the inlines of the requested chain, then the asset.
func (q *request) lookup(key *line.Part) (*line.Part, line.Status, bool) {
	if l, ok := line.LookupInline(q.key, key); ok {
		return l, line.ResolveOkFromInline, true
	}
	if q.asset != nil {
		if l, ok := q.asset.GetLine(key); ok && l != nil {
			return l, line.ResolveOk, true
		}
	}
	return nil, 0, false
}

// find walks the culture candidates, then the culture agnostic key, and
// returns the first line accepted by pick. The returned status carries the
// resolve and culture codes of the failure when nothing matched.
func (q *request) find(pick func(*line.Part) bool) (*match, line.Status) {
	cands := q.candidates()
	missing := line.ResolveFailedNoResult

	for _, c := range cands {
		key, err := q.keyFor(c.culture)
		if err != nil {
			continue
		}
		l, code, ok := q.lookup(key)
		if !ok {
			continue
		}
		if !pick(l) {
			missing = line.ResolveFailedNoValue
			continue
		}
		return &match{line: l, lookup: key, culture: c.culture, status: code | c.code}, 0
	}

	agnostic := q.agnosticCode(cands)
	if key, err := q.agnosticKey(); err == nil {
		if l, code, ok := q.lookup(key); ok {
			if pick(l) {
				return &match{line: l, lookup: key, culture: q.renderCulture(), agnostic: true, status: code | agnostic}, 0
			}
			missing = line.ResolveFailedNoValue
		}
	}
	return nil, missing | agnostic
}

func (q *request) agnosticCode(cands []candidate) line.Status {
	if len(cands) == 0 {
		return line.CultureOkNone
	}
	return line.CultureWarningNoMatch
}

func hasText(l *line.Part) bool {
	return line.Find(l, line.KindValue) != nil
}

func textOf(l *line.Part) string {
	text, _ := line.Find(l, line.KindValue).Text()
	return text
}

// ResolveString performs a single resolution attempt. It implements
// line.StringResolver and never panics on missing data.
func (r *Resolver) ResolveString(key *line.Part) line.String {
	q := r.newRequest(key)

	m, status := q.find(hasText)
	if m == nil {
		if !hasText(key) {
			return r.failed(key, status)
		}
		// The key's own value is the default of last resort.
		m = &match{
			line:     key,
			lookup:   key,
			culture:  q.renderCulture(),
			agnostic: true,
			status:   line.ResolveOkFromKey | status.Get(line.SectionCulture),
		}
	}

	var args []any
	if p := line.Find(key, line.KindFormatArgs); p != nil {
		args = p.FormatArgsOf()
	}

	tpl := format.Parse(textOf(m.line))
	tpl, plural := r.plural(q, m, tpl, args)

	fp := r.formatProvider
	if p := line.Find(key, line.KindFormatProvider); p != nil {
		fp = p.FormatProviderOf()
	}
	text, rendered := tpl.Render(m.culture, args, fp)

	return line.String{
		Key:     key,
		Line:    m.line,
		Culture: m.culture,
		Format:  tpl.Source,
		Value:   text,
		Status:  m.status | plural | rendered,
	}
}

func (r *Resolver) failed(key *line.Part, status line.Status) line.String {
	return line.String{
		Key:    key,
		Value:  fmt.Sprintf(r.failureFormat, status, key),
		Status: status,
	}
}

// Resolve resolves key trying every Resolver part of the chain tail to root,
// or r itself when the chain carries none. The first Ok result wins;
// otherwise the result with the lowest severity, earliest on ties. The
// outcome is reported to the chain's Logger parts and r's observers.
func (r *Resolver) Resolve(key *line.Part) line.String {
	result := r.trial(key)
	r.Notify(key, result)
	return result
}

func (r *Resolver) trial(key *line.Part) line.String {
	var (
		best  line.String
		tried bool
	)
	for p := range line.PartsOf(key, line.KindResolver) {
		res := r.attempt(p.ResolverOf(), key)
		if !tried || res.Severity() < best.Severity() {
			best, tried = res, true
		}
		if best.Ok() {
			return best
		}
	}
	if !tried {
		return r.attempt(r, key)
	}
	return best
}

func (r *Resolver) attempt(sr line.StringResolver, key *line.Part) (res line.String) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("string resolver panicked",
				logger.Component("resolve"),
				logger.LineKey(key),
				slog.Any("panic", p),
				logger.Stack())
			res = r.failed(key, line.ResolveFailedNoResult)
		}
	}()
	return sr.ResolveString(key)
}

// Notify reports result to the Logger parts of key and to r's observers.
// A panicking observer is logged and skipped.
func (r *Resolver) Notify(key *line.Part, result line.String) {
	for p := range line.PartsOf(key, line.KindLogger) {
		r.observe(p.ObserverOf(), key, result)
	}
	for _, o := range r.observers {
		r.observe(o, key, result)
	}
}

func (r *Resolver) observe(o line.Observer, key *line.Part, result line.String) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Error("resolution observer panicked",
				logger.Component("resolve"),
				logger.LineKey(key),
				slog.Any("panic", p),
				logger.Stack())
		}
	}()
	o.Observe(key, result)
}
