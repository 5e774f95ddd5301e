package line

import (
	"reflect"
	"slices"
)

// Args carries the construction arguments of a part.
// Only the fields relevant to the kind being appended are read.
type Args struct {
	Name  string
	Value string

	Parameters     []Parameter
	Resource       []byte
	FormatArgs     []any
	Type           reflect.Type
	Asset          Asset
	Resolver       StringResolver
	CulturePolicy  CulturePolicy
	FormatProvider FormatProvider
	Functions      Functions
	Observer       Observer
	Inlines        *Inlines
	Appender       Appender
	Classification Classification
}

// Part is one immutable node of a chain. A chain is referenced by its tail
// part; the nil *Part is the empty chain. Parts are only created by an
// Appender and never change afterwards, so chains may share prefixes and be
// read concurrently without locking.
type Part struct {
	prev  *Part
	kind  Kind
	name  string
	value string
	ext   *Args
}

// Kind returns the part kind.
func (p *Part) Kind() Kind {
	if p == nil {
		return KindInvalid
	}
	return p.kind
}

// Previous returns the parent part, nil at the root.
func (p *Part) Previous() *Part {
	if p == nil {
		return nil
	}
	return p.prev
}

// Param returns the single parameter carried by parameter-bearing kinds.
func (p *Part) Param() (Parameter, bool) {
	if p == nil || !p.kind.HasParameter() {
		return Parameter{}, false
	}
	return Parameter{Name: p.name, Value: p.value}, true
}

// Text returns the format string of a KindValue part.
func (p *Part) Text() (string, bool) {
	if p == nil || p.kind != KindValue {
		return "", false
	}
	return p.value, true
}

// Args returns a copy of the arguments the part was built from.
func (p *Part) Args() Args {
	if p == nil {
		return Args{}
	}
	var a Args
	if p.ext != nil {
		a = *p.ext
		a.Parameters = slices.Clone(a.Parameters)
		a.Resource = slices.Clone(a.Resource)
		a.FormatArgs = slices.Clone(a.FormatArgs)
	}
	a.Name = p.name
	a.Value = p.value
	return a
}

// The accessors below return the payload of capability parts without copying.

func (p *Part) extArgs() *Args {
	if p == nil || p.ext == nil {
		return &Args{}
	}
	return p.ext
}

// AssetOf returns the asset of a KindAsset part.
func (p *Part) AssetOf() Asset { return p.extArgs().Asset }

// ResolverOf returns the resolver of a KindResolver part.
func (p *Part) ResolverOf() StringResolver { return p.extArgs().Resolver }

// PolicyOf returns the policy of a KindCulturePolicy part.
func (p *Part) PolicyOf() CulturePolicy { return p.extArgs().CulturePolicy }

// FormatProviderOf returns the provider of a KindFormatProvider part.
func (p *Part) FormatProviderOf() FormatProvider { return p.extArgs().FormatProvider }

// FunctionsOf returns the rule table of a KindFunctions part.
func (p *Part) FunctionsOf() Functions { return p.extArgs().Functions }

// ObserverOf returns the observer of a KindLogger part.
func (p *Part) ObserverOf() Observer { return p.extArgs().Observer }

// InlinesOf returns the map of a KindInlines part.
func (p *Part) InlinesOf() *Inlines { return p.extArgs().Inlines }

// FormatArgsOf returns the arguments of a KindFormatArgs part. Callers must not modify them.
func (p *Part) FormatArgsOf() []any { return p.extArgs().FormatArgs }

// ResourceOf returns the bytes of a KindResource part. Callers must not modify them.
func (p *Part) ResourceOf() []byte { return p.extArgs().Resource }

// ReflectType returns the reflect.Type of a KindTypeRef part.
func (p *Part) ReflectType() reflect.Type { return p.extArgs().Type }

// String renders the parameters of the chain root to tail, for diagnostics.
func (p *Part) String() string {
	occs := OccurrencesFromRoot(p)
	params := make([]Parameter, len(occs))
	for i, o := range occs {
		params[i] = o.Parameter
	}
	return FormatKey(params)
}
