package line

import "reflect"

// The methods below append one part and return the new chain. They panic
// with *AppendError when the chain has no appender or the appender refuses
// the kind, which is a programming error; use Append to get the error instead.

func (p *Part) must(kind Kind, a Args) *Part {
	next, err := Append(p, kind, a)
	if err != nil {
		panic(err)
	}
	return next
}

// Parameter appends a generic parameter classified by the chain's table.
func (p *Part) Parameter(name, value string) *Part {
	return p.must(KindParameter, Args{Name: name, Value: value})
}

// Parameters appends an enumerable batch of generic parameters.
func (p *Part) Parameters(params ...Parameter) *Part {
	return p.must(KindParameters, Args{Parameters: params})
}

// CanonicalKey appends a position sensitive key.
func (p *Part) CanonicalKey(name, value string) *Part {
	return p.must(KindCanonicalKey, Args{Name: name, Value: value})
}

// NonCanonicalKey appends a position insensitive key.
func (p *Part) NonCanonicalKey(name, value string) *Part {
	return p.must(KindNonCanonicalKey, Args{Name: name, Value: value})
}

// Hint appends metadata ignored by comparison.
func (p *Part) Hint(name, value string) *Part {
	return p.must(KindHint, Args{Name: name, Value: value})
}

// Section appends a "Section" canonical key.
func (p *Part) Section(value string) *Part {
	return p.CanonicalKey(ParamSection, value)
}

// Key appends a "Key" canonical key.
func (p *Part) Key(value string) *Part {
	return p.CanonicalKey(ParamKey, value)
}

// Location appends a "Location" canonical key.
func (p *Part) Location(value string) *Part {
	return p.CanonicalKey(ParamLocation, value)
}

// Culture appends the culture of the request.
func (p *Part) Culture(culture string) *Part {
	return p.must(KindCulture, Args{Value: culture})
}

// Type appends a "Type" non-canonical key by name.
func (p *Part) Type(name string) *Part {
	return p.NonCanonicalKey(ParamType, name)
}

// TypeOf appends a type reference for the dynamic type of v.
func (p *Part) TypeOf(v any) *Part {
	return p.must(KindTypeRef, Args{Type: reflect.TypeOf(v)})
}

// Module appends a module reference.
func (p *Part) Module(path string) *Part {
	return p.must(KindModule, Args{Value: path})
}

// Format appends a format string carried by the key itself.
func (p *Part) Format(text string) *Part {
	return p.must(KindValue, Args{Value: text})
}

// Resource appends binary content carried by the key itself.
func (p *Part) Resource(data []byte) *Part {
	return p.must(KindResource, Args{Resource: data})
}

// FormatArgs appends the arguments applied to numbered placeholders.
func (p *Part) FormatArgs(args ...any) *Part {
	return p.must(KindFormatArgs, Args{FormatArgs: args})
}

// Asset appends an asset.
func (p *Part) Asset(a Asset) *Part {
	return p.must(KindAsset, Args{Asset: a})
}

// Resolver appends a string resolver.
func (p *Part) Resolver(r StringResolver) *Part {
	return p.must(KindResolver, Args{Resolver: r})
}

// CulturePolicy appends a culture policy.
func (p *Part) CulturePolicy(policy CulturePolicy) *Part {
	return p.must(KindCulturePolicy, Args{CulturePolicy: policy})
}

// FormatProvider appends a format provider.
func (p *Part) FormatProvider(fp FormatProvider) *Part {
	return p.must(KindFormatProvider, Args{FormatProvider: fp})
}

// Functions appends a plurality rule table.
func (p *Part) Functions(f Functions) *Part {
	return p.must(KindFunctions, Args{Functions: f})
}

// Logger appends an observer of resolution outcomes.
func (p *Part) Logger(o Observer) *Part {
	return p.must(KindLogger, Args{Observer: o})
}

// Appender appends an appender used for every part built after it.
func (p *Part) Appender(a Appender) *Part {
	return p.must(KindAppender, Args{Appender: a})
}
