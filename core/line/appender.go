package line

import "fmt"

// Appender is the construction boundary of the line model: every part is
// created by an Appender. Custom appenders decorate DefaultAppender to
// restrict or observe construction; they are attached to a chain with a
// KindAppender part or as the root's appender.
type Appender interface {
	Append(prev *Part, kind Kind, args Args) (*Part, error)
}

// AppenderFunc adapts a function to Appender.
type AppenderFunc func(prev *Part, kind Kind, args Args) (*Part, error)

// Append implements Appender.
func (f AppenderFunc) Append(prev *Part, kind Kind, args Args) (*Part, error) {
	return f(prev, kind, args)
}

type defaultAppender struct{}

// DefaultAppender returns an appender that constructs every appendable kind.
func DefaultAppender() Appender {
	return defaultAppender{}
}

func (defaultAppender) Append(prev *Part, kind Kind, args Args) (*Part, error) {
	return construct(prev, kind, args)
}

// Restrict returns an appender that delegates to next only for the listed
// kinds and refuses the rest with ErrCannotAppend.
func Restrict(next Appender, kinds ...Kind) Appender {
	allowed := make(map[Kind]bool, len(kinds))
	for _, k := range kinds {
		allowed[k] = true
	}
	return AppenderFunc(func(prev *Part, kind Kind, args Args) (*Part, error) {
		if !allowed[kind] {
			return nil, &AppendError{Kind: kind, Err: ErrCannotAppend, Reason: "kind not allowed by restricted appender"}
		}
		return next.Append(prev, kind, args)
	})
}

// RootOption configures a root part.
type RootOption func(*Args)

// WithAppender sets the appender carried by the root.
func WithAppender(a Appender) RootOption {
	return func(args *Args) {
		if a != nil {
			args.Appender = a
		}
	}
}

// WithClassification sets the default parameter classification of chains
// built on the root.
func WithClassification(c Classification) RootOption {
	return func(args *Args) {
		if c != nil {
			args.Classification = c
		}
	}
}

// NewRoot creates a root part. Without options it carries DefaultAppender and
// DefaultTable.
func NewRoot(opts ...RootOption) *Part {
	args := &Args{
		Appender:       DefaultAppender(),
		Classification: DefaultTable(),
	}
	for _, opt := range opts {
		opt(args)
	}
	return &Part{kind: KindRoot, ext: args}
}

// AppenderOf returns the nearest appender walking tail to root.
func AppenderOf(chain *Part) Appender {
	for p := chain; p != nil; p = p.prev {
		if (p.kind == KindAppender || p.kind == KindRoot) && p.ext != nil && p.ext.Appender != nil {
			return p.ext.Appender
		}
	}
	return nil
}

// ClassificationOf returns the classification carried by the chain's root,
// or a fresh DefaultTable when the root carries none.
func ClassificationOf(chain *Part) Classification {
	for p := chain; p != nil; p = p.prev {
		if p.kind == KindRoot && p.ext != nil && p.ext.Classification != nil {
			return p.ext.Classification
		}
	}
	return DefaultTable()
}

// Append creates a part of the given kind on top of prev using the appender
// reachable from prev.
func Append(prev *Part, kind Kind, args Args) (*Part, error) {
	a := AppenderOf(prev)
	if a == nil {
		return nil, &AppendError{Kind: kind, Err: ErrNoAppender}
	}
	return a.Append(prev, kind, args)
}

func invalid(kind Kind, reason string) error {
	return &AppendError{Kind: kind, Err: ErrInvalidArgument, Reason: reason}
}

// construct validates args against the kind and allocates the part.
func construct(prev *Part, kind Kind, a Args) (*Part, error) {
	p := &Part{prev: prev, kind: kind}

	switch kind {
	case KindParameter, KindCanonicalKey, KindNonCanonicalKey, KindHint:
		if a.Name == "" {
			return nil, invalid(kind, "parameter name is empty")
		}
		p.name, p.value = a.Name, a.Value
	case KindCulture:
		p.name, p.value = ParamCulture, a.Value
	case KindModule:
		if a.Value == "" {
			return nil, invalid(kind, "module path is empty")
		}
		p.name, p.value = ParamModule, a.Value
	case KindTypeRef:
		if a.Type == nil {
			return nil, invalid(kind, "type is nil")
		}
		name := a.Type.String()
		if a.Type.Name() != "" && a.Type.PkgPath() != "" {
			name = a.Type.PkgPath() + "." + a.Type.Name()
		}
		p.name, p.value = ParamType, name
		p.ext = &Args{Type: a.Type}
	case KindParameters:
		if len(a.Parameters) == 0 {
			return nil, invalid(kind, "no parameters")
		}
		for i, param := range a.Parameters {
			if param.Name == "" {
				return nil, invalid(kind, fmt.Sprintf("parameter %d has empty name", i))
			}
		}
		p.ext = &Args{Parameters: append([]Parameter(nil), a.Parameters...)}
	case KindValue:
		p.value = a.Value
	case KindResource:
		if a.Resource == nil {
			return nil, invalid(kind, "resource is nil")
		}
		p.ext = &Args{Resource: append([]byte(nil), a.Resource...)}
	case KindFormatArgs:
		p.ext = &Args{FormatArgs: append([]any(nil), a.FormatArgs...)}
	case KindCulturePolicy:
		if a.CulturePolicy == nil {
			return nil, invalid(kind, "policy is nil")
		}
		p.ext = &Args{CulturePolicy: a.CulturePolicy}
	case KindAsset:
		if a.Asset == nil {
			return nil, invalid(kind, "asset is nil")
		}
		p.ext = &Args{Asset: a.Asset}
	case KindResolver:
		if a.Resolver == nil {
			return nil, invalid(kind, "resolver is nil")
		}
		p.ext = &Args{Resolver: a.Resolver}
	case KindFormatProvider:
		if a.FormatProvider == nil {
			return nil, invalid(kind, "format provider is nil")
		}
		p.ext = &Args{FormatProvider: a.FormatProvider}
	case KindFunctions:
		if a.Functions == nil {
			return nil, invalid(kind, "functions are nil")
		}
		p.ext = &Args{Functions: a.Functions}
	case KindLogger:
		if a.Observer == nil {
			return nil, invalid(kind, "observer is nil")
		}
		p.ext = &Args{Observer: a.Observer}
	case KindInlines:
		if a.Inlines == nil {
			return nil, invalid(kind, "inlines are nil")
		}
		p.ext = &Args{Inlines: a.Inlines}
	case KindAppender:
		if a.Appender == nil {
			return nil, invalid(kind, "appender is nil")
		}
		p.ext = &Args{Appender: a.Appender}
	default:
		// Roots are created by NewRoot only.
		return nil, &AppendError{Kind: kind, Err: ErrCannotAppend}
	}
	return p, nil
}
