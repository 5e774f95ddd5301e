package line

import (
	"fmt"
	"iter"
	"slices"
)

// All walks are iterative tail to root; chain length is caller controlled.

// Parts yields the parts of chain from tail to root.
func Parts(chain *Part) iter.Seq[*Part] {
	return func(yield func(*Part) bool) {
		for p := chain; p != nil; p = p.prev {
			if !yield(p) {
				return
			}
		}
	}
}

// PartsOf yields the parts of the given kind from tail to root.
func PartsOf(chain *Part, kind Kind) iter.Seq[*Part] {
	return func(yield func(*Part) bool) {
		for p := chain; p != nil; p = p.prev {
			if p.kind == kind && !yield(p) {
				return
			}
		}
	}
}

// Find returns the first part of the given kind walking tail to root.
func Find(chain *Part, kind Kind) *Part {
	for p := chain; p != nil; p = p.prev {
		if p.kind == kind {
			return p
		}
	}
	return nil
}

// Get is Find that fails with ErrNotFound.
func Get(chain *Part, kind Kind) (*Part, error) {
	if p := Find(chain, kind); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNotFound, kind)
}

// Root returns the root-most part of chain.
func Root(chain *Part) *Part {
	p := chain
	for p != nil && p.prev != nil {
		p = p.prev
	}
	return p
}

// Len returns the number of parts in chain.
func Len(chain *Part) int {
	n := 0
	for p := chain; p != nil; p = p.prev {
		n++
	}
	return n
}

// Occurrence is one parameter seen during a walk. Entries of an enumerable
// part are reported individually with KindParameter.
type Occurrence struct {
	Parameter
	Kind Kind
	Part *Part
}

// Role returns the effective role of the occurrence: the role declared by its
// kind, or the classification's role for generic parameters.
func (o Occurrence) Role(c Classification) Role {
	switch o.Kind {
	case KindCanonicalKey:
		return RoleCanonicalKey
	case KindNonCanonicalKey, KindCulture, KindTypeRef, KindModule:
		return RoleNonCanonicalKey
	case KindHint:
		return RoleHint
	default:
		if c == nil {
			return RoleUnclassified
		}
		return c.Role(o.Name)
	}
}

// Occurrences yields every parameter of chain from tail to root. Entries of
// an enumerable part are yielded last to first.
func Occurrences(chain *Part) iter.Seq[Occurrence] {
	return func(yield func(Occurrence) bool) {
		for p := chain; p != nil; p = p.prev {
			switch {
			case p.kind.HasParameter():
				if !yield(Occurrence{Parameter: Parameter{Name: p.name, Value: p.value}, Kind: p.kind, Part: p}) {
					return
				}
			case p.kind == KindParameters && p.ext != nil:
				params := p.ext.Parameters
				for i := len(params) - 1; i >= 0; i-- {
					if !yield(Occurrence{Parameter: params[i], Kind: KindParameter, Part: p}) {
						return
					}
				}
			}
		}
	}
}

// OccurrencesFromRoot materializes every parameter of chain from root to tail.
func OccurrencesFromRoot(chain *Part) []Occurrence {
	occs := slices.Collect(Occurrences(chain))
	slices.Reverse(occs)
	return occs
}

// EffectiveValue returns the value in force for the named parameter.
// When any occurrence has the NonCanonicalKey role the occurrence closest to
// the root wins; otherwise the occurrence closest to the tail wins.
func EffectiveValue(chain *Part, name string, c Classification) (string, bool) {
	var (
		tail, root       string
		hasTail, hasRoot bool
	)
	for o := range Occurrences(chain) {
		if o.Name != name {
			continue
		}
		if o.Role(c) == RoleNonCanonicalKey {
			// Keep overwriting: the last match of a tail to root walk is root-most.
			root, hasRoot = o.Value, true
			continue
		}
		if !hasTail {
			tail, hasTail = o.Value, true
		}
	}
	if hasRoot {
		return root, true
	}
	return tail, hasTail
}

// CanonicalKeys returns the canonical parameters root to tail, duplicates kept.
func CanonicalKeys(chain *Part, c Classification) []Parameter {
	var keys []Parameter
	for _, o := range OccurrencesFromRoot(chain) {
		if o.Role(c) == RoleCanonicalKey {
			keys = append(keys, o.Parameter)
		}
	}
	return keys
}

// NonCanonicalKeys returns the effective non-canonical parameters, one per
// name, choosing the occurrence closest to the root.
func NonCanonicalKeys(chain *Part, c Classification) map[string]string {
	keys := make(map[string]string)
	for o := range Occurrences(chain) {
		if o.Role(c) == RoleNonCanonicalKey {
			keys[o.Name] = o.Value
		}
	}
	return keys
}
