package line

// Qualifier decides whether a parameter counts toward a comparison or a
// serialization pass. occurrence is the number of earlier parameters with the
// same name, counted root to tail.
type Qualifier interface {
	Qualify(o Occurrence, occurrence int) bool
}

// QualifierFunc adapts a function to Qualifier.
type QualifierFunc func(o Occurrence, occurrence int) bool

// Qualify implements Qualifier.
func (f QualifierFunc) Qualify(o Occurrence, occurrence int) bool {
	return f(o, occurrence)
}

// All qualifies every parameter.
func All() Qualifier {
	return QualifierFunc(func(Occurrence, int) bool { return true })
}

// FirstOccurrence qualifies only the first parameter of each name.
func FirstOccurrence() Qualifier {
	return QualifierFunc(func(_ Occurrence, occurrence int) bool { return occurrence == 0 })
}

// OnlyNames qualifies parameters with one of the given names.
func OnlyNames(names ...string) Qualifier {
	set := nameSet(names)
	return QualifierFunc(func(o Occurrence, _ int) bool { return set[o.Name] })
}

// ExcludeNames qualifies parameters whose name is not listed.
func ExcludeNames(names ...string) Qualifier {
	set := nameSet(names)
	return QualifierFunc(func(o Occurrence, _ int) bool { return !set[o.Name] })
}

// Roles qualifies parameters whose role under c is one of roles.
func Roles(c Classification, roles ...Role) Qualifier {
	return QualifierFunc(func(o Occurrence, _ int) bool {
		r := o.Role(c)
		for _, want := range roles {
			if r == want {
				return true
			}
		}
		return false
	})
}

// And qualifies a parameter when every q does. Nil entries are skipped.
func And(qs ...Qualifier) Qualifier {
	return QualifierFunc(func(o Occurrence, occurrence int) bool {
		for _, q := range qs {
			if q != nil && !q.Qualify(o, occurrence) {
				return false
			}
		}
		return true
	})
}

// Not inverts q.
func Not(q Qualifier) Qualifier {
	return QualifierFunc(func(o Occurrence, occurrence int) bool {
		return !q.Qualify(o, occurrence)
	})
}

func nameSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}
