package line

import (
	"maps"
	"strconv"
)

// Well-known parameter names.
const (
	ParamCulture   = "Culture"
	ParamSection   = "Section"
	ParamKey       = "Key"
	ParamType      = "Type"
	ParamModule    = "Module"
	ParamAssembly  = "Assembly"
	ParamLocation  = "Location"
	ParamResource  = "Resource"
	ParamBaseName  = "BaseName"
	ParamNamespace = "Namespace"
	ParamN         = "N"
)

// PluralParam returns the parameter name that selects the plural case of
// format argument i: "N" for argument 0, "N1", "N2", ... for the rest.
func PluralParam(i int) string {
	if i == 0 {
		return ParamN
	}
	return ParamN + strconv.Itoa(i)
}

// Parameter is an immutable name/value pair.
type Parameter struct {
	Name  string
	Value string
}

// String returns "Name:Value" with separators escaped.
func (p Parameter) String() string {
	return FormatKey([]Parameter{p})
}

// Role is the comparison role of a parameter.
type Role uint8

const (
	RoleUnclassified Role = iota
	RoleCanonicalKey
	RoleNonCanonicalKey
	RoleHint
)

// String returns the role name.
func (r Role) String() string {
	switch r {
	case RoleCanonicalKey:
		return "CanonicalKey"
	case RoleNonCanonicalKey:
		return "NonCanonicalKey"
	case RoleHint:
		return "Hint"
	default:
		return "Unclassified"
	}
}

// IsKey reports whether the role takes part in equality and hashing.
func (r Role) IsKey() bool {
	return r == RoleCanonicalKey || r == RoleNonCanonicalKey
}

// Classification maps parameter names to roles.
// It is consulted only for parts whose kind does not already declare a role.
type Classification interface {
	Role(name string) Role
}

// Table is a map based Classification. Unknown names are unclassified.
type Table map[string]Role

// Role implements Classification.
func (t Table) Role(name string) Role {
	return t[name]
}

// With returns a new table holding t overlaid with overrides.
func (t Table) With(overrides Table) Table {
	out := make(Table, len(t)+len(overrides))
	maps.Copy(out, t)
	maps.Copy(out, overrides)
	return out
}

// DefaultTable returns a fresh copy of the stock classification.
func DefaultTable() Table {
	t := Table{
		ParamCulture:   RoleNonCanonicalKey,
		ParamType:      RoleNonCanonicalKey,
		ParamModule:    RoleNonCanonicalKey,
		ParamAssembly:  RoleNonCanonicalKey,
		ParamSection:   RoleCanonicalKey,
		ParamKey:       RoleCanonicalKey,
		ParamLocation:  RoleCanonicalKey,
		ParamResource:  RoleCanonicalKey,
		ParamBaseName:  RoleCanonicalKey,
		ParamNamespace: RoleCanonicalKey,

		"FormatProvider": RoleHint,
		"Functions":      RoleHint,
		"Logger":         RoleHint,
		"PluralRules":    RoleHint,
		"StringFormat":   RoleHint,
		"CulturePolicy":  RoleHint,
		"Asset":          RoleHint,
	}
	for i := range 10 {
		t[PluralParam(i)] = RoleNonCanonicalKey
	}
	return t
}
