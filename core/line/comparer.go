package line

import (
	"encoding/binary"
	"maps"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Comparer defines the identity of chains: the ordered sequence of canonical
// keys plus the set of effective non-canonical keys. Hints and capability
// parts never take part. A Comparer is immutable and safe for concurrent use.
type Comparer struct {
	roles     Classification
	qualifier Qualifier
}

// ComparerOption configures a Comparer.
type ComparerOption func(*Comparer)

// WithRoles sets the classification used for generic parameters.
func WithRoles(c Classification) ComparerOption {
	return func(cmp *Comparer) {
		if c != nil {
			cmp.roles = c
		}
	}
}

// WithQualifier restricts which parameters take part in identity.
func WithQualifier(q Qualifier) ComparerOption {
	return func(cmp *Comparer) {
		cmp.qualifier = q
	}
}

// NewComparer returns a comparer using DefaultTable unless configured otherwise.
func NewComparer(opts ...ComparerOption) *Comparer {
	cmp := &Comparer{roles: DefaultTable()}
	for _, opt := range opts {
		opt(cmp)
	}
	return cmp
}

var defaultComparer = NewComparer()

// DefaultComparer returns the shared comparer built with DefaultTable.
func DefaultComparer() *Comparer {
	return defaultComparer
}

// Classification returns the comparer's classification.
func (c *Comparer) Classification() Classification {
	return c.roles
}

// Identity returns the identity relevant parameters of chain: canonical keys
// root to tail with duplicates kept, and non-canonical keys where the
// occurrence closest to the root wins.
func (c *Comparer) Identity(chain *Part) ([]Parameter, map[string]string) {
	var (
		canonical []Parameter
		nonCanon  = make(map[string]string)
		seen      = make(map[string]int)
	)
	for _, o := range OccurrencesFromRoot(chain) {
		n := seen[o.Name]
		seen[o.Name] = n + 1

		role := o.Role(c.roles)
		if !role.IsKey() {
			continue
		}
		if c.qualifier != nil && !c.qualifier.Qualify(o, n) {
			continue
		}
		if role == RoleCanonicalKey {
			canonical = append(canonical, o.Parameter)
			continue
		}
		if _, ok := nonCanon[o.Name]; !ok {
			nonCanon[o.Name] = o.Value
		}
	}
	return canonical, nonCanon
}

// Equal reports whether a and b have the same identity.
func (c *Comparer) Equal(a, b *Part) bool {
	if a == b {
		return true
	}
	ca, na := c.Identity(a)
	cb, nb := c.Identity(b)
	return slices.Equal(ca, cb) && maps.Equal(na, nb)
}

// Hash returns a hash consistent with Equal.
func (c *Comparer) Hash(chain *Part) uint64 {
	canonical, nonCanon := c.Identity(chain)

	d := xxhash.New()
	for _, p := range canonical {
		writeParam(d, p.Name, p.Value)
	}

	// Summing per-entry hashes keeps the map part independent of order.
	var sum uint64
	for name, value := range nonCanon {
		e := xxhash.New()
		writeParam(e, name, value)
		sum += e.Sum64()
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], sum)
	_, _ = d.Write(buf[:])
	return d.Sum64()
}

func writeParam(d *xxhash.Digest, name, value string) {
	_, _ = d.WriteString(name)
	_, _ = d.Write([]byte{0})
	_, _ = d.WriteString(value)
	_, _ = d.Write([]byte{0})
}

// Fingerprint returns a stable text form of chain's identity: the canonical
// keys in order, then "|", then the non-canonical keys sorted by name.
// Two chains are Equal exactly when their fingerprints are equal.
func (c *Comparer) Fingerprint(chain *Part) string {
	canonical, nonCanon := c.Identity(chain)
	names := slices.Sorted(maps.Keys(nonCanon))
	params := make([]Parameter, len(names))
	for i, n := range names {
		params[i] = Parameter{Name: n, Value: nonCanon[n]}
	}

	var b strings.Builder
	b.WriteString(FormatKey(canonical))
	b.WriteRune(keyGroup)
	b.WriteString(FormatKey(params))
	return b.String()
}
