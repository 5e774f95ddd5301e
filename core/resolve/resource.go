package resolve

import "github.com/ka4ep/lexical/core/line"

// Resource is the outcome of resolving binary content.
type Resource struct {
	Key     *line.Part
	Line    *line.Part
	Culture string
	Data    []byte
	Status  line.Status
}

// Ok reports whether the resource was found in the requested or a policy
// culture.
func (r Resource) Ok() bool {
	return r.Status.Ok()
}

func hasResource(l *line.Part) bool {
	return line.Find(l, line.KindResource) != nil
}

// ResolveResource looks up binary content the same way strings are looked
// up: culture candidates, then the culture agnostic key, then the key's own
// resource part. Data is nil when nothing matched.
func (r *Resolver) ResolveResource(key *line.Part) Resource {
	q := r.newRequest(key)

	m, status := q.find(hasResource)
	if m == nil {
		if !hasResource(key) {
			return Resource{Key: key, Status: status}
		}
		m = &match{
			line:    key,
			culture: q.renderCulture(),
			status:  line.ResolveOkFromKey | status.Get(line.SectionCulture),
		}
	}
	return Resource{
		Key:     key,
		Line:    m.line,
		Culture: m.culture,
		Data:    line.Find(m.line, line.KindResource).ResourceOf(),
		Status:  m.status,
	}
}
