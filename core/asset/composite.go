package asset

import "github.com/ka4ep/lexical/core/line"

// Composite queries assets in order and returns the first hit.
type Composite []line.Asset

// NewComposite returns a composite of the non-nil assets.
func NewComposite(assets ...line.Asset) Composite {
	out := make(Composite, 0, len(assets))
	for _, a := range assets {
		if a != nil {
			out = append(out, a)
		}
	}
	return out
}

// GetLine implements line.Asset.
func (c Composite) GetLine(key *line.Part) (*line.Part, bool) {
	for _, a := range c {
		if l, ok := a.GetLine(key); ok {
			return l, true
		}
	}
	return nil, false
}
