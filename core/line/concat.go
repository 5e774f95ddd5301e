package line

// partsFromRoot returns the parts of chain root to tail.
func partsFromRoot(chain *Part) []*Part {
	parts := make([]*Part, 0, Len(chain))
	for p := chain; p != nil; p = p.prev {
		parts = append(parts, p)
	}
	for i, j := 0, len(parts)-1; i < j; i, j = i+1, j-1 {
		parts[i], parts[j] = parts[j], parts[i]
	}
	return parts
}

// Concat rebuilds the parts of b on top of a, keeping b's order. Root parts
// of b are skipped. Appending goes through the appender reachable from a, so
// b's own appenders apply only to parts built after them.
func Concat(a, b *Part) (*Part, error) {
	chain := a
	for _, p := range partsFromRoot(b) {
		if p.kind == KindRoot {
			continue
		}
		next, err := Append(chain, p.kind, p.Args())
		if err != nil {
			return nil, err
		}
		chain = next
	}
	return chain, nil
}

// Filter rebuilds chain keeping the parameters for which keep returns true.
// Parts without parameters are kept. Enumerable parts are filtered entry by
// entry and dropped when no entry remains.
func Filter(chain *Part, keep func(Occurrence) bool) (*Part, error) {
	var out *Part
	for _, p := range partsFromRoot(chain) {
		switch {
		case p.kind == KindRoot:
			out = p
			continue
		case p.kind.HasParameter():
			if !keep(Occurrence{Parameter: Parameter{Name: p.name, Value: p.value}, Kind: p.kind, Part: p}) {
				continue
			}
		case p.kind == KindParameters:
			var kept []Parameter
			for _, param := range p.ext.Parameters {
				if keep(Occurrence{Parameter: param, Kind: KindParameter, Part: p}) {
					kept = append(kept, param)
				}
			}
			if len(kept) == 0 {
				continue
			}
			next, err := Append(out, KindParameters, Args{Parameters: kept})
			if err != nil {
				return nil, err
			}
			out = next
			continue
		}
		next, err := Append(out, p.kind, p.Args())
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}

// WithoutValue returns chain without its KindValue and KindResource parts.
func WithoutValue(chain *Part) (*Part, error) {
	if Find(chain, KindValue) == nil && Find(chain, KindResource) == nil {
		return chain, nil
	}
	var out *Part
	for _, p := range partsFromRoot(chain) {
		if p.kind == KindRoot {
			out = p
			continue
		}
		if p.kind == KindValue || p.kind == KindResource {
			continue
		}
		next, err := Append(out, p.kind, p.Args())
		if err != nil {
			return nil, err
		}
		out = next
	}
	return out, nil
}
