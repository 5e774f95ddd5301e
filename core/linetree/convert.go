package linetree

import (
	"fmt"
	"maps"
	"slices"

	"github.com/ka4ep/lexical/core/line"
)

// FromLines groups lines into a tree. Each parameter of a line, root to tail,
// becomes one level; lines sharing a prefix share nodes. Parameters rejected
// by the qualifier are left out; nil keeps the parameters the tree's
// comparer takes into account. Lines without a format string are skipped.
func FromLines(lines []*line.Part, q line.Qualifier, opts ...Option) (*Tree, error) {
	t := New(opts...)
	cls := t.cmp.Classification()
	if q == nil {
		q = line.QualifierFunc(func(o line.Occurrence, _ int) bool {
			return o.Role(cls).IsKey()
		})
	}

	for _, l := range lines {
		text, ok := line.Find(l, line.KindValue).Text()
		if !ok {
			continue
		}
		n := t
		seen := make(map[string]int)
		for _, o := range line.OccurrencesFromRoot(l) {
			count := seen[o.Name]
			seen[o.Name] = count + 1
			if !q.Qualify(o, count) {
				continue
			}
			fragment, err := t.fragment(o)
			if err != nil {
				return nil, err
			}
			n = n.Child(fragment)
		}
		n.AddValue(text)
	}
	return t, nil
}

// fragment rebuilds a single occurrence on the tree's root, keeping the kind
// of dedicated parts.
func (t *Tree) fragment(o line.Occurrence) (*line.Part, error) {
	if o.Kind == line.KindParameter {
		return line.AppendParameter(t.base, o.Parameter)
	}
	return line.Append(t.base, o.Kind, o.Part.Args())
}

// FromMap builds a tree from nested maps as produced by JSON, YAML or TOML
// decoders. Keys are key text fragments ("Section:app" or
// "Section:app:Key:title"); string and scalar values become values of the
// node, lists hold several values, maps hold children. The empty key holds
// the values of the enclosing node itself.
func FromMap(m map[string]any, opts ...Option) (*Tree, error) {
	t := New(opts...)
	type frame struct {
		node *Tree
		m    map[string]any
	}
	stack := []frame{{node: t, m: m}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, k := range slices.Sorted(maps.Keys(f.m)) {
			node := f.node
			if k != "" {
				c, err := node.ChildText(k)
				if err != nil {
					return nil, fmt.Errorf("%w %q: %v", ErrInvalidKey, k, err)
				}
				node = c
			}
			switch v := f.m[k].(type) {
			case map[string]any:
				stack = append(stack, frame{node: node, m: v})
			case []any:
				for _, item := range v {
					s, err := scalar(item)
					if err != nil {
						return nil, fmt.Errorf("%w at %q: %v", ErrInvalidValue, k, err)
					}
					node.AddValue(s)
				}
			case []string:
				for _, s := range v {
					node.AddValue(s)
				}
			default:
				s, err := scalar(v)
				if err != nil {
					return nil, fmt.Errorf("%w at %q: %v", ErrInvalidValue, k, err)
				}
				node.AddValue(s)
			}
		}
	}
	return t, nil
}

func scalar(v any) (string, error) {
	switch v := v.(type) {
	case string:
		return v, nil
	case bool, int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64, float32, float64:
		return fmt.Sprint(v), nil
	default:
		return "", fmt.Errorf("unsupported type %T", v)
	}
}

// ToMap renders the tree as nested maps, the inverse of FromMap. A node
// without children and with one value becomes a string; several values
// become a list; a node with children becomes a map holding its own values
// under the empty key. Keys whose part kind gives a name a role the tree's
// classification does not are written as "Kind@Name".
func (t *Tree) ToMap() map[string]any {
	out := make(map[string]any)
	if v := valuesOf(t); v != nil {
		out[""] = v
	}
	type frame struct {
		node *Tree
		m    map[string]any
	}
	stack := []frame{{node: t, m: out}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for _, c := range f.node.children {
			k := t.fragmentText(c.key)
			if len(c.children) == 0 {
				if v := valuesOf(c); v != nil {
					f.m[k] = v
				}
				continue
			}
			m := make(map[string]any)
			if v := valuesOf(c); v != nil {
				m[""] = v
			}
			f.m[k] = m
			stack = append(stack, frame{node: c, m: m})
		}
	}
	return out
}

func valuesOf(t *Tree) any {
	switch len(t.values) {
	case 0:
		return nil
	case 1:
		return t.values[0]
	default:
		out := make([]any, len(t.values))
		for i, v := range t.values {
			out[i] = v
		}
		return out
	}
}

// fragmentText renders fragment as key text that FromMap reads back into
// a fragment of the same identity.
func (t *Tree) fragmentText(fragment *line.Part) string {
	return line.FormatOccurrences(line.OccurrencesFromRoot(fragment), t.cmp.Classification())
}
