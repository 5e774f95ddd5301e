package linetree

import (
	"fmt"
	"slices"

	"github.com/ka4ep/lexical/core/line"
)

// Tree is a hierarchical view of a set of lines. Each node holds a key
// fragment; concatenating the fragments from the root down reconstructs the
// full key of the node. Children are owned by their parent and matched with
// the tree's comparer. The parent pointer is a back reference only.
//
// A Tree is not safe for concurrent modification.
type Tree struct {
	key      *line.Part
	values   []string
	children []*Tree
	index    map[string]*Tree
	parent   *Tree
	base     *line.Part
	cmp      *line.Comparer
}

// Option configures a tree.
type Option func(*Tree)

// WithRoot sets the chain fragments and full keys are built on.
func WithRoot(root *line.Part) Option {
	return func(t *Tree) {
		if root != nil {
			t.base = root
		}
	}
}

// WithComparer sets the comparer children are matched with.
func WithComparer(cmp *line.Comparer) Option {
	return func(t *Tree) {
		if cmp != nil {
			t.cmp = cmp
		}
	}
}

// New returns an empty tree.
func New(opts ...Option) *Tree {
	t := &Tree{base: line.NewRoot()}
	for _, opt := range opts {
		opt(t)
	}
	if t.cmp == nil {
		t.cmp = line.NewComparer(line.WithRoles(line.ClassificationOf(t.base)))
	}
	return t
}

// Key returns the key fragment of the node, nil at the root. The fragment is
// a chain built on the tree's root.
func (t *Tree) Key() *line.Part { return t.key }

// Parent returns the parent node, nil at the root.
func (t *Tree) Parent() *Tree { return t.parent }

// Children returns the child nodes in insertion order.
func (t *Tree) Children() []*Tree { return slices.Clone(t.children) }

// Values returns the format strings held by the node.
func (t *Tree) Values() []string { return slices.Clone(t.values) }

// AddValue appends a format string to the node.
func (t *Tree) AddValue(v string) {
	t.values = append(t.values, v)
}

// Base returns the chain fragments are built on.
func (t *Tree) Base() *line.Part { return t.base }

// fragmentID is the comparer identity of fragment followed by the
// parameters the comparer ignores, so hint-only fragments stay distinct.
func (t *Tree) fragmentID(fragment *line.Part) string {
	var extra []line.Parameter
	for _, o := range line.OccurrencesFromRoot(fragment) {
		if !o.Role(t.cmp.Classification()).IsKey() {
			extra = append(extra, o.Parameter)
		}
	}
	return t.cmp.Fingerprint(fragment) + "#" + line.FormatKey(extra)
}

// Find returns the child whose fragment equals fragment.
func (t *Tree) Find(fragment *line.Part) (*Tree, bool) {
	c, ok := t.index[t.fragmentID(fragment)]
	return c, ok
}

// Child returns the child whose fragment equals fragment, creating it when
// absent. fragment should be built on the tree's root; its root part is
// not kept when full keys are built.
func (t *Tree) Child(fragment *line.Part) *Tree {
	id := t.fragmentID(fragment)
	if c, ok := t.index[id]; ok {
		return c
	}
	c := &Tree{key: fragment, parent: t, base: t.base, cmp: t.cmp}
	if t.index == nil {
		t.index = make(map[string]*Tree)
	}
	t.index[id] = c
	t.children = append(t.children, c)
	return c
}

// ChildText is Child with the fragment given as key text.
func (t *Tree) ChildText(text string) (*Tree, error) {
	fragment, err := line.ParseKey(t.base, text)
	if err != nil {
		return nil, err
	}
	return t.Child(fragment), nil
}

// Add inserts value under the path of fragments, creating nodes as needed,
// and returns the node holding it.
func (t *Tree) Add(value string, path ...*line.Part) *Tree {
	n := t
	for _, f := range path {
		n = n.Child(f)
	}
	n.AddValue(value)
	return n
}

// FullKey concatenates the fragments from the root down to t.
func (t *Tree) FullKey() (*line.Part, error) {
	var path []*Tree
	for n := t; n != nil && n.parent != nil; n = n.parent {
		path = append(path, n)
	}
	key := t.base
	for i := len(path) - 1; i >= 0; i-- {
		var err error
		if key, err = line.Concat(key, path[i].key); err != nil {
			return nil, fmt.Errorf("linetree: full key: %w", err)
		}
	}
	return key, nil
}

// Walk visits t and its descendants depth first, parents before children,
// without recursion. It stops when fn returns false.
func (t *Tree) Walk(fn func(*Tree) bool) {
	stack := []*Tree{t}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !fn(n) {
			return
		}
		for i := len(n.children) - 1; i >= 0; i-- {
			stack = append(stack, n.children[i])
		}
	}
}

// Lines flattens the tree into lines: one per value, each the full key of
// its node with the value appended as a format string.
func (t *Tree) Lines() ([]*line.Part, error) {
	var (
		lines []*line.Part
		err   error
	)
	t.Walk(func(n *Tree) bool {
		if len(n.values) == 0 {
			return true
		}
		var key *line.Part
		if key, err = n.FullKey(); err != nil {
			return false
		}
		for _, v := range n.values {
			var l *line.Part
			if l, err = line.Append(key, line.KindValue, line.Args{Value: v}); err != nil {
				return false
			}
			lines = append(lines, l)
		}
		return true
	})
	if err != nil {
		return nil, err
	}
	return lines, nil
}

// Len returns the number of nodes, t included.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(*Tree) bool {
		n++
		return true
	})
	return n
}
