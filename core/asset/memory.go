package asset

import (
	"sync"

	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/linetree"
)

// Memory is an in-memory asset. Lines are indexed by the identity of their
// key, so a line added later replaces an equal one. Safe for concurrent use.
type Memory struct {
	mu      sync.RWMutex
	cmp     *line.Comparer
	buckets map[uint64][]*line.Part
	n       int
}

// MemoryOption configures a Memory asset.
type MemoryOption func(*Memory)

// WithComparer sets the comparer lines are matched with.
func WithComparer(cmp *line.Comparer) MemoryOption {
	return func(m *Memory) {
		if cmp != nil {
			m.cmp = cmp
		}
	}
}

// NewMemory returns an empty asset, optionally preloaded with lines.
func NewMemory(lines []*line.Part, opts ...MemoryOption) *Memory {
	m := &Memory{
		cmp:     line.DefaultComparer(),
		buckets: make(map[uint64][]*line.Part),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.Add(lines...)
	return m
}

// Add stores lines, replacing lines with an equal key.
func (m *Memory) Add(lines ...*line.Part) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range lines {
		if l == nil {
			continue
		}
		h := m.cmp.Hash(l)
		bucket := m.buckets[h]
		replaced := false
		for i, existing := range bucket {
			if m.cmp.Equal(existing, l) {
				bucket[i] = l
				replaced = true
				break
			}
		}
		if !replaced {
			m.buckets[h] = append(bucket, l)
			m.n++
		}
	}
}

// AddTree stores the lines of a tree.
func (m *Memory) AddTree(t *linetree.Tree) error {
	lines, err := t.Lines()
	if err != nil {
		return err
	}
	m.Add(lines...)
	return nil
}

// Remove deletes the line equal to key and reports whether it existed.
func (m *Memory) Remove(key *line.Part) bool {
	h := m.cmp.Hash(key)
	m.mu.Lock()
	defer m.mu.Unlock()
	bucket := m.buckets[h]
	for i, existing := range bucket {
		if m.cmp.Equal(existing, key) {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				delete(m.buckets, h)
			} else {
				m.buckets[h] = bucket
			}
			m.n--
			return true
		}
	}
	return false
}

// GetLine implements line.Asset.
func (m *Memory) GetLine(key *line.Part) (*line.Part, bool) {
	h := m.cmp.Hash(key)
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.buckets[h] {
		if m.cmp.Equal(l, key) {
			return l, true
		}
	}
	return nil, false
}

// Lines returns a snapshot of the stored lines in no particular order.
func (m *Memory) Lines() []*line.Part {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*line.Part, 0, m.n)
	for _, bucket := range m.buckets {
		out = append(out, bucket...)
	}
	return out
}

// Len returns the number of stored lines.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.n
}
