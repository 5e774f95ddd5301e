package line

import (
	"fmt"
	"sync"
)

// Inlines maps key lines to override lines. Keys are matched with the
// comparer, so hints and capability parts on the requested chain do not
// affect the lookup. It is the only mutable payload a chain can carry and is
// guarded by its own lock.
type Inlines struct {
	mu      sync.RWMutex
	cmp     *Comparer
	buckets map[uint64][]inlineEntry
	n       int
}

type inlineEntry struct {
	key  *Part
	line *Part
}

// NewInlines returns an empty map using cmp, or DefaultComparer when nil.
func NewInlines(cmp *Comparer) *Inlines {
	if cmp == nil {
		cmp = DefaultComparer()
	}
	return &Inlines{cmp: cmp, buckets: make(map[uint64][]inlineEntry)}
}

// Comparer returns the comparer keys are matched with.
func (in *Inlines) Comparer() *Comparer {
	return in.cmp
}

// Get returns the line stored for key.
func (in *Inlines) Get(key *Part) (*Part, bool) {
	h := in.cmp.Hash(key)
	in.mu.RLock()
	defer in.mu.RUnlock()
	for _, e := range in.buckets[h] {
		if in.cmp.Equal(e.key, key) {
			return e.line, true
		}
	}
	return nil, false
}

// Set stores line for key, replacing an equal key.
func (in *Inlines) Set(key, line *Part) {
	h := in.cmp.Hash(key)
	in.mu.Lock()
	defer in.mu.Unlock()
	bucket := in.buckets[h]
	for i, e := range bucket {
		if in.cmp.Equal(e.key, key) {
			bucket[i] = inlineEntry{key: key, line: line}
			return
		}
	}
	in.buckets[h] = append(bucket, inlineEntry{key: key, line: line})
	in.n++
}

// Delete removes key and reports whether it was present.
func (in *Inlines) Delete(key *Part) bool {
	h := in.cmp.Hash(key)
	in.mu.Lock()
	defer in.mu.Unlock()
	bucket := in.buckets[h]
	for i, e := range bucket {
		if in.cmp.Equal(e.key, key) {
			bucket = append(bucket[:i], bucket[i+1:]...)
			if len(bucket) == 0 {
				delete(in.buckets, h)
			} else {
				in.buckets[h] = bucket
			}
			in.n--
			return true
		}
	}
	return false
}

// Len returns the number of entries.
func (in *Inlines) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return in.n
}

// Lines returns a snapshot of the stored lines in no particular order.
func (in *Inlines) Lines() []*Part {
	in.mu.RLock()
	defer in.mu.RUnlock()
	lines := make([]*Part, 0, in.n)
	for _, bucket := range in.buckets {
		for _, e := range bucket {
			lines = append(lines, e.line)
		}
	}
	return lines
}

// GetOrCreateInlines returns the inlines reachable from chain. When none is
// found toward the root a new one is appended to chain and the extended
// chain is returned; otherwise chain is returned unchanged.
func GetOrCreateInlines(chain *Part) (*Part, *Inlines, error) {
	if p := Find(chain, KindInlines); p != nil {
		return chain, p.ext.Inlines, nil
	}
	in := NewInlines(NewComparer(WithRoles(ClassificationOf(chain))))
	next, err := Append(chain, KindInlines, Args{Inlines: in})
	if err != nil {
		return nil, nil, err
	}
	return next, in, nil
}

// Inline stores value as the format string of chain+sub, replacing an equal
// key. The returned chain carries the inlines.
func Inline(chain, sub *Part, value string) (*Part, error) {
	chain, in, err := GetOrCreateInlines(chain)
	if err != nil {
		return nil, err
	}
	key, err := Concat(chain, sub)
	if err != nil {
		return nil, fmt.Errorf("inline %s: %w", sub, err)
	}
	line, err := Append(key, KindValue, Args{Value: value})
	if err != nil {
		return nil, err
	}
	in.Set(key, line)
	return chain, nil
}

// RemoveInline removes the entry for chain+sub from the inlines reachable
// from chain and reports whether one was present.
func RemoveInline(chain, sub *Part) (bool, error) {
	p := Find(chain, KindInlines)
	if p == nil {
		return false, nil
	}
	key, err := Concat(chain, sub)
	if err != nil {
		return false, fmt.Errorf("remove inline %s: %w", sub, err)
	}
	return p.ext.Inlines.Delete(key), nil
}

// InlineText is Inline with the sub key given as key text.
func InlineText(chain *Part, subKey, value string) (*Part, error) {
	entries, err := ParseEntries(subKey)
	if err != nil {
		return nil, err
	}
	chain, in, err := GetOrCreateInlines(chain)
	if err != nil {
		return nil, err
	}
	key := chain
	for _, e := range entries {
		if key, err = AppendEntry(key, e); err != nil {
			return nil, err
		}
	}
	line, err := Append(key, KindValue, Args{Value: value})
	if err != nil {
		return nil, err
	}
	in.Set(key, line)
	return chain, nil
}

// LookupInline searches chain tail to root for inlines holding key and
// returns the first hit, so the inlines closest to the tail win.
func LookupInline(chain, key *Part) (*Part, bool) {
	for p := range PartsOf(chain, KindInlines) {
		if line, ok := p.ext.Inlines.Get(key); ok {
			return line, true
		}
	}
	return nil, false
}
