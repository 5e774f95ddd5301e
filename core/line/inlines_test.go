package line_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/ka4ep/lexical/core/line"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func valueOf(t *testing.T, l *line.Part) string {
	t.Helper()
	text, ok := line.Find(l, line.KindValue).Text()
	require.True(t, ok)
	return text
}

func TestInline(t *testing.T) {
	t.Parallel()

	t.Run("overwrite keeps the latest value", func(t *testing.T) {
		t.Parallel()
		chain := line.NewRoot().Section("app")
		chain, err := line.InlineText(chain, "Key:hello", "Hello")
		require.NoError(t, err)
		chain, err = line.InlineText(chain, "Key:hello", "Hi")
		require.NoError(t, err)

		l, ok := line.LookupInline(chain, line.NewRoot().Section("app").Key("hello"))
		require.True(t, ok)
		assert.Equal(t, "Hi", valueOf(t, l))

		_, in, err := line.GetOrCreateInlines(chain)
		require.NoError(t, err)
		assert.Equal(t, 1, in.Len())
	})

	t.Run("reuses inlines found toward the root", func(t *testing.T) {
		t.Parallel()
		chain, in, err := line.GetOrCreateInlines(line.NewRoot())
		require.NoError(t, err)
		child := chain.Section("s")

		same, in2, err := line.GetOrCreateInlines(child)
		require.NoError(t, err)
		assert.Same(t, child, same)
		assert.Same(t, in, in2)
	})

	t.Run("lookup ignores hints and capabilities", func(t *testing.T) {
		t.Parallel()
		root := line.NewRoot()
		chain, err := line.Inline(root.Section("s"), line.NewRoot().Key("k"), "v")
		require.NoError(t, err)

		l, ok := line.LookupInline(chain, root.Section("s").Hint("Logger", "x").Key("k").FormatArgs(1))
		require.True(t, ok)
		assert.Equal(t, "v", valueOf(t, l))
	})

	t.Run("inlines closest to the tail win", func(t *testing.T) {
		t.Parallel()
		outer, err := line.InlineText(line.NewRoot(), "Key:k", "outer")
		require.NoError(t, err)
		inner, err := line.Append(outer.Section("s"), line.KindInlines, line.Args{Inlines: line.NewInlines(nil)})
		require.NoError(t, err)
		inner.InlinesOf().Set(line.NewRoot().Key("k"), line.NewRoot().Key("k").Format("inner"))

		l, ok := line.LookupInline(inner, line.NewRoot().Key("k"))
		require.True(t, ok)
		assert.Equal(t, "inner", valueOf(t, l))

		l, ok = line.LookupInline(outer, line.NewRoot().Key("k"))
		require.True(t, ok)
		assert.Equal(t, "outer", valueOf(t, l))
	})

	t.Run("empty value is stored", func(t *testing.T) {
		t.Parallel()
		chain, err := line.InlineText(line.NewRoot(), "Key:k", "")
		require.NoError(t, err)
		l, ok := line.LookupInline(chain, line.NewRoot().Key("k"))
		require.True(t, ok)
		assert.Equal(t, "", valueOf(t, l))
	})

	t.Run("remove", func(t *testing.T) {
		t.Parallel()
		chain, err := line.InlineText(line.NewRoot(), "Key:k", "v")
		require.NoError(t, err)

		removed, err := line.RemoveInline(chain, line.NewRoot().Key("k"))
		require.NoError(t, err)
		assert.True(t, removed)

		_, ok := line.LookupInline(chain, line.NewRoot().Key("k"))
		assert.False(t, ok)

		removed, err = line.RemoveInline(line.NewRoot(), line.NewRoot().Key("k"))
		require.NoError(t, err)
		assert.False(t, removed)
	})

	t.Run("malformed sub key", func(t *testing.T) {
		t.Parallel()
		_, err := line.InlineText(line.NewRoot(), "Key", "v")
		assert.ErrorIs(t, err, line.ErrMalformedKey)
	})
}

func TestInlinesConcurrentWriters(t *testing.T) {
	t.Parallel()

	in := line.NewInlines(nil)
	root := line.NewRoot()

	var wg sync.WaitGroup
	for i := range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range 50 {
				key := root.Key(fmt.Sprintf("k%d", j))
				in.Set(key, key.Format(fmt.Sprintf("w%d", i)))
				_, _ = in.Get(key)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, in.Len())
	assert.Len(t, in.Lines(), 50)
}
