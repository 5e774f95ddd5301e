package linetree_test

import (
	"testing"

	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/linetree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sameLines reports whether a and b hold the same lines by key identity and value.
func sameLines(t *testing.T, a, b []*line.Part) {
	t.Helper()
	require.Len(t, b, len(a))
	cmp := line.DefaultComparer()
	for _, la := range a {
		found := false
		for _, lb := range b {
			if cmp.Equal(la, lb) && valueOf(la) == valueOf(lb) {
				found = true
				break
			}
		}
		assert.True(t, found, "line %s not found", la)
	}
}

func valueOf(l *line.Part) string {
	text, _ := line.Find(l, line.KindValue).Text()
	return text
}

func TestFromLinesRoundTrip(t *testing.T) {
	t.Parallel()
	root := line.NewRoot()

	lines := []*line.Part{
		root.Section("app").Key("title").Culture("en").Format("Title"),
		root.Section("app").Key("title").Culture("fi").Format("Otsikko"),
		root.Section("app").Key("body").Culture("en").Format("Body"),
		root.Section("app").Section("nested").Key("k").Format("Nested"),
		root.Culture("en").Hint("Logger", "x").Section("other").Format("Other"),
		root.Parameters(line.Parameter{Name: "Section", Value: "batch"}, line.Parameter{Name: "Key", Value: "b"}).Format("Batch"),
		root.TypeOf(struct{ A int }{}).Key("typed").Format("Typed"),
		root.Section("no value"),
	}

	tree, err := linetree.FromLines(lines, nil)
	require.NoError(t, err)

	out, err := tree.Lines()
	require.NoError(t, err)
	sameLines(t, lines[:len(lines)-1], out)

	app, ok := tree.Find(root.Section("app"))
	require.True(t, ok)
	assert.Len(t, app.Children(), 3)
	assert.Nil(t, tree.Parent())
	assert.Same(t, tree, app.Parent())
}

func TestFromLinesQualifier(t *testing.T) {
	t.Parallel()
	root := line.NewRoot()

	lines := []*line.Part{
		root.Section("s").Key("k").Culture("en").Format("en"),
		root.Section("s").Key("k").Culture("fi").Format("fi"),
	}
	tree, err := linetree.FromLines(lines, line.ExcludeNames(line.ParamCulture))
	require.NoError(t, err)

	s, ok := tree.Find(root.Section("s"))
	require.True(t, ok)
	k, ok := s.Find(root.Key("k"))
	require.True(t, ok)
	assert.Equal(t, []string{"en", "fi"}, k.Values())
}

func TestTreeBuild(t *testing.T) {
	t.Parallel()

	tree := linetree.New()
	root := tree.Base()

	n := tree.Add("Hello", root.Section("greeting"), root.Culture("en"))
	assert.Same(t, n, tree.Child(root.Section("greeting")).Child(root.Culture("en")))

	key, err := n.FullKey()
	require.NoError(t, err)
	assert.Equal(t, "Section:greeting:Culture:en", key.String())

	child, err := tree.ChildText("Section:greeting")
	require.NoError(t, err)
	assert.Same(t, tree.Child(root.Section("greeting")), child)

	_, err = tree.ChildText("Section")
	assert.ErrorIs(t, err, line.ErrMalformedKey)

	assert.Equal(t, 3, tree.Len())
}

func TestFromMap(t *testing.T) {
	t.Parallel()

	tree, err := linetree.FromMap(map[string]any{
		"Section:app": map[string]any{
			"":           "App",
			"Key:title":  "Title",
			"Key:count":  3,
			"Key:choice": []any{"a", "b"},
			"Culture:fi": map[string]any{
				"Key:title": "Otsikko",
			},
		},
	})
	require.NoError(t, err)

	lines, err := tree.Lines()
	require.NoError(t, err)

	root := line.NewRoot()
	sameLines(t, []*line.Part{
		root.Section("app").Format("App"),
		root.Section("app").Key("title").Format("Title"),
		root.Section("app").Key("count").Format("3"),
		root.Section("app").Key("choice").Format("a"),
		root.Section("app").Key("choice").Format("b"),
		root.Section("app").Culture("fi").Key("title").Format("Otsikko"),
	}, lines)

	back := tree.ToMap()
	assert.Equal(t, map[string]any{
		"Section:app": map[string]any{
			"":           "App",
			"Key:title":  "Title",
			"Key:count":  "3",
			"Key:choice": []any{"a", "b"},
			"Culture:fi": map[string]any{
				"Key:title": "Otsikko",
			},
		},
	}, back)
}

func TestMapRoundTripKeepsKinds(t *testing.T) {
	t.Parallel()
	root := line.NewRoot()
	cmp := line.DefaultComparer()

	lines := []*line.Part{
		root.CanonicalKey("Group", "a").Format("A"),
		root.CanonicalKey("Group", "b").Format("B"),
		root.Culture("en").NonCanonicalKey("Tenant", "acme").Key("k").Format("Acme"),
		root.Culture("en").NonCanonicalKey("Tenant", "other").Key("k").Format("Other"),
		root.Section("s").Key("plain").Format("Plain"),
	}
	require.False(t, cmp.Equal(lines[0], lines[1]))

	tree, err := linetree.FromLines(lines, nil)
	require.NoError(t, err)

	m := tree.ToMap()
	assert.Equal(t, "A", m["CanonicalKey@Group:a"])
	assert.Contains(t, m, "Section:s")

	back, err := linetree.FromMap(m)
	require.NoError(t, err)
	out, err := back.Lines()
	require.NoError(t, err)
	sameLines(t, lines, out)

	for i := range out {
		for j := i + 1; j < len(out); j++ {
			assert.False(t, cmp.Equal(out[i], out[j]), "%s collapsed into %s", out[i], out[j])
		}
	}
}

func TestFromMapErrors(t *testing.T) {
	t.Parallel()

	_, err := linetree.FromMap(map[string]any{"Section": "x"})
	assert.ErrorIs(t, err, linetree.ErrInvalidKey)

	_, err = linetree.FromMap(map[string]any{"Key:k": struct{}{}})
	assert.ErrorIs(t, err, linetree.ErrInvalidValue)
}
