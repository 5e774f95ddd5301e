package goi18n

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/ka4ep/lexical/core/asset"
	"github.com/ka4ep/lexical/core/format"
	"github.com/ka4ep/lexical/core/line"
)

// DefaultCountArgument is the template field go-i18n fills with the plural count.
const DefaultCountArgument = "PluralCount"

// Asset serves go-i18n message files as lines. Every message becomes a line
// keyed Culture(tag).Section(section).Key(id) whose format string is the
// Other form; the remaining plural forms are stored under the N parameter of
// the count argument. The underlying bundle is kept in sync so the same
// files can be used through go-i18n localizers.
type Asset struct {
	bundle  *i18n.Bundle
	memory  *asset.Memory
	root    *line.Part
	section string
	count   string
	args    []string
}

// Option configures an Asset.
type Option func(*Asset)

// WithDefaultLanguage sets the default language of the bundle.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(a *Asset) {
		a.bundle = i18n.NewBundle(tag)
	}
}

// WithSection places every message under a Section key.
func WithSection(section string) Option {
	return func(a *Asset) {
		a.section = section
	}
}

// WithArguments sets the template fields by format argument index:
// the first name becomes {0}, the second {1} and so on.
func WithArguments(names ...string) Option {
	return func(a *Asset) {
		if len(names) > 0 {
			a.args = slices.Clone(names)
		}
	}
}

// WithCountArgument sets the template field that selects the plural form.
func WithCountArgument(name string) Option {
	return func(a *Asset) {
		if name != "" {
			a.count = name
		}
	}
}

// WithRoot sets the root the lines are built on.
func WithRoot(root *line.Part) Option {
	return func(a *Asset) {
		if root != nil {
			a.root = root
		}
	}
}

// WithComparer sets the comparer lines are matched with.
func WithComparer(cmp *line.Comparer) Option {
	return func(a *Asset) {
		a.memory = asset.NewMemory(nil, asset.WithComparer(cmp))
	}
}

// New creates an empty asset. TOML, YAML and JSON message files are
// understood.
func New(opts ...Option) *Asset {
	a := &Asset{
		bundle: i18n.NewBundle(language.English),
		memory: asset.NewMemory(nil),
		root:   line.NewRoot(),
		count:  DefaultCountArgument,
		args:   []string{DefaultCountArgument},
	}
	for _, opt := range opts {
		opt(a)
	}
	a.bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	a.bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	a.bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	return a
}

// Bundle returns the go-i18n bundle holding the same messages.
func (a *Asset) Bundle() *i18n.Bundle {
	return a.bundle
}

// LoadMessageFile loads a message file such as "active.en.toml". The
// language is taken from the file name.
func (a *Asset) LoadMessageFile(path string) error {
	mf, err := a.bundle.LoadMessageFile(path)
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	return a.add(mf.Tag, mf.Messages)
}

// ParseMessageFileBytes loads message file content. The path is only used
// to determine the language and format.
func (a *Asset) ParseMessageFileBytes(data []byte, path string) error {
	mf, err := a.bundle.ParseMessageFileBytes(data, path)
	if err != nil {
		return errors.Join(ErrLoadFailed, err)
	}
	return a.add(mf.Tag, mf.Messages)
}

// AddMessages adds messages for a language.
func (a *Asset) AddMessages(tag language.Tag, messages ...*i18n.Message) error {
	if err := a.add(tag, messages); err != nil {
		return err
	}
	return a.bundle.AddMessages(tag, messages...)
}

// GetLine implements line.Asset.
func (a *Asset) GetLine(key *line.Part) (*line.Part, bool) {
	return a.memory.GetLine(key)
}

// Lines returns every line built from the loaded messages.
func (a *Asset) Lines() []*line.Part {
	return a.memory.Lines()
}

// Len returns the number of lines.
func (a *Asset) Len() int {
	return a.memory.Len()
}

func (a *Asset) add(tag language.Tag, messages []*i18n.Message) error {
	var lines []*line.Part
	for _, m := range messages {
		ls, err := a.linesOf(tag, m)
		if err != nil {
			return fmt.Errorf("message %q: %w", m.ID, err)
		}
		lines = append(lines, ls...)
	}
	a.memory.Add(lines...)
	return nil
}

func (a *Asset) linesOf(tag language.Tag, m *i18n.Message) ([]*line.Part, error) {
	key := a.root
	if tag != language.Und {
		key = key.Culture(tag.String())
	}
	if a.section != "" {
		key = key.Section(a.section)
	}
	key = key.Key(m.ID)

	forms := []struct{ name, text string }{
		{line.CaseZero, m.Zero},
		{line.CaseOne, m.One},
		{line.CaseTwo, m.Two},
		{line.CaseFew, m.Few},
		{line.CaseMany, m.Many},
	}
	plural := slices.ContainsFunc(forms, func(f struct{ name, text string }) bool { return f.text != "" })

	other, err := a.convert(m.Other, m.LeftDelim, m.RightDelim, plural)
	if err != nil {
		return nil, err
	}
	lines := []*line.Part{key.Format(other)}
	if !plural {
		return lines, nil
	}

	n := slices.Index(a.args, a.count)
	if n < 0 {
		return nil, fmt.Errorf("%w: count argument %q", ErrUnknownArgument, a.count)
	}
	param := line.PluralParam(n)
	for _, f := range forms {
		if f.text == "" {
			continue
		}
		text, err := a.convert(f.text, m.LeftDelim, m.RightDelim, plural)
		if err != nil {
			return nil, err
		}
		lines = append(lines, key.Parameter(param, f.name).Format(text))
	}
	return lines, nil
}

var (
	escaper       = strings.NewReplacer("{", "{{", "}", "}}")
	defaultAction = actionPattern("{{", "}}")
)

func actionPattern(left, right string) *regexp.Regexp {
	return regexp.MustCompile(regexp.QuoteMeta(left) + `\s*\.([A-Za-z_][A-Za-z0-9_]*)\s*` + regexp.QuoteMeta(right))
}

// convert rewrites field references of a go-i18n template into numbered
// placeholders and escapes the literal text around them.
func (a *Asset) convert(tmpl, left, right string, plural bool) (string, error) {
	re := defaultAction
	if left == "" {
		left = "{{"
	}
	if right == "" {
		right = "}}"
	}
	if left != "{{" || right != "}}" {
		re = actionPattern(left, right)
	}

	var (
		b    strings.Builder
		last int
	)
	literal := func(s string) error {
		if strings.Contains(s, left) {
			return fmt.Errorf("%w: %q", ErrUnsupportedTemplate, tmpl)
		}
		b.WriteString(escaper.Replace(s))
		return nil
	}
	for _, loc := range re.FindAllStringSubmatchIndex(tmpl, -1) {
		if err := literal(tmpl[last:loc[0]]); err != nil {
			return "", err
		}
		name := tmpl[loc[2]:loc[3]]
		i := slices.Index(a.args, name)
		if i < 0 {
			return "", fmt.Errorf("%w: %q", ErrUnknownArgument, name)
		}
		b.WriteByte('{')
		if plural && name == a.count {
			b.WriteString(format.CategoryCardinal)
			b.WriteByte(':')
		}
		b.WriteString(strconv.Itoa(i))
		b.WriteByte('}')
		last = loc[1]
	}
	if err := literal(tmpl[last:]); err != nil {
		return "", err
	}
	return b.String(), nil
}
