package linefile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ka4ep/lexical/core/line"
	"github.com/ka4ep/lexical/core/linetree"
)

// Format names a file encoding.
type Format string

const (
	YAML Format = "yaml"
	TOML Format = "toml"
	JSON Format = "json"
)

var (
	// ErrUnknownFormat is returned for encodings other than YAML, TOML and JSON.
	ErrUnknownFormat = errors.New("linefile: unknown format")
	// ErrDecode wraps parse failures of the underlying decoder.
	ErrDecode = errors.New("linefile: decode failed")
	// ErrEncode wraps failures of the underlying encoder.
	ErrEncode = errors.New("linefile: encode failed")
)

// FormatOf returns the format implied by a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	case ".json":
		return JSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// Decode reads a tree in format f. Map keys are key text fragments, see
// linetree.FromMap.
func Decode(r io.Reader, f Format, opts ...linetree.Option) (*linetree.Tree, error) {
	m := make(map[string]any)
	switch f {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrDecode, err)
		}
	case TOML:
		if _, err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, errors.Join(ErrDecode, err)
		}
	case JSON:
		dec := json.NewDecoder(r)
		dec.UseNumber()
		if err := dec.Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, errors.Join(ErrDecode, err)
		}
		normalizeNumbers(m)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	return linetree.FromMap(m, opts...)
}

// normalizeNumbers turns json.Number values into their literal text so that
// they keep their original form as format strings.
func normalizeNumbers(m map[string]any) {
	for k, v := range m {
		switch v := v.(type) {
		case json.Number:
			m[k] = v.String()
		case map[string]any:
			normalizeNumbers(v)
		case []any:
			for i, item := range v {
				if n, ok := item.(json.Number); ok {
					v[i] = n.String()
				}
			}
		}
	}
}

// Encode writes t in format f.
func Encode(w io.Writer, f Format, t *linetree.Tree) error {
	m := t.ToMap()
	var err error
	switch f {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err = enc.Encode(m); err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(m)
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		err = enc.Encode(m)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
	if err != nil {
		return errors.Join(ErrEncode, err)
	}
	return nil
}

// ReadFile decodes the file at path, choosing the format by extension.
func ReadFile(path string, opts ...linetree.Option) (*linetree.Tree, error) {
	f, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("linefile: read %s: %w", path, err)
	}
	return Decode(bytes.NewReader(data), f, opts...)
}

// WriteFile encodes t to path, choosing the format by extension.
func WriteFile(path string, t *linetree.Tree) error {
	f, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Encode(&buf, f, t); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("linefile: write %s: %w", path, err)
	}
	return nil
}

// ReadLines reads the file at path and flattens it into lines.
func ReadLines(path string, opts ...linetree.Option) ([]*line.Part, error) {
	t, err := ReadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	return t.Lines()
}

// WriteLines groups lines into a tree and writes it to path.
func WriteLines(path string, lines []*line.Part, opts ...linetree.Option) error {
	t, err := linetree.FromLines(lines, nil, opts...)
	if err != nil {
		return err
	}
	return WriteFile(path, t)
}
