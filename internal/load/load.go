// Package load reads JSON and YAML documents into tree.Node values ready for
// indexing. Input may carry a UTF-8 or UTF-16 byte order mark; text that is
// not valid UTF-8 and has no mark is read as Windows-1252.
package load

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"gopkg.in/yaml.v3"

	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/internal/mmfile"
	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

// Format selects the document syntax.
type Format int

const (
	FormatAuto Format = iota // extension, then content sniffing
	FormatJSON
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatYAML:
		return "yaml"
	default:
		return "auto"
	}
}

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return FormatAuto, nil
	case "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return FormatAuto, fmt.Errorf("unknown input format %q (want auto, json or yaml)", s)
}

// FormatFor guesses the format from a file extension.
func FormatFor(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatAuto
}

// mapFile is replaced in tests.
var mapFile = mmfile.Map

var (
	bomUTF8    = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE = []byte{0xFF, 0xFE}
	bomUTF16BE = []byte{0xFE, 0xFF}
)

// File reads the document at path. A failure to release the mapping is
// reported when decoding succeeded.
func File(path string, format Format) (n tree.Node, err error) {
	data, cleanup, err := mapFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer func() {
		if cerr := cleanup(); cerr != nil {
			logger.Warn("unmap failed", "path", path, "error", cerr)
			if err == nil {
				n, err = nil, fmt.Errorf("close %s: %w", path, cerr)
			}
		}
	}()

	if format == FormatAuto {
		format = FormatFor(path)
	}
	n, err = Bytes(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return n, nil
}

// Reader reads a whole document from r.
func Reader(r io.Reader, format Format) (tree.Node, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Bytes(data, format)
}

// Bytes decodes data into a node. The top-level value must be an object.
func Bytes(data []byte, format Format) (tree.Node, error) {
	text, err := Text(data)
	if err != nil {
		return nil, err
	}
	if format == FormatAuto {
		format = sniff(text)
	}

	var v any
	switch format {
	case FormatJSON:
		v, err = decodeJSON(text)
	default:
		v, err = decodeYAML(text)
	}
	if err != nil {
		return nil, &types.Error{Kind: types.ErrKindFormat, Msg: "decode " + format.String(), Err: err}
	}

	m, ok := v.(map[string]any)
	if !ok {
		return nil, &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("document root is %s, want an object", describe(v)),
		}
	}
	return tree.Node(m), nil
}

// Text converts raw input to UTF-8 with any byte order mark removed.
func Text(data []byte) ([]byte, error) {
	marked := bytes.HasPrefix(data, bomUTF8) ||
		bytes.HasPrefix(data, bomUTF16LE) ||
		bytes.HasPrefix(data, bomUTF16BE)
	if !marked && !utf8.Valid(data) {
		out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
		return out, err
	}
	if !marked {
		return data, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), data)
	return out, err
}

func sniff(text []byte) Format {
	trimmed := bytes.TrimLeft(text, " \t\r\n")
	if len(trimmed) > 0 && (trimmed[0] == '{' || trimmed[0] == '[') {
		return FormatJSON
	}
	return FormatYAML
}

func decodeJSON(text []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(text))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errors.New("trailing data after document")
	}
	return v, nil
}

func decodeYAML(text []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(text, &v); err != nil {
		return nil, err
	}
	return stringKeys(v)
}

// stringKeys rewrites map[any]any produced for non-string YAML keys so the
// whole document uses map[string]any.
func stringKeys(v any) (any, error) {
	switch t := v.(type) {
	case map[string]any:
		for k, val := range t {
			conv, err := stringKeys(val)
			if err != nil {
				return nil, err
			}
			t[k] = conv
		}
		return t, nil
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			conv, err := stringKeys(val)
			if err != nil {
				return nil, err
			}
			key := fmt.Sprint(k)
			if _, dup := out[key]; dup {
				return nil, fmt.Errorf("duplicate key %q after string conversion", key)
			}
			out[key] = conv
		}
		return out, nil
	case []any:
		for i, elem := range t {
			conv, err := stringKeys(elem)
			if err != nil {
				return nil, err
			}
			t[i] = conv
		}
		return t, nil
	}
	return v, nil
}

func describe(v any) string {
	switch v.(type) {
	case nil:
		return "empty"
	case []any:
		return "a list"
	case string:
		return "a string"
	default:
		return fmt.Sprintf("%T", v)
	}
}
