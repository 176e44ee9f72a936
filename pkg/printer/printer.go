// Package printer renders an indexed tree as an indented outline or as a JSON
// or YAML dump of its entries.
package printer

import (
	"fmt"
	"io"

	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

const (
	DefaultIndentSize = 2
	DefaultMaxDepth   = 0
	DefaultLabelKey   = "name"
	UnnamedLabel      = "(unnamed)"
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs an indented outline.
	FormatText Format = "text"

	// FormatJSON outputs the entries as nested JSON records.
	FormatJSON Format = "json"

	// FormatYAML outputs the entries as nested YAML records.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a flag value to a Format.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatText, FormatJSON, FormatYAML:
		return Format(s), nil
	case "":
		return FormatText, nil
	case "yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("unknown format %q (want text, json or yaml)", s)
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json, yaml).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how many levels below the starting entry are printed
	// (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// RespectCollapsed stops descent at collapsed nodes.
	// Default: true
	RespectCollapsed bool

	// ShowLinks adds parent/prev/next ids to each text line.
	// Default: false
	ShowLinks bool

	// LabelKey names the node field used as the display label.
	// Default: "name"
	LabelKey string
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:           FormatText,
		IndentSize:       DefaultIndentSize,
		MaxDepth:         DefaultMaxDepth,
		RespectCollapsed: true,
		ShowLinks:        false,
		LabelKey:         DefaultLabelKey,
	}
}

// Printer handles formatted output of an indexed tree.
type Printer struct {
	opts   Options
	writer io.Writer
	tree   *tree.Tree
}

// New creates a new Printer.
//
// Example:
//
//	t, _ := tree.New(root, tree.Options{})
//	p := printer.New(t, os.Stdout, printer.DefaultOptions())
//	p.PrintTree(types.RootID)
func New(t *tree.Tree, w io.Writer, opts Options) *Printer {
	if opts.LabelKey == "" {
		opts.LabelKey = DefaultLabelKey
	}
	return &Printer{
		tree:   t,
		writer: w,
		opts:   opts,
	}
}

// PrintTree prints the subtree rooted at id.
func (p *Printer) PrintTree(id types.ID) error {
	e, ok := p.tree.Entry(id)
	if !ok {
		return types.IDError(types.ErrKindNotFound, "print", id)
	}

	switch p.opts.Format {
	case FormatJSON:
		return p.printJSON(e)
	case FormatYAML:
		return p.printYAML(e)
	case FormatText:
		return p.printText(e, 0)
	default:
		return p.printText(e, 0)
	}
}

// PrintIDs prints one text line per id, unindented. It is used for
// navigation results.
func (p *Printer) PrintIDs(ids []types.ID) error {
	for _, id := range ids {
		e, ok := p.tree.Entry(id)
		if !ok {
			return types.IDError(types.ErrKindNotFound, "print", id)
		}
		if err := p.printLine(e, 0); err != nil {
			return err
		}
	}
	return nil
}

// Label returns the display label of e.
func (p *Printer) Label(e *tree.Entry) string {
	v, ok := e.Node()[p.opts.LabelKey]
	if !ok || v == nil {
		return UnnamedLabel
	}
	return fmt.Sprint(v)
}

// descends reports whether e's children are printed at the given depth.
func (p *Printer) descends(e *tree.Entry, depth int) bool {
	if p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth {
		return false
	}
	return !p.opts.RespectCollapsed || !p.tree.Collapsed(e.ID())
}
