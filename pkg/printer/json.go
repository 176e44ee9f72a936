package printer

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

// record represents one entry in JSON and YAML dumps. Absent links are
// omitted.
type record struct {
	ID        types.ID  `json:"id" yaml:"id"`
	Label     string    `json:"label" yaml:"label"`
	Parent    types.ID  `json:"parent,omitempty" yaml:"parent,omitempty"`
	Prev      types.ID  `json:"prev,omitempty" yaml:"prev,omitempty"`
	Next      types.ID  `json:"next,omitempty" yaml:"next,omitempty"`
	Collapsed bool      `json:"collapsed,omitempty" yaml:"collapsed,omitempty"`
	Hidden    int       `json:"hidden,omitempty" yaml:"hidden,omitempty"`
	Children  []*record `json:"children,omitempty" yaml:"children,omitempty"`
}

// collect builds the record tree for e. Children that are not printed are
// counted in Hidden.
func (p *Printer) collect(e *tree.Entry, depth int) *record {
	rec := &record{
		ID:        e.ID(),
		Label:     p.Label(e),
		Collapsed: p.tree.Collapsed(e.ID()),
	}
	rec.Parent, _ = e.Parent()
	rec.Prev, _ = e.Prev()
	rec.Next, _ = e.Next()

	if !p.descends(e, depth) {
		rec.Hidden = e.ChildCount()
		return rec
	}
	for _, id := range e.Children() {
		if child, ok := p.tree.Entry(id); ok {
			rec.Children = append(rec.Children, p.collect(child, depth+1))
		}
	}
	return rec
}

func (p *Printer) printJSON(e *tree.Entry) error {
	encoder := json.NewEncoder(p.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(p.collect(e, 0))
}

func (p *Printer) printYAML(e *tree.Entry) error {
	indent := p.opts.IndentSize
	if indent <= 0 {
		indent = DefaultIndentSize
	}
	encoder := yaml.NewEncoder(p.writer)
	encoder.SetIndent(indent)
	if err := encoder.Encode(p.collect(e, 0)); err != nil {
		return err
	}
	return encoder.Close()
}
