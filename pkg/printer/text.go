package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/treekit/pkg/tree"
)

// Markers prefixed to each outline line.
const (
	markerCollapsed = "+"
	markerExpanded  = "-"
	markerLeaf      = "*"
)

// printText prints e and its printable descendants as an outline.
func (p *Printer) printText(e *tree.Entry, depth int) error {
	if err := p.printLine(e, depth); err != nil {
		return err
	}
	if !p.descends(e, depth) {
		return nil
	}
	for _, id := range e.Children() {
		child, ok := p.tree.Entry(id)
		if !ok {
			continue
		}
		if err := p.printText(child, depth+1); err != nil {
			return err
		}
	}
	return nil
}

func (p *Printer) printLine(e *tree.Entry, depth int) error {
	indent := strings.Repeat(" ", depth*p.opts.IndentSize)

	marker := markerLeaf
	switch {
	case e.ChildCount() > 0 && p.tree.Collapsed(e.ID()):
		marker = markerCollapsed
	case e.ChildCount() > 0:
		marker = markerExpanded
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s%s [%s] %s", indent, marker, e.ID(), p.Label(e))

	if p.opts.ShowLinks {
		if id, ok := e.Parent(); ok {
			fmt.Fprintf(&b, " parent=%s", id)
		}
		if id, ok := e.Prev(); ok {
			fmt.Fprintf(&b, " prev=%s", id)
		}
		if id, ok := e.Next(); ok {
			fmt.Fprintf(&b, " next=%s", id)
		}
	}

	_, err := fmt.Fprintln(p.writer, b.String())
	return err
}
