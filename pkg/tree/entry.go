package tree

import (
	"slices"

	"github.com/joshuapare/treekit/pkg/types"
)

// Entry is the index-side record of one node. Links to other entries are ids
// resolved through the owning Tree; an entry never holds its neighbours.
type Entry struct {
	id       types.ID
	node     Node
	parent   types.ID
	children []types.ID
	prev     types.ID
	next     types.ID
}

// ID returns the entry id.
func (e *Entry) ID() types.ID { return e.id }

// Node returns the indexed node.
func (e *Entry) Node() Node { return e.node }

// Parent returns the parent id. The root has none.
func (e *Entry) Parent() (types.ID, bool) { return e.parent, e.parent.Valid() }

// Prev returns the previous sibling id, absent for a first child.
func (e *Entry) Prev() (types.ID, bool) { return e.prev, e.prev.Valid() }

// Next returns the next sibling id, absent for a last child.
func (e *Entry) Next() (types.ID, bool) { return e.next, e.next.Valid() }

// Children returns a copy of the ordered child ids.
func (e *Entry) Children() []types.ID { return slices.Clone(e.children) }

// ChildCount returns the number of children.
func (e *Entry) ChildCount() int { return len(e.children) }
