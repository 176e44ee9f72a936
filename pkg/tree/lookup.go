package tree

import "github.com/joshuapare/treekit/pkg/types"

// Entry returns the entry for id. No traversal is involved.
func (t *Tree) Entry(id types.ID) (*Entry, bool) {
	e, ok := t.entries[id]
	return e, ok
}

// Get returns the node indexed under id, or nil when id has no live entry.
func (t *Tree) Get(id types.ID) Node {
	e, ok := t.entries[id]
	if !ok || e.node == nil {
		return nil
	}
	return e.node
}

// Depth returns the number of ancestors of id; the root is at depth 0.
func (t *Tree) Depth(id types.ID) (int, bool) {
	e, ok := t.entries[id]
	if !ok {
		return 0, false
	}
	return t.depth(e), true
}
