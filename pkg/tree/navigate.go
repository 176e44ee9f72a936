package tree

import "github.com/joshuapare/treekit/pkg/types"

// Navigation follows document order: pre-order over children. With open set,
// a collapsed node's children are skipped; with open unset the collapsed
// annotation is ignored. Unknown ids yield (NoID, false).

// descends reports whether navigation may enter e's children.
func (t *Tree) descends(e *Entry, open bool) bool {
	return len(e.children) > 0 && (!open || !t.collapsed(e))
}

// LastID returns the deepest last descendant of id reachable by always taking
// the last child, or id itself when it has no enterable children.
func (t *Tree) LastID(id types.ID, open bool) (types.ID, bool) {
	e, ok := t.entries[id]
	if !ok {
		return types.NoID, false
	}
	for t.descends(e, open) {
		last, ok := t.entries[e.children[len(e.children)-1]]
		if !ok {
			break
		}
		e = last
	}
	return e.id, true
}

// PrevID returns the id preceding id in document order: the last visible
// descendant of the previous sibling, or the parent for a first child. The
// root has no predecessor.
func (t *Tree) PrevID(id types.ID, open bool) (types.ID, bool) {
	e, ok := t.entries[id]
	if !ok {
		return types.NoID, false
	}
	if e.prev.Valid() {
		return t.LastID(e.prev, open)
	}
	if e.parent.Valid() {
		return e.parent, true
	}
	return types.NoID, false
}

// NextID returns the id following id in document order. Past the last node
// it wraps to the root (id 1), which callers treat as the end of the tree.
func (t *Tree) NextID(id types.ID, open bool) (types.ID, bool) {
	e, ok := t.entries[id]
	if !ok {
		return types.NoID, false
	}
	if t.descends(e, open) {
		return e.children[0], true
	}
	if e.next.Valid() {
		return e.next, true
	}

	for cur, ok := t.entries[e.parent]; ok; cur, ok = t.entries[cur.parent] {
		if cur.next.Valid() {
			return cur.next, true
		}
		if cur.id == types.RootID || cur.parent == types.RootID {
			break
		}
	}
	return types.RootID, true
}

// Visible returns every id in document order starting at the root, as NextID
// enumerates them.
func (t *Tree) Visible(open bool) []types.ID {
	ids := make([]types.ID, 0, len(t.entries))
	cur := types.RootID
	for i, n := 0, len(t.entries); i < n; i++ {
		ids = append(ids, cur)
		next, ok := t.NextID(cur, open)
		if !ok || next == types.RootID {
			break
		}
		cur = next
	}
	return ids
}
