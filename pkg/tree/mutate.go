package tree

import (
	"slices"

	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/pkg/types"
)

// Insert indexes n and splices it into the children of parentID at position.
// Positions outside [0, len(children)] are clamped, so any position at or past
// the end appends.
//
// The grandparent's sibling links are refreshed as well as the parent's.
// On error nothing is modified and no id is issued.
func (t *Tree) Insert(n Node, parentID types.ID, position int) (*Entry, error) {
	parent, ok := t.entries[parentID]
	if !ok {
		return nil, types.IDError(types.ErrKindTarget, "insert: no parent entry", parentID)
	}
	if err := t.admit(n, parent); err != nil {
		return nil, err
	}

	e := t.build(n, parent.id)

	position = min(max(position, 0), len(parent.children))
	key := t.opts.ChildrenKey
	parent.node[key] = slices.Insert(Children(parent.node, key), position, n)
	parent.children = slices.Insert(parent.children, position, e.id)

	t.link(parent.children)
	if grand, ok := t.entries[parent.parent]; ok {
		t.link(grand.children)
	}

	logger.Debug("inserted", "id", e.id, "parent", parent.id, "position", position, "last", t.cnt)
	return e, nil
}

// InsertBefore inserts n as the sibling immediately before destID.
func (t *Tree) InsertBefore(n Node, destID types.ID) (*Entry, error) {
	parent, i, err := t.siblingSlot(destID)
	if err != nil {
		return nil, err
	}
	return t.Insert(n, parent, i)
}

// InsertAfter inserts n as the sibling immediately after destID.
func (t *Tree) InsertAfter(n Node, destID types.ID) (*Entry, error) {
	parent, i, err := t.siblingSlot(destID)
	if err != nil {
		return nil, err
	}
	return t.Insert(n, parent, i+1)
}

// Prepend inserts n as the first child of destID.
func (t *Tree) Prepend(n Node, destID types.ID) (*Entry, error) {
	return t.Insert(n, destID, 0)
}

// Append inserts n as the last child of destID.
func (t *Tree) Append(n Node, destID types.ID) (*Entry, error) {
	dest, ok := t.entries[destID]
	if !ok {
		return nil, types.IDError(types.ErrKindTarget, "append: no destination entry", destID)
	}
	return t.Insert(n, destID, len(dest.children))
}

// siblingSlot resolves destID to its parent id and its index among siblings.
func (t *Tree) siblingSlot(destID types.ID) (types.ID, int, error) {
	dest, ok := t.entries[destID]
	if !ok {
		return types.NoID, 0, types.IDError(types.ErrKindTarget, "no destination entry", destID)
	}
	parent, ok := t.entries[dest.parent]
	if !ok {
		return types.NoID, 0, types.IDError(types.ErrKindUnsupported, "the root has no siblings", destID)
	}
	return parent.id, slices.Index(parent.children, destID), nil
}

// Remove detaches the node at id from its parent and drops the entries of its
// whole subtree. The removed node keeps its own children. Removed ids are
// never issued again.
//
// The root cannot be removed.
func (t *Tree) Remove(id types.ID) (Node, error) {
	e, ok := t.entries[id]
	if !ok {
		return nil, types.IDError(types.ErrKindNotFound, "remove: no entry", id)
	}
	parent, ok := t.entries[e.parent]
	if !ok {
		return nil, types.IDError(types.ErrKindUnsupported, "remove: the root cannot be removed", id)
	}

	// Entry children mirror node children, so one index serves both.
	i := slices.Index(parent.children, id)
	key := t.opts.ChildrenKey
	if kids := Children(parent.node, key); i < len(kids) {
		parent.node[key] = slices.Delete(kids, i, i+1)
	}
	parent.children = slices.Delete(parent.children, i, i+1)

	t.drop(e)
	t.link(parent.children)

	logger.Debug("removed", "id", id, "parent", parent.id, "live", len(t.entries))
	return e.node, nil
}

// UpdateChildren recomputes prev/next across ids from their current order,
// clearing stale links first. Mutations call it themselves; it is exposed for
// callers reordering a sibling group they already hold.
func (t *Tree) UpdateChildren(ids []types.ID) {
	t.link(ids)
}
