package tree

import "github.com/joshuapare/treekit/pkg/types"

// build indexes n and its descendants in pre-order under parent. Every
// children field below n must already be normalized (see measure).
//
// This is the only place ids are issued.
func (t *Tree) build(n Node, parent types.ID) *Entry {
	e := &Entry{
		id:     t.issue(),
		node:   n,
		parent: parent,
	}
	t.entries[e.id] = e

	kids := Children(n, t.opts.ChildrenKey)
	if len(kids) == 0 {
		return e
	}
	e.children = make([]types.ID, 0, len(kids))
	for _, kid := range kids {
		e.children = append(e.children, t.build(kid, e.id).id)
	}
	t.link(e.children)
	return e
}

// link resets prev/next across a sibling sequence.
func (t *Tree) link(ids []types.ID) {
	for i, id := range ids {
		e, ok := t.entries[id]
		if !ok {
			continue
		}
		e.prev, e.next = types.NoID, types.NoID
		if i > 0 {
			e.prev = ids[i-1]
		}
		if i < len(ids)-1 {
			e.next = ids[i+1]
		}
	}
}
