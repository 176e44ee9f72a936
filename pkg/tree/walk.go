package tree

import "github.com/joshuapare/treekit/pkg/types"

// Walk visits id and its descendants in pre-order, ignoring collapsed
// annotations. Returning false from fn skips that entry's children.
func (t *Tree) Walk(id types.ID, fn func(e *Entry) bool) {
	e, ok := t.entries[id]
	if !ok {
		return
	}
	t.walk(e, fn)
}

func (t *Tree) walk(e *Entry, fn func(e *Entry) bool) {
	if !fn(e) {
		return
	}
	for _, id := range e.children {
		if child, ok := t.entries[id]; ok {
			t.walk(child, fn)
		}
	}
}
