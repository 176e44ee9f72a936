package tree

import "github.com/joshuapare/treekit/pkg/types"

// The collapsed annotation lives on the node, not the entry. Open removes the
// field rather than storing false, so snapshots of reopened nodes match their
// original shape.

func (t *Tree) collapsed(e *Entry) bool {
	v, _ := e.node[t.opts.CollapsedKey].(bool)
	return v
}

// Collapsed reports whether the node at id carries collapsed = true.
func (t *Tree) Collapsed(id types.ID) bool {
	e, ok := t.entries[id]
	return ok && t.collapsed(e)
}

// Open clears the collapsed annotation on id only.
func (t *Tree) Open(id types.ID) error {
	return t.setCollapsed(id, false, false)
}

// OpenAll clears the collapsed annotation on id and every descendant.
func (t *Tree) OpenAll(id types.ID) error {
	return t.setCollapsed(id, false, true)
}

// Close sets the collapsed annotation on id only.
func (t *Tree) Close(id types.ID) error {
	return t.setCollapsed(id, true, false)
}

// CloseAll sets the collapsed annotation on id and every descendant.
func (t *Tree) CloseAll(id types.ID) error {
	return t.setCollapsed(id, true, true)
}

func (t *Tree) setCollapsed(id types.ID, collapsed, recursive bool) error {
	e, ok := t.entries[id]
	if !ok {
		return types.IDError(types.ErrKindNotFound, "no entry", id)
	}
	apply := func(e *Entry) bool {
		if collapsed {
			e.node[t.opts.CollapsedKey] = true
		} else {
			delete(e.node, t.opts.CollapsedKey)
		}
		return recursive
	}
	if !recursive {
		apply(e)
		return nil
	}
	t.walk(e, apply)
	return nil
}
