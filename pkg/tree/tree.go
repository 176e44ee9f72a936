package tree

import (
	"github.com/joshuapare/treekit/internal/logger"
	"github.com/joshuapare/treekit/pkg/types"
)

// Tree indexes a nested node structure. The zero value is not usable; build
// one with New.
//
// A Tree owns the id counter and the id to entry map. It is not safe for
// concurrent use.
type Tree struct {
	root    Node
	entries map[types.ID]*Entry
	cnt     types.ID // last id issued
	opts    Options
}

// New indexes root in pre-order. A nil root is replaced by an empty node with
// an empty children list. The root always receives id 1.
func New(root Node, opts Options) (*Tree, error) {
	t := &Tree{
		entries: make(map[types.ID]*Entry),
		opts:    opts.withDefaults(),
	}
	if root == nil {
		root = Node{t.opts.ChildrenKey: []Node{}}
	}
	if err := t.admit(root, nil); err != nil {
		return nil, err
	}
	t.root = root
	t.build(root, types.NoID)

	logger.Debug("tree indexed", "entries", len(t.entries))
	return t, nil
}

// Options returns the effective options.
func (t *Tree) Options() Options { return t.opts }

// Root returns the root entry.
func (t *Tree) Root() *Entry { return t.entries[types.RootID] }

// Len returns the number of live entries.
func (t *Tree) Len() int { return len(t.entries) }

// LastIssued returns the highest id issued so far. Removed ids count.
func (t *Tree) LastIssued() types.ID { return t.cnt }

// issue advances the counter.
func (t *Tree) issue() types.ID {
	t.cnt++
	return t.cnt
}

// drop deletes e and every descendant entry from the store.
func (t *Tree) drop(e *Entry) {
	delete(t.entries, e.id)
	for _, id := range e.children {
		if child, ok := t.entries[id]; ok {
			t.drop(child)
		}
	}
}

// depth returns the number of ancestors of e.
func (t *Tree) depth(e *Entry) int {
	d := 0
	for p, ok := t.entries[e.parent]; ok; p, ok = t.entries[p.parent] {
		d++
	}
	return d
}
