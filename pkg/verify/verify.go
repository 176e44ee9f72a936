// Package verify checks the structural invariants of an indexed tree.
// These helpers are used in tests and by treectl check to ensure mutation
// sequences keep the index consistent with the nested nodes.
package verify

import (
	"fmt"
	"reflect"

	"github.com/joshuapare/treekit/pkg/tree"
	"github.com/joshuapare/treekit/pkg/types"
)

// Error types for different validation failures.
type ValidationError struct {
	Type    string
	Message string
	ID      types.ID
	Details map[string]interface{}
}

func (e *ValidationError) Error() string {
	if e.ID.Valid() {
		return fmt.Sprintf("%s at id %s: %s", e.Type, e.ID, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// AllInvariants validates all tree invariants in one call.
// Returns the first error encountered, or nil if all checks pass.
func AllInvariants(t *tree.Tree) error {
	if err := Root(t); err != nil {
		return err
	}
	if err := Links(t); err != nil {
		return err
	}
	if err := Mirror(t); err != nil {
		return err
	}
	if err := Reachability(t); err != nil {
		return err
	}
	return nil
}

// Root validates that id 1 is live and has no parent or siblings.
func Root(t *tree.Tree) error {
	root, ok := t.Entry(types.RootID)
	if !ok {
		return &ValidationError{Type: "Root", Message: "no entry for id 1"}
	}
	if p, ok := root.Parent(); ok {
		return &ValidationError{
			Type:    "Root",
			Message: "root has a parent",
			ID:      types.RootID,
			Details: map[string]interface{}{"parent": p},
		}
	}
	if _, ok := root.Prev(); ok {
		return &ValidationError{Type: "Root", Message: "root has a previous sibling", ID: types.RootID}
	}
	if _, ok := root.Next(); ok {
		return &ValidationError{Type: "Root", Message: "root has a next sibling", ID: types.RootID}
	}
	return nil
}

// Links validates parent/child symmetry and sibling chains for every entry,
// and that ids grow from parent to child and never pass the counter.
func Links(t *tree.Tree) error {
	var err error
	t.Walk(types.RootID, func(e *tree.Entry) bool {
		if e.ID() > t.LastIssued() {
			err = &ValidationError{
				Type:    "Links",
				Message: fmt.Sprintf("id beyond last issued %s", t.LastIssued()),
				ID:      e.ID(),
			}
			return false
		}
		kids := e.Children()
		for i, id := range kids {
			child, ok := t.Entry(id)
			if !ok {
				err = &ValidationError{Type: "Links", Message: fmt.Sprintf("child %s has no entry", id), ID: e.ID()}
				return false
			}
			if p, _ := child.Parent(); p != e.ID() {
				err = &ValidationError{
					Type:    "Links",
					Message: fmt.Sprintf("child %s points at parent %s", id, p),
					ID:      e.ID(),
				}
				return false
			}
			if id <= e.ID() {
				err = &ValidationError{Type: "Links", Message: fmt.Sprintf("child %s issued before its parent", id), ID: e.ID()}
				return false
			}
			if msg := siblingMismatch(child, kids, i); msg != "" {
				err = &ValidationError{Type: "Links", Message: msg, ID: id}
				return false
			}
		}
		return true
	})
	return err
}

func siblingMismatch(child *tree.Entry, kids []types.ID, i int) string {
	prev, hasPrev := child.Prev()
	next, hasNext := child.Next()
	switch {
	case i == 0 && hasPrev:
		return fmt.Sprintf("first child has prev %s", prev)
	case i > 0 && prev != kids[i-1]:
		return fmt.Sprintf("prev is %s, want %s", prev, kids[i-1])
	case i == len(kids)-1 && hasNext:
		return fmt.Sprintf("last child has next %s", next)
	case i < len(kids)-1 && next != kids[i+1]:
		return fmt.Sprintf("next is %s, want %s", next, kids[i+1])
	}
	return ""
}

// Mirror validates that every entry's child ids line up, in length, order and
// identity, with its node's children field.
func Mirror(t *tree.Tree) error {
	key := t.Options().ChildrenKey
	var err error
	t.Walk(types.RootID, func(e *tree.Entry) bool {
		nodes := tree.Children(e.Node(), key)
		ids := e.Children()
		if len(nodes) != len(ids) {
			err = &ValidationError{
				Type:    "Mirror",
				Message: fmt.Sprintf("%d child ids for %d child nodes", len(ids), len(nodes)),
				ID:      e.ID(),
			}
			return false
		}
		for i, id := range ids {
			if !sameNode(t.Get(id), nodes[i]) {
				err = &ValidationError{
					Type:    "Mirror",
					Message: fmt.Sprintf("child %d (id %s) is not the indexed node", i, id),
					ID:      e.ID(),
				}
				return false
			}
		}
		return true
	})
	return err
}

// Reachability validates that every live entry hangs off the root.
func Reachability(t *tree.Tree) error {
	seen := 0
	t.Walk(types.RootID, func(*tree.Entry) bool {
		seen++
		return true
	})
	if seen != t.Len() {
		return &ValidationError{
			Type:    "Reachability",
			Message: fmt.Sprintf("%d entries reachable from the root, %d live", seen, t.Len()),
			Details: map[string]interface{}{"reachable": seen, "live": t.Len()},
		}
	}
	return nil
}

// sameNode compares map identity.
func sameNode(a, b tree.Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}
