// Package tree flattens a nested node structure into an id-addressed index.
//
// Every node reached in pre-order receives an id from a single counter that
// only grows: the root is always 1 and removed ids are never reissued. Each
// Entry records its parent, its ordered children and its previous and next
// siblings as ids, so lookups, structural edits and document-order
// navigation never rescan the tree from the root.
//
// # Nodes
//
// A Node is an open record (map[string]any). Only two fields are
// interpreted: the children field (default "children"), an ordered list of
// nodes, and the collapsed field (default "collapsed"), a bool annotation.
// Decoded JSON or YAML can be passed directly; children lists are normalized
// to []Node in place as they are indexed.
//
// # Usage Example
//
//	t, err := tree.New(root, tree.Options{})
//	if err != nil {
//		return err
//	}
//
//	// Insert under the root, then navigate
//	e, err := t.Append(tree.Node{"title": "new"}, types.RootID)
//	next, _ := t.NextID(e.ID(), true)
//
//	// Collapse a subtree and skip over it
//	_ = t.Close(e.ID())
//
//	// Hand out an independent copy
//	out := t.Snapshot()
//
// # Navigation
//
// NextID, PrevID and LastID walk document order using the stored links in
// O(depth) per step. With open set, a collapsed node is visited but its
// children are not. NextID wraps to the root past the last node.
//
// # Errors
//
// Lookups report absence with a bool or nil. Mutations return *types.Error
// values that match types.ErrInvalidTarget, types.ErrNotFound,
// types.ErrUnsupported, types.ErrInvalidNode or types.ErrLimit under
// errors.Is, and leave the tree unmodified when they fail.
//
// A Tree is not safe for concurrent use.
package tree
