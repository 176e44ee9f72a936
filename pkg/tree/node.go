package tree

import (
	"fmt"

	"github.com/joshuapare/treekit/pkg/types"
)

// Node is a user-owned open record. The tree interprets only the children
// field and the collapsed annotation; every other field is carried untouched.
type Node map[string]any

// Children returns the child nodes stored under key, or nil when the field is
// absent or was never normalized by a Tree.
func Children(n Node, key string) []Node {
	kids, _ := n[key].([]Node)
	return kids
}

// normalizeChildren converts the children field of n to []Node in place and
// returns it. Decoders produce []any of map[string]any; both that shape and
// the typed variants are accepted.
func normalizeChildren(n Node, key string) ([]Node, error) {
	raw, ok := n[key]
	if !ok || raw == nil {
		return nil, nil
	}

	var kids []Node
	switch v := raw.(type) {
	case []Node:
		kids = v
	case []map[string]any:
		kids = make([]Node, len(v))
		for i, m := range v {
			kids[i] = Node(m)
		}
	case []any:
		kids = make([]Node, len(v))
		for i, elem := range v {
			switch m := elem.(type) {
			case Node:
				kids[i] = m
			case map[string]any:
				kids[i] = Node(m)
			default:
				return nil, &types.Error{
					Kind: types.ErrKindFormat,
					Msg:  fmt.Sprintf("%s[%d] is %T, want an object", key, i, elem),
				}
			}
		}
	default:
		return nil, &types.Error{
			Kind: types.ErrKindFormat,
			Msg:  fmt.Sprintf("%s field is %T, want a list of objects", key, raw),
		}
	}

	for i, kid := range kids {
		if kid == nil {
			return nil, &types.Error{
				Kind: types.ErrKindFormat,
				Msg:  fmt.Sprintf("%s[%d] is null", key, i),
			}
		}
	}
	n[key] = kids
	return kids, nil
}
