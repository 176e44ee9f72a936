package tree

import (
	"errors"
	"fmt"

	"github.com/joshuapare/treekit/pkg/types"
)

// Limits bounds the shape of a tree. Checks run before any id is issued, so an
// insert that would exceed a limit leaves the tree untouched. Zero in a field
// disables that check; the zero Limits accepts any finite tree. Input that may
// contain a node reachable from itself needs a MaxDepth.
type Limits struct {
	// MaxDepth is the maximum number of levels, counting the root as level 1.
	MaxDepth int

	// MaxChildren is the maximum number of children a single node can have.
	MaxChildren int

	// MaxIDs is the maximum id the counter may issue. Ids are never reused,
	// so this bounds the total number of nodes ever indexed by one tree,
	// including removed ones.
	MaxIDs uint64
}

// DefaultLimits returns limits suitable for hand-built and imported outlines.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:    MaxDepthDefault,
		MaxChildren: MaxChildrenDefault,
		MaxIDs:      MaxIDsDefault,
	}
}

// RelaxedLimits returns permissive limits for generated trees.
func RelaxedLimits() Limits {
	return Limits{
		MaxDepth:    MaxDepthDeep,
		MaxChildren: MaxChildrenRelaxed,
		MaxIDs:      MaxIDsRelaxed,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:    MaxDepthShallow,
		MaxChildren: MaxChildrenStrict,
		MaxIDs:      MaxIDsStrict,
	}
}

// LimitError reports which limit a build or insert would have exceeded.
type LimitError struct {
	Limit   string   // Name of the limit that was exceeded
	Current uint64   // Value the operation would have produced
	Maximum uint64   // Maximum allowed value
	ID      types.ID // Anchor entry of the operation (NoID during construction)
}

func (e *LimitError) Error() string {
	if e.ID.Valid() {
		return fmt.Sprintf("tree limit exceeded under id %s: %s is %d (max %d)",
			e.ID, e.Limit, e.Current, e.Maximum)
	}
	return fmt.Sprintf("tree limit exceeded: %s is %d (max %d)",
		e.Limit, e.Current, e.Maximum)
}

// LimitViolation wraps a *LimitError in a types.Error of kind ErrKindLimit.
// Other errors are returned unchanged.
func LimitViolation(err error) error {
	le := &LimitError{}
	if errors.As(err, &le) {
		return &types.Error{
			Kind: types.ErrKindLimit,
			Msg:  "limit exceeded",
			Err:  le,
		}
	}
	return err
}

// extent is the measured size of a subtree about to be indexed.
type extent struct {
	nodes  uint64
	levels int
}

// measure walks n before it is indexed. It normalizes every children field,
// rejects shapes the builder cannot ingest, and enforces the depth and
// fan-out limits. level is the level n will occupy once attached.
func (t *Tree) measure(n Node, level int) (extent, error) {
	if n == nil {
		return extent{}, types.ErrInvalidNode
	}
	lim := t.opts.Limits
	if lim.MaxDepth > 0 && level > lim.MaxDepth {
		return extent{}, &LimitError{
			Limit:   "MaxDepth",
			Current: uint64(level),
			Maximum: uint64(lim.MaxDepth),
		}
	}

	kids, err := normalizeChildren(n, t.opts.ChildrenKey)
	if err != nil {
		return extent{}, err
	}
	if lim.MaxChildren > 0 && len(kids) > lim.MaxChildren {
		return extent{}, &LimitError{
			Limit:   "MaxChildren",
			Current: uint64(len(kids)),
			Maximum: uint64(lim.MaxChildren),
		}
	}

	ext := extent{nodes: 1, levels: 1}
	for _, kid := range kids {
		sub, err := t.measure(kid, level+1)
		if err != nil {
			return extent{}, err
		}
		ext.nodes += sub.nodes
		ext.levels = max(ext.levels, sub.levels+1)
	}
	return ext, nil
}

// admit checks that n can be attached under parent without breaking a limit.
// A nil parent means n becomes the root.
func (t *Tree) admit(n Node, parent *Entry) error {
	level := 1
	if parent != nil {
		level = t.depth(parent) + 2
	}
	ext, err := t.measure(n, level)
	if err != nil {
		return t.anchor(err, parent)
	}

	lim := t.opts.Limits
	if parent != nil && lim.MaxChildren > 0 && len(parent.children)+1 > lim.MaxChildren {
		return t.anchor(&LimitError{
			Limit:   "MaxChildren",
			Current: uint64(len(parent.children) + 1),
			Maximum: uint64(lim.MaxChildren),
		}, parent)
	}
	if lim.MaxIDs > 0 && uint64(t.cnt)+ext.nodes > lim.MaxIDs {
		return t.anchor(&LimitError{
			Limit:   "MaxIDs",
			Current: uint64(t.cnt) + ext.nodes,
			Maximum: lim.MaxIDs,
		}, parent)
	}
	return nil
}

// anchor records the parent id on limit errors and wraps them.
func (t *Tree) anchor(err error, parent *Entry) error {
	le := &LimitError{}
	if parent != nil && errors.As(err, &le) {
		le.ID = parent.id
	}
	return LimitViolation(err)
}
