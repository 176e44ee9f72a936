package tree

const (
	// DefaultChildrenKey is the node field holding the ordered child nodes.
	DefaultChildrenKey = "children"

	// DefaultCollapsedKey is the node field holding the collapsed annotation.
	DefaultCollapsedKey = "collapsed"

	// ============================================================================
	// Limits
	// ============================================================================
	// Zero in any Limits field disables that check.

	// MaxDepthDefault covers every outline a person would plausibly build.
	MaxDepthDefault = 512

	// MaxDepthDeep allows generated trees (ASTs, directory mirrors).
	MaxDepthDeep = 4096

	// MaxDepthShallow is a conservative bound for untrusted input.
	MaxDepthShallow = 64

	// MaxChildrenDefault is the default fan-out bound per node.
	MaxChildrenDefault = 1 << 16

	// MaxChildrenRelaxed allows very wide nodes.
	MaxChildrenRelaxed = 1 << 24

	// MaxChildrenStrict is the fan-out bound for untrusted input.
	MaxChildrenStrict = 1 << 10

	// MaxIDsDefault bounds the id counter to the uint32 range so ids survive
	// consumers that narrow them.
	MaxIDsDefault = 1<<32 - 1

	// MaxIDsRelaxed bounds the counter to the range a float64 represents
	// exactly (JSON consumers).
	MaxIDsRelaxed = 1<<53 - 1

	// MaxIDsStrict suits short-lived trees built from untrusted input.
	MaxIDsStrict = 1 << 20
)
