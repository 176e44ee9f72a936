package tree

// Options configures a Tree.
type Options struct {
	// ChildrenKey names the node field holding child nodes.
	// Default: "children"
	ChildrenKey string

	// CollapsedKey names the node field holding the collapsed annotation.
	// Default: "collapsed"
	CollapsedKey string

	// Limits bounds tree shape. The zero value imposes no limits; select a
	// preset such as DefaultLimits for untrusted input.
	Limits Limits
}

// DefaultOptions returns the default keys with the DefaultLimits preset.
func DefaultOptions() Options {
	return Options{
		ChildrenKey:  DefaultChildrenKey,
		CollapsedKey: DefaultCollapsedKey,
		Limits:       DefaultLimits(),
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.ChildrenKey == "" {
		o.ChildrenKey = def.ChildrenKey
	}
	if o.CollapsedKey == "" {
		o.CollapsedKey = def.CollapsedKey
	}
	return o
}
