package constructive

import "math/big"

// funcNode wraps an arbitrary approximate function as a Real, letting
// other packages in this module (notably pkg/unary, which builds
// derivative and inverse functions by bisection/difference-quotient over
// already-exported CR combinators) construct custom lazy nodes without
// reaching into this package's unexported node types.
type funcNode struct {
	precisionTracker
	fn   func(p int) (*big.Int, error)
	desc string
}

// FromApproximator builds a Real whose approximation at any precision p
// is computed by fn. desc is used only for AsConstruction diagnostics.
func FromApproximator(desc string, fn func(p int) (*big.Int, error)) Real {
	return &funcNode{fn: fn, desc: desc}
}

func (c *funcNode) approximate(p int) (*big.Int, error) {
	return c.fn(p)
}

func (c *funcNode) asConstruction() string {
	return c.desc
}
