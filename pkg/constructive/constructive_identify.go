package constructive

import "math/big"

// Identify inspects c's top-level node for a statically known exact
// integer value, without performing any numeric approximation. It
// returns (value, true) when c was built directly by FromBigInt/
// FromInt64/FromInt (or is one negation away from such a node), and
// (nil, false) when c's shape doesn't expose an exact value this way —
// the caller should fall back to numeric approximation in that case.
// This is the same "recognize a rational factor from shape, not value"
// idea pkg/unified's normal form applies one level up, one layer closer
// to the DAG itself.
func Identify(c Real) (*big.Int, bool) {
	switch v := c.(type) {
	case *constructiveInteger:
		return new(big.Int).Set(v.i), true
	case *constructiveNegation:
		if i, ok := Identify(v.r); ok {
			return new(big.Int).Neg(i), true
		}
	}
	return nil, false
}
