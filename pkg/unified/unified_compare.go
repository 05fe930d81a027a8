package unified

import "github.com/ochrefield/exactreal/pkg/constructive"

// defaultComparisonPrecision is the precision CompareTo falls back to
// when no explicit precision is given and the operands aren't
// symbolically comparable.
const defaultComparisonPrecision = -1000

// IsComparable reports whether u and other can be compared without risk
// of a non-terminating CR comparison: either they share the same
// (kind, q), or at least one is a known rational, or both are known
// irrational in a form whose equality reduces to comparing rational
// coefficients.
func (u *Real) IsComparable(other *Real) bool {
	if u.sameFactor(other) {
		return true
	}
	if u.kind == KindOne || other.kind == KindOne {
		return true
	}
	return u.isKnownIrrational() && other.isKnownIrrational()
}

// CompareTo compares u and other, returning -1/0/1. With no explicit
// precision it first tries an exact symbolic decision via the normal
// form (valid when IsComparable reports true), falling back to a bounded
// constructive-real comparison otherwise.
func (u *Real) CompareTo(other *Real) (int, error) {
	if u.IsComparable(other) {
		if u.sameFactor(other) && u.kind != KindLn && u.kind != KindLog && u.kind != KindSinPi && u.kind != KindTanPi {
			return u.br.Cmp(other.br), nil
		}
		if u.kind == KindOne && other.kind == KindOne {
			return u.br.Cmp(other.br), nil
		}
	}
	return u.CompareToPrecision(other, defaultComparisonPrecision)
}

// CompareToPrecision compares u and other at a fixed constructive-real
// precision p.
func (u *Real) CompareToPrecision(other *Real, p int) (int, error) {
	return constructive.PreciseCmp(u.cr, other.cr, p)
}

// CompareToBounded iteratively refines the comparison starting at relP,
// doubling precision until the sign resolves or absP is reached, at
// which point it returns 0 ("still undecided") rather than an error.
func (u *Real) CompareToBounded(other *Real, relP, absP int) int {
	return constructive.CompareBounded(u.cr, other.cr, relP, absP)
}
