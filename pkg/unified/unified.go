// Package unified implements UnifiedReal (UR): a real number kept in a
// normal form value = br * factor, where br is an exact BoundedRational
// coefficient and factor is one of a small family of symbolically
// recognized irrationals (pi, e^q, ln q, sqrt q, sin/tan of a rational
// multiple of pi, log10 q) or a fully opaque constructive real. Algebraic
// operations try to keep the result in normal form so comparisons and
// further simplification can stay exact; only when two operands' factors
// don't combine symbolically does a result fall back to a bare
// constructive real (kind Irrational/Other).
package unified

import (
	"math/big"

	"github.com/ochrefield/exactreal"
	"github.com/ochrefield/exactreal/pkg/constructive"
	"github.com/ochrefield/exactreal/pkg/rational"
)

// Kind identifies the symbolic shape of a UnifiedReal's factor.
type Kind int

const (
	// KindOne is the rational factor 1: value is exactly br.
	KindOne Kind = iota
	// KindPi is the factor pi.
	KindPi
	// KindExp is the factor e^q for rational q != 0.
	KindExp
	// KindLn is the factor ln(q) for rational q > 0, q != 1.
	KindLn
	// KindSqrt is the factor sqrt(q) for rational q >= 0, square-free.
	KindSqrt
	// KindSinPi is the factor sin(pi*q) for rational q.
	KindSinPi
	// KindTanPi is the factor tan(pi*q) for rational q.
	KindTanPi
	// KindLog is the factor log10(q) for rational q > 0, q != 1.
	KindLog
	// KindIrrational is a factor known to be irrational but not
	// symbolically recognized; the value is carried only as a
	// constructive real.
	KindIrrational
	// KindOther is a factor of unknown rationality, carried only as a
	// constructive real.
	KindOther
)

// Real is a UnifiedReal: an exact rational coefficient times a
// symbolically-tracked factor, cached as a constructive real.
type Real struct {
	br   *rational.BoundedRational
	kind Kind
	q    *rational.BoundedRational
	cr   constructive.Real
}

// New builds a UnifiedReal in KindOne normal form directly from a
// BoundedRational.
func New(br *rational.BoundedRational) *Real {
	return newNormal(br, KindOne, nil)
}

// FromConstructive wraps an arbitrary constructive real that has no
// known symbolic form.
func FromConstructive(cr constructive.Real) *Real {
	return &Real{br: rational.One(), kind: KindOther, cr: cr}
}

// FromInt builds a UnifiedReal from an int.
func FromInt(n int) *Real {
	return New(rational.FromInt(n))
}

// FromLong builds a UnifiedReal from an int64.
func FromLong(n int64) *Real {
	return New(rational.FromInt64(n))
}

// FromDouble builds a UnifiedReal with the exact value of f.
func FromDouble(f float64) (*Real, error) {
	br, err := rational.FromDouble(f)
	if err != nil {
		return nil, err
	}
	return New(br), nil
}

// FromBigRational builds a UnifiedReal from a/b.
func FromBigRational(a, b int) (*Real, error) {
	br, err := rational.NewInt64(int64(a), int64(b))
	if err != nil {
		return nil, err
	}
	return New(br), nil
}

// factorCR returns the constructive real for the bare factor (coefficient
// 1) named by kind and q.
func factorCR(kind Kind, q *rational.BoundedRational) (constructive.Real, error) {
	switch kind {
	case KindOne:
		return constructive.One(), nil
	case KindPi:
		return constructive.Pi(), nil
	case KindExp:
		qcr, err := q.Constructive()
		if err != nil {
			return nil, err
		}
		return constructive.Exp(qcr), nil
	case KindLn:
		qcr, err := q.Constructive()
		if err != nil {
			return nil, err
		}
		return constructive.Ln(qcr), nil
	case KindSqrt:
		qcr, err := q.Constructive()
		if err != nil {
			return nil, err
		}
		return constructive.Sqrt(qcr), nil
	case KindSinPi:
		qcr, err := q.Constructive()
		if err != nil {
			return nil, err
		}
		return constructive.Sine(constructive.Multiply(constructive.Pi(), qcr)), nil
	case KindTanPi:
		qcr, err := q.Constructive()
		if err != nil {
			return nil, err
		}
		return constructive.Tangent(constructive.Multiply(constructive.Pi(), qcr)), nil
	case KindLog:
		qcr, err := q.Constructive()
		if err != nil {
			return nil, err
		}
		return constructive.Divide(constructive.Ln(qcr), constructive.Ln(constructive.Ten())), nil
	default:
		return constructive.One(), nil
	}
}

// newNormal builds a UnifiedReal in normal form, eagerly constructing
// (but not evaluating) the cached constructive-real DAG for it.
func newNormal(br *rational.BoundedRational, kind Kind, q *rational.BoundedRational) *Real {
	fcr, ferr := factorCR(kind, q)
	if ferr != nil {
		brcr, _ := br.Constructive()
		return &Real{br: rational.One(), kind: KindOther, cr: brcr}
	}
	brcr, err := br.Constructive()
	if err != nil {
		brcr = constructive.Zero()
	}
	return &Real{br: br, kind: kind, q: q, cr: constructive.Multiply(brcr, fcr)}
}

// sameFactor reports whether u and other share the same (kind, q), so
// their coefficients can be combined directly under addition.
func (u *Real) sameFactor(other *Real) bool {
	if u.kind != other.kind {
		return false
	}
	switch u.kind {
	case KindOne, KindPi:
		return true
	case KindIrrational, KindOther:
		return u.cr == other.cr
	default:
		return u.q != nil && other.q != nil && u.q.Equal(other.q)
	}
}

// IsZero reports whether u's rational coefficient is exactly zero, which
// makes the whole value zero regardless of factor.
func (u *Real) IsZero() bool {
	return u.br.IsZero()
}

// isKnownIrrational reports whether u's factor is known to be
// irrational, independent of its actual numeric value — true for pi,
// e^(nonzero rational), ln(rational != 1), sqrt(non-square rational),
// and the generic KindIrrational bucket.
func (u *Real) isKnownIrrational() bool {
	switch u.kind {
	case KindPi, KindLn, KindIrrational:
		return true
	case KindSqrt:
		return !u.q.Equal(rational.One())
	case KindExp:
		return !u.q.IsZero()
	default:
		return false
	}
}

// newSqrtNormal builds the normal form coeff*sqrt(b), collapsing to
// KindOne when b is exactly 1 — extractSquareReduced can legitimately
// return a square-free part of 1 (e.g. sqrt(4) = 2*sqrt(1)), and that
// case must not be left tagged KindSqrt.
func newSqrtNormal(coeff, b *rational.BoundedRational) *Real {
	if b.Equal(rational.One()) {
		return newNormal(coeff, KindOne, nil)
	}
	return newNormal(coeff, KindSqrt, b)
}

// Add returns u + other.
func (u *Real) Add(other *Real) *Real {
	if u.IsZero() {
		return other
	}
	if other.IsZero() {
		return u
	}
	if u.sameFactor(other) && u.kind != KindIrrational && u.kind != KindOther {
		return newNormal(rational.Add(u.br, other.br), u.kind, u.q)
	}
	return FromConstructive(constructive.Add(u.cr, other.cr))
}

// Subtract returns u - other.
func (u *Real) Subtract(other *Real) *Real {
	return u.Add(other.Negate())
}

// Negate returns -u.
func (u *Real) Negate() *Real {
	if u.kind == KindIrrational || u.kind == KindOther {
		return FromConstructive(constructive.Negate(u.cr))
	}
	return newNormal(rational.Negate(u.br), u.kind, u.q)
}

// Abs returns |u|.
func (u *Real) Abs() *Real {
	switch u.kind {
	case KindOne, KindPi, KindExp, KindSqrt:
		if sign, err := u.br.Sign(); err == nil && sign < 0 {
			return u.Negate()
		}
		return u
	}
	return FromConstructive(constructive.Abs(u.cr))
}

// Multiply returns u * other, attempting the symbolic combination rules
// of spec.md's algebraic-simplification order before falling back to a
// plain constructive-real product.
func (u *Real) Multiply(other *Real) *Real {
	if u.IsZero() || other.IsZero() {
		return Zero()
	}
	coeff := rational.Multiply(u.br, other.br)

	if u.kind == KindOne && other.kind != KindIrrational && other.kind != KindOther {
		return newNormal(coeff, other.kind, other.q)
	}
	if other.kind == KindOne && u.kind != KindIrrational && u.kind != KindOther {
		return newNormal(coeff, u.kind, u.q)
	}

	switch {
	case u.kind == KindSqrt && other.kind == KindSqrt:
		product := rational.Multiply(u.q, other.q)
		a, b, err := product.ExtractSquareReduced()
		if err == nil {
			return newSqrtNormal(rational.Multiply(coeff, a), b)
		}
	case u.kind == KindExp && other.kind == KindExp:
		return newNormal(coeff, KindExp, rational.Add(u.q, other.q))
	}

	return FromConstructive(constructive.Multiply(u.cr, other.cr))
}

// Inverse returns 1/u. An exactly-zero u raises a DomainError.
func (u *Real) Inverse() (*Real, error) {
	if u.IsZero() {
		return nil, exactreal.NewDomainError("Inverse", "division by zero")
	}

	invBR, err := rational.Inverse(u.br)
	if err != nil {
		return nil, err
	}

	switch u.kind {
	case KindOne:
		return New(invBR), nil
	case KindSqrt:
		// 1/sqrt(q) = (1/q)*sqrt(q).
		invQ, err := rational.Inverse(u.q)
		if err != nil {
			return nil, err
		}
		return newSqrtNormal(rational.Multiply(invBR, invQ), u.q), nil
	case KindExp:
		return newNormal(invBR, KindExp, rational.Negate(u.q)), nil
	default:
		return FromConstructive(constructive.Inverse(u.cr)), nil
	}
}

// Divide returns u / other.
func (u *Real) Divide(other *Real) (*Real, error) {
	inv, err := other.Inverse()
	if err != nil {
		return nil, err
	}
	return u.Multiply(inv), nil
}

// Sqrt returns sqrt(u). A negative u raises a DomainError.
func (u *Real) Sqrt() (*Real, error) {
	sign, err := u.br.Sign()
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		return nil, exactreal.NewDomainError("Sqrt", "square root of a negative value")
	}

	if u.kind == KindOne {
		a, b, err := u.br.ExtractSquareReduced()
		if err != nil {
			return nil, err
		}
		return newSqrtNormal(a, b), nil
	}
	return FromConstructive(constructive.Sqrt(u.cr)), nil
}

// Exp returns e^u.
func (u *Real) Exp() *Real {
	if u.kind == KindOne {
		return newNormal(rational.One(), KindExp, u.br)
	}
	return FromConstructive(constructive.Exp(u.cr))
}

// Ln returns ln(u). u <= 0 raises a DomainError.
func (u *Real) Ln() (*Real, error) {
	sign, err := u.br.Sign()
	if err != nil {
		return nil, err
	}
	if sign <= 0 {
		return nil, exactreal.NewDomainError("Ln", "logarithm of a nonpositive value")
	}

	if u.kind == KindExp {
		lnCoeff, err := New(u.br).Ln()
		if err != nil {
			return nil, err
		}
		return New(u.q).Add(lnCoeff), nil
	}

	if u.kind == KindOne {
		if u.br.Equal(rational.One()) {
			return Zero(), nil
		}
		return newNormal(rational.One(), KindLn, u.br), nil
	}

	return FromConstructive(constructive.Ln(u.cr)), nil
}

// Log returns log10(u). u <= 0 raises a DomainError.
func (u *Real) Log() (*Real, error) {
	sign, err := u.br.Sign()
	if err != nil {
		return nil, err
	}
	if sign <= 0 {
		return nil, exactreal.NewDomainError("Log", "logarithm of a nonpositive value")
	}
	if u.kind == KindOne {
		if u.br.Equal(rational.One()) {
			return Zero(), nil
		}
		return newNormal(rational.One(), KindLog, u.br), nil
	}
	return FromConstructive(constructive.Divide(constructive.Ln(u.cr), constructive.Ln(constructive.Ten()))), nil
}

// Pow returns u^exp. Integer exponents dispatch through BR.Pow when u is
// rational; half-integer exponents on non-negative rationals use sqrt;
// (e^q)^r for rational r becomes e^(q*r). 0^0 is 1. A negative base
// raises a DomainError unless exp is an integer and u is rational or of
// the form br*e^q.
func (u *Real) Pow(exp *Real) (*Real, error) {
	if exp.IsZero() {
		return One(), nil
	}

	if exp.kind == KindOne {
		if n, ok := exp.br.ToBigInteger(); ok && n.IsInt64() {
			switch u.kind {
			case KindOne:
				r, err := rational.Pow(u.br, int(n.Int64()))
				if err == nil {
					return New(r), nil
				}
			case KindExp:
				coeff, err := rational.Pow(u.br, int(n.Int64()))
				if err == nil {
					return newNormal(coeff, KindExp, rational.Multiply(u.q, exp.br)), nil
				}
			}
		} else if u.kind == KindOne {
			if doubled, ok := rational.Multiply(exp.br, rational.Two()).ToBigInteger(); ok && doubled.IsInt64() {
				if sign, serr := u.br.Sign(); serr == nil && sign >= 0 {
					base, rerr := rational.Pow(u.br, int(doubled.Int64()))
					if rerr == nil {
						return New(base).Sqrt()
					}
				}
			}
		}
	}

	sign, err := u.br.Sign()
	if err != nil {
		return nil, err
	}
	if sign < 0 {
		return nil, exactreal.NewDomainError("Pow", "negative base with non-integer exponent")
	}

	lnU, err := u.Ln()
	if err != nil {
		return nil, err
	}
	return lnU.Multiply(exp).Exp(), nil
}

// Sin returns sin(u). When u is an exact rational multiple of pi
// (kind Pi), the result stays in SinPi normal form.
func (u *Real) Sin() *Real {
	if u.kind == KindPi {
		return newNormal(rational.One(), KindSinPi, u.br)
	}
	return FromConstructive(constructive.Sine(u.cr))
}

// Cos returns cos(u).
func (u *Real) Cos() *Real {
	if u.kind == KindPi {
		// cos(pi*q) = sin(pi*(q + 1/2)).
		return newNormal(rational.One(), KindSinPi, rational.Add(u.br, rational.Half()))
	}
	return FromConstructive(constructive.Cosine(u.cr))
}

// Tan returns tan(u).
func (u *Real) Tan() *Real {
	if u.kind == KindPi {
		return newNormal(rational.One(), KindTanPi, u.br)
	}
	return FromConstructive(constructive.Tangent(u.cr))
}

// Asin returns asin(u).
func (u *Real) Asin() *Real {
	denom := constructive.Sqrt(constructive.Subtract(constructive.One(), constructive.Square(u.cr)))
	return FromConstructive(constructive.Arctangent(constructive.Divide(u.cr, denom)))
}

// Acos returns acos(u).
func (u *Real) Acos() *Real {
	return FromConstructive(constructive.Subtract(constructive.Divide(constructive.Pi(), constructive.Two()), u.Asin().cr))
}

// Atan returns atan(u).
func (u *Real) Atan() *Real {
	return FromConstructive(constructive.Arctangent(u.cr))
}

// Floor returns the UnifiedReal equal to floor(u), as an exact integer.
func (u *Real) Floor() (*Real, error) {
	if u.kind == KindOne {
		f, err := u.br.Floor()
		if err != nil {
			return nil, err
		}
		return New(rational.FromBigInt(f)), nil
	}
	f, err := floorConstructive(u.cr)
	if err != nil {
		return nil, err
	}
	return New(rational.FromBigInt(f)), nil
}

// Ceil returns ceil(u).
func (u *Real) Ceil() (*Real, error) {
	floor, err := u.Negate().Floor()
	if err != nil {
		return nil, err
	}
	return floor.Negate(), nil
}

// Round returns u rounded to the nearest integer, ties away from zero.
func (u *Real) Round() (*Real, error) {
	half := New(rational.Half())
	if sign, err := u.br.Sign(); err == nil && sign < 0 {
		return u.Subtract(half).Ceil()
	}
	return u.Add(half).Floor()
}

// floorConstructive computes floor(c) by requesting increasingly precise
// approximations until the bracket [a-1, a+1] (in units of 2^-p) maps to
// a single integer quotient. It never resolves for c exactly equal to an
// integer, surfacing exactreal.PrecisionOverflow once the platform's
// representable precision range is exhausted — the same "can't decide a
// boundary case" behavior as msd.
func floorConstructive(c constructive.Real) (*big.Int, error) {
	if v, ok := constructive.Identify(c); ok {
		return v, nil
	}

	p := -10
	for constructive.IsPrecisionValid(p) {
		a, err := constructive.Approximate(c, p)
		if err != nil {
			return nil, err
		}
		denom := new(big.Int).Lsh(big.NewInt(1), uint(-p))
		lo := new(big.Int).Div(new(big.Int).Sub(a, big.NewInt(1)), denom)
		hi := new(big.Int).Div(new(big.Int).Add(a, big.NewInt(1)), denom)
		if lo.Cmp(hi) == 0 {
			return lo, nil
		}
		p *= 2
	}
	return nil, exactreal.PrecisionOverflow
}

// gcdBig computes the non-negative gcd of two big integers.
func gcdBig(a, b *big.Int) *big.Int {
	return new(big.Int).GCD(nil, nil, new(big.Int).Abs(a), new(big.Int).Abs(b))
}

// Gcd returns gcd(u, other) when both are known exact integers.
func (u *Real) Gcd(other *Real) (*Real, error) {
	if u.kind != KindOne || other.kind != KindOne {
		return nil, exactreal.NewDomainError("Gcd", "operands must be exact integers")
	}
	a, ok1 := u.br.ToBigInteger()
	b, ok2 := other.br.ToBigInteger()
	if !ok1 || !ok2 {
		return nil, exactreal.NewDomainError("Gcd", "operands must be exact integers")
	}
	return New(rational.FromBigInt(gcdBig(a, b))), nil
}

// ToConstructiveReal returns the constructive-real view of u.
func (u *Real) ToConstructiveReal() constructive.Real {
	return u.cr
}

// ToDouble returns the closest float64 to u.
func (u *Real) ToDouble() (float64, error) {
	return constructive.DoubleValue(u.cr)
}

// PropertyCorrect reports whether u's cached constructive value agrees
// with br*factor to within 2^p, the self-check named in spec.md §8.
func (u *Real) PropertyCorrect(p int) (bool, error) {
	brcr, err := u.br.Constructive()
	if err != nil {
		return false, err
	}
	fcr, err := factorCR(u.kind, u.q)
	if err != nil {
		return false, err
	}
	recomputed := constructive.Multiply(brcr, fcr)
	v, err := constructive.PreciseCmp(recomputed, u.cr, p)
	if err != nil {
		return false, err
	}
	return v == 0, nil
}
