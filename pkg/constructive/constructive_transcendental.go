package constructive

import (
	"fmt"
	"math"
	"math/big"

	"github.com/ochrefield/exactreal"
)

// Exp computes e^c.
func Exp(c Real) Real {
	rough, ok := roughApprox(c, -3)
	if ok {
		if rough.Sign() < 0 {
			return Inverse(Exp(Negate(c)))
		}
		if rough.Cmp(big.NewInt(2)) > 0 {
			return Square(Exp(ShiftRight(c, 1)))
		}
	}
	return newPrescaledExponential(c)
}

// roughApprox is Approximate without surfacing an error to the DAG
// builder: constructors like Exp/Ln/Cosine inspect a rough approximation
// to decide which recursive identity to apply, but construction itself
// must never fail — a failure here just means the decision falls through
// to the general-purpose node, which will raise the real error when it
// is actually evaluated.
func roughApprox(c Real, p int) (*big.Int, bool) {
	v, err := Approximate(c, p)
	if err != nil {
		return nil, false
	}
	return v, true
}

type prescaledExponential struct {
	precisionTracker
	r Real
}

// newPrescaledExponential computes e^c via its Taylor series, valid for
// |c| <= 2.
func newPrescaledExponential(c Real) Real {
	return &prescaledExponential{r: c}
}

func (c *prescaledExponential) approximate(p int) (*big.Int, error) {
	if p >= 1 {
		return big.NewInt(0), nil
	}

	iters := -p/2 + 2
	calcPrec := p - boundLog2(2*iters) - 4
	opPrec := p - 3
	opAppr, err := Approximate(c.r, opPrec)
	if err != nil {
		return nil, err
	}

	term := bigLsh(big.NewInt(1), uint(-calcPrec))
	sum := bigLsh(big.NewInt(1), uint(-calcPrec))
	n := int64(0)
	maxTruncError := bigLsh(big.NewInt(1), uint(p-4-calcPrec))
	for bigAbs(term).Cmp(maxTruncError) >= 0 {
		n++
		term = scale(bigMul(term, opAppr), opPrec)
		term = bigDiv(term, big.NewInt(n))
		sum = bigAdd(sum, term)
	}
	return scale(sum, calcPrec-p), nil
}

func (c *prescaledExponential) asConstruction() string {
	return fmt.Sprintf("Pow(E, %s)", c.r.asConstruction())
}

// Ln computes the natural logarithm of c. A negative argument is a
// DomainError, raised as soon as the sign is resolved; ln(0) never
// resolves a sign and surfaces as exactreal.PrecisionOverflow once the
// underlying msd refinement gives up.
func Ln(c Real) Real {
	rough, ok := roughApprox(c, -4)
	if ok {
		if rough.Sign() < 0 {
			return newLnDomainError()
		}
		if rough.Cmp(big.NewInt(8)) < 0 {
			return Negate(Ln(Inverse(c)))
		}
		if rough.Cmp(big.NewInt(24)) > 0 {
			return ShiftLeft(Ln(Sqrt(Sqrt(c))), 2)
		}
	}
	return SimpleLn(c)
}

// SimpleLn computes the natural logarithm of c from the ln(1+x) series at
// x = c-1, for c near 1; Ln uses it for c between about 1/2 and 3/2.
func SimpleLn(c Real) Real {
	return newPrescaledNaturalLog(Subtract(c, One()))
}

type lnDomainError struct {
	precisionTracker
}

func newLnDomainError() Real {
	return &lnDomainError{}
}

func (c *lnDomainError) approximate(int) (*big.Int, error) {
	return nil, exactreal.NewDomainError("Ln", "logarithm of a nonpositive value")
}

func (c *lnDomainError) asConstruction() string {
	return "Ln(<negative>)"
}

type prescaledNaturalLog struct {
	precisionTracker
	r Real
}

func newPrescaledNaturalLog(c Real) Real {
	return &prescaledNaturalLog{r: c}
}

func (c *prescaledNaturalLog) approximate(p int) (*big.Int, error) {
	if p >= 0 {
		return big.NewInt(0), nil
	}

	iters := -p - 1
	calcPrec := p - boundLog2(2*iters) - 4
	opPrec := p - 3
	opAppr, err := Approximate(c.r, opPrec)
	if err != nil {
		return nil, err
	}

	xToTheN := scale(opAppr, opPrec-calcPrec)
	term := xToTheN
	sum := term
	n := int64(1)
	sign := int64(1)
	maxTruncError := bigLsh(big.NewInt(1), uint(p-4-calcPrec))
	for bigAbs(term).Cmp(maxTruncError) >= 0 {
		n++
		sign = -sign
		xToTheN = scale(bigMul(xToTheN, opAppr), opPrec)
		term = bigDiv(xToTheN, big.NewInt(sign*n))
		sum = bigAdd(sum, term)
	}
	return scale(sum, calcPrec-p), nil
}

func (c *prescaledNaturalLog) asConstruction() string {
	return fmt.Sprintf("Ln(%s)", c.r.asConstruction())
}

type integralArctan struct {
	precisionTracker
	a Real
}

// newIntegralArctan computes atan(1/a) for an integer-valued a with
// |a| >= 2, via the Gregory-Leibniz-style series used in Machin-like pi
// formulas.
func newIntegralArctan(c Real) Real {
	return &integralArctan{a: c}
}

func (c *integralArctan) approximate(p int) (*big.Int, error) {
	if p >= 1 {
		return big.NewInt(0), nil
	}

	iters := -p/2 + 2
	calcPrec := p - boundLog2(2*iters) - 4

	ia, err := Approximate(c.a, 0)
	if err != nil {
		return nil, err
	}
	isq := bigMul(ia, ia)

	power := bigDiv(bigLsh(big.NewInt(1), uint(-calcPrec)), ia)
	term := power
	sum := power
	sign := int64(1)

	n := int64(1)
	maxTruncError := bigLsh(big.NewInt(1), uint(p-4-calcPrec))
	for bigAbs(term).Cmp(maxTruncError) >= 0 {
		n += 2
		power = bigDiv(power, isq)
		sign = -sign
		term = bigDiv(power, bigMul(big.NewInt(sign), big.NewInt(n)))
		sum = bigAdd(sum, term)
	}
	return scale(sum, calcPrec-p), nil
}

func (c *integralArctan) asConstruction() string {
	return fmt.Sprintf("IntegralArctan(%s)", c.a.asConstruction())
}

type prescaledArctan struct {
	precisionTracker
	x Real
}

// newPrescaledArctan computes atan(x) directly from its Taylor series,
// valid for |x| <= 1.
func newPrescaledArctan(x Real) Real {
	return &prescaledArctan{x: x}
}

func (c *prescaledArctan) approximate(p int) (*big.Int, error) {
	if p >= 2 {
		return big.NewInt(0), nil
	}

	iters := -p/2 + 3
	calcPrec := p - boundLog2(2*iters) - 4
	opPrec := p - 3
	opAppr, err := Approximate(c.x, opPrec)
	if err != nil {
		return nil, err
	}

	xToTheN := scale(opAppr, opPrec-calcPrec)
	term := xToTheN
	sum := term
	n := int64(1)
	sign := int64(1)
	maxTruncError := bigLsh(big.NewInt(1), uint(p-4-calcPrec))
	for bigAbs(term).Cmp(maxTruncError) >= 0 {
		n += 2
		sign = -sign
		xToTheN = scale(bigMul(xToTheN, opAppr), opPrec)
		xToTheN = scale(bigMul(xToTheN, opAppr), opPrec)
		term = bigDiv(xToTheN, big.NewInt(sign*n))
		sum = bigAdd(sum, term)
	}
	return scale(sum, calcPrec-p), nil
}

func (c *prescaledArctan) asConstruction() string {
	return fmt.Sprintf("Arctan(%s)", c.x.asConstruction())
}

// Arctangent computes atan(c) for any real c, reducing to the Taylor
// series range |x| <= 1/2 via atan(x) = pi/2 - atan(1/x) for x > 1 and
// atan(x) = 2*atan(x/(1+sqrt(1+x^2))) for the remaining x above 1/4.
func Arctangent(c Real) Real {
	rough, ok := roughApprox(c, -2)
	if ok {
		if rough.Sign() < 0 {
			return Negate(Arctangent(Negate(c)))
		}
		if rough.Cmp(big.NewInt(4)) > 0 {
			return Subtract(Divide(Pi(), Two()), Arctangent(Inverse(c)))
		}
		if rough.Cmp(big.NewInt(1)) > 0 {
			half := Divide(c, Add(One(), Sqrt(Add(One(), Square(c)))))
			return ShiftLeft(Arctangent(half), 1)
		}
	}
	return newPrescaledArctan(c)
}

// Sqrt computes the square root of c. A negative radicand is a
// DomainError.
func Sqrt(c Real) Real {
	return newPrescaledSqrt(c)
}

type prescaledSqrt struct {
	precisionTracker
	r Real
}

func newPrescaledSqrt(c Real) Real {
	return &prescaledSqrt{r: c}
}

func (c *prescaledSqrt) approximate(p int) (*big.Int, error) {
	pn := 2*p - 1
	mr, err := msd(c.r, pn)
	if err != nil {
		return nil, err
	}
	if mr <= pn {
		return big.NewInt(0), nil
	}

	digits := mr/2 - p
	if digits > 40 {
		pa := mr/2 - (digits/2 + 6)
		ic, err := Approximate(c, pa)
		if err != nil {
			return nil, err
		}
		ir, err := Approximate(c.r, 2*pa)
		if err != nil {
			return nil, err
		}

		numerator := scale(bigAdd(bigMul(ic, ic), ir), pa-p)
		return bigRsh(bigAdd(bigDiv(numerator, ic), big.NewInt(1)), 1), nil
	}

	pa := (mr - 60) &^ 1
	ir, err := Approximate(c.r, pa)
	if err != nil {
		return nil, err
	}
	ir = bigLsh(ir, 60)
	if ir.Sign() < 0 {
		return nil, exactreal.NewDomainError("Sqrt", "square root of a negative value")
	}

	fp, _ := ir.Float64()
	return signedShift(big.NewInt(int64(math.Sqrt(fp))), (pa-60)/2-p), nil
}

func (c *prescaledSqrt) asConstruction() string {
	return fmt.Sprintf("Sqrt(%s)", c.r.asConstruction())
}

// Cosine computes the cosine of c.
func Cosine(c Real) Real {
	rough, ok := roughApprox(c, -1)
	if ok {
		if rough.CmpAbs(big.NewInt(6)) >= 0 {
			mult := bigDiv(rough, big.NewInt(6))
			adj := Multiply(Pi(), FromBigInt(mult))
			if bigBitAnd(mult, big.NewInt(1)).Sign() != 0 {
				return Negate(Cosine(Subtract(c, adj)))
			}
			return Cosine(Subtract(c, adj))
		}
		if rough.CmpAbs(big.NewInt(2)) >= 0 {
			return Subtract(ShiftLeft(Square(Cosine(ShiftRight(c, 1))), 1), One())
		}
	}
	return newPrescaledCosine(c)
}

// Sine computes the sine of c, using the identity sin(c) = cos(pi/2 - c).
func Sine(c Real) Real {
	return Cosine(Subtract(Divide(Pi(), Two()), c))
}

// Tangent computes the tangent of c, using the identity
// tan(c) = sin(c) / cos(c). At an odd multiple of pi/2 the cosine is
// exactly zero but not recognized as such, so evaluation raises no
// DomainError: Inverse keeps refining the cosine's msd instead.
func Tangent(c Real) Real {
	return Divide(Sine(c), Cosine(c))
}

type prescaledCosine struct {
	precisionTracker
	r Real
}

func newPrescaledCosine(c Real) Real {
	return &prescaledCosine{r: c}
}

func (c *prescaledCosine) approximate(p int) (*big.Int, error) {
	if p >= 1 {
		return big.NewInt(0), nil
	}

	iters := -p/2 - 2
	calcPrec := p - boundLog2(2*iters) - 4
	opPrec := p - 3
	opAppr, err := Approximate(c.r, opPrec)
	if err != nil {
		return nil, err
	}

	term := bigLsh(big.NewInt(1), uint(-calcPrec))
	sum := term
	n := int64(0)
	maxTruncError := bigLsh(big.NewInt(1), uint(p-4-calcPrec))
	for bigAbs(term).Cmp(maxTruncError) >= 0 {
		n += 2
		term = scale(bigMul(term, opAppr), opPrec)
		term = scale(bigMul(term, opAppr), opPrec)
		term = bigDiv(term, big.NewInt(-n*(n-1)))
		sum = bigAdd(sum, term)
	}
	return scale(sum, calcPrec-p), nil
}

func (c *prescaledCosine) asConstruction() string {
	return fmt.Sprintf("Cosine(%s)", c.r.asConstruction())
}

// Pow computes c^n for a real exponent n, via exp(ln(c) * n). Negative
// c raises a DomainError when evaluated (through Ln); zero c surfaces as
// exactreal.PrecisionOverflow, as Ln(0) does.
func Pow(c, n Real) Real {
	return Exp(Multiply(Ln(c), n))
}

// Pow10 computes 10^n.
func Pow10(n Real) Real {
	return Pow(Ten(), n)
}

// AssumeInt wraps c in a node that rounds its argument to the nearest
// integer at every precision. It is legal only when the caller already
// knows c's value is an exact integer; used by the unified package after
// exact-rational arithmetic has established an integral result.
func AssumeInt(c Real) Real {
	return newAssumeInt(c)
}

type assumeInt struct {
	precisionTracker
	r Real
}

func newAssumeInt(c Real) Real {
	return &assumeInt{r: c}
}

func (c *assumeInt) approximate(p int) (*big.Int, error) {
	if p >= 0 {
		v, err := Approximate(c.r, p)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	v, err := Approximate(c.r, 0)
	if err != nil {
		return nil, err
	}
	return scale(v, -p), nil
}

func (c *assumeInt) asConstruction() string {
	return fmt.Sprintf("AssumeInt(%s)", c.r.asConstruction())
}
