// Package constructive implements ConstructiveReal (CR): a DAG of lazy
// real-valued nodes, each able to produce an integer approximation
// correct to any requested binary precision, with per-node memoization.
//
// A precision p is a signed integer; the approximation A of a real x at
// precision p must satisfy |A - x*2^(-p)| <= 1. Smaller (more negative) p
// means more fraction bits of accuracy.
package constructive

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/ochrefield/exactreal"
)

const IntSize = 32 << (^uint(0) >> 63) // 32 or 64

// maxMSDIterations bounds the number of geometric refinements msd will
// attempt before concluding that a value's magnitude cannot be resolved
// and giving up with a PrecisionOverflow error. This models spec.md's
// "may raise precision-overflow after a bounded number of refinements
// with no resolution" without requiring an explicit caller-supplied
// ceiling for operations (inverse of zero, ln of zero) that can never
// terminate on their own.
const maxMSDIterations = 48

// IsPrecisionValid checks if the precision is within 4 bits of tolerance
// of the platform int size, guarding against precision arithmetic that
// would silently overflow int.
func IsPrecisionValid(p int) bool {
	return IsIntWithinBitTolerance(p, 4)
}

// IsIntWithinBitTolerance checks if the integer value is within the bit
// tolerance. A bit tolerance of 4 means that there must be at least 4
// bits unused in the integer representation.
func IsIntWithinBitTolerance(value, tolerance int) bool {
	highBits := value >> (IntSize - tolerance)
	topBits := value >> (IntSize - tolerance + 1)
	return (highBits ^ topBits) == 0
}

// Real represents a constructive real number: a DAG node that can
// produce a big.Int approximation at any requested precision.
type Real interface {
	approximate(p int) (*big.Int, error)
	asConstruction() string
	tracker() *precisionTracker
}

// Approximate computes the approximation of c at precision p, consulting
// and updating the node's memo. It returns exactreal.PrecisionOverflow if
// p is outside the platform's representable range, or whatever error the
// node's own approximation raises (DomainError, PrecisionOverflow).
func Approximate(c Real, p int) (*big.Int, error) {
	if !IsPrecisionValid(p) {
		return nil, exactreal.PrecisionOverflow
	}

	t := c.tracker()
	if s, ok := t.Get(p); ok {
		return s, nil
	}

	s, err := c.approximate(p)
	if err != nil {
		return nil, err
	}
	return t.Set(p, s), nil
}

// GetApproximation is an alias for Approximate, named to match the
// public conversion vocabulary of spec.md §4.2.
func GetApproximation(c Real, p int) (*big.Int, error) {
	return Approximate(c, p)
}

// AsConstruction returns a single-line string describing how c was
// built, useful for diagnosing unexpected results from symbolic
// simplification upstream (in the unified package) without attempting to
// evaluate c.
func AsConstruction(c Real) string {
	return AsConstructionIndent(c, "")
}

// AsConstructionIndent is AsConstruction, but when indent is non-empty,
// every opening parenthesis increases the indentation level by one and
// every closing parenthesis decreases it, so nested constructions read
// as an indented tree instead of one long line.
func AsConstructionIndent(c Real, indent string) string {
	data := c.asConstruction()
	if len(indent) == 0 {
		return data
	}

	out := strings.Builder{}
	currentIndent := 0
	sawComma := false
	for i := 0; i < len(data); i++ {
		ch := data[i]
		switch ch {
		case '(':
			out.WriteByte(ch)
			currentIndent++
			out.WriteByte('\n')
			out.WriteString(strings.Repeat(indent, currentIndent))
		case ')':
			currentIndent--
			out.WriteByte(',')
			out.WriteByte('\n')
			out.WriteString(strings.Repeat(indent, currentIndent))
			out.WriteByte(ch)
		case ',':
			out.WriteByte(ch)
			out.WriteByte('\n')
			out.WriteString(strings.Repeat(indent, currentIndent))
			sawComma = true
			continue
		case ' ':
			if !sawComma {
				out.WriteByte(ch)
			}
		default:
			out.WriteByte(ch)
		}
		sawComma = false
	}

	return out.String()
}

// Cmp compares two Real numbers a and b with higher and higher precision
// until a non-zero result is found. It returns 1 if a > b, -1 if a < b.
//
// This function never terminates if a == b; use PreciseCmp to bound the
// work.
func Cmp(a, b Real) int {
	for p := -20; IsPrecisionValid(p); p *= 2 {
		if v, err := PreciseCmp(a, b, p); err == nil && v != 0 {
			return v
		}
	}
	return 0
}

// PreciseCmp compares a and b at precision p, returning -1/0/1. It
// returns 0 (rather than an error) when the approximations straddle so
// closely that the sign cannot be resolved at this precision — callers
// that need certainty should refine p, as Cmp does.
func PreciseCmp(a, b Real, p int) (int, error) {
	ia, err := Approximate(a, p-1)
	if err != nil {
		return 0, err
	}
	ib, err := Approximate(b, p-1)
	if err != nil {
		return 0, err
	}

	if ia.Cmp(bigAdd(ib, big.NewInt(1))) > 0 {
		return 1, nil
	}
	if ia.Cmp(bigSub(ib, big.NewInt(1))) < 0 {
		return -1, nil
	}
	return 0, nil
}

// CompareBounded iteratively refines PreciseCmp starting from relP,
// doubling precision until either the sign is resolved or absP is
// reached, at which point it returns 0 ("still undecided" rather than an
// error) — the cooperative-cancellation form named in spec.md §4.2/§5.
func CompareBounded(a, b Real, relP, absP int) int {
	if absP > relP {
		absP, relP = relP, absP
	}
	for p := relP; p >= absP; p *= 2 {
		if v, err := PreciseCmp(a, b, p); err == nil && v != 0 {
			return v
		}
		if p == absP {
			break
		}
	}
	if v, err := PreciseCmp(a, b, absP); err == nil {
		return v
	}
	return 0
}

// knownMSD computes the position of the most significant bit (MSD) from
// an already-populated memo. When the MSD is n, then 2^(n-1) < |c| <
// 2^(n+1).
func knownMSD(c Real) int {
	t := c.tracker()
	if t.MaxApproximation.Sign() >= 0 {
		return t.MinPrecision + t.MaxApproximation.BitLen() - 1
	}
	return t.MinPrecision + bigNeg(t.MaxApproximation).BitLen() - 1
}

// msd estimates the MSD of c, requesting approximations at increasingly
// fine precision (starting near n) until the magnitude is resolved
// (|approx| > 1) or maxMSDIterations is exhausted, in which case it
// returns exactreal.PrecisionOverflow — the value is, or may be, exactly
// zero, and no finite amount of refinement can tell the difference.
func msd(c Real, n int) (int, error) {
	t := c.tracker()
	if t.IsValid && bigAbs(t.MaxApproximation).Cmp(big.NewInt(1)) > 0 {
		return knownMSD(c), nil
	}

	prec := n - 1
	for i := 0; i < maxMSDIterations; i++ {
		a, err := Approximate(c, prec)
		if err != nil {
			return 0, err
		}
		if bigAbs(a).Cmp(big.NewInt(1)) > 0 {
			return knownMSD(c), nil
		}
		prec = prec*2 - 4
		if !IsPrecisionValid(prec) {
			break
		}
	}
	return 0, exactreal.PrecisionOverflow
}

// PreciseSign computes the sign of c at precision p: -1, 0, or 1.
func PreciseSign(c Real, p int) (int, error) {
	if t := c.tracker(); t.IsValid {
		if v := t.MaxApproximation.Sign(); v != 0 {
			return v, nil
		}
	}

	ic, err := Approximate(c, p-1)
	if err != nil {
		return 0, err
	}
	return ic.Sign(), nil
}

// Sign computes the sign of c: 1 if c > 0, -1 if c < 0.
//
// This function never terminates if c == 0; use PreciseSign to bound the
// work.
func Sign(c Real) int {
	for p := -20; IsPrecisionValid(p); p *= 2 {
		if r, err := PreciseSign(c, p-1); err == nil && r != 0 {
			return r
		}
	}
	return 0
}

// scale is a rounded (round-half-up-toward-nearest) multiplication by
// 2^n.
func scale(i *big.Int, n int) *big.Int {
	if n >= 0 {
		return bigLsh(i, uint(n))
	}
	adj := bigAdd(signedShift(i, n+1), big.NewInt(1))
	return bigRsh(adj, 1)
}

// signedShift is a signed shift function: left for n > 0, right for
// n < 0.
func signedShift(i *big.Int, n int) *big.Int {
	switch {
	case n < 0:
		return bigRsh(i, uint(-n))
	case n > 0:
		return bigLsh(i, uint(n))
	default:
		return i
	}
}

// constructiveInteger is a CR node wrapping a fixed big.Int.
type constructiveInteger struct {
	precisionTracker
	i *big.Int
}

// FromBigInt creates a Real number from a big.Int.
func FromBigInt(i *big.Int) Real {
	if i.Sign() == 0 {
		return FromInt64(0)
	}
	return newInteger(i)
}

// FromInt64 creates a Real number from an int64.
func FromInt64(i int64) Real {
	return newInteger(big.NewInt(i))
}

// FromInt creates a Real number from an int.
func FromInt(i int) Real {
	return FromInt64(int64(i))
}

// FromFloat32 creates a Real number from a float32.
func FromFloat32(f float32) Real {
	return FromFloat64(float64(f))
}

// FromFloat64 creates a Real number with the exact binary-fraction value
// of f, or nil if f is NaN or +/-Inf (callers that need a DomainError
// instead should check math.IsNaN/math.IsInf themselves before calling).
func FromFloat64(f float64) Real {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	bits := math.Float64bits(f) &^ (1 << 63)
	mantissa := bits & ((1 << 52) - 1)
	rawExp := int((bits >> 52) & ((1 << 11) - 1))
	exponent := rawExp - 1075
	if rawExp != 0 {
		mantissa += 1 << 52
	} else {
		mantissa <<= 1
	}

	r := ShiftLeft(newInteger(big.NewInt(int64(mantissa))), exponent)
	if f < 0 {
		r = newNegation(r)
	}
	return r
}

// FromRat creates a Real number from a/b, b != 0.
func FromRat(a, b int) Real {
	return Divide(FromInt(a), FromInt(b))
}

func newInteger(i *big.Int) Real {
	return &constructiveInteger{i: i}
}

func (c *constructiveInteger) approximate(p int) (*big.Int, error) {
	return scale(c.i, -p), nil
}

func (c *constructiveInteger) asConstruction() string {
	return fmt.Sprintf("Int(%s)", c.i.Text(10))
}

// Add computes a + b.
func Add(a, b Real) Real {
	return newAddition(a, b)
}

// Subtract computes a - b.
func Subtract(a, b Real) Real {
	return newAddition(a, Negate(b))
}

type constructiveAddition struct {
	precisionTracker
	a, b Real
}

func newAddition(a, b Real) Real {
	return &constructiveAddition{a: a, b: b}
}

func (c *constructiveAddition) approximate(p int) (*big.Int, error) {
	a, err := Approximate(c.a, p-2)
	if err != nil {
		return nil, err
	}
	b, err := Approximate(c.b, p-2)
	if err != nil {
		return nil, err
	}
	return scale(bigAdd(a, b), -2), nil
}

func (c *constructiveAddition) asConstruction() string {
	return fmt.Sprintf("Add(%s, %s)", c.a.asConstruction(), c.b.asConstruction())
}

type constructiveMultiplication struct {
	precisionTracker
	a, b Real
}

// Square computes c * c.
func Square(c Real) Real {
	return newMultiplication(c, c)
}

// Multiply computes a * b.
func Multiply(a, b Real) Real {
	return newMultiplication(a, b)
}

func newMultiplication(a, b Real) Real {
	return &constructiveMultiplication{a: a, b: b}
}

func (c *constructiveMultiplication) approximate(p int) (*big.Int, error) {
	hp := (p >> 1) - 1
	ma, err := msd(c.a, hp)
	zeroA := false
	if err != nil {
		if err == exactreal.PrecisionOverflow {
			zeroA = true
		} else {
			return nil, err
		}
	}
	if zeroA {
		mb, err := msd(c.b, hp)
		if err != nil {
			if err == exactreal.PrecisionOverflow {
				return big.NewInt(0), nil
			}
			return nil, err
		}
		ma = mb
	}

	p2 := p - ma - 3
	ib, err := Approximate(c.b, p2)
	if err != nil {
		return nil, err
	}
	if ib.Sign() == 0 {
		return big.NewInt(0), nil
	}

	mb := knownMSD(c.b)
	p1 := p - mb - 3
	ia, err := Approximate(c.a, p1)
	if err != nil {
		return nil, err
	}

	return scale(bigMul(ia, ib), p1+p2-p), nil
}

func (c *constructiveMultiplication) asConstruction() string {
	return fmt.Sprintf("Multiply(%s, %s)", c.a.asConstruction(), c.b.asConstruction())
}

// Inverse computes 1/c.
func Inverse(c Real) Real {
	return newMultiplicativeInverse(c)
}

// Divide computes a * (1/b).
func Divide(a, b Real) Real {
	return Multiply(a, Inverse(b))
}

type constructiveMultiplicativeInverse struct {
	precisionTracker
	r Real
}

func newMultiplicativeInverse(r Real) Real {
	return &constructiveMultiplicativeInverse{r: r}
}

func (c *constructiveMultiplicativeInverse) approximate(p int) (*big.Int, error) {
	mr, err := msd(c.r, p)
	if err != nil {
		return nil, err
	}
	ir := 1 - mr

	digits := ir - p + 3
	pn := mr - digits

	lsf := -p - pn
	if lsf < 0 {
		return big.NewInt(0), nil
	}

	dividend := bigLsh(big.NewInt(1), uint(lsf))
	divisor, err := Approximate(c.r, pn)
	if err != nil {
		return nil, err
	}
	if divisor.Sign() == 0 {
		return nil, exactreal.NewDomainError("Inverse", "division by zero")
	}
	absolute := bigAbs(divisor)
	adj := bigAdd(dividend, bigRsh(absolute, 1))

	res := bigDiv(adj, absolute)
	if divisor.Sign() < 0 {
		return bigNeg(res), nil
	}
	return res, nil
}

func (c *constructiveMultiplicativeInverse) asConstruction() string {
	return fmt.Sprintf("Inverse(%s)", c.r.asConstruction())
}

type constructiveShift struct {
	precisionTracker
	r Real
	n int
}

// ShiftLeft computes c * 2^n.
func ShiftLeft(c Real, n int) Real {
	return newShift(c, n)
}

// ShiftRight computes c * 2^-n.
func ShiftRight(c Real, n int) Real {
	return newShift(c, -n)
}

func newShift(r Real, n int) Real {
	return &constructiveShift{r: r, n: n}
}

func (c *constructiveShift) approximate(p int) (*big.Int, error) {
	return Approximate(c.r, p-c.n)
}

func (c *constructiveShift) asConstruction() string {
	dir := "Left"
	amt := c.n
	if amt < 0 {
		dir = "Right"
		amt = -amt
	}
	return fmt.Sprintf("Shift%s(%s, %d)", dir, c.r.asConstruction(), amt)
}

// Negate computes -c.
func Negate(c Real) Real {
	return newNegation(c)
}

type constructiveNegation struct {
	precisionTracker
	r Real
}

func newNegation(r Real) Real {
	return &constructiveNegation{r: r}
}

func (c *constructiveNegation) approximate(p int) (*big.Int, error) {
	a, err := Approximate(c.r, p)
	if err != nil {
		return nil, err
	}
	return bigNeg(a), nil
}

func (c *constructiveNegation) asConstruction() string {
	return fmt.Sprintf("Negate(%s)", c.r.asConstruction())
}

// Abs computes the absolute value of c.
func Abs(c Real) Real {
	return newCondsign(c, Negate(c), c)
}

// Max computes the maximum of a and b.
func Max(a, b Real) Real {
	return newCondsign(Subtract(a, b), b, a)
}

// Min computes the minimum of a and b.
func Min(a, b Real) Real {
	return newCondsign(Subtract(a, b), a, b)
}

type constructiveCondsign struct {
	precisionTracker
	a, b, r Real
}

func newCondsign(r, a, b Real) Real {
	return &constructiveCondsign{a: a, b: b, r: r}
}

func (c *constructiveCondsign) approximate(p int) (*big.Int, error) {
	roughR, err := Approximate(c.r, -20)
	if err != nil {
		return nil, err
	}
	switch sign := roughR.Sign(); {
	case sign < 0:
		return Approximate(c.a, p)
	case sign > 0:
		return Approximate(c.b, p)
	default:
	}

	ia, err := Approximate(c.a, p-1)
	if err != nil {
		return nil, err
	}
	ib, err := Approximate(c.b, p-1)
	if err != nil {
		return nil, err
	}
	delta := bigAbs(bigSub(ia, ib))
	if delta.Cmp(big.NewInt(1)) <= 0 {
		return scale(ia, -1), nil
	}

	if Sign(c.r) < 0 {
		return scale(ia, -1), nil
	}
	return scale(ib, -1), nil
}

func (c *constructiveCondsign) asConstruction() string {
	return fmt.Sprintf("CondSign(%s, %s, %s)", c.r.asConstruction(), c.a.asConstruction(), c.b.asConstruction())
}

type named struct {
	Real
	Name string
}

func newNamed(name string, c Real) Real {
	return &named{Real: c, Name: name}
}

func (c *named) asConstruction() string {
	return fmt.Sprintf("Named(%q, %s)", c.Name, c.Real.asConstruction())
}

// ConstructiveName returns the name of c, if it was constructed through
// one of the named constants (Pi, E, Sqrt2, ...), and whether one was
// found.
func ConstructiveName(c Real) (string, bool) {
	if n, ok := c.(*named); ok {
		return n.Name, true
	}
	return "", false
}

// ContinuedFraction64 computes the continued fraction from the given
// slice of int64 partial quotients.
func ContinuedFraction64(fracs []int64) Real {
	if len(fracs) == 0 {
		return Zero()
	}
	c := FromInt64(fracs[len(fracs)-1])
	for i := len(fracs) - 2; i >= 0; i-- {
		c = Add(FromInt64(fracs[i]), Inverse(c))
	}
	return c
}

// ContinuedFraction computes the continued fraction from the given slice
// of Real partial quotients.
func ContinuedFraction(fracs []Real) Real {
	if len(fracs) == 0 {
		return Zero()
	}
	c := fracs[len(fracs)-1]
	for i := len(fracs) - 2; i >= 0; i-- {
		c = Add(fracs[i], Inverse(c))
	}
	return c
}
