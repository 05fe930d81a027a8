package rational

import (
	"math/big"

	"github.com/ochrefield/exactreal"
)

// Pow computes base^exp for an integer exponent (positive, negative, or
// zero). 0^0 is defined as 1, matching spec.md's boundary scenario. A
// zero base raised to a negative exponent is a DomainError (division by
// zero).
func Pow(base *BoundedRational, exp int) (*BoundedRational, error) {
	if base.IsNull() {
		return Null(), nil
	}
	if exp == 0 {
		return One(), nil
	}

	neg := exp < 0
	n := exp
	if neg {
		n = -n
	}

	result := One()
	sq := base
	for n > 0 {
		if n&1 == 1 {
			result = Multiply(result, sq)
		}
		sq = Multiply(sq, sq)
		n >>= 1
	}

	if neg {
		inv, err := Inverse(result)
		if err != nil {
			return nil, exactreal.NewDomainError("Pow", "zero base to negative exponent")
		}
		return inv, nil
	}
	return result, nil
}

// PowBR computes base^exp for a rational exponent, succeeding only when
// the result is itself exactly rational (e.g. (1/4)^(1/2) = 1/2, or any
// rational base to an integer exponent). ok is false when no exact
// rational result is known to exist, in which case the caller (typically
// the unified package) should fall back to constructive-real evaluation.
func PowBR(base, exp *BoundedRational) (result *BoundedRational, ok bool, err error) {
	if base.IsNull() || exp.IsNull() {
		return Null(), true, nil
	}

	if exp.den.Cmp(big.NewInt(1)) == 0 {
		if !exp.num.IsInt64() {
			return nil, false, nil
		}
		r, perr := Pow(base, int(exp.num.Int64()))
		if perr != nil {
			return nil, false, perr
		}
		return r, true, nil
	}

	if !exp.den.IsInt64() {
		return nil, false, nil
	}
	n := int(exp.den.Int64())
	if exp.num.Sign() < 0 {
		n = -n
	}

	root, ok, rerr := NthRoot(base, n)
	if rerr != nil {
		return nil, false, rerr
	}
	if !ok {
		return nil, false, nil
	}

	absNum := new(big.Int).Abs(exp.num)
	if !absNum.IsInt64() {
		return nil, false, nil
	}
	r, perr := Pow(root, int(absNum.Int64()))
	if perr != nil {
		return nil, false, perr
	}
	return r, true, nil
}

// NthRoot computes the exact rational n-th root of base, if one exists.
// n == 0 is a DomainError. A negative radicand is legal only when n is
// odd (a DomainError otherwise, "even root of a negative value"). n < 0
// means the reciprocal root: base^(-1/|n|).
func NthRoot(base *BoundedRational, n int) (*BoundedRational, bool, error) {
	if base.IsNull() {
		return Null(), true, nil
	}
	if n == 0 {
		return nil, false, exactreal.NewDomainError("NthRoot", "zeroth root")
	}

	if n < 0 {
		root, ok, err := NthRoot(base, -n)
		if err != nil || !ok {
			return nil, ok, err
		}
		inv, err := Inverse(root)
		if err != nil {
			return nil, false, exactreal.NewDomainError("NthRoot", "zero base to negative root")
		}
		return inv, true, nil
	}

	if base.num.Sign() < 0 && n%2 == 0 {
		return nil, false, exactreal.NewDomainError("NthRoot", "even root of negative value")
	}

	negResult := base.num.Sign() < 0
	absNum := new(big.Int).Abs(base.num)

	numRoot, ok := exactIntegerNthRoot(absNum, n)
	if !ok {
		return nil, false, nil
	}
	denRoot, ok := exactIntegerNthRoot(base.den, n)
	if !ok {
		return nil, false, nil
	}

	if negResult {
		numRoot.Neg(numRoot)
	}
	return reduce(numRoot, denRoot), true, nil
}

// exactIntegerNthRoot returns (root, true) if x (x >= 0) is exactly
// root^n, or (nil, false) if x has no exact integer n-th root.
func exactIntegerNthRoot(x *big.Int, n int) (*big.Int, bool) {
	if x.Sign() == 0 {
		return big.NewInt(0), true
	}
	if n == 1 {
		return new(big.Int).Set(x), true
	}

	// Newton's method on big.Int, starting from a bit-length estimate.
	guess := new(big.Int).Lsh(big.NewInt(1), uint(x.BitLen()/n+1))
	nBig := big.NewInt(int64(n))
	nMinus1 := big.NewInt(int64(n - 1))
	for i := 0; i < 128; i++ {
		if guess.Sign() == 0 {
			guess.SetInt64(1)
		}
		pow := new(big.Int).Exp(guess, nBig, nil)
		if pow.Cmp(x) == 0 {
			return guess, true
		}

		// next = ((n-1)*guess + x/guess^(n-1)) / n
		powNMinus1 := new(big.Int).Exp(guess, nMinus1, nil)
		if powNMinus1.Sign() == 0 {
			break
		}
		term := new(big.Int).Quo(x, powNMinus1)
		next := new(big.Int).Add(new(big.Int).Mul(nMinus1, guess), term)
		next.Quo(next, nBig)
		if next.Cmp(guess) == 0 {
			break
		}
		guess = next
	}

	pow := new(big.Int).Exp(guess, nBig, nil)
	if pow.Cmp(x) == 0 {
		return guess, true
	}
	return nil, false
}

// ExtractSquareWillSucceed reports whether ExtractSquareReduced is worth
// attempting: it declines (returns false) once the operand's combined
// bit length exceeds ExtractSquareMaxLen, where trial-division square
// extraction would be impractically slow.
func (r *BoundedRational) ExtractSquareWillSucceed() bool {
	if r.IsNull() {
		return false
	}
	return bigAbsBitLen(r.num)+r.den.BitLen() <= ExtractSquareMaxLen
}

// ExtractSquareReduced factors r = a^2 * b with a non-negative. Square
// factors are found by trial division bounded by extractSquareTrialLimit,
// so b is square-free in numerator and denominator only with respect to
// factors up to that limit. Returns a NullOperationError on null.
func (r *BoundedRational) ExtractSquareReduced() (a, b *BoundedRational, err error) {
	if r.IsNull() {
		return nil, nil, exactreal.NewNullOperationError("ExtractSquareReduced")
	}
	if r.num.Sign() == 0 {
		return FromInt(0), One(), nil
	}

	negative := r.num.Sign() < 0
	absNum := new(big.Int).Abs(r.num)

	numSq, numRem := extractSquarePart(absNum)
	denSq, denRem := extractSquarePart(r.den)

	if negative {
		// Keep a non-negative; push the sign into b.
		numRem.Neg(numRem)
	}

	aVal := reduce(numSq, denSq)
	bVal := reduce(numRem, denRem)
	return aVal, bVal, nil
}

// extractSquareTrialLimit bounds extractSquarePart's trial division to a
// fixed small ceiling rather than sqrt(x): full factorization is not
// required (a valid a^2*b reduction is enough), and trial-dividing up to
// sqrt(x) for an operand with no small square factors (e.g. a large
// prime numerator) would take on the order of sqrt(x) big-integer
// QuoRem steps — impractical for anything but tiny x.
const extractSquareTrialLimit = 100_000

// extractSquarePart factors x >= 0 as sq^2 * rem, trial-dividing only by
// integers up to extractSquareTrialLimit; any square factor introduced
// by a larger prime is left in rem. That is a legal reduction (a^2*b
// still equals x) even though it is not a full factorization.
func extractSquarePart(x *big.Int) (sq, rem *big.Int) {
	rem = new(big.Int).Set(x)
	sq = big.NewInt(1)
	if rem.Sign() == 0 {
		return big.NewInt(0), big.NewInt(1)
	}

	limit := big.NewInt(extractSquareTrialLimit)
	i := big.NewInt(2)
	isq := new(big.Int)
	for i.Cmp(limit) <= 0 {
		isq.Mul(i, i)
		if isq.Cmp(rem) > 0 {
			break
		}
		for {
			q, m := new(big.Int).QuoRem(rem, isq, new(big.Int))
			if m.Sign() != 0 {
				break
			}
			rem = q
			sq.Mul(sq, i)
		}
		i.Add(i, big.NewInt(1))
	}
	return sq, rem
}
