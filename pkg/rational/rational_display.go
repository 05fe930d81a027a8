package rational

import (
	"math"
	"math/big"
	"strings"
)

// fractionSlash is U+2044 FRACTION SLASH, used by ToDisplayString when
// unicodeFraction is requested.
const fractionSlash = "⁄"

// String returns "num/den", "num" when den == 1, or "Null".
func (r *BoundedRational) String() string {
	if r.IsNull() {
		return "Null"
	}
	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}
	return r.num.String() + "/" + r.den.String()
}

// ToDisplayString renders r for a calculator-style display: a plain
// integer when den == 1, a mixed number ("k n/d") when mixed is
// requested and |r| is an improper fraction, and otherwise "n/d" — using
// the fraction-slash code point instead of "/" when unicodeFraction is
// set. Returns "Null" for a null receiver.
func (r *BoundedRational) ToDisplayString(unicodeFraction, mixed bool) string {
	if r.IsNull() {
		return "Null"
	}

	slash := "/"
	if unicodeFraction {
		slash = fractionSlash
	}

	if r.den.Cmp(big.NewInt(1)) == 0 {
		return r.num.String()
	}

	if mixed {
		whole := new(big.Int).Quo(r.num, r.den)
		remainder := new(big.Int).Rem(r.num, r.den)
		remainder.Abs(remainder)
		if whole.Sign() == 0 {
			sign := ""
			if r.num.Sign() < 0 {
				sign = "-"
			}
			return sign + remainder.String() + slash + r.den.String()
		}
		return whole.String() + " " + remainder.String() + slash + r.den.String()
	}

	return r.num.String() + slash + r.den.String()
}

// DigitsRequired returns the minimum number of decimal digits after the
// point needed for an exact, finite decimal expansion of r, or
// math.MaxInt32 if the expansion is infinite (den, after removing all
// factors of 2 and 5, is not 1).
func (r *BoundedRational) DigitsRequired() int {
	if r.IsNull() || r.num.Sign() == 0 {
		return 0
	}

	den := new(big.Int).Quo(r.den, new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.num), r.den))
	two := big.NewInt(2)
	five := big.NewInt(5)

	e2 := 0
	for {
		q, m := new(big.Int).QuoRem(den, two, new(big.Int))
		if m.Sign() != 0 {
			break
		}
		den = q
		e2++
	}

	e5 := 0
	for {
		q, m := new(big.Int).QuoRem(den, five, new(big.Int))
		if m.Sign() != 0 {
			break
		}
		den = q
		e5++
	}

	if den.Cmp(big.NewInt(1)) != 0 {
		return math.MaxInt32
	}
	if e2 > e5 {
		return e2
	}
	return e5
}

// ToStringTruncated returns the fixed-point decimal representation of r
// truncated toward zero at n digits after the point, zero-padded to n
// digits, with a leading "-" for negative values. Returns "Null" for a
// null receiver.
func (r *BoundedRational) ToStringTruncated(n int) string {
	if r.IsNull() {
		return "Null"
	}

	neg := r.num.Sign() < 0
	absNum := new(big.Int).Abs(r.num)

	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	scaled := new(big.Int).Mul(absNum, scale)
	truncated := new(big.Int).Quo(scaled, r.den)

	digits := truncated.String()
	if len(digits) <= n {
		digits = strings.Repeat("0", n+1-len(digits)) + digits
	}

	var out string
	if n == 0 {
		out = digits
	} else {
		out = digits[:len(digits)-n] + "." + digits[len(digits)-n:]
	}
	if neg {
		out = "-" + out
	}
	return out
}
