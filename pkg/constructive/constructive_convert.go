package constructive

import (
	"math"
	"math/big"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ochrefield/exactreal"
)

var convertValidate = validator.New()

// stringSpec carries the arguments of FromString through struct-tag
// validation before any parsing is attempted.
type stringSpec struct {
	Radix int `validate:"min=2,max=16"`
}

// FromString parses s as a signed decimal-or-radix number: an optional
// sign, an integer part, and an optional "." followed by a fractional
// part, in the given radix. An empty string is zero. radix < 2 or > 16,
// or a string containing a digit outside the radix, raises a
// exactreal.FormatError.
func FromString(s string, radix int) (Real, error) {
	if err := convertValidate.Struct(&stringSpec{Radix: radix}); err != nil {
		return nil, exactreal.NewFormatError("FromString", "radix out of range [2, 16]")
	}

	s = strings.TrimSpace(s)
	if s == "" {
		return Zero(), nil
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}
	if s == "" {
		return nil, exactreal.NewFormatError("FromString", "missing digits")
	}

	intPart := s
	fracPart := ""
	if idx := strings.IndexByte(s, '.'); idx >= 0 {
		intPart = s[:idx]
		fracPart = s[idx+1:]
	}
	if intPart == "" {
		intPart = "0"
	}

	whole, ok := new(big.Int).SetString(intPart, radix)
	if !ok {
		return nil, exactreal.NewFormatError("FromString", "invalid digit in integer part")
	}

	r := FromBigInt(whole)
	if fracPart != "" {
		fracInt, ok := new(big.Int).SetString(fracPart, radix)
		if !ok {
			return nil, exactreal.NewFormatError("FromString", "invalid digit in fractional part")
		}
		scaleBy := new(big.Int).Exp(big.NewInt(int64(radix)), big.NewInt(int64(len(fracPart))), nil)
		r = Add(r, Divide(FromBigInt(fracInt), FromBigInt(scaleBy)))
	}
	if neg {
		r = Negate(r)
	}
	return r, nil
}

// ToString returns c's decimal expansion with exactly n digits after the
// point, rounded to nearest at the last digit: approximations are refined
// until both ends of the error bracket round to the same value. A value
// exactly halfway between two n-digit values never brackets, so no
// tie-breaking rule (such as round-to-even) is applied. No trailing "."
// is produced when n is 0.
func ToString(c Real, n int) (string, error) {
	if n < 0 {
		return "", exactreal.NewFormatError("ToString", "negative digit count")
	}

	scaleFactor := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	scaled := Multiply(c, FromBigInt(scaleFactor))
	p := -4
	var appr *big.Int
	for {
		a, err := Approximate(scaled, p)
		if err != nil {
			return "", err
		}
		lo := scale(bigSub(a, big.NewInt(1)), p)
		hi := scale(bigAdd(a, big.NewInt(1)), p)
		if lo.Cmp(hi) == 0 {
			appr = lo
			break
		}
		if !IsPrecisionValid(p * 2) {
			appr = scale(a, p)
			break
		}
		p *= 2
	}

	neg := appr.Sign() < 0
	digits := new(big.Int).Abs(appr).String()
	if n > 0 {
		for len(digits) <= n {
			digits = "0" + digits
		}
		intPart := digits[:len(digits)-n]
		fracPart := digits[len(digits)-n:]
		out := intPart + "." + fracPart
		if neg {
			out = "-" + out
		}
		return out, nil
	}

	if neg && digits != "0" {
		digits = "-" + digits
	}
	return digits, nil
}

// ToStringFloatRep returns (mantissaDigits, exponent, radix) such that
// the true value is approximately mantissaDigits * radix^exponent, with
// at least digits significant mantissa digits and at least minPrecision
// bits of approximation behind them.
func ToStringFloatRep(c Real, digits, radix, minPrecision int) (mantissa *big.Int, exponent int, err error) {
	if digits <= 0 {
		return nil, 0, exactreal.NewFormatError("ToStringFloatRep", "digits must be positive")
	}

	msdApprox, merr := msd(c, minPrecision)
	if merr != nil {
		return nil, 0, merr
	}

	bitsPerDigit := math.Log2(float64(radix))
	wantBits := int(math.Ceil(float64(digits)*bitsPerDigit)) + 4
	p := msdApprox - wantBits
	if p < minPrecision {
		p = minPrecision
	}

	a, err := Approximate(c, -p)
	if err != nil {
		return nil, 0, err
	}
	return a, p, nil
}

const (
	maxInt32 = math.MaxInt32
	minInt32 = math.MinInt32
)

// IntValue returns the exact integer value of c, if c is known to be an
// integer within int32 range; an overflow raises exactreal.OverflowError.
func IntValue(c Real) (int, error) {
	v, err := Approximate(c, 0)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() || v.Int64() > maxInt32 || v.Int64() < minInt32 {
		return 0, exactreal.NewOverflowError("IntValue")
	}
	return int(v.Int64()), nil
}

// LongValue returns the exact integer value of c as an int64; an
// overflow raises exactreal.OverflowError.
func LongValue(c Real) (int64, error) {
	v, err := Approximate(c, 0)
	if err != nil {
		return 0, err
	}
	if !v.IsInt64() {
		return 0, exactreal.NewOverflowError("LongValue")
	}
	return v.Int64(), nil
}

// DoubleValue returns the closest float64 to c. If c itself cannot be
// approximated at all (for example, the inverse of a value that is
// exactly zero), the error propagates rather than being mistaken for a
// zero result; only once c approximates cleanly but never resolves a
// nonzero magnitude is it treated as exactly zero.
func DoubleValue(c Real) (float64, error) {
	if _, err := Approximate(c, -2); err != nil {
		return 0, err
	}

	msdApprox, err := msd(c, -2)
	if err != nil {
		if err == exactreal.PrecisionOverflow {
			return 0, nil
		}
		return 0, err
	}

	p := msdApprox - 60
	a, err := Approximate(c, p)
	if err != nil {
		return 0, err
	}
	f := new(big.Float).SetInt(a)
	scaleExp := big.NewFloat(math.Pow(2, float64(p)))
	f.Mul(f, scaleExp)
	out, _ := f.Float64()
	return out, nil
}

// FloatValue returns the closest float32 to c.
func FloatValue(c Real) (float32, error) {
	d, err := DoubleValue(c)
	if err != nil {
		return 0, err
	}
	return float32(d), nil
}

// ByteValue returns the exact integer value of c as a byte; out of
// [0, 255] raises exactreal.OverflowError.
func ByteValue(c Real) (byte, error) {
	v, err := IntValue(c)
	if err != nil {
		return 0, err
	}
	if v < 0 || v > 255 {
		return 0, exactreal.NewOverflowError("ByteValue")
	}
	return byte(v), nil
}
