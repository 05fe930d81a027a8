// Package rational implements BoundedRational, an arbitrary-precision
// rational number that self-nullifies once its representation grows past
// a fixed bit-length budget. Nullification keeps the unified package's
// symbolic simplification from blowing up the size of exact coefficients
// during repeated exact arithmetic; once a BoundedRational goes null, its
// callers fall back to constructive-real approximation.
//
// The null value is not Go's nil: it is an explicit inhabitant of the
// type, following the BoundedRational.java/zerorat convention of a
// dedicated invalid/null state rather than an absent pointer.
package rational

import (
	"math"
	"math/big"

	"github.com/ochrefield/exactreal"
	"github.com/ochrefield/exactreal/pkg/constructive"
)

// MaxSize is the maximum combined bit length (numerator + denominator,
// after reduction) a BoundedRational may carry before it nullifies.
// spec.md requires at least 10,000 bits.
const MaxSize = 10_000

// ExtractSquareMaxLen is the combined bit length above which
// ExtractSquareWillSucceed refuses to attempt square extraction. spec.md
// requires at least 5,000 bits.
const ExtractSquareMaxLen = 5_000

// BoundedRational is either null, or a pair (num, den) with den > 0 that
// is not necessarily in lowest terms (see reduce). Values are immutable;
// every operation returns a new value.
type BoundedRational struct {
	isNull bool
	num    *big.Int // nil iff isNull
	den    *big.Int // nil iff isNull; always > 0
}

var nullValue = &BoundedRational{isNull: true}

// Null returns the distinguished null BoundedRational.
func Null() *BoundedRational { return nullValue }

// IsNull reports whether r is the null value.
func (r *BoundedRational) IsNull() bool { return r == nil || r.isNull }

// reduce normalizes num/den (den may be negative or zero) to a positive
// denominator, nullifying if the reduced size exceeds MaxSize. Reduction
// to lowest terms is lazy and opportunistic: the (cheap) GCD
// pass only runs when either operand, or their sum, is already near the
// size budget — mirroring spec.md's "lazy and opportunistic" rule rather
// than reducing unconditionally on every construction.
func reduce(num, den *big.Int) *BoundedRational {
	if den.Sign() == 0 {
		// Callers are responsible for rejecting den == 0 before calling
		// reduce; treat it defensively as null rather than panicking.
		return Null()
	}
	num = new(big.Int).Set(num)
	den = new(big.Int).Set(den)
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	if num.Sign() == 0 {
		return &BoundedRational{num: big.NewInt(0), den: big.NewInt(1)}
	}

	if num.BitLen() > MaxSize/2 || den.BitLen() > MaxSize/2 || num.BitLen()+den.BitLen() > MaxSize {
		g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
		if g.Cmp(big.NewInt(1)) > 0 {
			num.Quo(num, g)
			den.Quo(den, g)
		}
		if num.BitLen()+den.BitLen() > MaxSize {
			return Null()
		}
	}

	return &BoundedRational{num: num, den: den}
}

// New creates a BoundedRational from a numerator and denominator. It
// returns an error if den is zero; den == 0 is a constructor-time domain
// error, distinct from the silent null propagation of arithmetic on an
// already-null operand.
func New(num, den *big.Int) (*BoundedRational, error) {
	if den.Sign() == 0 {
		return nil, exactreal.NewDomainError("New", "zero denominator")
	}
	return reduce(num, den), nil
}

// NewInt64 creates a BoundedRational from an int64 numerator and
// denominator.
func NewInt64(num, den int64) (*BoundedRational, error) {
	return New(big.NewInt(num), big.NewInt(den))
}

// FromInt creates a BoundedRational equal to the integer n.
func FromInt(n int) *BoundedRational {
	return &BoundedRational{num: big.NewInt(int64(n)), den: big.NewInt(1)}
}

// FromInt64 creates a BoundedRational equal to the integer n.
func FromInt64(n int64) *BoundedRational {
	return &BoundedRational{num: big.NewInt(n), den: big.NewInt(1)}
}

// FromBigInt creates a BoundedRational equal to the integer n.
func FromBigInt(n *big.Int) *BoundedRational {
	return &BoundedRational{num: new(big.Int).Set(n), den: big.NewInt(1)}
}

// FromDouble creates a BoundedRational with the exact binary-fraction
// value of f. NaN and +/-Inf raise a DomainError: they have no exact
// rational value.
func FromDouble(f float64) (*BoundedRational, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil, exactreal.NewDomainError("FromDouble", "NaN/Inf has no exact value")
	}
	if f == 0 {
		return FromInt(0), nil
	}

	bits := math.Float64bits(f)
	neg := bits&(1<<63) != 0
	rawExp := int((bits >> 52) & ((1 << 11) - 1))
	mantissa := bits & ((1 << 52) - 1)

	exp := rawExp - 1075
	if rawExp != 0 {
		mantissa |= 1 << 52
	} else {
		mantissa <<= 1
	}

	num := new(big.Int).SetUint64(mantissa)
	den := big.NewInt(1)
	if exp >= 0 {
		num.Lsh(num, uint(exp))
	} else {
		den.Lsh(den, uint(-exp))
	}
	if neg {
		num.Neg(num)
	}
	return reduce(num, den), nil
}

// NumDen returns the reduced numerator and denominator. It returns a
// NullOperationError if r is null.
func (r *BoundedRational) NumDen() (*big.Int, *big.Int, error) {
	if r.IsNull() {
		return nil, nil, exactreal.NewNullOperationError("NumDen")
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(r.num), r.den)
	return new(big.Int).Quo(r.num, g), new(big.Int).Quo(r.den, g), nil
}

// Sign returns sign(num)*sign(den); since den is always normalized
// positive, this is simply sign(num). Returns a NullOperationError on
// null.
func (r *BoundedRational) Sign() (int, error) {
	if r.IsNull() {
		return 0, exactreal.NewNullOperationError("Sign")
	}
	return r.num.Sign(), nil
}

// IsZero reports whether r is the (non-null) value zero.
func (r *BoundedRational) IsZero() bool {
	return !r.IsNull() && r.num.Sign() == 0
}

// Equal reports whether r and other represent the same rational value.
// Two null values are equal; a null and a non-null value are never
// equal.
func (r *BoundedRational) Equal(other *BoundedRational) bool {
	if r.IsNull() || other.IsNull() {
		return r.IsNull() && other.IsNull()
	}
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs) == 0
}

// Cmp compares r and other: -1/0/1 if r </==/> other. Per spec.md's open
// question, CompareTo(null, null) == 0 and CompareTo(null, valid) == -1
// (and by symmetry CompareTo(valid, null) == 1) — null behaves as if it
// were smaller than every value, rather than incomparable.
func (r *BoundedRational) Cmp(other *BoundedRational) int {
	if r.IsNull() && other.IsNull() {
		return 0
	}
	if r.IsNull() {
		return -1
	}
	if other.IsNull() {
		return 1
	}
	lhs := new(big.Int).Mul(r.num, other.den)
	rhs := new(big.Int).Mul(other.num, r.den)
	return lhs.Cmp(rhs)
}

// CompareToOne compares r against the constant one; mirrors the
// open-question behavior of Cmp for a null receiver (returns -1).
func (r *BoundedRational) CompareToOne() int {
	return r.Cmp(One())
}

// Add computes a + b. Null propagates: if either operand is null, the
// result is null.
func Add(a, b *BoundedRational) *BoundedRational {
	if a.IsNull() || b.IsNull() {
		return Null()
	}
	num := new(big.Int).Add(new(big.Int).Mul(a.num, b.den), new(big.Int).Mul(b.num, a.den))
	den := new(big.Int).Mul(a.den, b.den)
	return reduce(num, den)
}

// Subtract computes a - b.
func Subtract(a, b *BoundedRational) *BoundedRational {
	return Add(a, Negate(b))
}

// Multiply computes a * b.
func Multiply(a, b *BoundedRational) *BoundedRational {
	if a.IsNull() || b.IsNull() {
		return Null()
	}
	num := new(big.Int).Mul(a.num, b.num)
	den := new(big.Int).Mul(a.den, b.den)
	return reduce(num, den)
}

// Negate computes -a.
func Negate(a *BoundedRational) *BoundedRational {
	if a.IsNull() {
		return Null()
	}
	return &BoundedRational{num: new(big.Int).Neg(a.num), den: new(big.Int).Set(a.den)}
}

// Inverse computes 1/a. Division by the value zero is a DomainError;
// division by null propagates null.
func Inverse(a *BoundedRational) (*BoundedRational, error) {
	if a.IsNull() {
		return Null(), nil
	}
	if a.num.Sign() == 0 {
		return nil, exactreal.NewDomainError("Inverse", "division by zero")
	}
	return reduce(new(big.Int).Set(a.den), new(big.Int).Set(a.num)), nil
}

// Divide computes a / b = a * (1/b).
func Divide(a, b *BoundedRational) (*BoundedRational, error) {
	if a.IsNull() || b.IsNull() {
		return Null(), nil
	}
	inv, err := Inverse(b)
	if err != nil {
		return nil, exactreal.NewDomainError("Divide", "division by zero")
	}
	return Multiply(a, inv), nil
}

// Floor returns floor(r) as a big.Int. Returns a NullOperationError on
// null.
func (r *BoundedRational) Floor() (*big.Int, error) {
	if r.IsNull() {
		return nil, exactreal.NewNullOperationError("Floor")
	}
	q, m := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	if m.Sign() != 0 && r.num.Sign() < 0 {
		q.Sub(q, big.NewInt(1))
	}
	return q, nil
}

// ToInt32 converts r to an int32. It requires r to be an exact integer
// in range; non-integer values raise a DomainError, out-of-range values
// an OverflowError, and null a NullOperationError.
func (r *BoundedRational) ToInt32() (int32, error) {
	if r.IsNull() {
		return 0, exactreal.NewNullOperationError("ToInt32")
	}
	q, m := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	if m.Sign() != 0 {
		return 0, exactreal.NewDomainError("ToInt32", "non-integer value")
	}
	if !q.IsInt64() {
		return 0, exactreal.NewOverflowError("ToInt32")
	}
	v := q.Int64()
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, exactreal.NewOverflowError("ToInt32")
	}
	return int32(v), nil
}

// ToBigInteger returns (value, true) if r is an exact integer, or
// (nil, false) otherwise — including when r is null, per spec.md §7
// ("ToBigInteger on null returns the absent-value sentinel rather than
// raising").
func (r *BoundedRational) ToBigInteger() (*big.Int, bool) {
	if r.IsNull() {
		return nil, false
	}
	q, m := new(big.Int).QuoRem(r.num, r.den, new(big.Int))
	if m.Sign() != 0 {
		return nil, false
	}
	return q, true
}

// ToDouble converts r to the nearest float64. Returns a
// NullOperationError on null.
func (r *BoundedRational) ToDouble() (float64, error) {
	if r.IsNull() {
		return 0, exactreal.NewNullOperationError("ToDouble")
	}
	f := new(big.Rat).SetFrac(r.num, r.den)
	v, _ := f.Float64()
	return v, nil
}

// ApproxLog2Abs returns an approximation of log2(|r|). For r == 0, it
// returns float64(math.MinInt32) as a sentinel (there is no finite
// log2(0)). Returns a NullOperationError on null.
func (r *BoundedRational) ApproxLog2Abs() (float64, error) {
	if r.IsNull() {
		return 0, exactreal.NewNullOperationError("ApproxLog2Abs")
	}
	if r.num.Sign() == 0 {
		return float64(math.MinInt32), nil
	}
	return float64(bigAbsBitLen(r.num)) - float64(r.den.BitLen()), nil
}

// BitLength returns bitLength(|num|) + bitLength(den) of the stored
// pair, which need not be in lowest terms. Returns a NullOperationError
// on null.
func (r *BoundedRational) BitLength() (int, error) {
	if r.IsNull() {
		return 0, exactreal.NewNullOperationError("BitLength")
	}
	return bigAbsBitLen(r.num) + r.den.BitLen(), nil
}

// WholeNumberBits returns floor(log2(|r|)). Returns a NullOperationError
// on null, and a DomainError for r == 0 (log2(0) is undefined).
func (r *BoundedRational) WholeNumberBits() (int, error) {
	if r.IsNull() {
		return 0, exactreal.NewNullOperationError("WholeNumberBits")
	}
	if r.num.Sign() == 0 {
		return 0, exactreal.NewDomainError("WholeNumberBits", "value is zero")
	}
	absNum := new(big.Int).Abs(r.num)
	k := absNum.BitLen() - r.den.BitLen()
	lhs, rhs := absNum, new(big.Int).Set(r.den)
	if k >= 0 {
		rhs.Lsh(rhs, uint(k))
	} else {
		lhs = new(big.Int).Lsh(absNum, uint(-k))
	}
	if lhs.Cmp(rhs) < 0 {
		k--
	}
	return k, nil
}

func bigAbsBitLen(n *big.Int) int {
	if n.Sign() == 0 {
		return 0
	}
	return new(big.Int).Abs(n).BitLen()
}

// Constructive converts r to a constructive.Real by dividing its exact
// numerator and denominator. Returns a NullOperationError on null.
func (r *BoundedRational) Constructive() (constructive.Real, error) {
	if r.IsNull() {
		return nil, exactreal.NewNullOperationError("ToConstructiveReal")
	}
	return constructive.Divide(constructive.FromBigInt(r.num), constructive.FromBigInt(r.den)), nil
}
