package constructive

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertEqualAtPrecision(t *testing.T, a, b Real, precision int) {
	t.Helper()
	result, err := PreciseCmp(a, b, precision)
	require.NoError(t, err)
	assert.Equal(t, 0, result)
}

func TestSignum(t *testing.T) {
	tests := []struct {
		input    Real
		expected int
	}{
		{FromInt64(-100), -1},
		{FromInt64(-1), -1},
		{FromInt64(1), 1},
		{FromInt64(100), 1},
	}
	for _, test := range tests {
		assert.Equal(t, test.expected, Sign(test.input))
	}
}

func TestApproximate(t *testing.T) {
	one := FromInt64(1)
	expecteds := map[int]*big.Int{
		-3: big.NewInt(8),
		-2: big.NewInt(4),
		-1: big.NewInt(2),
		0:  big.NewInt(1),
		1:  big.NewInt(1),
	}
	for precision, expected := range expecteds {
		result, err := Approximate(one, precision)
		require.NoError(t, err)
		assert.Equal(t, 0, result.Cmp(expected))
	}
}

func TestCmp(t *testing.T) {
	assert.Equal(t, -1, Cmp(FromInt64(1), FromInt64(2)))
	assert.Equal(t, 1, Cmp(FromInt64(2), FromInt64(1)))
}

func TestPreciseCmpIdentities(t *testing.T) {
	// 1 << 10 = 1024, 1 >> 10 = 1/1024.
	assertEqualAtPrecision(t, FromInt(1024), ShiftLeft(FromInt(1), 10), -100)
	assertEqualAtPrecision(t, Inverse(FromInt(1024)), ShiftRight(FromInt(1), 10), -100)

	// 1/phi = phi - 1.
	phi := Phi()
	assertEqualAtPrecision(t, Inverse(phi), Subtract(phi, FromInt(1)), -100)

	// e^1 = e, e^0 = 1, e^-1 = 1/e.
	assertEqualAtPrecision(t, E(), Exp(FromInt(1)), -100)
	assertEqualAtPrecision(t, FromInt(1), Exp(FromInt(0)), -100)
	assertEqualAtPrecision(t, Inverse(E()), Exp(Negate(FromInt(1))), -100)

	// ln(2) = log_e(2).
	assertEqualAtPrecision(t, Ln2(), Ln(FromInt(2)), -70)

	// cos(0) = 1, cos(pi/3) = 1/2, cos(pi/2) = 0, cos(pi) = -1, cos(2pi) = 1.
	assertEqualAtPrecision(t, FromInt(1), Cosine(FromInt(0)), -100)
	assertEqualAtPrecision(t, FromRat(1, 2), Cosine(Divide(Pi(), FromInt(3))), -100)
	assertEqualAtPrecision(t, Zero(), Cosine(Divide(Pi(), FromInt(2))), -100)
	assertEqualAtPrecision(t, FromInt(-1), Cosine(Pi()), -100)
	assertEqualAtPrecision(t, FromInt(1), Cosine(Multiply(FromInt(2), Pi())), -100)

	// sin(0) = 0, sin(pi/2) = 1, sin(pi) = 0.
	assertEqualAtPrecision(t, Zero(), Sine(FromInt(0)), -100)
	assertEqualAtPrecision(t, FromInt(1), Sine(Divide(Pi(), FromInt(2))), -100)
	assertEqualAtPrecision(t, Zero(), Sine(Pi()), -100)

	// tan(0) = 0, tan(pi/4) = 1.
	assertEqualAtPrecision(t, Zero(), Tangent(FromInt(0)), -100)
	assertEqualAtPrecision(t, FromInt(1), Tangent(Divide(Pi(), FromInt(4))), -100)

	// atan(1) = pi/4.
	assertEqualAtPrecision(t, Divide(Pi(), FromInt(4)), Arctangent(FromInt(1)), -100)

	// 47/17 = [2; 1, 3, 4], built from every slice-constructor shape.
	expected := Divide(FromInt(47), FromInt(17))
	assertEqualAtPrecision(t, expected, ContinuedFraction64([]int64{2, 1, 3, 4}), -100)
	assertEqualAtPrecision(t, expected, ContinuedFraction(FromInt64Slice([]int64{2, 1, 3, 4})), -200)
	assertEqualAtPrecision(t, expected, ContinuedFraction(FromIntSlice([]int{2, 1, 3, 4})), -200)
	assertEqualAtPrecision(t, expected, ContinuedFraction(FromFloat32Slice([]float32{2, 1, 3, 4})), -200)
	assertEqualAtPrecision(t, expected, ContinuedFraction(FromFloat64Slice([]float64{2, 1, 3, 4})), -200)
	assertEqualAtPrecision(t, expected, ContinuedFraction(FromBigIntSlice([]*big.Int{big.NewInt(2), big.NewInt(1), big.NewInt(3), big.NewInt(4)})), -200)
}

func TestToStringRoundTrip(t *testing.T) {
	ten := FromInt(10)
	s, err := ToString(ten, 5)
	require.NoError(t, err)
	assert.Equal(t, "10.00000", s)

	s, err = ToString(Negate(ten), 5)
	require.NoError(t, err)
	assert.Equal(t, "-10.00000", s)

	s, err = ToString(Multiply(FromInt(3), FromInt(2)), 5)
	require.NoError(t, err)
	assert.Equal(t, "6.00000", s)
}

func TestIdentify(t *testing.T) {
	v, ok := Identify(FromBigInt(big.NewInt(42)))
	require.True(t, ok)
	assert.Equal(t, 0, v.Cmp(big.NewInt(42)))

	v, ok = Identify(Negate(FromBigInt(big.NewInt(42))))
	require.True(t, ok)
	assert.Equal(t, 0, v.Cmp(big.NewInt(-42)))

	_, ok = Identify(Sqrt(FromInt(2)))
	assert.False(t, ok)
}
