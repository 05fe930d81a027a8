package rational

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	assertEqual(t, Zero(), Zero())
	assertEqual(t, One(), One())

	a, err := NewInt64(3, 4)
	require.NoError(t, err)
	b, err := NewInt64(3, 4)
	require.NoError(t, err)
	assertEqual(t, a, b)

	_, err = NewInt64(1, 0)
	assert.Error(t, err)
}

func TestArithmetic(t *testing.T) {
	half, _ := NewInt64(1, 2)
	third, _ := NewInt64(1, 3)
	fiveSixths, _ := NewInt64(5, 6)
	threeHalves, _ := NewInt64(3, 2)

	assertEqual(t, fiveSixths, Add(half, third))

	div, err := Divide(half, third)
	require.NoError(t, err)
	assertEqual(t, threeHalves, div)

	assertEqual(t, One(), Add(Zero(), One()))
	assertEqual(t, Zero(), Subtract(One(), One()))
}

func TestInverseDivideByZero(t *testing.T) {
	_, err := Inverse(Zero())
	assert.Error(t, err)

	_, err = Divide(One(), Zero())
	assert.Error(t, err)

	// Null propagates silently, with no error.
	got, err := Inverse(Null())
	require.NoError(t, err)
	assert.True(t, got.IsNull())
}

func TestNullPropagation(t *testing.T) {
	assert.True(t, Add(Null(), One()).IsNull())
	assert.True(t, Multiply(One(), Null()).IsNull())
	assert.True(t, Negate(Null()).IsNull())

	_, err := Null().Sign()
	assert.Error(t, err)

	_, ok := Null().ToBigInteger()
	assert.False(t, ok)
}

func TestNullification(t *testing.T) {
	huge := new(big.Int).Lsh(big.NewInt(1), MaxSize+100)
	one := big.NewInt(1)
	r, err := New(huge, one)
	require.NoError(t, err)
	assert.True(t, r.IsNull())
}

func TestPow(t *testing.T) {
	two := FromInt(2)
	eighth, _ := NewInt64(1, 8)
	r, err := Pow(two, -3)
	require.NoError(t, err)
	assertEqual(t, eighth, r)

	negOne := FromInt(-1)
	r, err = Pow(negOne, 3)
	require.NoError(t, err)
	assertEqual(t, FromInt(-1), r)

	r, err = Pow(FromInt(0), 0)
	require.NoError(t, err)
	assertEqual(t, One(), r)
}

func TestExtractSquareReduced(t *testing.T) {
	v, _ := NewInt64(343, 352)
	a, b, err := v.ExtractSquareReduced()
	require.NoError(t, err)

	wantA, _ := NewInt64(7, 4)
	wantB, _ := NewInt64(7, 22)
	assertEqual(t, wantA, a)
	assertEqual(t, wantB, b)
}

func TestDigitsRequired(t *testing.T) {
	third, _ := NewInt64(1, 3)
	assert.Equal(t, math.MaxInt32, third.DigitsRequired())

	tenth, _ := NewInt64(1, 10)
	assert.Equal(t, 1, tenth.DigitsRequired())
}

func TestToStringTruncated(t *testing.T) {
	v, _ := NewInt64(3, 4)
	assert.Equal(t, "0.750", v.ToStringTruncated(3))
}

func TestConstructive(t *testing.T) {
	pi22over7, _ := NewInt64(22, 7)
	cr, err := pi22over7.Constructive()
	require.NoError(t, err)
	assert.NotNil(t, cr)
}

func assertEqual(t *testing.T, expected, actual *BoundedRational) {
	t.Helper()
	if !expected.Equal(actual) {
		t.Errorf("expected %s, got %s", expected.String(), actual.String())
	}
}
