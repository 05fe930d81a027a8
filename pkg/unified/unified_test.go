package unified

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochrefield/exactreal/pkg/rational"
)

func assertEqualAtPrecision(t *testing.T, expected, actual *Real, precision int) {
	t.Helper()
	v, err := expected.CompareToPrecision(actual, precision)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func rat(num, den int64) *Real {
	br, err := rational.NewInt64(num, den)
	if err != nil {
		panic(err)
	}
	return New(br)
}

type addTest struct {
	name     string
	a, b     *Real
	expected *Real
}

var addTests = []addTest{
	{"zero identity: 0 + x = x", Zero(), Half(), Half()},
	{"zero identity: x + 0 = x", Half(), Zero(), Half()},
	{"same factor: pi/2 + pi/4 = 3pi/4", New(rational.Half()).Multiply(Pi()), rat(1, 4).Multiply(Pi()), rat(3, 4).Multiply(Pi())},
	{"different denominators: 1/2 + 1/4 = 3/4", Half(), rat(1, 4), rat(3, 4)},
	{"negative values: 1/2 + (-1) = -1/2", Half(), MinusOne(), rat(-1, 2)},
}

func TestAdd(t *testing.T) {
	for _, test := range addTests {
		t.Run(test.name, func(t *testing.T) {
			result := test.a.Add(test.b)
			assertEqualAtPrecision(t, test.expected, result, -100)
		})
	}
}

type subtractTest struct {
	name     string
	a, b     *Real
	expected *Real
}

var subtractTests = []subtractTest{
	{"self subtraction: x - x = 0", Half(), Half(), Zero()},
	{"basic subtraction: 3/4 - 1/4 = 1/2", rat(3, 4), rat(1, 4), Half()},
	{"subtracting negative: 1/2 - (-1) = 3/2", Half(), MinusOne(), rat(3, 2)},
}

func TestSubtract(t *testing.T) {
	for _, test := range subtractTests {
		t.Run(test.name, func(t *testing.T) {
			result := test.a.Subtract(test.b)
			assertEqualAtPrecision(t, test.expected, result, -100)
		})
	}
}

type multiplyTest struct {
	name     string
	a, b     *Real
	expected *Real
}

var multiplyTests = []multiplyTest{
	{"identity: One * x = x", One(), Half(), Half()},
	{"zero: Zero * x = Zero", Zero(), Half(), Zero()},
	{"Half * Half = 1/4", Half(), Half(), rat(1, 4)},
	{"negative * negative = positive", MinusOne(), MinusOne(), One()},
	{"Two * Half = One", Two(), Half(), One()},
}

func TestMultiply(t *testing.T) {
	for _, test := range multiplyTests {
		t.Run(test.name, func(t *testing.T) {
			result := test.a.Multiply(test.b)
			assertEqualAtPrecision(t, test.expected, result, -100)
		})
	}

	t.Run("sqrt(2)*sqrt(2) = 2 exactly via normal form", func(t *testing.T) {
		sqrt2, err := Two().Sqrt()
		require.NoError(t, err)
		result := sqrt2.Multiply(sqrt2)
		assert.Equal(t, KindOne, result.kind)
		assertEqualAtPrecision(t, Two(), result, -100)
	})
}

func TestDivide(t *testing.T) {
	result, err := Pi().Divide(Two())
	require.NoError(t, err)
	expected := New(rational.Half()).Multiply(Pi())
	assertEqualAtPrecision(t, expected, result, -100)

	_, err = One().Divide(Zero())
	assert.Error(t, err)
}

func TestNegate(t *testing.T) {
	assertEqualAtPrecision(t, MinusOne(), One().Negate(), -100)
	assertEqualAtPrecision(t, One(), MinusOne().Negate(), -100)
	assertEqualAtPrecision(t, Zero(), Zero().Negate(), -100)
}

func TestInverse(t *testing.T) {
	result, err := Half().Inverse()
	require.NoError(t, err)
	assertEqualAtPrecision(t, Two(), result, -100)

	_, err = Zero().Inverse()
	assert.Error(t, err)
}

func TestIsZero(t *testing.T) {
	assert.True(t, Zero().IsZero())
	assert.False(t, One().IsZero())
	assert.False(t, Pi().IsZero())
}

func TestSqrtNegativeRaises(t *testing.T) {
	_, err := MinusOne().Sqrt()
	assert.Error(t, err)
}

func TestLnDomainErrors(t *testing.T) {
	_, err := Zero().Ln()
	assert.Error(t, err)

	_, err = MinusOne().Ln()
	assert.Error(t, err)
}

func TestPowIntegerAndHalfInteger(t *testing.T) {
	eighth, err := Two().Pow(New(rational.FromInt(-3)))
	require.NoError(t, err)
	assertEqualAtPrecision(t, rat(1, 8), eighth, -50)

	sqrtFour, err := New(rational.FromInt(4)).Pow(Half())
	require.NoError(t, err)
	assertEqualAtPrecision(t, Two(), sqrtFour, -50)
}

func TestIsComparable(t *testing.T) {
	assert.True(t, One().IsComparable(Half()))
	assert.True(t, Pi().IsComparable(Pi()))

	sqrt2, err := Two().Sqrt()
	require.NoError(t, err)
	sqrt3, err := New(rational.FromInt(3)).Sqrt()
	require.NoError(t, err)
	assert.True(t, sqrt2.IsComparable(sqrt3))
}

func TestCompareTo(t *testing.T) {
	v, err := One().CompareTo(Half())
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = Half().CompareTo(One())
	require.NoError(t, err)
	assert.Equal(t, -1, v)

	v, err = Half().CompareTo(Half())
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestPropertyCorrect(t *testing.T) {
	ok, err := Pi().Multiply(Half()).PropertyCorrect(-50)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestSinCosOfPiMultiples(t *testing.T) {
	// sin(pi) should compare as zero to a generous precision.
	v, err := Pi().Sin().CompareToPrecision(Zero(), -50)
	require.NoError(t, err)
	assert.Equal(t, 0, v)

	// cos(pi) == -1.
	assertEqualAtPrecision(t, MinusOne(), Pi().Cos(), -50)
}

func TestToDisplayString(t *testing.T) {
	s, err := Zero().ToDisplayString(DefaultDisplayOptions())
	require.NoError(t, err)
	assert.Equal(t, "0", s)

	s, err = Pi().ToDisplayString(DefaultDisplayOptions())
	require.NoError(t, err)
	assert.Equal(t, "π", s)

	s, err = rat(1, 2).ToDisplayString(DefaultDisplayOptions())
	require.NoError(t, err)
	assert.NotEmpty(t, s)
}

func TestFloorCeilRound(t *testing.T) {
	threeHalves := rat(3, 2)
	f, err := threeHalves.Floor()
	require.NoError(t, err)
	assertEqualAtPrecision(t, One(), f, -10)

	c, err := threeHalves.Ceil()
	require.NoError(t, err)
	assertEqualAtPrecision(t, Two(), c, -10)

	r, err := threeHalves.Round()
	require.NoError(t, err)
	assertEqualAtPrecision(t, Two(), r, -10)
}

func TestGcd(t *testing.T) {
	g, err := New(rational.FromInt(12)).Gcd(New(rational.FromInt(18)))
	require.NoError(t, err)
	assertEqualAtPrecision(t, New(rational.FromInt(6)), g, -10)
}
