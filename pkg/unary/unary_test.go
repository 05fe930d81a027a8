package unary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ochrefield/exactreal/pkg/constructive"
)

func TestExecute(t *testing.T) {
	five := constructive.FromInt(5)

	assertEqualAtPrecision(t, five, Identity.Execute(five), -50)
	assertEqualAtPrecision(t, constructive.FromInt(-5), Negate.Execute(five), -50)
	assertEqualAtPrecision(t, constructive.FromRat(1, 5), Inverse.Execute(five), -50)
	assertEqualAtPrecision(t, five, Abs.Execute(constructive.FromInt(-5)), -50)
}

func TestCompose(t *testing.T) {
	five := constructive.FromInt(5)
	composed := Negate.Compose(Abs)
	assertEqualAtPrecision(t, constructive.FromInt(-5), composed.Execute(five), -50)
}

func TestSinCosIdentity(t *testing.T) {
	x := constructive.FromRat(1, 3)
	sinSq := constructive.Square(Sin.Execute(x))
	cosSq := constructive.Square(Cos.Execute(x))
	sum := constructive.Add(sinSq, cosSq)
	assertEqualAtPrecision(t, constructive.One(), sum, -40)
}

func TestExpLnRoundTrip(t *testing.T) {
	x := constructive.FromInt(2)
	rt := Ln.Execute(Exp.Execute(x))
	assertEqualAtPrecision(t, x, rt, -40)
}

func TestMonotoneDerivativeOfSquare(t *testing.T) {
	square := newFunction(constructive.Square)
	low := constructive.FromInt(-10)
	high := constructive.FromInt(10)
	deriv := square.MonotoneDerivative(low, high)

	at3 := deriv.Execute(constructive.FromInt(3))
	a, err := constructive.Approximate(at3, -6)
	require.NoError(t, err)
	// d/dx x^2 at x=3 is 6; allow a few ULPs of slack from the
	// difference-quotient approximation.
	assert.InDelta(t, 6.0, float64(a.Int64())/64.0, 0.2)
}

func TestInverseMonotoneOfSquare(t *testing.T) {
	square := newFunction(constructive.Square)
	low := constructive.Zero()
	high := constructive.FromInt(10)
	inv := square.InverseMonotone(low, high)

	root := inv.Execute(constructive.FromInt(9))
	assertEqualAtPrecision(t, constructive.FromInt(3), root, -20)
}

func assertEqualAtPrecision(t *testing.T, expected, actual constructive.Real, p int) {
	t.Helper()
	v, err := constructive.PreciseCmp(expected, actual, p)
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}
