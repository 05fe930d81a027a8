// Package unary implements UnaryCRFunction: composable, polymorphic
// unary functions over constructive.Real, built entirely from the
// already-lazy CR combinators so a Function is itself just another CR
// construction and inherits its memoization for free.
package unary

import (
	"fmt"
	"math/big"

	"github.com/ochrefield/exactreal"
	"github.com/ochrefield/exactreal/pkg/constructive"
)

// Function is a composable unary function over constructive reals.
type Function interface {
	Execute(x constructive.Real) constructive.Real

	// Compose returns x -> f(g(x)), where f is the receiver and g is
	// the argument: f.Compose(g).Execute(x) == f.Execute(g.Execute(x)).
	Compose(inner Function) Function

	// MonotoneDerivative returns f', assuming f is monotone and
	// differentiable on [low, high], computed as a limit of symmetric
	// difference quotients with precision doubling.
	MonotoneDerivative(low, high constructive.Real) Function

	// InverseMonotone returns f^-1 on f([low, high]), by bisection on
	// the input range combined with comparing f(mid) to the target at
	// increasing precision. An argument found to lie outside
	// f([low, high]), or a bracket that bisection cannot narrow within
	// maxBisectionSteps, makes the result raise
	// exactreal.PrecisionOverflow when approximated.
	InverseMonotone(low, high constructive.Real) Function
}

type function struct {
	exec func(x constructive.Real) constructive.Real
}

func newFunction(exec func(constructive.Real) constructive.Real) Function {
	return &function{exec: exec}
}

func (f *function) Execute(x constructive.Real) constructive.Real {
	return f.exec(x)
}

func (f *function) Compose(inner Function) Function {
	return newFunction(func(x constructive.Real) constructive.Real {
		return f.exec(inner.Execute(x))
	})
}

func (f *function) MonotoneDerivative(low, high constructive.Real) Function {
	outer := f
	return newFunction(func(x constructive.Real) constructive.Real {
		return constructive.FromApproximator(
			fmt.Sprintf("Derivative(%s)", constructive.AsConstruction(x)),
			func(p int) (*big.Int, error) {
				return approximateDerivative(outer, x, low, high, p)
			},
		)
	})
}

func (f *function) InverseMonotone(low, high constructive.Real) Function {
	outer := f
	return newFunction(func(y constructive.Real) constructive.Real {
		return constructive.FromApproximator(
			fmt.Sprintf("Inverse(%s)", constructive.AsConstruction(y)),
			func(p int) (*big.Int, error) {
				return approximateInverse(outer, y, low, high, p)
			},
		)
	})
}

// maxDerivativeSteps and maxBisectionSteps bound the refinement loops
// inside MonotoneDerivative/InverseMonotone so a bad bracket gives up
// with exactreal.PrecisionOverflow instead of looping forever.
const (
	maxDerivativeSteps = 60
	maxBisectionSteps  = 200
)

func approximateDerivative(f Function, x, low, high constructive.Real, p int) (*big.Int, error) {
	var prev *big.Int
	shift := 8
	for i := 0; i < maxDerivativeSteps; i++ {
		h := constructive.ShiftRight(constructive.One(), shift)
		xLow := constructive.Max(low, constructive.Subtract(x, h))
		xHigh := constructive.Min(high, constructive.Add(x, h))
		width := constructive.Subtract(xHigh, xLow)
		quotient := constructive.Divide(constructive.Subtract(f.Execute(xHigh), f.Execute(xLow)), width)

		a, err := constructive.Approximate(quotient, p-2)
		if err != nil {
			return nil, err
		}
		if prev != nil {
			delta := new(big.Int).Sub(a, prev)
			delta.Abs(delta)
			if delta.Cmp(big.NewInt(4)) <= 0 {
				return shiftBig(a, p-2, p), nil
			}
		}
		prev = a
		shift *= 2
	}
	return nil, exactreal.PrecisionOverflow
}

func approximateInverse(f Function, y, low, high constructive.Real, p int) (*big.Int, error) {
	increasing := true
	if c, err := constructive.PreciseCmp(f.Execute(low), f.Execute(high), -10); err == nil && c > 0 {
		increasing = false
	}

	fMin, fMax := f.Execute(low), f.Execute(high)
	if !increasing {
		fMin, fMax = fMax, fMin
	}
	if c, err := constructive.PreciseCmp(y, fMin, p-4); err == nil && c < 0 {
		return nil, exactreal.PrecisionOverflow
	}
	if c, err := constructive.PreciseCmp(y, fMax, p-4); err == nil && c > 0 {
		return nil, exactreal.PrecisionOverflow
	}

	lo, hi := low, high
	for i := 0; i < maxBisectionSteps; i++ {
		mid := constructive.ShiftRight(constructive.Add(lo, hi), 1)
		c, err := constructive.PreciseCmp(f.Execute(mid), y, p-4)
		if err != nil {
			return nil, err
		}
		switch {
		case c == 0:
			return constructive.Approximate(mid, p)
		case (c < 0) == increasing:
			lo = mid
		default:
			hi = mid
		}

		width, err := constructive.Approximate(constructive.Subtract(hi, lo), p-4)
		if err == nil && width.Sign() == 0 {
			return constructive.Approximate(constructive.ShiftRight(constructive.Add(lo, hi), 1), p)
		}
	}
	return nil, exactreal.PrecisionOverflow
}

// shiftBig rescales an approximation taken at precision from to the
// precision to, via the same round-half-up convention CR nodes use.
func shiftBig(a *big.Int, from, to int) *big.Int {
	n := from - to
	if n == 0 {
		return a
	}
	if n > 0 {
		return new(big.Int).Lsh(a, uint(n))
	}
	return new(big.Int).Rsh(new(big.Int).Add(new(big.Int).Rsh(a, uint(-n-1)), big.NewInt(1)), 1)
}

// Identity is x -> x.
var Identity = newFunction(func(x constructive.Real) constructive.Real { return x })

// Negate is x -> -x.
var Negate = newFunction(constructive.Negate)

// Inverse is x -> 1/x.
var Inverse = newFunction(constructive.Inverse)

// Abs is x -> |x|.
var Abs = newFunction(constructive.Abs)

// Sin is x -> sin(x).
var Sin = newFunction(constructive.Sine)

// Cos is x -> cos(x).
var Cos = newFunction(constructive.Cosine)

// Tan is x -> tan(x).
var Tan = newFunction(constructive.Tangent)

// Atan is x -> atan(x).
var Atan = newFunction(constructive.Arctangent)

// Exp is x -> e^x.
var Exp = newFunction(constructive.Exp)

// Ln is x -> ln(x); a nonpositive argument raises a DomainError.
var Ln = newFunction(constructive.Ln)

// Sqrt is x -> sqrt(x); a negative argument raises a DomainError.
var Sqrt = newFunction(constructive.Sqrt)

// Asin is x -> asin(x) for |x| < 1, via atan(x / sqrt(1 - x^2)).
var Asin = newFunction(func(x constructive.Real) constructive.Real {
	return constructive.Arctangent(constructive.Divide(x, constructive.Sqrt(constructive.Subtract(constructive.One(), constructive.Square(x)))))
})

// Acos is x -> acos(x), via pi/2 - asin(x).
var Acos = newFunction(func(x constructive.Real) constructive.Real {
	return constructive.Subtract(constructive.Divide(constructive.Pi(), constructive.Two()), Asin.Execute(x))
})
