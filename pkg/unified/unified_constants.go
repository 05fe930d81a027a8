package unified

import (
	"sync"

	"github.com/ochrefield/exactreal/pkg/rational"
)

// Zero is the constant 0.
var Zero = sync.OnceValue(func() *Real {
	return New(rational.Zero())
})

// One is the constant 1.
var One = sync.OnceValue(func() *Real {
	return New(rational.One())
})

// MinusOne is the constant -1.
var MinusOne = sync.OnceValue(func() *Real {
	return New(rational.MinusOne())
})

// Two is the constant 2.
var Two = sync.OnceValue(func() *Real {
	return New(rational.Two())
})

// Half is the constant 1/2.
var Half = sync.OnceValue(func() *Real {
	return New(rational.Half())
})

// Pi is the constant pi, in KindPi normal form (br = 1).
var Pi = sync.OnceValue(func() *Real {
	return newNormal(rational.One(), KindPi, nil)
})

// E is the constant e, in KindExp normal form (e^1).
var E = sync.OnceValue(func() *Real {
	return newNormal(rational.One(), KindExp, rational.One())
})
