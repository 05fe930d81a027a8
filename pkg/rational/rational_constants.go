package rational

import "sync"

// Zero is the constant 0.
var Zero = sync.OnceValue(func() *BoundedRational {
	return FromInt(0)
})

// One is the constant 1.
var One = sync.OnceValue(func() *BoundedRational {
	return FromInt(1)
})

// Two is the constant 2.
var Two = sync.OnceValue(func() *BoundedRational {
	return FromInt(2)
})

// Half is the constant 1/2.
var Half = sync.OnceValue(func() *BoundedRational {
	r, _ := NewInt64(1, 2)
	return r
})

// MinusOne is the constant -1.
var MinusOne = sync.OnceValue(func() *BoundedRational {
	return FromInt(-1)
})

// Ten is the constant 10.
var Ten = sync.OnceValue(func() *BoundedRational {
	return FromInt(10)
})
