package constructive

import "math/big"

// FromBigIntSlice creates a slice of Real numbers from a slice of
// big.Int.
func FromBigIntSlice(ints []*big.Int) []Real {
	reals := make([]Real, len(ints))
	for idx, val := range ints {
		reals[idx] = FromBigInt(val)
	}
	return reals
}

// FromInt64Slice creates a slice of Real numbers from a slice of int64.
func FromInt64Slice(ints []int64) []Real {
	reals := make([]Real, len(ints))
	for idx, val := range ints {
		reals[idx] = FromInt64(val)
	}
	return reals
}

// FromIntSlice creates a slice of Real numbers from a slice of int.
func FromIntSlice(ints []int) []Real {
	reals := make([]Real, len(ints))
	for idx, val := range ints {
		reals[idx] = FromInt(val)
	}
	return reals
}

// FromFloat32Slice creates a slice of Real numbers from a slice of
// float32.
func FromFloat32Slice(floats []float32) []Real {
	reals := make([]Real, len(floats))
	for idx, val := range floats {
		reals[idx] = FromFloat32(val)
	}
	return reals
}

// FromFloat64Slice creates a slice of Real numbers from a slice of
// float64.
func FromFloat64Slice(floats []float64) []Real {
	reals := make([]Real, len(floats))
	for idx, val := range floats {
		reals[idx] = FromFloat64(val)
	}
	return reals
}
