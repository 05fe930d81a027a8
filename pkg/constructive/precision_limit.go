package constructive

import (
	"context"
	"math"
	"math/big"

	"github.com/ochrefield/exactreal"
)

// PrecisionOverflow is re-exported from the shared error taxonomy so
// existing callers that compare against constructive.PrecisionOverflow
// keep working.
var PrecisionOverflow = exactreal.PrecisionOverflow

type precisionLimitKey struct{}

// WithoutPrecisionLimit returns a context with no effort ceiling: every
// precision request is allowed, however deep.
func WithoutPrecisionLimit(parent context.Context) context.Context {
	return context.WithValue(parent, precisionLimitKey{}, math.MaxInt)
}

// WithPrecisionLimit returns a context that bounds approximation work:
// any ApproximateCtx/PreciseCmpCtx call requesting more than limit bits
// of fractional precision raises exactreal.PrecisionOverflow instead of
// computing. This is the cooperative-cancellation knob named in spec.md
// §5 — there is no way to cancel an in-flight computation, only to
// refuse to start one that would need more precision than the caller is
// willing to pay for.
func WithPrecisionLimit(parent context.Context, limit int) context.Context {
	if limit < 0 {
		limit = -limit
	}
	return context.WithValue(parent, precisionLimitKey{}, limit)
}

// PrecisionLimit returns the ceiling set by WithPrecisionLimit, if any.
func PrecisionLimit(ctx context.Context) (int, bool) {
	limit, ok := ctx.Value(precisionLimitKey{}).(int)
	return limit, ok
}

// CheckPrecisionOverflow reports whether requesting precision p under
// ctx's configured ceiling would exceed it. More negative p means more
// fractional bits of work, so the check is on -p, not p.
func CheckPrecisionOverflow(ctx context.Context, p int) error {
	if limit, ok := PrecisionLimit(ctx); ok && limit >= 0 {
		if -p > limit {
			return exactreal.PrecisionOverflow
		}
	}
	return nil
}

// ApproximateCtx is Approximate, but refuses to compute (returning
// exactreal.PrecisionOverflow) once ctx's configured precision ceiling
// would be exceeded.
func ApproximateCtx(ctx context.Context, c Real, p int) (*big.Int, error) {
	if err := CheckPrecisionOverflow(ctx, p); err != nil {
		return nil, err
	}
	return Approximate(c, p)
}

// PreciseCmpCtx is PreciseCmp, bounded by ctx's configured precision
// ceiling.
func PreciseCmpCtx(ctx context.Context, a, b Real, p int) (int, error) {
	if err := CheckPrecisionOverflow(ctx, p); err != nil {
		return 0, err
	}
	return PreciseCmp(a, b, p)
}
