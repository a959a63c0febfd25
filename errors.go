package affine

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is returned when Mean is called with no points.
	ErrNoPoints = errors.New("mean of zero points is undefined")

	// ErrSpanTooSmall is returned when decoding a subspace with fewer than
	// two points.
	ErrSpanTooSmall = errors.New("a span needs at least two points")
)

// Op identifies an arithmetic operation that the affine discipline rejects.
type Op int

const (
	// OpAddPoints is the sum of two points.
	OpAddPoints Op = iota
	// OpScalePoint is the product of a point and a scalar, in either order.
	OpScalePoint
	// OpNegatePoint is the unary negation of a point.
	OpNegatePoint
	// OpVectorMinusPoint is the subtraction of a point from a vector.
	OpVectorMinusPoint
)

func (o Op) String() string {
	switch o {
	case OpAddPoints:
		return "point + point"
	case OpScalePoint:
		return "point * scalar"
	case OpNegatePoint:
		return "-point"
	case OpVectorMinusPoint:
		return "vector - point"
	default:
		return fmt.Sprintf("Unknown(%d)", int(o))
	}
}

// OpError indicates an arithmetic operation that has no origin-independent
// meaning. Each rejected operation carries a fixed, distinct message.
type OpError struct {
	Op Op
}

func (e *OpError) Error() string {
	switch e.Op {
	case OpAddPoints:
		return "cannot add affine points; add a displacement vector instead"
	case OpScalePoint:
		return "cannot scale affine points; scaling is relative to the origin"
	case OpNegatePoint:
		return "the additive inverse of an affine point is not defined"
	case OpVectorMinusPoint:
		return "cannot subtract an affine point from a vector"
	default:
		return fmt.Sprintf("invalid affine operation: %s", e.Op)
	}
}

// BoundsError indicates an indexed access outside [0, Len).
type BoundsError struct {
	Index int
	Len   int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("index %d out of range [0, %d)", e.Index, e.Len)
}

// DimensionMismatchError indicates a dimensionality disagreement between two
// values that an operation requires to match.
type DimensionMismatchError struct {
	Expected int
	Actual   int
}

func (e *DimensionMismatchError) Error() string {
	return fmt.Sprintf("dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// WeightCountError indicates a combination query with a number of weights
// other than the two accepted counts.
type WeightCountError struct {
	Need    int
	NeedAlt int
	Got     int
}

func (e *WeightCountError) Error() string {
	return fmt.Sprintf("wrong number of weights: need %d or %d, got %d", e.Need, e.NeedAlt, e.Got)
}

// WeightSumError indicates a full weight set whose sum is not approximately 1.
type WeightSumError struct {
	Sum float64
}

func (e *WeightSumError) Error() string {
	return fmt.Sprintf("affine combination weights sum to %g, want 1", e.Sum)
}
