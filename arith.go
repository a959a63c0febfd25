package affine

import (
	"github.com/hupe1980/affine/vector"
)

// Add returns the point displaced forward by v. Displacement is commutative,
// so this is both "point + vector" and "vector + point".
func (p Point[T]) Add(v vector.Vector[T]) (Point[T], error) {
	if v.Len() != p.coords.Len() {
		return Point[T]{}, &DimensionMismatchError{Expected: p.coords.Len(), Actual: v.Len()}
	}

	return Point[T]{coords: p.coords.Add(v)}, nil
}

// Sub returns the point displaced backward by v, i.e. displaced by the
// negation of v under the vector's own additive structure.
func (p Point[T]) Sub(v vector.Vector[T]) (Point[T], error) {
	if v.Len() != p.coords.Len() {
		return Point[T]{}, &DimensionMismatchError{Expected: p.coords.Len(), Actual: v.Len()}
	}

	return Point[T]{coords: p.coords.Add(v.Neg())}, nil
}

// Diff returns the displacement vector from q to p, i.e. "p - q". The result
// is a plain vector with full vector arithmetic, not a point: the difference
// of two points is the only subtraction that is origin-independent.
func (p Point[T]) Diff(q Point[T]) (vector.Vector[T], error) {
	if q.coords.Len() != p.coords.Len() {
		return nil, &DimensionMismatchError{Expected: p.coords.Len(), Actual: q.coords.Len()}
	}

	return p.coords.Sub(q.coords), nil
}

// AddPoints rejects the sum of two points. The sum has no origin-independent
// meaning; it always returns an OpError so that callers porting origin-based
// code get an actionable diagnostic at the call site.
func AddPoints[T vector.Float](_, _ Point[T]) (Point[T], error) {
	return Point[T]{}, &OpError{Op: OpAddPoints}
}

// Scale rejects the product of a point and a scalar, in either operand
// order: scaling presupposes an origin. It always returns an OpError.
func Scale[T vector.Float](_ Point[T], _ T) (Point[T], error) {
	return Point[T]{}, &OpError{Op: OpScalePoint}
}

// Neg rejects the unary negation of a point: negation presupposes an origin.
// It always returns an OpError.
func Neg[T vector.Float](_ Point[T]) (Point[T], error) {
	return Point[T]{}, &OpError{Op: OpNegatePoint}
}

// SubFromVector rejects "vector - point". Only point - point and
// point ± vector are meaningful. It always returns an OpError.
func SubFromVector[T vector.Float](_ vector.Vector[T], _ Point[T]) (vector.Vector[T], error) {
	return nil, &OpError{Op: OpVectorMinusPoint}
}
