package affine

import (
	"iter"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/hupe1980/affine/vector"
)

// weightSumTol is the fixed tolerance for validating that a full weight set
// sums to 1. It is deliberately not configurable.
const weightSumTol = 1e-6

// Subspace is an ordered, fixed-size span of points of equal dimension.
// Position determines the correspondence between points and combination
// weights. A subspace never owns its points exclusively; points may be
// shared across subspaces since no subspace operation mutates a member.
type Subspace[T vector.Float] struct {
	points []Point[T]
}

// Span builds a subspace from two or more points in the given order.
// All points must share one dimension.
func Span[T vector.Float](p1, p2 Point[T], rest ...Point[T]) (Subspace[T], error) {
	points := make([]Point[T], 0, 2+len(rest))
	points = append(points, p1, p2)
	points = append(points, rest...)

	dim := p1.Len()
	for _, p := range points[1:] {
		if p.Len() != dim {
			return Subspace[T]{}, &DimensionMismatchError{Expected: dim, Actual: p.Len()}
		}
	}

	return Subspace[T]{points: points}, nil
}

// Extend returns a new subspace with the given points appended in order.
// The receiver is unchanged.
func (s Subspace[T]) Extend(points ...Point[T]) (Subspace[T], error) {
	dim := s.Dim()
	for _, p := range points {
		if p.Len() != dim {
			return Subspace[T]{}, &DimensionMismatchError{Expected: dim, Actual: p.Len()}
		}
	}

	extended := make([]Point[T], 0, len(s.points)+len(points))
	extended = append(extended, s.points...)
	extended = append(extended, points...)

	return Subspace[T]{points: extended}, nil
}

// Len returns the number of spanning points.
func (s Subspace[T]) Len() int {
	return len(s.points)
}

// Dim returns the dimension of the spanning points.
func (s Subspace[T]) Dim() int {
	if len(s.points) == 0 {
		return 0
	}

	return s.points[0].Len()
}

// PointAt returns the i-th spanning point.
func (s Subspace[T]) PointAt(i int) (Point[T], error) {
	if i < 0 || i >= len(s.points) {
		return Point[T]{}, &BoundsError{Index: i, Len: len(s.points)}
	}

	return s.points[i], nil
}

// Points returns a restartable iterator over the spanning points in span
// order.
func (s Subspace[T]) Points() iter.Seq[Point[T]] {
	return func(yield func(Point[T]) bool) {
		for _, p := range s.points {
			if !yield(p) {
				return
			}
		}
	}
}

// Combine computes the affine combination of the spanning points.
//
// With N weights (N = Len), the weights map positionally to the points and
// must sum to approximately 1; the result's coordinates are Σ wᵢ·pᵢ. With
// N-1 weights, the given weights attach to the second through last points
// and the first point receives the derived weight 1-Σw, which satisfies the
// unit-sum rule by construction. A two-point span therefore traces the
// connecting line: Combine(0) recovers the first point, Combine(1) the
// second, Combine(0.5) their midpoint. Any other weight count is rejected.
func (s Subspace[T]) Combine(weights ...T) (Point[T], error) {
	n := len(s.points)

	switch len(weights) {
	case n:
		var sum float64
		for _, w := range weights {
			sum += float64(w)
		}
		if !scalar.EqualWithinAbs(sum, 1, weightSumTol) {
			return Point[T]{}, &WeightSumError{Sum: sum}
		}
	case n - 1:
		var sum T
		for _, w := range weights {
			sum += w
		}
		full := make([]T, 0, n)
		full = append(full, 1-sum)
		full = append(full, weights...)
		weights = full
	default:
		return Point[T]{}, &WeightCountError{Need: n, NeedAlt: n - 1, Got: len(weights)}
	}

	acc := vector.Zero[T](s.Dim())
	for i, w := range weights {
		acc.AddScaledInPlace(s.points[i].coords, w)
	}

	return Point[T]{coords: acc}, nil
}

// Mean returns the unweighted centroid of the given points: the affine
// combination with all weights equal to 1/N. It works directly on an ordered
// point list without requiring a subspace.
func Mean[T vector.Float](points ...Point[T]) (Point[T], error) {
	if len(points) == 0 {
		return Point[T]{}, ErrNoPoints
	}

	dim := points[0].Len()
	acc := vector.Zero[T](dim)
	for _, p := range points {
		if p.Len() != dim {
			return Point[T]{}, &DimensionMismatchError{Expected: dim, Actual: p.Len()}
		}
		acc.AddScaledInPlace(p.coords, 1)
	}

	return Point[T]{coords: acc.Scale(1 / T(len(points)))}, nil
}
