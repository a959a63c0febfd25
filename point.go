package affine

import (
	"fmt"
	"iter"
	"strings"

	"github.com/hupe1980/affine/vector"
)

// Point is a location in an affine space: a coordinate tuple with no
// privileged origin. Its dimension is fixed at construction; points of
// differing dimension are never comparable or combinable.
//
// Points deliberately expose no vector-space arithmetic. Displacement by a
// vector (Add, Sub) and the displacement between two points (Diff) are the
// only legal operations; see the package-level AddPoints, Scale, Neg and
// SubFromVector for the rejected ones.
type Point[T vector.Float] struct {
	coords vector.Vector[T]
}

// New creates a Point from a coordinate vector. The coordinates are copied,
// so later mutations of coords do not affect the point.
func New[T vector.Float](coords vector.Vector[T]) Point[T] {
	return Point[T]{coords: coords.Clone()}
}

// NewFromElems creates a Point directly from coordinate values.
func NewFromElems[T vector.Float](elems ...T) Point[T] {
	return Point[T]{coords: vector.New(elems...).Clone()}
}

// Len returns the dimension of the point.
func (p Point[T]) Len() int {
	return p.coords.Len()
}

// At returns the i-th coordinate.
func (p Point[T]) At(i int) (T, error) {
	if i < 0 || i >= p.coords.Len() {
		var zero T
		return zero, &BoundsError{Index: i, Len: p.coords.Len()}
	}

	return p.coords[i], nil
}

// Set replaces the i-th coordinate in place. The dimension and element type
// of the point never change.
func (p Point[T]) Set(i int, val T) error {
	if i < 0 || i >= p.coords.Len() {
		return &BoundsError{Index: i, Len: p.coords.Len()}
	}
	p.coords[i] = val

	return nil
}

// All returns a restartable iterator over the coordinates in index order.
func (p Point[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, c := range p.coords {
			if !yield(i, c) {
				return
			}
		}
	}
}

// Coords returns a copy of the coordinate vector.
func (p Point[T]) Coords() vector.Vector[T] {
	return p.coords.Clone()
}

// Equal reports whether p and q have identical dimension and coordinates.
func (p Point[T]) Equal(q Point[T]) bool {
	return p.coords.Equal(q.coords)
}

// String returns a compact textual form, e.g. "Point(1, 2)".
func (p Point[T]) String() string {
	var sb strings.Builder

	sb.WriteString("Point(")
	for i, c := range p.coords {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", c)
	}
	sb.WriteByte(')')

	return sb.String()
}
