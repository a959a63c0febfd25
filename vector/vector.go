package vector

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/exp/constraints"
)

// Float is the constraint for coordinate element types.
type Float interface {
	constraints.Float
}

// Vector is a fixed-length numeric coordinate vector.
// It supports native indexing, len and range iteration.
type Vector[T Float] []T

// New creates a Vector from the given elements.
func New[T Float](elems ...T) Vector[T] {
	return Vector[T](elems)
}

// Zero returns a zero vector of length n.
func Zero[T Float](n int) Vector[T] {
	return make(Vector[T], n)
}

// Len returns the number of elements.
func (v Vector[T]) Len() int {
	return len(v)
}

// Clone returns a copy of v with its own storage.
func (v Vector[T]) Clone() Vector[T] {
	return slices.Clone(v)
}

// Add returns the element-wise sum v + o.
// Assumes vectors are the same length (caller's responsibility).
func (v Vector[T]) Add(o Vector[T]) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] + o[i]
	}

	return out
}

// Sub returns the element-wise difference v - o.
// Assumes vectors are the same length (caller's responsibility).
func (v Vector[T]) Sub(o Vector[T]) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] - o[i]
	}

	return out
}

// Scale returns v multiplied element-wise by scalar k.
func (v Vector[T]) Scale(k T) Vector[T] {
	out := make(Vector[T], len(v))
	for i := range v {
		out[i] = v[i] * k
	}

	return out
}

// Neg returns the additive inverse of v.
func (v Vector[T]) Neg() Vector[T] {
	return v.Scale(-1)
}

// AddScaledInPlace adds k*o to v element-wise.
// Assumes vectors are the same length (caller's responsibility).
func (v Vector[T]) AddScaledInPlace(o Vector[T], k T) {
	for i := range v {
		v[i] += k * o[i]
	}
}

// Dot calculates the dot product of v and o.
// Assumes vectors are the same length (caller's responsibility).
func (v Vector[T]) Dot(o Vector[T]) T {
	var ret T
	for i := range v {
		ret += v[i] * o[i]
	}

	return ret
}

// Equal reports whether v and o have the same length and elements.
func (v Vector[T]) Equal(o Vector[T]) bool {
	return slices.Equal(v, o)
}

// String returns a compact textual form, e.g. "Vector(1, 2, 3)".
func (v Vector[T]) String() string {
	var sb strings.Builder

	sb.WriteString("Vector(")
	for i, e := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v", e)
	}
	sb.WriteByte(')')

	return sb.String()
}
