// Package vector provides the generic coordinate-vector type affine points
// are built on.
//
// A Vector is a plain slice with element-wise arithmetic. Unlike affine
// points, vectors carry full vector-space structure: they can be added,
// subtracted, negated and scaled freely. Binary operations assume both
// operands have the same length (caller's responsibility); the affine layer
// performs the dimension checks before delegating here.
package vector
