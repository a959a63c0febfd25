// Package affine models points in an affine space: coordinate tuples with no
// privileged origin.
//
// The type system and the error layer together enforce the affine
// discipline. Origin-independent arithmetic is supported — displacing a
// point by a vector, taking the displacement between two points, and
// weighted combinations whose weights sum to 1. Origin-dependent arithmetic
// is rejected with distinct, descriptive errors: adding two points, scaling
// a point, negating a point, and subtracting a point from a vector.
//
// # Quick Start
//
//	p1 := affine.NewFromElems(0.0, 0.0)
//	p2 := affine.NewFromElems(2.0, 2.0)
//
//	// Displacement arithmetic.
//	v, _ := p2.Diff(p1)      // Vector(2, 2)
//	p3, _ := p1.Add(v)       // Point(2, 2)
//
//	// Span two points and walk the connecting line.
//	line, _ := affine.Span(p1, p2)
//	mid, _ := line.Combine(0.5)      // Point(1, 1)
//	q, _ := line.Combine(0.25)       // Point(0.5, 0.5)
//
//	// Full barycentric form: one weight per point, summing to 1.
//	mid, _ = line.Combine(0.5, 0.5)
//
//	// Unweighted centroid without building a span.
//	c, _ := affine.Mean(p1, p2, p3)
//
// # Rejected Operations
//
// The rejected operations exist as functions that always return a typed
// *OpError, so code ported from origin-based vector math gets an actionable
// diagnostic instead of a silent misuse:
//
//	_, err := affine.AddPoints(p1, p2)
//	// cannot add affine points; add a displacement vector instead
//
// # Dimensions
//
// A point's dimension is fixed at construction. Every operation across two
// values checks that their dimensions agree and returns a
// *DimensionMismatchError otherwise; there is no implicit broadcasting.
package affine
