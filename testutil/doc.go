// Package testutil provides testing utilities for the affine library.
//
// This package is intended for use in tests and benchmarks only.
// It provides seeded helpers for generating random points, displacement
// vectors and unit-sum weight sets.
//
// # Random Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := testutil.Points[float64](rng, 10, 3) // 10 random 3D points
//	w := testutil.Weights[float64](rng, 10)     // 10 weights summing to ~1
package testutil
