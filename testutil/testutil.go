package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/affine"
	"github.com/hupe1980/affine/vector"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

func (r *RNG) fill(dst []float64, minVal, maxVal float64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	span := maxVal - minVal
	for i := range dst {
		dst[i] = minVal + r.rand.Float64()*span
	}
}

// Vector generates a random coordinate vector with values in [-1, 1).
func Vector[T vector.Float](r *RNG, dim int) vector.Vector[T] {
	raw := make([]float64, dim)
	r.fill(raw, -1, 1)

	vec := make(vector.Vector[T], dim)
	for i, v := range raw {
		vec[i] = T(v)
	}

	return vec
}

// Vectors generates random coordinate vectors with values in [-1, 1).
func Vectors[T vector.Float](r *RNG, num, dim int) []vector.Vector[T] {
	vecs := make([]vector.Vector[T], num)
	for i := range vecs {
		vecs[i] = Vector[T](r, dim)
	}

	return vecs
}

// Point generates a random point with coordinates in [-1, 1).
func Point[T vector.Float](r *RNG, dim int) affine.Point[T] {
	return affine.New(Vector[T](r, dim))
}

// Points generates random points with coordinates in [-1, 1).
func Points[T vector.Float](r *RNG, num, dim int) []affine.Point[T] {
	pts := make([]affine.Point[T], num)
	for i := range pts {
		pts[i] = Point[T](r, dim)
	}

	return pts
}

// Weights generates n positive weights normalized so their sum is
// approximately 1; suitable input for a full-form affine combination.
func Weights[T vector.Float](r *RNG, n int) []T {
	raw := make([]float64, n)
	// Shift away from zero so normalization stays well-conditioned.
	r.fill(raw, 0.1, 1)

	var sum float64
	for _, v := range raw {
		sum += v
	}

	weights := make([]T, n)
	for i, v := range raw {
		weights[i] = T(v / sum)
	}

	return weights
}
