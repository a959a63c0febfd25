package affine

import (
	"encoding/json"

	"github.com/hupe1980/affine/vector"
)

// MarshalJSON encodes the point as a JSON array of coordinates.
func (p Point[T]) MarshalJSON() ([]byte, error) {
	return json.Marshal([]T(p.coords))
}

// UnmarshalJSON decodes a JSON array of coordinates into the point.
func (p *Point[T]) UnmarshalJSON(data []byte) error {
	var coords []T
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	p.coords = vector.Vector[T](coords)

	return nil
}

// MarshalJSON encodes the subspace as a JSON array of coordinate arrays in
// span order.
func (s Subspace[T]) MarshalJSON() ([]byte, error) {
	coords := make([][]T, len(s.points))
	for i, p := range s.points {
		coords[i] = []T(p.coords)
	}

	return json.Marshal(coords)
}

// UnmarshalJSON decodes a JSON array of coordinate arrays. The array must
// hold at least two points of one shared dimension, the same invariant Span
// enforces.
func (s *Subspace[T]) UnmarshalJSON(data []byte) error {
	var coords [][]T
	if err := json.Unmarshal(data, &coords); err != nil {
		return err
	}
	if len(coords) < 2 {
		return ErrSpanTooSmall
	}

	points := make([]Point[T], len(coords))
	for i, c := range coords {
		points[i] = Point[T]{coords: vector.Vector[T](c)}
	}

	span, err := Span(points[0], points[1], points[2:]...)
	if err != nil {
		return err
	}
	*s = span

	return nil
}
