package affine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/affine"
)

// assertPointInDelta compares two points coordinate-wise within delta.
// Random coordinates are not closed under rounded float arithmetic, so
// randomized properties check closeness; exactness is asserted separately on
// dyadic values.
func assertPointInDelta(t *testing.T, expected, actual affine.Point[float64], delta float64) {
	t.Helper()
	require.Equal(t, expected.Len(), actual.Len())

	for i, want := range expected.All() {
		got, err := actual.At(i)
		require.NoError(t, err)
		assert.InDelta(t, want, got, delta, "coordinate %d", i)
	}
}
