package centroid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// square builds an axis-aligned CCW square of side s with lower-left
// corner at (x, y).
func square(x, y, s float64) Loop {
	return Loop{{x, y}, {x + s, y}, {x + s, y + s}, {x, y + s}}
}

func TestCompoundCentroidCenteredHole(t *testing.T) {
	// 10x10 solid with a reverse-wound 2x2 hole centered at (5,5).
	rings := []Loop{
		square(0, 0, 10),
		reversed(square(4, 4, 2)),
	}
	res, ok := CompoundCentroid(rings)
	require.True(t, ok)
	assert.InDelta(t, 96.0, res.SignedArea, 1e-9)
	// Hole is centered, so the centroid stays put.
	assert.InDelta(t, 5.0, res.X, 1e-9)
	assert.InDelta(t, 5.0, res.Y, 1e-9)
}

func TestCompoundCentroidOffCenterHole(t *testing.T) {
	// Hole in the right half: centroid must shift left, away from it.
	rings := []Loop{
		square(0, 0, 10),
		reversed(square(7, 4, 2)),
	}
	res, ok := CompoundCentroid(rings)
	require.True(t, ok)
	assert.InDelta(t, 96.0, res.SignedArea, 1e-9)
	assert.Less(t, res.X, 5.0)
	assert.InDelta(t, 5.0, res.Y, 1e-9)
	// Exact moment arithmetic: (100*5 - 4*8) / 96.
	assert.InDelta(t, (100*5.0-4*8.0)/96.0, res.X, 1e-9)
}

func TestCompoundCentroidFullCancellation(t *testing.T) {
	rings := []Loop{
		unitSquare(),
		reversed(unitSquare()),
	}
	_, ok := CompoundCentroid(rings)
	assert.False(t, ok)
}

func TestCompoundCentroidDegenerateRingsVanish(t *testing.T) {
	rings := []Loop{
		square(0, 0, 2),
		{{5, 5}, {6, 6}},         // too few vertices
		{{0, 0}, {1, 1}, {2, 2}}, // collinear
	}
	res, ok := CompoundCentroid(rings)
	require.True(t, ok)
	assert.InDelta(t, 4.0, res.SignedArea, 1e-12)
	assert.InDelta(t, 1.0, res.X, 1e-12)
	assert.InDelta(t, 1.0, res.Y, 1e-12)
}

func TestCompoundCentroidDisjointSolids(t *testing.T) {
	// Two disjoint unit squares combined into one logical shape.
	rings := []Loop{
		square(0, 0, 1),
		square(10, 0, 1),
	}
	res, ok := CompoundCentroid(rings)
	require.True(t, ok)
	assert.InDelta(t, 2.0, res.SignedArea, 1e-12)
	assert.InDelta(t, 5.5, res.X, 1e-12)
	assert.InDelta(t, 0.5, res.Y, 1e-12)
}

func TestCompoundCentroidNegativeNetArea(t *testing.T) {
	// A single reverse-wound ring: net area is negative but nonzero,
	// so the compound still yields a result.
	res, ok := CompoundCentroid([]Loop{reversed(square(0, 0, 3))})
	require.True(t, ok)
	assert.InDelta(t, -9.0, res.SignedArea, 1e-12)
	assert.InDelta(t, 1.5, res.X, 1e-12)
	assert.InDelta(t, 1.5, res.Y, 1e-12)
}
