package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocentroid/internal/centroid"
)

func TestShapesClassification(t *testing.T) {
	d := Data{
		Polygons: [][][][2]float64{
			{ // single ring, explicitly closed
				{{0, 0}, {1, 0}, {1, 1}, {0, 1}, {0, 0}},
			},
			{ // outer + hole
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
			},
		},
		Lines:  [][][2]float64{{{0, 0}, {5, 5}}},
		Points: [][2]float64{{1, 2}, {3, 4}},
	}
	shapes := Shapes(d)
	require.Len(t, shapes, 4)

	assert.Equal(t, centroid.KindLoop, shapes[0].Kind)
	// Closing vertex dropped: 4 vertices remain.
	assert.Len(t, shapes[0].Loop, 4)

	assert.Equal(t, centroid.KindCompound, shapes[1].Kind)
	require.Len(t, shapes[1].Rings, 2)
	assert.Len(t, shapes[1].Rings[0], 4)

	assert.Equal(t, centroid.KindUnsupported, shapes[2].Kind)
	assert.Contains(t, shapes[2].Label, "linestring")

	assert.Equal(t, centroid.KindUnsupported, shapes[3].Kind)
	assert.Contains(t, shapes[3].Label, "2 bare point")
}

func TestShapesFeedEngine(t *testing.T) {
	// The hole ring above is wound opposite to the outer ring, so the
	// compound nets out to 96 with the centroid fixed at (5,5).
	d := Data{
		Polygons: [][][][2]float64{
			{
				{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
				{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
			},
		},
	}
	shapes := Shapes(d)
	require.Len(t, shapes, 1)
	res, ok := centroid.CompoundCentroid(shapes[0].Rings)
	require.True(t, ok)
	assert.InDelta(t, 96.0, res.SignedArea, 1e-9)
	assert.InDelta(t, 5.0, res.X, 1e-9)
	assert.InDelta(t, 5.0, res.Y, 1e-9)
}

func TestLoopFromRingUnclosedRing(t *testing.T) {
	loop := loopFromRing([][2]float64{{0, 0}, {1, 0}, {1, 1}})
	assert.Len(t, loop, 3)
}
