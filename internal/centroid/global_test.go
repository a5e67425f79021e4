package centroid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorTwoDisjointShapes(t *testing.T) {
	a := LoopCentroid(square(-0.5, -0.5, 1)) // centroid (0,0)
	b := LoopCentroid(square(9.5, -0.5, 1))  // centroid (10,0)

	var acc Accumulator
	acc = acc.Add(a)
	acc = acc.Add(b)
	pt, ok := acc.Finalize()
	require.True(t, ok)
	assert.InDelta(t, 5.0, pt.X, 1e-12)
	assert.InDelta(t, 0.0, pt.Y, 1e-12)

	// Order independence.
	var rev Accumulator
	rev = rev.Add(b)
	rev = rev.Add(a)
	pt2, ok := rev.Finalize()
	require.True(t, ok)
	assert.InDelta(t, pt.X, pt2.X, 1e-12)
	assert.InDelta(t, pt.Y, pt2.Y, 1e-12)
}

func TestAccumulatorZeroAreaIsNoOp(t *testing.T) {
	var acc Accumulator
	acc = acc.Add(LoopCentroid(unitSquare()))
	before := acc
	acc = acc.Add(Result{}) // degenerate shape contributes nothing
	assert.Equal(t, before, acc)
}

func TestAccumulatorEmpty(t *testing.T) {
	var acc Accumulator
	_, ok := acc.Finalize()
	assert.False(t, ok)
}

func TestAccumulatorNegativeTotal(t *testing.T) {
	var acc Accumulator
	acc = acc.Add(Result{X: 1, Y: 1, SignedArea: -4})
	_, ok := acc.Finalize()
	assert.False(t, ok)
}

func TestAccumulatorUnevenWeights(t *testing.T) {
	var acc Accumulator
	acc = acc.Add(Result{X: 0, Y: 0, SignedArea: 3})
	acc = acc.Add(Result{X: 4, Y: 0, SignedArea: 1})
	pt, ok := acc.Finalize()
	require.True(t, ok)
	assert.InDelta(t, 1.0, pt.X, 1e-12)
	assert.InDelta(t, 0.0, pt.Y, 1e-12)
}
