package centroid

// CompoundCentroid combines the sub-contours of one compound shape
// into a single signed area and centroid. Each contour contributes its
// signed area and its area-weighted centroid; a hole, wound opposite
// to the solid it sits in, carries negative area and pulls its own
// moment back out of the sum. Summing signed moments before dividing
// is what subtracts hole regions correctly; averaging unsigned
// sub-centroids would not.
//
// Degenerate contours contribute zero to every sum and vanish. When
// the contours cancel to exactly zero net area the shape has no
// centroid and ok is false.
func CompoundCentroid(rings []Loop) (res Result, ok bool) {
	var total, wx, wy float64
	for _, ring := range rings {
		sub := LoopCentroid(ring)
		total += sub.SignedArea
		wx += sub.X * sub.SignedArea
		wy += sub.Y * sub.SignedArea
	}
	if total == 0 {
		return Result{}, false
	}
	return Result{
		X:          wx / total,
		Y:          wy / total,
		SignedArea: total,
	}, true
}
