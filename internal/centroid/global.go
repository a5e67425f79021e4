package centroid

// Accumulator folds per-shape results into a global area-weighted
// centroid. Each shape behaves as a point mass equal to its net signed
// area placed at its own centroid. The zero value is ready to use.
//
// Add is a pure update; order of addition only matters up to
// floating-point rounding, which is accepted rather than compensated.
type Accumulator struct {
	TotalArea  float64
	WeightedCx float64
	WeightedCy float64
}

// Add returns the accumulator advanced by one shape result.
func (a Accumulator) Add(r Result) Accumulator {
	return Accumulator{
		TotalArea:  a.TotalArea + r.SignedArea,
		WeightedCx: a.WeightedCx + r.X*r.SignedArea,
		WeightedCy: a.WeightedCy + r.Y*r.SignedArea,
	}
}

// Finalize divides out the accumulated area. ok is false when no shape
// contributed positive net area, in which case no global centroid
// exists.
func (a Accumulator) Finalize() (Point, bool) {
	if a.TotalArea <= 0 {
		return Point{}, false
	}
	return Point{
		X: a.WeightedCx / a.TotalArea,
		Y: a.WeightedCy / a.TotalArea,
	}, true
}
