package centroid

// LoopCentroid computes the signed area and centroid of one closed
// vertex loop using the shoelace formula. Loops with fewer than three
// vertices, and loops whose vertices are collinear or coincident, come
// back with SignedArea == 0 and an undefined centroid.
//
// The sign of the area reflects winding direction and is preserved
// unmodified; compound aggregation relies on it to cancel holes.
func LoopCentroid(loop Loop) Result {
	var area, cx, cy float64
	n := len(loop)
	for i := 0; i < n; i++ {
		p1 := loop[i]
		p2 := loop[(i+1)%n]
		factor := p1.X*p2.Y - p2.X*p1.Y
		area += factor
		cx += (p1.X + p2.X) * factor
		cy += (p1.Y + p2.Y) * factor
	}
	area /= 2
	if area == 0 {
		return Result{}
	}
	return Result{
		X:          cx / (6 * area),
		Y:          cy / (6 * area),
		SignedArea: area,
	}
}
