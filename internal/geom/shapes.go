package geom

import (
	"fmt"

	"gocentroid/internal/centroid"
)

// loopFromRing converts a ring to a centroid loop. File formats close
// rings explicitly by repeating the first vertex; the centroid math
// treats loops as implicitly closed, so a trailing duplicate is
// dropped.
func loopFromRing(ring [][2]float64) centroid.Loop {
	n := len(ring)
	if n > 1 && ring[0] == ring[n-1] {
		ring = ring[:n-1]
	}
	loop := make(centroid.Loop, len(ring))
	for i, p := range ring {
		loop[i] = centroid.Point{X: p[0], Y: p[1]}
	}
	return loop
}

// Shapes turns loaded geometry into selection items for the centroid
// engine. Single-ring polygons become simple loops, multi-ring
// polygons become compound shapes, and open geometry is carried as
// unsupported descriptors so the skips show up in the report.
func Shapes(d Data) []centroid.Shape {
	var shapes []centroid.Shape
	for _, poly := range d.Polygons {
		rings := make([]centroid.Loop, 0, len(poly))
		for _, ring := range poly {
			rings = append(rings, loopFromRing(ring))
		}
		if len(rings) == 1 {
			shapes = append(shapes, centroid.SimpleShape(rings[0]))
		} else if len(rings) > 1 {
			shapes = append(shapes, centroid.CompoundShape(rings))
		}
	}
	for range d.Lines {
		shapes = append(shapes, centroid.UnsupportedShape("open path (linestring)"))
	}
	if n := len(d.Points); n > 0 {
		shapes = append(shapes, centroid.UnsupportedShape(fmt.Sprintf("%d bare point(s)", n)))
	}
	return shapes
}
