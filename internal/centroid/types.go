// Package centroid computes area-weighted centroids of closed planar
// shapes using the shoelace formulas. Signed areas follow the usual
// convention: counter-clockwise loops are positive, clockwise negative.
// Opposite-winding sub-contours of a compound shape act as holes.
package centroid

// Point holds a 2d coordinate value.
type Point struct {
	X, Y float64
}

// Loop is an ordered vertex sequence forming one closed contour. The
// last vertex connects back to the first implicitly; indexing wraps.
type Loop []Point

// Result carries the centroid and signed area computed for one shape.
// When SignedArea is zero the shape is degenerate and X/Y are
// meaningless; callers must check SignedArea before using them.
type Result struct {
	X          float64
	Y          float64
	SignedArea float64
}

// Kind classifies a selection item.
type Kind int

const (
	// KindLoop is a single closed contour.
	KindLoop Kind = iota
	// KindCompound is a shape built from multiple closed contours,
	// where opposite-winding contours are holes.
	KindCompound
	// KindUnsupported is anything the centroid pipeline skips
	// (open paths, bare points, other object kinds).
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindLoop:
		return "loop"
	case KindCompound:
		return "compound"
	default:
		return "unsupported"
	}
}

// Shape is one selection item as supplied by a selection source.
// Exactly one of Loop/Rings is meaningful depending on Kind; Label
// names unsupported items for the skip diagnostic.
type Shape struct {
	Kind  Kind
	Loop  Loop
	Rings []Loop
	Label string
}

// SimpleShape wraps a single closed loop as a selection item.
func SimpleShape(loop Loop) Shape {
	return Shape{Kind: KindLoop, Loop: loop}
}

// CompoundShape wraps a multi-contour shape as a selection item.
func CompoundShape(rings []Loop) Shape {
	return Shape{Kind: KindCompound, Rings: rings}
}

// UnsupportedShape records an item the pipeline cannot process.
func UnsupportedShape(label string) Shape {
	return Shape{Kind: KindUnsupported, Label: label}
}
