package centroid

// MarkerKind distinguishes per-shape markers from the global one.
type MarkerKind int

const (
	// MarkerIndividual marks one shape's centroid (drawn as a circle).
	MarkerIndividual MarkerKind = iota
	// MarkerGlobal marks the global centroid (drawn as an upward arrow).
	MarkerGlobal
)

func (k MarkerKind) String() string {
	if k == MarkerGlobal {
		return "global"
	}
	return "individual"
}

// MarkerSink receives a draw request for every accepted centroid. The
// sink owns rendering and color policy; the engine only supplies
// coordinates and kind. A failed placement is reported as a diagnostic
// and processing continues.
type MarkerSink interface {
	PlaceMarker(x, y float64, kind MarkerKind) error
}

// MarkerConfig holds the marker geometry exposed to the host, in the
// same linear unit as input coordinates. A zero field tells the sink
// to pick a size relative to the data extent.
type MarkerConfig struct {
	Diameter    float64
	ArrowWidth  float64
	ArrowHeight float64
}

// nopSink drops every marker. Used when the host only wants the report.
type nopSink struct{}

func (nopSink) PlaceMarker(float64, float64, MarkerKind) error { return nil }

// NopSink returns a MarkerSink that discards all placements.
func NopSink() MarkerSink { return nopSink{} }
