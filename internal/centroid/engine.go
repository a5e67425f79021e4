package centroid

// ShapeResult pairs an accepted shape with its computed result for
// display purposes.
type ShapeResult struct {
	Index  int // position in the input selection, 1-based
	Kind   Kind
	Result Result
}

// Summary is everything a host needs after one processing pass:
// the accepted per-shape results, the global centroid (when one
// exists), and the diagnostics collected along the way.
type Summary struct {
	Shapes    []ShapeResult
	Global    Point
	HasGlobal bool
	Skipped   int
	Report    []string
}

// Engine walks a selection, classifies each item, computes centroids
// and feeds accepted results into the global accumulator. Markers are
// emitted through the sink as results are accepted; every recoverable
// condition lands in the report and none propagates as an error.
type Engine struct {
	sink MarkerSink
	rep  *Report
}

// NewEngine wires an engine to a marker sink and a report. A nil sink
// discards markers.
func NewEngine(sink MarkerSink, rep *Report) *Engine {
	if sink == nil {
		sink = NopSink()
	}
	if rep == nil {
		rep = NewReport(nil)
	}
	return &Engine{sink: sink, rep: rep}
}

// Process runs the full pass over the selection, in input order.
func (e *Engine) Process(shapes []Shape) Summary {
	var sum Summary
	var acc Accumulator
	for i, s := range shapes {
		switch s.Kind {
		case KindLoop:
			res := LoopCentroid(s.Loop)
			if res.SignedArea == 0 {
				e.rep.Warnf("shape %d: degenerate loop (zero area), skipped", i+1)
				continue
			}
			// Only positively-wound loops count as standalone solids.
			// A lone hole-direction loop is excluded from the global
			// total and gets no marker; compound results below carry
			// no such restriction since their internal cancellation is
			// already resolved.
			if res.SignedArea < 0 {
				e.rep.Warnf("shape %d: negative winding, excluded from global centroid", i+1)
				continue
			}
			acc = acc.Add(res)
			e.accept(&sum, i, KindLoop, res)
		case KindCompound:
			res, ok := CompoundCentroid(s.Rings)
			if !ok {
				e.rep.Warnf("shape %d: compound contours cancel to zero area, skipped", i+1)
				continue
			}
			acc = acc.Add(res)
			e.accept(&sum, i, KindCompound, res)
		case KindUnsupported:
			label := s.Label
			if label == "" {
				label = "unknown item"
			}
			e.rep.Warnf("shape %d: %s not supported, skipped", i+1, label)
			sum.Skipped++
		}
	}
	if pt, ok := acc.Finalize(); ok {
		sum.Global = pt
		sum.HasGlobal = true
		if err := e.sink.PlaceMarker(pt.X, pt.Y, MarkerGlobal); err != nil {
			e.rep.Warnf("global marker at (%.4f, %.4f) failed: %v", pt.X, pt.Y, err)
		}
		e.rep.Infof("global centroid (%.4f, %.4f), total area %.4f over %d shape(s)",
			pt.X, pt.Y, acc.TotalArea, len(sum.Shapes))
	} else {
		e.rep.Warnf("no shape contributed positive area; global centroid omitted")
	}
	sum.Report = e.rep.Lines()
	return sum
}

func (e *Engine) accept(sum *Summary, i int, kind Kind, res Result) {
	sum.Shapes = append(sum.Shapes, ShapeResult{Index: i + 1, Kind: kind, Result: res})
	if err := e.sink.PlaceMarker(res.X, res.Y, MarkerIndividual); err != nil {
		e.rep.Warnf("shape %d: marker at (%.4f, %.4f) failed: %v", i+1, res.X, res.Y, err)
	}
}
