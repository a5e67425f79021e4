package tui

import (
	"math"

	"gocentroid/internal/centroid"
)

type placedMarker struct {
	x, y float64
	kind centroid.MarkerKind
}

// placedMarkers is the canvas-side MarkerSink. It only records draw
// requests; the canvas rasterizes them every frame because projection
// depends on the current zoom and pan.
type placedMarkers struct {
	placed []placedMarker
}

func (p *placedMarkers) PlaceMarker(x, y float64, kind centroid.MarkerKind) error {
	p.placed = append(p.placed, placedMarker{x: x, y: y, kind: kind})
	return nil
}

// markerSizes resolves the configured marker geometry. Zero fields
// fall back to a fraction of the data extent so markers stay visible
// whatever the coordinate unit is.
func (m Model) markerSizes() (dia, aw, ah float64) {
	span := math.Max(m.bbox.MaxX-m.bbox.MinX, m.bbox.MaxY-m.bbox.MinY)
	dia = m.markerCfg.Diameter
	if dia == 0 {
		dia = span * 0.05
	}
	aw = m.markerCfg.ArrowWidth
	if aw == 0 {
		aw = span * 0.05
	}
	ah = m.markerCfg.ArrowHeight
	if ah == 0 {
		ah = span * 0.07
	}
	return dia, aw, ah
}

// drawMarkers rasterizes the recorded centroid markers into the
// braille buffer: a circle per shape centroid, an upward-pointing
// arrow for the global one.
func (m Model) drawMarkers(br *brailleBuf, w, h int) {
	dia, aw, ah := m.markerSizes()
	for _, mk := range m.markers {
		switch mk.kind {
		case centroid.MarkerIndividual:
			m.drawCircleMicro(br, mk.x, mk.y, dia/2, w, h)
		case centroid.MarkerGlobal:
			m.drawArrowMicro(br, mk.x, mk.y, aw, ah, w, h)
		}
	}
}

// drawCircleMicro samples the circle in data space so zoom and the
// 2x4 microgrid aspect are handled by the projection itself.
func (m Model) drawCircleMicro(br *brailleBuf, cx, cy, r float64, w, h int) {
	const steps = 96
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / steps
		mx, my, ok := m.screenXYMicro(cx+r*math.Cos(a), cy+r*math.Sin(a), w, h)
		if !ok {
			continue
		}
		br.setPixel(mx, my)
	}
}

// drawArrowMicro draws an upward-pointing triangle centered on (cx, cy).
func (m Model) drawArrowMicro(br *brailleBuf, cx, cy, aw, ah float64, w, h int) {
	type pt struct{ x, y float64 }
	apex := pt{cx, cy + ah/2}
	left := pt{cx - aw/2, cy - ah/2}
	right := pt{cx + aw/2, cy - ah/2}
	corners := []pt{apex, left, right}
	var proj [3][2]int
	for i, c := range corners {
		mx, my, ok := m.screenXYMicro(c.x, c.y, w, h)
		if !ok {
			return
		}
		proj[i] = [2]int{mx, my}
	}
	for i := 0; i < 3; i++ {
		a := proj[i]
		b := proj[(i+1)%3]
		br.drawLineMicro(a[0], a[1], b[0], b[1])
	}
}
