package tui

import (
	"sort"
	"strings"

	"gocentroid/internal/centroid"
)

// cellToLonLat converts a map cell coordinate back to data coords using bbox, zoom, and pan.
func (m Model) cellToLonLat(cx, cy, w, h int) (float64, float64, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	if w <= 1 || h <= 1 {
		return 0, 0, false
	}
	zx := float64(cx-m.offsetX) / float64(w-1)
	zy := 1.0 - float64(cy-m.offsetY)/float64(h-1)
	nx := 0.5 + (zx-0.5)/m.zoom
	ny := 0.5 + (zy-0.5)/m.zoom
	lon := m.bbox.MinX + nx*(m.bbox.MaxX-m.bbox.MinX)
	lat := m.bbox.MinY + ny*(m.bbox.MaxY-m.bbox.MinY)
	return lon, lat, true
}

func (m Model) renderAsciiMap(w, h int) string {
	// Plain background (no grid)
	lines := make([]string, h)
	for y := 0; y < h; y++ {
		row := make([]rune, w)
		for x := 0; x < w; x++ {
			row[x] = ' '
		}
		lines[y] = string(row)
	}
	// High-resolution braille buffer for crisp lines/edges
	br := newBrailleBuf(w, h)

	// Draw polygons (fill then edges)
	if m.showPolys && len(m.polygons) > 0 {
		for _, poly := range m.polygons {
			// project rings to screen (cell coords for fill, micro for edges)
			var rings [][][2]int
			var ringsMic [][][2]int
			for _, ring := range poly {
				var sp [][2]int
				var sm [][2]int
				for _, p := range ring {
					sx, sy, ok := m.screenXY(p[0], p[1], w, h)
					if !ok {
						continue
					}
					mx, my, okm := m.screenXYMicro(p[0], p[1], w, h)
					if !okm {
						continue
					}
					sp = append(sp, [2]int{sx, sy})
					sm = append(sm, [2]int{mx, my})
				}
				if len(sp) >= 3 {
					rings = append(rings, sp)
				}
				if len(sm) >= 3 {
					ringsMic = append(ringsMic, sm)
				}
			}
			if len(rings) == 0 {
				continue
			}
			// fill using even-odd rule per scanline over all rings
			// (microgrid); hole-ring crossings flip parity, leaving
			// hole interiors unfilled
			if len(ringsMic) > 0 {
				hMic := h * 4
				for yMic := 0; yMic < hMic; yMic++ {
					var xs []int
					for _, ring := range ringsMic {
						for i := 0; i < len(ring); i++ {
							a := ring[i]
							b := ring[(i+1)%len(ring)]
							if a[1] == b[1] { // horizontal edge: skip
								continue
							}
							y0, y1 := a[1], b[1]
							x0, x1 := a[0], b[0]
							if (yMic >= y0 && yMic < y1) || (yMic >= y1 && yMic < y0) {
								t := float64(yMic-y0) / float64(y1-y0)
								x := int(float64(x0) + t*float64(x1-x0))
								xs = append(xs, x)
							}
						}
					}
					if len(xs) >= 2 {
						sort.Ints(xs)
						for i := 0; i+1 < len(xs); i += 2 {
							xstart := xs[i]
							xend := xs[i+1]
							if xstart > xend {
								xstart, xend = xend, xstart
							}
							for xMic := max(0, xstart); xMic <= xend; xMic++ {
								br.setPixel(xMic, yMic)
							}
						}
					}
				}
			}
			// draw edges (high-res)
			for idx := range ringsMic {
				r := ringsMic[idx]
				for i := 0; i < len(r); i++ {
					a := r[i]
					b := r[(i+1)%len(r)]
					br.drawLineMicro(a[0], a[1], b[0], b[1])
				}
			}
		}
	}

	// Draw points only when dataset has no lines or polygons
	if m.showPoints && len(m.lines) == 0 && len(m.polygons) == 0 && len(m.points) > 0 && m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY {
		for _, p := range m.points {
			mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
			if !ok {
				continue
			}
			br.setPixel(mx, my)
		}
	}

	// Draw line strings (high-res)
	if m.showLines && len(m.lines) > 0 {
		for _, ls := range m.lines {
			var prev *[2]int
			for _, p := range ls {
				mx, my, ok := m.screenXYMicro(p[0], p[1], w, h)
				if !ok {
					continue
				}
				if prev != nil {
					br.drawLineMicro(prev[0], prev[1], mx, my)
				}
				prev = &[2]int{mx, my}
			}
		}
	}

	// Centroid markers: circle outlines and the global arrow
	if m.showMarkers && len(m.markers) > 0 {
		m.drawMarkers(br, w, h)
	}

	// Composite braille overlay onto base lines
	braLines := br.toLines()
	for y := 0; y < h && y < len(braLines); y++ {
		if len(braLines[y]) == 0 {
			continue
		}
		base := []rune(lines[y])
		over := []rune(braLines[y])
		for x := 0; x < len(base) && x < len(over); x++ {
			if over[x] != ' ' {
				base[x] = over[x]
			}
		}
		lines[y] = string(base)
	}

	// Colored glyphs at marker centers so centroids stand out from the
	// shape geometry around them
	if m.showMarkers {
		for _, mk := range m.markers {
			mx, my, ok := m.screenXYMicro(mk.x, mk.y, w, h)
			if !ok {
				continue
			}
			glyph, style := "◎", markerStyle
			if mk.kind == centroid.MarkerGlobal {
				glyph, style = "▲", globalMarkerStyle
			}
			overlayCell(lines, mx/2, my/4, style.Render(glyph))
		}
	}

	// Hover highlight: ring the nearest marker cell
	if m.hovering {
		overlayCell(lines, m.hoverMicX/2, m.hoverMicY/4, hoverStyle.Render("◯"))
	}
	return strings.Join(lines, "\n")
}

// overlayCell replaces one canvas cell with a styled glyph. The line is
// rebuilt around the ANSI sequence, matching how the hover circle was
// always drawn.
func overlayCell(lines []string, cx, cy int, glyph string) {
	if cy < 0 || cy >= len(lines) {
		return
	}
	r := []rune(lines[cy])
	if cx < 0 || cx >= len(r) {
		return
	}
	lines[cy] = string(r[:cx]) + glyph + string(r[cx+1:])
}

// screenXYMicro maps data coords into a 2x4 microgrid per cell for braille rendering.
func (m Model) screenXYMicro(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	wMic := w * 2
	hMic := h * 4
	sx := int(zx*float64(wMic-1)) + m.offsetX*2
	sy := int((1.0-zy)*float64(hMic-1)) + m.offsetY*4
	return sx, sy, true
}

// screenXY maps data coords to current screen integer coordinates considering zoom and pan.
func (m Model) screenXY(lon, lat float64, w, h int) (int, int, bool) {
	if !(m.bbox.MaxX > m.bbox.MinX && m.bbox.MaxY > m.bbox.MinY) {
		return 0, 0, false
	}
	nx := (lon - m.bbox.MinX) / (m.bbox.MaxX - m.bbox.MinX)
	ny := (lat - m.bbox.MinY) / (m.bbox.MaxY - m.bbox.MinY)
	// Apply zoom around center (0.5, 0.5)
	zx := 0.5 + (nx-0.5)*m.zoom
	zy := 0.5 + (ny-0.5)*m.zoom
	sx := int(zx*float64(w-1)) + m.offsetX
	sy := int((1.0-zy)*float64(h-1)) + m.offsetY
	return sx, sy, true
}
