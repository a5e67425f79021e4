package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocentroid/internal/centroid"
	"gocentroid/internal/geom"
)

func testModel() Model {
	return Model{
		zoom: 1.0,
		bbox: geom.BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10},
	}
}

func countPixels(b *brailleBuf) int {
	n := 0
	for _, row := range b.m {
		for _, mask := range row {
			if mask != 0 {
				n++
			}
		}
	}
	return n
}

func TestBrailleBufSetPixel(t *testing.T) {
	b := newBrailleBuf(4, 2)
	b.setPixel(0, 0)
	assert.Equal(t, uint8(0x01), b.m[0][0])
	b.setPixel(1, 3)
	assert.Equal(t, uint8(0x01|0x80), b.m[0][0])
	// out of range is ignored
	b.setPixel(-1, 0)
	b.setPixel(100, 100)
	lines := b.toLines()
	require.Len(t, lines, 2)
	assert.NotEqual(t, ' ', rune(lines[0][0]))
}

func TestDrawMarkersRasterizesCircleAndArrow(t *testing.T) {
	m := testModel()
	m.showMarkers = true
	m.markerCfg = centroid.MarkerConfig{Diameter: 4, ArrowWidth: 4, ArrowHeight: 4}
	m.markers = []placedMarker{
		{x: 5, y: 5, kind: centroid.MarkerIndividual},
		{x: 5, y: 5, kind: centroid.MarkerGlobal},
	}
	br := newBrailleBuf(40, 20)
	m.drawMarkers(br, 40, 20)
	assert.Greater(t, countPixels(br), 10)
}

func TestMarkerSizesAutoFallback(t *testing.T) {
	m := testModel()
	dia, aw, ah := m.markerSizes()
	assert.InDelta(t, 0.5, dia, 1e-12)
	assert.InDelta(t, 0.5, aw, 1e-12)
	assert.InDelta(t, 0.7, ah, 1e-12)

	m.markerCfg = centroid.MarkerConfig{Diameter: 2, ArrowWidth: 3, ArrowHeight: 4}
	dia, aw, ah = m.markerSizes()
	assert.Equal(t, 2.0, dia)
	assert.Equal(t, 3.0, aw)
	assert.Equal(t, 4.0, ah)
}

func TestOverlayCell(t *testing.T) {
	lines := []string{"abc", "def"}
	overlayCell(lines, 1, 0, "X")
	assert.Equal(t, "aXc", lines[0])
	// out of range leaves lines untouched
	overlayCell(lines, 5, 0, "X")
	overlayCell(lines, 0, 9, "X")
	assert.Equal(t, "def", lines[1])
}

func TestPlacedMarkersRecordsInOrder(t *testing.T) {
	rec := &placedMarkers{}
	require.NoError(t, rec.PlaceMarker(1, 2, centroid.MarkerIndividual))
	require.NoError(t, rec.PlaceMarker(3, 4, centroid.MarkerGlobal))
	require.Len(t, rec.placed, 2)
	assert.Equal(t, centroid.MarkerGlobal, rec.placed[1].kind)
}

func TestRecomputeBuildsSummaryAndMarkers(t *testing.T) {
	m := testModel()
	m.polygons = [][][][2]float64{
		{
			{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
		},
	}
	m.recompute()
	require.Len(t, m.summary.Shapes, 1)
	assert.Equal(t, centroid.KindCompound, m.summary.Shapes[0].Kind)
	require.True(t, m.summary.HasGlobal)
	assert.InDelta(t, 5.0, m.summary.Global.X, 1e-9)
	// one individual marker plus the global arrow
	require.Len(t, m.markers, 2)

	m.showPolys = true
	m.showMarkers = true
	rendered := m.renderAsciiMap(40, 20)
	assert.NotEmpty(t, strings.TrimSpace(rendered))
}

func TestRenderFillLeavesHoleUnfilled(t *testing.T) {
	m := testModel()
	m.showPolys = true
	m.polygons = [][][][2]float64{
		{
			{{0, 0}, {10, 0}, {10, 10}, {0, 10}, {0, 0}},
			{{4, 4}, {4, 6}, {6, 6}, {6, 4}, {4, 4}},
		},
	}
	lines := strings.Split(m.renderAsciiMap(40, 20), "\n")
	require.Len(t, lines, 20)
	// (2,5) lies in the solid band left of the hole, (5,5) inside it.
	solid := []rune(lines[9])[7]
	hole := []rune(lines[9])[19]
	assert.NotEqual(t, ' ', solid)
	assert.Equal(t, ' ', hole)
}

func TestRecomputeDegenerateOnly(t *testing.T) {
	m := testModel()
	m.lines = [][][2]float64{{{0, 0}, {5, 5}}}
	m.recompute()
	assert.Empty(t, m.summary.Shapes)
	assert.False(t, m.summary.HasGlobal)
	assert.Equal(t, 1, m.summary.Skipped)
	assert.NotEmpty(t, m.summary.Report)
}
