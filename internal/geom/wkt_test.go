package geom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gocentroid/internal/centroid"
)

func TestParseWKTDataPolygonWithHole(t *testing.T) {
	wkt := "POLYGON((0 0, 10 0, 10 10, 0 10, 0 0), (4 4, 4 6, 6 6, 6 4, 4 4))"
	d, err := ParseWKTData(wkt)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	require.Len(t, d.Polygons[0], 2)
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}, d.BBox)

	shapes := Shapes(d)
	require.Len(t, shapes, 1)
	assert.Equal(t, centroid.KindCompound, shapes[0].Kind)
}

func TestParseWKTDataLineString(t *testing.T) {
	d, err := ParseWKTData("LINESTRING(0 0, 5 5, 10 0)")
	require.NoError(t, err)
	require.Len(t, d.Lines, 1)
	assert.Len(t, d.Lines[0], 3)
	// The bbox must span the whole line, not collapse to one vertex.
	assert.Equal(t, BBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 5}, d.BBox)

	shapes := Shapes(d)
	require.Len(t, shapes, 1)
	assert.Equal(t, centroid.KindUnsupported, shapes[0].Kind)
}

func TestParseWKTDataMultiPoint(t *testing.T) {
	d, err := ParseWKTData("MULTIPOINT(1 2, -3 8, 5 0)")
	require.NoError(t, err)
	require.Len(t, d.Points, 3)
	assert.Equal(t, BBox{MinX: -3, MinY: 0, MaxX: 5, MaxY: 8}, d.BBox)
}

func TestParseWKTDataPoint(t *testing.T) {
	d, err := ParseWKTData("POINT(3.5 -2)")
	require.NoError(t, err)
	require.Len(t, d.Points, 1)
	assert.Equal(t, [2]float64{3.5, -2}, d.Points[0])
}

func TestParseWKTDataInvalid(t *testing.T) {
	for _, bad := range []string{"", "CIRCLE(0 0, 5)", "POLYGON(1 2"} {
		_, err := ParseWKTData(bad)
		assert.Error(t, err, "input %q", bad)
	}
}
