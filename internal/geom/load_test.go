package geom

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoadGeoJSONPolygon(t *testing.T) {
	p := writeTemp(t, "shape.geojson", `{
		"type": "FeatureCollection",
		"features": [{
			"type": "Feature",
			"geometry": {
				"type": "Polygon",
				"coordinates": [
					[[0,0],[10,0],[10,10],[0,10],[0,0]],
					[[4,4],[4,6],[6,6],[6,4],[4,4]]
				]
			}
		}]
	}`)
	d, err := Load(p)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
	assert.Len(t, d.Polygons[0], 2)
}

func TestLoadWKTFile(t *testing.T) {
	p := writeTemp(t, "shape.wkt", "POLYGON((0 0, 4 0, 4 4, 0 4, 0 0))")
	d, err := Load(p)
	require.NoError(t, err)
	require.Len(t, d.Polygons, 1)
}

func TestLoadCSVPoints(t *testing.T) {
	p := writeTemp(t, "pts.csv", "lat,lon\n1,2\n3,4\n")
	d, err := Load(p)
	require.NoError(t, err)
	assert.Len(t, d.Points, 2)
	assert.Empty(t, d.Polygons)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, err := Load("shapes.shp")
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.geojson"))
	assert.Error(t, err)
}
