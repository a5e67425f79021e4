package geom

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// Load reads any supported geometry file, dispatching on extension.
// Supported: .geojson/.json, .wkt, .csv, .kml.
func Load(path string) (Data, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".geojson", ".json":
		return LoadGeo(path)
	case ".wkt":
		raw, err := os.ReadFile(path)
		if err != nil {
			return Data{}, errors.Wrap(err, "read wkt")
		}
		return ParseWKTData(string(raw))
	case ".csv":
		pts, bb, err := LoadCSV(path)
		if err != nil {
			return Data{}, err
		}
		return Data{Points: pts, BBox: bb}, nil
	case ".kml":
		pts, bb, err := LoadKML(path)
		if err != nil {
			return Data{}, err
		}
		return Data{Points: pts, BBox: bb}, nil
	}
	return Data{}, errors.Errorf("unsupported file extension %q", ext)
}
