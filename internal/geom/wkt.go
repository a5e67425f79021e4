package geom

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseWKTData returns Data for LINESTRING/POLYGON, or points for POINT/MULTIPOINT
func ParseWKTData(wkt string) (Data, error) {
	s := strings.TrimSpace(wkt)
	if s == "" {
		return Data{}, errors.New("empty wkt")
	}
	up := strings.ToUpper(s)
	var d Data
	seen := false
	mkbb := func(lon, lat float64) {
		if !seen {
			d.BBox = BBox{MinX: lon, MinY: lat, MaxX: lon, MaxY: lat}
			seen = true
		} else {
			if lon < d.BBox.MinX {
				d.BBox.MinX = lon
			}
			if lat < d.BBox.MinY {
				d.BBox.MinY = lat
			}
			if lon > d.BBox.MaxX {
				d.BBox.MaxX = lon
			}
			if lat > d.BBox.MaxY {
				d.BBox.MaxY = lat
			}
		}
	}
	parseTuples := func(block string) [][2]float64 {
		var out [][2]float64
		for _, tup := range strings.Split(block, ",") {
			parts := strings.Fields(strings.TrimSpace(tup))
			if len(parts) < 2 {
				continue
			}
			x, e1 := strconv.ParseFloat(parts[0], 64)
			y, e2 := strconv.ParseFloat(parts[1], 64)
			if e1 != nil || e2 != nil {
				continue
			}
			out = append(out, [2]float64{x, y})
		}
		return out
	}
	switch {
	case strings.HasPrefix(up, "POINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt point: invalid")
		}
		pts := parseTuples(s[i+1 : j])
		for _, p := range pts {
			mkbb(p[0], p[1])
		}
		d.Points = append(d.Points, pts...)
		return d, nil
	case strings.HasPrefix(up, "MULTIPOINT"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt multipoint: invalid")
		}
		pts := parseTuples(s[i+1 : j])
		for _, p := range pts {
			mkbb(p[0], p[1])
		}
		d.Points = append(d.Points, pts...)
		return d, nil
	case strings.HasPrefix(up, "LINESTRING"):
		i := strings.Index(s, "(")
		j := strings.LastIndex(s, ")")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt linestring: invalid")
		}
		ls := parseTuples(s[i+1 : j])
		for _, p := range ls {
			mkbb(p[0], p[1])
		}
		d.Lines = append(d.Lines, ls)
		return d, nil
	case strings.HasPrefix(up, "POLYGON"):
		i := strings.Index(s, "((")
		j := strings.LastIndex(s, "))")
		if i < 0 || j <= i {
			return Data{}, errors.New("wkt polygon: invalid")
		}
		ringsStr := s[i+2 : j]
		// normalize spaces around ring separators
		ringsNorm := strings.ReplaceAll(ringsStr, "), (", "),(")
		ringsNorm = strings.ReplaceAll(ringsNorm, ") , (", "),(")
		ringParts := strings.Split(ringsNorm, "),(")
		var poly [][][2]float64
		for _, rp := range ringParts {
			pts := parseTuples(rp)
			poly = append(poly, pts)
			for _, p := range pts {
				mkbb(p[0], p[1])
			}
		}
		d.Polygons = append(d.Polygons, poly)
		return d, nil
	}
	return Data{}, errors.New("unsupported wkt type")
}
