package render

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ctessum/geom"
)

// Coastlines holds land polygons in lon/lat degrees with longitudes in
// [-180, 180). The renderer fills their interiors as continents and
// strokes their rings as coastlines.
type Coastlines struct {
	polys  []geom.Polygon
	bounds []*geom.Bounds
}

func newCoastlines(polys []geom.Polygon) *Coastlines {
	c := &Coastlines{polys: polys, bounds: make([]*geom.Bounds, len(polys))}
	for i, p := range polys {
		c.bounds[i] = p.Bounds()
	}
	return c
}

// BuiltinCoastlines returns the embedded simplified land outlines.
func BuiltinCoastlines() *Coastlines {
	return newCoastlines(landPolygons)
}

// geoJSON is the subset of the GeoJSON schema the loader understands:
// a FeatureCollection of Polygon/MultiPolygon features.
type geoJSON struct {
	Type     string `json:"type"`
	Features []struct {
		Geometry geoGeometry `json:"geometry"`
	} `json:"features"`
	Geometry *geoGeometry `json:"geometry"`
}

type geoGeometry struct {
	Type        string          `json:"type"`
	Coordinates json.RawMessage `json:"coordinates"`
}

// LoadCoastlines reads land polygons from a GeoJSON file, replacing
// the built-in outlines.
func LoadCoastlines(path string) (*Coastlines, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read coastlines: %w", err)
	}

	var doc geoJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse coastlines %s: %w", path, err)
	}

	var polys []geom.Polygon
	appendGeometry := func(g geoGeometry) error {
		switch g.Type {
		case "Polygon":
			var coords [][][]float64
			if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
				return err
			}
			polys = append(polys, toPolygon(coords))
		case "MultiPolygon":
			var coords [][][][]float64
			if err := json.Unmarshal(g.Coordinates, &coords); err != nil {
				return err
			}
			for _, poly := range coords {
				polys = append(polys, toPolygon(poly))
			}
		case "":
			// features without geometry are skipped
		default:
			return fmt.Errorf("unsupported geometry type %q", g.Type)
		}
		return nil
	}

	if doc.Geometry != nil {
		if err := appendGeometry(*doc.Geometry); err != nil {
			return nil, fmt.Errorf("parse coastlines %s: %w", path, err)
		}
	}
	for _, f := range doc.Features {
		if err := appendGeometry(f.Geometry); err != nil {
			return nil, fmt.Errorf("parse coastlines %s: %w", path, err)
		}
	}
	if len(polys) == 0 {
		return nil, fmt.Errorf("coastlines %s: no polygons found", path)
	}
	return newCoastlines(polys), nil
}

func toPolygon(coords [][][]float64) geom.Polygon {
	p := make(geom.Polygon, 0, len(coords))
	for _, ring := range coords {
		r := make([]geom.Point, 0, len(ring))
		for _, pt := range ring {
			if len(pt) < 2 {
				continue
			}
			r = append(r, geom.Point{X: pt[0], Y: pt[1]})
		}
		p = append(p, r)
	}
	return p
}

// landAt reports whether the point lies inside any land polygon. The
// cached bounds cut the polygon test to the few candidates whose box
// contains the point.
func (c *Coastlines) landAt(lon, lat float64) bool {
	pt := geom.Point{X: lon, Y: lat}
	for i, p := range c.polys {
		b := c.bounds[i]
		if lon < b.Min.X || lon > b.Max.X || lat < b.Min.Y || lat > b.Max.Y {
			continue
		}
		if pt.Within(p) == geom.Inside {
			return true
		}
	}
	return false
}
