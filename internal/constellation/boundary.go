// Package constellation holds constellation boundaries as spherical polygons
// and answers "which constellation is this point in" queries against them.
package constellation

import (
	"fmt"
	"math"

	"github.com/litescript/ls-skygeom/internal/sphere"
)

// Vertex is a boundary corner in equatorial coordinates (J2000 degrees).
type Vertex struct {
	RA  float64 `yaml:"ra" json:"ra"`
	Dec float64 `yaml:"dec" json:"dec"`
}

// Point converts v to a point on the celestial sphere.
func (v Vertex) Point() sphere.Point {
	return sphere.PointFromDegrees(v.RA, v.Dec)
}

// Boundary describes one constellation outline as loaded from configuration.
type Boundary struct {
	ID          string   `yaml:"id" json:"id"` // IAU abbreviation, e.g. "Ori"
	Name        string   `yaml:"name" json:"name"`
	Orientation string   `yaml:"orientation,omitempty" json:"orientation,omitempty"`
	Vertices    []Vertex `yaml:"vertices" json:"vertices"`
}

// Polygon builds the spherical polygon for b.
func (b Boundary) Polygon() (*sphere.Polygon, error) {
	o, err := sphere.ParseOrientation(b.Orientation)
	if err != nil {
		return nil, fmt.Errorf("boundary %s: %w", b.ID, err)
	}
	pts := make([]sphere.Point, len(b.Vertices))
	for i, v := range b.Vertices {
		if math.IsNaN(v.RA) || math.IsNaN(v.Dec) || v.Dec < -90 || v.Dec > 90 {
			return nil, fmt.Errorf("boundary %s: vertex %d: invalid coordinates (%v, %v)", b.ID, i, v.RA, v.Dec)
		}
		pts[i] = v.Point()
	}
	poly, err := sphere.NewPolygon(pts, o)
	if err != nil {
		return nil, fmt.Errorf("boundary %s: %w", b.ID, err)
	}
	return poly, nil
}

// Merge returns base with every boundary in overrides replacing the one with
// the same ID, and new IDs appended in order.
func Merge(base, overrides []Boundary) []Boundary {
	out := append([]Boundary(nil), base...)
	index := make(map[string]int, len(out))
	for i, b := range out {
		index[b.ID] = i
	}
	for _, b := range overrides {
		if i, ok := index[b.ID]; ok {
			out[i] = b
			continue
		}
		index[b.ID] = len(out)
		out = append(out, b)
	}
	return out
}

// maxParallelStep is the widest RA gap between vertices placed along a line
// of constant declination. Edges are great-circle arcs, so long runs are split
// to keep them close to the parallel.
const maxParallelStep = 5.0

// raDecBox returns the counter-clockwise outline of the region between
// raLo..raHi and decLo..decHi. raHi may be smaller than raLo for a region
// straddling RA 0.
func raDecBox(raLo, raHi, decLo, decHi float64) []Vertex {
	span := raHi - raLo
	if span <= 0 {
		span += 360
	}
	n := int(math.Ceil(span / maxParallelStep))
	ra := func(i int) float64 {
		return normRA(raLo + span*float64(i)/float64(n))
	}

	vs := make([]Vertex, 0, 2*(n+1))
	for i := 0; i <= n; i++ {
		vs = append(vs, Vertex{RA: ra(i), Dec: decLo})
	}
	for i := n; i >= 0; i-- {
		vs = append(vs, Vertex{RA: ra(i), Dec: decHi})
	}
	return vs
}

// decCap returns a ring of vertices at constant declination, eastward every
// 15° of RA. As a counter-clockwise polygon it encloses the cap towards the
// north pole; as a clockwise one, the cap towards the south pole.
func decCap(dec float64) []Vertex {
	vs := make([]Vertex, 0, 24)
	for ra := 0.0; ra < 360; ra += 15 {
		vs = append(vs, Vertex{RA: ra, Dec: dec})
	}
	return vs
}

func normRA(ra float64) float64 {
	ra = math.Mod(ra, 360)
	if ra < 0 {
		ra += 360
	}
	return ra
}

// DefaultBoundaries returns a simplified outline set for a handful of
// prominent constellations. The regions are RA/Dec boxes and polar caps
// rather than the official IAU boundaries, large enough to hold each
// constellation's bright stars.
func DefaultBoundaries() []Boundary {
	return []Boundary{
		{ID: "Ori", Name: "Orion", Vertices: raDecBox(73, 95, -11, 23)},
		{ID: "Lyr", Name: "Lyra", Vertices: raDecBox(272, 288, 25.5, 47.5)},
		{ID: "Cyg", Name: "Cygnus", Vertices: raDecBox(288, 330, 27, 61)},
		{ID: "UMi", Name: "Ursa Minor", Vertices: decCap(70)},
		{ID: "Cru", Name: "Crux", Vertices: raDecBox(178, 193, -65, -55)},
		{ID: "Sco", Name: "Scorpius", Vertices: raDecBox(238, 268, -46, -10)},
		{ID: "Oct", Name: "Octans", Orientation: "cw", Vertices: decCap(-75)},
		{ID: "Cas", Name: "Cassiopeia", Vertices: raDecBox(350, 30, 46, 66)},
	}
}
