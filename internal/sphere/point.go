// Package sphere provides geometry on the unit sphere: points, great circles,
// great-circle arcs and polygons with point containment.
//
// Points are stored as unit Cartesian vectors. Longitude follows right
// ascension (eastward from +X towards +Y), latitude follows declination.
// Every type is an immutable value and is safe for concurrent read-only use.
package sphere

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

const (
	// VecLenIsZero is the length below which a cross product of unit vectors
	// is treated as the zero vector.
	VecLenIsZero = 1e-10

	// OnCircleEpsilon is the largest |n·p| for which p lies on a great circle
	// with unit normal n.
	OnCircleEpsilon = 1e-10

	// ArcEpsilon is the slack, in radians, allowed when testing that a point's
	// distances to an arc's endpoints sum to the arc length.
	ArcEpsilon = 1e-9

	// GrazeEpsilon is the angular distance, in radians, under which a
	// crossing is considered to hit a vertex.
	GrazeEpsilon = 1e-8

	// referenceClearance is the minimum |a×b| for a reference arc. Reference
	// arcs steer clear of near-antipodal endpoints, whose plane is poorly
	// conditioned.
	referenceClearance = 1e-7
)

// Point is a location on the unit sphere. The zero Point is not valid; use
// one of the constructors.
type Point struct {
	v r3.Vector
}

// PointFromAngles returns the point at the given longitude and latitude.
func PointFromAngles(lon, lat s1.Angle) Point {
	cosLat := math.Cos(lat.Radians())
	v := r3.Vector{
		X: math.Cos(lon.Radians()) * cosLat,
		Y: math.Sin(lon.Radians()) * cosLat,
		Z: math.Sin(lat.Radians()),
	}
	return Point{v: v.Normalize()}
}

// PointFromDegrees returns the point at lon/lat given in degrees, e.g. RA/Dec.
func PointFromDegrees(lonDeg, latDeg float64) Point {
	return PointFromAngles(s1.Angle(lonDeg)*s1.Degree, s1.Angle(latDeg)*s1.Degree)
}

// PointFromVector normalizes v onto the sphere. It fails for zero-length or
// non-finite vectors.
func PointFromVector(v r3.Vector) (Point, error) {
	n := v.Norm()
	if math.IsNaN(n) || math.IsInf(n, 0) || n < VecLenIsZero {
		return Point{}, newError(DegenerateVector, "point from vector")
	}
	return Point{v: v.Mul(1 / n)}, nil
}

// Vector returns the unit Cartesian vector of p.
func (p Point) Vector() r3.Vector {
	return p.v
}

// Lon returns the longitude of p in [0, 2π).
func (p Point) Lon() s1.Angle {
	lon := math.Atan2(p.v.Y, p.v.X)
	if lon < 0 {
		lon += 2 * math.Pi
	}
	return s1.Angle(lon)
}

// Lat returns the latitude of p in [-π/2, π/2].
func (p Point) Lat() s1.Angle {
	return s1.Angle(math.Atan2(p.v.Z, math.Hypot(p.v.X, p.v.Y)))
}

// Angles returns the longitude and latitude of p. The longitude of a pole is
// 0 by convention.
func (p Point) Angles() (lon, lat s1.Angle) {
	return p.Lon(), p.Lat()
}

// Degrees returns longitude and latitude in degrees.
func (p Point) Degrees() (lonDeg, latDeg float64) {
	return p.Lon().Degrees(), p.Lat().Degrees()
}

// Distance returns the angular separation between p and q in [0, π].
// It uses atan2 of the cross and dot products, which stays accurate for
// both tiny and near-antipodal separations.
func (p Point) Distance(q Point) s1.Angle {
	return p.v.Angle(q.v)
}

// Antipode returns the point diametrically opposite p.
func (p Point) Antipode() Point {
	return Point{v: p.v.Mul(-1)}
}

// ApproxEqual reports whether p and q are within GrazeEpsilon of each other.
func (p Point) ApproxEqual(q Point) bool {
	return p.Distance(q).Radians() < GrazeEpsilon
}

// IsValid reports whether p is a unit vector within floating tolerance.
func (p Point) IsValid() bool {
	return math.Abs(p.v.Norm2()-1) <= 1e-12
}

func (p Point) String() string {
	lon, lat := p.Degrees()
	return fmt.Sprintf("(%.6f°, %.6f°)", lon, lat)
}

// midpoint returns the point halfway along the shorter arc between a and b.
// a and b must not be antipodal.
func midpoint(a, b Point) Point {
	return Point{v: a.v.Add(b.v).Normalize()}
}
