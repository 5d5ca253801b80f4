package sphere

import "github.com/golang/geo/r3"

// Reference is a fixed direction used as the far end of the arc cast from a
// query point during containment tests.
type Reference int

// Reference directions, in declaration order.
const (
	NorthPole Reference = iota
	SouthPole
	Equator0h  // RA 0h, the +X axis
	Equator6h  // RA 6h, the +Y axis
	Equator12h // RA 12h, the -X axis
	Equator18h // RA 18h, the -Y axis

	// ObliqueNorth sits at lon 1 rad, lat 0.5 rad and ObliqueSouth at lon
	// 4 rad, lat -0.5 rad, away from the round RA/Dec values boundaries are
	// usually drawn along.
	ObliqueNorth
	ObliqueSouth

	numReferences
)

var unitZ = r3.Vector{X: 0, Y: 0, Z: 1}

var referencePoints = [numReferences]Point{
	NorthPole:    {v: unitZ},
	SouthPole:    {v: unitZ.Mul(-1)},
	Equator0h:    PointFromDegrees(0, 0),
	Equator6h:    PointFromDegrees(90, 0),
	Equator12h:   PointFromDegrees(180, 0),
	Equator18h:   PointFromDegrees(270, 0),
	ObliqueNorth: PointFromAngles(1, 0.5),
	ObliqueSouth: PointFromAngles(4, -0.5),
}

// Point returns the reference direction as a point on the sphere.
func (r Reference) Point() Point {
	return referencePoints[r]
}

// IsPole reports whether r is one of the celestial poles.
func (r Reference) IsPole() bool {
	return r == NorthPole || r == SouthPole
}

func (r Reference) String() string {
	switch r {
	case NorthPole:
		return "north pole"
	case SouthPole:
		return "south pole"
	case Equator0h:
		return "equator 0h"
	case Equator6h:
		return "equator 6h"
	case Equator12h:
		return "equator 12h"
	case Equator18h:
		return "equator 18h"
	case ObliqueNorth:
		return "oblique north"
	case ObliqueSouth:
		return "oblique south"
	default:
		return "unknown reference"
	}
}

// ReferenceOrder returns the fallback sequence of references for q: the
// nearest pole first (shortest arc, fewest edges to cross), then the opposite
// pole, then the oblique references and finally the equatorial axes.
func ReferenceOrder(q Point) []Reference {
	if q.v.Z >= 0 {
		return []Reference{NorthPole, SouthPole, ObliqueNorth, ObliqueSouth, Equator0h, Equator6h, Equator12h, Equator18h}
	}
	return []Reference{SouthPole, NorthPole, ObliqueSouth, ObliqueNorth, Equator0h, Equator6h, Equator12h, Equator18h}
}
