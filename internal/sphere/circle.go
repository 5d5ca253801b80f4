package sphere

import (
	"math"

	"github.com/golang/geo/r3"
)

// GreatCircle is the intersection of the sphere with a plane through its
// center, represented by the plane's unit normal.
type GreatCircle struct {
	normal r3.Vector
}

// GreatCircleFromPoints returns the great circle through p1 and p2, oriented
// so that travelling from p1 to p2 keeps the normal on the left.
// It fails when the points are coincident or antipodal.
func GreatCircleFromPoints(p1, p2 Point) (GreatCircle, error) {
	// (p1+p2)×(p2-p1) == 2·(p1×p2) but loses far less precision when the
	// points are close together.
	n := p1.v.Add(p2.v).Cross(p2.v.Sub(p1.v))
	if l := n.Norm(); math.IsNaN(l) || l < 2*VecLenIsZero {
		return GreatCircle{}, newError(TooCloseOrAntipodalPoints, "great circle")
	}
	return GreatCircle{normal: n.Normalize()}, nil
}

// GreatCircleFromNormal returns the great circle whose plane has normal n.
func GreatCircleFromNormal(n r3.Vector) (GreatCircle, error) {
	p, err := PointFromVector(n)
	if err != nil {
		return GreatCircle{}, newError(DegenerateVector, "great circle from normal")
	}
	return GreatCircle{normal: p.v}, nil
}

// Normal returns the unit normal of the circle's plane.
func (g GreatCircle) Normal() r3.Vector {
	return g.normal
}

// ContainsPoint reports whether p lies on the circle.
func (g GreatCircle) ContainsPoint(p Point) bool {
	return math.Abs(g.normal.Dot(p.v)) < OnCircleEpsilon
}

// Side returns +1 if p lies in the hemisphere the normal points into, -1 for
// the opposite hemisphere and 0 if p is on the circle.
func (g GreatCircle) Side(p Point) int {
	d := g.normal.Dot(p.v)
	switch {
	case math.Abs(d) < OnCircleEpsilon:
		return 0
	case d > 0:
		return 1
	default:
		return -1
	}
}

// Intersection returns the two antipodal points where g and o meet.
// It fails with IdenticalGreatCircles when the planes are parallel.
func (g GreatCircle) Intersection(o GreatCircle) ([2]Point, error) {
	x := g.normal.Cross(o.normal)
	if x.Norm() < VecLenIsZero {
		return [2]Point{}, newError(IdenticalGreatCircles, "great circle intersection")
	}
	p := Point{v: x.Normalize()}
	return [2]Point{p, p.Antipode()}, nil
}

// Equal reports whether g and o describe the same set of points, regardless
// of orientation.
func (g GreatCircle) Equal(o GreatCircle) bool {
	return g.normal.Cross(o.normal).Norm() < VecLenIsZero
}

func (g GreatCircle) valid() bool {
	return g.normal.Norm2() > 0.5
}
