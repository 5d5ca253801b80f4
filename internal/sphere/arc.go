package sphere

import "github.com/golang/geo/s1"

// Arc is the shorter great-circle path between two distinct, non-antipodal
// points.
type Arc struct {
	start, end Point
	circle     GreatCircle
	length     s1.Angle
}

// NewArc returns the arc from p1 to p2.
func NewArc(p1, p2 Point) (Arc, error) {
	c, err := GreatCircleFromPoints(p1, p2)
	if err != nil {
		return Arc{}, err
	}
	return Arc{start: p1, end: p2, circle: c, length: p1.Distance(p2)}, nil
}

// Start returns the first endpoint.
func (a Arc) Start() Point { return a.start }

// End returns the second endpoint.
func (a Arc) End() Point { return a.end }

// Circle returns the great circle the arc lies on.
func (a Arc) Circle() GreatCircle { return a.circle }

// Length returns the angular length of the arc.
func (a Arc) Length() s1.Angle { return a.length }

// Midpoint returns the point halfway along the arc.
func (a Arc) Midpoint() Point { return midpoint(a.start, a.end) }

// Reversed returns the same arc traversed from End to Start.
func (a Arc) Reversed() Arc {
	return Arc{
		start:  a.end,
		end:    a.start,
		circle: GreatCircle{normal: a.circle.normal.Mul(-1)},
		length: a.length,
	}
}

// ContainsPoint reports whether p lies on the arc, endpoints included.
func (a Arc) ContainsPoint(p Point) bool {
	return a.circle.ContainsPoint(p) && a.spans(p)
}

// spans reports whether p, assumed to lie on the arc's circle, falls between
// the endpoints: its distances to both ends add up to the arc length.
func (a Arc) spans(p Point) bool {
	excess := a.start.Distance(p) + p.Distance(a.end) - a.length
	return excess.Radians() <= ArcEpsilon
}

// Intersects reports whether a and o share at least one point.
func (a Arc) Intersects(o Arc) (bool, error) {
	_, ok, err := a.Intersection(o)
	return ok, err
}

// Intersection returns a point shared by a and o. For arcs on the same great
// circle it returns an endpoint of one arc lying on the other, if any.
// The error is reserved for arcs that were never properly constructed.
func (a Arc) Intersection(o Arc) (Point, bool, error) {
	if !a.circle.valid() || !o.circle.valid() {
		return Point{}, false, newError(TooCloseOrAntipodalPoints, "arc intersection")
	}
	candidates, err := a.circle.Intersection(o.circle)
	if err != nil {
		// Same great circle: the arcs meet iff they overlap.
		for _, p := range [...]Point{o.start, o.end} {
			if a.spans(p) {
				return p, true, nil
			}
		}
		for _, p := range [...]Point{a.start, a.end} {
			if o.spans(p) {
				return p, true, nil
			}
		}
		return Point{}, false, nil
	}
	for _, p := range candidates {
		if a.spans(p) && o.spans(p) {
			return p, true, nil
		}
	}
	return Point{}, false, nil
}

// nearlyCoplanar reports whether the circles of a and o are too close to
// parallel for their intersection point to be located precisely.
func nearlyCoplanar(a, o Arc) bool {
	return a.circle.normal.Cross(o.circle.normal).Norm() < referenceClearance
}

// newReferenceArc builds a reference arc, demanding more separation between
// its endpoints than NewArc does.
func newReferenceArc(from, to Point) (Arc, error) {
	if from.v.Cross(to.v).Norm() < referenceClearance {
		return Arc{}, newError(TooCloseOrAntipodalPoints, "reference arc")
	}
	return NewArc(from, to)
}
