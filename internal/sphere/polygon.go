package sphere

import (
	"fmt"
	"math"
	"strings"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

// Orientation tells which side of a polygon's boundary is its interior.
type Orientation int

const (
	// CounterClockwise polygons have their interior to the left of each
	// directed edge, seen from outside the sphere.
	CounterClockwise Orientation = iota
	// Clockwise polygons have their interior to the right of each edge.
	Clockwise
)

func (o Orientation) String() string {
	if o == Clockwise {
		return "cw"
	}
	return "ccw"
}

// ParseOrientation parses "ccw"/"counterclockwise" and "cw"/"clockwise".
// The empty string means counter-clockwise.
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ccw", "counterclockwise", "counter-clockwise":
		return CounterClockwise, nil
	case "cw", "clockwise":
		return Clockwise, nil
	default:
		return 0, fmt.Errorf("unknown orientation %q", s)
	}
}

// referenceState records whether a reference direction lies inside the
// polygon. Unusable references sit on, or too close to, the boundary.
type referenceState struct {
	usable bool
	inside bool
}

// Polygon is a closed loop of great-circle arcs joining consecutive vertices,
// the last vertex connecting back to the first. The polygon must be simple;
// self-intersections are not detected.
//
// A Polygon is immutable once built and safe for concurrent queries.
type Polygon struct {
	vertices    []Point
	edges       []Arc
	orientation Orientation
	refs        [numReferences]referenceState
}

// NewPolygon builds a polygon from at least three vertices. Every pair of
// consecutive vertices must form a valid Arc.
func NewPolygon(vertices []Point, orientation Orientation) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, newError(TooFewVertices, "new polygon")
	}
	p := &Polygon{
		vertices:    append([]Point(nil), vertices...),
		edges:       make([]Arc, len(vertices)),
		orientation: orientation,
	}
	for i := range p.vertices {
		e, err := NewArc(p.vertices[i], p.vertices[(i+1)%len(p.vertices)])
		if err != nil {
			return nil, newError(KindOf(err), fmt.Sprintf("polygon edge %d", i))
		}
		p.edges[i] = e
	}

	usable := false
	for r := Reference(0); r < numReferences; r++ {
		p.refs[r] = p.anchorReference(r)
		usable = usable || p.refs[r].usable
	}
	if !usable {
		return nil, newError(PoleAndPointNotNormal, "new polygon")
	}
	return p, nil
}

// anchorReference decides whether reference r is inside the polygon. It
// casts an arc from r to the midpoint of an edge: the point just short of
// that midpoint lies on r's side of the edge, whose status follows from the
// orientation, and every other edge crossed on the way flips it.
func (p *Polygon) anchorReference(r Reference) referenceState {
	rp := r.Point()
	if p.onBoundary(rp) {
		return referenceState{}
	}
	leftIsInside := p.orientation == CounterClockwise
	for i, e := range p.edges {
		side := e.circle.normal.Dot(rp.v)
		if side > -referenceClearance && side < referenceClearance {
			continue
		}
		ray, err := newReferenceArc(rp, e.Midpoint())
		if err != nil {
			continue
		}
		n, err := p.crossings(ray, i)
		if err != nil {
			continue
		}
		inside := (side > 0) == leftIsInside
		if n%2 == 1 {
			inside = !inside
		}
		return referenceState{usable: true, inside: inside}
	}
	return referenceState{}
}

// ContainsPoint reports whether q lies in the polygon's interior.
//
// An arc is cast from q to a reference direction and the edges it crosses
// are counted; an odd count means q and the reference are on opposite sides
// of the boundary. References are tried in ReferenceOrder(q) until one gives
// a clean count. A query on the boundary fails with PointOnBoundary; when
// every reference is degenerate the first failure is returned.
func (p *Polygon) ContainsPoint(q Point) (bool, error) {
	if p.onBoundary(q) {
		return false, newError(PointOnBoundary, "contains point")
	}
	var first error
	for _, r := range ReferenceOrder(q) {
		if !p.refs[r].usable {
			continue
		}
		inside, err := p.containsFrom(q, r)
		if err == nil {
			return inside, nil
		}
		if first == nil {
			first = err
		}
	}
	if first == nil {
		first = newError(PoleAndPointNotNormal, "contains point")
	}
	return false, first
}

// ContainsPointFrom is ContainsPoint restricted to a single reference, with no
// fallback.
func (p *Polygon) ContainsPointFrom(q Point, r Reference) (bool, error) {
	if r < 0 || r >= numReferences {
		return false, fmt.Errorf("sphere: unknown reference %d", int(r))
	}
	if p.onBoundary(q) {
		return false, newError(PointOnBoundary, "contains point")
	}
	if !p.refs[r].usable {
		return false, newError(ReferenceThroughVertex, "contains point from "+r.String())
	}
	return p.containsFrom(q, r)
}

func (p *Polygon) containsFrom(q Point, r Reference) (bool, error) {
	ray, err := newReferenceArc(q, r.Point())
	if err != nil {
		if r.IsPole() {
			return false, newError(PoleAndPointNotNormal, "contains point from "+r.String())
		}
		return false, newError(TooCloseOrAntipodalPoints, "contains point from "+r.String())
	}
	n, err := p.crossings(ray, -1)
	if err != nil {
		return false, err
	}
	return p.refs[r].inside != (n%2 == 1), nil
}

// crossings counts the edges, other than edge skip, that ray crosses.
func (p *Polygon) crossings(ray Arc, skip int) (int, error) {
	n := 0
	for i, e := range p.edges {
		if i == skip {
			continue
		}
		hit, err := rayCrossesEdge(ray, e)
		if err != nil {
			return 0, err
		}
		if hit {
			n++
		}
	}
	return n, nil
}

// rayCrossesEdge reports whether ray crosses edge at a single, well separated
// point. Touching a vertex or running along the edge is an error so the
// caller can pick another reference.
func rayCrossesEdge(ray, edge Arc) (bool, error) {
	if nearlyCoplanar(ray, edge) {
		if ray.spans(edge.start) || ray.spans(edge.end) || edge.spans(ray.start) || edge.spans(ray.end) {
			return false, newError(ReferenceThroughVertex, "count crossings")
		}
		return false, nil
	}
	candidates, err := ray.circle.Intersection(edge.circle)
	if err != nil {
		return false, err
	}
	for _, x := range candidates {
		if !ray.spans(x) {
			continue
		}
		if x.ApproxEqual(ray.start) && edge.spans(x) {
			return false, newError(PointOnBoundary, "count crossings")
		}
		if x.ApproxEqual(edge.start) || x.ApproxEqual(edge.end) {
			return false, newError(ReferenceThroughVertex, "count crossings")
		}
		if !edge.spans(x) {
			continue
		}
		if x.ApproxEqual(ray.end) {
			return false, newError(ReferenceThroughVertex, "count crossings")
		}
		return true, nil
	}
	return false, nil
}

// onBoundary reports whether q lies on an edge or within GrazeEpsilon of a
// vertex.
func (p *Polygon) onBoundary(q Point) bool {
	for _, v := range p.vertices {
		if v.ApproxEqual(q) {
			return true
		}
	}
	for _, e := range p.edges {
		if e.ContainsPoint(q) {
			return true
		}
	}
	return false
}

// Vertices returns a copy of the polygon's vertices.
func (p *Polygon) Vertices() []Point {
	return append([]Point(nil), p.vertices...)
}

// NumEdges returns the number of edges, equal to the number of vertices.
func (p *Polygon) NumEdges() int {
	return len(p.edges)
}

// Edge returns edge i, running from vertex i to vertex i+1 (mod n).
func (p *Polygon) Edge(i int) Arc {
	return p.edges[i]
}

// Orientation returns the polygon's declared orientation.
func (p *Polygon) Orientation() Orientation {
	return p.orientation
}

// Reversed returns a polygon with the vertex order reversed and the
// orientation flipped. It encloses the same interior.
func (p *Polygon) Reversed() *Polygon {
	n := len(p.vertices)
	r := &Polygon{
		vertices:    make([]Point, n),
		edges:       make([]Arc, n),
		orientation: Clockwise,
		refs:        p.refs,
	}
	if p.orientation == Clockwise {
		r.orientation = CounterClockwise
	}
	for i := range p.vertices {
		r.vertices[i] = p.vertices[n-1-i]
	}
	// Edge i of r runs from old vertex n-1-i to old vertex n-2-i, which is
	// old edge n-2-i reversed.
	for i := range r.edges {
		r.edges[i] = p.edges[(2*n-2-i)%n].Reversed()
	}
	return r
}

// Centroid returns the normalized mean of the vertices. It lies inside small
// polygons whose interior is the enclosed side, but is not guaranteed to be
// interior in general.
func (p *Polygon) Centroid() Point {
	var sum r3.Vector
	for _, v := range p.vertices {
		sum = sum.Add(v.v)
	}
	c, err := PointFromVector(sum)
	if err != nil {
		return p.vertices[0]
	}
	return c
}

// BoundingCap returns the centroid and the largest angular distance from it
// to any vertex. ok is false when the polygon's interior is not confined to
// that cap: the cap must be narrower than a hemisphere and the interior must
// not contain the centroid's antipode.
func (p *Polygon) BoundingCap() (center Point, radius s1.Angle, ok bool) {
	center = p.Centroid()
	for _, v := range p.vertices {
		if d := center.Distance(v); d > radius {
			radius = d
		}
	}
	for _, e := range p.edges {
		if d := center.Distance(e.Midpoint()); d > radius {
			radius = d
		}
	}
	inside, err := p.ContainsPoint(center.Antipode())
	return center, radius, err == nil && !inside && radius < s1.Angle(math.Pi/2)
}
