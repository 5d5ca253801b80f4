// Package planar provides exact segment and rectangle intersection tests in
// the 2D chart plane the sky view is projected onto.
package planar

import "github.com/golang/geo/r2"

// Segment is a straight line segment between two points. A zero-length
// segment is legal and behaves as a single point.
type Segment struct {
	Start r2.Point
	End   r2.Point
}

// Seg is shorthand for Segment{r2.Point{X: x1, Y: y1}, r2.Point{X: x2, Y: y2}}.
func Seg(x1, y1, x2, y2 float64) Segment {
	return Segment{Start: r2.Point{X: x1, Y: y1}, End: r2.Point{X: x2, Y: y2}}
}

// Direction returns End - Start.
func (s Segment) Direction() r2.Point {
	return s.End.Sub(s.Start)
}

// Rectangle is an axis-aligned rectangle.
type Rectangle struct {
	r r2.Rect
}

// NewRectangle returns the rectangle with opposite corners a and b, in any
// order.
func NewRectangle(a, b r2.Point) Rectangle {
	return Rectangle{r: r2.RectFromPoints(a, b)}
}

// Lo returns the lower-left corner.
func (r Rectangle) Lo() r2.Point { return r.r.Lo() }

// Hi returns the upper-right corner.
func (r Rectangle) Hi() r2.Point { return r.r.Hi() }

// Sides returns the four sides in order bottom, right, top, left, each
// running counter-clockwise from the lower-left corner.
func (r Rectangle) Sides() [4]Segment {
	v := r.r.Vertices()
	return [4]Segment{
		{Start: v[0], End: v[1]},
		{Start: v[1], End: v[2]},
		{Start: v[2], End: v[3]},
		{Start: v[3], End: v[0]},
	}
}

// ContainsPoint reports whether p lies inside r or on its border.
func (r Rectangle) ContainsPoint(p r2.Point) bool {
	return r.r.ContainsPoint(p)
}

// Overlaps reports whether any part of s is inside r: an endpoint is
// contained or s crosses a side.
func (r Rectangle) Overlaps(s Segment) bool {
	return r.ContainsPoint(s.Start) || r.ContainsPoint(s.End) || RectangleIntersectsSegment(r, s)
}

// determinants returns the denominator and the two numerators of the
// parametric intersection of a and b. The crossing point is at
// a.Start + N1/D·(a.End-a.Start) and b.Start + N2/D·(b.End-b.Start).
func determinants(a, b Segment) (d, n1, n2 float64) {
	da, db := a.Direction(), b.Direction()
	w := b.Start.Sub(a.Start)
	return da.Cross(db), w.Cross(db), w.Cross(da)
}

// SegmentsIntersect reports whether a and b share at least one point,
// endpoints included. Comparisons are exact; there is no tolerance.
//
// Collinear segments intersect only when their extents overlap.
func SegmentsIntersect(a, b Segment) bool {
	d, n1, n2 := determinants(a, b)
	if d == 0 {
		if n1 != 0 || n2 != 0 {
			return false // parallel, distinct lines
		}
		return collinearOverlap(a, b)
	}
	t, u := n1/d, n2/d
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// SegmentsIntersectLegacy is SegmentsIntersect with the historical collinear
// shortcut: any two segments on the same line are reported as intersecting,
// even when they are disjoint. Prefer SegmentsIntersect.
func SegmentsIntersectLegacy(a, b Segment) bool {
	d, n1, n2 := determinants(a, b)
	if d == 0 {
		return n1 == 0 && n2 == 0
	}
	t, u := n1/d, n2/d
	return t >= 0 && t <= 1 && u >= 0 && u <= 1
}

// collinearOverlap reports whether two segments known to lie on one line
// share a point. Both are projected onto the longer direction and their
// parameter ranges compared.
func collinearOverlap(a, b Segment) bool {
	dir := a.Direction()
	if db := b.Direction(); db.Norm() > dir.Norm() {
		dir = db
	}
	if dir.X == 0 && dir.Y == 0 {
		return a.Start == b.Start
	}
	a0, a1 := ordered(a.Start.Dot(dir), a.End.Dot(dir))
	b0, b1 := ordered(b.Start.Dot(dir), b.End.Dot(dir))
	return a0 <= b1 && b0 <= a1
}

func ordered(x, y float64) (float64, float64) {
	if x > y {
		return y, x
	}
	return x, y
}

// RectangleIntersectsSegment reports whether s touches any side of r. A
// segment lying wholly inside r touches no side and is not reported.
func RectangleIntersectsSegment(r Rectangle, s Segment) bool {
	for _, side := range r.Sides() {
		if SegmentsIntersect(side, s) {
			return true
		}
	}
	return false
}
