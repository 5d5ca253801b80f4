package sphere

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
)

func TestGreatCircleContainsDefiningPoints(t *testing.T) {
	pairs := [][2]Point{
		{PointFromDegrees(0, 0), PointFromDegrees(90, 0)},
		{PointFromDegrees(88.793, 7.407), PointFromDegrees(78.634, -8.202)},
		{PointFromDegrees(10, 80), PointFromDegrees(190, 80)},
		{PointFromDegrees(279.235, 38.784), PointFromDegrees(279.236, 38.784)},
		{PointFromDegrees(0, 45), PointFromDegrees(179, -44)},
	}

	for _, pr := range pairs {
		g, err := GreatCircleFromPoints(pr[0], pr[1])
		if err != nil {
			t.Fatalf("GreatCircleFromPoints(%v, %v): %v", pr[0], pr[1], err)
		}
		if !g.ContainsPoint(pr[0]) || !g.ContainsPoint(pr[1]) {
			t.Errorf("circle through %v and %v does not contain them", pr[0], pr[1])
		}
		if n := g.Normal().Norm(); math.Abs(n-1) > 1e-12 {
			t.Errorf("normal length = %v, want 1", n)
		}
	}
}

func TestGreatCircleDegeneratePoints(t *testing.T) {
	p := PointFromDegrees(101.287, -16.716)
	tests := []struct {
		name string
		a, b Point
	}{
		{"same point", p, p},
		{"antipodal", p, p.Antipode()},
		{"sub-epsilon apart", PointFromDegrees(10, 10), PointFromDegrees(10+1e-12, 10)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GreatCircleFromPoints(tt.a, tt.b)
			if !errors.Is(err, ErrTooCloseOrAntipodalPoints) {
				t.Fatalf("error = %v, want ErrTooCloseOrAntipodalPoints", err)
			}
			if KindOf(err) != TooCloseOrAntipodalPoints {
				t.Errorf("KindOf = %v", KindOf(err))
			}
			var se *Error
			if !errors.As(err, &se) || !se.Kind.Retryable() {
				t.Errorf("expected retryable *Error, got %#v", err)
			}
		})
	}
}

func TestGreatCircleFromNormal(t *testing.T) {
	g, err := GreatCircleFromNormal(r3.Vector{Z: 5})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !g.ContainsPoint(PointFromDegrees(123, 0)) {
		t.Error("equator should contain a point at dec 0")
	}
	if g.ContainsPoint(PointFromDegrees(123, 1)) {
		t.Error("equator should not contain a point at dec 1")
	}
	if _, err := GreatCircleFromNormal(r3.Vector{}); !errors.Is(err, ErrDegenerateVector) {
		t.Errorf("zero normal error = %v, want ErrDegenerateVector", err)
	}
}

func TestGreatCircleSide(t *testing.T) {
	// Travelling east along the equator, north is on the left.
	g, err := GreatCircleFromPoints(PointFromDegrees(0, 0), PointFromDegrees(10, 0))
	if err != nil {
		t.Fatal(err)
	}
	if s := g.Side(PointFromDegrees(5, 30)); s != 1 {
		t.Errorf("Side(north) = %d, want 1", s)
	}
	if s := g.Side(PointFromDegrees(5, -30)); s != -1 {
		t.Errorf("Side(south) = %d, want -1", s)
	}
	if s := g.Side(PointFromDegrees(200, 0)); s != 0 {
		t.Errorf("Side(on circle) = %d, want 0", s)
	}
}

func TestGreatCircleIntersection(t *testing.T) {
	equator, _ := GreatCircleFromPoints(PointFromDegrees(0, 0), PointFromDegrees(90, 0))
	meridian, _ := GreatCircleFromPoints(PointFromDegrees(0, 0), PointFromDegrees(0, 90))

	pts, err := equator.Intersection(meridian)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pts[0].Antipode().ApproxEqual(pts[1]) {
		t.Errorf("intersection points %v and %v are not antipodal", pts[0], pts[1])
	}
	a, b := PointFromDegrees(0, 0), PointFromDegrees(180, 0)
	if !(pts[0].ApproxEqual(a) && pts[1].ApproxEqual(b)) && !(pts[0].ApproxEqual(b) && pts[1].ApproxEqual(a)) {
		t.Errorf("intersection = %v, %v; want %v and %v", pts[0], pts[1], a, b)
	}
	for _, p := range pts {
		if !equator.ContainsPoint(p) || !meridian.ContainsPoint(p) {
			t.Errorf("%v is not on both circles", p)
		}
	}
}

func TestGreatCircleIntersectionIdentical(t *testing.T) {
	a, _ := GreatCircleFromPoints(PointFromDegrees(0, 0), PointFromDegrees(90, 0))
	b, _ := GreatCircleFromPoints(PointFromDegrees(200, 0), PointFromDegrees(250, 0))
	reversed, _ := GreatCircleFromPoints(PointFromDegrees(90, 0), PointFromDegrees(0, 0))

	for _, o := range []GreatCircle{a, b, reversed} {
		if _, err := a.Intersection(o); !errors.Is(err, ErrIdenticalGreatCircles) {
			t.Errorf("error = %v, want ErrIdenticalGreatCircles", err)
		}
		if !a.Equal(o) {
			t.Error("Equal should hold for coincident circles")
		}
	}
}
