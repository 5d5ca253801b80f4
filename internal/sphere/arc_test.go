package sphere

import (
	"errors"
	"math"
	"testing"
)

func mustArc(t *testing.T, lon1, lat1, lon2, lat2 float64) Arc {
	t.Helper()
	a, err := NewArc(PointFromDegrees(lon1, lat1), PointFromDegrees(lon2, lat2))
	if err != nil {
		t.Fatalf("NewArc(%v,%v -> %v,%v): %v", lon1, lat1, lon2, lat2, err)
	}
	return a
}

func TestNewArcRejectsDegenerateEndpoints(t *testing.T) {
	p := PointFromDegrees(250, 33)
	for _, q := range []Point{p, p.Antipode()} {
		if _, err := NewArc(p, q); !errors.Is(err, ErrTooCloseOrAntipodalPoints) {
			t.Errorf("NewArc(%v, %v) error = %v", p, q, err)
		}
	}
}

func TestArcLengthAndMidpoint(t *testing.T) {
	a := mustArc(t, 0, 0, 90, 0)
	if got := a.Length().Degrees(); math.Abs(got-90) > 1e-9 {
		t.Errorf("Length = %v°, want 90°", got)
	}
	if m := a.Midpoint(); !m.ApproxEqual(PointFromDegrees(45, 0)) {
		t.Errorf("Midpoint = %v, want (45°, 0°)", m)
	}

	b := mustArc(t, 350, 10, 10, 10)
	if lon, _ := b.Midpoint().Degrees(); math.Abs(lon) > 1e-9 && math.Abs(lon-360) > 1e-9 {
		t.Errorf("midpoint across RA 0 has lon %v, want 0", lon)
	}
}

func TestArcContainsPoint(t *testing.T) {
	a := mustArc(t, 10, 0, 40, 0)
	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"start", PointFromDegrees(10, 0), true},
		{"end", PointFromDegrees(40, 0), true},
		{"interior", PointFromDegrees(25, 0), true},
		{"before start", PointFromDegrees(5, 0), false},
		{"past end", PointFromDegrees(41, 0), false},
		{"other side of circle", PointFromDegrees(205, 0), false},
		{"off circle", PointFromDegrees(25, 0.001), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := a.ContainsPoint(tt.p); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestArcReversed(t *testing.T) {
	a := mustArc(t, 83.8, -5.4, 88.8, 7.4)
	r := a.Reversed()
	if r.Start() != a.End() || r.End() != a.Start() {
		t.Error("Reversed did not swap endpoints")
	}
	if r.Length() != a.Length() {
		t.Errorf("Reversed length %v != %v", r.Length(), a.Length())
	}
	if !r.Circle().Normal().Add(a.Circle().Normal()).ApproxEqual(r.Circle().Normal().Mul(0)) {
		t.Error("Reversed normal is not the negated normal")
	}
	if !r.Circle().Equal(a.Circle()) {
		t.Error("Reversed arc should lie on the same circle")
	}
}

func TestArcIntersection(t *testing.T) {
	tests := []struct {
		name string
		a, b [4]float64
		want bool
		at   *[2]float64
	}{
		{"crossing", [4]float64{0, 0, 20, 0}, [4]float64{10, -10, 10, 10}, true, &[2]float64{10, 0}},
		{"touching at endpoint", [4]float64{0, 0, 10, 0}, [4]float64{10, 0, 10, 10}, true, &[2]float64{10, 0}},
		{"T junction", [4]float64{0, 0, 20, 0}, [4]float64{10, 0, 10, 10}, true, &[2]float64{10, 0}},
		{"disjoint", [4]float64{0, 0, 10, 0}, [4]float64{20, -10, 20, 10}, false, nil},
		{"circles meet only on antipode", [4]float64{0, 0, 10, 0}, [4]float64{190, -10, 190, 10}, false, nil},
		{"short of crossing", [4]float64{0, 0, 20, 0}, [4]float64{10, 1, 10, 10}, false, nil},
		{"same circle overlapping", [4]float64{0, 0, 20, 0}, [4]float64{10, 0, 30, 0}, true, nil},
		{"same circle nested", [4]float64{0, 0, 30, 0}, [4]float64{10, 0, 20, 0}, true, nil},
		{"same circle disjoint", [4]float64{0, 0, 10, 0}, [4]float64{20, 0, 30, 0}, false, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustArc(t, tt.a[0], tt.a[1], tt.a[2], tt.a[3])
			b := mustArc(t, tt.b[0], tt.b[1], tt.b[2], tt.b[3])

			p, ok, err := a.Intersection(b)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if ok != tt.want {
				t.Fatalf("Intersection ok = %v, want %v", ok, tt.want)
			}
			if ok && !(a.ContainsPoint(p) && b.ContainsPoint(p)) {
				t.Errorf("intersection %v is not on both arcs", p)
			}
			if tt.at != nil && !p.ApproxEqual(PointFromDegrees(tt.at[0], tt.at[1])) {
				t.Errorf("intersection = %v, want (%v°, %v°)", p, tt.at[0], tt.at[1])
			}

			// Symmetric in its arguments.
			back, err := b.Intersects(a)
			if err != nil || back != ok {
				t.Errorf("b.Intersects(a) = %v, %v; want %v", back, err, ok)
			}
		})
	}
}

func TestArcIntersectionZeroValue(t *testing.T) {
	a := mustArc(t, 0, 0, 10, 0)
	if _, err := a.Intersects(Arc{}); !errors.Is(err, ErrTooCloseOrAntipodalPoints) {
		t.Errorf("error = %v, want ErrTooCloseOrAntipodalPoints", err)
	}
}
