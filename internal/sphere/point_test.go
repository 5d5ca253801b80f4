package sphere

import (
	"errors"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"github.com/golang/geo/s1"
)

func TestPointRoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		lon, lat float64
	}{
		{"origin", 0, 0},
		{"Betelgeuse", 88.793, 7.407},
		{"Sirius", 101.287, -16.716},
		{"Polaris", 37.954, 89.264},
		{"Acrux", 186.650, -63.099},
		{"near 360", 359.999, 12.5},
		{"deep south", 317.2, -88.96},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := PointFromDegrees(tt.lon, tt.lat)
			if !p.IsValid() {
				t.Fatalf("point %v is not unit length: |v|=%v", p, p.Vector().Norm())
			}
			lon, lat := p.Degrees()
			if math.Abs(lon-tt.lon) > 1e-9 {
				t.Errorf("lon = %v, want %v", lon, tt.lon)
			}
			if math.Abs(lat-tt.lat) > 1e-9 {
				t.Errorf("lat = %v, want %v", lat, tt.lat)
			}
		})
	}
}

func TestPointLongitudeNormalized(t *testing.T) {
	p := PointFromDegrees(-90, 10)
	if lon := p.Lon().Degrees(); math.Abs(lon-270) > 1e-9 {
		t.Errorf("lon = %v, want 270", lon)
	}
	q := PointFromDegrees(450, 0)
	if lon := q.Lon().Degrees(); math.Abs(lon-90) > 1e-9 {
		t.Errorf("lon = %v, want 90", lon)
	}
}

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want float64 // degrees
	}{
		{"same point", PointFromDegrees(123.4, -56.7), PointFromDegrees(123.4, -56.7), 0},
		{"quarter along equator", PointFromDegrees(0, 0), PointFromDegrees(90, 0), 90},
		{"equator to pole", PointFromDegrees(45, 0), PointFromDegrees(0, 90), 90},
		{"antipodes", PointFromDegrees(10, 20), PointFromDegrees(190, -20), 180},
		{"one degree of dec", PointFromDegrees(200, 30), PointFromDegrees(200, 31), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.a.Distance(tt.b).Degrees()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Distance = %v°, want %v°", got, tt.want)
			}
			if back := tt.b.Distance(tt.a).Degrees(); math.Abs(back-got) > 1e-12 {
				t.Errorf("Distance not symmetric: %v vs %v", got, back)
			}
		})
	}
}

func TestPointDistanceToItselfIsZero(t *testing.T) {
	for lon := 0.0; lon < 360; lon += 37 {
		for lat := -89.0; lat <= 89; lat += 22 {
			p := PointFromDegrees(lon, lat)
			if d := p.Distance(p); d != 0 {
				t.Errorf("Distance(%v, itself) = %v, want 0", p, d)
			}
		}
	}
}

func TestPointFromVector(t *testing.T) {
	p, err := PointFromVector(r3.Vector{X: 3, Y: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v := p.Vector(); math.Abs(v.X-0.6) > 1e-12 || math.Abs(v.Y-0.8) > 1e-12 || v.Z != 0 {
		t.Errorf("vector = %v, want (0.6, 0.8, 0)", p.Vector())
	}

	bad := []r3.Vector{
		{},
		{X: 1e-12},
		{X: math.NaN(), Y: 1},
		{Z: math.Inf(1)},
	}
	for _, v := range bad {
		if _, err := PointFromVector(v); !errors.Is(err, ErrDegenerateVector) {
			t.Errorf("PointFromVector(%v) error = %v, want ErrDegenerateVector", v, err)
		}
	}
}

func TestPointAntipode(t *testing.T) {
	p := PointFromDegrees(30, 40)
	a := p.Antipode()
	if d := p.Distance(a); math.Abs(d.Radians()-math.Pi) > 1e-12 {
		t.Errorf("distance to antipode = %v, want π", d)
	}
	lon, lat := a.Degrees()
	if math.Abs(lon-210) > 1e-9 || math.Abs(lat+40) > 1e-9 {
		t.Errorf("antipode = (%v, %v), want (210, -40)", lon, lat)
	}
}

func TestPointFromAnglesMatchesDegrees(t *testing.T) {
	a := PointFromAngles(s1.Angle(math.Pi/3), s1.Angle(-math.Pi/7))
	b := PointFromDegrees(60, -180.0/7)
	if !a.ApproxEqual(b) {
		t.Errorf("%v != %v", a, b)
	}
}
