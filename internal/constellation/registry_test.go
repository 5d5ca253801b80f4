package constellation

import (
	"errors"
	"testing"

	"github.com/litescript/ls-skygeom/internal/astro"
	"github.com/litescript/ls-skygeom/internal/sphere"
)

func defaultRegistry(t *testing.T) *Registry {
	t.Helper()
	reg, err := NewRegistry(DefaultBoundaries())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}
	return reg
}

func TestNewRegistry(t *testing.T) {
	reg := defaultRegistry(t)
	if reg.Len() != 8 {
		t.Errorf("Len() = %d, want 8", reg.Len())
	}
	ids := reg.IDs()
	for i := 1; i < len(ids); i++ {
		if ids[i-1] >= ids[i] {
			t.Errorf("IDs not sorted: %v", ids)
		}
	}
	e, ok := reg.Get("Cru")
	if !ok || e.Name() != "Crux" {
		t.Errorf("Get(Cru) = %v, %v", e, ok)
	}
	if _, ok := reg.Get("Dra"); ok {
		t.Error("Get(Dra) should fail")
	}
	if all := reg.All(); len(all) != reg.Len() || all[0].ID() != "Ori" {
		t.Error("All() should return entries in registration order")
	}
	for _, e := range reg.All() {
		if !e.hasCap {
			t.Errorf("%s has no bounding cap", e.ID())
		}
	}
}

func TestNewRegistryDuplicate(t *testing.T) {
	b := DefaultBoundaries()
	_, err := NewRegistry(append(b, b[0]))
	if !errors.Is(err, ErrDuplicate) {
		t.Errorf("error = %v, want ErrDuplicate", err)
	}
}

func TestNewRegistryInvalidBoundary(t *testing.T) {
	_, err := NewRegistry([]Boundary{{ID: "Bad", Vertices: []Vertex{{0, 0}, {1, 1}}}})
	if !errors.Is(err, sphere.ErrTooFewVertices) {
		t.Errorf("error = %v, want ErrTooFewVertices", err)
	}
}

func TestLocateCatalogStars(t *testing.T) {
	reg := defaultRegistry(t)
	for _, s := range astro.DefaultStarCatalog().Stars {
		t.Run(s.Name, func(t *testing.T) {
			e, err := reg.Locate(s.Point())
			if _, covered := reg.Get(s.Con); !covered {
				if !errors.Is(err, ErrNotFound) {
					t.Errorf("Locate = %v, %v; want ErrNotFound", e, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Locate: %v", err)
			}
			if e.ID() != s.Con {
				t.Errorf("Locate = %s, want %s", e.ID(), s.Con)
			}
		})
	}
}

func TestLocatePoles(t *testing.T) {
	reg := defaultRegistry(t)
	tests := []struct {
		dec  float64
		want string
	}{
		{90, "UMi"},
		{-90, "Oct"},
	}
	for _, tt := range tests {
		e, err := reg.Locate(sphere.PointFromDegrees(0, tt.dec))
		if err != nil {
			t.Fatalf("Locate(dec %v): %v", tt.dec, err)
		}
		if e.ID() != tt.want {
			t.Errorf("Locate(dec %v) = %s, want %s", tt.dec, e.ID(), tt.want)
		}
	}
}

func TestLocateOnBoundary(t *testing.T) {
	reg := defaultRegistry(t)
	// The western side of the Orion box runs along RA 73.
	_, err := reg.Locate(sphere.PointFromDegrees(73, 5))
	if !errors.Is(err, sphere.ErrPointOnBoundary) {
		t.Fatalf("error = %v, want ErrPointOnBoundary", err)
	}
	if errors.Is(err, ErrNotFound) {
		t.Error("boundary error should not also be ErrNotFound")
	}
}

func TestLocateAmbiguous(t *testing.T) {
	reg, err := NewRegistry([]Boundary{
		{ID: "A", Vertices: raDecBox(10, 30, 0, 20)},
		{ID: "B", Vertices: raDecBox(20, 40, 10, 30)},
	})
	if err != nil {
		t.Fatal(err)
	}

	_, err = reg.Locate(sphere.PointFromDegrees(25.3, 15.1))
	if !errors.Is(err, ErrAmbiguous) {
		t.Errorf("overlap: error = %v, want ErrAmbiguous", err)
	}
	e, err := reg.Locate(sphere.PointFromDegrees(12.2, 5.1))
	if err != nil || e.ID() != "A" {
		t.Errorf("A only: Locate = %v, %v", e, err)
	}
	e, err = reg.Locate(sphere.PointFromDegrees(37.7, 25.6))
	if err != nil || e.ID() != "B" {
		t.Errorf("B only: Locate = %v, %v", e, err)
	}
}

func TestLocateConcurrent(t *testing.T) {
	reg := defaultRegistry(t)
	stars := astro.DefaultStarCatalog().Stars
	done := make(chan error, 4)
	for w := 0; w < 4; w++ {
		go func() {
			for _, s := range stars {
				e, err := reg.Locate(s.Point())
				if err == nil && e.ID() != s.Con {
					done <- errors.New(s.Name + " misclassified")
					return
				}
			}
			done <- nil
		}()
	}
	for w := 0; w < 4; w++ {
		if err := <-done; err != nil {
			t.Error(err)
		}
	}
}
