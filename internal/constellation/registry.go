package constellation

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/golang/geo/s1"

	"github.com/litescript/ls-skygeom/internal/sphere"
)

// Registry lookup errors.
var (
	ErrNotFound  = errors.New("point is not inside any constellation")
	ErrAmbiguous = errors.New("point is inside more than one constellation")
	ErrDuplicate = errors.New("duplicate constellation id")
)

// Entry is a boundary together with its prepared polygon.
type Entry struct {
	Boundary Boundary
	Polygon  *sphere.Polygon

	// Bounding cap used to skip polygons far from a query. Only valid when
	// hasCap is set.
	capCenter sphere.Point
	capRadius s1.Angle
	hasCap    bool
}

// ID returns the constellation abbreviation.
func (e *Entry) ID() string { return e.Boundary.ID }

// Name returns the constellation's full name.
func (e *Entry) Name() string { return e.Boundary.Name }

// mayContain reports whether p could be inside the entry's polygon.
func (e *Entry) mayContain(p sphere.Point) bool {
	if !e.hasCap {
		return true
	}
	return e.capCenter.Distance(p) <= e.capRadius+s1.Angle(sphere.GrazeEpsilon)
}

// Registry is an immutable, ordered set of constellation polygons. It is safe
// for concurrent use.
type Registry struct {
	entries []*Entry
	byID    map[string]*Entry
}

// NewRegistry builds polygons for every boundary. It fails on the first
// boundary that does not form a valid polygon or repeats an earlier ID.
func NewRegistry(boundaries []Boundary) (*Registry, error) {
	r := &Registry{
		entries: make([]*Entry, 0, len(boundaries)),
		byID:    make(map[string]*Entry, len(boundaries)),
	}
	for _, b := range boundaries {
		if _, ok := r.byID[b.ID]; ok {
			return nil, fmt.Errorf("%w: %q", ErrDuplicate, b.ID)
		}
		poly, err := b.Polygon()
		if err != nil {
			return nil, err
		}
		e := &Entry{Boundary: b, Polygon: poly}
		e.capCenter, e.capRadius, e.hasCap = poly.BoundingCap()
		r.entries = append(r.entries, e)
		r.byID[b.ID] = e
	}
	return r, nil
}

// Len returns the number of constellations.
func (r *Registry) Len() int {
	return len(r.entries)
}

// IDs returns the constellation IDs in sorted order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.entries))
	for _, e := range r.entries {
		ids = append(ids, e.ID())
	}
	sort.Strings(ids)
	return ids
}

// Get returns the entry with the given ID.
func (r *Registry) Get(id string) (*Entry, bool) {
	e, ok := r.byID[id]
	return e, ok
}

// All returns the entries in registration order.
func (r *Registry) All() []*Entry {
	return append([]*Entry(nil), r.entries...)
}

// Locate returns the single constellation containing p.
//
// A polygon whose containment test fails (p on its boundary, or every
// reference degenerate) is skipped. If no polygon contains p, Locate returns
// the first such failure, or ErrNotFound when there was none. More than one
// match yields ErrAmbiguous.
func (r *Registry) Locate(p sphere.Point) (*Entry, error) {
	var (
		matches  []*Entry
		firstErr error
	)
	for _, e := range r.entries {
		if !e.mayContain(p) {
			continue
		}
		inside, err := e.Polygon.ContainsPoint(p)
		if err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("%s: %w", e.ID(), err)
			}
			continue
		}
		if inside {
			matches = append(matches, e)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		if firstErr != nil {
			return nil, fmt.Errorf("locate %v: %w", p, firstErr)
		}
		return nil, ErrNotFound
	default:
		ids := make([]string, len(matches))
		for i, m := range matches {
			ids[i] = m.ID()
		}
		return nil, fmt.Errorf("%w: %s", ErrAmbiguous, strings.Join(ids, ", "))
	}
}
