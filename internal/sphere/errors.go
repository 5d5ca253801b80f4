package sphere

import "fmt"

// Kind identifies the class of a geometry failure. The set is closed: every
// error returned by this package is an *Error carrying one of these kinds.
type Kind int

const (
	// TooCloseOrAntipodalPoints means two points are (nearly) coincident or
	// antipodal, so no unique great circle passes through them.
	TooCloseOrAntipodalPoints Kind = iota + 1

	// IdenticalGreatCircles means two great circles coincide, so their pair
	// of intersection points is undefined.
	IdenticalGreatCircles

	// PoleAndPointNotNormal means the query point sits on (or opposite) a pole
	// used as containment reference, so the reference arc has no direction.
	PoleAndPointNotNormal

	// DegenerateVector means a vector was too short (or not finite) to be
	// normalized onto the sphere.
	DegenerateVector

	// TooFewVertices means a polygon was given fewer than three vertices.
	TooFewVertices

	// PointOnBoundary means the query point lies on a polygon edge or vertex.
	PointOnBoundary

	// ReferenceThroughVertex means the reference arc grazes a polygon vertex
	// or runs along an edge, so its crossings cannot be counted reliably.
	ReferenceThroughVertex
)

func (k Kind) String() string {
	switch k {
	case TooCloseOrAntipodalPoints:
		return "points too close or antipodal"
	case IdenticalGreatCircles:
		return "identical great circles"
	case PoleAndPointNotNormal:
		return "pole and point not normal"
	case DegenerateVector:
		return "degenerate vector"
	case TooFewVertices:
		return "too few vertices"
	case PointOnBoundary:
		return "point on boundary"
	case ReferenceThroughVertex:
		return "reference arc through vertex"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Retryable reports whether a query failing with this kind may succeed with
// an alternate reference direction or a slightly perturbed input.
func (k Kind) Retryable() bool {
	switch k {
	case TooCloseOrAntipodalPoints, PoleAndPointNotNormal, ReferenceThroughVertex:
		return true
	default:
		return false
	}
}

// Error is the error type returned by every fallible operation in this package.
type Error struct {
	Kind Kind
	Op   string // operation that failed, may be empty
}

func (e *Error) Error() string {
	if e.Op == "" {
		return "sphere: " + e.Kind.String()
	}
	return fmt.Sprintf("sphere: %s: %s", e.Op, e.Kind)
}

// Is matches the package sentinels by kind, so errors.Is(err,
// ErrPointOnBoundary) holds for any *Error of kind PointOnBoundary.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Kind == e.Kind
}

// Sentinels for errors.Is.
var (
	ErrTooCloseOrAntipodalPoints = &Error{Kind: TooCloseOrAntipodalPoints}
	ErrIdenticalGreatCircles     = &Error{Kind: IdenticalGreatCircles}
	ErrPoleAndPointNotNormal     = &Error{Kind: PoleAndPointNotNormal}
	ErrDegenerateVector          = &Error{Kind: DegenerateVector}
	ErrTooFewVertices            = &Error{Kind: TooFewVertices}
	ErrPointOnBoundary           = &Error{Kind: PointOnBoundary}
	ErrReferenceThroughVertex    = &Error{Kind: ReferenceThroughVertex}
)

func newError(kind Kind, op string) *Error {
	return &Error{Kind: kind, Op: op}
}

// KindOf returns the kind of err if it is (or wraps) an *Error, and 0 otherwise.
func KindOf(err error) Kind {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return 0
		}
		err = u.Unwrap()
	}
	return 0
}
