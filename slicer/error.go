package slicer

import "github.com/kiln3d/slicer/stitch"

// ErrorKind closes the slicing core's error taxonomy over exactly three
// kinds. Tagged variants over a concrete struct avoid reaching for package-
// level sentinel error values.
type ErrorKind int

const (
	// EmptyScene: the driver was invoked with no triangles.
	EmptyScene ErrorKind = iota
	// OpenStitchPolygon: the stitcher could not close a loop.
	OpenStitchPolygon
	// MeshFileParse: malformed input from the mesh parser. Never raised by
	// this package directly; meshio wraps its own failures with this kind.
	MeshFileParse
)

func (k ErrorKind) String() string {
	switch k {
	case EmptyScene:
		return "EmptyScene"
	case OpenStitchPolygon:
		return "OpenStitchPolygon"
	case MeshFileParse:
		return "MeshFileParse"
	default:
		return "Unknown"
	}
}

// Error is the concrete error type for every failure the slicing core (and
// its meshio collaborator) can produce. Kind lets callers switch on cause
// via Error.Kind() without depending on string matching or sentinel values.
type Error struct {
	kind ErrorKind
	msg  string
}

// NewError builds an Error of the given kind with a human-readable message.
func NewError(kind ErrorKind, msg string) *Error {
	return &Error{kind: kind, msg: msg}
}

func (e *Error) Error() string {
	return e.kind.String() + ": " + e.msg
}

// Kind reports which of the closed taxonomy this error belongs to.
func (e *Error) Kind() ErrorKind {
	return e.kind
}

// WrapStitchError maps the stitch package's own error into this package's
// closed taxonomy; stitch has no dependency on slicer (to avoid an import
// cycle, since slicer depends on stitch), so it defines its own error type
// which we translate at the boundary. Exported so parallel.SliceConcurrently
// can apply the same translation its per-layer goroutines need.
func WrapStitchError(err error) *Error {
	if openErr, ok := err.(*stitch.ErrOpenStitchPolygon); ok {
		return NewError(OpenStitchPolygon, openErr.Reason)
	}
	return NewError(OpenStitchPolygon, err.Error())
}
