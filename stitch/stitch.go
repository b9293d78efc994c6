// Package stitch reconstructs closed polygons from the unordered pool of
// line segments a layer's intersected facets produce (see package plane).
//
// A watertight mesh crossed by a plane yields segments whose endpoints pair
// up exactly: every segment shares each of its two endpoints with exactly
// one other segment in the pool. Stitching greedily walks that pairing,
// starting from an arbitrary segment and repeatedly looking up the segment
// whose endpoint matches the current open end, until the walk returns to
// its own start vertex. This is the same "track occurrence, detect the
// unmatched/mismatched case" shape as epa/polytope.go's EdgeEntry boundary-
// edge detection, which normalizes edges A<B and counts occurrences to find
// the polytope's silhouette; here the matching key is a bare endpoint
// rather than a normalized edge, and a mismatch means the mesh isn't
// watertight rather than indicating a polytope face.
package stitch

import (
	"github.com/kiln3d/slicer/geom"
	"github.com/kiln3d/slicer/plane"
)

// ErrOpenStitchPolygon reports that the segment pool could not be closed
// into a polygon: either fewer than three segments remained (a closed loop
// needs at least three edges) or the walk reached an open end with no
// remaining segment sharing that endpoint. Package slicer wraps this into
// its own closed error taxonomy (slicer.Error{Kind: OpenStitchPolygon});
// stitch has no dependency on slicer, so it defines its own sentinel here.
type ErrOpenStitchPolygon struct {
	Reason string
}

func (e *ErrOpenStitchPolygon) Error() string {
	return "stitch: open polygon: " + e.Reason
}

// Stitch consumes segments (the pool need not be in any particular order,
// and is not mutated - a local working copy is made) and returns every
// closed polygon it can walk out of the pool. It returns ErrOpenStitchPolygon
// as soon as any walk fails to close: a single malformed loop fails the
// whole slicing operation.
func Stitch(segments []plane.Segment) ([]geom.Polygon, error) {
	pool := make([]plane.Segment, len(segments))
	copy(pool, segments)

	var polygons []geom.Polygon
	for len(pool) > 0 {
		polygon, remaining, err := stitchNext(pool)
		if err != nil {
			return nil, err
		}
		polygons = append(polygons, polygon)
		pool = remaining
	}
	return polygons, nil
}

// stitchNext walks one closed loop out of pool, returning the polygon and
// the segments left over for the next call. pool must be non-empty; the
// caller (Stitch) only calls it while segments remain.
func stitchNext(pool []plane.Segment) (geom.Polygon, []plane.Segment, error) {
	if len(pool) < 3 {
		return geom.Polygon{}, nil, &ErrOpenStitchPolygon{Reason: "fewer than three segments remain in the pool"}
	}

	first := pool[0]
	pool = removeAt(pool, 0)

	start := first.P0
	current := first.P1
	builder := geom.NewPolygonBuilder(start)

	for current != start {
		idx, fromP1 := findMatch(pool, current)
		if idx < 0 {
			return geom.Polygon{}, nil, &ErrOpenStitchPolygon{Reason: "no remaining segment matches the open end"}
		}

		seg := pool[idx]
		pool = removeAt(pool, idx)

		var next geom.Vector2D
		if fromP1 {
			next = seg.P0
		} else {
			next = seg.P1
		}

		builder.Append(current)
		current = next
	}

	return builder.Close(), pool, nil
}

// findMatch looks for a segment in pool with an endpoint exactly equal to
// target. It returns the segment's index and whether the match was on
// that segment's P1 (in which case P0 is the far end to continue from) or
// P0 (in which case P1 is the far end).
func findMatch(pool []plane.Segment, target geom.Vector2D) (index int, matchedP1 bool) {
	for i, seg := range pool {
		if seg.P1 == target {
			return i, true
		}
		if seg.P0 == target {
			return i, false
		}
	}
	return -1, false
}

// removeAt removes the element at i from segs without preserving order,
// via swap-with-last - the same removal pattern epa/polytope.go's
// removeVisibleFaces uses.
func removeAt(segs []plane.Segment, i int) []plane.Segment {
	last := len(segs) - 1
	segs[i] = segs[last]
	return segs[:last]
}
