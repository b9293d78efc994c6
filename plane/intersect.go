// Package plane implements the plane-triangle intersection kernel: given a
// facet and a horizontal plane z = Z, it produces the line segment where the
// facet crosses the plane.
//
// This is the inner geometric kernel of the slicing pipeline and the one
// most sensitive to degeneracy. Two properties matter more than anything
// else here:
//
//  1. Order-independence: the same edge, shared by two adjacent facets in a
//     watertight mesh, must produce the identical intersection point
//     regardless of which facet's vertex order is used to compute it. This
//     is what lets the stitcher (package stitch) match segment endpoints by
//     exact integer equality instead of a fuzzy epsilon.
//  2. Vertex-on-plane handling: when a facet vertex lies exactly on the
//     plane, the naive per-edge interpolation would record it twice (once
//     from each adjacent edge), producing a zero-length phantom segment.
package plane

import (
	"github.com/kiln3d/slicer/geom"
)

// Zinterpolate intersects the line segment a-b with the plane z = Z and
// returns the 2D intersection point, or ok=false if a-b doesn't cross the
// plane.
//
// Argument order is canonicalized first via geom.PseudoLess so that
// Zinterpolate(a, b, Z) and Zinterpolate(b, a, Z) always agree - required
// so two facets sharing an edge compute byte-identical endpoints.
func Zinterpolate(a, b geom.Vector3D, z int64) (geom.Vector2D, bool) {
	if geom.PseudoLess(b, a) {
		a, b = b, a
	}

	if a.Z == b.Z {
		// Parallel to the plane. Even if both lie exactly on it, reject:
		// the triangle's other two edges supply the two real intersection
		// points, and counting this edge too would double them up.
		return geom.Vector2D{}, false
	}
	if a.Z == z {
		return geom.Vector2D{X: a.X, Y: a.Y}, true
	}
	if b.Z == z {
		return geom.Vector2D{X: b.X, Y: b.Y}, true
	}

	aBelow := a.Z < z
	bBelow := b.Z < z
	if aBelow == bBelow {
		// Both strictly on the same side of the plane.
		return geom.Vector2D{}, false
	}

	t := float64(z-a.Z) / float64(b.Z-a.Z)
	x := a.X + int64(float64(b.X-a.X)*t)
	y := a.Y + int64(float64(b.Y-a.Y)*t)
	return geom.Vector2D{X: x, Y: y}, true
}

// Segment is the ordered pair of points where a facet crosses the plane.
type Segment struct {
	P0, P1 geom.Vector2D
}

// IntersectFacet computes the line segment where facet crosses the plane
// z = Z. The caller must only pass facets already known to intersect the
// plane: every facet returned by sweep.FacetFilter.IntersectingFacets
// satisfies lower_z < Z <= upper_z. IntersectFacet panics if the facet does
// not yield exactly two points, since that indicates either a bug in this
// routine or a malformed, non-manifold mesh - a programmer invariant, not a
// recoverable error.
func IntersectFacet(vertices [3]geom.Vector3D, z int64) Segment {
	edges := [3][2]geom.Vector3D{
		{vertices[0], vertices[1]},
		{vertices[0], vertices[2]},
		{vertices[1], vertices[2]},
	}

	var points [2]geom.Vector2D
	count := 0
	vertexOnPlaneSeen := false

	for _, edge := range edges {
		p, ok := Zinterpolate(edge[0], edge[1], z)
		if !ok {
			continue
		}

		fromVertexOnPlane := edge[0].Z == z || edge[1].Z == z
		if fromVertexOnPlane {
			if vertexOnPlaneSeen {
				// A middle vertex exactly on the plane appears in two
				// edges; the first occurrence already recorded it. The
				// remaining vertex is guaranteed to lie strictly on one
				// side, so exactly one further real crossing exists.
				continue
			}
			vertexOnPlaneSeen = true
		}

		if count == 2 {
			panic("plane: facet produced more than two intersection points")
		}
		points[count] = p
		count++
	}

	if count != 2 {
		panic("plane: facet did not produce exactly two intersection points")
	}

	return Segment{P0: points[0], P1: points[1]}
}
