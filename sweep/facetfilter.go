// Package sweep implements the height-sorted facet filter: the sweep
// structure that maintains the set of triangles intersecting a horizontal
// plane as it advances upward, amortizing per-layer intersection cost.
//
// Sorting every facet by lower_z descending places still-to-come facets at
// the front of the list and already-relevant facets at the back. The
// "intersecting" suffix grows as the sweep advances; pruning it after each
// step keeps it from accumulating facets that have fallen entirely below
// the plane. Net per-layer cost is proportional to the active layer
// population, not to the total facet count - the same amortized-sweep
// shape as a broad-phase sweep-and-prune collision structure sorted along
// one axis.
package sweep

import (
	"sort"

	"github.com/kiln3d/slicer/mesh"
)

// BoundedFacet pairs a facet with its cached lower/upper z bounds. Once
// constructed the facet is immutable, so the cached bounds stay valid for
// the BoundedFacet's lifetime.
type BoundedFacet struct {
	Facet mesh.Facet
	lower int64
	upper int64
}

func newBoundedFacet(f mesh.Facet) BoundedFacet {
	return BoundedFacet{
		Facet: f,
		lower: f.LowerZBound(),
		upper: f.UpperZBound(),
	}
}

// LowerZ returns the cached lower z bound.
func (b BoundedFacet) LowerZ() int64 { return b.lower }

// UpperZ returns the cached upper z bound.
func (b BoundedFacet) UpperZ() int64 { return b.upper }

// FacetFilter is the sweep structure described in the package doc. It is
// constructed once from a fully collected set of facets (see NewFacetFilter)
// and mutated in place as the sweep plane advances.
type FacetFilter struct {
	facets        []BoundedFacet
	currentHeight int64
}

// NewFacetFilter wraps facets as BoundedFacets, sorts them by lower_z
// descending, and starts the sweep at the lowest lower_z across all facets.
// facets must be non-empty; callers (the slicer driver) guarantee this
// before construction - an empty scene is rejected earlier as EmptyScene.
func NewFacetFilter(facets []mesh.Facet) *FacetFilter {
	if len(facets) == 0 {
		panic("sweep: NewFacetFilter called with no facets")
	}

	bounded := make([]BoundedFacet, len(facets))
	startHeight := facets[0].LowerZBound()
	for i, f := range facets {
		bf := newBoundedFacet(f)
		bounded[i] = bf
		if bf.lower < startHeight {
			startHeight = bf.lower
		}
	}

	sort.Slice(bounded, func(i, j int) bool {
		return bounded[i].lower > bounded[j].lower
	})

	return &FacetFilter{
		facets:        bounded,
		currentHeight: startHeight,
	}
}

// CurrentHeight returns the plane z currently being processed.
func (ff *FacetFilter) CurrentHeight() int64 {
	return ff.currentHeight
}

// IsEmpty reports whether there are no more facets that could ever be
// reached by further sweeping.
func (ff *FacetFilter) IsEmpty() bool {
	return len(ff.facets) == 0
}

// IntersectingFacets returns the contiguous suffix of the sorted list whose
// lower_z < current height: the facets that straddle or touch the plane
// from below (lower_z < current_height <= upper_z). Because the list is
// sorted by lower_z descending, this suffix is found by locating, from the
// tail, the first element whose lower_z >= current_height; the returned
// slice is everything strictly past that element.
func (ff *FacetFilter) IntersectingFacets() []BoundedFacet {
	height := ff.currentHeight
	n := len(ff.facets)
	firstNotIncluded := -1
	for i := n - 1; i >= 0; i-- {
		if ff.facets[i].lower >= height {
			firstNotIncluded = i
			break
		}
	}
	if firstNotIncluded == -1 {
		return ff.facets
	}
	return ff.facets[firstNotIncluded+1:]
}

// AdvanceHeight increases the current height by delta (which must be
// non-negative - height only ever moves up) and drops every facet whose
// upper bound now lies below the new height.
func (ff *FacetFilter) AdvanceHeight(delta uint64) {
	ff.currentHeight += int64(delta)
	height := ff.currentHeight

	n := 0
	for _, f := range ff.facets {
		if f.upper >= height {
			ff.facets[n] = f
			n++
		}
	}
	ff.facets = ff.facets[:n]
}
