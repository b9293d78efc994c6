// Package parallel provides an optional concurrent alternative to
// slicer.Slice. The serial driver is deliberately single-threaded because
// sweep.FacetFilter's active set only makes sense read sequentially from
// bottom to top; the structural change that makes per-layer concurrency
// safe is a reverse index on each facet's height interval, so a query for
// an arbitrary layer no longer depends on having swept every layer below
// it first. Index builds that reverse index with a one-dimensional
// github.com/dhconnelly/rtreego.Rtree, and SliceConcurrently fans one
// goroutine per queried layer out over it via golang.org/x/sync/errgroup.
package parallel

import (
	"github.com/dhconnelly/rtreego"

	"github.com/kiln3d/slicer/mesh"
)

// facetEntry adapts a mesh.Facet to rtreego.Spatial by exposing its
// [lower_z, upper_z] height interval as a one-dimensional bounding box.
type facetEntry struct {
	facet mesh.Facet
}

func (e facetEntry) Bounds() *rtreego.Rect {
	lower := float64(e.facet.LowerZBound())
	length := float64(e.facet.UpperZBound() - e.facet.LowerZBound())
	if length <= 0 {
		length = 1e-6
	}
	rect, err := rtreego.NewRect(rtreego.Point{lower}, []float64{length})
	if err != nil {
		// NewRect only errors on a non-positive length, which the guard
		// above already rules out.
		panic(err)
	}
	return rect
}

const (
	minBranchFactor = 25
	maxBranchFactor = 50
)

// Index is a one-dimensional reverse index over a facet list's height
// intervals.
type Index struct {
	tree   *rtreego.Rtree
	lowerZ int64
	upperZ int64
}

// NewIndex builds the reverse index over facets, which must be non-empty.
func NewIndex(facets []mesh.Facet) *Index {
	tree := rtreego.NewTree(1, minBranchFactor, maxBranchFactor)
	lowerZ, upperZ := facets[0].LowerZBound(), facets[0].UpperZBound()
	for _, f := range facets {
		tree.Insert(facetEntry{facet: f})
		if z := f.LowerZBound(); z < lowerZ {
			lowerZ = z
		}
		if z := f.UpperZBound(); z > upperZ {
			upperZ = z
		}
	}
	return &Index{tree: tree, lowerZ: lowerZ, upperZ: upperZ}
}

// Bounds returns the full height range spanned by the indexed facets.
func (idx *Index) Bounds() (lowerZ, upperZ int64) {
	return idx.lowerZ, idx.upperZ
}

// IntersectingFacets returns every facet whose interval satisfies
// lower_z < height <= upper_z - the identical predicate
// sweep.FacetFilter.IntersectingFacets applies, re-derived here against an
// arbitrary query height instead of a monotonically advancing one. The
// R-tree query only narrows the candidate set; the exact predicate is
// always re-checked since a one-dimensional bounding rect can't by itself
// express the half-open comparison.
func (idx *Index) IntersectingFacets(height int64) []mesh.Facet {
	queryRect, err := rtreego.NewRect(rtreego.Point{float64(height) - 1}, []float64{2})
	if err != nil {
		panic(err)
	}
	candidates := idx.tree.SearchIntersect(queryRect)

	facets := make([]mesh.Facet, 0, len(candidates))
	for _, c := range candidates {
		entry := c.(facetEntry)
		if entry.facet.LowerZBound() < height && height <= entry.facet.UpperZBound() {
			facets = append(facets, entry.facet)
		}
	}
	return facets
}
