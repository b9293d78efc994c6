package slicer

import "github.com/kiln3d/slicer/geom"

// SliceIsland is one connected outline polygon within a layer, plus
// zero-or-more interior holes. Holes are populated by ClassifyHoles (see
// holes.go); the field is wired end-to-end into gcodegen and svgpreview
// rather than left unused.
type SliceIsland struct {
	Outline geom.Polygon
	Holes   []geom.Polygon
}

// Slice is one layer's cross-section: a thickness and its islands. An
// empty Islands list is legal and intentional - it preserves vertical
// indexing in the downstream G-code stage, so the driver never omits an
// empty slice.
type Slice struct {
	Thickness uint64
	Islands   []SliceIsland
}
