// Package slicer is the driver package: it wires sweep, plane, and stitch
// together into the sweep/intersect/stitch/classify loop, and owns the
// closed error taxonomy and configuration record every other package in
// this module is built around. It plays the orchestrator role world.go's
// World.Step plays for a physics pipeline - owning no geometry of its own
// but calling into the packages that do.
package slicer

import (
	"github.com/kiln3d/slicer/mesh"
	"github.com/kiln3d/slicer/plane"
	"github.com/kiln3d/slicer/stitch"
	"github.com/kiln3d/slicer/sweep"
)

// Slice runs the full slicing pipeline over scene, consuming it, and
// returns the ordered slice stack, bottom layer first. It fails fast on the
// first error; partial results are discarded.
func Slice(config SlicerConfig, scene *mesh.Scene) ([]Slice, error) {
	if scene.IsEmpty() {
		return nil, NewError(EmptyScene, "scene has no triangles")
	}

	facets := scene.Facets()
	filter := sweep.NewFacetFilter(facets)

	var slices []Slice
	for !filter.IsEmpty() {
		height := filter.CurrentHeight()

		intersecting := filter.IntersectingFacets()
		segments := make([]plane.Segment, len(intersecting))
		for i, bf := range intersecting {
			segments[i] = plane.IntersectFacet(bf.Facet.Vertices, height)
		}

		polygons, err := stitch.Stitch(segments)
		if err != nil {
			return nil, WrapStitchError(err)
		}

		slices = append(slices, Slice{
			Thickness: config.LayerHeight,
			Islands:   ClassifyHoles(polygons),
		})

		filter.AdvanceHeight(config.LayerHeight)
	}

	return slices, nil
}
