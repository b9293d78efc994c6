package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/kiln3d/slicer/plane"
	"github.com/kiln3d/slicer/slicer"
	"github.com/kiln3d/slicer/stitch"
)

// SliceConcurrently slices layerCount layer heights starting at index's
// lower bound and spaced by config.LayerHeight, fanning out one goroutine
// per layer via errgroup.Group. Each goroutine queries the index, runs
// plane.IntersectFacet and stitch.Stitch independently of every other
// layer, and writes into its own slot of the preallocated result slice, so
// results land in ascending-height order regardless of completion order -
// the same bottom-to-top order slicer.Slice produces serially. The first
// layer error is returned once every goroutine has finished; the other
// layers are not cancelled when one fails. slicer.Slice remains the default entry point and the one that exercises
// every failure mode in isolation.
func SliceConcurrently(config slicer.SlicerConfig, index *Index, layerCount int) ([]slicer.Slice, error) {
	slices := make([]slicer.Slice, layerCount)
	lowerZ, _ := index.Bounds()

	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < layerCount; i++ {
		i := i
		g.Go(func() error {
			height := lowerZ + int64(i)*int64(config.LayerHeight)
			intersecting := index.IntersectingFacets(height)

			segments := make([]plane.Segment, len(intersecting))
			for j, f := range intersecting {
				segments[j] = plane.IntersectFacet(f.Vertices, height)
			}

			polygons, err := stitch.Stitch(segments)
			if err != nil {
				return slicer.WrapStitchError(err)
			}

			slices[i] = slicer.Slice{
				Thickness: config.LayerHeight,
				Islands:   slicer.ClassifyHoles(polygons),
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices, nil
}
