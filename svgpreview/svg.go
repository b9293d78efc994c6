// Package svgpreview renders a slice stack to one SVG cross-section document
// per slice, using github.com/ajstarks/svgo. It generalizes krasin-steel's
// `slice` subcommand - which hand-writes a single plane-cut's outline
// directly as SVG tags via fmt.Fprintf - to a whole layer stack, and uses
// svgo's Polygon call instead of hand-rolling path data.
package svgpreview

import (
	"bytes"

	svg "github.com/ajstarks/svgo"

	"github.com/kiln3d/slicer/geom"
	"github.com/kiln3d/slicer/slicer"
)

// MicronsPerUnit scales internal microns down to SVG user units, the same
// "0.01mm per unit" choice krasin-steel's slice command makes, adapted to
// this core's micron (not nanometer) internal unit: 10 microns per unit.
const MicronsPerUnit = 10

// RenderStack renders every slice in slices to its own SVG document, bottom
// layer first. Every document has the same size, a box from the origin to
// the largest outline X and Y across all slices, so the documents line up if
// viewed side by side; the box is not shifted for negative coordinates.
func RenderStack(slices []slicer.Slice) [][]byte {
	width, height := stackBounds(slices)
	docs := make([][]byte, len(slices))
	for i, s := range slices {
		var buf bytes.Buffer
		renderSlice(&buf, s, width, height)
		docs[i] = buf.Bytes()
	}
	return docs
}

func stackBounds(slices []slicer.Slice) (width, height int) {
	var maxX, maxY int64
	for _, s := range slices {
		for _, island := range s.Islands {
			for _, v := range island.Outline.Vertices {
				maxX, maxY = maxInt64(maxX, v.X), maxInt64(maxY, v.Y)
			}
		}
	}
	return int(maxX/MicronsPerUnit) + 1, int(maxY/MicronsPerUnit) + 1
}

func maxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// renderSlice writes one SVG document for slice: every island's outline
// filled gray, and each hole punched out in white to show the cut-out,
// mirroring krasin-steel slice's gray-fill/black-stroke style.
func renderSlice(buf *bytes.Buffer, slice slicer.Slice, width, height int) {
	canvas := svg.New(buf)
	canvas.Start(width, height)
	canvas.Gstyle("stroke:black;stroke-width:1")

	for _, island := range slice.Islands {
		drawPolygon(canvas, island.Outline, "gray")
		for _, hole := range island.Holes {
			drawPolygon(canvas, hole, "white")
		}
	}

	canvas.Gend()
	canvas.End()
}

func drawPolygon(canvas *svg.SVG, polygon geom.Polygon, fill string) {
	n := len(polygon.Vertices)
	if n == 0 {
		return
	}
	xs := make([]int, n)
	ys := make([]int, n)
	for i, v := range polygon.Vertices {
		xs[i] = int(v.X / MicronsPerUnit)
		ys[i] = int(v.Y / MicronsPerUnit)
	}
	canvas.Polygon(xs, ys, "fill:"+fill)
}
