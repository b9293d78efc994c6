package svgpreview

import (
	"strings"
	"testing"

	"github.com/kiln3d/slicer/geom"
	"github.com/kiln3d/slicer/slicer"
)

func square(x0, y0, x1, y1 int64) geom.Polygon {
	return geom.Polygon{Vertices: []geom.Vector2D{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}, {X: x0, Y: y0},
	}}
}

func TestRenderStackOneDocumentPerSlice(t *testing.T) {
	slices := []slicer.Slice{
		{Thickness: 200, Islands: []slicer.SliceIsland{{Outline: square(0, 0, 1000, 1000)}}},
		{Thickness: 200, Islands: []slicer.SliceIsland{{Outline: square(0, 0, 1000, 1000)}}},
	}

	docs := RenderStack(slices)
	if len(docs) != 2 {
		t.Fatalf("expected 2 documents, got %d", len(docs))
	}
	for i, doc := range docs {
		if !strings.Contains(string(doc), "<svg") {
			t.Errorf("document %d missing <svg> tag", i)
		}
	}
}

func TestRenderStackDrawsOutlinesAndHoles(t *testing.T) {
	island := slicer.SliceIsland{
		Outline: square(0, 0, 1000, 1000),
		Holes:   []geom.Polygon{square(100, 100, 200, 200)},
	}
	slices := []slicer.Slice{{Thickness: 200, Islands: []slicer.SliceIsland{island}}}

	docs := RenderStack(slices)
	doc := string(docs[0])

	if strings.Count(doc, "polygon") != 2 {
		t.Errorf("expected 2 polygon elements (outline + hole), got %d", strings.Count(doc, "polygon"))
	}
	if !strings.Contains(doc, "fill:gray") {
		t.Error("expected outline to be filled gray")
	}
	if !strings.Contains(doc, "fill:white") {
		t.Error("expected hole to be filled white")
	}
}

func TestRenderStackEmptySliceProducesValidDocument(t *testing.T) {
	docs := RenderStack([]slicer.Slice{{Thickness: 200}})
	if len(docs) != 1 {
		t.Fatalf("expected 1 document, got %d", len(docs))
	}
	if !strings.Contains(string(docs[0]), "</svg>") {
		t.Error("expected a well-formed (closed) SVG document")
	}
}

func TestRenderStackScalesCoordinatesByMicronsPerUnit(t *testing.T) {
	slices := []slicer.Slice{
		{Thickness: 200, Islands: []slicer.SliceIsland{{Outline: square(0, 0, 2000, 3000)}}},
	}
	docs := RenderStack(slices)
	doc := string(docs[0])

	wantX := 2000 / MicronsPerUnit
	if !strings.Contains(doc, strings.TrimSpace(itoa(wantX))) {
		t.Errorf("expected scaled X coordinate %d to appear in document", wantX)
	}
}

func itoa(v int) string {
	if v == 0 {
		return "0"
	}
	neg := v < 0
	if neg {
		v = -v
	}
	var digits []byte
	for v > 0 {
		digits = append([]byte{byte('0' + v%10)}, digits...)
		v /= 10
	}
	if neg {
		digits = append([]byte{'-'}, digits...)
	}
	return string(digits)
}
