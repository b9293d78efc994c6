package parallel

import (
	"testing"

	"github.com/kiln3d/slicer/geom"
	"github.com/kiln3d/slicer/mesh"
	"github.com/kiln3d/slicer/slicer"
)

func tetrahedron() []mesh.Facet {
	base0 := geom.Vector3D{X: 0, Y: 0, Z: 0}
	base1 := geom.Vector3D{X: 10000, Y: 0, Z: 0}
	base2 := geom.Vector3D{X: 10000, Y: 10000, Z: 0}
	base3 := geom.Vector3D{X: 0, Y: 10000, Z: 0}
	apex := geom.Vector3D{X: 5000, Y: 5000, Z: 10000}

	return []mesh.Facet{
		mesh.NewFacet(base0, base1, base3),
		mesh.NewFacet(base1, base2, base3),
		mesh.NewFacet(base0, base1, apex),
		mesh.NewFacet(base1, base2, apex),
		mesh.NewFacet(base2, base3, apex),
		mesh.NewFacet(base3, base0, apex),
	}
}

func TestSliceConcurrentlyMatchesSerialSlice(t *testing.T) {
	config := slicer.SlicerConfig{LayerHeight: 3000}

	facets := tetrahedron()
	serialScene := mesh.NewScene()
	serialScene.AddMesh(mesh.NewMesh(append([]mesh.Facet(nil), facets...)))
	want, err := slicer.Slice(config, serialScene)
	if err != nil {
		t.Fatalf("serial Slice failed: %v", err)
	}

	index := NewIndex(facets)
	got, err := SliceConcurrently(config, index, len(want))
	if err != nil {
		t.Fatalf("SliceConcurrently failed: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("expected %d slices, got %d", len(want), len(got))
	}
	for i := range want {
		if len(got[i].Islands) != len(want[i].Islands) {
			t.Errorf("slice %d: island count = %d, want %d", i, len(got[i].Islands), len(want[i].Islands))
			continue
		}
		for j := range want[i].Islands {
			wantArea := abs(want[i].Islands[j].Outline.SignedArea())
			gotArea := abs(got[i].Islands[j].Outline.SignedArea())
			if wantArea != gotArea {
				t.Errorf("slice %d island %d: area = %d, want %d", i, j, gotArea, wantArea)
			}
		}
	}
}

func TestSliceConcurrentlyPropagatesStitchError(t *testing.T) {
	orphan := []mesh.Facet{
		mesh.NewFacet(
			geom.Vector3D{X: 0, Y: 0, Z: -10},
			geom.Vector3D{X: 10000, Y: 0, Z: 10},
			geom.Vector3D{X: 0, Y: 10000, Z: 10},
		),
	}
	config := slicer.SlicerConfig{LayerHeight: 5}
	index := NewIndex(orphan)

	_, err := SliceConcurrently(config, index, 4)
	if err == nil {
		t.Fatal("expected an OpenStitchPolygon error from the unconnected facet")
	}
	slicerErr, ok := err.(*slicer.Error)
	if !ok {
		t.Fatalf("expected *slicer.Error, got %T", err)
	}
	if slicerErr.Kind() != slicer.OpenStitchPolygon {
		t.Errorf("Kind() = %v, want OpenStitchPolygon", slicerErr.Kind())
	}
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
