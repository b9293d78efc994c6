package main

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

func TestSliceParallelRejectsEmptyScene(t *testing.T) {
	_, err := sliceParallel(slicer.SlicerConfig{LayerHeight: 1000}, mesh.NewScene())
	if err == nil {
		t.Fatal("expected EmptyScene error")
	}
	slicerErr, ok := err.(*slicer.Error)
	if !ok {
		t.Fatalf("expected *slicer.Error, got %T", err)
	}
	if slicerErr.Kind() != slicer.EmptyScene {
		t.Errorf("Kind() = %v, want EmptyScene", slicerErr.Kind())
	}
}

func TestSliceParallelProducesSameLayerCountAsSerial(t *testing.T) {
	config := slicer.SlicerConfig{LayerHeight: 3000}

	serial := mesh.NewScene()
	serial.AddMesh(mesh.NewMesh(append([]mesh.Facet(nil), tetrahedron()...)))
	want, err := slicer.Slice(config, serial)
	if err != nil {
		t.Fatalf("serial Slice failed: %v", err)
	}

	parallelScene := mesh.NewScene()
	parallelScene.AddMesh(mesh.NewMesh(tetrahedron()))
	got, err := sliceParallel(config, parallelScene)
	if err != nil {
		t.Fatalf("sliceParallel failed: %v", err)
	}

	if len(got) != len(want) {
		t.Errorf("expected %d slices, got %d", len(want), len(got))
	}
}
