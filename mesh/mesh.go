// Package mesh holds triangulated surface geometry: a Facet is one triangle
// of a mesh, a Mesh is the facets belonging to one model, and a Scene is the
// flat, append-only aggregation of every facet across every mesh that will
// be sliced together.
package mesh

import "github.com/kiln3d/slicer/geom"

// Facet is one triangular face of a surface mesh. Vertex order is
// arbitrary; the core makes no assumption about winding or manifoldness.
// Vertex normals are parsed by meshio but not retained here.
type Facet struct {
	Vertices [3]geom.Vector3D
}

// NewFacet builds a Facet from three vertices.
func NewFacet(v0, v1, v2 geom.Vector3D) Facet {
	return Facet{Vertices: [3]geom.Vector3D{v0, v1, v2}}
}

// Translate shifts every vertex of the facet in place by delta.
func (f *Facet) Translate(delta geom.Vector3D) {
	for i := range f.Vertices {
		f.Vertices[i].Translate(delta)
	}
}

// LowerZBound returns the lowest z value among the facet's vertices.
func (f Facet) LowerZBound() int64 {
	z := f.Vertices[0].Z
	for _, v := range f.Vertices[1:] {
		if v.Z < z {
			z = v.Z
		}
	}
	return z
}

// UpperZBound returns the highest z value among the facet's vertices.
func (f Facet) UpperZBound() int64 {
	z := f.Vertices[0].Z
	for _, v := range f.Vertices[1:] {
		if v.Z > z {
			z = v.Z
		}
	}
	return z
}

// Mesh is the triangulated surface of a single model.
type Mesh struct {
	Facets []Facet
}

// NewMesh wraps a slice of facets as a Mesh.
func NewMesh(facets []Facet) *Mesh {
	return &Mesh{Facets: facets}
}

// FacetCount returns the number of triangles in the mesh.
func (m *Mesh) FacetCount() int {
	return len(m.Facets)
}

// ToScene wraps the mesh alone in a new Scene, for callers slicing a single
// parsed file rather than combining several meshes first.
func (m *Mesh) ToScene() *Scene {
	scene := NewScene()
	scene.AddMesh(m)
	return scene
}

// Translate shifts every facet of the mesh in place by delta.
func (m *Mesh) Translate(delta geom.Vector3D) {
	for i := range m.Facets {
		m.Facets[i].Translate(delta)
	}
}

// Scene is an append-only flat collection of facets drawn from one or more
// meshes that are sliced/printed together.
type Scene struct {
	facets []Facet
}

// NewScene returns an empty scene.
func NewScene() *Scene {
	return &Scene{}
}

// IsEmpty reports whether the scene holds no facets: nothing has been added,
// only empty meshes have been added, or Facets has consumed the scene.
func (s *Scene) IsEmpty() bool {
	return len(s.facets) == 0
}

// AddMesh consumes mesh, appending its facets to the scene's flat list. No
// deduplication or validation is performed.
func (s *Scene) AddMesh(m *Mesh) {
	s.facets = append(s.facets, m.Facets...)
	m.Facets = nil
}

// Facets returns the scene's facets, consuming the scene. The serial driver
// hands them to sweep.NewFacetFilter and the CLI's parallel path to
// parallel.NewIndex; after this call the scene holds no facets of its own -
// ownership moves to the caller rather than being shared.
func (s *Scene) Facets() []Facet {
	facets := s.facets
	s.facets = nil
	return facets
}
