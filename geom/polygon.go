package geom

// Polygon is a closed sequence of vertices: the first and last vertex are
// always equal. Closure is explicit, not implicit - callers must not assume
// the last vertex is synthesized on read.
type Polygon struct {
	Vertices []Vector2D
}

// Len returns the number of vertices, including the repeated closing vertex.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// SignedArea returns twice the signed area of the polygon via the shoelace
// formula. Positive means counter-clockwise winding, negative clockwise.
// Using int64 accumulation matches every other coordinate computation in
// this package; callers needing the true area divide by 2.
func (p Polygon) SignedArea() int64 {
	var sum int64
	verts := p.Vertices
	if len(verts) < 2 {
		return 0
	}
	for i := 0; i < len(verts)-1; i++ {
		a, b := verts[i], verts[i+1]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}

// ContainsPoint reports whether pt lies inside p using the winding-number
// test (Sunday's algorithm), implemented entirely with exact integer cross
// products so no division or floating point enters the test. Points
// exactly on the boundary may return either result; the module's caller,
// slicer.ClassifyHoles, only ever tests a vertex of one polygon against
// another, never a point known to lie on the boundary.
func (p Polygon) ContainsPoint(pt Vector2D) bool {
	verts := p.Vertices
	n := len(verts)
	if n < 2 {
		return false
	}
	winding := 0
	for i := 0; i < n-1; i++ {
		v0, v1 := verts[i], verts[i+1]
		if v0.Y <= pt.Y {
			if v1.Y > pt.Y && isLeft(v0, v1, pt) > 0 {
				winding++
			}
		} else {
			if v1.Y <= pt.Y && isLeft(v0, v1, pt) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// isLeft returns >0 if p2 is left of the line through p0->p1, <0 if right,
// 0 if exactly on the line.
func isLeft(p0, p1, p2 Vector2D) int64 {
	return (p1.X-p0.X)*(p2.Y-p0.Y) - (p2.X-p0.X)*(p1.Y-p0.Y)
}

// PolygonBuilder constructs a Polygon one vertex at a time, remembering the
// start vertex so it can be re-appended on Close. This is the only supported
// way to build a Polygon - it is the sole mechanism that can guarantee the
// closure invariant.
type PolygonBuilder struct {
	start    Vector2D
	hasStart bool
	verts    []Vector2D
}

// NewPolygonBuilder starts a builder at the given vertex.
func NewPolygonBuilder(start Vector2D) *PolygonBuilder {
	return &PolygonBuilder{
		start:    start,
		hasStart: true,
		verts:    []Vector2D{start},
	}
}

// Append adds the next vertex to the in-progress polygon.
func (b *PolygonBuilder) Append(v Vector2D) {
	b.verts = append(b.verts, v)
}

// Close appends the start vertex and returns the finished Polygon.
func (b *PolygonBuilder) Close() Polygon {
	verts := make([]Vector2D, len(b.verts)+1)
	copy(verts, b.verts)
	verts[len(verts)-1] = b.start
	return Polygon{Vertices: verts}
}
