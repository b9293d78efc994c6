// Package geom provides the integer geometry primitives the slicing core is
// built on: 3D/2D vectors in a fixed internal unit (microns) and the closed
// polygons the segment stitcher produces.
package geom

// Vector3D is a point or direction in the internal micron unit.
type Vector3D struct {
	X, Y, Z int64
}

// Translate shifts v in place by delta.
func (v *Vector3D) Translate(delta Vector3D) {
	v.X += delta.X
	v.Y += delta.Y
	v.Z += delta.Z
}

// Scale multiplies v in place by s.
func (v *Vector3D) Scale(s int64) {
	v.X *= s
	v.Y *= s
	v.Z *= s
}

// PseudoLess is a strict, irreflexive, total tie-break over Vector3D values.
// It has no geometric meaning - it exists solely to canonicalize argument
// order for zinterpolate (see package plane) so that interpolating (a, b)
// and (b, a) produce byte-identical results.
func PseudoLess(a, b Vector3D) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	if a.Y != b.Y {
		return a.Y < b.Y
	}
	if a.Z != b.Z {
		return a.Z < b.Z
	}
	return false
}

// Vector2D is a point in the plane, in the internal micron unit. Equality is
// exact integer equality, which the stitcher relies on for endpoint matching.
type Vector2D struct {
	X, Y int64
}
