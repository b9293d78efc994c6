package geom

import "testing"

func TestPseudoLess(t *testing.T) {
	tests := []struct {
		name string
		a, b Vector3D
		want bool
	}{
		{"x differs", Vector3D{0, 0, 0}, Vector3D{1, 0, 0}, true},
		{"x differs reversed", Vector3D{1, 0, 0}, Vector3D{0, 0, 0}, false},
		{"x tie, y differs", Vector3D{0, 0, 0}, Vector3D{0, 1, 0}, true},
		{"x,y tie, z differs", Vector3D{0, 0, 0}, Vector3D{0, 0, 1}, true},
		{"fully equal", Vector3D{1, 2, 3}, Vector3D{1, 2, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PseudoLess(tt.a, tt.b); got != tt.want {
				t.Errorf("PseudoLess(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPseudoLessIrreflexive(t *testing.T) {
	v := Vector3D{5, -3, 12}
	if PseudoLess(v, v) {
		t.Errorf("PseudoLess should be irreflexive: PseudoLess(%v, %v) = true", v, v)
	}
}

func TestPseudoLessTotal(t *testing.T) {
	// For any distinct a, b, exactly one of PseudoLess(a,b), PseudoLess(b,a) holds.
	pairs := []struct{ a, b Vector3D }{
		{Vector3D{1, 2, 3}, Vector3D{1, 2, 4}},
		{Vector3D{-1, 0, 0}, Vector3D{1, 0, 0}},
		{Vector3D{0, 5, 0}, Vector3D{0, -5, 0}},
	}
	for _, p := range pairs {
		ab := PseudoLess(p.a, p.b)
		ba := PseudoLess(p.b, p.a)
		if ab == ba {
			t.Errorf("expected exactly one of PseudoLess(a,b), PseudoLess(b,a) for %v, %v", p.a, p.b)
		}
	}
}

func TestVector3DTranslate(t *testing.T) {
	v := Vector3D{1, 2, 3}
	v.Translate(Vector3D{10, -5, 0})
	want := Vector3D{11, -3, 3}
	if v != want {
		t.Errorf("Translate result = %v, want %v", v, want)
	}
}

func TestVector3DScale(t *testing.T) {
	v := Vector3D{1, -2, 3}
	v.Scale(4)
	want := Vector3D{4, -8, 12}
	if v != want {
		t.Errorf("Scale result = %v, want %v", v, want)
	}
}
