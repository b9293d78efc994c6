package geom

import "testing"

func square(x0, y0, x1, y1 int64) Polygon {
	b := NewPolygonBuilder(Vector2D{x0, y0})
	b.Append(Vector2D{x1, y0})
	b.Append(Vector2D{x1, y1})
	b.Append(Vector2D{x0, y1})
	return b.Close()
}

func TestPolygonBuilderClose(t *testing.T) {
	b := NewPolygonBuilder(Vector2D{0, 0})
	b.Append(Vector2D{10, 0})
	b.Append(Vector2D{10, 10})
	poly := b.Close()

	if poly.Len() != 4 {
		t.Fatalf("expected 4 vertices (3 appended + closing repeat), got %d", poly.Len())
	}
	if poly.Vertices[0] != poly.Vertices[poly.Len()-1] {
		t.Errorf("first vertex %v != last vertex %v", poly.Vertices[0], poly.Vertices[poly.Len()-1])
	}
}

func TestPolygonSignedArea(t *testing.T) {
	ccw := square(0, 0, 10, 10)
	area := ccw.SignedArea()
	if area <= 0 {
		t.Errorf("expected positive signed area for CCW square, got %d", area)
	}

	b := NewPolygonBuilder(Vector2D{0, 0})
	b.Append(Vector2D{0, 10})
	b.Append(Vector2D{10, 10})
	b.Append(Vector2D{10, 0})
	cw := b.Close()
	if cw.SignedArea() >= 0 {
		t.Errorf("expected negative signed area for CW square, got %d", cw.SignedArea())
	}
}

func TestPolygonContainsPoint(t *testing.T) {
	outer := square(0, 0, 100, 100)

	tests := []struct {
		name string
		pt   Vector2D
		want bool
	}{
		{"center", Vector2D{50, 50}, true},
		{"outside right", Vector2D{150, 50}, false},
		{"outside left", Vector2D{-10, 50}, false},
		{"outside above", Vector2D{50, 150}, false},
		{"outside below", Vector2D{50, -10}, false},
		{"far outside", Vector2D{1000, 1000}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsPoint(tt.pt); got != tt.want {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.pt, got, tt.want)
			}
		})
	}
}

func TestPolygonContainsPointNestedHole(t *testing.T) {
	outer := square(0, 0, 100, 100)
	hole := square(25, 25, 75, 75)

	if !outer.ContainsPoint(hole.Vertices[0]) {
		t.Errorf("expected outer square to contain hole's first vertex %v", hole.Vertices[0])
	}
}
