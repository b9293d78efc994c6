package slicer

import "github.com/kiln3d/slicer/geom"

// ClassifyHoles groups the stitcher's flat list of closed polygons into
// islands with their holes attached: the stitcher itself never
// distinguishes an outline from a hole, so this is the one place that rule
// is applied. Exported so parallel.SliceConcurrently can apply the same
// rule its per-layer goroutines need without duplicating it.
//
// A polygon p is a hole of polygon o if:
//  1. o's winding is opposite p's (one is clockwise, the other counter-
//     clockwise - true of any outline/hole pair on a well-formed mesh),
//  2. o's area strictly exceeds p's in magnitude, and
//  3. p's first vertex lies inside o.
//
// Among every candidate o satisfying all three, the smallest by area is
// chosen - the innermost enclosing polygon, so holes-within-holes-within-
// outlines attach to their immediate parent rather than the outermost one.
//
// Nesting can run deeper than one level (an annulus with a solid boss sitting
// in its own hole, for instance): a polygon's role alternates between hole
// and outline with each step up the containment chain, so it is the parity
// of a polygon's depth in that chain - not merely "does it have a parent" -
// that decides whether it becomes a hole of its immediate parent or an
// island of its own (with its immediate parent, the innermost hole that
// contains it, acting only as a cutout in some ancestor island).
func ClassifyHoles(polygons []geom.Polygon) []SliceIsland {
	n := len(polygons)
	areas := make([]int64, n)
	for i, p := range polygons {
		areas[i] = p.SignedArea()
	}

	parent := make([]int, n)
	for i := range parent {
		parent[i] = -1
	}

	for i, p := range polygons {
		if len(p.Vertices) == 0 {
			continue
		}
		probe := p.Vertices[0]
		best := -1
		for j, o := range polygons {
			if i == j {
				continue
			}
			if sameSign(areas[i], areas[j]) {
				continue
			}
			if abs64(areas[j]) <= abs64(areas[i]) {
				continue
			}
			if !o.ContainsPoint(probe) {
				continue
			}
			if best == -1 || abs64(areas[j]) < abs64(areas[best]) {
				best = j
			}
		}
		parent[i] = best
	}

	depth := make([]int, n)
	for i := range polygons {
		d := 0
		for p := parent[i]; p != -1; p = parent[p] {
			d++
		}
		depth[i] = d
	}

	islands := make([]SliceIsland, 0, n)
	indexOfIsland := make(map[int]int, n)
	for i := range polygons {
		if depth[i]%2 == 0 {
			indexOfIsland[i] = len(islands)
			islands = append(islands, SliceIsland{Outline: polygons[i]})
		}
	}
	for i := range polygons {
		if depth[i]%2 == 0 {
			continue
		}
		islandIdx := indexOfIsland[parent[i]]
		islands[islandIdx].Holes = append(islands[islandIdx].Holes, polygons[i])
	}

	return islands
}

func sameSign(a, b int64) bool {
	return (a < 0) == (b < 0)
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
