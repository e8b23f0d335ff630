package mesh

import (
	"fmt"

	"github.com/fogleman/delaunay"
)

// Build constructs the cell graph for the given sites within [0,width]×[0,height]:
// Delaunay triangulation, per-cell neighbor lists, the deduplicated undirected
// edge list, and per-cell Voronoi polygons clipped to the map rectangle.
//
// The Voronoi cell of site i is computed as the intersection of the bounding
// rectangle with the half-planes closer to i than to each Delaunay neighbor;
// for a Delaunay-adjacent point set this intersection equals the true clipped
// Voronoi region, and clipping against the rectangle bounds hull cells that
// would otherwise be unbounded.
//
// Returns ErrBadBounds, ErrTooFewPoints, or ErrDegenerate (wrapping the
// triangulator's error when it reports one).
//
// Complexity: O(N log N) triangulation + O(N·d²) clipping.
func Build(points []Point, width, height float64) (*Mesh, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadBounds
	}
	if len(points) < 3 {
		return nil, ErrTooFewPoints
	}

	dpts := make([]delaunay.Point, len(points))
	for i, p := range points {
		dpts[i] = delaunay.Point{X: p.X, Y: p.Y}
	}
	tri, err := delaunay.Triangulate(dpts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDegenerate, err)
	}
	if len(tri.Triangles) == 0 {
		return nil, ErrDegenerate
	}

	n := len(points)
	m := &Mesh{
		Width:     width,
		Height:    height,
		Sites:     append([]Point(nil), points...),
		Polygons:  make([][]Point, n),
		Neighbors: make([][]int, n),
	}

	// Adjacency from triangle edges. seen deduplicates per ordered pair;
	// traversal order over tri.Triangles is deterministic, so neighbor
	// lists and the edge list come out in stable first-encounter order.
	seen := make(map[int64]struct{}, n*6)
	key := func(a, b int) int64 { return int64(a)*int64(n) + int64(b) }
	link := func(a, b int) {
		if _, ok := seen[key(a, b)]; ok {
			return
		}
		seen[key(a, b)] = struct{}{}
		m.Neighbors[a] = append(m.Neighbors[a], b)
		if a < b {
			m.Edges = append(m.Edges, [2]int{a, b})
		}
	}
	for t := 0; t < len(tri.Triangles); t += 3 {
		a, b, c := tri.Triangles[t], tri.Triangles[t+1], tri.Triangles[t+2]
		link(a, b)
		link(b, a)
		link(b, c)
		link(c, b)
		link(c, a)
		link(a, c)
	}

	// Clip each cell from the bounding rectangle.
	rect := []Point{{0, 0}, {width, 0}, {width, height}, {0, height}}
	for i := 0; i < n; i++ {
		poly := rect
		for _, j := range m.Neighbors[i] {
			poly = clipHalfPlane(poly, points[i], points[j])
			if len(poly) == 0 {
				break
			}
		}
		if len(poly) < 3 {
			return nil, fmt.Errorf("%w: empty cell polygon for site %d", ErrDegenerate, i)
		}
		m.Polygons[i] = poly
	}

	return m, nil
}

// clipHalfPlane cuts poly with the perpendicular bisector between sites a
// and b, keeping the side containing a (Sutherland–Hodgman step). The
// signed classifier is (p − midpoint)·(b − a): ≤ 0 means closer to a.
func clipHalfPlane(poly []Point, a, b Point) []Point {
	mx, my := (a.X+b.X)/2, (a.Y+b.Y)/2
	nx, ny := b.X-a.X, b.Y-a.Y

	side := func(p Point) float64 {
		return (p.X-mx)*nx + (p.Y-my)*ny
	}

	out := make([]Point, 0, len(poly)+1)
	for i := range poly {
		cur := poly[i]
		prev := poly[(i+len(poly)-1)%len(poly)]
		fc, fp := side(cur), side(prev)
		curIn, prevIn := fc <= 0, fp <= 0
		switch {
		case curIn && prevIn:
			out = append(out, cur)
		case curIn && !prevIn:
			out = append(out, intersect(prev, cur, fp, fc), cur)
		case !curIn && prevIn:
			out = append(out, intersect(prev, cur, fp, fc))
		}
	}
	return out
}

// intersect returns the point where segment prev→cur crosses the clip line,
// given the signed side values at both endpoints (opposite signs).
func intersect(prev, cur Point, fp, fc float64) Point {
	t := fp / (fp - fc)
	return Point{
		X: prev.X + t*(cur.X-prev.X),
		Y: prev.Y + t*(cur.Y-prev.Y),
	}
}
