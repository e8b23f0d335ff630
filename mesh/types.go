package mesh

import (
	"errors"
	"math"
)

// Sentinel errors for mesh construction.
var (
	// ErrBadBounds indicates a non-positive map width or height.
	ErrBadBounds = errors.New("mesh: width and height must be positive")

	// ErrBadMinDist indicates a non-positive Poisson-disc radius.
	ErrBadMinDist = errors.New("mesh: minDist must be positive")

	// ErrTooFewPoints indicates fewer than three input points.
	ErrTooFewPoints = errors.New("mesh: at least 3 points required")

	// ErrDegenerate indicates the triangulation is impossible,
	// typically because all points are collinear.
	ErrDegenerate = errors.New("mesh: degenerate point set")
)

// Point is a 2D map-space coordinate.
type Point struct {
	X, Y float64
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Mesh is the immutable cell graph: N sites with their clipped Voronoi
// polygons, neighbor lists, and a deduplicated undirected edge list.
// Indices into Sites, Polygons, and Neighbors are the cell indices used by
// every downstream field array.
type Mesh struct {
	// Width and Height are the map bounds; all geometry lies in [0,W]×[0,H].
	Width, Height float64

	// Sites holds the generating point of each cell. Site i doubles as the
	// cell centroid for graph-distance purposes (deliberately not the
	// polygon centroid).
	Sites []Point

	// Polygons holds each cell's Voronoi polygon as an ordered vertex loop
	// (closing edge implied between last and first vertex).
	Polygons [][]Point

	// Neighbors holds, per cell, the adjacent cell indices from the Delaunay
	// triangulation. Symmetric: j ∈ Neighbors[i] ⟺ i ∈ Neighbors[j].
	Neighbors [][]int

	// Edges is the deduplicated undirected edge list with i < j per pair,
	// in deterministic first-encounter order.
	Edges [][2]int
}

// Len returns the number of cells.
func (m *Mesh) Len() int { return len(m.Sites) }

// Centroid returns the centroid of cell i for graph-distance purposes.
// This is the generating site, not the polygon centroid.
func (m *Mesh) Centroid(i int) Point { return m.Sites[i] }

// TouchesBorder reports whether any vertex of cell i's polygon lies within
// eps of the map's bounding rectangle.
//
// Complexity: O(len(polygon)).
func (m *Mesh) TouchesBorder(i int, eps float64) bool {
	for _, v := range m.Polygons[i] {
		if v.X <= eps || v.Y <= eps || v.X >= m.Width-eps || v.Y >= m.Height-eps {
			return true
		}
	}
	return false
}

// Slope returns a per-cell steepness field: the maximum |Δelevation|/distance
// over each cell's neighbors, multiplied by scale and clamped to [0,1].
// The result is advisory shading input only; no generation stage reads it.
//
// Complexity: O(N·d).
func (m *Mesh) Slope(elev []float64, scale float64) []float64 {
	out := make([]float64, m.Len())
	for i := range m.Sites {
		maxGrad := 0.0
		for _, j := range m.Neighbors[i] {
			d := m.Sites[i].Dist(m.Sites[j])
			if d == 0 {
				continue
			}
			g := math.Abs(elev[i]-elev[j]) / d
			if g > maxGrad {
				maxGrad = g
			}
		}
		s := maxGrad * scale
		if s > 1 {
			s = 1
		}
		out[i] = s
	}
	return out
}
