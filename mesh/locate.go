package mesh

import "math"

// Locator answers nearest-site queries over a mesh through a uniform bucket
// grid sized to hold roughly one site per bucket. It is read-only after
// construction and therefore shares the mesh's immutability.
type Locator struct {
	m        *Mesh
	cellSize float64
	gw, gh   int
	buckets  [][]int
}

// NewLocator builds a locator for m.
//
// Complexity: O(N) time and memory.
func NewLocator(m *Mesh) *Locator {
	n := m.Len()
	cellSize := math.Sqrt(m.Width * m.Height / float64(n))
	gw := int(math.Ceil(m.Width / cellSize))
	gh := int(math.Ceil(m.Height / cellSize))
	if gw < 1 {
		gw = 1
	}
	if gh < 1 {
		gh = 1
	}
	l := &Locator{
		m:        m,
		cellSize: cellSize,
		gw:       gw,
		gh:       gh,
		buckets:  make([][]int, gw*gh),
	}
	for i, s := range m.Sites {
		b := l.bucket(s)
		l.buckets[b] = append(l.buckets[b], i)
	}
	return l
}

// bucket maps a point to its bucket index, clamping to the grid.
func (l *Locator) bucket(p Point) int {
	cx := int(p.X / l.cellSize)
	cy := int(p.Y / l.cellSize)
	if cx < 0 {
		cx = 0
	}
	if cx >= l.gw {
		cx = l.gw - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= l.gh {
		cy = l.gh - 1
	}
	return cy*l.gw + cx
}

// Nearest returns the index of the site closest to p, i.e. the cell whose
// Voronoi region contains p (ties broken by lowest index). Buckets are
// scanned in expanding rings; the scan stops once the nearest possible
// remaining bucket cannot beat the best distance found.
//
// Complexity: O(1) expected for uniformly distributed sites.
func (l *Locator) Nearest(p Point) int {
	cx := int(p.X / l.cellSize)
	cy := int(p.Y / l.cellSize)
	if cx < 0 {
		cx = 0
	}
	if cx >= l.gw {
		cx = l.gw - 1
	}
	if cy < 0 {
		cy = 0
	}
	if cy >= l.gh {
		cy = l.gh - 1
	}

	best := -1
	bestD := math.Inf(1)
	maxRing := l.gw
	if l.gh > maxRing {
		maxRing = l.gh
	}
	for r := 0; r <= maxRing; r++ {
		if best >= 0 && float64(r-1)*l.cellSize > bestD {
			break
		}
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				// Ring boundary only; inner buckets were scanned already.
				if dx > -r && dx < r && dy > -r && dy < r {
					continue
				}
				nx, ny := cx+dx, cy+dy
				if nx < 0 || nx >= l.gw || ny < 0 || ny >= l.gh {
					continue
				}
				for _, i := range l.buckets[ny*l.gw+nx] {
					d := l.m.Sites[i].Dist(p)
					if d < bestD || (d == bestD && i < best) {
						bestD = d
						best = i
					}
				}
			}
		}
	}
	return best
}
