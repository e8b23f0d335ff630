package coastline

import (
	"errors"
	"math"

	"github.com/katalvlaran/terragraph/hydro"
	"github.com/katalvlaran/terragraph/mesh"
)

// Sentinel errors for extraction parameters.
var (
	// ErrNilMesh indicates a nil mesh.
	ErrNilMesh = errors.New("coastline: mesh is nil")

	// ErrNilClassification indicates a nil classification.
	ErrNilClassification = errors.New("coastline: classification is nil")

	// ErrBadPrecision indicates a snap precision outside [0,9] decimals.
	ErrBadPrecision = errors.New("coastline: snap precision must be in [0,9]")

	// ErrBadSmoothT indicates a Chaikin parameter outside (0,0.5].
	ErrBadSmoothT = errors.New("coastline: smoothing t must be in (0,0.5]")
)

// minLoopPoints is the smallest ring worth keeping; anything shorter is
// floating-point debris.
const minLoopPoints = 3

// Options control snapping and smoothing.
type Options struct {
	// Precision is the number of decimal digits vertices are snapped to
	// before edges are matched across polygons. Must be in [0,9].
	Precision int

	// SmoothIterations is the number of Chaikin corner-cutting passes
	// applied to each closed loop. Zero keeps the raw polygon boundary.
	SmoothIterations int

	// SmoothT is the Chaikin cut parameter in (0,0.5]; each edge is replaced
	// by points at t and 1−t along it.
	SmoothT float64
}

// DefaultOptions snaps at 6 decimals and applies two smoothing passes with
// the classic quarter cut.
func DefaultOptions() Options {
	return Options{Precision: 6, SmoothIterations: 2, SmoothT: 0.25}
}

func (o Options) validate() error {
	if o.Precision < 0 || o.Precision > 9 {
		return ErrBadPrecision
	}
	if o.SmoothIterations > 0 && (o.SmoothT <= 0 || o.SmoothT > 0.5) {
		return ErrBadSmoothT
	}
	return nil
}

// Loop is a closed polyline: the first point is repeated at the end.
type Loop []mesh.Point

// vertKey is a polygon vertex snapped to the configured precision.
type vertKey struct{ x, y int64 }

// edgeKey is an unordered pair of snapped vertices, lesser first.
type edgeKey struct{ a, b vertKey }

type segment struct {
	a, b vertKey
	pa   mesh.Point
	pb   mesh.Point
}

// Extract harvests the land/ocean boundary edges of m and chains them into
// closed loops, smoothed per opt. Loop order and vertex sequences are a pure
// function of the inputs.
//
// Returns ErrNilMesh, ErrNilClassification, or an Options sentinel.
//
// Complexity: O(V + E·d_vertex) where V is total polygon vertices.
func Extract(m *mesh.Mesh, cls *hydro.Classification, opt Options) ([]Loop, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if cls == nil {
		return nil, ErrNilClassification
	}
	if err := opt.validate(); err != nil {
		return nil, err
	}

	scale := math.Pow(10, float64(opt.Precision))
	snap := func(p mesh.Point) vertKey {
		return vertKey{
			x: int64(math.Round(p.X * scale)),
			y: int64(math.Round(p.Y * scale)),
		}
	}
	unsnap := func(k vertKey) mesh.Point {
		return mesh.Point{X: float64(k.x) / scale, Y: float64(k.y) / scale}
	}

	// 1) Count incident cells per canonical edge. Two passes keep segment
	//    order deterministic: the map only stores incidence, never order.
	incident := make(map[edgeKey][]int)
	forEachEdge := func(cell int, visit func(a, b vertKey)) {
		poly := m.Polygons[cell]
		for vi := range poly {
			a := snap(poly[vi])
			b := snap(poly[(vi+1)%len(poly)])
			if a == b {
				continue // edge collapsed by snapping
			}
			visit(a, b)
		}
	}
	for cell := 0; cell < m.Len(); cell++ {
		forEachEdge(cell, func(a, b vertKey) {
			k := canonical(a, b)
			ids := incident[k]
			if len(ids) == 0 || ids[len(ids)-1] != cell {
				incident[k] = append(ids, cell)
			}
		})
	}

	// 2) Emit qualifying segments in cell-then-vertex order: exactly two
	//    incident cells, one land and one ocean.
	emitted := make(map[edgeKey]bool)
	var segs []segment
	for cell := 0; cell < m.Len(); cell++ {
		forEachEdge(cell, func(a, b vertKey) {
			k := canonical(a, b)
			if emitted[k] {
				return
			}
			ids := incident[k]
			if len(ids) != 2 || !landOceanPair(cls, ids[0], ids[1]) {
				return
			}
			emitted[k] = true
			segs = append(segs, segment{a: a, b: b, pa: unsnap(a), pb: unsnap(b)})
		})
	}

	// 3) Chain segments into loops via endpoint adjacency.
	byVert := make(map[vertKey][]int)
	for i, s := range segs {
		byVert[s.a] = append(byVert[s.a], i)
		byVert[s.b] = append(byVert[s.b], i)
	}

	used := make([]bool, len(segs))
	var loops []Loop
	for start := range segs {
		if used[start] {
			continue
		}
		loop := chain(segs, byVert, used, start)
		if len(loop) >= minLoopPoints+1 { // +1 for the repeated closure point
			for it := 0; it < opt.SmoothIterations; it++ {
				loop = chaikin(loop, opt.SmoothT)
			}
			loops = append(loops, loop)
		}
	}
	return loops, nil
}

// chain walks unused segments from segs[start] until the walk returns to its
// start vertex (closed loop, returned with the start point repeated) or
// dead-ends (nil). Segments are marked used either way: a dead-ended chain
// cannot participate in any closed loop.
func chain(segs []segment, byVert map[vertKey][]int, used []bool, start int) Loop {
	s := segs[start]
	used[start] = true
	home := s.a
	loop := Loop{s.pa, s.pb}
	prev, cur := s.pa, s.b

	for cur != home {
		next := -1
		bestTurn := math.Inf(1)
		for _, cand := range byVert[cur] {
			if used[cand] {
				continue
			}
			c := segs[cand]
			out := c.pb
			if c.b == cur {
				out = c.pa
			}
			turn := turnAngle(prev, loop[len(loop)-1], out)
			if turn < bestTurn {
				bestTurn = turn
				next = cand
			}
		}
		if next == -1 {
			return nil // dead end at the map frame or an exhausted junction
		}
		used[next] = true
		c := segs[next]
		prev = loop[len(loop)-1]
		if c.a == cur {
			loop = append(loop, c.pb)
			cur = c.b
		} else {
			loop = append(loop, c.pa)
			cur = c.a
		}
	}
	return loop
}

// turnAngle is the absolute heading change at b when walking a→b→c.
func turnAngle(a, b, c mesh.Point) float64 {
	in := math.Atan2(b.Y-a.Y, b.X-a.X)
	out := math.Atan2(c.Y-b.Y, c.X-b.X)
	d := math.Abs(out - in)
	if d > math.Pi {
		d = 2*math.Pi - d
	}
	return d
}

// chaikin performs one corner-cutting pass over a closed loop (first point
// repeated at the end) and returns the refined closed loop.
func chaikin(loop Loop, t float64) Loop {
	ring := loop[:len(loop)-1]
	out := make(Loop, 0, 2*len(ring)+1)
	for i := range ring {
		p, q := ring[i], ring[(i+1)%len(ring)]
		out = append(out,
			mesh.Point{X: p.X + t*(q.X-p.X), Y: p.Y + t*(q.Y-p.Y)},
			mesh.Point{X: p.X + (1-t)*(q.X-p.X), Y: p.Y + (1-t)*(q.Y-p.Y)},
		)
	}
	return append(out, out[0])
}

func canonical(a, b vertKey) edgeKey {
	if b.x < a.x || (b.x == a.x && b.y < a.y) {
		a, b = b, a
	}
	return edgeKey{a: a, b: b}
}

func landOceanPair(cls *hydro.Classification, i, j int) bool {
	ci, cj := cls.Class[i], cls.Class[j]
	return (ci == hydro.Land && cj == hydro.Ocean) || (ci == hydro.Ocean && cj == hydro.Land)
}
