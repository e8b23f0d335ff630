package mesh

import (
	"math"

	"github.com/katalvlaran/terragraph/rng"
)

// defaultAttempts is Bridson's k: candidate offsets tried per active sample
// before the sample is retired.
const defaultAttempts = 30

// SampleOption configures SamplePoints.
type SampleOption func(*sampleOptions)

type sampleOptions struct {
	attempts int
}

// WithAttempts overrides the number of candidate attempts per active sample.
// Values below 1 are ignored and the default of 30 is kept.
func WithAttempts(k int) SampleOption {
	return func(o *sampleOptions) {
		if k >= 1 {
			o.attempts = k
		}
	}
}

// SamplePoints generates a blue-noise point set over [0,width)×[0,height)
// with Bridson's Poisson-disc algorithm: no two points closer than minDist,
// candidates drawn in the annulus [minDist, 2·minDist) around a random
// active sample, rejection tested against a background grid of cell size
// minDist/√2 (so each grid cell holds at most one point and a 5×5
// neighborhood suffices).
//
// Output ordering is insertion order — deterministic given the stream, but
// not sorted. The stream is advanced by a fixed, input-dependent number of
// draws; two calls with equal arguments and equal stream state yield
// identical point sets.
//
// Returns ErrBadBounds or ErrBadMinDist for invalid geometry.
//
// Complexity: O(N·k) time, O(N + grid) memory.
func SamplePoints(width, height, minDist float64, stream *rng.Stream, opts ...SampleOption) ([]Point, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrBadBounds
	}
	if minDist <= 0 {
		return nil, ErrBadMinDist
	}
	o := sampleOptions{attempts: defaultAttempts}
	for _, opt := range opts {
		opt(&o)
	}

	cellSize := minDist / math.Sqrt2
	gridW := int(math.Ceil(width / cellSize))
	gridH := int(math.Ceil(height / cellSize))

	// grid[cy*gridW+cx] holds the index of the single point in that cell,
	// or -1 when empty.
	grid := make([]int, gridW*gridH)
	for i := range grid {
		grid[i] = -1
	}

	points := make([]Point, 0, gridW*gridH/4)
	active := make([]int, 0, 128)

	toGrid := func(p Point) (int, int) {
		cx := int(p.X / cellSize)
		cy := int(p.Y / cellSize)
		if cx >= gridW {
			cx = gridW - 1
		}
		if cy >= gridH {
			cy = gridH - 1
		}
		return cx, cy
	}

	r2 := minDist * minDist
	valid := func(p Point) bool {
		if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
			return false
		}
		cx, cy := toGrid(p)
		for dy := -2; dy <= 2; dy++ {
			for dx := -2; dx <= 2; dx++ {
				nx, ny := cx+dx, cy+dy
				if nx < 0 || nx >= gridW || ny < 0 || ny >= gridH {
					continue
				}
				idx := grid[ny*gridW+nx]
				if idx < 0 {
					continue
				}
				ex, ey := points[idx].X-p.X, points[idx].Y-p.Y
				if ex*ex+ey*ey < r2 {
					return false
				}
			}
		}
		return true
	}

	insert := func(p Point) {
		idx := len(points)
		points = append(points, p)
		active = append(active, idx)
		cx, cy := toGrid(p)
		grid[cy*gridW+cx] = idx
	}

	// Initial sample anywhere in bounds.
	insert(Point{X: stream.Float64() * width, Y: stream.Float64() * height})

	for len(active) > 0 {
		ai := stream.IntN(len(active))
		p := points[active[ai]]

		found := false
		for k := 0; k < o.attempts; k++ {
			angle := stream.Float64() * 2 * math.Pi
			dist := minDist + stream.Float64()*minDist
			cand := Point{
				X: p.X + dist*math.Cos(angle),
				Y: p.Y + dist*math.Sin(angle),
			}
			if valid(cand) {
				insert(cand)
				found = true
				break
			}
		}
		if !found {
			// Retire: swap with last and pop.
			active[ai] = active[len(active)-1]
			active = active[:len(active)-1]
		}
	}

	return points, nil
}
