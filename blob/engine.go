package blob

import (
	"math"

	"github.com/katalvlaran/terragraph/field"
	"github.com/katalvlaran/terragraph/mesh"
	"github.com/katalvlaran/terragraph/noise"
	"github.com/katalvlaran/terragraph/rng"
)

// Perturbation of the per-cell effective radius: low-frequency coherent
// noise, domain-warped by cell position, at ±radiusNoiseAmp strength.
const (
	radiusNoiseAmp   = 0.08
	radiusNoiseScale = 0.02
	radiusNoiseWarp  = 6.0

	// effRadiusCap keeps children strictly below the parent even when the
	// noise perturbation pushes the radius toward 1.
	effRadiusCap = 0.9999

	// Edge bands (fraction of the shorter map side): raising blobs stay off
	// the frame, carving blobs may come much closer.
	raiseEdgeFrac = 0.05
	carveEdgeFrac = 0.01

	// Chain geometry.
	chainDecay     = 0.85 // peak multiplier per chain step
	chainJitter    = 0.3  // heading jitter per step, radians
	chainStepScale = 2.5  // step length in multiples of local cell spacing
)

// Engine owns the elevation buffer while a blob script runs. It is created
// per generation run and must not be shared across goroutines.
type Engine struct {
	m      *mesh.Mesh
	src    noise.Source
	stream *rng.Stream
	loc    *mesh.Locator
	elev   field.Field

	safeZone func(int) bool
	onEvent  func(string)
}

// Option configures an Engine.
type Option func(*Engine)

// WithSafeZone installs a mask consulted before propagation enters a cell;
// returning false blocks the cell. The default accepts every cell.
func WithSafeZone(mask func(cell int) bool) Option {
	return func(e *Engine) {
		if mask != nil {
			e.safeZone = mask
		}
	}
}

// WithEventHook installs a callback for observable, non-error conditions
// (currently the empty-result failsafe).
func WithEventHook(fn func(event string)) Option {
	return func(e *Engine) {
		if fn != nil {
			e.onEvent = fn
		}
	}
}

// New returns an Engine over m drawing randomness from stream and radius
// perturbation from src. The elevation buffer starts at zero.
func New(m *mesh.Mesh, src noise.Source, stream *rng.Stream, opts ...Option) (*Engine, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if src == nil {
		return nil, ErrNilSource
	}
	if stream == nil {
		return nil, ErrNilStream
	}
	e := &Engine{
		m:        m,
		src:      src,
		stream:   stream,
		loc:      mesh.NewLocator(m),
		elev:     field.New(m.Len()),
		safeZone: func(int) bool { return true },
		onEvent:  func(string) {},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e, nil
}

// Elevation hands off the engine's buffer. The engine must not be used for
// further growth afterwards; ownership transfers to the caller.
func (e *Engine) Elevation() field.Field { return e.elev }

// Raise grows one blob of the given kind at a window-sampled seed and
// composes it additively.
func (e *Engine) Raise(kind Kind, cfg Config) {
	seed := e.seedCell(kind, cfg)
	f := e.grow(seed, cfg.Params[kind], raiseEdgeFrac)
	e.elev.Accumulate(f, field.Add)
}

// Carve grows one blob of the given kind at a window-sampled seed and
// composes it subtractively.
func (e *Engine) Carve(kind Kind, cfg Config) {
	seed := e.seedCell(kind, cfg)
	f := e.grow(seed, cfg.Params[kind], carveEdgeFrac)
	e.elev.Accumulate(f, field.Carve)
}

// Chain walks cfg.RangeSteps steps from a window-sampled seed along a random
// heading with per-step jitter, dropping one blob per step with the peak
// decayed by chainDecay. carve selects the blend (ridge vs. trough/strait).
func (e *Engine) Chain(kind Kind, cfg Config, carve bool) {
	edge := raiseEdgeFrac
	blend := field.BlendFunc(field.Add)
	if carve {
		edge = carveEdgeFrac
		blend = field.Carve
	}

	cell := e.seedCell(kind, cfg)
	heading := e.stream.Float64() * 2 * math.Pi
	p := cfg.Params[kind]

	for step := 0; step < cfg.RangeSteps; step++ {
		f := e.grow(cell, p, edge)
		e.elev.Accumulate(f, blend)

		p.Peak *= chainDecay
		if p.Peak <= p.Stop {
			break
		}
		heading += e.stream.Between(-chainJitter, chainJitter)

		stepLen := e.spacing(cell) * chainStepScale
		next := mesh.Point{
			X: e.m.Sites[cell].X + stepLen*math.Cos(heading),
			Y: e.m.Sites[cell].Y + stepLen*math.Sin(heading),
		}
		next.X = clampRange(next.X, 0, e.m.Width)
		next.Y = clampRange(next.Y, 0, e.m.Height)
		cell = e.loc.Nearest(next)
	}
}

// grow produces one blob field by breadth-first decay propagation from seed.
// Cells inside the edge band or rejected by the safe-zone mask are skipped;
// a branch stops once its value falls to p.Stop. The returned field is zero
// outside the blob's reach.
func (e *Engine) grow(seed int, p Params, edgeFrac float64) field.Field {
	f := field.New(e.m.Len())
	if seed < 0 {
		return f
	}

	band := edgeFrac * math.Min(e.m.Width, e.m.Height)
	visited := make([]bool, e.m.Len())
	queue := make([]int, 0, e.m.Len())

	f[seed] = p.Peak
	visited[seed] = true
	queue = append(queue, seed)

	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		v := f[c]
		if v <= p.Stop {
			continue
		}
		for _, nb := range e.m.Neighbors[c] {
			if visited[nb] || !e.safeZone(nb) {
				continue
			}
			if e.nearBorder(nb, band) {
				continue
			}
			visited[nb] = true

			eff := p.Radius * (1 + radiusNoiseAmp*e.radiusNoise(nb))
			if eff > effRadiusCap {
				eff = effRadiusCap
			}
			if eff < 0 {
				eff = 0
			}
			mod := 1 - p.Sharpness*e.stream.Float64()

			nv := v * eff * mod
			f[nb] = nv
			if nv > p.Stop {
				queue = append(queue, nb)
			}
		}
	}
	return f
}

// seedCell samples a position from the kind's window and returns the cell
// containing it.
func (e *Engine) seedCell(kind Kind, cfg Config) int {
	w := cfg.Windows[kind]
	x := e.m.Width * e.stream.Between(w.X0, w.X1)
	y := e.m.Height * e.stream.Between(w.Y0, w.Y1)
	return e.loc.Nearest(mesh.Point{X: x, Y: y})
}

// radiusNoise samples the low-frequency perturbation field at a cell's site.
func (e *Engine) radiusNoise(cell int) float64 {
	s := e.m.Sites[cell]
	return noise.DomainWarp(e.src, s.X, s.Y, radiusNoiseScale, radiusNoiseWarp)
}

// spacing estimates the local cell spacing as the mean distance to neighbors.
func (e *Engine) spacing(cell int) float64 {
	nbrs := e.m.Neighbors[cell]
	if len(nbrs) == 0 {
		return math.Min(e.m.Width, e.m.Height) / 10
	}
	sum := 0.0
	for _, nb := range nbrs {
		sum += e.m.Sites[cell].Dist(e.m.Sites[nb])
	}
	return sum / float64(len(nbrs))
}

// nearBorder reports whether a cell's site lies within band of the frame.
func (e *Engine) nearBorder(cell int, band float64) bool {
	s := e.m.Sites[cell]
	return s.X < band || s.Y < band || s.X > e.m.Width-band || s.Y > e.m.Height-band
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
