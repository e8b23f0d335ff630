package blob

import (
	"math"

	"github.com/katalvlaran/terragraph/mesh"
)

// Failsafe thresholds: a script whose tallest cell stays below
// failsafeMinHeight is considered empty and gets the central disk painted.
const (
	failsafeMinHeight = 0.1
	failsafePeak      = 0.6
	failsafeRadius    = 0.25 // fraction of the shorter map side

	// EventFailsafeDisk is reported through the event hook when the
	// empty-result fallback paints the central disk.
	EventFailsafeDisk = "blob: empty result, painted failsafe disk"
)

// lowIslandScale rescales LowIsland relief after normalization.
const lowIslandScale = 0.3

// Run executes one composite template against a validated config: clears the
// elevation buffer, performs the script's operator sequence, applies the
// empty-result failsafe if needed, then normalizes to [0,1] (plus the
// script's own rescale, when it has one).
//
// Returns ErrBadParams for an invalid config or ErrUnknownTemplate.
//
// Complexity: O(ops·N) worst case.
func (e *Engine) Run(tpl Template, cfg Config) error {
	if !cfg.validate() {
		return ErrBadParams
	}

	e.elev.Fill(0)
	switch tpl {
	case VolcanicIsland:
		e.volcanicIsland(cfg)
	case LowIsland:
		e.lowIsland(cfg)
	case Archipelago:
		e.archipelago(cfg)
	case ContinentalIslands:
		e.continentalIslands(cfg)
	default:
		return ErrUnknownTemplate
	}

	if e.elev.Max() < failsafeMinHeight {
		e.paintFailsafeDisk()
		e.onEvent(EventFailsafeDisk)
	}

	e.elev.Normalize(0, 1)
	if tpl == LowIsland {
		for i := range e.elev {
			e.elev[i] *= lowIslandScale
		}
	}
	return nil
}

// volcanicIsland: a sharp volcano core over a broad base, a few hills, one
// ridge chain, and a couple of carved troughs.
func (e *Engine) volcanicIsland(cfg Config) {
	e.Raise(KindCore, cfg)
	e.Raise(KindVolcano, cfg)
	for i, n := 0, e.countIn(cfg.HillCount); i < n; i++ {
		e.Raise(KindHill, cfg)
	}
	e.Chain(KindRidge, cfg, false)
	for i, n := 0, e.countIn(cfg.TroughCount); i < n; i++ {
		e.Chain(KindTrough, cfg, true)
	}
}

// lowIsland: one core with hills and a single trough; relief is rescaled
// down after normalization in Run.
func (e *Engine) lowIsland(cfg Config) {
	e.Raise(KindCore, cfg)
	for i, n := 0, e.countIn(cfg.HillCount); i < n; i++ {
		e.Raise(KindHill, cfg)
	}
	e.Chain(KindTrough, cfg, true)
}

// archipelago: a single core shattered into island groups by repeated sea
// carving, plus scattered hills.
func (e *Engine) archipelago(cfg Config) {
	e.Raise(KindCore, cfg)
	for i, n := 0, e.countIn(cfg.HillCount); i < n; i++ {
		e.Raise(KindHill, cfg)
	}
	for i, n := 0, e.countIn(cfg.SeaCount); i < n; i++ {
		e.Carve(KindSea, cfg)
	}
	e.Chain(KindTrough, cfg, true)
}

// continentalIslands: two cores with ridge chains, separated by a carved
// sea strait.
func (e *Engine) continentalIslands(cfg Config) {
	e.Raise(KindCore, cfg)
	e.Raise(KindCore, cfg)
	for i, n := 0, e.countIn(cfg.RangeCount); i < n; i++ {
		e.Chain(KindRidge, cfg, false)
	}
	for i, n := 0, e.countIn(cfg.HillCount); i < n; i++ {
		e.Raise(KindHill, cfg)
	}
	e.Carve(KindSea, cfg)
	e.Chain(KindTrough, cfg, true)
}

// countIn draws a feature count from an inclusive [min,max] range.
func (e *Engine) countIn(bounds [2]int) int {
	lo, hi := bounds[0], bounds[1]
	if hi <= lo {
		return lo
	}
	return lo + e.stream.IntN(hi-lo+1)
}

// paintFailsafeDisk deterministically raises a linear-falloff disk at the
// map's central cell. No randomness: a degenerate run must still reproduce.
func (e *Engine) paintFailsafeDisk() {
	center := mesh.Point{X: e.m.Width / 2, Y: e.m.Height / 2}
	radius := failsafeRadius * math.Min(e.m.Width, e.m.Height)
	for i, s := range e.m.Sites {
		d := s.Dist(center)
		if d >= radius {
			continue
		}
		v := failsafePeak * (1 - d/radius)
		if v > e.elev[i] {
			e.elev[i] = v
		}
	}
}
