package blob

import "errors"

// Sentinel errors for the blob engine.
var (
	// ErrNilMesh indicates a nil mesh was passed to New.
	ErrNilMesh = errors.New("blob: mesh is nil")

	// ErrNilSource indicates a nil noise source was passed to New.
	ErrNilSource = errors.New("blob: noise source is nil")

	// ErrNilStream indicates a nil random stream was passed to New.
	ErrNilStream = errors.New("blob: random stream is nil")

	// ErrUnknownTemplate indicates Run was called with an undefined script.
	ErrUnknownTemplate = errors.New("blob: unknown composite template")

	// ErrBadParams indicates a kind's growth parameters are out of range.
	ErrBadParams = errors.New("blob: invalid growth parameters")
)

// Kind identifies a feature family; each kind carries its own growth
// parameters and seed sampling window.
type Kind int

const (
	// KindCore is a primary landmass blob.
	KindCore Kind = iota
	// KindHill is a secondary low blob.
	KindHill
	// KindRidge is the per-step blob of a raising chain.
	KindRidge
	// KindTrough is the per-step blob of a carving chain.
	KindTrough
	// KindSea is a broad carving blob opening basins and straits.
	KindSea
	// KindVolcano is a sharp, high central blob.
	KindVolcano

	numKinds int = iota
)

// Params are the growth parameters of one blob kind.
type Params struct {
	// Peak is the seed cell's value in (0,1].
	Peak float64
	// Radius is the per-step decay factor in (0,1); the effective radius is
	// perturbed by coherent noise per cell.
	Radius float64
	// Sharpness bounds the random per-child modifier to [1−Sharpness, 1].
	Sharpness float64
	// Stop halts a branch once its value falls to this threshold.
	Stop float64
}

// validate reports whether p is usable for growth.
func (p Params) validate() bool {
	return p.Peak > 0 && p.Peak <= 1 &&
		p.Radius > 0 && p.Radius < 1 &&
		p.Sharpness >= 0 && p.Sharpness < 1 &&
		p.Stop >= 0 && p.Stop < p.Peak
}

// Window is a fractional sampling rectangle: seed positions for a kind are
// drawn uniformly from [X0·W, X1·W) × [Y0·H, Y1·H).
type Window struct {
	X0, Y0, X1, Y1 float64
}

// Template selects one of the fixed composite scripts.
type Template int

const (
	// VolcanicIsland: one sharp volcano core, a few hills, one ridge chain,
	// a couple of carved troughs.
	VolcanicIsland Template = iota
	// LowIsland: a single core with hills, globally rescaled to low relief.
	LowIsland
	// Archipelago: one core shattered by sea carving into island groups.
	Archipelago
	// ContinentalIslands: two cores with ridges, separated by a carved strait.
	ContinentalIslands
)

// Config carries the per-kind parameters, sampling windows, and script
// feature counts. Count pairs are inclusive [min,max] ranges; the script
// draws the actual count from the run's stream.
type Config struct {
	Params  [numKinds]Params
	Windows [numKinds]Window

	// HillCount, RangeCount, TroughCount, SeaCount bound the number of
	// features a script places, where the script uses them.
	HillCount   [2]int
	RangeCount  [2]int
	TroughCount [2]int
	SeaCount    [2]int

	// RangeSteps is the number of chained blobs per ridge/trough walk.
	RangeSteps int
}

// DefaultConfig returns the parameter set the composite templates were
// tuned against.
func DefaultConfig() Config {
	var c Config
	c.Params[KindCore] = Params{Peak: 1.0, Radius: 0.95, Sharpness: 0.2, Stop: 0.03}
	c.Params[KindHill] = Params{Peak: 0.5, Radius: 0.92, Sharpness: 0.3, Stop: 0.03}
	c.Params[KindRidge] = Params{Peak: 0.7, Radius: 0.92, Sharpness: 0.35, Stop: 0.03}
	c.Params[KindTrough] = Params{Peak: 0.5, Radius: 0.93, Sharpness: 0.3, Stop: 0.03}
	c.Params[KindSea] = Params{Peak: 0.6, Radius: 0.94, Sharpness: 0.25, Stop: 0.03}
	c.Params[KindVolcano] = Params{Peak: 1.0, Radius: 0.88, Sharpness: 0.15, Stop: 0.03}

	// Windows bias additive features away from the frame; carving kinds may
	// seed anywhere so straits can open the border.
	c.Windows[KindCore] = Window{X0: 0.25, Y0: 0.25, X1: 0.75, Y1: 0.75}
	c.Windows[KindHill] = Window{X0: 0.15, Y0: 0.15, X1: 0.85, Y1: 0.85}
	c.Windows[KindRidge] = Window{X0: 0.2, Y0: 0.2, X1: 0.8, Y1: 0.8}
	c.Windows[KindTrough] = Window{X0: 0.1, Y0: 0.1, X1: 0.9, Y1: 0.9}
	c.Windows[KindSea] = Window{X0: 0.0, Y0: 0.0, X1: 1.0, Y1: 1.0}
	c.Windows[KindVolcano] = Window{X0: 0.35, Y0: 0.35, X1: 0.65, Y1: 0.65}

	c.HillCount = [2]int{4, 8}
	c.RangeCount = [2]int{1, 2}
	c.TroughCount = [2]int{1, 2}
	c.SeaCount = [2]int{2, 4}
	c.RangeSteps = 6

	return c
}

// validate checks every kind's parameters; returns false on the first bad set.
func (c Config) validate() bool {
	for k := 0; k < numKinds; k++ {
		if !c.Params[k].validate() {
			return false
		}
		w := c.Windows[k]
		if w.X0 < 0 || w.Y0 < 0 || w.X1 > 1 || w.Y1 > 1 || w.X0 >= w.X1 || w.Y0 >= w.Y1 {
			return false
		}
	}
	return c.RangeSteps > 0
}
