package river

import (
	"errors"
	"math"
	"sort"

	"github.com/katalvlaran/terragraph/hydro"
	"github.com/katalvlaran/terragraph/mesh"
)

// Sentinel errors for flow routing.
var (
	// ErrNilMesh indicates a nil mesh.
	ErrNilMesh = errors.New("river: mesh is nil")

	// ErrNilClassification indicates a nil classification.
	ErrNilClassification = errors.New("river: classification is nil")

	// ErrLengthMismatch indicates an elevation or precipitation array that
	// does not match the mesh cell count.
	ErrLengthMismatch = errors.New("river: field length does not match mesh")

	// ErrBadParams indicates channel thresholds outside their ranges.
	ErrBadParams = errors.New("river: invalid channel parameters")
)

// None marks a cell with no downhill target: water cells and the rare
// terminal land cell whose every candidate was ruled out.
const None = -1

// maxWalk bounds a single channel walk defensively. The ordering constraint
// on downhill targets makes cycles impossible, so the bound can never bind
// on a correct build.
const maxWalk = 1 << 20

// Params control channel extraction thresholds.
type Params struct {
	// FluxFraction sets the channel threshold as a fraction of the maximum
	// observed flux, in [0,1].
	FluxFraction float64

	// MinFlux floors the channel threshold in absolute flux units, so tiny
	// maps do not declare every trickle a river.
	MinFlux float64

	// MajorFraction marks a channel major when its peak flux reaches this
	// fraction of the maximum observed flux, in [0,1].
	MajorFraction float64
}

// DefaultParams keeps roughly the strongest twentieth of drainage visible
// and reserves the major flag for trunk streams.
func DefaultParams() Params {
	return Params{FluxFraction: 0.05, MinFlux: 3, MajorFraction: 0.25}
}

func (p Params) validate() error {
	if p.FluxFraction < 0 || p.FluxFraction > 1 ||
		p.MajorFraction < 0 || p.MajorFraction > 1 || p.MinFlux < 0 {
		return ErrBadParams
	}
	return nil
}

// Channel is one extracted river polyline.
type Channel struct {
	// Cells is the downhill cell sequence; the last entry may be a water
	// cell (the mouth) or a cell already claimed by an earlier channel
	// (the merge point).
	Cells []int

	// Points are the cell centroids of Cells.
	Points []mesh.Point

	// IsMajor reports whether the channel's peak flux reached the major
	// threshold.
	IsMajor bool
}

// Network is the routing output. Per-cell slices are indexed by cell.
type Network struct {
	// SeaDistance is the weighted graph distance to the nearest water cell;
	// water cells hold 0, unreachable land +Inf.
	SeaDistance []float64

	// Downhill holds each land cell's single outgoing target, None for
	// water cells and terminals.
	Downhill []int

	// Flux is the accumulated precipitation routed through each cell.
	Flux []float64

	// Channels are the extracted river polylines, strongest first.
	Channels []Channel
}

// Build routes flow over the classified mesh. precip supplies per-cell
// precipitation; nil means uniform 1. The inputs are read-only and the
// network is freshly allocated.
//
// Returns ErrNilMesh, ErrNilClassification, ErrLengthMismatch, or
// ErrBadParams.
//
// Complexity: O(N·d + N log N).
func Build(m *mesh.Mesh, cls *hydro.Classification, elev []float64, precip []float64, p Params) (*Network, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if cls == nil {
		return nil, ErrNilClassification
	}
	n := m.Len()
	if len(elev) != n || (precip != nil && len(precip) != n) {
		return nil, ErrLengthMismatch
	}
	if err := p.validate(); err != nil {
		return nil, err
	}

	// 1) Sea distance, frontier = every water cell.
	seeds := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if cls.IsWater(i) {
			seeds = append(seeds, i)
		}
	}
	seaDist, err := hydro.DistanceFrom(m, seeds, nil)
	if err != nil {
		return nil, err
	}

	// 2) Descending elevation order over land cells, ties by index. pos
	//    records each land cell's rank so downhill selection can forbid
	//    targets that drain before their source.
	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if !cls.IsWater(i) {
			order = append(order, i)
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return elev[order[a]] > elev[order[b]]
	})
	pos := make([]int, n)
	for i := range pos {
		pos[i] = -1
	}
	for rank, cell := range order {
		pos[cell] = rank
	}

	// 3) Single downhill target per land cell.
	down := make([]int, n)
	for i := range down {
		down[i] = None
	}
	for _, cell := range order {
		down[cell] = pickDownhill(m, cls, elev, seaDist, pos, cell)
	}

	// 4) Flux accumulation in the same descending order: a cell's flux is
	//    final before it propagates, because every land target ranks later.
	flux := make([]float64, n)
	for _, cell := range order {
		if precip != nil {
			flux[cell] += precip[cell]
		} else {
			flux[cell]++
		}
		if t := down[cell]; t != None {
			flux[t] += flux[cell]
		}
	}

	net := &Network{SeaDistance: seaDist, Downhill: down, Flux: flux}
	net.Channels = extractChannels(m, cls, order, down, flux, p)
	return net, nil
}

// pickDownhill applies the three-tier fallback. A candidate must be water or
// rank after cell in the processing order; the third tier accepts whatever
// remains, so only a cell with zero admissible neighbors stays terminal.
func pickDownhill(m *mesh.Mesh, cls *hydro.Classification, elev, seaDist []float64, pos []int, cell int) int {
	admissible := func(nb int) bool {
		return cls.IsWater(nb) || pos[nb] > pos[cell]
	}

	// Tier 1: strictly closer to the sea; ties by (elevation, index).
	best := None
	for _, nb := range m.Neighbors[cell] {
		if !admissible(nb) || seaDist[nb] >= seaDist[cell] {
			continue
		}
		if best == None || less3(seaDist[nb], elev[nb], nb, seaDist[best], elev[best], best) {
			best = nb
		}
	}
	if best != None {
		return best
	}

	// Tier 2: strictly lower elevation; ties by (sea distance, index).
	for _, nb := range m.Neighbors[cell] {
		if !admissible(nb) || elev[nb] >= elev[cell] {
			continue
		}
		if best == None || less3(elev[nb], seaDist[nb], nb, elev[best], seaDist[best], best) {
			best = nb
		}
	}
	if best != None {
		return best
	}

	// Tier 3: minimal (sea distance, elevation, index) among what is left,
	// so plateaus still drain somewhere.
	for _, nb := range m.Neighbors[cell] {
		if !admissible(nb) {
			continue
		}
		if best == None || less3(seaDist[nb], elev[nb], nb, seaDist[best], elev[best], best) {
			best = nb
		}
	}
	return best
}

// less3 compares (a1,a2,a3) < (b1,b2,b3) lexicographically.
func less3(a1, a2 float64, a3 int, b1, b2 float64, b3 int) bool {
	if a1 != b1 {
		return a1 < b1
	}
	if a2 != b2 {
		return a2 < b2
	}
	return a3 < b3
}

// extractChannels walks each above-threshold land cell downhill, highest
// first, truncating one cell past the first merge into a claimed cell.
func extractChannels(m *mesh.Mesh, cls *hydro.Classification, order, down []int, flux []float64, p Params) []Channel {
	maxFlux := 0.0
	for _, f := range flux {
		if f > maxFlux {
			maxFlux = f
		}
	}
	threshold := math.Max(p.FluxFraction*maxFlux, p.MinFlux)
	majorAt := p.MajorFraction * maxFlux

	claimed := make([]bool, m.Len())
	var channels []Channel
	for _, head := range order {
		if claimed[head] || flux[head] < threshold {
			continue
		}
		ch := Channel{}
		peak := 0.0
		cell := head
		for steps := 0; steps < maxWalk; steps++ {
			merge := claimed[cell]
			claimed[cell] = true
			ch.Cells = append(ch.Cells, cell)
			ch.Points = append(ch.Points, m.Centroid(cell))
			if flux[cell] > peak {
				peak = flux[cell]
			}
			if merge || cls.IsWater(cell) {
				break
			}
			next := down[cell]
			if next == None || (flux[next] < threshold && !cls.IsWater(next)) {
				break
			}
			cell = next
		}
		if len(ch.Cells) < 2 {
			// A head that immediately terminates is not a drawable
			// polyline; release it so a later walk may flow through.
			claimed[head] = false
			continue
		}
		ch.IsMajor = peak >= majorAt && majorAt > 0
		channels = append(channels, ch)
	}
	return channels
}
