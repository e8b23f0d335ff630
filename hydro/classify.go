package hydro

import (
	"errors"

	"github.com/katalvlaran/terragraph/mesh"
)

// Sentinel errors for classification and distance fields.
var (
	// ErrNilMesh indicates a nil mesh.
	ErrNilMesh = errors.New("hydro: mesh is nil")

	// ErrLengthMismatch indicates the elevation array does not match the
	// mesh cell count.
	ErrLengthMismatch = errors.New("hydro: elevation length does not match mesh")

	// ErrRelaxationDiverged indicates the distance relaxation exceeded its
	// defensive iteration bound: an internal invariant violation, not a
	// normal runtime condition.
	ErrRelaxationDiverged = errors.New("hydro: distance relaxation exceeded iteration bound")
)

// Class is the per-cell water/land category.
type Class uint8

const (
	// Land is any cell above sea level.
	Land Class = iota
	// Ocean is water connected to the map border through water.
	Ocean
	// Lake is water not reachable from the border through water.
	Lake
)

// borderEps is the tolerance for "polygon touches the map frame".
const borderEps = 1e-6

// Classification is the classifier output. All slices are indexed by cell.
type Classification struct {
	// Class holds the Land/Ocean/Lake partition.
	Class []Class

	// Coast marks land cells with at least one Ocean neighbor.
	Coast []bool

	// Shallow marks Ocean cells with at least one land neighbor.
	Shallow []bool

	// CoastDistance is the weighted graph distance from the nearest coast
	// cell, propagated along land-only edges. Coast cells are 0; water
	// cells and land unreachable from any coast hold +Inf.
	CoastDistance []float64
}

// IsWater reports whether cell i is Ocean or Lake.
func (c *Classification) IsWater(i int) bool { return c.Class[i] != Land }

// Classify partitions the mesh against seaLevel and derives the coast,
// shallow, and coast-distance fields. The elevation array is read-only;
// all outputs are freshly allocated and handed off on success only.
//
// Returns ErrNilMesh, ErrLengthMismatch, or ErrRelaxationDiverged (the
// latter only on an internal invariant violation).
//
// Complexity: O(N·d) classification + the relaxation cost.
func Classify(m *mesh.Mesh, elev []float64, seaLevel float64) (*Classification, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	n := m.Len()
	if len(elev) != n {
		return nil, ErrLengthMismatch
	}

	cls := &Classification{
		Class:   make([]Class, n),
		Coast:   make([]bool, n),
		Shallow: make([]bool, n),
	}

	// Wet cells start as Lake; the ocean flood fill promotes the reachable
	// ones. Land stays Land.
	wet := make([]bool, n)
	for i := range elev {
		if elev[i] <= seaLevel {
			wet[i] = true
			cls.Class[i] = Lake
		}
	}

	// Ocean flood fill seeded at every border-touching wet cell.
	queue := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if wet[i] && m.TouchesBorder(i, borderEps) {
			cls.Class[i] = Ocean
			queue = append(queue, i)
		}
	}
	for qi := 0; qi < len(queue); qi++ {
		c := queue[qi]
		for _, nb := range m.Neighbors[c] {
			if wet[nb] && cls.Class[nb] != Ocean {
				cls.Class[nb] = Ocean
				queue = append(queue, nb)
			}
		}
	}

	// Coast and shallow masks. Lakes deliberately do not produce coast.
	coastSeeds := make([]int, 0, n/8)
	for i := 0; i < n; i++ {
		switch cls.Class[i] {
		case Land:
			for _, nb := range m.Neighbors[i] {
				if cls.Class[nb] == Ocean {
					cls.Coast[i] = true
					coastSeeds = append(coastSeeds, i)
					break
				}
			}
		case Ocean:
			for _, nb := range m.Neighbors[i] {
				if cls.Class[nb] == Land {
					cls.Shallow[i] = true
					break
				}
			}
		}
	}

	dist, err := DistanceFrom(m, coastSeeds, func(i int) bool { return cls.Class[i] == Land })
	if err != nil {
		return nil, err
	}
	cls.CoastDistance = dist

	return cls, nil
}
