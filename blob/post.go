package blob

import (
	"math"
	"sort"

	"github.com/katalvlaran/terragraph/field"
	"github.com/katalvlaran/terragraph/mesh"
)

// sinkDelta places suppressed islands just below sea level rather than at
// zero, so shallow-water shading around them stays plausible.
const sinkDelta = 0.01

// SinkMargins scales elevation down inside a border band (bandFrac of the
// shorter map side): a cell at the frame goes to zero, a cell at the inner
// band edge keeps its height, linear in between. Discourages land from
// touching the map bounds.
//
// Complexity: O(N).
func SinkMargins(m *mesh.Mesh, elev field.Field, bandFrac float64) {
	if bandFrac <= 0 {
		return
	}
	band := bandFrac * math.Min(m.Width, m.Height)
	for i, s := range m.Sites {
		d := math.Min(math.Min(s.X, s.Y), math.Min(m.Width-s.X, m.Height-s.Y))
		if d < band {
			elev[i] *= d / band
		}
	}
}

// SuppressSmallIslands labels land connected components (elevation strictly
// above seaLevel) by flood fill, keeps the keepLargest biggest plus any
// component of at least minSize cells, and sinks every other component to
// just below sea level.
//
// Returns the per-cell component label after suppression: the component
// index (in discovery order) for surviving land cells, −1 for water and
// sunk cells.
//
// Complexity: O(N·d) time, O(N) memory.
func SuppressSmallIslands(m *mesh.Mesh, elev field.Field, seaLevel float64, keepLargest, minSize int) []int {
	n := m.Len()
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}

	// Flood-fill land components in index order, so component ids are
	// deterministic.
	var sizes []int
	queue := make([]int, 0, n)
	for start := 0; start < n; start++ {
		if labels[start] >= 0 || elev[start] <= seaLevel {
			continue
		}
		comp := len(sizes)
		labels[start] = comp
		queue = queue[:0]
		queue = append(queue, start)
		size := 0
		for qi := 0; qi < len(queue); qi++ {
			c := queue[qi]
			size++
			for _, nb := range m.Neighbors[c] {
				if labels[nb] < 0 && elev[nb] > seaLevel {
					labels[nb] = comp
					queue = append(queue, nb)
				}
			}
		}
		sizes = append(sizes, size)
	}

	// Rank components by size, descending; ties keep discovery order.
	order := make([]int, len(sizes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return sizes[order[a]] > sizes[order[b]]
	})

	keep := make([]bool, len(sizes))
	for rank, comp := range order {
		if rank < keepLargest || sizes[comp] >= minSize {
			keep[comp] = true
		}
	}

	sunk := seaLevel - sinkDelta
	if sunk < 0 {
		sunk = 0
	}
	for i := range labels {
		if labels[i] >= 0 && !keep[labels[i]] {
			elev[i] = sunk
			labels[i] = -1
		}
	}
	return labels
}
