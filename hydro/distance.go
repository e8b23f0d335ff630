package hydro

import (
	"math"

	"github.com/katalvlaran/terragraph/mesh"
)

// distEps is the minimum improvement a relaxation must achieve to requeue a
// cell. Without it, floating-point edge sums could re-relax a cell forever
// on sub-ulp improvements.
const distEps = 1e-6

// relaxationBudgetFactor bounds total queue pops at factor·N. The epsilon
// guard keeps real runs far below this; hitting the bound means a bug.
const relaxationBudgetFactor = 64

// DistanceFrom computes the weighted graph distance from the seed set over
// the subgraph of cells accepted by within (nil accepts every cell). Edge
// weight is the Euclidean distance between cell sites. Seeds outside the
// subgraph are ignored; unreachable or excluded cells hold +Inf.
//
// The relaxation is queue-driven: a cell is requeued only when its distance
// improves by more than an epsilon, and total work is bounded defensively.
//
// Returns ErrNilMesh or ErrRelaxationDiverged.
//
// Complexity: O(relaxations·d); typically a small constant times O(N·d).
func DistanceFrom(m *mesh.Mesh, seeds []int, within func(int) bool) ([]float64, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	n := m.Len()

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Inf(1)
	}
	inQueue := make([]bool, n)
	queue := make([]int, 0, n)

	for _, s := range seeds {
		if s < 0 || s >= n || (within != nil && !within(s)) {
			continue
		}
		if dist[s] > 0 {
			dist[s] = 0
			if !inQueue[s] {
				inQueue[s] = true
				queue = append(queue, s)
			}
		}
	}

	budget := relaxationBudgetFactor * (n + 1)
	for qi := 0; qi < len(queue); qi++ {
		if qi >= budget {
			return nil, ErrRelaxationDiverged
		}
		c := queue[qi]
		inQueue[c] = false
		for _, nb := range m.Neighbors[c] {
			if within != nil && !within(nb) {
				continue
			}
			cand := dist[c] + m.Sites[c].Dist(m.Sites[nb])
			if cand+distEps < dist[nb] {
				dist[nb] = cand
				if !inQueue[nb] {
					inQueue[nb] = true
					queue = append(queue, nb)
				}
			}
		}
	}
	return dist, nil
}
