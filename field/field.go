// Package field provides the per-cell scalar buffer shared by the elevation
// engines, together with the non-linear blend operators used to compose blob
// contributions and the normalization/quantile helpers the sea-level logic
// builds on.
//
// What:
//
//   - Field: a []float64 with one value per mesh cell.
//   - Accumulate: in-place composition of a contribution field through a
//     BlendFunc; Add and Carve are the two canonical operators.
//   - Normalize: global min-max rescale to a target range (gonum/floats).
//   - Quantile: empirical quantile of the value distribution (gonum/stat).
//
// Why:
//
//   - Blob composition must not saturate: many overlapping additive blobs
//     asymptotically approach 1.0 but never reach it, because Add re-weights
//     the existing value (0.72) and the increment (0.62) before clamping.
//     Carving is weighted to win against prior fill (0.85 of the increment
//     is removed).
//
// Concurrency: a Field is owned by exactly one pipeline stage at a time;
// no internal locking.
package field

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Blend coefficients for composing blob contributions onto elevation.
// Chosen so repeated additive application converges below 1.0 and carving
// dominates prior fill.
const (
	addOldWeight = 0.72
	addIncWeight = 0.62
	carveWeight  = 0.85
)

// Field is a scalar value per mesh cell.
type Field []float64

// New returns a zeroed field of n cells.
func New(n int) Field {
	return make(Field, n)
}

// Clone returns an independent copy of f.
func (f Field) Clone() Field {
	out := make(Field, len(f))
	copy(out, f)
	return out
}

// Fill sets every cell to v.
func (f Field) Fill(v float64) {
	for i := range f {
		f[i] = v
	}
}

// BlendFunc combines an existing cell value with an incoming increment.
type BlendFunc func(old, inc float64) float64

// Add is the saturating additive blend: min(1, old·0.72 + inc·0.62).
// For old < 1 and any finite number of bounded increments the result stays
// strictly below 1 until the clamp engages, which keeps stacked mountains
// from flattening into a plateau at the ceiling.
func Add(old, inc float64) float64 {
	v := old*addOldWeight + inc*addIncWeight
	if v > 1 {
		return 1
	}
	return v
}

// Carve is the subtractive blend: max(0, old − inc·0.85). Carving is
// weighted to win against prior fill so troughs cut through stacked blobs.
func Carve(old, inc float64) float64 {
	v := old - inc*carveWeight
	if v < 0 {
		return 0
	}
	return v
}

// Accumulate composes contribution g onto f in place through blend, skipping
// zero increments so untouched cells keep their exact value.
//
// Complexity: O(N).
func (f Field) Accumulate(g Field, blend BlendFunc) {
	for i, inc := range g {
		if inc == 0 {
			continue
		}
		f[i] = blend(f[i], inc)
	}
}

// Normalize rescales f in place so its minimum maps to lo and its maximum to
// hi. A constant field collapses to lo. Idempotent for a field already
// spanning [lo, hi].
//
// Complexity: O(N).
func (f Field) Normalize(lo, hi float64) {
	if len(f) == 0 {
		return
	}
	minV := floats.Min(f)
	maxV := floats.Max(f)
	span := maxV - minV
	if span == 0 {
		f.Fill(lo)
		return
	}
	floats.AddConst(-minV, f)
	floats.Scale((hi-lo)/span, f)
	floats.AddConst(lo, f)
}

// Quantile returns the empirical p-quantile of f's value distribution
// (p in [0,1]); f itself is not modified.
//
// Complexity: O(N log N) for the sorted copy.
func (f Field) Quantile(p float64) float64 {
	if len(f) == 0 {
		return 0
	}
	sorted := make([]float64, len(f))
	copy(sorted, f)
	sort.Float64s(sorted)
	return stat.Quantile(p, stat.Empirical, sorted, nil)
}

// Max returns the maximum value, or 0 for an empty field.
func (f Field) Max() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Max(f)
}

// Min returns the minimum value, or 0 for an empty field.
func (f Field) Min() float64 {
	if len(f) == 0 {
		return 0
	}
	return floats.Min(f)
}
