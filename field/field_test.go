package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragraph/field"
)

//----------------------------------------------------------------------------//
// Blend operators
//----------------------------------------------------------------------------//

// TestAdd_SaturationBound verifies the additive blend converges strictly
// below 1.0 for any finite number of applications when increments stay under
// the non-saturating bound (1−0.72)/0.62: the fixed point 0.62·inc/0.28 is
// then below the ceiling and the clamp never engages.
func TestAdd_SaturationBound(t *testing.T) {
	const inc = 0.45 // just under (1-0.72)/0.62 ≈ 0.4516
	v := 0.0
	for i := 0; i < 10000; i++ {
		v = field.Add(v, inc)
		require.Less(t, v, 1.0, "additive blend saturated at iteration %d", i)
	}
	// ...while converging close to the fixed point 0.62·inc/0.28.
	assert.InDelta(t, 0.62*inc/0.28, v, 1e-9)
}

// TestAdd_Clamp verifies values that would exceed 1 are clamped exactly.
func TestAdd_Clamp(t *testing.T) {
	assert.Equal(t, 1.0, field.Add(1.0, 1.0))
	assert.Equal(t, 1.0, field.Add(0.9, 0.8))
}

// TestCarve verifies subtraction is weighted and floored at zero.
func TestCarve(t *testing.T) {
	assert.InDelta(t, 0.15, field.Carve(1.0, 1.0), 1e-12, "carve removes 0.85 of the increment")
	assert.Equal(t, 0.0, field.Carve(0.1, 1.0), "carve floors at zero")
}

//----------------------------------------------------------------------------//
// Accumulate
//----------------------------------------------------------------------------//

// TestAccumulate verifies zero increments leave cells untouched and nonzero
// increments flow through the blend.
func TestAccumulate(t *testing.T) {
	f := field.Field{0.5, 0.5, 0.5}
	g := field.Field{0, 0.5, 1.0}
	f.Accumulate(g, field.Add)

	assert.Equal(t, 0.5, f[0], "zero increment must not re-blend")
	assert.InDelta(t, 0.5*0.72+0.5*0.62, f[1], 1e-12)
	assert.InDelta(t, 0.5*0.72+1.0*0.62, f[2], 1e-12)
}

//----------------------------------------------------------------------------//
// Normalize and Quantile
//----------------------------------------------------------------------------//

// TestNormalize covers the standard rescale, the constant-field collapse,
// and idempotence.
func TestNormalize(t *testing.T) {
	f := field.Field{2, 4, 6}
	f.Normalize(0, 1)
	assert.InDelta(t, 0.0, f[0], 1e-12)
	assert.InDelta(t, 0.5, f[1], 1e-12)
	assert.InDelta(t, 1.0, f[2], 1e-12)

	// Idempotent once in range.
	g := f.Clone()
	g.Normalize(0, 1)
	assert.InDeltaSlice(t, f, g, 1e-12)

	// Constant field collapses to lo.
	c := field.Field{3, 3, 3}
	c.Normalize(0.2, 0.9)
	for _, v := range c {
		assert.Equal(t, 0.2, v)
	}
}

// TestQuantile verifies the empirical quantile brackets the distribution and
// leaves the field unmodified.
func TestQuantile(t *testing.T) {
	f := field.Field{0.9, 0.1, 0.5, 0.3, 0.7}
	orig := f.Clone()

	q := f.Quantile(0.5)
	assert.Equal(t, 0.5, q)
	assert.Equal(t, orig, f, "Quantile must not reorder the field")

	assert.Equal(t, 0.1, f.Quantile(0.0))
	assert.Equal(t, 0.9, f.Quantile(1.0))
}

// TestQuantile_LandFractionLaw verifies the sea-level percentile law: the
// fraction of cells strictly above the (1−f) quantile is within one cell's
// weight of f.
func TestQuantile_LandFractionLaw(t *testing.T) {
	const n = 1000
	f := field.New(n)
	for i := range f {
		f[i] = float64(i) / n // distinct values
	}
	for _, frac := range []float64{0.05, 0.3, 0.5, 0.9} {
		sea := f.Quantile(1 - frac)
		land := 0
		for _, v := range f {
			if v > sea {
				land++
			}
		}
		got := float64(land) / n
		assert.InDelta(t, frac, got, 1.5/n, "land fraction off for f=%v", frac)
	}
}

// TestMinMax covers the empty-field guards.
func TestMinMax(t *testing.T) {
	var empty field.Field
	assert.Zero(t, empty.Max())
	assert.Zero(t, empty.Min())

	f := field.Field{-1, 2, 0.5}
	assert.Equal(t, 2.0, f.Max())
	assert.Equal(t, -1.0, f.Min())
}
