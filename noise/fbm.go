package noise

// Offsets applied to the two warp channels so they sample decorrelated
// regions of the same underlying field. Arbitrary non-integer constants,
// fixed forever for reproducibility.
const (
	warpOffAX = 5.2
	warpOffAY = 1.3
	warpOffBX = 9.7
	warpOffBY = 8.1
)

// FBMParams tunes the octave sum. Zero values are not meaningful; use
// DefaultFBMParams as a starting point.
type FBMParams struct {
	// Octaves is the number of summed noise layers.
	Octaves int
	// Lacunarity is the frequency multiplier between octaves (> 1).
	Lacunarity float64
	// Gain is the amplitude multiplier between octaves (< 1).
	Gain float64
	// Scale converts map-space coordinates to noise-space (cells per unit).
	Scale float64
}

// DefaultFBMParams returns the parameter set used by the elevation engines
// unless overridden: 4 octaves, lacunarity 2, gain 0.5, scale 0.01.
func DefaultFBMParams() FBMParams {
	return FBMParams{
		Octaves:    4,
		Lacunarity: 2.0,
		Gain:       0.5,
		Scale:      0.01,
	}
}

// FBM sums decaying octaves of src at (x, y) and returns a value in [-1, 1].
// The octave sum is divided by the total amplitude so the bound holds for
// any octave count.
//
// Complexity: O(Octaves) source lookups.
func FBM(src Source, x, y float64, p FBMParams) float64 {
	freq := p.Scale
	amp := 1.0
	sum := 0.0
	norm := 0.0
	for o := 0; o < p.Octaves; o++ {
		sum += amp * src.At(x*freq, y*freq)
		norm += amp
		freq *= p.Lacunarity
		amp *= p.Gain
	}
	if norm == 0 {
		return 0
	}
	return sum / norm
}

// DomainWarp perturbs (x, y) through two independently-offset noise channels
// and then samples src at the warped position. scale converts coordinates to
// noise-space; amp is the perturbation strength in map units.
//
// Complexity: O(1) — three source lookups.
func DomainWarp(src Source, x, y, scale, amp float64) float64 {
	wx := x + amp*src.At((x+warpOffAX)*scale, (y+warpOffAY)*scale)
	wy := y + amp*src.At((x+warpOffBX)*scale, (y+warpOffBY)*scale)
	return src.At(wx*scale, wy*scale)
}

// WarpFBM composes DomainWarp and FBM: coordinates are warped once, then the
// full octave sum is evaluated at the warped position. This is the noise the
// template-blend engine feeds on.
//
// Complexity: O(Octaves) source lookups.
func WarpFBM(src Source, x, y float64, p FBMParams, warpAmp float64) float64 {
	wx := x + warpAmp*src.At((x+warpOffAX)*p.Scale, (y+warpOffAY)*p.Scale)
	wy := y + warpAmp*src.At((x+warpOffBX)*p.Scale, (y+warpOffBY)*p.Scale)
	return FBM(src, wx, wy, p)
}
