package noise

import "math"

// Value is the default noise Source: hash-based lattice value noise.
// Each integer lattice corner (xi, yi) is hashed together with the seed to a
// pseudo-random corner value; samples between corners are bilinearly
// interpolated with smoothstep easing.
//
// Value carries no mutable state and is safe to copy.
type Value struct {
	seed uint32
}

// NewValue returns a Value noise source for the given seed.
func NewValue(seed uint32) Value {
	return Value{seed: seed}
}

// At samples the noise field at (x, y), returning a value in [-1, 1].
//
// Complexity: O(1).
func (v Value) At(x, y float64) float64 {
	xf := math.Floor(x)
	yf := math.Floor(y)
	xi := int32(xf)
	yi := int32(yf)

	// Fractional position inside the lattice cell, smoothstep-eased.
	tx := smoothstep(x - xf)
	ty := smoothstep(y - yf)

	// Corner values in [0,1).
	c00 := corner(v.seed, xi, yi)
	c10 := corner(v.seed, xi+1, yi)
	c01 := corner(v.seed, xi, yi+1)
	c11 := corner(v.seed, xi+1, yi+1)

	top := lerp(c00, c10, tx)
	bot := lerp(c01, c11, tx)

	// Map [0,1) to [-1,1).
	return lerp(top, bot, ty)*2 - 1
}

// corner hashes (seed, xi, yi) to a stable pseudo-random value in [0,1).
// The multipliers are large odd constants chosen for bit diffusion; the
// final xorshift avalanches high bits into low ones.
func corner(seed uint32, xi, yi int32) float64 {
	h := seed + uint32(xi)*374761393 + uint32(yi)*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h ^= h >> 16
	return float64(h) / 4294967296.0
}

// smoothstep is the cubic Hermite ease 3t²−2t³ on [0,1].
func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// lerp linearly interpolates between a and b by t.
func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
