package noise

import (
	"github.com/aquilax/go-perlin"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Source is the minimal sampling interface consumed by FBM and DomainWarp.
// Implementations must be pure: At must return the same value for the same
// coordinates regardless of call order.
type Source interface {
	// At samples the field at (x, y) and returns a value in [-1, 1].
	At(x, y float64) float64
}

// perlin.NewPerlin parameters shared by every Perlin backend instance.
// alpha is the weight falloff per octave, beta the harmonic scaling;
// n is the number of internal octaves.
const (
	perlinAlpha = 2.0
	perlinBeta  = 2.0
	perlinN     = 3
)

// OpenSimplex wraps ojrac/opensimplex-go as a Source.
type OpenSimplex struct {
	n opensimplex.Noise
}

// NewOpenSimplex returns an OpenSimplex-backed Source for the given seed.
func NewOpenSimplex(seed uint32) OpenSimplex {
	return OpenSimplex{n: opensimplex.New(int64(seed))}
}

// At samples open-simplex noise at (x, y); the library output is in [-1, 1].
func (o OpenSimplex) At(x, y float64) float64 {
	return o.n.Eval2(x, y)
}

// Perlin wraps aquilax/go-perlin as a Source.
type Perlin struct {
	p *perlin.Perlin
}

// NewPerlin returns a Perlin-backed Source for the given seed.
func NewPerlin(seed uint32) Perlin {
	return Perlin{p: perlin.NewPerlin(perlinAlpha, perlinBeta, perlinN, int64(seed))}
}

// At samples Perlin noise at (x, y). go-perlin's amplitude is below 1 in
// practice; no rescaling is applied so the [-1, 1] contract still holds.
func (p Perlin) At(x, y float64) float64 {
	return p.p.Noise2D(x, y)
}
