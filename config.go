package terragraph

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/terragraph/blob"
	"github.com/katalvlaran/terragraph/coastline"
	"github.com/katalvlaran/terragraph/noise"
	"github.com/katalvlaran/terragraph/river"
	"github.com/katalvlaran/terragraph/rng"
	"github.com/katalvlaran/terragraph/shape"
)

// ErrBadConfig is returned by Generate before any work begins when the
// configuration is invalid; the wrapped message names the offending field.
var ErrBadConfig = errors.New("terragraph: invalid configuration")

// EngineKind selects the elevation synthesis strategy.
type EngineKind uint8

const (
	// EngineTemplate blends a macro template with warped FBM noise.
	EngineTemplate EngineKind = iota
	// EngineBlob grows terrain from seeded decaying blob fields.
	EngineBlob
)

// NoiseBackend selects the coherent-noise source the engines sample.
type NoiseBackend uint8

const (
	// NoiseValue is the built-in hash-lattice value noise.
	NoiseValue NoiseBackend = iota
	// NoiseOpenSimplex uses an OpenSimplex gradient-noise backend.
	NoiseOpenSimplex
	// NoisePerlin uses a classic Perlin backend.
	NoisePerlin
)

// SeaMode selects how the sea level is chosen. The two modes are mutually
// exclusive by construction.
type SeaMode uint8

const (
	// SeaByLandFraction places the sea level at the elevation percentile
	// that yields TargetLandFraction land.
	SeaByLandFraction SeaMode = iota
	// SeaFixed uses FixedSeaLevel as-is.
	SeaFixed
)

// Land-fraction clamp bounds shared with the shape engine: maps below 5% or
// above 90% land degenerate for every downstream consumer.
const (
	minLandFraction = 0.05
	maxLandFraction = 0.90
)

// Config is the full pipeline configuration: values only, no behavior.
// Start from DefaultConfig.
type Config struct {
	// Seed keys the RNG stream and every noise source. Numeric seeds work
	// too; spell them as strings.
	Seed string

	// Width and Height are the map bounds in map units.
	Width, Height float64

	// MinDist is the Poisson-disc minimum spacing between cell sites.
	MinDist float64

	// Engine picks the elevation strategy; Noise its coherent-noise source.
	Engine EngineKind
	Noise  NoiseBackend

	// Sea selects the sea-level mode; exactly one of the two fields below
	// applies.
	Sea                SeaMode
	TargetLandFraction float64 // SeaByLandFraction: clamped to [0.05,0.90]
	FixedSeaLevel      float64 // SeaFixed: threshold in [0,1]

	// Shape parameterizes EngineTemplate. Its TargetLandFraction is
	// overridden by the pipeline's sea mode.
	Shape shape.Options

	// BlobTemplate and Blob parameterize EngineBlob.
	BlobTemplate blob.Template
	Blob         blob.Config

	// MarginBandFrac sinks elevation in a border band (fraction of the
	// shorter side) after blob growth; 0 disables the pass.
	MarginBandFrac float64

	// KeepLargestIslands and MinIslandSize drive small-island suppression
	// after blob growth; both zero disables the pass.
	KeepLargestIslands int
	MinIslandSize      int

	// SlopeScale multiplies the advisory slope field before clamping.
	SlopeScale float64

	// Coast tunes coastline snapping and smoothing; River the channel
	// thresholds.
	Coast coastline.Options
	River river.Params

	// Precipitation optionally supplies per-cell precipitation for river
	// flux; nil means uniform 1. Its length must match the generated cell
	// count.
	Precipitation []float64
}

// DefaultConfig returns a blob-grown volcanic island on a 400×400 map with
// a 30% land target.
func DefaultConfig(seed string) Config {
	return Config{
		Seed:               seed,
		Width:              400,
		Height:             400,
		MinDist:            8,
		Engine:             EngineBlob,
		Noise:              NoiseValue,
		Sea:                SeaByLandFraction,
		TargetLandFraction: 0.3,
		Shape:              shape.DefaultOptions(),
		BlobTemplate:       blob.VolcanicIsland,
		Blob:               blob.DefaultConfig(),
		MarginBandFrac:     0.06,
		KeepLargestIslands: 3,
		MinIslandSize:      12,
		SlopeScale:         25,
		Coast:              coastline.DefaultOptions(),
		River:              river.DefaultParams(),
	}
}

// validate fails fast on anything Generate cannot work with. Field-level
// checks owned by subpackages (blob params, coast options, river params)
// are surfaced by their own sentinels when the stage runs.
func (c Config) validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return wrapConfig("width and height must be positive")
	case c.MinDist <= 0:
		return wrapConfig("min distance must be positive")
	case c.MinDist >= c.Width || c.MinDist >= c.Height:
		return wrapConfig("min distance must be smaller than the map")
	case c.Engine > EngineBlob:
		return wrapConfig("unknown elevation engine")
	case c.Noise > NoisePerlin:
		return wrapConfig("unknown noise backend")
	case c.Sea > SeaFixed:
		return wrapConfig("unknown sea mode")
	case c.Sea == SeaByLandFraction && (c.TargetLandFraction <= 0 || c.TargetLandFraction >= 1):
		return wrapConfig("target land fraction must be in (0,1)")
	case c.Sea == SeaFixed && (c.FixedSeaLevel < 0 || c.FixedSeaLevel > 1):
		return wrapConfig("fixed sea level must be in [0,1]")
	case c.MarginBandFrac < 0 || c.MarginBandFrac > 0.5:
		return wrapConfig("margin band must be in [0,0.5]")
	case c.KeepLargestIslands < 0 || c.MinIslandSize < 0:
		return wrapConfig("island suppression counts must be non-negative")
	case c.SlopeScale <= 0:
		return wrapConfig("slope scale must be positive")
	}
	return nil
}

// source builds the configured noise backend, keyed by the run seed.
func (c Config) source() noise.Source {
	seed := rng.Seed(c.Seed)
	switch c.Noise {
	case NoiseOpenSimplex:
		return noise.NewOpenSimplex(seed)
	case NoisePerlin:
		return noise.NewPerlin(seed)
	default:
		return noise.NewValue(seed)
	}
}

func wrapConfig(msg string) error {
	return fmt.Errorf("%w: %s", ErrBadConfig, msg)
}

func clampLandFraction(f float64) float64 {
	if f < minLandFraction {
		return minLandFraction
	}
	if f > maxLandFraction {
		return maxLandFraction
	}
	return f
}
