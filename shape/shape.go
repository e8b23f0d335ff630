package shape

import (
	"errors"
	"math"

	"github.com/katalvlaran/terragraph/field"
	"github.com/katalvlaran/terragraph/mesh"
	"github.com/katalvlaran/terragraph/noise"
)

// Sentinel errors for the template engine.
var (
	// ErrNilMesh indicates a nil mesh was passed to Build.
	ErrNilMesh = errors.New("shape: mesh is nil")

	// ErrNilSource indicates a nil noise source was passed to Build.
	ErrNilSource = errors.New("shape: noise source is nil")
)

// Template selects the macro-shape evaluated before noise blending.
type Template int

const (
	// RadialIsland is one landmass centered on the map: inverse normalized
	// distance from the center, clamped to [0,1].
	RadialIsland Template = iota

	// Gradient is a cosine-eased ramp along a configurable axis, producing a
	// continental margin across the map.
	Gradient

	// TwinContinents is the max of two radial falloffs with centers offset
	// left and right of the map center.
	TwinContinents
)

// Blend weights between the macro template and the warped-FBM noise.
const (
	templateWeight = 0.72
	noiseWeight    = 0.28
)

// Land-fraction clamp bounds: a map below 5% or above 90% land degenerates
// for every downstream consumer.
const (
	minLandFraction = 0.05
	maxLandFraction = 0.90
)

// Options parameterizes Build. Zero value is not meaningful; start from
// DefaultOptions.
type Options struct {
	// Template picks the macro-shape.
	Template Template

	// AxisAngle is the gradient ramp direction in radians (Gradient only).
	AxisAngle float64

	// TwinOffset is the fractional X offset of the twin falloff centers from
	// the map center (TwinContinents only).
	TwinOffset float64

	// FBM tunes the noise octave sum; WarpAmp the domain-warp strength in
	// map units.
	FBM     noise.FBMParams
	WarpAmp float64

	// TargetLandFraction is the desired fraction of land cells, clamped to
	// [0.05, 0.90] before the percentile cut.
	TargetLandFraction float64
}

// DefaultOptions returns the radial-island setup with default FBM parameters
// and a 30% land target.
func DefaultOptions() Options {
	return Options{
		Template:           RadialIsland,
		AxisAngle:          0,
		TwinOffset:         0.2,
		FBM:                noise.DefaultFBMParams(),
		WarpAmp:            10,
		TargetLandFraction: 0.3,
	}
}

// Result is the engine output: a frozen elevation field in [0,1] and the
// chosen sea level. Classification is the water stage's job.
type Result struct {
	Elevation field.Field
	SeaLevel  float64
}

// Build synthesizes the elevation field for m: per cell, the macro template
// is evaluated at the site, blended 0.72/0.28 with domain-warped FBM noise
// mapped to [0,1], then the whole field is min-max normalized and the sea
// level picked at the (1 − targetLandFraction) percentile.
//
// Build writes only its own fresh field; on error nothing is produced.
//
// Complexity: O(N·octaves) + O(N log N).
func Build(m *mesh.Mesh, src noise.Source, opt Options) (*Result, error) {
	if m == nil {
		return nil, ErrNilMesh
	}
	if src == nil {
		return nil, ErrNilSource
	}

	elev := field.New(m.Len())
	for i, site := range m.Sites {
		t := evalTemplate(m, site, opt)
		n01 := (noise.WarpFBM(src, site.X, site.Y, opt.FBM, opt.WarpAmp) + 1) / 2
		elev[i] = templateWeight*t + noiseWeight*n01
	}
	elev.Normalize(0, 1)

	f := opt.TargetLandFraction
	if f < minLandFraction {
		f = minLandFraction
	}
	if f > maxLandFraction {
		f = maxLandFraction
	}
	sea := elev.Quantile(1 - f)

	return &Result{Elevation: elev, SeaLevel: sea}, nil
}

// evalTemplate returns the macro-shape value in ~[0,1] at p.
func evalTemplate(m *mesh.Mesh, p mesh.Point, opt Options) float64 {
	cx, cy := m.Width/2, m.Height/2
	switch opt.Template {
	case Gradient:
		// Project the site onto the ramp axis, normalized so the map
		// diagonal spans [0,1], then cosine-ease.
		dx, dy := math.Cos(opt.AxisAngle), math.Sin(opt.AxisAngle)
		span := math.Abs(dx)*m.Width + math.Abs(dy)*m.Height
		t := ((p.X-cx)*dx + (p.Y-cy)*dy + span/2) / span
		t = clamp01(t)
		return 0.5 - 0.5*math.Cos(math.Pi*t)
	case TwinContinents:
		off := opt.TwinOffset * m.Width
		a := radial(p, mesh.Point{X: cx - off, Y: cy}, m)
		b := radial(p, mesh.Point{X: cx + off, Y: cy}, m)
		return math.Max(a, b)
	default: // RadialIsland
		return radial(p, mesh.Point{X: cx, Y: cy}, m)
	}
}

// radial is the inverse normalized distance falloff from center, clamped.
func radial(p, center mesh.Point, m *mesh.Mesh) float64 {
	maxR := math.Hypot(m.Width, m.Height) / 2
	return clamp01(1 - p.Dist(center)/maxR)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
