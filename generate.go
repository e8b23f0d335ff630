package terragraph

import (
	"github.com/katalvlaran/terragraph/blob"
	"github.com/katalvlaran/terragraph/coastline"
	"github.com/katalvlaran/terragraph/field"
	"github.com/katalvlaran/terragraph/hydro"
	"github.com/katalvlaran/terragraph/mesh"
	"github.com/katalvlaran/terragraph/river"
	"github.com/katalvlaran/terragraph/rng"
	"github.com/katalvlaran/terragraph/shape"
)

// Stage names reported through WithStageHook, in pipeline order.
const (
	StageSample    = "sample"
	StageMesh      = "mesh"
	StageElevation = "elevation"
	StageClassify  = "classify"
	StageCoastline = "coastline"
	StageRivers    = "rivers"
)

// Option configures a single Generate call.
type Option func(*pipeline)

type pipeline struct {
	onStage func(stage string)
	onEvent func(event string)
}

// WithStageHook reports each stage name just before the stage runs.
// Panics if fn is nil.
func WithStageHook(fn func(stage string)) Option {
	if fn == nil {
		panic("terragraph: nil stage hook")
	}
	return func(p *pipeline) { p.onStage = fn }
}

// WithEventHook receives in-stage events, such as the blob engine's
// empty-result failsafe. Panics if fn is nil.
func WithEventHook(fn func(event string)) Option {
	if fn == nil {
		panic("terragraph: nil event hook")
	}
	return func(p *pipeline) { p.onEvent = fn }
}

// Map is the immutable result of one generation run. All per-cell slices
// are indexed by mesh cell.
type Map struct {
	// Mesh is the cell topology the fields below are defined over.
	Mesh *mesh.Mesh

	// Elevation in [0,1] and the sea level it was cut at.
	Elevation field.Field
	SeaLevel  float64

	// Water holds the land/ocean/lake partition with coast, shallow, and
	// coast-distance fields.
	Water *hydro.Classification

	// Slope is the advisory per-cell steepness in [0,1].
	Slope []float64

	// Coastlines are the closed land/ocean boundary loops.
	Coastlines []coastline.Loop

	// Rivers is the downhill flow network and its extracted channels.
	Rivers *river.Network

	// Labels are island component ids from small-island suppression, −1
	// for water and sunk cells; nil when the pass did not run.
	Labels []int

	loc *mesh.Locator
}

// LandFraction reports the fraction of cells classified Land.
func (mp *Map) LandFraction() float64 {
	land := 0
	for i := 0; i < mp.Mesh.Len(); i++ {
		if !mp.Water.IsWater(i) {
			land++
		}
	}
	return float64(land) / float64(mp.Mesh.Len())
}

// CellAt returns the index of the cell whose site is nearest to p.
func (mp *Map) CellAt(p mesh.Point) int { return mp.loc.Nearest(p) }

// Generate runs the full pipeline for cfg: sample, mesh, elevation engine,
// classification, coastline extraction, river routing. Stages run in this
// fixed order and draw from a single RNG stream, so a (seed, config) pair is
// byte-for-byte reproducible. The Map is freshly built and handed off only
// on success.
//
// Returns ErrBadConfig or a stage sentinel (mesh.ErrTooFewPoints,
// mesh.ErrDegenerate, blob.ErrBadParams, ...).
func Generate(cfg Config, opts ...Option) (*Map, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	p := &pipeline{
		onStage: func(string) {},
		onEvent: func(string) {},
	}
	for _, opt := range opts {
		opt(p)
	}

	stream := rng.NewString(cfg.Seed)

	p.onStage(StageSample)
	pts, err := mesh.SamplePoints(cfg.Width, cfg.Height, cfg.MinDist, stream)
	if err != nil {
		return nil, err
	}

	p.onStage(StageMesh)
	m, err := mesh.Build(pts, cfg.Width, cfg.Height)
	if err != nil {
		return nil, err
	}
	if cfg.Precipitation != nil && len(cfg.Precipitation) != m.Len() {
		return nil, wrapConfig("precipitation length does not match cell count")
	}

	p.onStage(StageElevation)
	elev, sea, labels, err := p.synthesize(cfg, m, stream)
	if err != nil {
		return nil, err
	}

	p.onStage(StageClassify)
	water, err := hydro.Classify(m, elev, sea)
	if err != nil {
		return nil, err
	}

	p.onStage(StageCoastline)
	loops, err := coastline.Extract(m, water, cfg.Coast)
	if err != nil {
		return nil, err
	}

	p.onStage(StageRivers)
	rivers, err := river.Build(m, water, elev, cfg.Precipitation, cfg.River)
	if err != nil {
		return nil, err
	}

	return &Map{
		Mesh:       m,
		Elevation:  elev,
		SeaLevel:   sea,
		Water:      water,
		Slope:      m.Slope(elev, cfg.SlopeScale),
		Coastlines: loops,
		Rivers:     rivers,
		Labels:     labels,
		loc:        mesh.NewLocator(m),
	}, nil
}

// synthesize runs the configured elevation engine and resolves the sea
// level. Labels are non-nil only for the blob engine with suppression on.
func (p *pipeline) synthesize(cfg Config, m *mesh.Mesh, stream *rng.Stream) (field.Field, float64, []int, error) {
	src := cfg.source()

	if cfg.Engine == EngineTemplate {
		sopt := cfg.Shape
		if cfg.Sea == SeaByLandFraction {
			sopt.TargetLandFraction = cfg.TargetLandFraction
		}
		res, err := shape.Build(m, src, sopt)
		if err != nil {
			return nil, 0, nil, err
		}
		sea := res.SeaLevel
		if cfg.Sea == SeaFixed {
			sea = cfg.FixedSeaLevel
		}
		return res.Elevation, sea, nil, nil
	}

	engine, err := blob.New(m, src, stream, blob.WithEventHook(p.onEvent))
	if err != nil {
		return nil, 0, nil, err
	}
	if err = engine.Run(cfg.BlobTemplate, cfg.Blob); err != nil {
		return nil, 0, nil, err
	}
	elev := engine.Elevation()

	if cfg.MarginBandFrac > 0 {
		blob.SinkMargins(m, elev, cfg.MarginBandFrac)
	}

	var sea float64
	if cfg.Sea == SeaFixed {
		sea = cfg.FixedSeaLevel
	} else {
		sea = elev.Quantile(1 - clampLandFraction(cfg.TargetLandFraction))
	}

	var labels []int
	if cfg.KeepLargestIslands > 0 || cfg.MinIslandSize > 0 {
		labels = blob.SuppressSmallIslands(m, elev, sea, cfg.KeepLargestIslands, cfg.MinIslandSize)
	}
	return elev, sea, labels, nil
}
