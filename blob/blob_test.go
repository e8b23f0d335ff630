package blob_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragraph/blob"
	"github.com/katalvlaran/terragraph/field"
	"github.com/katalvlaran/terragraph/mesh"
	"github.com/katalvlaran/terragraph/noise"
	"github.com/katalvlaran/terragraph/rng"
)

// buildMesh is a shared fixture: a blue-noise mesh on a 200×200 map.
func buildMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	pts, err := mesh.SamplePoints(200, 200, 6, rng.NewString("blob-fixture"))
	require.NoError(t, err)
	m, err := mesh.Build(pts, 200, 200)
	require.NoError(t, err)
	return m
}

func newEngine(t *testing.T, m *mesh.Mesh, seed string, opts ...blob.Option) *blob.Engine {
	t.Helper()
	e, err := blob.New(m, noise.NewValue(rng.Seed(seed)), rng.NewString(seed), opts...)
	require.NoError(t, err)
	return e
}

//----------------------------------------------------------------------------//
// Construction and validation
//----------------------------------------------------------------------------//

// TestNew_NilInputs verifies the constructor sentinels.
func TestNew_NilInputs(t *testing.T) {
	m := buildMesh(t)
	src := noise.NewValue(1)
	stream := rng.New(1)

	_, err := blob.New(nil, src, stream)
	assert.True(t, errors.Is(err, blob.ErrNilMesh))
	_, err = blob.New(m, nil, stream)
	assert.True(t, errors.Is(err, blob.ErrNilSource))
	_, err = blob.New(m, src, nil)
	assert.True(t, errors.Is(err, blob.ErrNilStream))
}

// TestRun_BadConfig verifies parameter validation fails fast.
func TestRun_BadConfig(t *testing.T) {
	m := buildMesh(t)
	e := newEngine(t, m, "bad-config")

	cfg := blob.DefaultConfig()
	cfg.Params[blob.KindCore].Radius = 1.5 // decay factor must be < 1
	assert.True(t, errors.Is(e.Run(blob.VolcanicIsland, cfg), blob.ErrBadParams))

	cfg = blob.DefaultConfig()
	cfg.Windows[blob.KindHill] = blob.Window{X0: 0.9, Y0: 0.1, X1: 0.1, Y1: 0.9}
	assert.True(t, errors.Is(e.Run(blob.VolcanicIsland, cfg), blob.ErrBadParams))

	cfg = blob.DefaultConfig()
	assert.True(t, errors.Is(e.Run(blob.Template(99), cfg), blob.ErrUnknownTemplate))
}

//----------------------------------------------------------------------------//
// Growth behavior
//----------------------------------------------------------------------------//

// TestRun_RangeAndDeterminism verifies every template yields a normalized,
// reproducible field with land.
func TestRun_RangeAndDeterminism(t *testing.T) {
	m := buildMesh(t)
	templates := map[string]blob.Template{
		"volcanic":    blob.VolcanicIsland,
		"low":         blob.LowIsland,
		"archipelago": blob.Archipelago,
		"continental": blob.ContinentalIslands,
	}
	for name, tpl := range templates {
		t.Run(name, func(t *testing.T) {
			a := newEngine(t, m, "det-"+name)
			require.NoError(t, a.Run(tpl, blob.DefaultConfig()))
			ea := a.Elevation()

			for i, v := range ea {
				require.GreaterOrEqual(t, v, 0.0, "cell %d below range", i)
				require.LessOrEqual(t, v, 1.0, "cell %d above range", i)
			}
			require.Positive(t, ea.Max(), "script must produce some height")

			b := newEngine(t, m, "det-"+name)
			require.NoError(t, b.Run(tpl, blob.DefaultConfig()))
			require.Equal(t, ea, b.Elevation(), "same seed must reproduce the field")
		})
	}
}

// TestRun_LowIslandScale verifies the low-island script rescales relief to
// roughly a third of the normalized ceiling.
func TestRun_LowIslandScale(t *testing.T) {
	m := buildMesh(t)
	e := newEngine(t, m, "low-scale")
	require.NoError(t, e.Run(blob.LowIsland, blob.DefaultConfig()))
	assert.InDelta(t, 0.3, e.Elevation().Max(), 1e-9)
}

// TestRun_SeedSensitivity verifies different stream seeds move the terrain.
func TestRun_SeedSensitivity(t *testing.T) {
	m := buildMesh(t)
	a := newEngine(t, m, "seed-A")
	require.NoError(t, a.Run(blob.VolcanicIsland, blob.DefaultConfig()))
	b := newEngine(t, m, "seed-B")
	require.NoError(t, b.Run(blob.VolcanicIsland, blob.DefaultConfig()))
	assert.NotEqual(t, a.Elevation(), b.Elevation())
}

// TestSafeZone_BlocksPropagation verifies the safe-zone mask keeps blocked
// cells at zero through an entire script.
func TestSafeZone_BlocksPropagation(t *testing.T) {
	m := buildMesh(t)

	// Block the right half of the map, minus seeds placed there directly.
	blocked := func(cell int) bool { return m.Sites[cell].X < 100 }
	e := newEngine(t, m, "safe-zone", blob.WithSafeZone(blocked))
	require.NoError(t, e.Run(blob.VolcanicIsland, blob.DefaultConfig()))

	elev := e.Elevation()
	leftMass, rightMass := 0.0, 0.0
	for i, v := range elev {
		if m.Sites[i].X < 100 {
			leftMass += v
		} else {
			rightMass += v
		}
	}
	assert.Greater(t, leftMass, rightMass,
		"mask should confine almost all mass to the allowed half")
}

// TestFailsafe_Disk verifies a script that cannot produce land paints the
// deterministic central disk and reports the event.
func TestFailsafe_Disk(t *testing.T) {
	m := buildMesh(t)

	var events []string
	// Tiny peaks: the additive blend's fixed point stays far below the
	// failsafe minimum no matter how many blobs overlap.
	cfg := blob.DefaultConfig()
	for k := range cfg.Params {
		cfg.Params[k].Peak = 0.02
		cfg.Params[k].Stop = 0.015
	}

	e := newEngine(t, m, "failsafe", blob.WithEventHook(func(ev string) {
		events = append(events, ev)
	}))
	require.NoError(t, e.Run(blob.Archipelago, cfg))

	require.Contains(t, events, blob.EventFailsafeDisk)

	// Disk is centered: the central cell must now be the global maximum.
	elev := e.Elevation()
	center := mesh.Point{X: 100, Y: 100}
	var bestIdx int
	bestV := -1.0
	for i, v := range elev {
		if v > bestV {
			bestV, bestIdx = v, i
		}
	}
	assert.Less(t, m.Sites[bestIdx].Dist(center), 25.0,
		"failsafe peak should sit near the map center")
}

//----------------------------------------------------------------------------//
// Post passes
//----------------------------------------------------------------------------//

// TestSinkMargins verifies border cells are pulled down and interior cells
// untouched.
func TestSinkMargins(t *testing.T) {
	m := buildMesh(t)
	elev := field.New(m.Len())
	elev.Fill(1)

	blob.SinkMargins(m, elev, 0.1) // 20-unit band on a 200×200 map

	for i, s := range m.Sites {
		d := minBorderDist(m, s)
		if d >= 20 {
			assert.Equal(t, 1.0, elev[i], "interior cell %d modified", i)
		} else {
			assert.InDelta(t, d/20, elev[i], 1e-12, "border cell %d wrong ramp", i)
		}
	}
}

func minBorderDist(m *mesh.Mesh, s mesh.Point) float64 {
	d := s.X
	if s.Y < d {
		d = s.Y
	}
	if m.Width-s.X < d {
		d = m.Width - s.X
	}
	if m.Height-s.Y < d {
		d = m.Height - s.Y
	}
	return d
}

// TestSuppressSmallIslands builds two artificial islands and verifies only
// the larger survives with keepLargest=1 and a high minSize.
func TestSuppressSmallIslands(t *testing.T) {
	m := buildMesh(t)
	elev := field.New(m.Len())

	big := mesh.Point{X: 60, Y: 100}
	small := mesh.Point{X: 160, Y: 100}
	bigN, smallN := 0, 0
	for i, s := range m.Sites {
		switch {
		case s.Dist(big) < 40:
			elev[i] = 0.8
			bigN++
		case s.Dist(small) < 12:
			elev[i] = 0.8
			smallN++
		}
	}
	require.Positive(t, bigN)
	require.Positive(t, smallN)
	require.Greater(t, bigN, smallN)

	const sea = 0.5
	labels := blob.SuppressSmallIslands(m, elev, sea, 1, bigN)

	survivors := make(map[int]bool)
	for i, lb := range labels {
		if lb >= 0 {
			survivors[lb] = true
			require.Greater(t, elev[i], sea, "surviving land sits above sea level")
		} else {
			require.LessOrEqual(t, elev[i], sea, "sunk/water cells sit at or below sea level")
		}
	}
	assert.Len(t, survivors, 1, "only the big island survives")

	// The sunk island sits just below sea level, not at zero.
	for i, s := range m.Sites {
		if s.Dist(small) < 12 {
			assert.InDelta(t, sea-0.01, elev[i], 1e-12, "cell %d should be sunk just below sea", i)
		}
	}
}
