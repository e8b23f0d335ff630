package mesh_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/terragraph/mesh"
	"github.com/katalvlaran/terragraph/rng"
)

//----------------------------------------------------------------------------//
// SamplePoints validation
//----------------------------------------------------------------------------//

// TestSamplePoints_Errors verifies fail-fast behavior on invalid geometry.
func TestSamplePoints_Errors(t *testing.T) {
	cases := []struct {
		name    string
		w, h, r float64
		err     error
	}{
		{"ZeroWidth", 0, 100, 10, mesh.ErrBadBounds},
		{"NegativeHeight", 100, -1, 10, mesh.ErrBadBounds},
		{"ZeroMinDist", 100, 100, 0, mesh.ErrBadMinDist},
		{"NegativeMinDist", 100, 100, -3, mesh.ErrBadMinDist},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := mesh.SamplePoints(tc.w, tc.h, tc.r, rng.New(1))
			if !errors.Is(err, tc.err) {
				t.Errorf("SamplePoints error = %v; want %v", err, tc.err)
			}
		})
	}
}

//----------------------------------------------------------------------------//
// Blue-noise guarantees
//----------------------------------------------------------------------------//

// TestSamplePoints_Spacing runs the canonical scenario: 100×100 map,
// seed "test-1", minDist 10. The point set must be non-empty, every point
// in [0,100)², and no two points closer than minDist (within tolerance).
func TestSamplePoints_Spacing(t *testing.T) {
	const minDist = 10.0
	pts, err := mesh.SamplePoints(100, 100, minDist, rng.NewString("test-1"))
	require.NoError(t, err)
	require.NotEmpty(t, pts)

	for i, p := range pts {
		require.GreaterOrEqual(t, p.X, 0.0, "point %d out of bounds", i)
		require.Less(t, p.X, 100.0, "point %d out of bounds", i)
		require.GreaterOrEqual(t, p.Y, 0.0, "point %d out of bounds", i)
		require.Less(t, p.Y, 100.0, "point %d out of bounds", i)
	}

	const tol = 1e-9
	for i := 0; i < len(pts); i++ {
		for j := i + 1; j < len(pts); j++ {
			require.GreaterOrEqual(t, pts[i].Dist(pts[j]), minDist-tol,
				"points %d and %d violate minimum spacing", i, j)
		}
	}
}

// TestSamplePoints_Deterministic verifies identical streams yield identical
// point sets, and different seeds yield different ones.
func TestSamplePoints_Deterministic(t *testing.T) {
	a, err := mesh.SamplePoints(200, 150, 8, rng.NewString("seed-A"))
	require.NoError(t, err)
	b, err := mesh.SamplePoints(200, 150, 8, rng.NewString("seed-A"))
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must reproduce the exact point set")

	c, err := mesh.SamplePoints(200, 150, 8, rng.NewString("seed-B"))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

// TestSamplePoints_Coverage checks that sampling fills the domain densely:
// the count should be within a plausible band for the packing density.
func TestSamplePoints_Coverage(t *testing.T) {
	pts, err := mesh.SamplePoints(100, 100, 5, rng.NewString("coverage"))
	require.NoError(t, err)
	// Theoretical max for r=5 in 100×100 is ~462 (hex packing);
	// Bridson typically reaches half that or more.
	require.Greater(t, len(pts), 200)
	require.Less(t, len(pts), 463)
}
