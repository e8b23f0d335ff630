// Package shape implements the template-blend elevation engine: a parametric
// macro-shape combined with domain-warped FBM noise, normalized globally and
// cut by a sea level tuned to a target land fraction.
//
// What:
//
//   - Three macro templates evaluated per cell site:
//     RadialIsland — inverse normalized distance from the map center, clamped;
//     Gradient     — cosine-eased linear ramp along a configurable axis;
//     TwinContinents — max of two radial falloffs.
//   - Blend: v = 0.72·template + 0.28·noise01, then global min-max
//     normalization to [0,1] across all cells.
//   - Sea level: the elevation value at the (1 − targetLandFraction)
//     percentile; the target is clamped to [0.05, 0.90].
//
// Why:
//
//   - The template fixes the continental silhouette; the warped FBM supplies
//     coastline articulation and interior relief without destroying it.
//
// Errors:
//
//   - ErrNilMesh, ErrNilSource: missing collaborators. Out-of-range land
//     fraction targets are clamped rather than rejected.
//
// Complexity: O(N·octaves) noise lookups + O(N log N) for the percentile.
package shape
