// Package mesh builds the planar cell graph every later generation stage
// consumes: a blue-noise point set, its Delaunay triangulation, and the dual
// Voronoi cells clipped to the map rectangle.
//
// What:
//
//   - SamplePoints: Bridson-style Poisson-disc sampling over [0,W)×[0,H),
//     producing points no closer than minDist with O(1) neighborhood
//     rejection through a background grid.
//   - Build: Delaunay triangulation (fogleman/delaunay) plus, per cell, the
//     neighbor index list, the clipped Voronoi polygon, and the deduplicated
//     undirected edge list used by graph algorithms.
//   - Locator: uniform-grid nearest-site lookup for point→cell queries.
//   - Slope: advisory per-cell steepness from an elevation array.
//
// Why:
//
//   - All terrain fields (elevation, water class, flux) are arrays indexed by
//     cell; the mesh is the single canonical graph representation. Indices
//     are stable for the lifetime of one generation run and the mesh is
//     immutable once built.
//
// Invariants:
//
//   - Neighbor lists are mutually consistent: j ∈ Neighbors[i] ⟺ i ∈ Neighbors[j].
//   - Polygons are simple closed loops with ≥3 vertices, clipped to bounds.
//   - Centroid(i) returns the input site, NOT the polygon centroid; the two
//     differ and callers must not conflate them.
//
// Errors:
//
//   - ErrBadBounds: non-positive width or height.
//   - ErrBadMinDist: non-positive sampling distance.
//   - ErrTooFewPoints: fewer than 3 input points.
//   - ErrDegenerate: triangulation impossible (e.g. all points collinear).
//
// Complexity:
//
//   - SamplePoints: O(N·k) with k candidate attempts per active sample.
//   - Build: O(N log N) triangulation + O(N·d²) polygon clipping,
//     d = mean neighbor count (≈6 for Poisson-disc input).
package mesh
