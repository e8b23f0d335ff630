// Package coastline extracts the land/ocean boundary of a classified mesh as
// closed point loops.
//
// What:
//
//   - Harvest: every polygon edge is canonicalized by snapping its endpoints
//     to a configurable decimal precision; an edge qualifies when exactly two
//     cells share it and one is land while the other is ocean. Edges with a
//     single incident cell lie on the map frame and are discarded.
//   - Chain: qualifying edges are walked into loops through an adjacency map
//     keyed by snapped endpoint. When more than one unused edge leaves a
//     vertex, the walk takes the one with the smallest turn from the incoming
//     direction, which keeps traversal smooth across junctions introduced by
//     floating-point imprecision. A loop closes when the walk returns to its
//     start vertex; chains that dead-end and loops shorter than 3 points are
//     discarded.
//   - Smooth: optional Chaikin corner cutting of closed rings. Each edge is
//     replaced by two points at parameters t and 1−t, wrapping around the
//     ring; every iteration doubles the point count.
//
// Loops carry an explicit closure: the first point is repeated at the end.
//
// Errors: ErrNilMesh, ErrNilClassification, ErrBadPrecision, ErrBadSmoothT.
//
// Complexity: harvesting is O(total polygon vertices); chaining is linear in
// qualifying edges; smoothing is O(points·2^iterations).
package coastline
