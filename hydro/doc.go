// Package hydro classifies cells against a sea level and derives the coast
// geometry fields every later stage reads.
//
// What:
//
//   - Classify: wet cells (elevation ≤ sea level) are split into Ocean and
//     Lake by flood fill — the frontier starts at every wet cell whose
//     polygon touches the map frame, so Ocean is exactly the water reachable
//     from the border through water, and every remaining wet cell is a Lake.
//   - Coast: a land cell with at least one Ocean neighbor. A land cell
//     bordering only lakes is deliberately NOT coast.
//   - Shallow: an Ocean cell with at least one land neighbor.
//   - DistanceFrom: weighted graph-distance relaxation from a seed set,
//     edge weight = Euclidean centroid distance, with an epsilon guard so
//     floating-point edges cannot oscillate, and a defensive iteration
//     bound treated as an internal invariant violation when exceeded.
//
// Invariants:
//
//   - Exactly one of {Land, Ocean, Lake} holds per cell.
//   - Every Ocean cell reaches a border-touching water cell via Ocean only.
//   - No Lake cell is water-reachable from the border.
//
// Errors:
//
//   - ErrNilMesh, ErrLengthMismatch: invalid inputs.
//   - ErrRelaxationDiverged: the bounded relaxation exceeded its iteration
//     budget — a bug by construction, never a normal outcome.
//
// Complexity: Classify is O(N·d); DistanceFrom is O(relaxations·d) with the
// epsilon guard bounding relaxations per cell.
package hydro
