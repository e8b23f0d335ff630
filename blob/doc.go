// Package blob implements the primary elevation engine: terrain composed
// from decaying "blob" height fields grown over the cell graph.
//
// What:
//
//   - A blob is grown by breadth-first propagation from a seed cell: the seed
//     takes the configured peak; every propagated child takes
//     parent · effectiveRadius · randomModifier, where effectiveRadius is the
//     kind's radius perturbed by low-frequency coherent noise at the cell
//     position, and randomModifier ∈ [1−sharpness, 1] so children never
//     exceed the decayed parent value. A branch stops once its value falls
//     to the stop threshold.
//   - Blobs compose onto the shared elevation field through the non-linear
//     field.Add / field.Carve blends, so overlap does not saturate.
//   - Chains walk a random heading with per-step jitter, dropping a decayed
//     blob at every step — ridges when raising, troughs and straits when
//     carving. Carving uses a looser edge band than raising so basins can
//     reach near the map border.
//   - Scripts are fixed sequences of these operators (volcanic island, low
//     island, archipelago, continental islands) with per-kind seed sampling
//     windows biasing feature placement away from the frame.
//   - Post passes: margin sinking and small-island suppression.
//
// Failsafe:
//
//   - If a full script leaves no cell above a minimal height, a deterministic
//     circular disk is painted at the map's central cell so a degenerate run
//     still yields land. This is a defined fallback, not an error; it is
//     reported through the engine's event hook.
//
// Safe zone:
//
//   - Propagation consults a safe-zone mask hook before entering a cell.
//     The default mask accepts every cell; the hook is an extension point
//     and no constraint logic is implied.
//
// Complexity: one blob is O(reached cells); a script is O(ops · N) worst case.
package blob
