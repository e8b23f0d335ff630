// Package river routes precipitation over a classified mesh and extracts the
// channels carrying enough accumulated flux to read as rivers.
//
// What:
//
//   - Sea distance: weighted graph distance from the nearest water cell,
//     frontier seeded at every ocean and lake cell.
//   - Downhill selection: each land cell picks exactly one outgoing neighbor
//     with a three-tier fallback — (1) strictly smaller sea distance, ties by
//     lowest elevation then index; (2) strictly lower elevation; (3) the
//     neighbor minimizing (sea distance, elevation, index) so even plateau
//     cells drain somewhere. A target must either be water or come later in
//     the descending-elevation processing order, which makes the downhill
//     graph acyclic by construction rather than by empirical luck.
//   - Flux: cells are processed in descending elevation order; each starts at
//     its precipitation input and adds its finalized flux to its downhill
//     target. A cell's flux never changes after it has propagated.
//   - Channels: chains of cells whose flux clears max(fraction·maxFlux,
//     absolute minimum), walked downhill from high ground and truncated one
//     cell past the first merge into an already-claimed cell. A channel is
//     major when its peak flux clears a second, higher fraction.
//
// Errors: ErrNilMesh, ErrNilClassification, ErrLengthMismatch, ErrBadParams.
//
// Complexity: O(N·d) for selection and flux, O(N log N) for the elevation
// ordering, linear in channel cells for extraction.
package river
