// Package noise provides stateless coherent 2D noise for elevation synthesis.
//
// What:
//
//   - Value: hash-based lattice value noise keyed directly by (seed, ⌊x⌋, ⌊y⌋),
//     bilinearly interpolated with smoothstep easing. Stateless by design:
//     the same (seed, x, y) always yields the same value regardless of call
//     order, which is required because elevation synthesis samples noise at
//     arbitrary, non-sequential coordinates.
//   - Source: the minimal sampling interface implemented by Value and by two
//     alternative backends wrapping ojrac/opensimplex-go and aquilax/go-perlin.
//   - FBM: fractional Brownian motion — decaying octave sum over any Source.
//   - DomainWarp: coordinate perturbation through two independently-offset
//     noise channels before a second lookup.
//
// Why:
//
//   - Terrain macro-shapes need low-frequency coherent fields, not white noise;
//     the stateful rng.Stream cannot serve here because its output depends on
//     draw order.
//   - Pluggable backends let callers trade the house lattice noise for simplex
//     or Perlin gradients without touching the synthesis code.
//
// Determinism:
//
//   - All three Sources are pure functions of (seed, x, y); two processes with
//     the same seed observe identical fields.
//
// Complexity:
//
//   - Value.At: O(1) — four lattice hashes and two lerps.
//   - FBM: O(octaves) lookups. DomainWarp: 3 lookups.
package noise
