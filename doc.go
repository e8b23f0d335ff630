// Package terragraph generates planar terrain graphs — blue-noise cell
// meshes with elevation, water classification, coastlines and rivers — from
// a single string seed.
//
// 🚀 What is terragraph?
//
//	A deterministic, single-run terrain pipeline that brings together:
//		• Blue-noise sampling: Bridson Poisson-disc point sets
//		• Mesh topology: Delaunay adjacency + bounds-clipped Voronoi cells
//		• Two elevation engines: template+noise blend, and blob-field growth
//		• Water classification: ocean/lake flood fill, coast & shallow masks
//		• Coastline loops: snapped edge chaining with Chaikin smoothing
//		• River flow: downhill routing with precipitation flux accumulation
//
// ✨ Why choose terragraph?
//
//   - Reproducible – the same seed and config yield byte-identical maps
//   - Rock-solid guarantees – fail-fast config checks, sentinel errors
//   - Observable – stage & event hooks instead of hidden logging
//   - Extensible – every stage is its own subpackage with a small API
//
// Under the hood, everything is organized under leaf subpackages:
//
//	rng/       — seeded deterministic stream + substream derivation
//	noise/     — stateless lattice value noise, FBM, domain warp, backends
//	mesh/      — Poisson-disc sampling, Delaunay/Voronoi topology, locator
//	field/     — scalar cell fields with saturating blend operators
//	shape/     — template-blend elevation engine
//	blob/      — blob-field growth engine + post passes
//	hydro/     — land/ocean/lake classification and coast distances
//	coastline/ — boundary loop extraction and smoothing
//	river/     — downhill graph, flux accumulation, channel extraction
//
// Quick ASCII example:
//
//	~ ~ ~ ~ ~ ~
//	~ ▲ ▲ · ~ ~
//	~ ▲ ● ≈ · ~     ▲ high ground  ● peak  ≈ river  · coast  ~ ocean
//	~ · ≈ · ~ ~
//	~ ~ ~ ~ ~ ~
//
// Start with DefaultConfig, tweak what you need, and call Generate.
//
//	go get github.com/katalvlaran/terragraph
package terragraph
