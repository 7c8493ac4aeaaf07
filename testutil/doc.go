// Package testutil provides testing utilities for meshcomp.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random source, random compaction maps and grid
// mesh fixtures.
//
// # Random Data
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.Points(100)
//	newIndices := rng.CompactionMap(100, 0.25) // removes ~25% of the rows
//
// # Fixtures
//
//	testutil.Grid(vertices, faces, 4, 4) // 25 vertices, 32 triangles
package testutil
