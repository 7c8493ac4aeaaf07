// Package conv provides safe integer type conversion utilities.
//
// Row counts are plain ints in the public API while rows and references are
// stored as 32-bit core.Index values. These helpers check the narrowing.
//
// Use cases:
//   - Validating counts read from snapshots
//   - Converting container sizes to row indices
//
// Loop indices bounded by a container size use MustIndex or a direct cast.
package conv
