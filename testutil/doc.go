// Package testutil provides testing utilities for bitvec.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG plus generators for index sets and
// operation sequences used by the differential tests.
//
// # Random Index Sets
//
//	rng := testutil.NewRNG(seed)
//	ids := rng.Indices(1000, 1<<20)                 // uniform
//	ids = rng.ClusteredIndices(1000, 8, 512, 1<<24) // few dense segments
//	testutil.Fill(set, ids)
package testutil
