// Package testutil provides testing utilities for kcluster.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating reproducible random point sets and
// encoding them in the kcluster text input format.
//
// # Random Point Generation
//
//	rng := testutil.NewRNG(seed)
//	pts := rng.UniformPoints(1000, 3)         // uniform [0, 1)
//	pts = rng.BlobPoints(centers, 50, 0.1)    // gaussian blobs, shuffled
//
// # Input Encoding
//
//	text := testutil.FormatInput(k, pts)
package testutil
