// Package kcluster implements Lloyd's k-means clustering.
//
// Given points in M-dimensional space and a cluster count K, kcluster
// partitions the points into K groups and refines K centers until they stop
// changing.
//
// # Quick Start
//
//	points := [][]float64{{0}, {1}, {2}, {8}, {9}, {10}}
//	res, err := kcluster.Cluster(ctx, points, 2)
//	// res.Centers == [[1] [9]]
//
// # Algorithm
//
// Each iteration assigns every point to its nearest center under squared
// Euclidean distance (ties go to the lowest center index) and then replaces
// every center by the mean of its points. The run stops when a new center
// list is coordinate-wise identical to the previous one. There is no
// iteration cap unless WithMaxIterations is given.
//
// # Seeding
//
// By default the first K points in load order become the initial centers.
// This is only statistically sound for randomly ordered input. RandomSample
// draws K distinct points with a fixed seed instead.
//
// # Empty Clusters
//
// A center that attracts no points is handled by the configured
// EmptyClusterPolicy: KeepCenter (default), FailOnEmpty or Reseed.
//
// # Related Packages
//
//   - dataset: parse the "K M" text input format from any blob store
//   - report: round, render and persist results
//   - batch: cluster many datasets concurrently
//   - blobstore: local, in-memory, MinIO and S3 storage
package kcluster
