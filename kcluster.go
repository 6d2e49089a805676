package kcluster

import (
	"context"
	"time"

	"github.com/hupe1980/kcluster/internal/kmeans"
)

// Seeder picks the initial k centers from the loaded points.
type Seeder = kmeans.Seeder

// FirstK seeds with the first k points in load order.
type FirstK = kmeans.FirstK

// RandomSample seeds with k distinct points drawn with a fixed seed.
type RandomSample = kmeans.RandomSample

// FixedCenters seeds with caller-provided centers.
type FixedCenters = kmeans.Fixed

// EmptyClusterPolicy decides what happens to a center that attracted no points.
type EmptyClusterPolicy = kmeans.EmptyClusterPolicy

const (
	// KeepCenter leaves an empty cluster's center where it was.
	KeepCenter = kmeans.KeepCenter
	// FailOnEmpty aborts the run with ErrDegenerateCluster.
	FailOnEmpty = kmeans.FailOnEmpty
	// Reseed moves an empty cluster's center onto the point farthest from its
	// own center.
	Reseed = kmeans.Reseed
)

// ParseEmptyClusterPolicy parses "keep", "fail" or "reseed".
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	return kmeans.ParseEmptyClusterPolicy(s)
}

// Seeding names a built-in Seeder.
type Seeding = kmeans.Seeding

const (
	SeedingFirstK = kmeans.SeedingFirstK
	SeedingRandom = kmeans.SeedingRandom
)

// ParseSeeding parses "first-k" or "random".
func ParseSeeding(s string) (Seeding, error) {
	return kmeans.ParseSeeding(s)
}

// Result is the outcome of a clustering run.
type Result struct {
	// Centers holds the final k centers; index i is cluster i.
	Centers [][]float64
	// Labels maps each input point to its cluster index.
	Labels []int
	// Sizes is the number of points per cluster.
	Sizes []int
	// Iterations is the number of assign/update cycles performed.
	Iterations int
	// Converged is false only when the iteration cap stopped the run.
	Converged bool
	// Inertia is the sum of squared distances from points to their center.
	Inertia float64
}

// Dimension returns the dimensionality of the centers.
func (r *Result) Dimension() int {
	if len(r.Centers) == 0 {
		return 0
	}
	return len(r.Centers[0])
}

// Cluster partitions points into k clusters with Lloyd's algorithm and
// returns the centers once they stop changing.
//
// points must all have the same, positive number of coordinates. They are
// never modified. When WithMaxIterations stops the run early, the partial
// result is returned together with an error matching ErrNotConverged.
func Cluster(ctx context.Context, points [][]float64, k int, optFns ...Option) (*Result, error) {
	o := applyOptions(optFns)

	logger := o.logger.WithK(k).WithCount(len(points))
	if len(points) > 0 {
		logger = logger.WithDimension(len(points[0]))
	}

	start := time.Now()
	res, err := kmeans.Run(ctx, points, k, kmeans.Config{
		Seeder:        o.seeder,
		EmptyCluster:  o.emptyCluster,
		MaxIterations: o.maxIterations,
		Workers:       o.workers,
		OnIteration: func(it kmeans.Iteration) {
			o.metricsCollector.RecordIteration(it.Moved, it.Duration)
			logger.LogIteration(ctx, it.Number, it.Moved, it.Duration)
		},
	})
	duration := time.Since(start)

	iterations := 0
	if res != nil {
		iterations = res.Iterations
	}
	err = translateError(err)
	o.metricsCollector.RecordRun(iterations, duration, err)
	logger.LogRun(ctx, iterations, res != nil && res.Converged, duration, err)

	if res == nil {
		return nil, err
	}

	out := &Result{
		Centers:    res.Centers,
		Labels:     res.Assignment.Labels(len(points)),
		Sizes:      res.Assignment.Sizes(),
		Iterations: res.Iterations,
		Converged:  res.Converged,
		Inertia:    res.Inertia,
	}
	return out, err
}
