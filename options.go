package kcluster

import (
	"log/slog"

	"github.com/hupe1980/kcluster/internal/kmeans"
)

type options struct {
	seeder           kmeans.Seeder
	emptyCluster     EmptyClusterPolicy
	maxIterations    int
	workers          int
	metricsCollector MetricsCollector
	logger           *Logger
}

// Option configures a clustering run.
type Option func(*options)

// WithSeeder configures how the initial centers are chosen.
//
// If nil is passed, FirstK is used: the first k points in load order. That
// is only a sound choice when the input order is random.
func WithSeeder(s Seeder) Option {
	return func(o *options) {
		if s == nil {
			s = FirstK{}
		}
		o.seeder = s
	}
}

// WithEmptyClusterPolicy configures what happens to a center that receives
// no points. The default is KeepCenter.
func WithEmptyClusterPolicy(p EmptyClusterPolicy) Option {
	return func(o *options) {
		o.emptyCluster = p
	}
}

// WithMaxIterations caps the number of iterations.
// When the cap is reached the result is returned together with ErrNotConverged.
//
// If n <= 0 the loop runs until the centers stop changing.
func WithMaxIterations(n int) Option {
	return func(o *options) {
		o.maxIterations = n
	}
}

// WithWorkers configures how many goroutines assign points within one
// iteration. Every worker finishes before centers are recomputed, so the
// result does not depend on the worker count.
//
// If workers <= 1, assignment is sequential.
func WithWorkers(workers int) Option {
	return func(o *options) {
		o.workers = workers
	}
}

// WithMetricsCollector configures a metrics collector for monitoring runs.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &kcluster.BasicMetricsCollector{}
//	res, _ := kcluster.Cluster(ctx, points, 3, kcluster.WithMetricsCollector(metrics))
//	stats := metrics.GetStats()
//	fmt.Printf("Runs: %d, Iterations: %d\n", stats.RunCount, stats.IterationCount)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for runs.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := kcluster.NewJSONLogger(slog.LevelInfo)
//	res, _ := kcluster.Cluster(ctx, points, 3, kcluster.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		seeder:           FirstK{},
		emptyCluster:     KeepCenter,
		metricsCollector: NoopMetricsCollector{},
		logger:           NoopLogger(),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
