// Package batch clusters many datasets from one blob store with bounded
// concurrency. Jobs are independent: one failing dataset does not stop the
// others, and all failures are reported together.
package batch

import (
	"context"
	"fmt"
	"slices"
	"time"

	"go.uber.org/multierr"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kcluster"
	"github.com/hupe1980/kcluster/blobstore"
	"github.com/hupe1980/kcluster/dataset"
	"github.com/hupe1980/kcluster/report"
	"github.com/hupe1980/kcluster/resource"
)

// Options configures a Runner.
type Options struct {
	// Concurrency is the number of datasets clustered at once. Default: 1.
	Concurrency int

	// IOLimitBytesPerSec throttles dataset reads. 0 means unlimited.
	IOLimitBytesPerSec int64

	// MemoryLimitBytes bounds the coordinate memory of datasets being
	// clustered at once.
	// 0 means unlimited.
	MemoryLimitBytes int64

	// ClusterOptions are passed to every kcluster.Cluster call.
	ClusterOptions []kcluster.Option

	// Logger receives one line per job. Default: kcluster.NoopLogger().
	Logger *kcluster.Logger
}

// Outcome is the result of one job. Report is set whenever clustering
// produced centers, including runs that stopped with ErrNotConverged.
type Outcome struct {
	Name     string
	Report   *report.Report
	Err      error
	Duration time.Duration
}

// Runner runs clustering jobs against a blob store.
type Runner struct {
	store  blobstore.BlobStore
	rc     *resource.Controller
	opts   []kcluster.Option
	logger *kcluster.Logger
}

// NewRunner creates a Runner reading datasets from store.
func NewRunner(store blobstore.BlobStore, o Options) *Runner {
	rc := resource.NewController(resource.Config{
		MaxConcurrentRuns:  int64(o.Concurrency),
		IOLimitBytesPerSec: o.IOLimitBytesPerSec,
		MemoryLimitBytes:   o.MemoryLimitBytes,
	})
	logger := o.Logger
	if logger == nil {
		logger = kcluster.NoopLogger()
	}
	return &Runner{
		store:  resource.ThrottleStore(store, rc),
		rc:     rc,
		opts:   o.ClusterOptions,
		logger: logger,
	}
}

// Run clusters every named dataset. Outcomes are returned in the order of
// names. The error combines the failures of all jobs, or is ctx.Err() if
// ctx was canceled.
func (r *Runner) Run(ctx context.Context, names []string) ([]Outcome, error) {
	outcomes := make([]Outcome, len(names))
	for i, name := range names {
		outcomes[i].Name = name
	}

	var g errgroup.Group
	for i, name := range names {
		if err := r.rc.AcquireRun(ctx); err != nil {
			break
		}
		g.Go(func() error {
			defer r.rc.ReleaseRun()
			outcomes[i] = r.runOne(ctx, name)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return outcomes, err
	}

	var errs error
	for _, o := range outcomes {
		if o.Err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", o.Name, o.Err))
		}
	}
	return outcomes, errs
}

func (r *Runner) runOne(ctx context.Context, name string) Outcome {
	start := time.Now()
	out := Outcome{Name: name}
	logger := r.logger.WithDataset(name)

	ds, err := dataset.Load(ctx, r.store, name)
	if err != nil {
		out.Err = err
		out.Duration = time.Since(start)
		logger.ErrorContext(ctx, "dataset load failed", "error", err)
		return out
	}

	size := int64(len(ds.Points)) * int64(ds.M) * 8
	if err := r.rc.AcquireMemory(ctx, size); err != nil {
		out.Err = err
		out.Duration = time.Since(start)
		return out
	}
	defer r.rc.ReleaseMemory(size)

	opts := append(slices.Clone(r.opts), kcluster.WithLogger(logger))
	res, err := kcluster.Cluster(ctx, ds.Points, ds.K, opts...)
	if res != nil {
		out.Report = report.FromResult(name, res)
	}
	out.Err = err
	out.Duration = time.Since(start)
	return out
}
