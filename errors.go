package kcluster

import (
	"errors"
	"fmt"

	"github.com/hupe1980/kcluster/internal/kmeans"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrTooFewPoints is returned when there are fewer points than clusters.
	ErrTooFewPoints = errors.New("fewer points than clusters")

	// ErrTooManyPoints is returned when the input has more points than
	// cluster groups can index (2^32).
	ErrTooManyPoints = errors.New("too many points")

	// ErrEmptyCluster is matched by ErrDegenerateCluster.
	ErrEmptyCluster = errors.New("cluster received no points")

	// ErrNotConverged is returned, alongside the last result, when the
	// iteration cap is reached before the centers settle.
	ErrNotConverged = errors.New("iteration limit reached before convergence")
)

// ErrDimensionMismatch indicates a point whose coordinate count differs from
// the dimension of the first point. Index is -1 for a seeded center.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrDimensionMismatch struct {
	Index    int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrDimensionMismatch) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("dimension mismatch in seeded center: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("dimension mismatch at point %d: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

func (e *ErrDimensionMismatch) Unwrap() error { return e.cause }

// ErrInvalidDimension indicates points without coordinates.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidDimension struct {
	Dimension int
	cause     error
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

func (e *ErrInvalidDimension) Unwrap() error { return e.cause }

// ErrDegenerateCluster reports a center that attracted no points while the
// FailOnEmpty policy is active.
type ErrDegenerateCluster struct {
	Cluster   int
	Iteration int
	cause     error
}

func (e *ErrDegenerateCluster) Error() string {
	return fmt.Sprintf("cluster %d received no points in iteration %d", e.Cluster, e.Iteration)
}

func (e *ErrDegenerateCluster) Unwrap() []error { return []error{ErrEmptyCluster, e.cause} }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var de *kmeans.DimensionError
	if errors.As(err, &de) {
		return &ErrDimensionMismatch{Index: de.Index, Expected: de.Expected, Actual: de.Actual, cause: err}
	}
	var dce *kmeans.DegenerateClusterError
	if errors.As(err, &dce) {
		return &ErrDegenerateCluster{Cluster: dce.Cluster, Iteration: dce.Iteration, cause: err}
	}
	if errors.Is(err, kmeans.ErrInvalidDimension) {
		return &ErrInvalidDimension{Dimension: 0, cause: err}
	}
	if errors.Is(err, kmeans.ErrInvalidK) {
		return fmt.Errorf("%w: %w", ErrInvalidK, err)
	}
	if errors.Is(err, kmeans.ErrTooFewPoints) {
		return fmt.Errorf("%w: %w", ErrTooFewPoints, err)
	}
	if errors.Is(err, kmeans.ErrTooManyPoints) {
		return fmt.Errorf("%w: %w", ErrTooManyPoints, err)
	}
	if errors.Is(err, kmeans.ErrNotConverged) {
		return fmt.Errorf("%w: %w", ErrNotConverged, err)
	}

	return err
}
