package kmeans

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("kmeans: k must be positive")

	// ErrInvalidDimension is returned when points have zero coordinates.
	ErrInvalidDimension = errors.New("kmeans: dimension must be positive")

	// ErrTooFewPoints is returned when there are fewer points than clusters.
	ErrTooFewPoints = errors.New("kmeans: fewer points than clusters")

	// ErrTooManyPoints is returned when point indices do not fit a uint32.
	ErrTooManyPoints = errors.New("kmeans: too many points")

	// ErrEmptyCluster is matched by DegenerateClusterError.
	ErrEmptyCluster = errors.New("kmeans: cluster received no points")

	// ErrNotConverged is returned when MaxIterations is reached first.
	ErrNotConverged = errors.New("kmeans: iteration limit reached before convergence")
)

// DimensionError reports a point or center whose coordinate count differs
// from the dimension of the first point.
//
// Index is the point index, or -1 when a seeded center is at fault.
type DimensionError struct {
	Index    int
	Expected int
	Actual   int
}

func (e *DimensionError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("kmeans: center dimension mismatch: expected %d, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("kmeans: point %d dimension mismatch: expected %d, got %d", e.Index, e.Expected, e.Actual)
}

// DegenerateClusterError is returned under FailOnEmpty when a center
// attracts no points.
type DegenerateClusterError struct {
	Cluster   int
	Iteration int
}

func (e *DegenerateClusterError) Error() string {
	return fmt.Sprintf("kmeans: cluster %d received no points in iteration %d", e.Cluster, e.Iteration)
}

// Is reports whether target is ErrEmptyCluster.
func (e *DegenerateClusterError) Is(target error) bool { return target == ErrEmptyCluster }
