package kmeans

import (
	"context"
	"errors"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kcluster/distance"
)

// Config controls a clustering run. The zero value is the plain Lloyd loop:
// first-k seeding, empty centers kept in place, one worker, no iteration cap.
type Config struct {
	Seeder        Seeder
	EmptyCluster  EmptyClusterPolicy
	MaxIterations int
	Workers       int

	// OnIteration, if set, is called after every completed iteration.
	OnIteration func(Iteration)
}

// Iteration describes one assign/update cycle.
type Iteration struct {
	Number   int
	Moved    int // centers whose coordinates changed
	Duration time.Duration
}

// Result is the outcome of Run.
type Result struct {
	Centers    [][]float64
	Assignment Assignment
	Iterations int
	Converged  bool
	Inertia    float64
}

// Validate checks k and that every point has the same positive dimension.
// It returns that dimension.
func Validate(points [][]float64, k int) (int, error) {
	if k < 1 {
		return 0, ErrInvalidK
	}
	if len(points) < k {
		return 0, ErrTooFewPoints
	}
	if uint64(len(points)) > math.MaxUint32 {
		return 0, ErrTooManyPoints
	}
	dim := len(points[0])
	if dim < 1 {
		return 0, ErrInvalidDimension
	}
	for i, p := range points {
		if len(p) != dim {
			return 0, &DimensionError{Index: i, Expected: dim, Actual: len(p)}
		}
	}
	return dim, nil
}

// Run clusters points into k groups with Lloyd's algorithm.
//
// Each iteration assigns all points, recomputes every center and adopts the
// new centers. The run converges when no center moved. With MaxIterations > 0
// the run stops at the cap and returns the last result with ErrNotConverged.
func Run(ctx context.Context, points [][]float64, k int, cfg Config) (*Result, error) {
	dim, err := Validate(points, k)
	if err != nil {
		return nil, err
	}

	seeder := cfg.Seeder
	if seeder == nil {
		seeder = FirstK{}
	}
	centers, err := seeder.Seed(points, k)
	if err != nil {
		return nil, err
	}
	if len(centers) != k {
		return nil, ErrTooFewPoints
	}
	for _, c := range centers {
		if len(c) != dim {
			return nil, &DimensionError{Index: -1, Expected: dim, Actual: len(c)}
		}
	}

	res := &Result{}
	for iter := 1; ; iter++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		start := time.Now()

		asg, err := Assign(ctx, points, centers, cfg.Workers)
		if err != nil {
			return nil, err
		}

		next, err := Update(points, asg, centers, cfg.EmptyCluster)
		if err != nil {
			var dce *DegenerateClusterError
			if errors.As(err, &dce) {
				dce.Iteration = iter
			}
			return nil, err
		}

		moved := 0
		for i := range next {
			if !floats.Equal(centers[i], next[i]) {
				moved++
			}
		}

		centers = next
		res.Centers = centers
		res.Assignment = asg
		res.Iterations = iter

		if cfg.OnIteration != nil {
			cfg.OnIteration(Iteration{Number: iter, Moved: moved, Duration: time.Since(start)})
		}

		if moved == 0 {
			res.Converged = true
			break
		}
		if cfg.MaxIterations > 0 && iter >= cfg.MaxIterations {
			res.Inertia = Inertia(points, asg, centers)
			return res, ErrNotConverged
		}
	}

	res.Inertia = Inertia(points, res.Assignment, res.Centers)
	return res, nil
}

// Inertia is the sum of squared distances from each point to the center of
// its group.
func Inertia(points [][]float64, asg Assignment, centers [][]float64) float64 {
	var sum float64
	for c, g := range asg.Groups {
		it := g.Iterator()
		for it.HasNext() {
			sum += distance.Default(points[it.Next()], centers[c])
		}
	}
	return sum
}
