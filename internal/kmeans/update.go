package kmeans

import (
	"fmt"
	"slices"
	"strings"

	"github.com/RoaringBitmap/roaring/v2"
	"gonum.org/v1/gonum/floats"

	"github.com/hupe1980/kcluster/distance"
)

// EmptyClusterPolicy decides what happens to a center that attracted no points.
type EmptyClusterPolicy int

const (
	// KeepCenter leaves the center at its previous coordinates.
	KeepCenter EmptyClusterPolicy = iota
	// FailOnEmpty aborts the run with a DegenerateClusterError.
	FailOnEmpty
	// Reseed moves the center onto the point farthest from its own center.
	Reseed
)

func (p EmptyClusterPolicy) String() string {
	switch p {
	case KeepCenter:
		return "keep"
	case FailOnEmpty:
		return "fail"
	case Reseed:
		return "reseed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(p))
	}
}

// ParseEmptyClusterPolicy parses the names produced by String.
func ParseEmptyClusterPolicy(s string) (EmptyClusterPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "keep":
		return KeepCenter, nil
	case "fail":
		return FailOnEmpty, nil
	case "reseed":
		return Reseed, nil
	default:
		return 0, fmt.Errorf("kmeans: unknown empty cluster policy %q", s)
	}
}

// Centroid returns the per-dimension mean of the points in group.
// It reports false for an empty group.
//
// The mean is accumulated incrementally (m += (x-m)/n), which keeps the
// centroid of identical points bit-exact.
func Centroid(points [][]float64, group *roaring.Bitmap, dim int) ([]float64, bool) {
	if group.IsEmpty() {
		return nil, false
	}

	mean := make([]float64, dim)
	diff := make([]float64, dim)
	count := 0.0

	it := group.Iterator()
	for it.HasNext() {
		p := points[it.Next()]
		count++
		floats.SubTo(diff, p, mean)
		for d := range mean {
			mean[d] += diff[d] / count
		}
	}
	return mean, true
}

// Update computes the next generation of centers from an assignment.
// Slot i of the result is the centroid of group i; prev are the centers the
// assignment was built from and is never modified.
func Update(points [][]float64, asg Assignment, prev [][]float64, policy EmptyClusterPolicy) ([][]float64, error) {
	dim := len(prev[0])
	next := make([][]float64, len(prev))

	var empty []int
	for i, g := range asg.Groups {
		c, ok := Centroid(points, g, dim)
		if !ok {
			empty = append(empty, i)
			continue
		}
		next[i] = c
	}

	if len(empty) == 0 {
		return next, nil
	}

	switch policy {
	case FailOnEmpty:
		return nil, &DegenerateClusterError{Cluster: empty[0]}
	case Reseed:
		far := farthestPoints(points, asg, prev, len(empty))
		for j, i := range empty {
			next[i] = slices.Clone(points[far[j]])
		}
	default:
		for _, i := range empty {
			next[i] = slices.Clone(prev[i])
		}
	}
	return next, nil
}

// farthestPoints returns the indices of the n points farthest from the
// center of their own group, farthest first, lower index first on ties.
func farthestPoints(points [][]float64, asg Assignment, centers [][]float64, n int) []int {
	dists := make([]float64, len(points))
	for c, g := range asg.Groups {
		it := g.Iterator()
		for it.HasNext() {
			i := it.Next()
			dists[i] = distance.Default(points[i], centers[c])
		}
	}

	order := make([]int, len(points))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case dists[a] > dists[b]:
			return -1
		case dists[a] < dists[b]:
			return 1
		default:
			return 0
		}
	})

	if n > len(order) {
		n = len(order)
	}
	return order[:n]
}
