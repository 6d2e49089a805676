package kmeans

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/kcluster/distance"
)

// cancelCheckInterval is how many points a worker assigns between context checks.
const cancelCheckInterval = 4096

// Assignment maps each center index to the indices of the points closest to it.
type Assignment struct {
	Groups []*roaring.Bitmap
}

// Sizes returns the number of points per group.
func (a Assignment) Sizes() []int {
	sizes := make([]int, len(a.Groups))
	for i, g := range a.Groups {
		sizes[i] = int(g.GetCardinality())
	}
	return sizes
}

// Labels returns, for each of the n points, the index of its group.
// Points that are in no group are labelled -1.
func (a Assignment) Labels(n int) []int {
	labels := make([]int, n)
	for i := range labels {
		labels[i] = -1
	}
	for c, g := range a.Groups {
		it := g.Iterator()
		for it.HasNext() {
			idx := int(it.Next())
			if idx < n {
				labels[idx] = c
			}
		}
	}
	return labels
}

// IsPartition reports whether the groups cover [0, n) exactly once each.
func (a Assignment) IsPartition(n int) bool {
	var total uint64
	for _, g := range a.Groups {
		total += g.GetCardinality()
	}
	if total != uint64(n) {
		return false
	}
	union := roaring.FastOr(a.Groups...)
	if union.GetCardinality() != uint64(n) {
		return false
	}
	return n == 0 || union.Maximum() == uint32(n-1)
}

// Nearest returns the index of the center closest to point and its squared
// distance. The scan starts at center 0 and only moves on a strictly smaller
// distance, so ties keep the earliest center.
func Nearest(point []float64, centers [][]float64) (int, float64) {
	best := 0
	minDist := distance.Default(point, centers[0])
	for j := 1; j < len(centers); j++ {
		d := distance.Default(point, centers[j])
		if d < minDist {
			minDist = d
			best = j
		}
	}
	return best, minDist
}

// Assign partitions points into one group per center.
//
// With workers > 1 the points are split into contiguous chunks that are
// assigned concurrently; Assign returns only after every chunk is done, so
// the result is identical to the sequential path.
func Assign(ctx context.Context, points, centers [][]float64, workers int) (Assignment, error) {
	n := len(points)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		groups := newGroups(len(centers))
		for i, p := range points {
			if i%cancelCheckInterval == 0 {
				if err := ctx.Err(); err != nil {
					return Assignment{}, err
				}
			}
			c, _ := Nearest(p, centers)
			groups[c].Add(uint32(i))
		}
		return Assignment{Groups: groups}, nil
	}

	chunk := (n + workers - 1) / workers
	partial := make([][]*roaring.Bitmap, 0, workers)

	g, gctx := errgroup.WithContext(ctx)
	for lo := 0; lo < n; lo += chunk {
		hi := min(lo+chunk, n)
		local := newGroups(len(centers))
		partial = append(partial, local)

		g.Go(func() error {
			for i := lo; i < hi; i++ {
				if (i-lo)%cancelCheckInterval == 0 {
					if err := gctx.Err(); err != nil {
						return err
					}
				}
				c, _ := Nearest(points[i], centers)
				local[c].Add(uint32(i))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Assignment{}, err
	}

	groups := make([]*roaring.Bitmap, len(centers))
	parts := make([]*roaring.Bitmap, len(partial))
	for c := range groups {
		for w, local := range partial {
			parts[w] = local[c]
		}
		groups[c] = roaring.FastOr(parts...)
	}
	return Assignment{Groups: groups}, nil
}

func newGroups(k int) []*roaring.Bitmap {
	groups := make([]*roaring.Bitmap, k)
	for i := range groups {
		groups[i] = roaring.New()
	}
	return groups
}
