package kmeans

import (
	"fmt"
	"math/rand"
	"slices"
)

// Seeder picks the initial k centers.
// Implementations must return k fresh slices that do not alias points.
type Seeder interface {
	Seed(points [][]float64, k int) ([][]float64, error)
}

// FirstK seeds with the first k points in load order.
//
// This is only a good choice when the input order is random. Sorted input or
// a run of duplicate leading points gives poor or coinciding seeds.
type FirstK struct{}

// Seed implements Seeder.
func (FirstK) Seed(points [][]float64, k int) ([][]float64, error) {
	if len(points) < k {
		return nil, ErrTooFewPoints
	}
	centers := make([][]float64, k)
	for i := range centers {
		centers[i] = slices.Clone(points[i])
	}
	return centers, nil
}

// RandomSample seeds with k distinct points drawn with a fixed seed.
// The same seed over the same input always yields the same centers.
type RandomSample struct {
	RandSeed int64
}

// Seed implements Seeder.
func (r RandomSample) Seed(points [][]float64, k int) ([][]float64, error) {
	if len(points) < k {
		return nil, ErrTooFewPoints
	}
	rng := rand.New(rand.NewSource(r.RandSeed)) // nolint gosec
	perm := rng.Perm(len(points))

	centers := make([][]float64, k)
	for i := range centers {
		centers[i] = slices.Clone(points[perm[i]])
	}
	return centers, nil
}

// Fixed seeds with caller-provided centers.
type Fixed [][]float64

// Seed implements Seeder.
func (f Fixed) Seed(_ [][]float64, k int) ([][]float64, error) {
	if len(f) != k {
		return nil, fmt.Errorf("kmeans: %d fixed centers for k=%d", len(f), k)
	}
	centers := make([][]float64, k)
	for i, c := range f {
		centers[i] = slices.Clone(c)
	}
	return centers, nil
}

// Seeding names the built-in seeders for configuration surfaces.
type Seeding int

const (
	SeedingFirstK Seeding = iota
	SeedingRandom
)

func (s Seeding) String() string {
	switch s {
	case SeedingFirstK:
		return "first-k"
	case SeedingRandom:
		return "random"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// ParseSeeding parses the names produced by String.
func ParseSeeding(s string) (Seeding, error) {
	switch s {
	case "", "first-k":
		return SeedingFirstK, nil
	case "random":
		return SeedingRandom, nil
	default:
		return 0, fmt.Errorf("kmeans: unknown seeding %q", s)
	}
}

// Seeder returns the Seeder for s. seed is only used by SeedingRandom.
func (s Seeding) Seeder(seed int64) Seeder {
	if s == SeedingRandom {
		return RandomSample{RandSeed: seed}
	}
	return FirstK{}
}
