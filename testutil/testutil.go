package testutil

import (
	"math/rand"
	"strconv"
	"strings"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)), // nolint gosec
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// UniformPoints generates random points with coordinates in [0, 1).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num int, dimensions int) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dimensions)
	points := make([][]float64, num)

	for i := range num {
		p := data[i*dimensions : (i+1)*dimensions : (i+1)*dimensions]
		for j := range p {
			p[j] = r.rand.Float64()
		}
		points[i] = p
	}

	return points
}

// BlobPoints generates perCluster points around each center with gaussian
// noise of the given spread, then shuffles them so that first-k seeding
// sees a random order.
func (r *RNG) BlobPoints(centers [][]float64, perCluster int, spread float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	points := make([][]float64, 0, len(centers)*perCluster)
	for _, c := range centers {
		for range perCluster {
			p := make([]float64, len(c))
			for j := range p {
				p[j] = c[j] + r.rand.NormFloat64()*spread
			}
			points = append(points, p)
		}
	}

	r.rand.Shuffle(len(points), func(i, j int) {
		points[i], points[j] = points[j], points[i]
	})
	return points
}

// FormatInput encodes points in the text input format: a "K M" header line
// followed by one whitespace-separated line per point.
func FormatInput(k int, points [][]float64) string {
	dim := 0
	if len(points) > 0 {
		dim = len(points[0])
	}

	var sb strings.Builder
	sb.WriteString(strconv.Itoa(k))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(dim))
	sb.WriteByte('\n')
	for _, p := range points {
		for j, v := range p {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
