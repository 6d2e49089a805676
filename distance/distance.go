package distance

// Func is a function type for distance calculation.
type Func func(a, b []float64) float64

// SquaredL2 calculates the squared L2 (Euclidean) distance between two points.
// Assumes points are the same length (caller's responsibility); a shorter b
// panics with an index out of range.
func SquaredL2(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

// Default is the distance function used by the clustering engine for
// nearest-center search, inertia and farthest-point reseeding.
var Default Func = SquaredL2
