// Package distance provides the distance function used for cluster assignment.
//
// Only squared Euclidean distance is supported. The square root is never
// taken: assignment only compares distances, and the squared form preserves
// their ordering.
//
// # Usage
//
//	d := distance.SquaredL2(a, b)
package distance
