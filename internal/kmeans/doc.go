// Package kmeans implements Lloyd's k-means clustering.
//
// The engine alternates two phases until the centers stop moving:
//
//  1. ASSIGNMENT: every point joins the group of its nearest center
//     (squared Euclidean distance, ties go to the lowest center index).
//  2. UPDATE: every center is replaced by the mean of its group.
//
// Convergence is exact: the loop stops when a freshly computed center list is
// coordinate-wise identical to the previous one. Without a MaxIterations cap
// the loop is unbounded.
//
// Groups are kept as roaring bitmaps of point indices, so a point's identity
// is its position in the input slice. Value-identical points on different
// input lines are distinct points.
package kmeans
