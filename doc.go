// Package farthest implements complete-linkage (farthest-neighbor)
// agglomerative clustering over a precomputed distance matrix.
//
// Starting from an initial partition of n entities into clusters, the
// algorithm repeatedly finds the pair of clusters whose farthest member
// pair is closest and merges it, stopping when no pair lies strictly below
// the threshold or a single cluster remains. Two clusters are "close" only
// when their worst-case member pair is close: every member of a merged
// cluster ends up within the threshold of every other member, which makes
// the result robust against chaining.
//
// Basic usage:
//
//	cfg := farthest.DefaultConfig()
//	cfg.Threshold = 0.23
//	result, err := farthest.Cluster(distMatrix, initialLabels, cfg)
//	// result.Labels[i] is the 1-based cluster label for entity i.
//
// distMatrix is a flat []float64 of length n*n in row-major order, as
// produced by ComputePairwiseDistances. Callers holding raw observations
// can use ClusterPoints; callers holding a gonum matrix can use
// ClusterMatrix.
//
// # Output labeling
//
// Result labels are surviving storage-slot ids plus one. Slots emptied by
// a merge never reappear, so the label set may be a sparse subset of
// [1, n]; the core deliberately does not renumber. Use Compact or
// OrderBySize when a dense 1..k numbering is wanted.
package farthest
