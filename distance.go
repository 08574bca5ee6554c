package farthest

import "math"

// DistanceMetric computes the distance between two observations. It is
// consumed by ClusterPoints when building a pairwise matrix; Cluster and
// ClusterMatrix take precomputed distances and never call it.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// HammingMetric counts the positions at which two observations differ.
// For genotypes encoded as one allele code per locus, this is the number
// of mismatched loci.
type HammingMetric struct{}

func (HammingMetric) Distance(a, b []float64) float64 {
	var mismatches float64
	for i := range a {
		if a[i] != b[i] {
			mismatches++
		}
	}
	return mismatches
}

// ProvestiMetric computes Provesti's distance: the fraction of positions
// at which two observations differ, in [0, 1]. This is the conventional
// genetic distance for multilocus genotype filtering and pairs naturally
// with thresholds expressed as a fraction of loci.
type ProvestiMetric struct{}

func (ProvestiMetric) Distance(a, b []float64) float64 {
	if len(a) == 0 {
		return 0
	}
	return HammingMetric{}.Distance(a, b) / float64(len(a))
}

// ComputePairwiseDistances computes the full n*n distance matrix.
// data is flat row-major with n rows and dims columns.
// Returns flat []float64 of length n*n.
func ComputePairwiseDistances(data []float64, n, dims int, metric DistanceMetric) []float64 {
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
