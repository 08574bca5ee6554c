package farthest

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ClusterMatrix clusters entities whose pairwise distances are held in a
// gonum matrix. m must be square with side len(labels); the diagonal is
// never read. Symmetric types such as *mat.SymDense satisfy mat.Matrix
// directly.
func ClusterMatrix(m mat.Matrix, labels []int, cfg Config) (*Result, error) {
	r, c := m.Dims()
	if r != c {
		return nil, fmt.Errorf("farthest: %dx%d distance matrix is not square: %w", r, c, ErrInvalidDimensions)
	}
	if r != len(labels) {
		return nil, fmt.Errorf("farthest: %dx%d distance matrix does not match %d labels: %w",
			r, c, len(labels), ErrInvalidDimensions)
	}

	n := r
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			dist[i*n+j] = m.At(i, j)
		}
	}
	return Cluster(dist, labels, cfg)
}
