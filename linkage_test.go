package farthest

import "testing"

// symMatrix builds a flat n×n symmetric matrix from upper-triangle entries.
func symMatrix(n int, entries map[[2]int]float64) []float64 {
	dist := make([]float64, n*n)
	for ij, d := range entries {
		i, j := ij[0], ij[1]
		dist[i*n+j] = d
		dist[j*n+i] = d
	}
	return dist
}

func TestCompleteLinkage_MaxOfPairs(t *testing.T) {
	dist := symMatrix(3, map[[2]int]float64{
		{0, 1}: 1.0,
		{0, 2}: 2.0,
		{1, 2}: 7.0,
	})

	d, found := CompleteLinkage(dist, 3, []int{0, 1}, []int{2})
	if !found {
		t.Fatal("expected a distance for two non-empty sets")
	}
	if d != 7.0 {
		t.Errorf("expected farthest-pair distance 7.0, got %f", d)
	}
}

func TestCompleteLinkage_SingletonPair(t *testing.T) {
	dist := symMatrix(2, map[[2]int]float64{{0, 1}: 0.25})
	d, found := CompleteLinkage(dist, 2, []int{0}, []int{1})
	if !found || d != 0.25 {
		t.Errorf("expected (0.25, true), got (%f, %v)", d, found)
	}
}

func TestCompleteLinkage_EmptySideNotFound(t *testing.T) {
	dist := symMatrix(2, map[[2]int]float64{{0, 1}: 1.0})
	if _, found := CompleteLinkage(dist, 2, nil, []int{1}); found {
		t.Error("expected not-found for an empty first set")
	}
	if _, found := CompleteLinkage(dist, 2, []int{0}, nil); found {
		t.Error("expected not-found for an empty second set")
	}
}

func TestCompleteLinkage_ZeroDistanceIsFound(t *testing.T) {
	// A legitimate zero distance must be distinguishable from "no pairs".
	dist := make([]float64, 4)
	d, found := CompleteLinkage(dist, 2, []int{0}, []int{1})
	if !found {
		t.Fatal("expected found for two non-empty sets at distance 0")
	}
	if d != 0 {
		t.Errorf("expected distance 0, got %f", d)
	}
}
