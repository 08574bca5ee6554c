package farthest

import (
	"math/rand"
	"testing"
)

// randSymMatrix fills a flat n×n symmetric matrix with values in [0, 1)
// and a zero diagonal.
func randSymMatrix(n int, rng *rand.Rand) []float64 {
	dist := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := rng.Float64()
			dist[i*n+j] = d
			dist[j*n+i] = d
		}
	}
	return dist
}

func TestScanClosestPairParallel_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for _, n := range []int{2, 3, 7, 16, 33} {
		dist := randSymMatrix(n, rng)
		labels := make([]int, n)
		for i := range labels {
			labels[i] = rng.Intn(n) + 1
		}
		p := mustPartition(t, labels)

		wantI, wantJ, wantD, wantFound := scanClosestPair(dist, n, p)
		for _, workers := range []int{2, 3, 4, 7, 64} {
			gotI, gotJ, gotD, gotFound := scanClosestPairParallel(dist, n, p, workers)
			if gotI != wantI || gotJ != wantJ || gotD != wantD || gotFound != wantFound {
				t.Errorf("n=%d workers=%d: parallel scan (%d, %d, %v, %v) != sequential (%d, %d, %v, %v)",
					n, workers, gotI, gotJ, gotD, gotFound, wantI, wantJ, wantD, wantFound)
			}
		}
	}
}

func TestScanClosestPairParallel_MatchesSequentialAfterMerges(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	n := 20
	dist := randSymMatrix(n, rng)

	labels := make([]int, n)
	for i := range labels {
		labels[i] = i + 1
	}
	p := mustPartition(t, labels)

	// Interleave merges with scans so empty slots appear mid-partition.
	for p.Live() > 1 {
		wantI, wantJ, wantD, wantFound := scanClosestPair(dist, n, p)
		for _, workers := range []int{2, 5, 8} {
			gotI, gotJ, gotD, gotFound := scanClosestPairParallel(dist, n, p, workers)
			if gotI != wantI || gotJ != wantJ || gotD != wantD || gotFound != wantFound {
				t.Fatalf("live=%d workers=%d: parallel scan diverged from sequential", p.Live(), workers)
			}
		}
		if !wantFound {
			break
		}
		p.Merge(wantI, wantJ)
	}
}

func TestScanClosestPairParallel_FallsBackForOneWorker(t *testing.T) {
	dist := symMatrix(2, map[[2]int]float64{{0, 1}: 1.5})
	p := mustPartition(t, []int{1, 2})

	i, j, d, found := scanClosestPairParallel(dist, 2, p, 1)
	if !found || i != 0 || j != 1 || d != 1.5 {
		t.Errorf("expected (0, 1, 1.5, true), got (%d, %d, %f, %v)", i, j, d, found)
	}
}

func TestComputePairwiseDistancesParallel_MatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	n, dims := 30, 5
	data := make([]float64, n*dims)
	for i := range data {
		data[i] = rng.Float64()
	}

	want := ComputePairwiseDistances(data, n, dims, EuclideanMetric{})
	for _, workers := range []int{2, 3, 8} {
		got := ComputePairwiseDistancesParallel(data, n, dims, EuclideanMetric{}, workers)
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("workers=%d: element %d differs: %v != %v", workers, i, got[i], want[i])
			}
		}
	}
}
