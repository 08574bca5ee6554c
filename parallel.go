package farthest

import "sync"

// ComputePairwiseDistancesParallel computes the full n×n distance matrix
// using multiple goroutines. data is flat row-major with n rows and dims
// columns. numWorkers controls the degree of parallelism; if <= 1, it
// falls back to single-threaded ComputePairwiseDistances.
//
// The result is bitwise identical to ComputePairwiseDistances: a flat
// []float64 of length n×n in row-major order.
func ComputePairwiseDistancesParallel(data []float64, n, dims int, metric DistanceMetric, numWorkers int) []float64 {
	if numWorkers <= 1 || n <= 1 {
		return ComputePairwiseDistances(data, n, dims, metric)
	}

	result := make([]float64, n*n)

	// Split rows across workers. Each worker handles a contiguous range of
	// "source" rows and computes dist(i,j) for all j > i in that range.
	// Since row ranges don't overlap, no synchronization is needed for writes.
	var wg sync.WaitGroup

	rowsPerWorker := (n + numWorkers - 1) / numWorkers

	for w := 0; w < numWorkers; w++ {
		startRow := w * rowsPerWorker
		endRow := startRow + rowsPerWorker
		if endRow > n {
			endRow = n
		}
		if startRow >= n {
			break
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				for j := i + 1; j < n; j++ {
					d := metric.Distance(data[i*dims:(i+1)*dims], data[j*dims:(j+1)*dims])
					result[i*n+j] = d
					result[j*n+i] = d
				}
			}
		}(startRow, endRow)
	}

	wg.Wait()
	return result
}

// scanClosestPairParallel fans the closest-pair scan out over numWorkers
// goroutines, each taking a contiguous range of first-slot indices. The
// scan is read-only over dist and p. Per-worker candidates are combined
// in ascending range order with the same strict-less rule the sequential
// scan uses, so the outcome is bitwise identical to scanClosestPair.
// Falls back to the sequential scan if numWorkers <= 1.
func scanClosestPairParallel(dist []float64, n int, p *Partition, numWorkers int) (i, j int, d float64, found bool) {
	slots := p.Len()
	if numWorkers <= 1 || slots <= 1 {
		return scanClosestPair(dist, n, p)
	}

	rowsPerWorker := (slots + numWorkers - 1) / numWorkers
	results := make([]pairCandidate, numWorkers)

	var wg sync.WaitGroup
	for w := 0; w < numWorkers; w++ {
		start := w * rowsPerWorker
		end := start + rowsPerWorker
		if end > slots {
			end = slots
		}
		if start >= slots {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			results[w] = scanPairRange(dist, n, p, start, end)
		}(w, start, end)
	}
	wg.Wait()

	// Worker w's pairs all precede worker w+1's pairs in (i, j) order, so
	// an in-order strict-less combine preserves the earliest-pair tie-break.
	best := pairCandidate{i: -1, j: -1}
	for _, r := range results {
		if !r.found {
			continue
		}
		if !best.found || r.d < best.d {
			best = r
		}
	}
	return best.i, best.j, best.d, best.found
}
