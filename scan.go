package farthest

// pairCandidate is the best (i, j, distance) found over some share of the
// slot-pair space.
type pairCandidate struct {
	i, j  int
	d     float64
	found bool
}

// scanClosestPair scans all unordered pairs (i, j) of non-empty slots in
// ascending (i, j) order and returns the pair with the minimal
// complete-linkage distance. A candidate replaces the current best only
// when strictly smaller, so ties keep the earliest pair. found is false
// when fewer than two non-empty slots remain.
func scanClosestPair(dist []float64, n int, p *Partition) (i, j int, d float64, found bool) {
	best := scanPairRange(dist, n, p, 0, p.Len())
	return best.i, best.j, best.d, best.found
}

// scanPairRange computes the best pair whose first slot index lies in
// [start, end). Read-only over dist and p.
func scanPairRange(dist []float64, n int, p *Partition, start, end int) pairCandidate {
	best := pairCandidate{i: -1, j: -1}
	slots := p.Len()
	for i := start; i < end; i++ {
		a := p.Members(i)
		if len(a) == 0 {
			continue
		}
		for j := i + 1; j < slots; j++ {
			d, ok := CompleteLinkage(dist, n, a, p.Members(j))
			if !ok {
				continue
			}
			if !best.found || d < best.d {
				best = pairCandidate{i: i, j: j, d: d, found: true}
			}
		}
	}
	return best
}
