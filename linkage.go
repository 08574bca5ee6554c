package farthest

// CompleteLinkage returns the complete-linkage (farthest-neighbor)
// distance between two member sets: the maximum of dist[u*n+v] over all
// u in a and v in b. The boolean is false when either set is empty —
// there are no member pairs — which is distinct from a legitimate zero
// distance. Runs in O(len(a) * len(b)).
func CompleteLinkage(dist []float64, n int, a, b []int) (float64, bool) {
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}

	maxDist := dist[a[0]*n+b[0]]
	for _, u := range a {
		row := dist[u*n : (u+1)*n]
		for _, v := range b {
			if row[v] > maxDist {
				maxDist = row[v]
			}
		}
	}
	return maxDist, true
}
