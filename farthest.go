package farthest

import (
	"fmt"
	"math"
	"runtime"
)

// Config controls farthest-neighbor clustering behavior.
// Start with [DefaultConfig] and override the fields you need.
type Config struct {
	// Threshold is the complete-linkage distance below which two clusters
	// are considered the same underlying group and merged. The comparison
	// is strict: a pair at exactly Threshold does not merge, so the zero
	// value merges nothing. Must be >= 0.
	Threshold float64

	// Workers controls the number of goroutines used by the closest-pair
	// scan and by the pairwise matrix build in ClusterPoints. The result
	// is identical for any worker count. 0 means use runtime.NumCPU().
	Workers int

	// Metric is the distance function ClusterPoints uses to build the
	// pairwise matrix from raw observations. Ignored by Cluster and
	// ClusterMatrix, which take precomputed distances.
	// Default: ProvestiMetric.
	Metric DistanceMetric
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Metric: ProvestiMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.Metric == nil {
		cfg.Metric = ProvestiMetric{}
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive error if not.
func validateConfig(cfg *Config) error {
	if cfg.Threshold < 0 || math.IsNaN(cfg.Threshold) {
		return fmt.Errorf("farthest: Threshold must be >= 0, got %f", cfg.Threshold)
	}
	if cfg.Workers < 0 {
		return fmt.Errorf("farthest: Workers must be >= 0 (0 means runtime.NumCPU()), got %d", cfg.Workers)
	}
	return nil
}

// MergeStep records one merge: the members of slot Loser were absorbed
// into slot Winner at complete-linkage distance Distance. Winner is
// always the lower-numbered slot.
type MergeStep struct {
	Winner   int
	Loser    int
	Distance float64
}

// Result contains the output of a clustering run.
type Result struct {
	// Labels assigns each entity a 1-based cluster label: the surviving
	// storage-slot id plus one. The label set may be a sparse subset of
	// [1, n]; it is deliberately not compacted. See Compact and
	// OrderBySize.
	Labels []int

	// NumClusters is the number of distinct labels in Labels.
	NumClusters int

	// Merges is the ordered trace of merges performed, useful for
	// diagnostics or for reconstructing intermediate partitions.
	Merges []MergeStep
}

// Cluster merges clusters of the initial partition whose complete-linkage
// distance is strictly below cfg.Threshold.
//
// dist is a flat []float64 of length n*n in row-major order where
// dist[i*n+j] is the distance between entities i and j. It must be
// symmetric with non-negative values; the diagonal is never read. labels
// is the 1-based initial cluster assignment, one entry per entity, each
// in [1, n].
//
// Exactly one pair merges per scan: the globally closest pair under the
// complete-linkage metric, ties broken toward the earliest pair in
// ascending (slot, slot) order, the lower-numbered slot absorbing the
// higher. The run stops when no qualifying pair remains or one cluster
// is left. The result is a deterministic function of the inputs.
func Cluster(dist []float64, labels []int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(labels)
	if len(dist) != n*n {
		return nil, fmt.Errorf("farthest: distance matrix length %d does not match n*n = %d (n=%d): %w",
			len(dist), n*n, n, ErrInvalidDimensions)
	}
	if n == 0 {
		return &Result{Labels: []int{}}, nil
	}

	p, err := NewPartition(labels)
	if err != nil {
		return nil, err
	}

	var merges []MergeStep
	for p.Live() > 1 {
		i, j, d, found := scanClosestPairParallel(dist, n, p, cfg.Workers)
		if !found || d >= cfg.Threshold {
			break
		}
		// Scan order guarantees i < j: the lower slot absorbs the higher.
		p.Merge(i, j)
		merges = append(merges, MergeStep{Winner: i, Loser: j, Distance: d})
	}

	return &Result{
		Labels:      p.Labels(),
		NumClusters: p.Live(),
		Merges:      merges,
	}, nil
}

// ClusterPoints builds a pairwise distance matrix from raw observations
// using cfg.Metric, then clusters it with Cluster. Each element of data
// is one observation (float64 slice); all observations must have the same
// length. len(data) must equal len(labels).
func ClusterPoints(data [][]float64, labels []int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n != len(labels) {
		return nil, fmt.Errorf("farthest: %d observations do not match %d labels: %w",
			n, len(labels), ErrInvalidDimensions)
	}
	if n == 0 {
		return &Result{Labels: []int{}}, nil
	}

	dims := len(data[0])
	flat := make([]float64, n*dims)
	for i, row := range data {
		copy(flat[i*dims:], row)
	}

	dist := ComputePairwiseDistancesParallel(flat, n, dims, cfg.Metric, cfg.Workers)
	return Cluster(dist, labels, cfg)
}
