package main

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/genclust/farthest"
)

// options holds the root command's flags.
type options struct {
	matrixPath  string
	labelsPath  string
	outputPath  string
	threshold   float64
	workers     int
	compact     bool
	orderBySize bool
	verbose     bool
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "farthest",
		Short: "Complete-linkage threshold clustering over a distance matrix",
		Long: `farthest merges clusters of entities whose farthest-pair distance lies
strictly below a threshold, starting from an initial partition.

The distance matrix is read from an n x n CSV file. Initial cluster labels
are read from a file with one 1-based integer per line; without --labels,
every entity starts in its own cluster. The final labels are written one
per line, in entity order.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.matrixPath, "matrix", "m", "", "CSV file holding the n x n distance matrix (required)")
	cmd.Flags().StringVarP(&opts.labelsPath, "labels", "l", "", "file with one 1-based initial label per line (default: singletons)")
	cmd.Flags().StringVarP(&opts.outputPath, "output", "o", "", "write labels to this file instead of stdout")
	cmd.Flags().Float64VarP(&opts.threshold, "threshold", "t", 0, "merge clusters whose farthest-pair distance is strictly below this (required)")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "goroutines for the closest-pair scan (0 = all CPUs)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "renumber output labels to a dense 1..k range")
	cmd.Flags().BoolVar(&opts.orderBySize, "order-by-size", false, "renumber output labels to 1..k, largest cluster first")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging")

	cobra.CheckErr(cmd.MarkFlagRequired("matrix"))
	cobra.CheckErr(cmd.MarkFlagRequired("threshold"))
	cmd.MarkFlagsMutuallyExclusive("compact", "order-by-size")

	return cmd
}

func run(opts *options) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck // stderr sync failure is uninteresting

	dist, n, err := readMatrix(opts.matrixPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded distance matrix", zap.String("path", opts.matrixPath), zap.Int("entities", n))

	labels, err := readLabels(opts.labelsPath, n)
	if err != nil {
		return err
	}

	cfg := farthest.DefaultConfig()
	cfg.Threshold = opts.threshold
	cfg.Workers = opts.workers

	result, err := farthest.Cluster(dist, labels, cfg)
	if err != nil {
		return err
	}

	out := result.Labels
	switch {
	case opts.orderBySize:
		out = farthest.OrderBySize(out)
	case opts.compact:
		out = farthest.Compact(out)
	}

	if err := writeLabels(opts.outputPath, out); err != nil {
		return err
	}

	logger.Info("clustering complete",
		zap.Int("entities", n),
		zap.Int("initial_clusters", distinct(labels)),
		zap.Int("final_clusters", result.NumClusters),
		zap.Int("merges", len(result.Merges)),
		zap.Float64("threshold", opts.threshold),
	)
	return nil
}

// newLogger builds a console logger on stderr so that label output on
// stdout stays machine-readable.
func newLogger(verbose bool) (*zap.Logger, error) {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}
	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	return cfg.Build()
}

// readMatrix parses an n x n CSV of float distances into a flat row-major
// slice.
func readMatrix(path string) ([]float64, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	n := len(records)
	dist := make([]float64, 0, n*n)
	for i, record := range records {
		if len(record) != n {
			return nil, 0, fmt.Errorf("%s: row %d has %d columns, want %d", path, i+1, len(record), n)
		}
		for j, field := range record {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				return nil, 0, fmt.Errorf("%s: row %d column %d: %w", path, i+1, j+1, err)
			}
			dist = append(dist, v)
		}
	}
	return dist, n, nil
}

// readLabels parses one 1-based integer label per line. An empty path
// yields the all-singletons labeling 1..n.
func readLabels(path string, n int) ([]int, error) {
	if path == "" {
		labels := make([]int, n)
		for i := range labels {
			labels[i] = i + 1
		}
		return labels, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var labels []int
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		label, err := strconv.Atoi(line)
		if err != nil {
			return nil, fmt.Errorf("%s: line %d: %w", path, len(labels)+1, err)
		}
		labels = append(labels, label)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(labels) != n {
		return nil, fmt.Errorf("%s holds %d labels but the matrix has %d entities", path, len(labels), n)
	}
	return labels, nil
}

func writeLabels(path string, labels []int) error {
	var w io.Writer = os.Stdout
	if path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, label := range labels {
		fmt.Fprintln(bw, label)
	}
	return bw.Flush()
}

func distinct(labels []int) int {
	seen := make(map[int]struct{}, len(labels))
	for _, label := range labels {
		seen[label] = struct{}{}
	}
	return len(seen)
}
