package farthest

import "errors"

// Errors reported by the Cluster entry points. Both are detected before
// any merging starts; a failed call produces no partial result, and the
// same inputs fail identically on retry.
var (
	// ErrInvalidDimensions reports a distance matrix whose shape does not
	// match the label vector.
	ErrInvalidDimensions = errors.New("invalid dimensions")

	// ErrInvalidLabel reports an initial cluster label outside [1, n].
	ErrInvalidLabel = errors.New("invalid label")
)
