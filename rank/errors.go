package rank

import "errors"

var (
	// ErrScorerRequired is returned when a scorer is not provided.
	ErrScorerRequired = errors.New("scorer required")

	// ErrNormalizerRequired is returned when a normalizer is not provided.
	ErrNormalizerRequired = errors.New("normalizer required")

	// ErrInvalidThreshold is returned for thresholds outside [0,1].
	ErrInvalidThreshold = errors.New("threshold must be in [0,1]")

	// ErrInvalidTopK is returned for non-positive result limits.
	ErrInvalidTopK = errors.New("top-k must be positive")
)
