package synth

import "errors"

var (
	// ErrConfigRequired is returned when a nil config is provided.
	ErrConfigRequired = errors.New("synthesis config required")

	// ErrOverlappingTiers is returned when a category appears in more than
	// one boost tier; every category must resolve to exactly one tier.
	ErrOverlappingTiers = errors.New("category assigned to multiple boost tiers")

	// ErrInvalidTarget is returned for a non-positive target row count.
	ErrInvalidTarget = errors.New("target row count must be positive")

	// ErrInvalidCleanProbability is returned when the typo clean probability
	// is outside [0,1].
	ErrInvalidCleanProbability = errors.New("clean probability must be in [0,1]")

	// ErrInvalidPositiveShare is returned when the positive share is outside (0,1).
	ErrInvalidPositiveShare = errors.New("positive share must be in (0,1)")

	// ErrUnknownGenerator is returned for an unrecognized generator style.
	ErrUnknownGenerator = errors.New("unknown generator style")
)
