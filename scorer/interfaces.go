package scorer

import "context"

// Example is one labeled training pair: a full feature string and its
// relevance label (1 match, 0 no match).
type Example struct {
	Text  string
	Label int
}

// Scorer is a trainable text classifier exposed as a capability.
// Implementations must be safe for concurrent Score calls after Fit.
type Scorer interface {
	// Fit trains the scorer on labeled examples. Calling Fit again
	// replaces the previous state.
	Fit(ctx context.Context, examples []Example) error

	// Score returns the probability in [0,1] that the feature string
	// describes a relevant (query, product) pair.
	// Returns core.ErrModelNotReady when called before training.
	Score(ctx context.Context, text string) (float64, error)

	// Kind identifies the implementation, e.g. "linear". Persisted in the
	// model bundle so loading can reconstruct the right scorer.
	Kind() string
}

// Persistent is a scorer whose trained state can travel in a model bundle.
type Persistent interface {
	Scorer
	MarshalBinary() ([]byte, error)
	UnmarshalBinary([]byte) error
}
