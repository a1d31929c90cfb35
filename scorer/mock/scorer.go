// Package mock provides a test double for the relevance scorer.
package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/scorer"
)

// Kind is the bundle identifier of this implementation.
const Kind = "mock"

// Scorer is a test double for scorer.Scorer.
// It allows custom behavior injection via function fields; without them it
// scores by deterministic token overlap between the query and product halves
// of the feature, which is good enough to exercise ranking paths.
type Scorer struct {
	// FitFunc is called by Fit if set.
	FitFunc func(ctx context.Context, examples []scorer.Example) error

	// ScoreFunc is called by Score if set.
	// If nil, uses the default token-overlap behavior.
	ScoreFunc func(ctx context.Context, text string) (float64, error)

	mu        sync.Mutex
	trained   bool
	fitCalls  int
	scoreArgs []string
}

var _ scorer.Scorer = (*Scorer)(nil)

// New creates a mock scorer with default deterministic behavior.
func New() *Scorer {
	return &Scorer{}
}

// NewTrained creates a mock scorer that is already ready to score.
func NewTrained() *Scorer {
	return &Scorer{trained: true}
}

// Kind identifies the implementation.
func (m *Scorer) Kind() string { return Kind }

// Fit records the call and marks the scorer trained.
func (m *Scorer) Fit(ctx context.Context, examples []scorer.Example) error {
	m.mu.Lock()
	m.fitCalls++
	m.mu.Unlock()

	if m.FitFunc != nil {
		if err := m.FitFunc(ctx, examples); err != nil {
			return err
		}
	} else if len(examples) == 0 {
		return scorer.ErrNoExamples
	}

	m.mu.Lock()
	m.trained = true
	m.mu.Unlock()
	return nil
}

// Score returns the fraction of query tokens present in the product half.
func (m *Scorer) Score(ctx context.Context, text string) (float64, error) {
	m.mu.Lock()
	m.scoreArgs = append(m.scoreArgs, text)
	trained := m.trained
	m.mu.Unlock()

	if m.ScoreFunc != nil {
		return m.ScoreFunc(ctx, text)
	}
	if !trained {
		return 0, core.ErrModelNotReady
	}
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return overlap(text), nil
}

// FitCalls returns the number of Fit invocations.
func (m *Scorer) FitCalls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fitCalls
}

// ScoredFeatures returns every feature string passed to Score.
func (m *Scorer) ScoredFeatures() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.scoreArgs...)
}

// Reset clears recorded calls and injected behavior.
func (m *Scorer) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fitCalls = 0
	m.scoreArgs = nil
	m.trained = false
	m.FitFunc = nil
	m.ScoreFunc = nil
}

func overlap(feature string) float64 {
	query, product, found := strings.Cut(feature, scorer.FeatureSeparator)
	if !found {
		return 0
	}
	queryTokens := strings.Fields(strings.ToLower(query))
	if len(queryTokens) == 0 {
		return 0
	}

	productTokens := make(map[string]struct{})
	for _, tok := range strings.Fields(strings.ToLower(product)) {
		productTokens[tok] = struct{}{}
	}

	var hits int
	for _, tok := range queryTokens {
		if _, ok := productTokens[tok]; ok {
			hits++
		}
	}
	return float64(hits) / float64(len(queryTokens))
}
