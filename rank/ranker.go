package rank

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
	"github.com/amnamine/djiblistore/scorer"
)

const (
	// DefaultThreshold is the minimum score a product must reach to appear
	// in results. It is the single relevance tunable of the engine.
	DefaultThreshold = 0.35

	// DefaultTopK caps the result list.
	DefaultTopK = 20
)

// Ranker scores every catalog entry against a query and returns the
// relevant ones, best first.
type Ranker struct {
	products   []core.Product
	scorer     scorer.Scorer
	normalizer *lexicon.Normalizer
	threshold  float64
	topK       int
	logger     *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithThreshold overrides the relevance threshold.
func WithThreshold(threshold float64) Option {
	return func(r *Ranker) error {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("%w: %g", ErrInvalidThreshold, threshold)
		}
		r.threshold = threshold
		return nil
	}
}

// WithTopK overrides the result cap.
func WithTopK(topK int) Option {
	return func(r *Ranker) error {
		if topK <= 0 {
			return fmt.Errorf("%w: %d", ErrInvalidTopK, topK)
		}
		r.topK = topK
		return nil
	}
}

// NewRanker creates a ranker over the given catalog.
// An empty catalog is allowed and yields empty results.
func NewRanker(
	products []core.Product,
	sc scorer.Scorer,
	normalizer *lexicon.Normalizer,
	opts ...Option,
) (*Ranker, error) {
	if sc == nil {
		return nil, ErrScorerRequired
	}
	if normalizer == nil {
		return nil, ErrNormalizerRequired
	}

	r := &Ranker{
		products:   products,
		scorer:     sc,
		normalizer: normalizer,
		threshold:  DefaultThreshold,
		topK:       DefaultTopK,
		logger:     slog.Default().With("component", "ranker"),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// Rank returns the catalog entries relevant to the query.
func (r *Ranker) Rank(ctx context.Context, query string) ([]core.RankedResult, error) {
	return r.RankWithMonitor(ctx, query, nil)
}

// RankWithMonitor ranks with monitoring callbacks at each stage.
//
// An untrained scorer surfaces as core.ErrModelNotReady and a blown
// deadline as core.ErrScoringTimeout. Any other per-product scoring
// failure is logged and the query degrades to empty results, matching
// the storefront's never-crash contract.
func (r *Ranker) RankWithMonitor(ctx context.Context, query string, monitor RankMonitor) ([]core.RankedResult, error) {
	if monitor == nil {
		monitor = &noopMonitor{}
	}

	monitor.Start(query)

	normalized := r.normalizer.Normalize(query)
	monitor.AfterNormalization(normalized)

	results := make([]core.RankedResult, 0, r.topK)
	for i := range r.products {
		product := &r.products[i]

		score, err := r.scorer.Score(ctx, scorer.Feature(normalized, product.SearchText))
		if err != nil {
			if errors.Is(err, core.ErrModelNotReady) {
				return nil, err
			}
			if errors.Is(err, context.DeadlineExceeded) {
				return nil, fmt.Errorf("%w: %w", core.ErrScoringTimeout, err)
			}
			r.logger.Error("scoring failed, returning no results",
				"query", query, "productId", product.Id, "err", err)
			empty := []core.RankedResult{}
			monitor.Finish(empty)
			return empty, nil
		}

		monitor.Scored(product, score)
		if score <= r.threshold {
			monitor.BelowThreshold(product, score)
			continue
		}
		results = append(results, core.RankedResult{Product: product, Score: score})
	}

	// Stable: equal scores keep catalog order.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > r.topK {
		results = results[:r.topK]
	}

	monitor.Finish(results)
	r.logger.Debug("ranked query",
		"query", query, "normalized", normalized, "hits", len(results))
	return results, nil
}
