// Package djiblistore ties the pieces of the relevance engine together: the
// catalog builder, the training-data synthesizer, the pluggable scorers, the
// bundle store and the query-time ranker.
package djiblistore

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/amnamine/djiblistore/catalog"
	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
	"github.com/amnamine/djiblistore/rank"
	"github.com/amnamine/djiblistore/scorer"
	"github.com/amnamine/djiblistore/scorer/embed"
	"github.com/amnamine/djiblistore/scorer/linear"
	"github.com/amnamine/djiblistore/storage"
	"github.com/amnamine/djiblistore/storage/badger"
)

// Engine owns the bundle store and knows how to train scorers against a
// catalog and to reopen them for querying.
type Engine struct {
	backend   *badger.Backend
	bundles   storage.BundleRepository
	linearCfg linear.Config
	embedCfg  *embed.Config
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	linearCfg linear.Config
	embedCfg  *embed.Config
}

// WithLinearConfig overrides the linear scorer hyperparameters.
func WithLinearConfig(cfg linear.Config) EngineOption {
	return func(o *engineOptions) {
		o.linearCfg = cfg
	}
}

// WithEmbedConfig overrides the embedding service settings.
func WithEmbedConfig(cfg *embed.Config) EngineOption {
	return func(o *engineOptions) {
		o.embedCfg = cfg
	}
}

// NewEngine opens (or creates) the bundle store at filePath.
func NewEngine(filePath string, opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		linearCfg: linear.DefaultConfig(),
		embedCfg:  embed.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, false)
	if err != nil {
		return nil, err
	}

	bundles, err := badger.NewBundleRepository(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return &Engine{
		backend:   backend,
		bundles:   bundles,
		linearCfg: options.linearCfg,
		embedCfg:  options.embedCfg,
		logger:    slog.Default(),
	}, nil
}

// Close releases the bundle store.
func (e *Engine) Close() error {
	if err := e.bundles.Close(); err != nil {
		e.logger.Error("error closing bundle repository", "err", err)
		return err
	}
	if err := e.backend.Close(); err != nil {
		e.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// BundleRepository exposes the underlying bundle store.
func (e *Engine) BundleRepository() storage.BundleRepository {
	return e.bundles
}

// Train fits a scorer of the given kind on the training rows and saves the
// resulting bundle together with the catalog it was trained on.
func (e *Engine) Train(
	ctx context.Context,
	kind string,
	products []core.Product,
	rows []core.TrainingExample,
	normalizer *lexicon.Normalizer,
) error {
	if len(products) == 0 {
		return core.ErrNoProducts
	}

	sc, err := e.newScorer(kind)
	if err != nil {
		return err
	}

	if err := sc.Fit(ctx, scorer.BuildExamples(normalizer, rows)); err != nil {
		return fmt.Errorf("training failed: %w", err)
	}

	state, err := sc.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to snapshot scorer state: %w", err)
	}

	return e.bundles.SaveBundle(ctx, &core.ModelBundle{
		ScorerKind:  sc.Kind(),
		ScorerState: state,
		Products:    products,
		TrainedAt:   time.Now().UTC(),
	})
}

// NewSearchService loads the saved bundle, restores its scorer and wires a
// query-ready search service around it.
func (e *Engine) NewSearchService(
	ctx context.Context,
	normalizer *lexicon.Normalizer,
	images catalog.ImageIndex,
	opts ...rank.Option,
) (*rank.Service, error) {
	bundle, err := e.bundles.LoadBundle(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bundle: %w", err)
	}

	sc, err := e.newScorer(bundle.ScorerKind)
	if err != nil {
		return nil, err
	}
	if err := sc.UnmarshalBinary(bundle.ScorerState); err != nil {
		return nil, fmt.Errorf("failed to restore scorer state: %w", err)
	}

	ranker, err := rank.NewRanker(bundle.Products, sc, normalizer, opts...)
	if err != nil {
		return nil, err
	}

	return rank.NewService(ranker, images)
}

// newScorer constructs an untrained scorer for the given kind.
func (e *Engine) newScorer(kind string) (scorer.Persistent, error) {
	switch kind {
	case linear.Kind:
		return linear.New(e.linearCfg), nil
	case embed.Kind:
		return embed.New(e.embedCfg)
	default:
		return nil, fmt.Errorf("unknown scorer %q: must be one of %s, %s", kind, linear.Kind, embed.Kind)
	}
}
