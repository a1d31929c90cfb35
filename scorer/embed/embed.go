// Package embed implements the relevance scorer on top of a pretrained
// embedding model served by an OpenAI-compatible API. The score of a
// feature string is the cosine similarity between the embeddings of its
// query and product halves, mapped into [0,1].
//
// No gradient training happens here. Fit only marks the scorer ready, so
// the same bundle lifecycle works for both trained and pretrained scorers.
package embed

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strings"
	"sync/atomic"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/scorer"
)

// Kind is the bundle identifier of this implementation.
const Kind = "embed"

// Scorer scores query/product pairs by embedding similarity.
type Scorer struct {
	embedder embeddings.Embedder
	model    string
	ready    atomic.Bool
	logger   *slog.Logger
}

var _ scorer.Scorer = (*Scorer)(nil)

// newScorer is an internal constructor that accepts any embedder.
// Used by tests to inject a fake service.
func newScorer(embedder embeddings.Embedder, model string) *Scorer {
	return &Scorer{
		embedder: embedder,
		model:    model,
		logger:   slog.Default().With("component", "embed-scorer"),
	}
}

// New creates a scorer backed by the configured embedding service.
func New(config *Config) (*Scorer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	// "none" as token works with local services that skip authentication.
	client, err := openai.New(
		openai.WithBaseURL(config.Host),
		openai.WithToken("none"),
		openai.WithEmbeddingModel(config.Model),
	)
	if err != nil {
		return nil, err
	}

	embedder, err := embeddings.NewEmbedder(client, embeddings.WithStripNewLines(true))
	if err != nil {
		return nil, err
	}

	return newScorer(embedder, config.Model), nil
}

// Kind identifies the implementation.
func (s *Scorer) Kind() string { return Kind }

// Fit checks the service is reachable by embedding one example, then marks
// the scorer ready. The underlying model is pretrained and unchanged.
func (s *Scorer) Fit(ctx context.Context, examples []scorer.Example) error {
	if len(examples) == 0 {
		return scorer.ErrNoExamples
	}

	if _, err := s.embedder.EmbedDocuments(ctx, []string{examples[0].Text}); err != nil {
		return fmt.Errorf("embedding service probe: %w", err)
	}

	s.ready.Store(true)
	s.logger.Info("embed scorer ready", "model", s.model)
	return nil
}

// Score embeds both halves of the feature and returns their cosine
// similarity shifted into [0,1].
func (s *Scorer) Score(ctx context.Context, text string) (float64, error) {
	if !s.ready.Load() {
		return 0, core.ErrModelNotReady
	}

	query, product, found := strings.Cut(text, scorer.FeatureSeparator)
	if !found {
		product = query
	}

	vectors, err := s.embedder.EmbedDocuments(ctx, []string{query, product})
	if err != nil {
		s.logger.Error("failed to embed feature", "err", err)
		return 0, err
	}
	if len(vectors) < 2 {
		return 0, fmt.Errorf("embedding service returned %d vectors, want 2", len(vectors))
	}

	return (cosine(vectors[0], vectors[1]) + 1) / 2, nil
}

// MarshalBinary returns empty state; the model lives in the service.
func (s *Scorer) MarshalBinary() ([]byte, error) {
	if !s.ready.Load() {
		return nil, scorer.ErrBadState
	}
	return []byte{}, nil
}

// UnmarshalBinary marks a restored scorer ready.
func (s *Scorer) UnmarshalBinary([]byte) error {
	s.ready.Store(true)
	return nil
}

func cosine(a, b []float32) float64 {
	var dot, na, nb float64
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
