// Package linear implements the relevance scorer as a logistic model over
// hashed word n-grams, trained by stochastic gradient descent with an L2
// penalty. It is the default scorer: small, fast, dependency-free at query
// time, and good enough for a catalog of a few thousand entries.
package linear

import (
	"context"
	"log/slog"
	"math"
	"math/rand"
	"strings"
	"sync"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/scorer"
)

// Kind is the bundle identifier of this implementation.
const Kind = "linear"

// Config holds the training hyperparameters.
type Config struct {
	// HashDims is the size of the feature hash space.
	HashDims uint32
	// MaxNGram builds word n-grams from 1 up to this length.
	MaxNGram int
	Epochs   int
	// LearningRate is the SGD step size.
	LearningRate float64
	// L2 is the ridge penalty applied per update.
	L2 float64
	// Seed drives the per-epoch example shuffle.
	Seed int64
}

// DefaultConfig returns hyperparameters tuned on the production corpus.
func DefaultConfig() Config {
	return Config{
		HashDims:     1 << 18,
		MaxNGram:     3,
		Epochs:       5,
		LearningRate: 0.1,
		L2:           1e-4,
		Seed:         42,
	}
}

// Scorer is the hashed n-gram logistic model.
// Safe for concurrent Score calls; Fit must not run concurrently with Score.
type Scorer struct {
	mu      sync.RWMutex
	config  Config
	weights map[uint32]float64
	bias    float64
	trained bool
	logger  *slog.Logger
}

var _ scorer.Scorer = (*Scorer)(nil)

// New creates an untrained scorer.
func New(config Config) *Scorer {
	if config.HashDims == 0 {
		config = DefaultConfig()
	}
	return &Scorer{
		config: config,
		logger: slog.Default().With("component", "linear-scorer"),
	}
}

// Kind identifies the implementation.
func (s *Scorer) Kind() string { return Kind }

// Fit trains the model with SGD over shuffled examples.
func (s *Scorer) Fit(ctx context.Context, examples []scorer.Example) error {
	if len(examples) == 0 {
		return scorer.ErrNoExamples
	}

	weights := make(map[uint32]float64)
	bias := 0.0

	vectors := make([]map[uint32]float64, len(examples))
	for i := range examples {
		vectors[i] = s.vectorize(examples[i].Text)
	}

	order := make([]int, len(examples))
	for i := range order {
		order[i] = i
	}

	rng := rand.New(rand.NewSource(s.config.Seed))
	for epoch := 0; epoch < s.config.Epochs; epoch++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		rng.Shuffle(len(order), func(a, b int) {
			order[a], order[b] = order[b], order[a]
		})

		for _, idx := range order {
			x := vectors[idx]
			y := float64(examples[idx].Label)

			p := sigmoid(dot(weights, x) + bias)
			g := p - y

			for dim, v := range x {
				w := weights[dim]
				weights[dim] = w - s.config.LearningRate*(g*v+s.config.L2*w)
			}
			bias -= s.config.LearningRate * g
		}
	}

	s.mu.Lock()
	s.weights = weights
	s.bias = bias
	s.trained = true
	s.mu.Unlock()

	s.logger.Info("fitted linear scorer",
		"examples", len(examples),
		"epochs", s.config.Epochs,
		"activeWeights", len(weights))
	return nil
}

// Score returns the model probability for a feature string.
func (s *Scorer) Score(ctx context.Context, text string) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.trained {
		return 0, core.ErrModelNotReady
	}
	return sigmoid(dot(s.weights, s.vectorize(text)) + s.bias), nil
}

// vectorize hashes the word n-grams of text into a sparse TF vector,
// L2-normalized so feature length does not dominate the score.
func (s *Scorer) vectorize(text string) map[uint32]float64 {
	tokens := strings.Fields(strings.ToLower(text))
	counts := make(map[uint32]float64)

	for n := 1; n <= s.config.MaxNGram; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			gram := strings.Join(tokens[i:i+n], " ")
			counts[hash(gram)%s.config.HashDims]++
		}
	}

	var norm float64
	for _, v := range counts {
		norm += v * v
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for dim := range counts {
			counts[dim] /= norm
		}
	}
	return counts
}

func dot(weights, x map[uint32]float64) float64 {
	var sum float64
	for dim, v := range x {
		sum += weights[dim] * v
	}
	return sum
}

func sigmoid(z float64) float64 {
	return 1 / (1 + math.Exp(-z))
}

// hash is FNV-1a over the gram bytes.
func hash(gram string) uint32 {
	const (
		offset = 2166136261
		prime  = 16777619
	)
	h := uint32(offset)
	for i := 0; i < len(gram); i++ {
		h ^= uint32(gram[i])
		h *= prime
	}
	return h
}
