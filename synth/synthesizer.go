package synth

import (
	"context"
	"log/slog"
	"math/rand"
	"runtime"
	"strings"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/amnamine/djiblistore/core"
)

// Synthesizer generates the training table from a deduplicated catalog.
type Synthesizer struct {
	config   *Config
	injector TypoInjector
	logger   *slog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Synthesizer) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// New creates a Synthesizer for the given configuration.
func New(config *Config, opts ...Option) (*Synthesizer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	s := &Synthesizer{
		config:   config,
		injector: TypoInjector{CleanProbability: config.CleanProbability},
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Synthesize generates the full training table for the catalog. Output size
// is exactly the sum of per-product row budgets; rows come back shuffled, so
// downstream training must not depend on order.
//
// Generation is parallel across products: each product's rows come from its
// own random source derived from the run seed, so results are byte-identical
// run over run regardless of scheduling.
func (s *Synthesizer) Synthesize(ctx context.Context, products []core.Product) ([]core.TrainingExample, error) {
	if len(products) == 0 {
		return nil, core.ErrNoProducts
	}

	base := s.config.TargetRows / len(products)
	if base < s.config.MinBaseRows {
		base = s.config.MinBaseRows
	}

	workers := s.config.Workers
	if workers < 1 {
		workers = runtime.NumCPU()
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, err
	}
	defer pool.Release()

	perProduct := make([][]core.TrainingExample, len(products))
	var wg sync.WaitGroup

	for i := range products {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			rng := rand.New(rand.NewSource(s.config.Seed + int64(i)))
			perProduct[i] = s.generateRows(rng, &products[i], products, base)
		})
		if submitErr != nil {
			wg.Done()
			return nil, submitErr
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var rows []core.TrainingExample
	for _, productRows := range perProduct {
		rows = append(rows, productRows...)
	}

	// Shuffle after merging; the shuffle order carries no meaning but a
	// seeded source keeps test fixtures reproducible.
	shuffleRng := rand.New(rand.NewSource(s.config.Seed))
	shuffleRng.Shuffle(len(rows), func(a, b int) {
		rows[a], rows[b] = rows[b], rows[a]
	})

	s.logger.Info("synthesized training table",
		"products", len(products),
		"baseRows", base,
		"rows", len(rows),
		"style", s.config.Style)

	return rows, nil
}

// generateRows produces one product's full row budget: the positive share
// from the product's own text, the rest from other products' text.
func (s *Synthesizer) generateRows(rng *rand.Rand, product *core.Product, all []core.Product, base int) []core.TrainingExample {
	budget := s.config.Tiers.RowsFor(product.Category, base)
	positives := int(float64(budget) * s.config.PositiveShare)
	negatives := budget - positives

	rows := make([]core.TrainingExample, 0, budget)

	for range positives {
		rows = append(rows, s.example(product, s.positiveQuery(rng, product), 1))
	}
	for range negatives {
		rows = append(rows, s.example(product, s.negativeQuery(rng, product, all), 0))
	}
	return rows
}

func (s *Synthesizer) positiveQuery(rng *rand.Rand, product *core.Product) string {
	var query string
	switch s.config.Style {
	case StyleKeyword:
		words := coreKeywords(product)
		query = s.injector.Corrupt(rng, words[rng.Intn(len(words))])
	default: // StylePhrase
		bases := phraseBases(product)
		query = s.augment(rng, bases[rng.Intn(len(bases))])
	}
	if query == "" {
		query = strings.ToLower(product.Name)
	}
	return query
}

// negativeQuery draws query text from a different product. When this product
// is ordinary but the other sits in a boosted rare category, the query is
// forced to the other's bare category name: an explicit lesson that this
// accessory is not a tablet or a modem.
func (s *Synthesizer) negativeQuery(rng *rand.Rand, product *core.Product, all []core.Product) string {
	other := s.pickOther(rng, product, all)
	if other == nil {
		// Singleton catalog: no different product to draw from, so fall
		// back to bare intent vocabulary, which is unrelated by construction.
		return intentSuffixes[rng.Intn(len(intentSuffixes))]
	}

	var base string
	if !s.config.Tiers.IsHigh(product.Category) && s.config.Tiers.IsHigh(other.Category) {
		base = other.Category.Display()
	} else if s.config.Style == StyleKeyword {
		words := coreKeywords(other)
		base = words[rng.Intn(len(words))]
	} else {
		base = other.Name
	}

	var query string
	if s.config.Style == StyleKeyword {
		query = s.injector.Corrupt(rng, base)
	} else {
		query = s.augment(rng, base)
	}
	if query == "" {
		query = strings.ToLower(other.Name)
	}
	return query
}

func (s *Synthesizer) pickOther(rng *rand.Rand, product *core.Product, all []core.Product) *core.Product {
	if len(all) < 2 {
		return nil
	}
	for {
		other := &all[rng.Intn(len(all))]
		if other.Id != product.Id {
			return other
		}
	}
}

// augment applies the phrase-style intent scheme: mostly raw, sometimes a
// typo, sometimes wrapped in purchase-intent words. Long bases are used
// verbatim; padding them further produces queries nobody types.
func (s *Synthesizer) augment(rng *rand.Rand, base string) string {
	query := strings.ToLower(base)
	if len(strings.Fields(query)) > 4 {
		return query
	}

	switch r := rng.Float64(); {
	case r < 0.50: // raw
		return query
	case r < 0.70: // typo
		return s.injector.Corrupt(rng, query)
	case r < 0.80: // prefix
		return intentPrefixes[rng.Intn(len(intentPrefixes))] + " " + query
	case r < 0.90: // suffix
		return query + " " + intentSuffixes[rng.Intn(len(intentSuffixes))]
	default: // combination
		return intentPrefixes[rng.Intn(len(intentPrefixes))] + " " + query +
			" " + intentSuffixes[rng.Intn(len(intentSuffixes))]
	}
}

func (s *Synthesizer) example(product *core.Product, query string, label int) core.TrainingExample {
	return core.TrainingExample{
		ProductId:   product.Id,
		ProductName: product.Name,
		Category:    product.Category,
		Description: product.Model,
		Price:       product.Price,
		Query:       query,
		Label:       label,
	}
}
