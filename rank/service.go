package rank

import (
	"context"
	"log/slog"

	"github.com/amnamine/djiblistore/catalog"
)

// Hit is one display-ready search result.
type Hit struct {
	Name        string  `json:"name"`
	Price       string  `json:"price"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Score       float64 `json:"score"`
	Image       string  `json:"image,omitempty"`
}

// Service adapts a Ranker for the storefront: it shapes ranked products
// into hits and resolves their images from the raw catalog index.
type Service struct {
	ranker *Ranker
	images catalog.ImageIndex
	logger *slog.Logger
}

// NewService creates a search service. The image index may be nil when no
// raw catalog is available; hits then carry no image.
func NewService(ranker *Ranker, images catalog.ImageIndex) (*Service, error) {
	if ranker == nil {
		return nil, ErrScorerRequired
	}
	return &Service{
		ranker: ranker,
		images: images,
		logger: slog.Default().With("component", "search-service"),
	}, nil
}

// Search ranks the catalog for a query and returns display-ready hits.
// An empty or whitespace query yields an empty list, not an error.
func (s *Service) Search(ctx context.Context, query string) ([]Hit, error) {
	results, err := s.ranker.Rank(ctx, query)
	if err != nil {
		return nil, err
	}

	hits := make([]Hit, 0, len(results))
	for _, result := range results {
		product := result.Product
		hit := Hit{
			Name:        product.Name,
			Price:       product.Price,
			Category:    product.Category.Display(),
			Description: product.Model,
			Score:       result.Score,
		}
		if product.Image != "" {
			hit.Image = product.Image
		} else if s.images != nil {
			hit.Image = s.images.Lookup(product.Name)
		}
		hits = append(hits, hit)
	}

	s.logger.Info("search served", "query", query, "hits", len(hits))
	return hits, nil
}
