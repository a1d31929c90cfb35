package core

import (
	"encoding/binary"
	"strings"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// Product IDs are content-based: the same normalized product name always
// produces the same ID, which keeps catalog deduplication stable across runs.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// Category is one member of the fixed, closed set of catalog categories.
type Category string

const (
	CategorySmartphone  Category = "Smartphone"
	CategoryRouterModem Category = "Routeur_Modem"
	CategoryTablet      Category = "Tablette"
	CategoryAudio       Category = "Accessoire_Audio"
	CategoryCharge      Category = "Accessoire_Charge"
	CategoryAuto        Category = "Accessoire_Auto"
	// CategoryGeneral is the catch-all for products no keyword list claims.
	CategoryGeneral Category = "Accessoire_General"
)

// Categories returns the closed category set in classification priority order.
// The order is load-bearing: keyword classification tests categories in this
// sequence and resolves ambiguous names to the earliest hit.
func Categories() []Category {
	return []Category{
		CategorySmartphone,
		CategoryRouterModem,
		CategoryTablet,
		CategoryAudio,
		CategoryCharge,
		CategoryAuto,
		CategoryGeneral,
	}
}

// Display returns the form of the category that shoppers actually type:
// underscores replaced by spaces, lowercased ("Routeur_Modem" -> "routeur modem").
func (c Category) Display() string {
	return strings.ToLower(strings.ReplaceAll(string(c), "_", " "))
}

// Product is one deduplicated, sellable catalog entry.
// Products are created once during catalog deduplication and are immutable
// afterwards; SearchText is derived, never hand-edited.
type Product struct {
	Id       ID
	Brand    string
	Model    string
	Name     string
	Category Category
	Price    string // opaque display string, e.g. "25000 DA"; never parsed
	Image    string // source image URL, may be empty

	// SearchText is the concatenation of name, category, model and price.
	// It is the right-hand side of every scoring feature.
	SearchText string
}

// ComputeSearchText derives the search text from the product's other fields.
// It is a pure function of (Name, Category, Model, Price): recomputing it
// always yields an identical string.
func ComputeSearchText(p *Product) string {
	return p.Name + " " + string(p.Category) + " " + p.Model + " " + p.Price
}

// TrainingExample is one synthetic (query, product, relevance) row.
// Label-1 rows carry queries drawn from the product's own text; label-0 rows
// carry queries drawn from a different product.
type TrainingExample struct {
	ProductId   ID
	ProductName string
	Category    Category
	Description string // the product's model text
	Price       string
	Query       string
	Label       int // 1 = match, 0 = no match
}

// RankedResult pairs a catalog product with its relevance score for one query.
type RankedResult struct {
	Product *Product
	Score   float64 // probability in [0,1]
}

// BundleManifest summarizes a persisted ModelBundle. It is written last
// during a save and checked first during a load, so a partially written
// bundle is never mistaken for a valid one.
type BundleManifest struct {
	ScorerKind   string
	ProductCount int
	StateSize    int
	TrainedAt    time.Time
}

// ModelBundle is the persisted package of a trained scorer plus the
// deduplicated product table it was trained against. A bundle is only valid
// as a whole: loading a partially written bundle must fail.
type ModelBundle struct {
	ScorerKind  string // identifies the scorer implementation that produced State
	ScorerState []byte // opaque serialized scorer state
	Products    []Product
	TrainedAt   time.Time
}
