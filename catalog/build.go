package catalog

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
)

var (
	htmlTagPattern   = regexp.MustCompile(`<[^>]+>`)
	whitespaceExpand = regexp.MustCompile(`\s+`)
)

// DefaultPrice is the placeholder for listings with a missing or empty price.
const DefaultPrice = "0 DA"

// CleanText strips HTML tags and replaces punctuation with spaces, keeping
// Unicode word characters intact. Used on scraped brand and model fields.
func CleanText(text string) string {
	if text == "" {
		return ""
	}
	text = htmlTagPattern.ReplaceAllString(text, "")

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_', unicode.IsSpace(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}
	return strings.TrimSpace(b.String())
}

// CleanPrice normalizes a scraped price string: non-breaking-space artifacts
// become plain spaces, runs of whitespace collapse, and empty input falls
// back to DefaultPrice. The price stays an opaque display string.
func CleanPrice(price string) string {
	if price == "" {
		return DefaultPrice
	}
	cleaned := strings.NewReplacer("&nbsp;", " ", "&nbsp", " ", "\u00a0", " ").Replace(price)
	cleaned = strings.TrimSpace(whitespaceExpand.ReplaceAllString(cleaned, " "))
	if cleaned == "" {
		return DefaultPrice
	}
	return cleaned
}

// JoinKey computes the deduplication key for a display name: lowercased with
// all spaces removed. Product IDs are derived from this key, so the same
// listing always maps to the same Product.
func JoinKey(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "")
}

// Build deduplicates raw listings into the product table. The first listing
// per join key wins; later duplicates are dropped. A model that already
// starts with its brand is used alone as the display name, avoiding
// "Brand Brand Model" duplication.
func Build(entries []RawEntry, classifier *lexicon.Classifier) []core.Product {
	seen := make(map[string]struct{}, len(entries))
	products := make([]core.Product, 0, len(entries))

	for _, entry := range entries {
		brand := CleanText(entry.Title)
		model := CleanText(entry.Description)

		var name string
		if strings.HasPrefix(strings.ToLower(model), strings.ToLower(brand)) {
			name = model
		} else {
			name = strings.TrimSpace(brand + " " + model)
		}

		key := JoinKey(name)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}

		product := core.Product{
			Id:       core.IDFromContent(key),
			Brand:    brand,
			Model:    model,
			Name:     name,
			Category: classifier.Classify(name),
			Price:    CleanPrice(entry.Price),
			Image:    entry.Image,
		}
		product.SearchText = core.ComputeSearchText(&product)
		products = append(products, product)
	}

	return products
}
