package scorer

import (
	"github.com/amnamine/djiblistore/core"
	"github.com/amnamine/djiblistore/lexicon"
)

// FeatureSeparator is the sentinel between the query and product halves of a
// scoring feature. The scorer is trained with it, so query-time features
// must use the exact same token.
const FeatureSeparator = " | "

// Feature builds the scoring feature for a normalized query against a
// product's search text.
func Feature(normalizedQuery, searchText string) string {
	return normalizedQuery + FeatureSeparator + searchText
}

// BuildExamples converts training rows into fit-ready examples. The query
// half goes through the shared normalizer, exactly as live queries do at
// rank time; the product half is the same concatenation used for SearchText.
func BuildExamples(normalizer *lexicon.Normalizer, rows []core.TrainingExample) []Example {
	examples := make([]Example, len(rows))
	for i := range rows {
		row := &rows[i]
		productText := row.ProductName + " " + string(row.Category) + " " +
			row.Description + " " + row.Price
		examples[i] = Example{
			Text:  Feature(normalizer.Normalize(row.Query), productText),
			Label: row.Label,
		}
	}
	return examples
}
