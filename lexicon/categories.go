package lexicon

import (
	"strings"

	"github.com/amnamine/djiblistore/core"
)

// CategoryKeywords maps each category to the substrings that claim it.
type CategoryKeywords map[core.Category][]string

// DefaultCategoryKeywords returns the built-in keyword lists. Matching is
// plain substring containment against the lowercased product name.
func DefaultCategoryKeywords() CategoryKeywords {
	return CategoryKeywords{
		core.CategorySmartphone: {
			"zte", "tecno", "oppo", "samsung", "realme", "blade", "nubia",
			"pova", "spark", "infinix", "galaxy", "redmi", "xiaomi",
			"v60", "a75", "a35",
		},
		core.CategoryRouterModem: {
			"d-link", "tcl", "modem", "box", "dwr", "wifi", "4g", "routeur", "mw40",
		},
		core.CategoryTablet: {
			"tablette", "tab", "d-tech", "ipad", "pad",
		},
		core.CategoryAudio: {
			"earbuds", "ecouteur", "airpods", "casque", "kit", "bluetooth",
			"hoco", "audio",
		},
		core.CategoryCharge: {
			"cable", "chargeur", "powerbank", "usb", "type-c", "lightning", "batterie",
		},
		core.CategoryAuto: {
			"support", "car", "voiture", "fm",
		},
	}
}

// Classifier assigns catalog products to categories by keyword substring
// matching. Categories are tested in the fixed order of core.Categories(),
// so a name containing both a tablet keyword and a phone keyword resolves to
// whichever category comes first. The order is part of the contract: it keeps
// category assignment reproducible run over run.
type Classifier struct {
	keywords CategoryKeywords
	order    []core.Category
}

// NewClassifier creates a Classifier over the given keyword lists.
// Nil keywords fall back to the defaults.
func NewClassifier(keywords CategoryKeywords) *Classifier {
	if keywords == nil {
		keywords = DefaultCategoryKeywords()
	}
	return &Classifier{
		keywords: keywords,
		order:    core.Categories(),
	}
}

// Classify returns the first category whose keyword list hits the text,
// or the catch-all category when nothing matches.
func (c *Classifier) Classify(text string) core.Category {
	lower := strings.ToLower(text)
	for _, category := range c.order {
		for _, keyword := range c.keywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return core.CategoryGeneral
}
