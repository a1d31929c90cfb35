package synth

import (
	"strings"

	"github.com/amnamine/djiblistore/core"
)

// Shopper intent phrases used by the phrase-style augmentation. Queries in
// the wild wrap the product in purchase intent ("prix tablette algerie").
var (
	intentPrefixes = []string{
		"achat", "acheter", "prix", "combien coute", "chercher", "trouver",
		"le", "la", "les", "promo", "nouveau", "voir",
	}
	intentSuffixes = []string{
		"algerie", "djezzy", "pas cher", "en ligne", "livraison", "original",
		"2025", "promo", "solde", "magasin", "disponible",
	}
)

// coreKeywords derives the short, distinct keywords a shopper would type for
// this product: category name, brand, individual model tokens, brand plus
// first model token, and forced tokens for rare categories. Order is
// deterministic so seeded runs reproduce exactly.
func coreKeywords(p *core.Product) []string {
	var words []string
	seen := make(map[string]struct{})
	add := func(w string) {
		w = strings.TrimSpace(strings.ToLower(w))
		if w == "" {
			return
		}
		if _, dup := seen[w]; dup {
			return
		}
		seen[w] = struct{}{}
		words = append(words, w)
	}

	display := p.Category.Display()
	add(display)
	add(p.Brand)

	modelTokens := strings.Fields(strings.ToLower(p.Model))
	for _, tok := range modelTokens {
		if len(tok) > 1 { // ignore 'a', 'x' etc.
			add(tok)
		}
	}
	if len(modelTokens) > 0 {
		add(p.Brand + " " + modelTokens[0])
	} else {
		add(p.Brand)
	}

	// Forced tokens for rare categories shoppers reach with synonyms.
	if strings.Contains(display, "modem") || strings.Contains(display, "routeur") {
		add("wifi")
		add("4g")
	}
	if strings.Contains(display, "tablette") {
		add("tab")
	}

	if len(words) == 0 {
		add(p.Name)
	}
	return words
}

// phraseBases returns the longer positive base phrases: model text, brand,
// category+brand, bare category, full name, plus forced phrases that teach
// the scorer the vocabulary rare categories are found with.
func phraseBases(p *core.Product) []string {
	display := p.Category.Display()
	candidates := []string{
		p.Model,
		p.Brand,
		display + " " + p.Brand,
		display,
		p.Name,
	}

	switch p.Category {
	case core.CategoryRouterModem:
		candidates = append(candidates,
			"wifi", "modem 4g", "wifi "+p.Brand, "modem "+p.Brand)
	case core.CategoryTablet:
		candidates = append(candidates,
			"tab", "tablette android", "tablette d-tech", "tablette 4g")
	}

	bases := make([]string, 0, len(candidates))
	for _, c := range candidates {
		if c = strings.TrimSpace(c); c != "" {
			bases = append(bases, c)
		}
	}
	if len(bases) == 0 {
		bases = append(bases, p.Name)
	}
	return bases
}
