package lexicon

import (
	"strings"
	"unicode"
)

// Normalizer turns raw query or catalog text into the canonical token stream
// both the synthesizer and the ranker feed to the scorer.
//
// Normalization lowercases, drops every rune that is neither a Unicode
// letter/digit/underscore nor whitespace, splits on whitespace, and expands
// synonyms one hop: each token is emitted as typed, immediately followed by
// its canonical form when the table knows it. Keeping the surface form first
// preserves partial n-gram matches while still injecting the canonical signal.
//
// Normalize is deterministic and never fails; nil-safe on empty input.
type Normalizer struct {
	table SynonymTable
}

// NewNormalizer creates a Normalizer over the given synonym table.
// A nil table disables expansion but still cleans and tokenizes.
func NewNormalizer(table SynonymTable) *Normalizer {
	return &Normalizer{table: table}
}

// Normalize cleans raw text and expands synonyms.
func (n *Normalizer) Normalize(raw string) string {
	if raw == "" {
		return ""
	}

	cleaned := stripSymbols(strings.ToLower(raw))
	words := strings.Fields(cleaned)
	if len(words) == 0 {
		return ""
	}

	expanded := make([]string, 0, len(words)*2)
	for i, w := range words {
		expanded = append(expanded, w)
		canonical, ok := n.table[w]
		if !ok {
			continue
		}
		// Skip the injection when the canonical token already follows the
		// surface form. This makes Normalize idempotent: re-normalizing its
		// own output yields the same string.
		if i+1 < len(words) && words[i+1] == canonical {
			continue
		}
		expanded = append(expanded, canonical)
	}
	return strings.Join(expanded, " ")
}

// stripSymbols removes punctuation, currency signs and other symbols while
// preserving Unicode word characters and whitespace.
func stripSymbols(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r), r == '_':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(r)
		}
	}
	return b.String()
}
