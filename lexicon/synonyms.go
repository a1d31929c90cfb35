package lexicon

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// SynonymTable maps a raw slang or noisy token to one canonical domain token.
// Expansion is one-hop: canonical tokens are never themselves keys.
// The table is read-only after construction and safe for concurrent use.
type SynonymTable map[string]string

// DefaultSynonyms returns the built-in hardware slang table. Keys cover the
// French and Arabic-transliterated terms shoppers actually type ("jawl",
// "kitman", "hètf"); values are the canonical tokens the catalog uses.
func DefaultSynonyms() SynonymTable {
	return SynonymTable{
		// Smartphones
		"telephone":  "smartphone",
		"mobile":     "smartphone",
		"portable":   "smartphone",
		"jawl":       "smartphone",
		"hètf":       "smartphone",
		"tel":        "smartphone",
		"cellulaire": "smartphone",

		// Accessories (audio/charge)
		"kitman":    "ecouteurs", // common slang for earphones
		"ecouteur":  "ecouteurs",
		"casque":    "ecouteurs",
		"airpods":   "ecouteurs",
		"earbuds":   "ecouteurs",
		"chargeur":  "accessoire",
		"cable":     "accessoire",
		"fil":       "accessoire",
		"usb":       "accessoire",
		"powerbank": "accessoire",

		// Modems/routers. Shoppers say "wifi" when they want a modem.
		"wifi":    "modem",
		"routeur": "modem",
		"box":     "modem",
		"4g":      "modem",

		// Tablets
		"tab":  "tablette",
		"ipad": "tablette",
	}
}

// LoadSynonyms reads a synonym table from a JSON file of the form
// {"raw": "canonical", ...}. Keys are lowercased; the table is validated
// before being returned.
func LoadSynonyms(path string) (SynonymTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading synonym table: %w", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing synonym table: %w", err)
	}

	table := make(SynonymTable, len(raw))
	for k, v := range raw {
		table[strings.ToLower(strings.TrimSpace(k))] = strings.ToLower(strings.TrimSpace(v))
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

// Validate enforces the one-hop invariant: no canonical value may itself be
// a key, otherwise expansion order would start to matter.
func (t SynonymTable) Validate() error {
	for raw, canonical := range t {
		if canonical == "" {
			return fmt.Errorf("synonym %q maps to an empty canonical token", raw)
		}
		if _, ok := t[canonical]; ok {
			return fmt.Errorf("canonical token %q (from %q) is itself a synonym key", canonical, raw)
		}
	}
	return nil
}
