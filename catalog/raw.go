package catalog

import (
	"encoding/json"
	"fmt"
	"os"
)

// RawEntry is one scraped shop listing as it arrives from the crawler.
// Title holds the brand, Description the model text; both may carry HTML
// fragments. Any field may be missing.
type RawEntry struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Image       string `json:"image"`
}

// LoadRaw reads a raw catalog JSON file (an array of listings).
func LoadRaw(path string) ([]RawEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading raw catalog: %w", err)
	}

	var entries []RawEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parsing raw catalog: %w", err)
	}
	return entries, nil
}
