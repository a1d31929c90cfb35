package catalog

// ImageIndex maps normalized product names back to their scraped image URLs.
// The training table and model bundle never carry image data, so the query
// glue rebuilds the association from the raw catalog at load time.
type ImageIndex map[string]string

// BuildImageIndex indexes raw listings by both the model text alone and the
// full "title description" name, since either may be the surviving display
// name after deduplication.
func BuildImageIndex(entries []RawEntry) ImageIndex {
	index := make(ImageIndex, len(entries)*2)
	for _, entry := range entries {
		if entry.Image == "" {
			continue
		}
		if key := JoinKey(CleanText(entry.Description)); key != "" {
			if _, ok := index[key]; !ok {
				index[key] = entry.Image
			}
		}
		full := CleanText(entry.Title) + " " + CleanText(entry.Description)
		if key := JoinKey(full); key != "" {
			if _, ok := index[key]; !ok {
				index[key] = entry.Image
			}
		}
	}
	return index
}

// Lookup returns the image URL for a product display name, or empty.
func (ix ImageIndex) Lookup(productName string) string {
	return ix[JoinKey(productName)]
}
