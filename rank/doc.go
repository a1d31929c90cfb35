// Package rank implements query-time catalog ranking.
//
// A Ranker holds the product catalog and a trained scorer. For each query it
// normalizes the text through the shared lexicon, scores every catalog entry
// against it and returns the entries above the relevance threshold, best
// first. The catalog is small, so a full scan per query is deliberate; there
// is no index to drift out of sync with the model.
//
// Service wraps a Ranker into the storefront-facing search call, resolving
// product images and shaping hits for display.
package rank
