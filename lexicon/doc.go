// Package lexicon holds the single canonical text-normalization policy
// shared by corpus synthesis and query-time ranking.
//
// The original system duplicated the synonym table across components, which
// risked the two copies drifting apart and silently degrading match quality.
// Here there is exactly one Normalizer and one keyword Classifier, built from
// one table each, and both pipelines receive the same instance.
package lexicon
