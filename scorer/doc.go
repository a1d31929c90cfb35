// Package scorer defines the pluggable relevance-scoring capability.
//
// The ranker and the training pipeline only ever see the Scorer interface:
// fit a set of labeled (feature, label) examples, then score feature strings
// into [0,1] probabilities. Anything satisfying that contract can back the
// search engine; the implementations under scorer/linear, scorer/embed and
// scorer/mock are interchangeable.
//
// A scoring feature is always "normalized query | product search text"; the
// separator is a fixed sentinel the scorer learns as the query/product
// boundary. Feature construction lives here so every caller builds it the
// same way.
package scorer
