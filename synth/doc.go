// Package synth manufactures the synthetic training corpus the relevance
// scorer is fitted on.
//
// A small scraped catalog cannot train a ranker directly: rare categories
// (tablets, modems) would be drowned out by accessory noise, and clean
// catalog text looks nothing like what shoppers type. The synthesizer
// corrects both by tiered per-category row boosting and by corrupting
// queries with a fixed typo model, then emits a shuffled table of
// (query, product, relevance) rows.
//
// All randomness flows from one explicit seed. Per-product generation runs
// on a worker pool; each product derives its own deterministic random source,
// so output is reproducible regardless of scheduling.
package synth
