package synth

import (
	"fmt"

	"github.com/amnamine/djiblistore/core"
)

// GeneratorStyle selects how positive/negative query bases are drawn.
type GeneratorStyle string

const (
	// StylePhrase draws full phrase bases (model text, brand, category+brand,
	// product name) and augments them with shopper intent prefixes/suffixes.
	StylePhrase GeneratorStyle = "phrase"

	// StyleKeyword draws from a per-product keyword set (category, brand,
	// individual model tokens) and keeps queries short and messy.
	StyleKeyword GeneratorStyle = "keyword"
)

// BoostTiers partitions the closed category set into HIGH, MEDIUM and an
// implicit default tier, each with its row-count multiplier. Rare categories
// need amplification; high-volume accessory listings are aggressively
// downsampled so they do not drown out tablet/modem signal.
type BoostTiers struct {
	High             []core.Category
	Medium           []core.Category
	HighMultiplier   int
	MediumMultiplier int

	// DefaultFraction downsamples everything outside High/Medium.
	DefaultFraction float64
	// MinProductRows is the floor for downsampled products.
	MinProductRows int
}

// DefaultBoostTiers returns the tiering that balanced the production
// catalog: tablets and modems 15x, smartphones 3x, accessories cut to 20%.
func DefaultBoostTiers() BoostTiers {
	return BoostTiers{
		High:             []core.Category{core.CategoryTablet, core.CategoryRouterModem},
		Medium:           []core.Category{core.CategorySmartphone},
		HighMultiplier:   15,
		MediumMultiplier: 3,
		DefaultFraction:  0.2,
		MinProductRows:   5,
	}
}

// Validate ensures every category resolves to exactly one tier.
func (t BoostTiers) Validate() error {
	seen := make(map[core.Category]struct{}, len(t.High))
	for _, c := range t.High {
		seen[c] = struct{}{}
	}
	for _, c := range t.Medium {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %q", ErrOverlappingTiers, c)
		}
	}
	return nil
}

// IsHigh reports whether the category sits in the HIGH tier.
func (t BoostTiers) IsHigh(category core.Category) bool {
	for _, c := range t.High {
		if c == category {
			return true
		}
	}
	return false
}

func (t BoostTiers) isMedium(category core.Category) bool {
	for _, c := range t.Medium {
		if c == category {
			return true
		}
	}
	return false
}

// RowsFor computes the row budget for one product given the base budget.
func (t BoostTiers) RowsFor(category core.Category, base int) int {
	switch {
	case t.IsHigh(category):
		return base * t.HighMultiplier
	case t.isMedium(category):
		return base * t.MediumMultiplier
	default:
		rows := int(float64(base) * t.DefaultFraction)
		if rows < t.MinProductRows {
			rows = t.MinProductRows
		}
		return rows
	}
}

// Config holds all synthesis tunables. Every field is externally
// overridable; the defaults reproduce the production corpus.
type Config struct {
	// TargetRows is the desired total dataset size. The per-product base
	// budget is max(MinBaseRows, TargetRows/uniqueProducts).
	TargetRows  int
	MinBaseRows int

	Tiers BoostTiers

	// PositiveShare is the fraction of each product's budget labeled 1.
	PositiveShare float64

	// CleanProbability is the chance a query survives typo injection
	// untouched. The floor keeps the trained model from requiring typos.
	CleanProbability float64

	Style GeneratorStyle

	// Seed feeds every random draw in the run.
	Seed int64

	// Workers bounds the generation pool size. Zero means one worker per CPU.
	Workers int
}

// DefaultConfig returns the production synthesis settings.
func DefaultConfig() *Config {
	return &Config{
		TargetRows:       3500,
		MinBaseRows:      15,
		Tiers:            DefaultBoostTiers(),
		PositiveShare:    0.5,
		CleanProbability: 0.3,
		Style:            StyleKeyword,
		Seed:             42,
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c == nil {
		return ErrConfigRequired
	}
	if c.TargetRows <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTarget, c.TargetRows)
	}
	if c.CleanProbability < 0 || c.CleanProbability > 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidCleanProbability, c.CleanProbability)
	}
	if c.PositiveShare <= 0 || c.PositiveShare >= 1 {
		return fmt.Errorf("%w: got %v", ErrInvalidPositiveShare, c.PositiveShare)
	}
	if c.Style != StylePhrase && c.Style != StyleKeyword {
		return fmt.Errorf("%w: %q", ErrUnknownGenerator, c.Style)
	}
	return c.Tiers.Validate()
}
