package synth

import (
	"testing"

	"github.com/amnamine/djiblistore/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	require.NoError(t, DefaultConfig().Validate())
}

func TestConfigValidate(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		var c *Config
		assert.ErrorIs(t, c.Validate(), ErrConfigRequired)
	})

	t.Run("zero target", func(t *testing.T) {
		c := DefaultConfig()
		c.TargetRows = 0
		assert.ErrorIs(t, c.Validate(), ErrInvalidTarget)
	})

	t.Run("clean probability out of range", func(t *testing.T) {
		c := DefaultConfig()
		c.CleanProbability = 1.5
		assert.ErrorIs(t, c.Validate(), ErrInvalidCleanProbability)
	})

	t.Run("positive share out of range", func(t *testing.T) {
		c := DefaultConfig()
		c.PositiveShare = 1
		assert.ErrorIs(t, c.Validate(), ErrInvalidPositiveShare)
	})

	t.Run("unknown generator style", func(t *testing.T) {
		c := DefaultConfig()
		c.Style = GeneratorStyle("markov")
		assert.ErrorIs(t, c.Validate(), ErrUnknownGenerator)
	})

	t.Run("category in two tiers", func(t *testing.T) {
		c := DefaultConfig()
		c.Tiers.Medium = append(c.Tiers.Medium, core.CategoryTablet)
		assert.ErrorIs(t, c.Validate(), ErrOverlappingTiers)
	})
}

func TestBoostTiersRowsFor(t *testing.T) {
	tiers := DefaultBoostTiers()
	const base = 318

	assert.Equal(t, base*15, tiers.RowsFor(core.CategoryTablet, base))
	assert.Equal(t, base*15, tiers.RowsFor(core.CategoryRouterModem, base))
	assert.Equal(t, base*3, tiers.RowsFor(core.CategorySmartphone, base))
	assert.Equal(t, 63, tiers.RowsFor(core.CategoryAudio, base)) // int(318*0.2)
	assert.Equal(t, 63, tiers.RowsFor(core.CategoryGeneral, base))
}

func TestBoostTiersFloor(t *testing.T) {
	tiers := DefaultBoostTiers()
	// int(15*0.2)=3, below the floor of 5.
	assert.Equal(t, 5, tiers.RowsFor(core.CategoryAudio, 15))
}

// Every category in the closed set resolves to exactly one tier.
func TestEveryCategoryResolves(t *testing.T) {
	tiers := DefaultBoostTiers()
	require.NoError(t, tiers.Validate())

	for _, category := range core.Categories() {
		rows := tiers.RowsFor(category, 100)
		assert.Positive(t, rows, "category %q has no row budget", category)
	}
}
