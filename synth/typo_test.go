package synth

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCorruptShortTokensUntouched(t *testing.T) {
	injector := TypoInjector{CleanProbability: 0}
	rng := rand.New(rand.NewSource(1))

	for _, token := range []string{"", "a", "4g", "tv"} {
		for range 100 {
			assert.Equal(t, token, injector.Corrupt(rng, token))
		}
	}
}

func TestCorruptNeverBreaksBounds(t *testing.T) {
	injector := TypoInjector{CleanProbability: 0}
	rng := rand.New(rand.NewSource(2))

	tokens := []string{"zte", "wifi", "tablette", "samsung galaxy a55", "écouteurs"}
	for _, token := range tokens {
		runes := len([]rune(token))
		for range 5000 {
			got := injector.Corrupt(rng, token)
			gotRunes := len([]rune(got))
			assert.GreaterOrEqual(t, gotRunes, runes-1)
			assert.LessOrEqual(t, gotRunes, runes+1)
			assert.NotEmpty(t, got)
		}
	}
}

// The clean floor plus the no-op action: a token should come back untouched
// with probability clean + (1-clean)/4.
func TestCorruptCleanRate(t *testing.T) {
	const clean = 0.3
	injector := TypoInjector{CleanProbability: clean}
	rng := rand.New(rand.NewSource(3))

	const samples = 50000
	unchanged := 0
	for range samples {
		if injector.Corrupt(rng, "tablette") == "tablette" {
			unchanged++
		}
	}

	// "tablette" has repeated letters, so some swaps/duplicates can also
	// reproduce the original; expect at or slightly above the floor.
	expected := clean + (1-clean)/4
	rate := float64(unchanged) / samples
	assert.InDelta(t, expected, rate, 0.05, "unchanged rate %v", rate)
	assert.True(t, rate >= expected-0.05)
}

func TestCorruptAlwaysCleanAtProbabilityOne(t *testing.T) {
	injector := TypoInjector{CleanProbability: 1}
	rng := rand.New(rand.NewSource(4))

	for range 1000 {
		assert.Equal(t, "tablette", injector.Corrupt(rng, "tablette"))
	}
}

func TestCorruptDeterministicWithSeed(t *testing.T) {
	injector := TypoInjector{CleanProbability: 0.3}

	run := func() []string {
		rng := rand.New(rand.NewSource(7))
		out := make([]string, 0, 100)
		for range 100 {
			out = append(out, injector.Corrupt(rng, "smartphone"))
		}
		return out
	}

	assert.Equal(t, run(), run())
}

func TestCorruptProducesEditDistanceOne(t *testing.T) {
	injector := TypoInjector{CleanProbability: 0}
	rng := rand.New(rand.NewSource(5))

	seenDelete, seenSwap, seenDuplicate := false, false, false
	for range 2000 {
		got := injector.Corrupt(rng, "wifi")
		switch {
		case len(got) == 3:
			seenDelete = true
		case len(got) == 5:
			seenDuplicate = true
		case got != "wifi":
			seenSwap = true
		}
	}
	assert.True(t, seenDelete, "delete action never fired")
	assert.True(t, seenSwap, "swap action never fired")
	assert.True(t, seenDuplicate, "duplicate action never fired")
}
