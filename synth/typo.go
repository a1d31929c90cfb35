package synth

import "math/rand"

// TypoInjector corrupts clean text the way a shopper typing fast on a phone
// does. One random edit at most: delete a character, swap two neighbors,
// duplicate a character, or leave the text alone.
//
// CleanProbability is the chance the text is returned untouched before any
// action is drawn. Note that the no-op action also returns the input, so the
// observed unchanged rate over a large sample is
// clean + (1-clean)/4, not clean alone.
type TypoInjector struct {
	CleanProbability float64
}

// Corrupt returns a possibly-corrupted copy of text. Text shorter than
// three runes is returned unchanged: too short to break safely. The random
// source is threaded explicitly so callers control reproducibility.
func (t TypoInjector) Corrupt(rng *rand.Rand, text string) string {
	chars := []rune(text)
	if len(chars) < 3 {
		return text
	}

	if rng.Float64() < t.CleanProbability {
		return text
	}

	switch rng.Intn(4) {
	case 0: // delete one char: "tablette" -> "tabltte"
		idx := rng.Intn(len(chars))
		chars = append(chars[:idx], chars[idx+1:]...)
	case 1: // swap neighbors: "wifi" -> "wfii"
		idx := rng.Intn(len(chars) - 1)
		chars[idx], chars[idx+1] = chars[idx+1], chars[idx]
	case 2: // duplicate one char: "samsung" -> "sammsung"
		idx := rng.Intn(len(chars))
		chars = append(chars, 0)
		copy(chars[idx+1:], chars[idx:])
	case 3: // leave it alone
	}

	return string(chars)
}
