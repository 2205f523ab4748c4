package kana

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomajiToHiraganaDuZu(t *testing.T) {
	assert.Equal(t, "つづき", Convert("tsuduki", Romaji, Hiragana, None))
	assert.Equal(t, "つづき", Convert("tsuzuki", Romaji, Hiragana, None))
}

func TestRomajiToHiraganaPhrase(t *testing.T) {
	got := Convert("akai kitsune", Romaji, Hiragana, None)
	assert.Equal(t, "あかい　きつね", got)
}

func TestShiSiVariants(t *testing.T) {
	assert.Equal(t, "し", Convert("shi", Romaji, Hiragana, None))
	assert.Equal(t, "し", Convert("si", Romaji, Hiragana, None))
}

func TestMacronProlongMark(t *testing.T) {
	assert.Equal(t, "ラメン", Convert("ramen", Romaji, Katakana, None))
	withMacron := Convert("rāmen", Romaji, Katakana, None)
	assert.Equal(t, "ラーメン", withMacron)
}

func TestNoProlongMarkRepeatsVowel(t *testing.T) {
	got := Convert("rāmen", Romaji, Hiragana, NoProlongMark)
	assert.Equal(t, "らあめん", got)
}

func TestHiraganaToRomajiRoundTrip(t *testing.T) {
	kana := Convert("tsuduki", Romaji, Hiragana, None)
	back := Convert(kana, Hiragana, Romaji, None)
	assert.Equal(t, "tsuduki", back)
}

func TestRemoveSpacesFlag(t *testing.T) {
	got := Convert("akai kitsune", Romaji, Hiragana, RemoveSpaces)
	assert.Equal(t, "あかいきつね", got)
}

// TestRoundTripLaws exercises spec.md §8's quantified round-trip laws
// against every plain entry in the built table, not just the worked
// examples above: Rōmaji→Hiragana→Rōmaji returns the original primary
// spelling, and Hiragana↔Katakana are inverses of each other.
func TestRoundTripLaws(t *testing.T) {
	for _, e := range baseEntries() {
		if e.IterationMark {
			continue
		}
		e := e
		t.Run(e.Romaji, func(t *testing.T) {
			hira := Convert(e.Romaji, Romaji, Hiragana, None)
			back := Convert(hira, Hiragana, Romaji, None)
			assert.Equal(t, e.Romaji, back, "romaji->hiragana->romaji round trip")

			assert.Equal(t, e.KatakanaForm, Convert(e.HiraganaForm, Hiragana, Katakana, None),
				"hiragana->katakana")
			assert.Equal(t, e.HiraganaForm, Convert(e.KatakanaForm, Katakana, Hiragana, None),
				"katakana->hiragana")
		})
	}
}
