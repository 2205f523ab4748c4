package kana

import (
	"strings"
	"unicode"
)

// macronVowel maps a macron-accented Rōmaji vowel to its plain ASCII vowel.
var macronVowel = map[rune]rune{'ā': 'a', 'ī': 'i', 'ū': 'u', 'ē': 'e', 'ō': 'o'}

var vowelKana = map[rune]string{'a': "あ", 'i': "い", 'u': "う", 'e': "え", 'o': "お"}

const prolongMark = "ー"
const fullWidthSpace = "　"

func isConsonant(r rune) bool {
	switch r {
	case 'a', 'i', 'u', 'e', 'o', 'n':
		return false
	}
	return r >= 'a' && r <= 'z'
}

// Convert rewrites src, read as fromType, into toType honoring flags. It is
// the sole entry point described by spec.md §4.3.
func Convert(src string, from, to CharType, flags ConvertFlags) string {
	return Default.Convert(src, from, to, flags)
}

// Convert is the Table-bound form of the package-level Convert, so callers
// with a custom Table (e.g. tests) can exercise the same algorithm.
func (t *Table) Convert(src string, from, to CharType, flags ConvertFlags) string {
	if from == Romaji {
		return t.romajiConvert(src, to, flags)
	}
	return t.kanaConvert(src, from, to, flags)
}

// romajiConvert segments an ASCII Rōmaji string, handling sokuon
// (consonant doubling), macron-vowel prolongation, and space rules, then
// emits each matched Entry's `to` column.
func (t *Table) romajiConvert(src string, to CharType, flags ConvertFlags) string {
	runes := []rune(src)
	prolong := make([]bool, len(runes))
	for i, r := range runes {
		if plain, ok := macronVowel[r]; ok {
			runes[i] = plain
			prolong[i] = true
		}
	}

	var out strings.Builder
	i := 0
	for i < len(runes) {
		r := runes[i]

		if r == ' ' {
			if flags&RemoveSpaces == 0 {
				out.WriteString(fullWidthSpace)
			}
			i++
			continue
		}

		lower := unicode.ToLower(r)
		if i+1 < len(runes) && unicode.ToLower(runes[i+1]) == lower && isConsonant(lower) && !prolong[i+1] {
			switch to {
			case Hiragana:
				out.WriteString("っ")
			case Katakana:
				out.WriteString("ッ")
			default:
				out.WriteRune(r)
			}
			i++
			continue
		}

		matched := false
		for l := 3; l >= 1; l-- {
			if i+l > len(runes) {
				continue
			}
			cand := strings.ToLower(string(runes[i : i+l]))
			if e, ok := t.Lookup(cand, Romaji); ok {
				out.WriteString(e.Get(to, flags))
				if prolong[i+l-1] {
					out.WriteString(t.prolongSuffix(runes[i+l-1], to, flags))
				}
				i += l
				matched = true
				break
			}
		}
		if !matched {
			out.WriteRune(r)
			i++
		}
	}
	return out.String()
}

// prolongSuffix returns the extra glyph appended after a mora whose final
// vowel carried a macron in the source: the prolong mark ー for Katakana
// always, and for Hiragana only when NoProlongMark is unset (otherwise the
// vowel kana is repeated instead). Rōmaji targets add nothing since the
// matched mora's own vowel letter already stands for the sound.
func (t *Table) prolongSuffix(vowel rune, to CharType, flags ConvertFlags) string {
	switch to {
	case Katakana:
		return prolongMark
	case Hiragana:
		if flags&NoProlongMark != 0 {
			return vowelKana[vowel]
		}
		return prolongMark
	default:
		return ""
	}
}

// kanaConvert segments a Hiragana or Katakana string two code points
// at a time (to catch digraphs) then one at a time, translating sokuon and
// the prolong mark when the target is Rōmaji.
func (t *Table) kanaConvert(src string, from, to CharType, flags ConvertFlags) string {
	runes := []rune(src)
	var out strings.Builder
	i := 0
	for i < len(runes) {
		r := runes[i]

		if r == '　' {
			if to == Romaji {
				out.WriteByte(' ')
			} else {
				out.WriteString(fullWidthSpace)
			}
			i++
			continue
		}

		if (r == 'っ' || r == 'ッ') && i+1 < len(runes) {
			if e, ok := t.lookupMora(runes, i+1, from); ok {
				romaji := e.Get(Romaji, flags)
				if to == Romaji {
					if romaji != "" {
						out.WriteByte(romaji[0])
					}
				} else if to == Hiragana {
					out.WriteString("っ")
				} else {
					out.WriteString("ッ")
				}
				i++
				continue
			}
		}

		if r == 'ー' {
			if to == Romaji {
				// repeat the previous vowel sound
				s := out.String()
				if s != "" {
					out.WriteRune(rune(s[len(s)-1]))
				}
			} else {
				out.WriteString("ー")
			}
			i++
			continue
		}

		if e, ok := t.lookupMora(runes, i, from); ok {
			out.WriteString(e.Get(to, flags))
			i += e.formRuneLen(from)
			continue
		}

		out.WriteRune(r)
		i++
	}
	return out.String()
}

// lookupMora tries the 2-rune then 1-rune substring starting at i against
// the from-type index.
func (t *Table) lookupMora(runes []rune, i int, from CharType) (*Entry, bool) {
	if i+2 <= len(runes) {
		if e, ok := t.Lookup(string(runes[i:i+2]), from); ok {
			return e, true
		}
	}
	if i+1 <= len(runes) {
		if e, ok := t.Lookup(string(runes[i:i+1]), from); ok {
			return e, true
		}
	}
	return nil, false
}

// formRuneLen returns how many code points the `from` column of e spans:
// 1 for a monograph, 2 for a digraph.
func (e *Entry) formRuneLen(from CharType) int {
	switch from {
	case Katakana:
		return len([]rune(e.KatakanaForm))
	default:
		return len([]rune(e.HiraganaForm))
	}
}
