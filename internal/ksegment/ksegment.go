// Package ksegment iterates a UTF-8 string one logical character at a
// time: it greedily absorbs a trailing variation selector and folds a
// trailing combining voiced/semi-voiced mark onto the preceding Kana to
// yield its dakuten/handakuten form. Grounded on the teacher's
// tokenize.go character classification helpers (isKanji/isKana range
// checks) generalized into a stateful scanner the way
// unilibs-uniwidth's RuneWidth uses tiered range checks per code point.
package ksegment

import (
	"strings"

	"github.com/anzumura/kanji-tools-sub002/internal/kblocks"
	"github.com/anzumura/kanji-tools-sub002/internal/ktutf8"
)

const (
	combiningVoiced     ktutf8.CodePoint = 0x3099
	combiningSemiVoiced ktutf8.CodePoint = 0x309A
)

// dakutenTable maps a plain Kana code point to its voiced (dakuten) form
// when U+3099 follows it.
var dakutenTable = buildDakutenTable()

// handakutenTable maps a plain Kana code point to its semi-voiced
// (handakuten) form when U+309A follows it. Only the h-row kana have one.
var handakutenTable = buildHandakutenTable()

func buildDakutenTable() map[ktutf8.CodePoint]ktutf8.CodePoint {
	m := map[ktutf8.CodePoint]ktutf8.CodePoint{}
	// Hiragana か..ほ rows plus う→ゔ, the katakana equivalents, and
	// katakana ワ→ヷ, ヰ→ヸ, ヱ→ヹ, ヲ→ヺ, expressed as
	// parallel (plain, voiced) rune pairs rather than an arithmetic shift
	// because the dakuten rows are not evenly spaced in either block.
	pairs := [][2]rune{
		{'か', 'が'}, {'き', 'ぎ'}, {'く', 'ぐ'}, {'け', 'げ'}, {'こ', 'ご'},
		{'さ', 'ざ'}, {'し', 'じ'}, {'す', 'ず'}, {'せ', 'ぜ'}, {'そ', 'ぞ'},
		{'た', 'だ'}, {'ち', 'ぢ'}, {'つ', 'づ'}, {'て', 'で'}, {'と', 'ど'},
		{'は', 'ば'}, {'ひ', 'び'}, {'ふ', 'ぶ'}, {'へ', 'べ'}, {'ほ', 'ぼ'},
		{'う', 'ゔ'},
		{'カ', 'ガ'}, {'キ', 'ギ'}, {'ク', 'グ'}, {'ケ', 'ゲ'}, {'コ', 'ゴ'},
		{'サ', 'ザ'}, {'シ', 'ジ'}, {'ス', 'ズ'}, {'セ', 'ゼ'}, {'ソ', 'ゾ'},
		{'タ', 'ダ'}, {'チ', 'ヂ'}, {'ツ', 'ヅ'}, {'テ', 'デ'}, {'ト', 'ド'},
		{'ハ', 'バ'}, {'ヒ', 'ビ'}, {'フ', 'ブ'}, {'ヘ', 'ベ'}, {'ホ', 'ボ'},
		{'ウ', 'ヴ'}, {'ワ', 'ヷ'}, {'ヰ', 'ヸ'}, {'ヱ', 'ヹ'}, {'ヲ', 'ヺ'},
	}
	for _, p := range pairs {
		m[ktutf8.CodePoint(p[0])] = ktutf8.CodePoint(p[1])
	}
	return m
}

func buildHandakutenTable() map[ktutf8.CodePoint]ktutf8.CodePoint {
	m := map[ktutf8.CodePoint]ktutf8.CodePoint{}
	pairs := [][2]rune{
		{'は', 'ぱ'}, {'ひ', 'ぴ'}, {'ふ', 'ぷ'}, {'へ', 'ぺ'}, {'ほ', 'ぽ'},
		{'ハ', 'パ'}, {'ヒ', 'ピ'}, {'フ', 'プ'}, {'ヘ', 'ペ'}, {'ホ', 'ポ'},
	}
	for _, p := range pairs {
		m[ktutf8.CodePoint(p[0])] = ktutf8.CodePoint(p[1])
	}
	return m
}

// Segmenter walks a string one logical character at a time.
type Segmenter struct {
	bytes  []byte
	pos    int
	onlyMB bool

	Errors         int
	Variants       int
	CombiningMarks int
}

// New creates a Segmenter over s. If onlyMB is true, plain ASCII bytes are
// skipped silently instead of being emitted as single-byte characters.
func New(s string, onlyMB bool) *Segmenter {
	return &Segmenter{bytes: []byte(s), onlyMB: onlyMB}
}

// Next advances past the next logical character, writing it to out and
// returning true, or returns false at end of input.
func (s *Segmenter) Next(out *strings.Builder) bool {
	for s.pos < len(s.bytes) {
		cur, curLen, ok := s.decodeAt(s.pos)
		if !ok {
			s.Errors++
			s.pos++
			continue
		}
		if s.onlyMB && cur < 0x80 {
			s.pos += curLen
			continue
		}
		s.pos += curLen

		nxt, nxtLen, hasNext := s.decodeAt(s.pos)
		if hasNext && kblocks.IsVariationSelector(nxt) {
			out.Write(ktutf8.Encode([]ktutf8.CodePoint{cur, nxt}))
			s.pos += nxtLen
			s.Variants++
			return true
		}
		if hasNext && nxt == combiningVoiced {
			s.pos += nxtLen
			s.CombiningMarks++
			if v, ok := dakutenTable[cur]; ok {
				out.Write(ktutf8.Encode([]ktutf8.CodePoint{v}))
			} else {
				out.Write(ktutf8.Encode([]ktutf8.CodePoint{cur}))
			}
			return true
		}
		if hasNext && nxt == combiningSemiVoiced {
			s.pos += nxtLen
			s.CombiningMarks++
			if v, ok := handakutenTable[cur]; ok {
				out.Write(ktutf8.Encode([]ktutf8.CodePoint{v}))
			} else {
				out.Write(ktutf8.Encode([]ktutf8.CodePoint{cur}))
			}
			return true
		}
		out.Write(ktutf8.Encode([]ktutf8.CodePoint{cur}))
		return true
	}
	return false
}

// decodeAt decodes one code point starting at byte offset i, returning
// the code point, its byte length, and whether a valid one was present.
// An invalid byte reports false with length 1.
func (s *Segmenter) decodeAt(i int) (ktutf8.CodePoint, int, bool) {
	if i >= len(s.bytes) {
		return 0, 0, false
	}
	end := i + 4
	if end > len(s.bytes) {
		end = len(s.bytes)
	}
	cps := ktutf8.Decode(s.bytes[i:end])
	if len(cps) == 0 {
		return 0, 0, false
	}
	cp := cps[0]
	// recompute how many bytes this one code point actually consumed by
	// re-encoding it. Decode emits the replacement character for an invalid
	// byte (consuming one input byte), so it only counts as a real code
	// point when the input literally holds its 3-byte encoding EF BF BD.
	if cp == ktutf8.ReplacementChar {
		if end-i >= 3 && s.bytes[i] == 0xEF && s.bytes[i+1] == 0xBF && s.bytes[i+2] == 0xBD {
			return cp, 3, true
		}
		return 0, 1, false
	}
	return cp, len(ktutf8.Encode([]ktutf8.CodePoint{cp})), true
}

// All drains the segmenter into a slice of logical characters, for tests
// and for callers that don't need streaming behavior.
func (s *Segmenter) All() []string {
	var out []string
	var b strings.Builder
	for {
		b.Reset()
		if !s.Next(&b) {
			break
		}
		out = append(out, b.String())
	}
	return out
}
