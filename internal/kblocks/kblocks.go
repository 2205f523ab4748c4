// Package kblocks holds the static Unicode block range tables used to
// classify a code point as Hiragana, Katakana, common/rare Kanji, wide
// punctuation/letter/symbol, non-spacing, or wide-display. Table shape
// (sorted, non-overlapping []Block with a binary-search Find) is grounded
// on unilibs-uniwidth's tables.go, which keeps its own wide-character
// ranges as an ordered []runeRange for the same kind of lookup.
package kblocks

import (
	"sort"

	"golang.org/x/text/width"

	"github.com/anzumura/kanji-tools-sub002/internal/ktutf8"
)

// Block is an inclusive code point range, optionally named and versioned.
type Block struct {
	Start, End ktutf8.CodePoint
	Name       string
	Version    string
}

func (b Block) contains(cp ktutf8.CodePoint) bool { return cp >= b.Start && cp <= b.End }

// Hiragana covers U+3040..U+309F.
var Hiragana = []Block{{Start: 0x3040, End: 0x309F, Name: "Hiragana", Version: "1.1"}}

// Katakana covers the two katakana blocks.
var Katakana = []Block{
	{Start: 0x30A0, End: 0x30FF, Name: "Katakana", Version: "1.1"},
	{Start: 0x31F0, End: 0x31FF, Name: "Katakana Phonetic Extensions", Version: "3.2"},
}

// CommonKanji covers the blocks most Jouyou/Jinmei/frequency Kanji live in.
var CommonKanji = []Block{
	{Start: 0x4E00, End: 0x9FFF, Name: "CJK Unified Ideographs", Version: "1.1"},
	{Start: 0xF900, End: 0xFAFF, Name: "CJK Compatibility Ideographs", Version: "1.1"},
}

// RareKanji covers the CJK extension blocks: Extension A in the BMP and
// Extensions B..F in the supplementary planes.
var RareKanji = []Block{
	{Start: 0x3400, End: 0x4DBF, Name: "CJK Extension A", Version: "3.0"},
	{Start: 0x20000, End: 0x2A6DF, Name: "CJK Extension B", Version: "3.1"},
	{Start: 0x2A700, End: 0x2EBEF, Name: "CJK Extension C-F", Version: "5.2"},
}

// Punctuation covers full-width punctuation.
var Punctuation = []Block{
	{Start: 0x3000, End: 0x303F, Name: "CJK Symbols and Punctuation", Version: "1.1"},
	{Start: 0xFF00, End: 0xFF0F, Name: "Fullwidth ASCII Punctuation (low)", Version: "1.1"},
	{Start: 0xFF1A, End: 0xFF20, Name: "Fullwidth ASCII Punctuation (mid)", Version: "1.1"},
	{Start: 0xFF3B, End: 0xFF40, Name: "Fullwidth ASCII Punctuation (high)", Version: "1.1"},
	{Start: 0xFF5B, End: 0xFF65, Name: "Fullwidth ASCII Punctuation (tail)", Version: "1.1"},
}

// Symbol covers full-width symbols and enclosed letters/months.
var Symbol = []Block{
	{Start: 0x3200, End: 0x32FF, Name: "Enclosed CJK Letters and Months", Version: "1.1"},
	{Start: 0x3300, End: 0x33FF, Name: "CJK Compatibility", Version: "1.1"},
	{Start: 0xFFE0, End: 0xFFE6, Name: "Fullwidth Signs", Version: "1.1"},
}

// Letter covers full-width Latin letters and half/full-width forms.
var Letter = []Block{
	{Start: 0xFF21, End: 0xFF3A, Name: "Fullwidth Latin Upper", Version: "1.1"},
	{Start: 0xFF41, End: 0xFF5A, Name: "Fullwidth Latin Lower", Version: "1.1"},
}

// NonSpacing covers combining marks that contribute zero display columns.
var NonSpacing = []Block{
	{Start: 0x0300, End: 0x036F, Name: "Combining Diacritical Marks", Version: "1.1"},
	{Start: 0x3099, End: 0x309A, Name: "Combining Kana Voice Marks", Version: "3.2"},
	{Start: 0xFE00, End: 0xFE0F, Name: "Variation Selectors", Version: "3.2"},
	{Start: 0xE0100, End: 0xE01EF, Name: "Variation Selectors Supplement", Version: "4.0"},
}

// WideDisplay covers code points that occupy two terminal columns; this
// table is checked first, with a golang.org/x/text/width lookup as the
// fallback for code points outside it (see DisplaySize), the same two-tier
// shape unilibs-uniwidth uses (fast-path
// range checks backed by a wider table for the long tail).
var WideDisplay = append(append(append([]Block{}, Hiragana...), Katakana...), CommonKanji...)

func init() {
	for _, blocks := range [][]Block{Hiragana, Katakana, CommonKanji, RareKanji,
		Punctuation, Symbol, Letter, NonSpacing, WideDisplay} {
		sort.Slice(blocks, func(i, j int) bool { return blocks[i].Start < blocks[j].Start })
	}
}

// Find returns the Block containing cp within blocks, or nil. blocks must
// be sorted ascending and non-overlapping, which every table above is.
func Find(cp ktutf8.CodePoint, blocks []Block) *Block {
	i := sort.Search(len(blocks), func(i int) bool { return blocks[i].End >= cp })
	if i < len(blocks) && blocks[i].contains(cp) {
		return &blocks[i]
	}
	return nil
}

func isCP(s string, sizeOne bool, blocks []Block) bool {
	b := []byte(s)
	v, _ := ktutf8.ValidateMBUtf8(b, sizeOne)
	if v != ktutf8.Valid {
		return false
	}
	cp, ok := ktutf8.FirstCodePoint(b)
	return ok && Find(cp, blocks) != nil
}

// IsHiragana reports whether s is (or, if sizeOne is false, starts with) a
// Hiragana character.
func IsHiragana(s string, sizeOne bool) bool { return isCP(s, sizeOne, Hiragana) }

// IsKatakana reports whether s is (or starts with) a Katakana character.
func IsKatakana(s string, sizeOne bool) bool { return isCP(s, sizeOne, Katakana) }

// IsKanji reports whether s is (or starts with) a common or rare Kanji.
func IsKanji(s string, sizeOne bool) bool {
	return isCP(s, sizeOne, CommonKanji) || isCP(s, sizeOne, RareKanji)
}

// IsCommonKanji reports membership in the common (Jouyou/Jinmei-range) Kanji blocks only.
func IsCommonKanji(s string, sizeOne bool) bool { return isCP(s, sizeOne, CommonKanji) }

// IsRareKanji reports membership in the CJK extension blocks only.
func IsRareKanji(s string, sizeOne bool) bool { return isCP(s, sizeOne, RareKanji) }

// IsMBPunctuation reports whether s is (or starts with) wide punctuation.
func IsMBPunctuation(s string, sizeOne bool) bool { return isCP(s, sizeOne, Punctuation) }

// IsMBSymbol reports whether s is (or starts with) a wide symbol.
func IsMBSymbol(s string, sizeOne bool) bool { return isCP(s, sizeOne, Symbol) }

// IsMBLetter reports whether s is (or starts with) a fullwidth letter.
func IsMBLetter(s string, sizeOne bool) bool { return isCP(s, sizeOne, Letter) }

// IsNonSpacing reports whether a code point contributes zero display columns.
func IsNonSpacing(cp ktutf8.CodePoint) bool { return Find(cp, NonSpacing) != nil }

// IsVariationSelector reports whether cp is a variation selector
// (U+FE00..FE0F or U+E0100..E01EF).
func IsVariationSelector(cp ktutf8.CodePoint) bool {
	return (cp >= 0xFE00 && cp <= 0xFE0F) || (cp >= 0xE0100 && cp <= 0xE01EF)
}

// DisplaySize sums the terminal-column width of every code point in s: 0
// for non-spacing marks, 2 for wide-display code points, 1 otherwise. The
// wide/narrow determination is cross-checked against
// golang.org/x/text/width's East Asian Width classification (grounded on
// npillmayer/tyse's dependency on golang.org/x/text) rather than relying
// solely on the hand-maintained WideDisplay table, so newly assigned CJK
// code points outside WideDisplay still classify correctly.
func DisplaySize(s string) int {
	total := 0
	for _, cp := range ktutf8.Decode([]byte(s)) {
		switch {
		case IsNonSpacing(cp):
			// zero columns
		case isWide(cp):
			total += 2
		default:
			total++
		}
	}
	return total
}

func isWide(cp ktutf8.CodePoint) bool {
	if Find(cp, WideDisplay) != nil {
		return true
	}
	if cp > 0x10FFFF {
		return false
	}
	switch width.LookupRune(rune(cp)).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	default:
		return false
	}
}
