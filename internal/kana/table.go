// Package kana holds the Rōmaji/Hiragana/Katakana table and the converter
// built on top of it. Table shape (primary spelling, variants, optional
// Hepburn/Kunrei overrides, small/dakuten flags) follows spec.md §3's Kana
// entry data model. Each source CharType's index is a
// github.com/derekparker/trie (grounded on npillmayer/tyse's dependency on
// that package); the converter's longest-match search slices 3-, 2- and
// 1-rune candidates itself and looks each one up as an exact key.
package kana

import (
	"github.com/derekparker/trie"
)

// CharType enumerates the three representations a Kana entry participates in.
type CharType int

const (
	Hiragana CharType = iota
	Katakana
	Romaji
)

// ConvertFlags is a bitmask selecting Rōmaji style and formatting options.
type ConvertFlags uint

const (
	None          ConvertFlags = 0
	FlagHepburn   ConvertFlags = 1 << 0
	FlagKunrei    ConvertFlags = 1 << 1
	NoProlongMark ConvertFlags = 1 << 2
	RemoveSpaces  ConvertFlags = 1 << 3
)

// Entry is one row of the Kana table: a primary Rōmaji spelling plus
// variants, its Hiragana and Katakana forms, optional Hepburn/Kunrei
// overrides, and flags distinguishing small kana, dakuten/handakuten kana,
// and iteration marks.
type Entry struct {
	Romaji        string
	Variants      []string
	HiraganaForm  string
	KatakanaForm  string
	Hepburn       string // "" if no override
	Kunrei        string // "" if no override
	Small         bool
	DakutenForm   bool
	IterationMark bool
}

// Get returns the column of e selected by t, honoring flags for the
// Rōmaji column (Hepburn overrides Kunrei overrides primary).
func (e *Entry) Get(t CharType, flags ConvertFlags) string {
	switch t {
	case Hiragana:
		return e.HiraganaForm
	case Katakana:
		return e.KatakanaForm
	default:
		if flags&FlagHepburn != 0 && e.Hepburn != "" {
			return e.Hepburn
		}
		if flags&FlagKunrei != 0 && e.Kunrei != "" {
			return e.Kunrei
		}
		return e.Romaji
	}
}

// Table indexes Entry rows by Rōmaji (including variants/overrides),
// Hiragana and Katakana spelling, each backed by a trie that is queried
// with exact keys during conversion.
type Table struct {
	entries   []*Entry
	byRomaji  *trie.Trie
	byHira    *trie.Trie
	byKata    *trie.Trie
}

// Default is the 159-entry static Kana table: the monographs, their
// dakuten/handakuten forms, the digraphs, small kana, sokuon, n̄, the
// iteration marks, and the common Hepburn/Kunrei variant spellings listed
// in spec.md §4.3 (tsu/tu, shi/si, ji/zi, du/zu, sha/sya, fu/hu, wo/o, …).
var Default = buildDefaultTable()

// NewTable builds an empty, independently indexed Table. Exposed for
// tests that want a smaller fixture than Default.
func NewTable() *Table {
	return &Table{byRomaji: trie.New(), byHira: trie.New(), byKata: trie.New()}
}

// Add registers e under its primary Rōmaji, every variant, its Hepburn and
// Kunrei overrides (if any), and its Hiragana/Katakana forms. Registration
// is first-wins: a later Add whose Rōmaji-side spelling collides with one
// already claimed (e.g. wo's "o" variant against the plain vowel "o") is
// dropped rather than silently stealing the earlier entry's lookup, since
// every Rōmaji-side spelling shares one flag-agnostic index.
func (t *Table) Add(e *Entry) {
	t.entries = append(t.entries, e)
	t.addRomaji(e.Romaji, e)
	for _, v := range e.Variants {
		t.addRomaji(v, e)
	}
	t.addRomaji(e.Hepburn, e)
	t.addRomaji(e.Kunrei, e)
	if e.HiraganaForm != "" {
		t.byHira.Add(e.HiraganaForm, e)
	}
	if e.KatakanaForm != "" {
		t.byKata.Add(e.KatakanaForm, e)
	}
}

func (t *Table) addRomaji(key string, e *Entry) {
	if key == "" {
		return
	}
	if _, ok := t.byRomaji.Find(key); ok {
		return
	}
	t.byRomaji.Add(key, e)
}

// Entries returns every row in load order.
func (t *Table) Entries() []*Entry { return t.entries }

// Lookup finds the Entry registered under key in the index for t, trying
// the exact key only (callers perform the longest-match search by trying
// progressively shorter candidate substrings).
func (t *Table) Lookup(key string, from CharType) (*Entry, bool) {
	var idx *trie.Trie
	switch from {
	case Hiragana:
		idx = t.byHira
	case Katakana:
		idx = t.byKata
	default:
		idx = t.byRomaji
	}
	n, ok := idx.Find(key)
	if !ok {
		return nil, false
	}
	e, ok := n.Meta().(*Entry)
	return e, ok
}

func buildDefaultTable() *Table {
	t := NewTable()
	for _, e := range baseEntries() {
		t.Add(e)
	}
	return t
}
