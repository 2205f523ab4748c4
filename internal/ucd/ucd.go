// Package ucd loads the extracted Unicode Character Database row for
// every Kanji the knowledge base knows about: code point, radical,
// stroke counts, readings, Morohashi/Nelson IDs, source-script bitset,
// and cross-reference links. Structure is grounded on the teacher's
// dictionary.go column-scanning loop, rebuilt on internal/kfile's
// ColumnFile and returning internal/kerr's typed errors instead of the
// teacher's bare `error` wrapping.
package ucd

import (
	"strconv"
	"strings"

	"github.com/anzumura/kanji-tools-sub002/internal/kana"
	"github.com/anzumura/kanji-tools-sub002/internal/kerr"
	"github.com/anzumura/kanji-tools-sub002/internal/kfile"
	"github.com/anzumura/kanji-tools-sub002/internal/klog"
)

// LinkType enumerates the single link classification UCD rows declare
// for their outgoing links.
type LinkType int

const (
	Compatibility LinkType = iota
	Definition
	Jinmei
	Semantic
	Simplified
	Traditional
)

// IdType distinguishes the four Morohashi ID shapes.
type IdType int

const (
	Plain IdType = iota
	Prime
	DoublePrime
	Supplemental
)

// MorohashiID is a numeric Daikanwajiten index with its shape tag. The
// zero value (Number 0, Type Plain) means "no Morohashi ID".
type MorohashiID struct {
	Number uint16
	Type   IdType
}

// String renders the ID the way the source corpus prints it: "N", "NP",
// "NPP", or "HN" (supplemental entries are prefixed with H).
func (m MorohashiID) String() string {
	if m.Number == 0 {
		return ""
	}
	n := strconv.Itoa(int(m.Number))
	switch m.Type {
	case Prime:
		return n + "P"
	case DoublePrime:
		return n + "PP"
	case Supplemental:
		return "H" + n
	default:
		return n
	}
}

// NewMorohashiID validates and constructs a MorohashiID: zero paired
// with any type other than Plain is rejected.
func NewMorohashiID(n uint16, t IdType) (MorohashiID, error) {
	if n == 0 && t != Plain {
		return MorohashiID{}, &kerr.DomainError{Column: "Morohashi", Value: strconv.Itoa(int(n)),
			Msg: "Morohashi id of zero must be Plain"}
	}
	return MorohashiID{Number: n, Type: t}, nil
}

// Link is one outgoing cross-reference from a UCD entry.
type Link struct {
	Code           uint32
	Name           string
	Type           LinkType
	LinkedReadings bool
}

// Strokes is a primary/optional-variant stroke-count pair.
type Strokes struct {
	Value   int
	Variant int // 0 if absent
}

// NewStrokes validates spec.md §3's Strokes invariant: primary in
// 1..=53, variant (if present) in 3..=33 and different from primary.
func NewStrokes(value, variant int) (Strokes, error) {
	if value < 1 || value > 53 {
		return Strokes{}, &kerr.RangeError{Field: "Strokes", Value: value, Min: 1, Max: 53}
	}
	if variant != 0 {
		if variant < 3 || variant > 33 {
			return Strokes{}, &kerr.RangeError{Field: "VStrokes", Value: variant, Min: 3, Max: 33}
		}
		if variant == value {
			return Strokes{}, &kerr.DomainError{Column: "VStrokes", Value: strconv.Itoa(variant),
				Msg: "variant stroke count must differ from primary"}
		}
	}
	return Strokes{Value: value, Variant: variant}, nil
}

// Entry is one row of the UCD extract.
type Entry struct {
	Code      uint32
	Name      string
	Block     string
	Version   string
	Radical   int
	Strokes   Strokes
	Pinyin    string
	Morohashi MorohashiID
	Nelson    []int
	Sources   string // G/H/J/K/T/V bitset, stored verbatim
	Joyo      bool
	Jinmei    bool
	JSource   string
	Links     []Link
	Meaning   string
	On        []string
	Kun       []string
}

// GetReadingsAsKana converts e's on-reading tokens to Katakana and
// kun-reading tokens to Hiragana via the Kana converter, joining the
// result with the wide comma "、".
func GetReadingsAsKana(e *Entry) string {
	var parts []string
	for _, r := range e.On {
		parts = append(parts, kana.Convert(r, kana.Romaji, kana.Katakana, kana.None))
	}
	for _, r := range e.Kun {
		parts = append(parts, kana.Convert(r, kana.Romaji, kana.Hiragana, kana.None))
	}
	return strings.Join(parts, "、")
}

var (
	colCode           = kfile.NewColumn("Code")
	colName           = kfile.NewColumn("Name")
	colBlock          = kfile.NewColumn("Block")
	colVersion        = kfile.NewColumn("Version")
	colRadical        = kfile.NewColumn("Radical")
	colStrokes        = kfile.NewColumn("Strokes")
	colVStrokes       = kfile.NewColumn("VStrokes")
	colPinyin         = kfile.NewColumn("Pinyin")
	colMorohashi      = kfile.NewColumn("Morohashi")
	colNelson         = kfile.NewColumn("Nelson")
	colSources        = kfile.NewColumn("Sources")
	colJSource        = kfile.NewColumn("JSource")
	colJoyo           = kfile.NewColumn("Joyo")
	colJinmei         = kfile.NewColumn("Jinmei")
	colLinkCodes      = kfile.NewColumn("LinkCodes")
	colLinkNames      = kfile.NewColumn("LinkNames")
	colLinkType       = kfile.NewColumn("LinkType")
	colLinkedReadings = kfile.NewColumn("LinkedReadings")
	colMeaning        = kfile.NewColumn("Meaning")
	colOn             = kfile.NewColumn("On")
	colKun            = kfile.NewColumn("Kun")

	ucdColumns = []*kfile.Column{colCode, colName, colBlock, colVersion, colRadical, colStrokes,
		colVStrokes, colPinyin, colMorohashi, colNelson, colSources, colJSource, colJoyo, colJinmei,
		colLinkCodes, colLinkNames, colLinkType, colLinkedReadings, colMeaning, colOn, colKun}

	linkTypeByName = map[string]LinkType{
		"Compatibility": Compatibility, "Definition": Definition, "Jinmei": Jinmei,
		"Semantic": Semantic, "Simplified": Simplified, "Traditional": Traditional,
	}
)

// Data is the loaded, indexed UCD extract.
type Data struct {
	byName       map[string]*Entry
	linkedJinmei map[string]*Entry   // link target name -> Jinmei variant entry linking to it
	linkedOther  map[string][]*Entry // target name -> variant entries linked to it, non-Jinmei
}

// Load reads path (the tab-separated ucd.txt extract) and builds the
// name-indexed UCD table plus the two link maps spec.md §4.7 describes.
func Load(path string) (*Data, error) {
	cf, err := kfile.Open(path, ucdColumns, "\t")
	if err != nil {
		return nil, err
	}
	defer cf.Close()

	d := &Data{byName: map[string]*Entry{}, linkedJinmei: map[string]*Entry{}, linkedOther: map[string][]*Entry{}}

	for {
		ok, err := cf.NextRow()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		e, err := parseRow(cf)
		if err != nil {
			return nil, err
		}
		if _, exists := d.byName[e.Name]; exists {
			return nil, &kerr.DomainError{File: cf.Name(), Line: cf.RowNum(), Column: "Name", Value: e.Name,
				Msg: "duplicate UCD entry"}
		}
		d.byName[e.Name] = e

		for _, l := range e.Links {
			if l.Type == Jinmei && e.Jinmei {
				d.linkedJinmei[l.Name] = e
			} else {
				d.linkedOther[l.Name] = append(d.linkedOther[l.Name], e)
			}
		}
	}

	klog.Info("ucd", "loaded UCD entries", map[string]any{"count": len(d.byName), "file": cf.Name()})
	return d, nil
}

func parseRow(cf *kfile.ColumnFile) (*Entry, error) {
	code, err := cf.GetChar32(colCode)
	if err != nil {
		return nil, err
	}
	name, err := cf.Get(colName)
	if err != nil {
		return nil, err
	}
	block, err := cf.Get(colBlock)
	if err != nil {
		return nil, err
	}
	version, err := cf.Get(colVersion)
	if err != nil {
		return nil, err
	}
	radical, err := cf.GetU16(colRadical)
	if err != nil {
		return nil, err
	}
	strokesVal, err := cf.GetU8(colStrokes)
	if err != nil {
		return nil, err
	}
	vstrokes, err := cf.GetOptSize(colVStrokes)
	if err != nil {
		return nil, err
	}
	vstrokesVal := 0
	if vstrokes != nil {
		vstrokesVal = *vstrokes
	}
	strokes, err := NewStrokes(int(strokesVal), vstrokesVal)
	if err != nil {
		return nil, annotate(err, cf, "Strokes")
	}
	pinyin, err := cf.Get(colPinyin)
	if err != nil {
		return nil, err
	}
	morohashiRaw, err := cf.Get(colMorohashi)
	if err != nil {
		return nil, err
	}
	morohashi, err := parseMorohashi(morohashiRaw)
	if err != nil {
		return nil, annotate(err, cf, "Morohashi")
	}
	nelsonRaw, err := cf.Get(colNelson)
	if err != nil {
		return nil, err
	}
	nelson, err := parseNelson(nelsonRaw)
	if err != nil {
		return nil, annotate(err, cf, "Nelson")
	}
	sources, err := cf.Get(colSources)
	if err != nil {
		return nil, err
	}
	jSource, err := cf.Get(colJSource)
	if err != nil {
		return nil, err
	}
	joyo, err := cf.GetBool(colJoyo)
	if err != nil {
		return nil, err
	}
	jinmei, err := cf.GetBool(colJinmei)
	if err != nil {
		return nil, err
	}
	linkCodesRaw, err := cf.Get(colLinkCodes)
	if err != nil {
		return nil, err
	}
	linkNamesRaw, err := cf.Get(colLinkNames)
	if err != nil {
		return nil, err
	}
	linkTypeRaw, err := cf.Get(colLinkType)
	if err != nil {
		return nil, err
	}
	linkedReadings, err := cf.GetBool(colLinkedReadings)
	if err != nil {
		return nil, err
	}
	meaning, err := cf.Get(colMeaning)
	if err != nil {
		return nil, err
	}
	onRaw, err := cf.Get(colOn)
	if err != nil {
		return nil, err
	}
	kunRaw, err := cf.Get(colKun)
	if err != nil {
		return nil, err
	}

	links, err := parseLinks(linkCodesRaw, linkNamesRaw, linkTypeRaw, linkedReadings)
	if err != nil {
		return nil, annotate(err, cf, "LinkCodes")
	}

	return &Entry{
		Code: uint32(code), Name: name, Block: block, Version: version, Radical: int(radical),
		Strokes: strokes, Pinyin: pinyin, Morohashi: morohashi, Nelson: nelson, Sources: sources,
		Joyo: joyo, Jinmei: jinmei, JSource: jSource, Links: links, Meaning: meaning,
		On: fields(onRaw), Kun: fields(kunRaw),
	}, nil
}

func fields(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Fields(s)
}

func annotate(err error, cf *kfile.ColumnFile, column string) error {
	if de, ok := err.(*kerr.DomainError); ok {
		de.File, de.Line, de.Column = cf.Name(), cf.RowNum(), column
		return de
	}
	if re, ok := err.(*kerr.RangeError); ok {
		re.File, re.Line = cf.Name(), cf.RowNum()
		return re
	}
	return err
}

func parseMorohashi(s string) (MorohashiID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return MorohashiID{}, nil
	}
	t := Plain
	switch {
	case strings.HasPrefix(s, "H"):
		t = Supplemental
		s = s[1:]
	case strings.HasSuffix(s, "PP"):
		t = DoublePrime
		s = s[:len(s)-2]
	case strings.HasSuffix(s, "P"):
		t = Prime
		s = s[:len(s)-1]
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return MorohashiID{}, &kerr.DomainError{Value: s, Msg: "invalid Morohashi id"}
	}
	return NewMorohashiID(uint16(n), t)
}

func parseNelson(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, &kerr.DomainError{Value: s, Msg: "invalid Nelson id list"}
		}
		out = append(out, n)
	}
	return out, nil
}

func parseLinks(codesRaw, namesRaw, typeRaw string, linkedReadings bool) ([]Link, error) {
	codes := fields(codesRaw)
	names := fields(namesRaw)
	if len(codes) != len(names) {
		return nil, &kerr.DomainError{Value: codesRaw, Msg: "LinkCodes and LinkNames must have equal length"}
	}
	if len(codes) == 0 {
		return nil, nil
	}
	typeRaw = strings.TrimSpace(typeRaw)
	lt, ok := linkTypeByName[typeRaw]
	if !ok {
		return nil, &kerr.DomainError{Column: "LinkType", Value: typeRaw, Msg: "unknown link type"}
	}
	out := make([]Link, len(codes))
	for i := range codes {
		c, err := strconv.ParseUint(strings.TrimSpace(codes[i]), 16, 32)
		if err != nil {
			return nil, &kerr.DomainError{Column: "LinkCodes", Value: codes[i], Msg: "invalid hex code point"}
		}
		out[i] = Link{Code: uint32(c), Name: names[i], Type: lt, LinkedReadings: linkedReadings}
	}
	return out, nil
}

// Find looks up name directly; if absent and name begins with a
// variation-selector sequence, the selector is stripped and the two
// link maps are consulted.
func (d *Data) Find(name string) (*Entry, error) {
	if d == nil {
		return nil, &kerr.LookupError{Kind: "Ucd", Key: ""}
	}
	if e, ok := d.byName[name]; ok {
		return e, nil
	}
	stripped := stripVariationSelector(name)
	if stripped != name {
		if e, ok := d.linkedJinmei[stripped]; ok {
			return e, nil
		}
		if es, ok := d.linkedOther[stripped]; ok && len(es) > 0 {
			return es[0], nil
		}
	}
	return nil, &kerr.LookupError{Kind: "Ucd name", Key: name}
}

// Len returns the number of loaded entries.
func (d *Data) Len() int {
	if d == nil {
		return 0
	}
	return len(d.byName)
}

// Entries returns every loaded entry keyed by name, for callers (the
// Kanji aggregator's UCD fallback pass) that must iterate the whole set.
func (d *Data) Entries() map[string]*Entry {
	if d == nil {
		return nil
	}
	return d.byName
}

func stripVariationSelector(name string) string {
	runes := []rune(name)
	if len(runes) < 2 {
		return name
	}
	last := runes[len(runes)-1]
	if (last >= 0xFE00 && last <= 0xFE0F) || (last >= 0xE0100 && last <= 0xE01EF) {
		return string(runes[:len(runes)-1])
	}
	return name
}
