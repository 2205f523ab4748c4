// Package kanji builds the polymorphic Kanji entity hierarchy and the
// aggregator that populates it from the UCD extract, radical table, the
// four jouyou/jinmei/extra/linked-jinmei column files, the JLPT and
// Kentei list files, the frequency list, and group data's dependency
// on a name index. Shape follows spec.md §9's design note directly: a
// shared kanjiCore struct plus a per-variant sub-struct implementing a
// small Kanji interface, replacing the virtual-dispatch hierarchy a
// class-based implementation would use (grounded, in idiom, on the
// teacher's model.Token tagged-shape in model/model.go, which the
// teacher itself uses to avoid an interface hierarchy for a small
// closed set of token kinds).
package kanji

import (
	"github.com/anzumura/kanji-tools-sub002/internal/radical"
	"github.com/anzumura/kanji-tools-sub002/internal/ucd"
)

// KanjiType enumerates the eight concrete Kanji variants.
type KanjiType int

const (
	JouyouType KanjiType = iota
	JinmeiType
	LinkedJinmeiType
	LinkedOldType
	FrequencyType
	ExtraType
	KenteiType
	UcdType
)

func (t KanjiType) String() string {
	switch t {
	case JouyouType:
		return "Jouyou"
	case JinmeiType:
		return "Jinmei"
	case LinkedJinmeiType:
		return "LinkedJinmei"
	case LinkedOldType:
		return "LinkedOld"
	case FrequencyType:
		return "Frequency"
	case ExtraType:
		return "Extra"
	case KenteiType:
		return "Kentei"
	default:
		return "Ucd"
	}
}

// Grade is a Jouyou school grade, or S for secondary school.
type Grade int

const (
	GradeNone Grade = iota
	G1
	G2
	G3
	G4
	G5
	G6
	GradeS
)

// ParseGrade maps the Jouyou column's "S"/"1".."6" token to a Grade.
func ParseGrade(s string) (Grade, bool) {
	switch s {
	case "S":
		return GradeS, true
	case "1":
		return G1, true
	case "2":
		return G2, true
	case "3":
		return G3, true
	case "4":
		return G4, true
	case "5":
		return G5, true
	case "6":
		return G6, true
	default:
		return GradeNone, false
	}
}

// JlptLevel is a Japanese Language Proficiency Test level, N5 (easiest)
// to N1 (hardest).
type JlptLevel int

const (
	JlptNone JlptLevel = iota
	N5
	N4
	N3
	N2
	N1
)

// KenteiKyu is a Japan Kanji Aptitude Test grade, K10 (easiest) to K1
// (hardest), with two "pre" grades KJ2 and KJ1.
type KenteiKyu int

const (
	KyuNone KenteiKyu = iota
	K10
	K9
	K8
	K7
	K6
	K5
	K4
	K3
	KJ2
	K2
	KJ1
	K1
)

// Kanji is the read-only view every variant exposes. Kind-specific
// fields that may be absent return their zero value plus false, the
// Option<T> pattern spec.md §9 calls for in place of virtual dispatch.
type Kanji interface {
	Name() string
	CompatibilityName() (string, bool)
	Radical() *radical.Radical
	Strokes() ucd.Strokes
	Morohashi() ucd.MorohashiID
	Nelson() []int
	Pinyin() string
	Type() KanjiType
	Meaning() string
	Reading() string
	Grade() (Grade, bool)
	JlptLevel() (JlptLevel, bool)
	KenteiKyu() (KenteiKyu, bool)
	Frequency() (int, bool)
	OldNames() []string
	NewName() (Kanji, bool)
	Reason() (string, bool)
	Year() (int, bool)
	ReadingsInherited() bool
}

// kanjiCore holds the fields every variant shares, and default
// implementations of every optional accessor so a variant only
// overrides the handful its kind actually carries.
type kanjiCore struct {
	name       string
	compatName string // "" if none
	radical    *radical.Radical
	strokes    ucd.Strokes
	morohashi  ucd.MorohashiID
	nelson     []int
	pinyin     string
	meaning    string
	reading    string
	kyu        KenteiKyu // KyuNone unless promoted by setKentei
}

func (k *kanjiCore) Name() string        { return k.name }
func (k *kanjiCore) Radical() *radical.Radical { return k.radical }
func (k *kanjiCore) Strokes() ucd.Strokes      { return k.strokes }
func (k *kanjiCore) Morohashi() ucd.MorohashiID { return k.morohashi }
func (k *kanjiCore) Nelson() []int             { return k.nelson }
func (k *kanjiCore) Pinyin() string            { return k.pinyin }
func (k *kanjiCore) Meaning() string           { return k.meaning }
func (k *kanjiCore) Reading() string           { return k.reading }

func (k *kanjiCore) CompatibilityName() (string, bool) {
	if k.compatName == "" {
		return "", false
	}
	return k.compatName, true
}

func (k *kanjiCore) Grade() (Grade, bool)         { return GradeNone, false }
func (k *kanjiCore) JlptLevel() (JlptLevel, bool) { return JlptNone, false }
func (k *kanjiCore) KenteiKyu() (KenteiKyu, bool) {
	if k.kyu == KyuNone {
		return KyuNone, false
	}
	return k.kyu, true
}
func (k *kanjiCore) Frequency() (int, bool)           { return 0, false }
func (k *kanjiCore) OldNames() []string               { return nil }
func (k *kanjiCore) NewName() (Kanji, bool)           { return nil, false }
func (k *kanjiCore) Reason() (string, bool)           { return "", false }
func (k *kanjiCore) Year() (int, bool)                { return 0, false }
func (k *kanjiCore) ReadingsInherited() bool          { return false }
