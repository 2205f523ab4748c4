package kanji

// jouyouKanji is a standard Japanese-school Kanji: grade required, plus
// optional year, JLPT level, frequency rank, and old names.
type jouyouKanji struct {
	kanjiCore
	grade     Grade
	year      int // 0 if unknown
	jlpt      JlptLevel
	frequency int // 0 if unset
	oldNames  []string
}

func (k *jouyouKanji) Type() KanjiType { return JouyouType }
func (k *jouyouKanji) Grade() (Grade, bool) { return k.grade, true }
func (k *jouyouKanji) Year() (int, bool) {
	if k.year == 0 {
		return 0, false
	}
	return k.year, true
}
func (k *jouyouKanji) JlptLevel() (JlptLevel, bool) {
	if k.jlpt == JlptNone {
		return JlptNone, false
	}
	return k.jlpt, true
}
func (k *jouyouKanji) Frequency() (int, bool) {
	if k.frequency == 0 {
		return 0, false
	}
	return k.frequency, true
}
func (k *jouyouKanji) OldNames() []string { return k.oldNames }

// jinmeiKanji is a name-use Kanji: reason required, JLPT level usually
// None, optional year and frequency.
type jinmeiKanji struct {
	kanjiCore
	reason    string
	year      int
	jlpt      JlptLevel
	frequency int
	oldNames  []string
}

func (k *jinmeiKanji) Type() KanjiType      { return JinmeiType }
func (k *jinmeiKanji) Reason() (string, bool) { return k.reason, k.reason != "" }
func (k *jinmeiKanji) Year() (int, bool) {
	if k.year == 0 {
		return 0, false
	}
	return k.year, true
}
func (k *jinmeiKanji) JlptLevel() (JlptLevel, bool) {
	if k.jlpt == JlptNone {
		return JlptNone, false
	}
	return k.jlpt, true
}
func (k *jinmeiKanji) Frequency() (int, bool) {
	if k.frequency == 0 {
		return 0, false
	}
	return k.frequency, true
}
func (k *jinmeiKanji) OldNames() []string { return k.oldNames }

// linkedJinmeiKanji points back to a Jouyou or Jinmei Kanji, inheriting
// its meaning and reading, carrying its own kyū and frequency.
type linkedJinmeiKanji struct {
	kanjiCore
	link      Kanji
	kyu       KenteiKyu
	frequency int
}

func (k *linkedJinmeiKanji) Type() KanjiType          { return LinkedJinmeiType }
func (k *linkedJinmeiKanji) ReadingsInherited() bool  { return true }
func (k *linkedJinmeiKanji) KenteiKyu() (KenteiKyu, bool) {
	if k.kyu == KyuNone {
		return KyuNone, false
	}
	return k.kyu, true
}
func (k *linkedJinmeiKanji) Frequency() (int, bool) {
	if k.frequency == 0 {
		return 0, false
	}
	return k.frequency, true
}
func (k *linkedJinmeiKanji) NewName() (Kanji, bool) { return k.link, true }

// linkedOldKanji points back to a Jouyou only, inheriting meaning and
// reading.
type linkedOldKanji struct {
	kanjiCore
	link Kanji
}

func (k *linkedOldKanji) Type() KanjiType         { return LinkedOldType }
func (k *linkedOldKanji) ReadingsInherited() bool { return true }
func (k *linkedOldKanji) NewName() (Kanji, bool)  { return k.link, true }

// frequencyKanji has a frequency rank; its reading comes either from a
// readings-override file or is synthesized from UCD on/kun.
type frequencyKanji struct {
	kanjiCore
	frequency int
	inherited bool
}

func (k *frequencyKanji) Type() KanjiType         { return FrequencyType }
func (k *frequencyKanji) Frequency() (int, bool)  { return k.frequency, true }
func (k *frequencyKanji) ReadingsInherited() bool { return k.inherited }

// kenteiKanji has a kyū only.
type kenteiKanji struct {
	kanjiCore
	kyu KenteiKyu
}

func (k *kenteiKanji) Type() KanjiType             { return KenteiType }
func (k *kenteiKanji) KenteiKyu() (KenteiKyu, bool) { return k.kyu, true }

// extraKanji has strokes, meaning, and links pulled from UCD. Its "new
// name" link (spec.md §4.8) is metadata describing a UCD cross-reference
// rather than a pointer to another loaded Kanji, so it is kept as a raw
// string rather than satisfying the Kanji-valued NewName accessor.
type extraKanji struct {
	kanjiCore
	oldNames    []string
	newNameName string
}

func (k *extraKanji) Type() KanjiType    { return ExtraType }
func (k *extraKanji) OldNames() []string { return k.oldNames }

// ucdKanji carries only UCD-derived fields; it is the fallback variant
// for any UCD entry no other loader claimed.
type ucdKanji struct {
	kanjiCore
}

func (k *ucdKanji) Type() KanjiType { return UcdType }
