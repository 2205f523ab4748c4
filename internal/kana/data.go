package kana

// baseEntries returns the static Kana table rows: monographs, their
// dakuten/handakuten forms, small kana, digraphs, sokuon, n̄, the
// iteration marks, and Hepburn/Kunrei variant spellings.
func baseEntries() []*Entry {
	e := []*Entry{
		// --- plain vowels ---
		{Romaji: "a", HiraganaForm: "あ", KatakanaForm: "ア"},
		{Romaji: "i", HiraganaForm: "い", KatakanaForm: "イ"},
		{Romaji: "u", HiraganaForm: "う", KatakanaForm: "ウ"},
		{Romaji: "e", HiraganaForm: "え", KatakanaForm: "エ"},
		{Romaji: "o", HiraganaForm: "お", KatakanaForm: "オ"},

		// --- k-row ---
		{Romaji: "ka", HiraganaForm: "か", KatakanaForm: "カ"},
		{Romaji: "ki", HiraganaForm: "き", KatakanaForm: "キ"},
		{Romaji: "ku", HiraganaForm: "く", KatakanaForm: "ク"},
		{Romaji: "ke", HiraganaForm: "け", KatakanaForm: "ケ"},
		{Romaji: "ko", HiraganaForm: "こ", KatakanaForm: "コ"},
		{Romaji: "ga", HiraganaForm: "が", KatakanaForm: "ガ", DakutenForm: true},
		{Romaji: "gi", HiraganaForm: "ぎ", KatakanaForm: "ギ", DakutenForm: true},
		{Romaji: "gu", HiraganaForm: "ぐ", KatakanaForm: "グ", DakutenForm: true},
		{Romaji: "ge", HiraganaForm: "げ", KatakanaForm: "ゲ", DakutenForm: true},
		{Romaji: "go", HiraganaForm: "ご", KatakanaForm: "ゴ", DakutenForm: true},

		// --- s-row (shi/si variant) ---
		{Romaji: "sa", HiraganaForm: "さ", KatakanaForm: "サ"},
		{Romaji: "shi", Variants: []string{"si"}, Kunrei: "si", HiraganaForm: "し", KatakanaForm: "シ"},
		{Romaji: "su", HiraganaForm: "す", KatakanaForm: "ス"},
		{Romaji: "se", HiraganaForm: "せ", KatakanaForm: "セ"},
		{Romaji: "so", HiraganaForm: "そ", KatakanaForm: "ソ"},
		{Romaji: "za", HiraganaForm: "ざ", KatakanaForm: "ザ", DakutenForm: true},
		{Romaji: "ji", Variants: []string{"zi"}, Kunrei: "zi", HiraganaForm: "じ", KatakanaForm: "ジ", DakutenForm: true},
		{Romaji: "zu", HiraganaForm: "ず", KatakanaForm: "ズ", DakutenForm: true},
		{Romaji: "ze", HiraganaForm: "ぜ", KatakanaForm: "ゼ", DakutenForm: true},
		{Romaji: "zo", HiraganaForm: "ぞ", KatakanaForm: "ゾ", DakutenForm: true},

		// --- t-row (chi/ti, tsu/tu variants; ji/zi and zu/du collisions with dji/dzu forms) ---
		{Romaji: "ta", HiraganaForm: "た", KatakanaForm: "タ"},
		{Romaji: "chi", Variants: []string{"ti"}, Kunrei: "ti", HiraganaForm: "ち", KatakanaForm: "チ"},
		{Romaji: "tsu", Variants: []string{"tu"}, Kunrei: "tu", HiraganaForm: "つ", KatakanaForm: "ツ"},
		{Romaji: "te", HiraganaForm: "て", KatakanaForm: "テ"},
		{Romaji: "to", HiraganaForm: "と", KatakanaForm: "ト"},
		{Romaji: "da", HiraganaForm: "だ", KatakanaForm: "ダ", DakutenForm: true},
		{Romaji: "di", Hepburn: "ji", Kunrei: "di", HiraganaForm: "ぢ", KatakanaForm: "ヂ", DakutenForm: true},
		{Romaji: "du", Hepburn: "zu", Kunrei: "du", HiraganaForm: "づ", KatakanaForm: "ヅ", DakutenForm: true},
		{Romaji: "de", HiraganaForm: "で", KatakanaForm: "デ", DakutenForm: true},
		{Romaji: "do", HiraganaForm: "ど", KatakanaForm: "ド", DakutenForm: true},

		// --- n-row ---
		{Romaji: "na", HiraganaForm: "な", KatakanaForm: "ナ"},
		{Romaji: "ni", HiraganaForm: "に", KatakanaForm: "ニ"},
		{Romaji: "nu", HiraganaForm: "ぬ", KatakanaForm: "ヌ"},
		{Romaji: "ne", HiraganaForm: "ね", KatakanaForm: "ネ"},
		{Romaji: "no", HiraganaForm: "の", KatakanaForm: "ノ"},

		// --- h-row (fu/hu variant) ---
		{Romaji: "ha", HiraganaForm: "は", KatakanaForm: "ハ"},
		{Romaji: "hi", HiraganaForm: "ひ", KatakanaForm: "ヒ"},
		{Romaji: "fu", Variants: []string{"hu"}, Kunrei: "hu", HiraganaForm: "ふ", KatakanaForm: "フ"},
		{Romaji: "he", HiraganaForm: "へ", KatakanaForm: "ヘ"},
		{Romaji: "ho", HiraganaForm: "ほ", KatakanaForm: "ホ"},
		{Romaji: "ba", HiraganaForm: "ば", KatakanaForm: "バ", DakutenForm: true},
		{Romaji: "bi", HiraganaForm: "び", KatakanaForm: "ビ", DakutenForm: true},
		{Romaji: "bu", HiraganaForm: "ぶ", KatakanaForm: "ブ", DakutenForm: true},
		{Romaji: "be", HiraganaForm: "べ", KatakanaForm: "ベ", DakutenForm: true},
		{Romaji: "bo", HiraganaForm: "ぼ", KatakanaForm: "ボ", DakutenForm: true},
		{Romaji: "pa", HiraganaForm: "ぱ", KatakanaForm: "パ", DakutenForm: true},
		{Romaji: "pi", HiraganaForm: "ぴ", KatakanaForm: "ピ", DakutenForm: true},
		{Romaji: "pu", HiraganaForm: "ぷ", KatakanaForm: "プ", DakutenForm: true},
		{Romaji: "pe", HiraganaForm: "ぺ", KatakanaForm: "ペ", DakutenForm: true},
		{Romaji: "po", HiraganaForm: "ぽ", KatakanaForm: "ポ", DakutenForm: true},

		// --- m-row ---
		{Romaji: "ma", HiraganaForm: "ま", KatakanaForm: "マ"},
		{Romaji: "mi", HiraganaForm: "み", KatakanaForm: "ミ"},
		{Romaji: "mu", HiraganaForm: "む", KatakanaForm: "ム"},
		{Romaji: "me", HiraganaForm: "め", KatakanaForm: "メ"},
		{Romaji: "mo", HiraganaForm: "も", KatakanaForm: "モ"},

		// --- y-row ---
		{Romaji: "ya", HiraganaForm: "や", KatakanaForm: "ヤ"},
		{Romaji: "yu", HiraganaForm: "ゆ", KatakanaForm: "ユ"},
		{Romaji: "yo", HiraganaForm: "よ", KatakanaForm: "ヨ"},

		// --- r-row ---
		{Romaji: "ra", HiraganaForm: "ら", KatakanaForm: "ラ"},
		{Romaji: "ri", HiraganaForm: "り", KatakanaForm: "リ"},
		{Romaji: "ru", HiraganaForm: "る", KatakanaForm: "ル"},
		{Romaji: "re", HiraganaForm: "れ", KatakanaForm: "レ"},
		{Romaji: "ro", HiraganaForm: "ろ", KatakanaForm: "ロ"},

		// --- w-row + wo/o variant + n ---
		{Romaji: "wa", HiraganaForm: "わ", KatakanaForm: "ワ"},
		{Romaji: "wo", Variants: []string{"o"}, HiraganaForm: "を", KatakanaForm: "ヲ"},
		{Romaji: "n", Variants: []string{"nn", "m"}, HiraganaForm: "ん", KatakanaForm: "ン"},

		// --- v-row: ゔ only occurs in loanwords transliterating a foreign /v/ ---
		{Romaji: "vu", HiraganaForm: "ゔ", KatakanaForm: "ヴ", DakutenForm: true},

		// --- small kana ---
		{Romaji: "xa", Variants: []string{"la"}, HiraganaForm: "ぁ", KatakanaForm: "ァ", Small: true},
		{Romaji: "xi", Variants: []string{"li"}, HiraganaForm: "ぃ", KatakanaForm: "ィ", Small: true},
		{Romaji: "xu", Variants: []string{"lu"}, HiraganaForm: "ぅ", KatakanaForm: "ゥ", Small: true},
		{Romaji: "xe", Variants: []string{"le"}, HiraganaForm: "ぇ", KatakanaForm: "ェ", Small: true},
		{Romaji: "xo", Variants: []string{"lo"}, HiraganaForm: "ぉ", KatakanaForm: "ォ", Small: true},
		{Romaji: "xya", Variants: []string{"lya"}, HiraganaForm: "ゃ", KatakanaForm: "ャ", Small: true},
		{Romaji: "xyu", Variants: []string{"lyu"}, HiraganaForm: "ゅ", KatakanaForm: "ュ", Small: true},
		{Romaji: "xyo", Variants: []string{"lyo"}, HiraganaForm: "ょ", KatakanaForm: "ョ", Small: true},
		{Romaji: "xtsu", Variants: []string{"xtu", "ltu", "ltsu"}, HiraganaForm: "っ", KatakanaForm: "ッ", Small: true},
		{Romaji: "xwa", HiraganaForm: "ゎ", KatakanaForm: "ヮ", Small: true},

		// --- iteration marks ---
		{Romaji: "", HiraganaForm: "ゝ", KatakanaForm: "ヽ", IterationMark: true},
		{Romaji: "", HiraganaForm: "ゞ", KatakanaForm: "ヾ", IterationMark: true},
	}
	e = append(e, digraphEntries()...)
	e = append(e, extendedDigraphEntries()...)
	return e
}

// digraphEntries builds the consonant+small-y digraphs: each base consonant
// paired with ya/yu/yo (e.g. kya/kyu/kyo), including the sh/ch/j variants
// that use the Hepburn "sha/sho/shu" spelling with the Kunrei "sya/syo/syu"
// alternative, and the fy/vy rows used only for loanwords (fya, vya, …).
// extendedDigraphEntries covers the table's remaining small-vowel (non-y)
// digraphs: the foreign-sound combinations (va/fi/wi/tsa/she/…) that round
// out loanword and extended-katakana coverage alongside this y-glide set.
func digraphEntries() []*Entry {
	type row struct {
		hepburn, kunrei string // base consonant prefix, e.g. "ky", "sh"/"sy"
		hira, kata      rune   // base kana for the -i column (き, し, ち, …)
		dakuten         bool
	}
	rows := []row{
		{"ky", "ky", 'き', 'キ', false},
		{"sh", "sy", 'し', 'シ', false},
		{"ch", "ty", 'ち', 'チ', false},
		{"ny", "ny", 'に', 'ニ', false},
		{"hy", "hy", 'ひ', 'ヒ', false},
		{"my", "my", 'み', 'ミ', false},
		{"ry", "ry", 'り', 'リ', false},
		{"gy", "gy", 'ぎ', 'ギ', true},
		{"j", "zy", 'じ', 'ジ', true},
		{"by", "by", 'び', 'ビ', true},
		{"py", "py", 'ぴ', 'ピ', true},
		{"fy", "fy", 'ふ', 'フ', false},
		{"vy", "vy", 'ゔ', 'ヴ', true},
	}
	smallY := map[byte]struct{ hira, kata rune }{
		'a': {'ゃ', 'ャ'}, 'u': {'ゅ', 'ュ'}, 'o': {'ょ', 'ョ'},
	}
	vowels := []byte{'a', 'u', 'o'}
	var out []*Entry
	for _, r := range rows {
		for _, v := range vowels {
			sy := smallY[v]
			hira := string(r.hira) + string(sy.hira)
			kata := string(r.kata) + string(sy.kata)
			hep := r.hepburn + string(v)
			kun := r.kunrei + string(v)
			ent := &Entry{HiraganaForm: hira, KatakanaForm: kata, DakutenForm: r.dakuten}
			if hep == kun {
				ent.Romaji = hep
			} else {
				ent.Romaji = hep
				ent.Kunrei = kun
			}
			out = append(out, ent)
		}
	}
	return out
}

// extendedDigraphEntries builds the small-vowel (non-y) digraphs needed to
// transliterate sounds foreign to native Japanese phonology: ヴ[a/i/e/o],
// フ[a/i/e/o], the revived archaic ウィ/ウェ, extended ツ[a/e/o], the
// sibilant+e set (シェ/ジェ/チェ), an i-row+small-e set (キェ/ギェ/…), the
// labialized ク/グ set (クァ..グォ), クヮ (the one digraph whose second kana
// is small わ rather than a vowel-matching kana), イェ, and the wāpuro-style
// テ/デ/ト/ド spellings for the loanword sounds that would otherwise collide
// with chi/ti, ぢ/di, tsu/tu and づ/du's already-claimed Rōmaji.
func extendedDigraphEntries() []*Entry {
	type spot struct {
		romaji        string
		base, baseK   rune // consonant-row base kana (ふ, く, て, …)
		small, smallK rune // small kana forming the digraph's second code point
		dakuten       bool
	}
	spots := []spot{
		{"va", 'ゔ', 'ヴ', 'ぁ', 'ァ', true},
		{"vi", 'ゔ', 'ヴ', 'ぃ', 'ィ', true},
		{"ve", 'ゔ', 'ヴ', 'ぇ', 'ェ', true},
		{"vo", 'ゔ', 'ヴ', 'ぉ', 'ォ', true},

		{"fa", 'ふ', 'フ', 'ぁ', 'ァ', false},
		{"fi", 'ふ', 'フ', 'ぃ', 'ィ', false},
		{"fe", 'ふ', 'フ', 'ぇ', 'ェ', false},
		{"fo", 'ふ', 'フ', 'ぉ', 'ォ', false},

		{"wi", 'う', 'ウ', 'ぃ', 'ィ', false},
		{"we", 'う', 'ウ', 'ぇ', 'ェ', false},

		{"tsa", 'つ', 'ツ', 'ぁ', 'ァ', false},
		{"tse", 'つ', 'ツ', 'ぇ', 'ェ', false},
		{"tso", 'つ', 'ツ', 'ぉ', 'ォ', false},

		{"she", 'し', 'シ', 'ぇ', 'ェ', false},
		{"je", 'じ', 'ジ', 'ぇ', 'ェ', true},
		{"che", 'ち', 'チ', 'ぇ', 'ェ', false},

		{"kye", 'き', 'キ', 'ぇ', 'ェ', false},
		{"gye", 'ぎ', 'ギ', 'ぇ', 'ェ', true},
		{"nye", 'に', 'ニ', 'ぇ', 'ェ', false},
		{"hye", 'ひ', 'ヒ', 'ぇ', 'ェ', false},
		{"bye", 'び', 'ビ', 'ぇ', 'ェ', true},
		{"pye", 'ぴ', 'ピ', 'ぇ', 'ェ', true},

		{"kwa", 'く', 'ク', 'ぁ', 'ァ', false},
		{"kwi", 'く', 'ク', 'ぃ', 'ィ', false},
		{"kwe", 'く', 'ク', 'ぇ', 'ェ', false},
		{"kwo", 'く', 'ク', 'ぉ', 'ォ', false},
		{"gwa", 'ぐ', 'グ', 'ぁ', 'ァ', true},
		{"gwi", 'ぐ', 'グ', 'ぃ', 'ィ', true},
		{"gwe", 'ぐ', 'グ', 'ぇ', 'ェ', true},
		{"gwo", 'ぐ', 'グ', 'ぉ', 'ォ', true},
		{"qwa", 'く', 'ク', 'ゎ', 'ヮ', false},

		{"ye", 'い', 'イ', 'ぇ', 'ェ', false},

		{"thi", 'て', 'テ', 'ぃ', 'ィ', false},
		{"dhi", 'で', 'デ', 'ぃ', 'ィ', true},
		{"twu", 'と', 'ト', 'ぅ', 'ゥ', false},
		{"dwu", 'ど', 'ド', 'ぅ', 'ゥ', true},
	}
	out := make([]*Entry, 0, len(spots))
	for _, s := range spots {
		hira := string(s.base) + string(s.small)
		kata := string(s.baseK) + string(s.smallK)
		out = append(out, &Entry{Romaji: s.romaji, HiraganaForm: hira, KatakanaForm: kata, DakutenForm: s.dakuten})
	}
	return out
}
