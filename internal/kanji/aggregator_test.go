package kanji

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// buildFixture lays out a minimal but complete data directory covering
// every loader stage Load orchestrates.
func buildFixture(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeFile(t, dir, "radicals.txt", "Number\tName\tLongName\tReading\n1\t一\t\tいち\n")
	writeFile(t, dir, "ucd.txt", "Code\tName\tBlock\tVersion\tRadical\tStrokes\tVStrokes\tPinyin\tMorohashi\t"+
		"Nelson\tSources\tJSource\tJoyo\tJinmei\tLinkCodes\tLinkNames\tLinkType\tLinkedReadings\tMeaning\tOn\tKun\n")
	writeFile(t, dir, "jouyou.txt", "Number\tName\tRadical\tOldNames\tYear\tStrokes\tGrade\tMeaning\tReading\n"+
		"1\t一\t一\t\t\t1\t1\tone\tいち\n")
	writeFile(t, dir, "jinmei.txt", "Number\tName\tRadical\tOldNames\tYear\tReason\tReading\n"+
		"1\t丑\t一\t\t\tname-use\tうし\n")
	writeFile(t, dir, "extra.txt", "Number\tName\tRadical\tStrokes\tMeaning\tReading\n"+
		"1\t弐\t一\t6\ttwo\tに\n")
	writeFile(t, dir, "linked-jinmei.txt", "一 弌\n")
	writeFile(t, dir, "frequency.txt", "一\n二\n三\n")

	require.NoError(t, os.Mkdir(filepath.Join(dir, "kentei"), 0o755))
	writeFile(t, dir, "kentei/k10.txt", "三\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "jlpt"), 0o755))
	writeFile(t, dir, "jlpt/n5.txt", "一\n")

	return dir
}

func TestLoadFullPipeline(t *testing.T) {
	dir := buildFixture(t)
	d, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 6, d.Len()) // 一 丑 弐 弌 二 三

	ichi, err := d.FindByName("一")
	require.NoError(t, err)
	grade, ok := ichi.Grade()
	assert.True(t, ok)
	assert.Equal(t, G1, grade)

	jlpt, ok := ichi.JlptLevel()
	assert.True(t, ok)
	assert.Equal(t, N5, jlpt)

	freq, ok := ichi.Frequency()
	assert.True(t, ok)
	assert.Equal(t, 1, freq)

	ushi, err := d.FindByName("丑")
	require.NoError(t, err)
	reason, ok := ushi.Reason()
	assert.True(t, ok)
	assert.Equal(t, "name-use", reason)

	linked, err := d.FindByName("弌")
	require.NoError(t, err)
	assert.Equal(t, LinkedJinmeiType, linked.Type())
	target, ok := linked.NewName()
	require.True(t, ok)
	assert.Equal(t, "一", target.Name())

	ni, err := d.FindByName("二")
	require.NoError(t, err)
	freq, ok = ni.Frequency()
	assert.True(t, ok)
	assert.Equal(t, 2, freq)

	san, err := d.FindByName("三")
	require.NoError(t, err)
	kyu, ok := san.KenteiKyu()
	assert.True(t, ok)
	assert.Equal(t, K10, kyu)
}

// TestLoadPromotesKenteiOntoFrequencyEntry covers spec.md:291's open
// question: a name present in both the frequency list and a kentei list
// must keep its frequency rank (from loading first) and still gain the
// kentei kyū, rather than silently dropping one or the other.
func TestLoadPromotesKenteiOntoFrequencyEntry(t *testing.T) {
	dir := buildFixture(t)
	d, err := Load(dir)
	require.NoError(t, err)

	san, err := d.FindByName("三")
	require.NoError(t, err)
	assert.Equal(t, FrequencyType, san.Type())

	freq, ok := san.Frequency()
	assert.True(t, ok)
	assert.Equal(t, 3, freq)

	kyu, ok := san.KenteiKyu()
	assert.True(t, ok)
	assert.Equal(t, K10, kyu)

	assert.Contains(t, d.ByKenteiKyu(K10), san)
}

func TestLoadRejectsUnknownRadical(t *testing.T) {
	dir := buildFixture(t)
	writeFile(t, dir, "jouyou.txt", "Number\tName\tRadical\tOldNames\tYear\tStrokes\tGrade\tMeaning\tReading\n"+
		"1\t一\t不存在\t\t\t1\t1\tone\tいち\n")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyJinmeiReason(t *testing.T) {
	dir := buildFixture(t)
	writeFile(t, dir, "jinmei.txt", "Number\tName\tRadical\tOldNames\tYear\tReason\tReading\n"+
		"1\t丑\t一\t\t\t\tうし\n")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestLoadRejectsLinkedJinmeiTargetNotJouyouOrJinmei(t *testing.T) {
	dir := buildFixture(t)
	writeFile(t, dir, "linked-jinmei.txt", "弐 弌\n")
	_, err := Load(dir)
	assert.Error(t, err)
}

func TestParseGrade(t *testing.T) {
	g, ok := ParseGrade("S")
	assert.True(t, ok)
	assert.Equal(t, GradeS, g)

	_, ok = ParseGrade("7")
	assert.False(t, ok)
}
