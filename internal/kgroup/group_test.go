package kgroup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anzumura/kanji-tools-sub002/internal/kanji"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func buildKanjiData(t *testing.T) *kanji.Data {
	t.Helper()
	dir := t.TempDir()
	writeFile(t, dir, "radicals.txt", "Number\tName\tLongName\tReading\n1\t一\t\tいち\n")
	writeFile(t, dir, "ucd.txt", "Code\tName\tBlock\tVersion\tRadical\tStrokes\tVStrokes\tPinyin\tMorohashi\t"+
		"Nelson\tSources\tJSource\tJoyo\tJinmei\tLinkCodes\tLinkNames\tLinkType\tLinkedReadings\tMeaning\tOn\tKun\n")
	writeFile(t, dir, "jouyou.txt", "Number\tName\tRadical\tOldNames\tYear\tStrokes\tGrade\tMeaning\tReading\n"+
		"1\t一\t一\t\t\t1\t1\tone\tいち\n"+
		"2\t二\t一\t\t\t2\t1\ttwo\tに\n"+
		"3\t三\t一\t\t\t3\t1\tthree\tさん\n")
	writeFile(t, dir, "jinmei.txt", "Number\tName\tRadical\tOldNames\tYear\tReason\tReading\n")
	writeFile(t, dir, "extra.txt", "Number\tName\tRadical\tStrokes\tMeaning\tReading\n")
	writeFile(t, dir, "linked-jinmei.txt", "")
	writeFile(t, dir, "frequency.txt", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "kentei"), 0o755))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "jlpt"), 0o755))

	d, err := kanji.Load(dir)
	require.NoError(t, err)
	return d
}

func TestLoadMeaningGroupsAllowsRepeats(t *testing.T) {
	kd := buildKanjiData(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "meaning-groups.txt", "Number\tName\tMembers\n"+
		"1\tnumbers\t一 二\n"+
		"2\tsmall-numbers\t一 三\n")

	d, err := LoadMeaning(path, kd)
	require.NoError(t, err)
	assert.Len(t, d.Groups, 2)

	ichi, err := kd.FindByName("一")
	require.NoError(t, err)
	assert.Len(t, d.byKanji[ichi], 2)
}

func TestLoadMeaningGroupsDropsUnknownMembers(t *testing.T) {
	kd := buildKanjiData(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "meaning-groups.txt", "Number\tName\tMembers\n"+
		"1\tnumbers\t一 二 不明\n")

	d, err := LoadMeaning(path, kd)
	require.NoError(t, err)
	require.Len(t, d.Groups, 1)
	assert.Len(t, d.Groups[0].Members, 2)
}

func TestLoadMeaningGroupsEnforcesMemberRange(t *testing.T) {
	kd := buildKanjiData(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "meaning-groups.txt", "Number\tName\tMembers\n"+
		"1\tsingleton\t一\n")

	_, err := LoadMeaning(path, kd)
	assert.Error(t, err)
}

func TestLoadPatternGroupsParsesNamePrefix(t *testing.T) {
	kd := buildKanjiData(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "pattern-groups.txt", "Number\tName\tMembers\n"+
		"1\t一：family\t二 三\n"+
		"2\t：peer\t二 三\n")

	d, err := LoadPattern(path, kd)
	require.NoError(t, err)
	require.Len(t, d.Groups, 2)
	assert.Equal(t, Family, d.Groups[0].Type)
	assert.Equal(t, Peer, d.Groups[1].Type)
}

func TestLoadPatternGroupsRejectsDuplicateMembership(t *testing.T) {
	kd := buildKanjiData(t)
	dir := t.TempDir()
	path := writeFile(t, dir, "pattern-groups.txt", "Number\tName\tMembers\n"+
		"1\tfirst\t一 二\n"+
		"2\tsecond\t一 三\n")

	d, err := LoadPattern(path, kd)
	require.NoError(t, err)
	// 一 stays with the first group that claimed it in the by-Kanji index;
	// the second group still lists it among its members and loads without
	// error.
	ichi, err := kd.FindByName("一")
	require.NoError(t, err)
	assert.Equal(t, d.Groups[0], d.byKanji[ichi])
}
