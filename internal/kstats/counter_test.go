package kstats

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anzumura/kanji-tools-sub002/internal/kblocks"
)

func kanjiFilter(s string) bool { return kblocks.IsKanji(s, true) }

func TestAddCountsKanjiOnly(t *testing.T) {
	c := New(kanjiFilter, nil)
	c.Add("鰻丼を食べた", "")
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 1, c.Counts["丼"])
	assert.Equal(t, 1, c.Counts["食"])
	assert.Equal(t, 0, c.Counts["を"]) // kana not counted by the Kanji filter
}

func TestAddWithTagAttribution(t *testing.T) {
	c := New(kanjiFilter, nil)
	c.Add("鰻", "fileA")
	c.Add("鰻", "fileB")
	assert.Equal(t, 2, c.Counts["鰻"])
	assert.Equal(t, 1, c.ByTag["fileA"]["鰻"])
	assert.Equal(t, 1, c.ByTag["fileB"]["鰻"])
}

func TestAddStripsFurigana(t *testing.T) {
	re := regexp.MustCompile(`([\p{Han}])（[\x{3041}-\x{309F}ー]+）`)
	c := New(kanjiFilter, re)
	c.Add("鰻（うなぎ）を食べた", "")
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 1, c.Replacements)
}

func TestAddFileSingleFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(path, []byte("鰻丼\n鯉\n"), 0o644))

	c := New(kanjiFilter, nil)
	require.NoError(t, c.AddFile(path, false, false, false))
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 1, c.Counts["鯉"])
	assert.Equal(t, "", c.LastTag)
}

func TestAddFileWithTagAndFileNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "鯉.txt")
	require.NoError(t, os.WriteFile(path, []byte("鰻\n"), 0o644))

	c := New(kanjiFilter, nil)
	require.NoError(t, c.AddFile(path, true, true, false))
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 1, c.Counts["鯉"]) // file name itself added as a token
	assert.Equal(t, 1, c.ByTag["鯉.txt"]["鰻"])
}

func TestAddFileRecursesDirectories(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("鰻\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.txt"), []byte("鯉\n"), 0o644))

	c := New(kanjiFilter, nil)
	require.NoError(t, c.AddFile(dir, false, false, true))
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 1, c.Counts["鯉"])
}

func TestAddFileSkipsSubdirsWithoutRecurse(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	require.NoError(t, os.Mkdir(sub, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("鰻\n"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(sub, "b.txt"), []byte("鯉\n"), 0o644))

	c := New(kanjiFilter, nil)
	require.NoError(t, c.AddFile(dir, false, false, false))
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 0, c.Counts["鯉"])
}

func TestAddFileSkipsSymlinks(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "real.txt")
	require.NoError(t, os.WriteFile(target, []byte("鰻\n"), 0o644))
	link := filepath.Join(dir, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	c := New(kanjiFilter, nil)
	require.NoError(t, c.AddFile(link, false, false, false))
	assert.Equal(t, 0, c.Counts["鰻"])
}

func TestFuriganaJoinAcrossLineBreak(t *testing.T) {
	// An opening （ with no closing ） on the same line is held and joined
	// with the next line before the furigana regex is applied.
	re := regexp.MustCompile(`([\p{Han}])（[\x{3041}-\x{309F}ー\n]+）`)
	dir := t.TempDir()
	path := filepath.Join(dir, "sample.txt")
	content := "鰻（うな\nぎ）を食べた\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	c := New(kanjiFilter, re)
	require.NoError(t, c.AddFile(path, false, false, false))
	assert.Equal(t, 1, c.Counts["鰻"])
	assert.Equal(t, 1, c.Counts["食"])
	assert.GreaterOrEqual(t, c.Replacements, 1)
}
