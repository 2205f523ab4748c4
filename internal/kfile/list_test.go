package kfile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadListOnePerLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.txt", "鰻\n鮎\n\n鯉\n")
	ctx := NewLoaderContext()
	l, err := LoadList(path, OnePerLine, ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "鰻", l.Get(1))
	assert.Equal(t, 2, l.IndexOf("鮎"))
	assert.True(t, l.Exists("鯉"))
	assert.False(t, l.Exists("鯛"))
}

func TestLoadListMultiplePerLine(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.txt", "鰻 鮎 鯉\n")
	ctx := NewLoaderContext()
	l, err := LoadList(path, MultiplePerLine, ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 3, l.Len())
}

func TestLoadListRejectsMultiCharToken(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.txt", "鰻鰻\n")
	ctx := NewLoaderContext()
	_, err := LoadList(path, OnePerLine, ctx, "")
	assert.Error(t, err)
}

func TestLoadListRejectsDuplicateWithinFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "list.txt", "鰻\n鰻\n")
	ctx := NewLoaderContext()
	_, err := LoadList(path, OnePerLine, ctx, "")
	assert.Error(t, err)
}

func TestLoadListRejectsDuplicateAcrossTypedFiles(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.txt", "鰻\n")
	b := writeFile(t, dir, "b.txt", "鰻\n")
	ctx := NewLoaderContext()
	_, err := LoadList(a, OnePerLine, ctx, "n5")
	require.NoError(t, err)
	_, err = LoadList(b, OnePerLine, ctx, "n5")
	assert.Error(t, err)
}

func TestLoadListMaxEntriesBoundary(t *testing.T) {
	dir := t.TempDir()

	var ok strings.Builder
	for i := 0; i < MaxListEntries; i++ {
		ok.WriteString(syntheticToken(i))
		ok.WriteByte('\n')
	}
	okPath := filepath.Join(dir, "ok.txt")
	require.NoError(t, os.WriteFile(okPath, []byte(ok.String()), 0o644))
	ctx := NewLoaderContext()
	l, err := LoadList(okPath, OnePerLine, ctx, "")
	require.NoError(t, err)
	assert.Equal(t, MaxListEntries, l.Len())

	var tooMany strings.Builder
	for i := 0; i < MaxListEntries+1; i++ {
		tooMany.WriteString(syntheticToken(i))
		tooMany.WriteByte('\n')
	}
	badPath := filepath.Join(dir, "bad.txt")
	require.NoError(t, os.WriteFile(badPath, []byte(tooMany.String()), 0o644))
	ctx2 := NewLoaderContext()
	_, err = LoadList(badPath, OnePerLine, ctx2, "")
	assert.Error(t, err)
}

// syntheticToken maps i to a distinct single-multi-byte-character token:
// consecutive code points from U+4E00 (the CJK Unified Ideographs block
// and beyond), skipping the surrogate range, so MaxListEntries-sized
// fixtures stay well within the loader's single-character rule.
func syntheticToken(i int) string {
	r := rune(0x4E00 + i)
	if r >= 0xD800 {
		r += 0x800
	}
	return string(r)
}
