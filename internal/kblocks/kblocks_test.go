package kblocks

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/anzumura/kanji-tools-sub002/internal/ktutf8"
)

func TestIsKanji(t *testing.T) {
	assert.True(t, IsKanji("鰻", true))
	assert.True(t, IsRareKanji("𠮟", true))
	assert.False(t, IsKanji("あ", true))
	assert.False(t, IsKanji("a", true))
}

func TestIsKanjiMultiCharNotSizeOne(t *testing.T) {
	assert.True(t, IsKanji("鰻鰻", false))
	assert.False(t, IsKanji("鰻鰻", true))
}

func TestIsHiraganaKatakana(t *testing.T) {
	assert.True(t, IsHiragana("あ", true))
	assert.True(t, IsKatakana("ア", true))
	assert.False(t, IsHiragana("ア", true))
}

func TestFindBlock(t *testing.T) {
	b := Find(ktutf8.CodePoint('鰻'), CommonKanji)
	if assert.NotNil(t, b) {
		assert.Equal(t, "CJK Unified Ideographs", b.Name)
	}
	assert.Nil(t, Find(ktutf8.CodePoint('a'), CommonKanji))
}

func TestIsVariationSelector(t *testing.T) {
	assert.True(t, IsVariationSelector(0xFE00))
	assert.True(t, IsVariationSelector(0xE0100))
	assert.False(t, IsVariationSelector('a'))
}

func TestDisplaySize(t *testing.T) {
	assert.Equal(t, 1, DisplaySize("a"))
	assert.Equal(t, 2, DisplaySize("鰻"))
	assert.Equal(t, 4, DisplaySize("鰻鰻"))
	assert.Equal(t, 0, DisplaySize("︀"))
}
