package ksegment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllPlainAscii(t *testing.T) {
	s := New("abc", false)
	assert.Equal(t, []string{"a", "b", "c"}, s.All())
}

func TestAllSkipsAsciiWhenOnlyMB(t *testing.T) {
	s := New("a鰻b", true)
	assert.Equal(t, []string{"鰻"}, s.All())
}

func TestVariationSelectorAbsorbed(t *testing.T) {
	s := New("辶︀", false)
	out := s.All()
	assert.Equal(t, []string{"辶︀"}, out)
	assert.Equal(t, 1, s.Variants)
}

func TestDakutenFolding(t *testing.T) {
	s := New("が", false)
	out := s.All()
	assert.Equal(t, []string{"が"}, out)
	assert.Equal(t, 1, s.CombiningMarks)
}

func TestHandakutenFolding(t *testing.T) {
	s := New("ぱ", false)
	out := s.All()
	assert.Equal(t, []string{"ぱ"}, out)
	assert.Equal(t, 1, s.CombiningMarks)
}

func TestUnmappedCombiningMarkPassesThroughBase(t *testing.T) {
	// 'あ' has no dakuten form, so the base kana is kept unfolded.
	s := New("あ゙", false)
	out := s.All()
	assert.Equal(t, []string{"あ"}, out)
	assert.Equal(t, 1, s.CombiningMarks)
}
