package ktutf8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeEncodeRoundTrip(t *testing.T) {
	cases := []string{"a", "鰻", "𠮟る", "ー", "こんにちは"}
	for _, s := range cases {
		cps := Decode([]byte(s))
		assert.Equal(t, s, string(Encode(cps)), "round trip for %q", s)
	}
}

func TestDecodeInvalidSequence(t *testing.T) {
	b := []byte{0xFF, 'a'}
	cps := Decode(b)
	assert.Equal(t, []CodePoint{ReplacementChar, CodePoint('a')}, cps)
}

func TestDecodeOverlong(t *testing.T) {
	// C0 80 is an overlong encoding of NUL.
	cps := Decode([]byte{0xC0, 0x80})
	assert.Equal(t, []CodePoint{ReplacementChar, ReplacementChar}, cps)
}

func TestDecodeTruncatedSequence(t *testing.T) {
	cps := Decode([]byte{0xE9})
	assert.Equal(t, []CodePoint{ReplacementChar}, cps)
}

func TestFirstCodePoint(t *testing.T) {
	cp, ok := FirstCodePoint([]byte("鰻"))
	assert.True(t, ok)
	assert.Equal(t, CodePoint('鰻'), cp)

	_, ok = FirstCodePoint(nil)
	assert.False(t, ok)
}

func TestValidateMBUtf8(t *testing.T) {
	v, errKind := ValidateMBUtf8([]byte("abc"), false)
	assert.Equal(t, NotMultiByte, v)
	assert.Equal(t, NoError, errKind)

	v, _ = ValidateMBUtf8([]byte("鰻"), true)
	assert.Equal(t, Valid, v)

	v, errKind = ValidateMBUtf8([]byte("鰻鰻"), true)
	assert.Equal(t, NotValid, v)
	assert.Equal(t, StringTooLong, errKind)

	v, errKind = ValidateMBUtf8([]byte{0x80}, false)
	assert.Equal(t, NotValid, v)
	assert.Equal(t, ContinuationByte, errKind)
}
