package kfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestColumnInterning(t *testing.T) {
	a := NewColumn("Name")
	b := NewColumn("Name")
	assert.Same(t, a, b)
	c := NewColumn("Radical")
	assert.NotSame(t, a, c)
}

func TestOpenMissingRequiredColumn(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.txt", "Name\tStrokes\nあ\t3\n")
	_, err := Open(path, []*Column{NewColumn("Name"), NewColumn("Radical")}, "\t")
	require.Error(t, err)
}

func TestOpenIgnoresExtraHeaderColumns(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.txt", "Name\tStrokes\tExtra\nあ\t3\tfoo\n")
	cf, err := Open(path, []*Column{NewColumn("Name")}, "\t")
	require.NoError(t, err)
	defer cf.Close()
	ok, err := cf.NextRow()
	require.NoError(t, err)
	assert.True(t, ok)
	v, err := cf.Get(NewColumn("Name"))
	require.NoError(t, err)
	assert.Equal(t, "あ", v)
}

func TestTypedAccessors(t *testing.T) {
	dir := t.TempDir()
	colName := NewColumn("col-test-name")
	colStrokes := NewColumn("col-test-strokes")
	colJouyou := NewColumn("col-test-jouyou")
	colCode := NewColumn("col-test-code")
	colOpt := NewColumn("col-test-opt")

	content := "col-test-name\tcol-test-strokes\tcol-test-jouyou\tcol-test-code\tcol-test-opt\n" +
		"鰻\t22\tY\t9C3B\t5\n" +
		"鮎\t16\tN\t9B8E\t\n"
	path := writeFile(t, dir, "t.txt", content)

	cf, err := Open(path, []*Column{colName, colStrokes, colJouyou, colCode, colOpt}, "\t")
	require.NoError(t, err)
	defer cf.Close()

	ok, err := cf.NextRow()
	require.NoError(t, err)
	require.True(t, ok)

	name, err := cf.Get(colName)
	require.NoError(t, err)
	assert.Equal(t, "鰻", name)

	strokes, err := cf.GetU8(colStrokes)
	require.NoError(t, err)
	assert.Equal(t, uint8(22), strokes)

	jouyou, err := cf.GetBool(colJouyou)
	require.NoError(t, err)
	assert.True(t, jouyou)

	code, err := cf.GetChar32(colCode)
	require.NoError(t, err)
	assert.Equal(t, "鰻", string(rune(code)))

	opt, err := cf.GetOptSize(colOpt)
	require.NoError(t, err)
	if assert.NotNil(t, opt) {
		assert.Equal(t, 5, *opt)
	}

	ok, err = cf.NextRow()
	require.NoError(t, err)
	require.True(t, ok)

	jouyou, err = cf.GetBool(colJouyou)
	require.NoError(t, err)
	assert.False(t, jouyou)

	opt, err = cf.GetOptSize(colOpt)
	require.NoError(t, err)
	assert.Nil(t, opt)

	ok, err = cf.NextRow()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNextRowRejectsTooManyFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.txt", "Name\tStrokes\nあ\t3\textra\n")
	cf, err := Open(path, []*Column{NewColumn("Name"), NewColumn("Strokes")}, "\t")
	require.NoError(t, err)
	defer cf.Close()
	_, err = cf.NextRow()
	assert.Error(t, err)
}

func TestNextRowRejectsTooFewFields(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "t.txt", "Name\tStrokes\nあ\n")
	cf, err := Open(path, []*Column{NewColumn("Name"), NewColumn("Strokes")}, "\t")
	require.NoError(t, err)
	defer cf.Close()
	_, err = cf.NextRow()
	assert.Error(t, err)
}

func TestGetBoolRejectsUnknownToken(t *testing.T) {
	dir := t.TempDir()
	col := NewColumn("col-test-bad-bool")
	path := writeFile(t, dir, "t.txt", "col-test-bad-bool\nmaybe\n")
	cf, err := Open(path, []*Column{col}, "\t")
	require.NoError(t, err)
	defer cf.Close()
	ok, err := cf.NextRow()
	require.NoError(t, err)
	require.True(t, ok)
	_, err = cf.GetBool(col)
	assert.Error(t, err)
}
