package radical

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "radicals.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadOrdersByNumber(t *testing.T) {
	path := writeFile(t, "Number\tName\tLongName\tReading\n"+
		"1\t一\t\tいち\n"+
		"2\t丨 棒\t\tぼう\n")
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, d.Len())

	r, err := d.ByNumber(2)
	require.NoError(t, err)
	assert.Equal(t, "丨", r.Name)
	assert.Equal(t, []string{"棒"}, r.AltForms)

	all := d.All()
	assert.Equal(t, 1, all[0].Number)
	assert.Equal(t, 2, all[1].Number)
}

func TestLoadRejectsOutOfOrderNumber(t *testing.T) {
	path := writeFile(t, "Number\tName\tLongName\tReading\n"+
		"1\t一\t\tいち\n"+
		"3\t丿\t\tの\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsGapBeforeFirstRow(t *testing.T) {
	path := writeFile(t, "Number\tName\tLongName\tReading\n"+
		"2\t丨\t\tぼう\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestByNameAndUnknownLookups(t *testing.T) {
	path := writeFile(t, "Number\tName\tLongName\tReading\n"+
		"1\t一\t\tいち\n")
	d, err := Load(path)
	require.NoError(t, err)

	r, err := d.ByName("一")
	require.NoError(t, err)
	assert.Equal(t, 1, r.Number)

	_, err = d.ByName("丨")
	assert.Error(t, err)
	_, err = d.ByNumber(214)
	assert.Error(t, err)
}
