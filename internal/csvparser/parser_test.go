package csvparser

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultSettings() config.CSVSettings {
	return config.Default().CSV
}

func TestParseStripsUTF8BOM(t *testing.T) {
	input := "\ufeffsource,target\r\nHello,Bonjour\r\n"

	rows, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"source", "target"},
		{"Hello", "Bonjour"},
	}, rows)
}

func TestParseKeepsCellsVerbatim(t *testing.T) {
	input := "source,target\n\"  padded \",\"line\nbreak\"\nBye,\n"

	rows, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Equal(t, []string{"  padded ", "line\nbreak"}, rows[1])
	assert.Equal(t, []string{"Bye", ""}, rows[2])
}

func TestParseRaggedRows(t *testing.T) {
	input := "id,resname,source,target\n1,r1\n2,r2,Hi,Salut,extra\n"

	rows, err := Parse(strings.NewReader(input), defaultSettings())
	require.NoError(t, err)

	require.Len(t, rows, 3)
	assert.Len(t, rows[1], 2)
	assert.Len(t, rows[2], 5)
}

func TestParseUTF16WithBOM(t *testing.T) {
	// "a,b\n" in UTF-16 little endian with BOM.
	input := []byte{0xFF, 0xFE, 'a', 0, ',', 0, 'b', 0, '\n', 0}

	rows, err := Parse(bytes.NewReader(input), defaultSettings())
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"a", "b"}}, rows)
}

func TestParseLegacyEncoding(t *testing.T) {
	settings := defaultSettings()
	settings.Encoding = "windows-1252"

	// 0xE9 is "é" in windows-1252.
	input := []byte("source,target\nCaf\xe9,Caf\xe9\n")

	rows, err := Parse(bytes.NewReader(input), settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"Café", "Café"}, rows[1])
}

func TestParseDelimiter(t *testing.T) {
	settings := defaultSettings()
	settings.Delimiter = "semicolon"

	rows, err := Parse(strings.NewReader("source;target\nA;B\n"), settings)
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, rows[1])
}

func TestParseUnknownEncoding(t *testing.T) {
	settings := defaultSettings()
	settings.Encoding = "klingon-8"

	_, err := Parse(strings.NewReader("a,b\n"), settings)
	assert.Error(t, err)
}

func TestParseEmptyInput(t *testing.T) {
	rows, err := Parse(strings.NewReader(""), defaultSettings())
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strings.csv")
	require.NoError(t, os.WriteFile(path, []byte("source,target\nHello,Hallo\n"), 0644))

	rows, err := ParseFile(path, defaultSettings())
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	_, err = ParseFile(filepath.Join(t.TempDir(), "missing.csv"), defaultSettings())
	assert.ErrorIs(t, err, os.ErrNotExist)
}
