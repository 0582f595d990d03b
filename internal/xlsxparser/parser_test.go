package xlsxparser

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a workbook whose first sheet holds rows.
func writeWorkbook(t *testing.T, rows [][]interface{}, extraSheet string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		r := row
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}

	if extraSheet != "" {
		_, err := f.NewSheet(extraSheet)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(extraSheet, "A1", &[]interface{}{"source", "target"}))
		require.NoError(t, f.SetSheetRow(extraSheet, "A2", &[]interface{}{"Yes", "Oui"}))
	}

	path := filepath.Join(t.TempDir(), "strings.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadRowsFirstSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"ID", "Resname", "Source", "Target"},
		{"1", "greeting", "Hello", "Bonjour"},
		{},
		{"2", "farewell", "Bye"},
	}, "")

	rows, err := ReadRows(path, "")
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"ID", "Resname", "Source", "Target"},
		{"1", "greeting", "Hello", "Bonjour"},
		{"2", "farewell", "Bye"},
	}, rows)
}

func TestReadRowsNamedSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{{"ignored"}}, "Strings")

	rows, err := ReadRows(path, "Strings")
	require.NoError(t, err)
	assert.Equal(t, [][]string{{"source", "target"}, {"Yes", "Oui"}}, rows)
}

func TestReadRowsUnknownSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{{"source"}}, "")

	_, err := ReadRows(path, "Nope")
	assert.Error(t, err)
}

func TestReadRowsMissingFile(t *testing.T) {
	_, err := ReadRows(filepath.Join(t.TempDir(), "missing.xlsx"), "")
	assert.Error(t, err)
}

func TestIsWorkbook(t *testing.T) {
	assert.True(t, IsWorkbook("in/strings.xlsx"))
	assert.True(t, IsWorkbook("in/STRINGS.XLSM"))
	assert.False(t, IsWorkbook("in/strings.csv"))
}
