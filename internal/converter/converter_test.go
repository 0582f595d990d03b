package converter

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/xliff"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// testConfig returns the default configuration writing into a temp dir.
func testConfig(t *testing.T) *config.MainConfig {
	t.Helper()
	cfg := config.Default()
	cfg.OutputDir = filepath.Join(t.TempDir(), "out")
	return cfg
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestRunCSVToXLF(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "greetings.csv", "English,French\nHello,Bonjour\nBye,\n")

	result := New(input, cfg, nil).RunCSVToXLF("fr")
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	assert.Equal(t, filepath.Join(cfg.OutputDir, "greetings.xlf"), result.OutputFile)
	assert.Equal(t, CSVToXLF, result.Direction)
	assert.Equal(t, 2, result.Stats.RecordsRead)
	assert.Equal(t, 1, result.Stats.TargetsWritten)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	out := string(data)

	assert.True(t, strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`))
	assert.Contains(t, out, `target-language="fr"`)
	assert.Contains(t, out, "<trans-unit id=\"1\" resname=\"resource1\">\n<source>Hello</source>\n<target>Bonjour</target>\n</trans-unit>")
	assert.Contains(t, out, "<trans-unit id=\"2\" resname=\"resource2\">\n<source>Bye</source>\n</trans-unit>")
	assert.Equal(t, 1, strings.Count(out, "<target>"))
}

func TestRunCSVToXLFNamedColumnsWithBOM(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "ui.csv", "\ufeffID,Resname,Source,Target\r\nbtn.ok,ok_button,OK,D'accord\r\n")

	result := New(input, cfg, nil).RunCSVToXLF("fr-CA")
	require.NoError(t, result.Error)

	records, err := xliff.ParseFile(result.OutputFile)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "btn.ok", records[0].ID)
	assert.Equal(t, "ok_button", records[0].Resname)
	assert.Equal(t, "OK", records[0].Source)
	assert.Equal(t, "D'accord", records[0].TargetText())
}

func TestRunCSVToXLFEmptySourceSurvives(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "blank.csv", "a,b\n,only target\n")

	result := New(input, cfg, nil).RunCSVToXLF("fr")
	require.NoError(t, result.Error)

	records, err := xliff.ParseFile(result.OutputFile)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "", records[0].Source)
	assert.Equal(t, "only target", records[0].TargetText())
}

func TestRunCSVToXLFInvalidLanguage(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "strings.csv", "a,b\nx,y\n")

	for _, lang := range []string{"", "not a language", "!!"} {
		result := New(input, cfg, nil).RunCSVToXLF(lang)
		assert.False(t, result.Success, lang)
		assert.Error(t, result.Error, lang)
	}
	assert.NoDirExists(t, cfg.OutputDir)
}

func TestRunCSVToXLFShortRowWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "broken.csv", "id,resname,source,target\n1,r1\n")

	result := New(input, cfg, nil).RunCSVToXLF("de")
	require.Error(t, result.Error)
	assert.ErrorIs(t, result.Error, ErrShortRow)
	assert.False(t, result.Success)
	assert.Empty(t, result.OutputFile)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "broken.xlf"))
}

func TestRunCSVToXLFMissingInput(t *testing.T) {
	cfg := testConfig(t)

	result := New(filepath.Join(t.TempDir(), "missing.csv"), cfg, nil).RunCSVToXLF("fr")
	assert.Error(t, result.Error)
	assert.False(t, result.Success)
}

func TestRunCSVToXLFDuplicateIDsWarn(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "dupes.csv", "id,resname,source,target\nk,a,One,Un\nk,b,Two,Deux\n")

	logger, hook := test.NewNullLogger()

	result := New(input, cfg, logger).RunCSVToXLF("fr")
	require.NoError(t, result.Error)
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.Stats.ValidationWarnings)

	var warnings []string
	for _, entry := range hook.AllEntries() {
		if entry.Level == logrus.WarnLevel {
			warnings = append(warnings, entry.Message)
		}
	}
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "duplicate id")
}

func TestRunCSVToXLFStrictFailsOnDuplicates(t *testing.T) {
	cfg := testConfig(t)
	cfg.Strict = true
	input := writeInput(t, "dupes.csv", "id,resname,source,target\nk,a,One,Un\nk,b,Two,Deux\n")

	result := New(input, cfg, nil).RunCSVToXLF("fr")
	assert.Error(t, result.Error)
	assert.False(t, result.Success)
	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "dupes.xlf"))
}

func TestRunCSVToXLFOutputNameFormat(t *testing.T) {
	cfg := testConfig(t)
	cfg.OutputNameFormat = "{name}_{lang}"
	input := writeInput(t, "menu.csv", "a,b\nFile,Datei\n")

	result := New(input, cfg, nil).RunCSVToXLF("de")
	require.NoError(t, result.Error)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "menu_de.xlf"), result.OutputFile)
}

func TestRunCSVToXLFFromWorkbook(t *testing.T) {
	cfg := testConfig(t)
	input := filepath.Join(t.TempDir(), "book.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"Source", "Target"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{"Yes", "Oui"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"No"}))
	require.NoError(t, f.SaveAs(input))
	require.NoError(t, f.Close())

	result := New(input, cfg, nil).RunCSVToXLF("fr")
	require.NoError(t, result.Error)
	assert.Equal(t, filepath.Join(cfg.OutputDir, "book.xlf"), result.OutputFile)

	records, err := xliff.ParseFile(result.OutputFile)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Yes", records[0].Source)
	assert.Equal(t, "Oui", records[0].TargetText())
	assert.Equal(t, "No", records[1].Source)
	assert.False(t, records[1].HasTarget())
}

func TestRunXLFToCSV(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "strings.xlf", `<?xml version="1.0" encoding="UTF-8"?>
<xliff version="1.2" xmlns="urn:oasis:names:tc:xliff:document:1.2">
  <file original="source" datatype="plaintext" source-language="en" target-language="fr">
    <body>
      <trans-unit approved="yes"><source>Hello</source><target>Bonjour</target></trans-unit>
      <trans-unit><source>Bye</source></trans-unit>
    </body>
  </file>
</xliff>`)

	result := New(input, cfg, nil).RunXLFToCSV()
	require.NoError(t, result.Error)
	require.True(t, result.Success)

	assert.Equal(t, filepath.Join(cfg.OutputDir, "strings.csv"), result.OutputFile)
	assert.Equal(t, XLFToCSV, result.Direction)
	assert.Equal(t, 2, result.Stats.RecordsRead)
	assert.Equal(t, 3, result.Stats.Columns)

	data, err := os.ReadFile(result.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "\xef\xbb\xbfSource,Target,approved\r\nHello,Bonjour,yes\r\nBye,,\r\n", string(data))
}

func TestRunXLFToCSVMissingSourceWritesNothing(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "broken.xlf", `<xliff version="1.2"><file><body>
<trans-unit id="a"><source>ok</source></trans-unit>
<trans-unit id="b"><target>orphan</target></trans-unit>
</body></file></xliff>`)

	result := New(input, cfg, nil).RunXLFToCSV()
	require.Error(t, result.Error)
	assert.ErrorIs(t, result.Error, xliff.ErrMissingSource)

	var unitErr *xliff.UnitError
	require.ErrorAs(t, result.Error, &unitErr)
	assert.Equal(t, 2, unitErr.Index)
	assert.Equal(t, "b", unitErr.ID)

	assert.NoFileExists(t, filepath.Join(cfg.OutputDir, "broken.csv"))
}

func TestRoundTripCSVToXLFToCSV(t *testing.T) {
	cfg := testConfig(t)
	input := writeInput(t, "round.csv", "English,French\nHello,Bonjour\nBye,\n")

	first := New(input, cfg, nil).RunCSVToXLF("fr")
	require.NoError(t, first.Error)

	second := New(first.OutputFile, cfg, nil).RunXLFToCSV()
	require.NoError(t, second.Error)

	data, err := os.ReadFile(second.OutputFile)
	require.NoError(t, err)
	assert.Equal(t, "\xef\xbb\xbfSource,Target,id,resname\r\n"+
		"Hello,Bonjour,1,resource1\r\n"+
		"Bye,,2,resource2\r\n", string(data))
}
