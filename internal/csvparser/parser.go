// =============================================================================
// CSV/XLF Converter - CSV Parser Module
// =============================================================================
//
// This module reads translation spreadsheets exported as CSV. It returns the
// raw rows, header included, and leaves column resolution to the converter.
//
// FEATURES:
//   - UTF-8 input with or without a byte-order mark (the BOM is stripped)
//   - UTF-16 input announced by a BOM
//   - Legacy encodings selected by WHATWG label (windows-1252, shift_jis, ...)
//   - Configurable delimiter
//
// Cell values are returned verbatim: no trimming, no empty-row compaction
// beyond what encoding/csv does for blank lines.
//
// =============================================================================

package csvparser

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// =============================================================================
// PARSER FUNCTIONS
// =============================================================================

// ParseFile opens a CSV file and returns every row, header first.
func ParseFile(filePath string, settings config.CSVSettings) ([][]string, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	rows, err := Parse(file, settings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return rows, nil
}

// Parse reads CSV rows from r.
//
// PARAMETERS:
//   - r: The raw CSV bytes.
//   - settings: Delimiter and input encoding.
//
// RETURNS:
//   - All rows, header included. An empty input yields no rows.
//   - An error if the encoding is unknown or the CSV is malformed.
func Parse(r io.Reader, settings config.CSVSettings) ([][]string, error) {
	decoded, err := decodingReader(r, settings.Encoding)
	if err != nil {
		return nil, err
	}

	csvReader := csv.NewReader(bufio.NewReader(decoded))
	if err := configureReader(csvReader, settings); err != nil {
		return nil, err
	}

	rows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV: %w", err)
	}

	return rows, nil
}

// decodingReader wraps r so that it yields UTF-8.
// A byte-order mark overrides the configured encoding and is removed.
func decodingReader(r io.Reader, encodingName string) (io.Reader, error) {
	if encodingName == "" {
		encodingName = "utf-8"
	}

	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("unsupported encoding %q: %w", encodingName, err)
	}

	return transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())), nil
}

// configureReader configures the CSV reader based on the settings.
func configureReader(reader *csv.Reader, settings config.CSVSettings) error {
	comma, err := config.DelimiterRune(settings.Delimiter)
	if err != nil {
		return err
	}
	reader.Comma = comma

	// Rows may be ragged; short rows are the converter's call, not ours.
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	return nil
}
