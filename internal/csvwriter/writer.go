// =============================================================================
// CSV/XLF Converter - CSV Writer Module
// =============================================================================
//
// This module writes tabular output for spreadsheet tools. Files start with a
// UTF-8 byte-order mark so that Excel opens them as UTF-8, and rows end with
// "\r\n" unless configured otherwise.
//
// =============================================================================

package csvwriter

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
)

// utf8BOM is the UTF-8 encoding of U+FEFF.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Write writes the BOM followed by rows to w.
func Write(w io.Writer, rows [][]string, settings config.CSVSettings) error {
	comma, err := config.DelimiterRune(settings.Delimiter)
	if err != nil {
		return err
	}

	if _, err := w.Write(utf8BOM); err != nil {
		return fmt.Errorf("failed to write byte-order mark: %w", err)
	}

	writer := csv.NewWriter(w)
	writer.Comma = comma
	writer.UseCRLF = settings.WriteCRLF()

	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV: %w", err)
	}

	return nil
}

// WriteFile creates (or truncates) filePath and writes rows into it.
func WriteFile(filePath string, rows [][]string, settings config.CSVSettings) error {
	file, err := os.Create(filePath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	buffered := bufio.NewWriter(file)
	if err := Write(buffered, rows, settings); err != nil {
		file.Close()
		return err
	}

	if err := buffered.Flush(); err != nil {
		file.Close()
		return fmt.Errorf("failed to flush file: %w", err)
	}

	return file.Close()
}
