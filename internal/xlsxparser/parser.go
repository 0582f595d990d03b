// =============================================================================
// CSV/XLF Converter - XLSX Parser Module
// =============================================================================
//
// Translation tables often live in Excel workbooks rather than CSV exports.
// This module reads one worksheet into the same [][]string shape the CSV
// parser produces, so the CSV -> XLF mapper handles both inputs alike.
//
// LAYOUT EXPECTED:
//   Row 1      : header (id, resname, source, target in any order and casing,
//                or any two columns for positional mode)
//   Rows 2..n  : one translation per row
//
// =============================================================================

package xlsxparser

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Extensions lists the file extensions handled by this package.
var Extensions = []string{".xlsx", ".xlsm"}

// IsWorkbook reports whether filePath looks like an Excel workbook.
func IsWorkbook(filePath string) bool {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, candidate := range Extensions {
		if ext == candidate {
			return true
		}
	}
	return false
}

// ReadRows returns the rows of a worksheet, header first.
//
// PARAMETERS:
//   - filePath: The path to the workbook.
//   - sheetName: The worksheet to read. Empty selects the first sheet.
//
// RETURNS:
//   - The non-empty rows of the sheet, cell values as displayed by Excel.
//   - An error if the workbook or the sheet cannot be read.
func ReadRows(filePath, sheetName string) ([][]string, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	if sheetName == "" {
		sheetName = f.GetSheetName(0)
		if sheetName == "" {
			return nil, fmt.Errorf("workbook %s has no sheets", filePath)
		}
	} else if index, err := f.GetSheetIndex(sheetName); err != nil || index < 0 {
		return nil, fmt.Errorf("sheet %q not found in %s", sheetName, filePath)
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to read rows: %w", err)
	}

	// GetRows keeps blank rows between data rows; encoding/csv would not.
	result := make([][]string, 0, len(rows))
	for _, row := range rows {
		if len(row) == 0 || isRowEmpty(row) {
			continue
		}
		result = append(result, row)
	}

	return result, nil
}

// isRowEmpty checks if a row contains only empty values.
func isRowEmpty(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
