package converter

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
)

// ErrShortRow is wrapped by RowError when a data row lacks a required cell.
var ErrShortRow = errors.New("row is missing a required column")

// RowError reports a malformed data row.
type RowError struct {
	// Row is the 1-based data row number (the header is not counted).
	Row    int
	Column string
	Need   int
	Got    int
	Err    error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("data row %d: %v: %q needs %d cells, got %d", e.Row, e.Err, e.Column, e.Need, e.Got)
}

func (e *RowError) Unwrap() error { return e.Err }

// =============================================================================
// COLUMN RESOLUTION
// =============================================================================

// ColumnMode tells how data rows are interpreted.
type ColumnMode int

const (
	// PositionalColumns reads source from column 0 and target from column 1,
	// and numbers the rows.
	PositionalColumns ColumnMode = iota
	// NamedColumns reads id, resname, source and target from header columns.
	NamedColumns
)

func (m ColumnMode) String() string {
	if m == NamedColumns {
		return "named"
	}
	return "positional"
}

// Columns holds the resolved column indexes. ID and Resname are -1 in
// positional mode.
type Columns struct {
	Mode    ColumnMode
	ID      int
	Resname int
	Source  int
	Target  int
}

// ResolveColumns maps header names to column indexes.
// Matching ignores case and surrounding spaces; the first matching column
// wins. Named mode needs all four of id, resname, source and target; any
// other header falls back to positional mode.
func ResolveColumns(header []string) Columns {
	index := map[string]int{"id": -1, "resname": -1, "source": -1, "target": -1}

	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if pos, known := index[key]; known && pos < 0 {
			index[key] = i
		}
	}

	for _, pos := range index {
		if pos < 0 {
			return Columns{Mode: PositionalColumns, ID: -1, Resname: -1, Source: 0, Target: 1}
		}
	}

	return Columns{
		Mode:    NamedColumns,
		ID:      index["id"],
		Resname: index["resname"],
		Source:  index["source"],
		Target:  index["target"],
	}
}

// =============================================================================
// ROW MAPPING
// =============================================================================

// RowsToRecords converts CSV rows, header first, into translation records.
// It returns the records in row order together with the resolved columns.
//
// A target cell that is empty or only whitespace yields a record without a
// target; any other target cell is kept verbatim.
func RowsToRecords(rows [][]string) ([]types.TranslationRecord, Columns, error) {
	if len(rows) == 0 {
		return nil, ResolveColumns(nil), nil
	}

	columns := ResolveColumns(rows[0])
	records := make([]types.TranslationRecord, 0, len(rows)-1)

	for i, row := range rows[1:] {
		record, err := columns.record(row, i+1)
		if err != nil {
			return nil, columns, err
		}
		records = append(records, record)
	}

	return records, columns, nil
}

// record maps one data row. index is the 1-based data row number.
func (c Columns) record(row []string, index int) (types.TranslationRecord, error) {
	record := types.TranslationRecord{HasID: true, HasResname: true}

	if c.Mode == NamedColumns {
		id, err := cell(row, c.ID, "id", index)
		if err != nil {
			return record, err
		}
		resname, err := cell(row, c.Resname, "resname", index)
		if err != nil {
			return record, err
		}
		record.ID = id
		record.Resname = resname
	} else {
		record.ID = strconv.Itoa(index)
		record.Resname = "resource" + record.ID
	}

	source, err := cell(row, c.Source, "source", index)
	if err != nil {
		return record, err
	}
	record.Source = source

	if c.Target < len(row) && strings.TrimSpace(row[c.Target]) != "" {
		record.Target = types.NewTarget(row[c.Target])
	}

	return record, nil
}

// cell returns row[col] or a RowError when the row is too short.
func cell(row []string, col int, name string, index int) (string, error) {
	if col >= len(row) {
		return "", &RowError{Row: index, Column: name, Need: col + 1, Got: len(row), Err: ErrShortRow}
	}
	return row[col], nil
}
