package converter

import (
	"sort"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
)

// Fixed leading columns of every XLF -> CSV table.
const (
	SourceColumn = "Source"
	TargetColumn = "Target"
)

// AttributeColumns is the first pass of the XLF -> CSV mapping: the sorted
// union of the attribute names carried by any record.
func AttributeColumns(records []types.TranslationRecord) []string {
	seen := make(map[string]struct{})
	for _, rec := range records {
		for _, name := range rec.AttributeNames() {
			seen[name] = struct{}{}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

// RecordsToRows is the second pass: a header row (Source, Target, attribute
// columns) followed by one row per record, in record order.
// An absent target and a missing attribute both become "".
func RecordsToRows(records []types.TranslationRecord) [][]string {
	attributes := AttributeColumns(records)

	header := make([]string, 0, len(attributes)+2)
	header = append(header, SourceColumn, TargetColumn)
	header = append(header, attributes...)

	rows := make([][]string, 0, len(records)+1)
	rows = append(rows, header)

	for _, rec := range records {
		row := make([]string, 0, len(header))
		row = append(row, rec.Source, rec.TargetText())
		for _, name := range attributes {
			value, _ := rec.Attribute(name)
			row = append(row, value)
		}
		rows = append(rows, row)
	}

	return rows
}
