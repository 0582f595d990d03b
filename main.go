// =============================================================================
// CSV/XLF Converter - Main Entry Point
// =============================================================================
//
// USAGE:
//   xlfconv csv2xlf --input <file> --lang <code>  - CSV/XLSX table to XLIFF 1.2
//   xlfconv xlf2csv --input <file>                - XLIFF to CSV table
//   xlfconv process [--lang <code>]               - Convert the input directory
//   xlfconv version                               - Display the application version
//
// ARCHITECTURE:
//   - cmd/           : CLI command definitions (Cobra)
//   - internal/      : Readers, writers, mappers and validation
//   - pkg/           : Shared file handling utilities
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/CSV-to-XLF-conversion/cmd"
)

func main() {
	cmd.Execute()
}
