// =============================================================================
// CSV/XLF Converter - Converter Module
// =============================================================================
//
// This module runs one conversion for one input file, from reading to
// writing. Two pipelines exist and never share state:
//
// CSV -> XLF:
//   1. Validate the target language code
//   2. Read rows (CSV, or XLSX for .xlsx/.xlsm inputs)
//   3. Map rows to records (RowsToRecords)
//   4. Check record uniqueness (warnings)
//   5. Generate the XLIFF document and write it
//
// XLF -> CSV:
//   1. Read every trans-unit (xliff.Parse)
//   2. Collect the attribute columns, then build rows (RecordsToRows)
//   3. Write the CSV
//
// A malformed row or unit fails the run before anything is written.
//
// =============================================================================

package converter

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/csvparser"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/csvwriter"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/validation"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/xliff"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/xlsxparser"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/xmlwriter"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/pkg/utils"
	"github.com/sirupsen/logrus"
)

// =============================================================================
// RESULT STRUCTURE
// =============================================================================

// Direction names a conversion pipeline.
type Direction string

const (
	CSVToXLF Direction = "csv2xlf"
	XLFToCSV Direction = "xlf2csv"
)

// Result represents the outcome of converting a single file.
type Result struct {
	// FilePath is the input file.
	FilePath string

	// OutputFile is the generated file, empty on failure.
	OutputFile string

	Direction Direction
	Success   bool

	// Error is the failure cause, nil on success.
	Error error

	Stats ProcessingStats
}

// ProcessingStats contains statistics about a conversion.
type ProcessingStats struct {
	// RecordsRead is the number of translation records read from the input.
	RecordsRead int

	// TargetsWritten is the number of records that carried a target.
	TargetsWritten int

	// Columns is the number of output columns (XLF -> CSV only).
	Columns int

	// ValidationWarnings is the number of warnings raised by validation.
	ValidationWarnings int

	ProcessingTime time.Duration
}

// =============================================================================
// CONVERTER STRUCTURE
// =============================================================================

// Converter converts one input file.
type Converter struct {
	inputPath string
	config    *config.MainConfig
	files     *utils.FileManager
	logger    logrus.FieldLogger
}

// New creates a Converter for inputPath.
// A nil logger discards log output.
func New(inputPath string, cfg *config.MainConfig, logger logrus.FieldLogger) *Converter {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		discard := logrus.New()
		discard.Out = io.Discard
		logger = discard
	}

	files := utils.NewFileManager(cfg.InputDir, cfg.OutputDir, cfg.InputArchiveDir, cfg.OutputNameFormat)

	return &Converter{
		inputPath: inputPath,
		config:    cfg,
		files:     files,
		logger:    logger.WithField("file", inputPath),
	}
}

// =============================================================================
// CSV -> XLF
// =============================================================================

// RunCSVToXLF converts the input spreadsheet into an XLIFF file whose
// target-language is targetLanguage.
func (c *Converter) RunCSVToXLF(targetLanguage string) Result {
	startTime := time.Now()
	result := Result{FilePath: c.inputPath, Direction: CSVToXLF}
	log := c.logger.WithField("direction", CSVToXLF)

	if err := validation.ValidateLanguage(targetLanguage); err != nil {
		result.Error = err
		return result
	}

	rows, err := c.readRows()
	if err != nil {
		result.Error = fmt.Errorf("failed to read input: %w", err)
		return result
	}

	records, columns, err := RowsToRecords(rows)
	if err != nil {
		result.Error = fmt.Errorf("failed to map rows: %w", err)
		return result
	}

	log.WithFields(logrus.Fields{
		"records": len(records),
		"columns": columns.Mode.String(),
	}).Debug("Mapped rows to records")

	result.Stats.RecordsRead = len(records)
	result.Stats.TargetsWritten = countTargets(records)

	warnings, err := c.validate(records, log)
	result.Stats.ValidationWarnings = warnings
	if err != nil {
		result.Error = err
		return result
	}

	outputPath, err := c.prepareOutput(".xlf", map[string]string{"lang": targetLanguage})
	if err != nil {
		result.Error = err
		return result
	}

	options := xmlwriter.OptionsFromConfig(c.config.XLIFF, targetLanguage)
	if err := xmlwriter.WriteFile(outputPath, records, options); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath
	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	log.WithFields(logrus.Fields{
		"output":  outputPath,
		"records": len(records),
	}).Info("Wrote XLF file")

	return result
}

// readRows reads the input as a workbook or as CSV, by extension.
func (c *Converter) readRows() ([][]string, error) {
	if xlsxparser.IsWorkbook(c.inputPath) {
		return xlsxparser.ReadRows(c.inputPath, c.config.XLSX.Sheet)
	}
	return csvparser.ParseFile(c.inputPath, c.config.CSV)
}

// validate logs record warnings and fails only in strict mode.
func (c *Converter) validate(records []types.TranslationRecord, log logrus.FieldLogger) (int, error) {
	validator := validation.NewValidatorWithOptions(validation.ValidationOptions{
		TreatWarningsAsErrors: c.config.Strict,
	})

	report := validator.ValidateRecords(records)
	for _, finding := range report.Errors {
		log.Warn(finding.Error())
	}

	if !report.IsValid {
		return report.WarningCount, fmt.Errorf("strict validation failed: %s", strings.TrimSpace(validation.FormatErrors(report.Errors)))
	}

	return report.WarningCount, nil
}

// =============================================================================
// XLF -> CSV
// =============================================================================

// RunXLFToCSV flattens the input XLIFF file into a CSV table.
func (c *Converter) RunXLFToCSV() Result {
	startTime := time.Now()
	result := Result{FilePath: c.inputPath, Direction: XLFToCSV}
	log := c.logger.WithField("direction", XLFToCSV)

	records, err := xliff.ParseFile(c.inputPath)
	if err != nil {
		result.Error = fmt.Errorf("failed to read input: %w", err)
		return result
	}

	rows := RecordsToRows(records)

	result.Stats.RecordsRead = len(records)
	result.Stats.TargetsWritten = countTargets(records)
	result.Stats.Columns = len(rows[0])

	log.WithFields(logrus.Fields{
		"records": len(records),
		"columns": len(rows[0]),
	}).Debug("Flattened trans-units")

	outputPath, err := c.prepareOutput(".csv", map[string]string{"lang": ""})
	if err != nil {
		result.Error = err
		return result
	}

	if err := csvwriter.WriteFile(outputPath, rows, c.config.CSV); err != nil {
		result.Error = fmt.Errorf("failed to write output: %w", err)
		return result
	}

	result.OutputFile = outputPath
	result.Success = true
	result.Stats.ProcessingTime = time.Since(startTime)

	log.WithFields(logrus.Fields{
		"output":  outputPath,
		"records": len(records),
	}).Info("Wrote CSV file")

	return result
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// prepareOutput makes sure the output directory exists and returns the path
// for the generated file.
func (c *Converter) prepareOutput(ext string, params map[string]string) (string, error) {
	if err := c.files.EnsureDirectories(); err != nil {
		return "", err
	}
	return c.files.OutputPath(c.inputPath, ext, params), nil
}

func countTargets(records []types.TranslationRecord) int {
	n := 0
	for _, rec := range records {
		if rec.HasTarget() {
			n++
		}
	}
	return n
}
