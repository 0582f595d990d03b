// =============================================================================
// CSV/XLF Converter - Process Command
// =============================================================================
//
// This file defines the 'process' command, which converts every supported file
// of the input directory in one run.
//
// COMMAND USAGE:
//   xlfconv process [--lang <code>]
//
// FLAGS:
//   --lang : Target language for CSV/XLSX inputs. XLF inputs do not need it.
//
// PROCESSING PIPELINE:
//   1. Discover .csv, .xlsx, .xlsm, .xlf and .xliff files in input_dir
//   2. Convert each file on its own goroutine (at most max_concurrency at once):
//      a. CSV/XLSX -> XLF with --lang
//      b. XLF -> CSV
//   3. Archive converted inputs (archive_inputs)
//   4. Print a summary and write an error log for failed files
//
// =============================================================================

package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/converter"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/xlsxparser"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/pkg/utils"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

// processLang is the target language for CSV/XLSX inputs.
var processLang string

// errLanguageRequired fails CSV/XLSX inputs of a batch run without --lang.
var errLanguageRequired = errors.New("--lang is required to convert CSV/XLSX files")

// xliffExtensions are converted XLF -> CSV, everything else CSV -> XLF.
var xliffExtensions = []string{".xlf", ".xliff"}

// =============================================================================
// PROCESS COMMAND DEFINITION
// =============================================================================

var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Convert every CSV, XLSX and XLF file of the input directory",
	Long: `The process command scans input_dir for translation files and converts each
of them in the direction its extension implies:

  .csv .xlsx .xlsm  ->  .xlf  (needs --lang)
  .xlf .xliff       ->  .csv

Files are converted concurrently. A failed file does not stop the others.

On successful processing:
  - The generated file is placed in output_dir
  - The input is moved to input_archive_dir when archive_inputs is set

On error:
  - An error log is created in output_dir
  - The input remains in input_dir
  - The command exits with a non-zero status`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runProcess(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(processCmd)

	processCmd.Flags().StringVarP(
		&processLang,
		"lang",
		"l",
		"",
		"Target language code for CSV/XLSX inputs",
	)
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

// runProcess converts the input directory and prints a summary to out.
func runProcess(out io.Writer) error {
	startTime := time.Now()

	files := utils.NewFileManager(mainConfig.InputDir, mainConfig.OutputDir, mainConfig.InputArchiveDir, mainConfig.OutputNameFormat)
	files.ArchiveOnSuccess = mainConfig.ArchiveInputs

	fmt.Fprintln(out, headerStyle.Render("=== CSV/XLF Converter ==="))

	// =========================================================================
	// STEP 1: DISCOVER INPUT FILES
	// =========================================================================

	extensions := append(append([]string{".csv"}, xlsxparser.Extensions...), xliffExtensions...)
	inputFiles, err := files.DiscoverInputFiles(extensions...)
	if err != nil {
		return fmt.Errorf("failed to discover input files: %w", err)
	}

	if len(inputFiles) == 0 {
		printMuted(out, "No input files found in %s", mainConfig.InputDir)
		return nil
	}

	logger.WithFields(logrus.Fields{
		"input_dir":   mainConfig.InputDir,
		"files":       len(inputFiles),
		"concurrency": mainConfig.MaxConcurrency,
	}).Info("Processing input directory")

	// =========================================================================
	// STEP 2: PROCESS FILES CONCURRENTLY
	// =========================================================================
	// One goroutine per file; the semaphore bounds how many convert at once.

	conflicts := outputConflicts(inputFiles, mainConfig.OutputNameFormat)

	var wg sync.WaitGroup
	results := make(chan converter.Result, len(inputFiles))
	semaphore := make(chan struct{}, mainConfig.MaxConcurrency)

	for _, file := range inputFiles {
		wg.Add(1)

		go func(filePath string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if other, ok := conflicts[filePath]; ok {
				results <- converter.Result{
					FilePath:  filePath,
					Direction: directionFor(filePath),
					Error:     fmt.Errorf("output name collides with %s", filepath.Base(other)),
				}
				return
			}

			results <- convertFile(filePath)
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	// =========================================================================
	// STEP 3: COLLECT RESULTS, ARCHIVE INPUTS
	// =========================================================================

	collected := make([]converter.Result, 0, len(inputFiles))
	for result := range results {
		collected = append(collected, result)
	}
	sort.Slice(collected, func(i, j int) bool { return collected[i].FilePath < collected[j].FilePath })

	var successCount int
	var errorEntries []utils.ErrorLogEntry

	for _, result := range collected {
		name := filepath.Base(result.FilePath)

		if !result.Success {
			printFailure(out, "  ✗", fmt.Sprintf("%s: %v", name, result.Error))
			errorEntries = append(errorEntries, utils.ErrorLogEntry{
				Timestamp:    time.Now(),
				FileName:     name,
				ErrorType:    string(result.Direction),
				ErrorMessage: result.Error.Error(),
			})
			continue
		}

		successCount++
		printSuccess(out, "  ✓", fmt.Sprintf("%s -> %s", name, result.OutputFile))

		if _, err := files.ArchiveInputFile(result.FilePath); err != nil {
			logger.WithError(err).WithField("file", result.FilePath).Warn("Failed to archive input")
			errorEntries = append(errorEntries, utils.ErrorLogEntry{
				Timestamp:    time.Now(),
				FileName:     name,
				ErrorType:    "archive",
				ErrorMessage: err.Error(),
			})
		}
	}

	// =========================================================================
	// STEP 4: PRINT SUMMARY
	// =========================================================================

	fmt.Fprintln(out)
	fmt.Fprintln(out, headerStyle.Render("=== Processing Complete ==="))
	fmt.Fprintf(out, "Total files:     %d\n", len(inputFiles))
	fmt.Fprintf(out, "Successful:      %d\n", successCount)
	fmt.Fprintf(out, "Errors:          %d\n", len(collected)-successCount)
	fmt.Fprintf(out, "Time elapsed:    %s\n", time.Since(startTime).Round(time.Millisecond))

	if len(errorEntries) == 0 {
		return nil
	}

	if err := files.EnsureDirectories(); err != nil {
		return err
	}
	logPath, err := utils.WriteErrorLog(errorEntries, mainConfig.OutputDir)
	if err != nil {
		return fmt.Errorf("failed to write error log: %w", err)
	}

	printMuted(out, "Errors have been logged to %s", logPath)
	return fmt.Errorf("%d error(s) while processing %d file(s)", len(errorEntries), len(inputFiles))
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// convertFile runs the conversion implied by the file extension.
func convertFile(filePath string) converter.Result {
	conv := converter.New(filePath, mainConfig, logger)

	if directionFor(filePath) == converter.XLFToCSV {
		return conv.RunXLFToCSV()
	}

	if processLang == "" {
		return converter.Result{FilePath: filePath, Direction: converter.CSVToXLF, Error: errLanguageRequired}
	}
	return conv.RunCSVToXLF(processLang)
}

func directionFor(filePath string) converter.Direction {
	ext := strings.ToLower(filepath.Ext(filePath))
	for _, candidate := range xliffExtensions {
		if ext == candidate {
			return converter.XLFToCSV
		}
	}
	return converter.CSVToXLF
}

// outputConflicts finds inputs that would write the same output file, such
// as strings.csv and strings.xlsx. Each later input maps to the first one.
// Name formats with {uuid} never collide.
func outputConflicts(inputFiles []string, nameFormat string) map[string]string {
	conflicts := make(map[string]string)
	if strings.Contains(nameFormat, "{uuid}") {
		return conflicts
	}

	owners := make(map[string]string, len(inputFiles))
	for _, file := range inputFiles {
		key := strings.ToLower(utils.BaseName(file)) + "|" + string(directionFor(file))
		if first, taken := owners[key]; taken {
			conflicts[file] = first
			continue
		}
		owners[key] = file
	}

	return conflicts
}
