// =============================================================================
// CSV/XLF Converter - csv2xlf Command
// =============================================================================
//
// COMMAND USAGE:
//   xlfconv csv2xlf --input <file.csv|file.xlsx> --lang <code>
//
// The output is written to <output_dir>/<name>.xlf.
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/converter"
	"github.com/spf13/cobra"
)

var (
	csv2xlfInput string
	csv2xlfLang  string
)

var csv2xlfCmd = &cobra.Command{
	Use:   "csv2xlf",
	Short: "Convert a CSV or XLSX translation table to XLIFF 1.2",
	Long: `csv2xlf reads a translation table and writes one XLIFF 1.2 document whose
target-language is --lang.

When the header row names id, resname, source and target (any order, any
casing), those columns are used. Otherwise the first column is the source,
the second the target, and ids are numbered from 1.

A target cell that is empty or only whitespace produces no <target> element.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCSVToXLF(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(csv2xlfCmd)

	csv2xlfCmd.Flags().StringVarP(&csv2xlfInput, "input", "i", "", "Path to the input CSV or XLSX file")
	csv2xlfCmd.Flags().StringVarP(&csv2xlfLang, "lang", "l", "", "Target language code, e.g. fr or pt-BR")

	cobra.CheckErr(csv2xlfCmd.MarkFlagRequired("input"))
	cobra.CheckErr(csv2xlfCmd.MarkFlagRequired("lang"))
}

func runCSVToXLF(out io.Writer) error {
	result := converter.New(csv2xlfInput, mainConfig, logger).RunCSVToXLF(csv2xlfLang)
	if result.Error != nil {
		return fmt.Errorf("failed to convert %s: %w", csv2xlfInput, result.Error)
	}

	printSuccess(out, "XLF file created:", result.OutputFile)
	return nil
}
