package cmd

import (
	"fmt"
	"io"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/converter"
	"github.com/spf13/cobra"
)

var xlf2csvInput string

// xlf2csvCmd flattens an XLIFF document into <output_dir>/<name>.csv.
var xlf2csvCmd = &cobra.Command{
	Use:   "xlf2csv",
	Short: "Convert an XLIFF file to a CSV translation table",
	Long: `xlf2csv writes one CSV row per trans-unit, in document order. The header
is Source, Target, then every trans-unit attribute found in the document in
sorted order. Missing targets and attributes are written as empty cells.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runXLFToCSV(cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.AddCommand(xlf2csvCmd)

	xlf2csvCmd.Flags().StringVarP(&xlf2csvInput, "input", "i", "", "Path to the input XLF file")
	cobra.CheckErr(xlf2csvCmd.MarkFlagRequired("input"))
}

func runXLFToCSV(out io.Writer) error {
	result := converter.New(xlf2csvInput, mainConfig, logger).RunXLFToCSV()
	if result.Error != nil {
		return fmt.Errorf("failed to convert %s: %w", xlf2csvInput, result.Error)
	}

	printSuccess(out, "CSV file created:", result.OutputFile)
	return nil
}
