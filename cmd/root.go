// =============================================================================
// CSV/XLF Converter - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. Every subcommand is
// attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (xlfconv)
//   ├── csv2xlfCmd (xlfconv csv2xlf)
//   ├── xlf2csvCmd (xlfconv xlf2csv)
//   ├── processCmd (xlfconv process)
//   └── versionCmd (xlfconv version)
//
// CONFIGURATION:
//   Before any subcommand runs, the root command:
//   1. Loads the optional YAML configuration (--config)
//   2. Builds the logger from log_level / log_format (--verbose forces debug)
//
// =============================================================================

package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the main configuration file.
// Empty means built-in defaults.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// mainConfig and logger are set up by initialize before a subcommand runs.
var (
	mainConfig *config.MainConfig
	logger     *logrus.Logger
)

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "xlfconv",
	Short: "CSV/XLF Converter - Move translation tables between CSV and XLIFF 1.2",

	Long: `xlfconv converts translation tables between spreadsheet form (CSV or
XLSX) and XLIFF 1.2 documents, the exchange format of translation tools.

  csv2xlf  turns a CSV/XLSX table into an XLIFF file for one target language
  xlf2csv  flattens an XLIFF file into a CSV table, one column per attribute
  process  converts every supported file of the input directory

Example Usage:
  xlfconv csv2xlf --input strings.csv --lang fr
  xlfconv xlf2csv --input strings.xlf
  xlfconv process --lang de --config ./config.yaml`,

	// Errors are printed once, by Execute.
	SilenceErrors: true,
	SilenceUsage:  true,

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initialize(cmd.ErrOrStderr())
	},

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	// --config flag: optional YAML configuration file.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to the YAML configuration file (defaults apply when omitted)",
	)

	// --verbose flag: enables debug logging.
	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}

// initialize loads the configuration and builds the logger.
func initialize(logOutput io.Writer) error {
	cfg, err := config.LoadMainConfig(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load main config: %w", err)
	}

	log, err := newLogger(cfg, verbose, logOutput)
	if err != nil {
		return err
	}

	mainConfig = cfg
	logger = log

	logger.WithFields(logrus.Fields{
		"config":     cfgFile,
		"output_dir": cfg.OutputDir,
	}).Debug("Configuration loaded")

	return nil
}

// newLogger builds a logger writing to out with the configured level and
// formatter.
func newLogger(cfg *config.MainConfig, verbose bool, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	if verbose {
		level = logrus.DebugLevel
	}

	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)

	if strings.EqualFold(cfg.LogFormat, "json") {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return log, nil
}
