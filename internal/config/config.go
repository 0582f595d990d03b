// =============================================================================
// CSV/XLF Converter - Configuration Module
// =============================================================================
//
// This module loads the optional YAML configuration file. Every setting has a
// default, so the converter runs without any configuration at all; a config
// file only overrides what it names.
//
// EXAMPLE (config.yaml):
//   output_dir: ./out
//   output_name_format: "{name}_{lang}"
//   log_level: debug
//   csv:
//     encoding: windows-1252
//   xliff:
//     source_language: en-US
//
// =============================================================================

package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// MAIN CONFIGURATION STRUCTURE
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// =========================================================================
	// DIRECTORY SETTINGS
	// =========================================================================

	// InputDir is scanned by the 'process' command.
	// Default: "./input"
	InputDir string `yaml:"input_dir"`

	// OutputDir receives every generated file.
	// Default: "out"
	OutputDir string `yaml:"output_dir"`

	// InputArchiveDir is where batch inputs are moved after a successful
	// conversion when ArchiveInputs is set.
	// Default: "./input_archive"
	InputArchiveDir string `yaml:"input_archive_dir"`

	// ArchiveInputs moves converted inputs out of InputDir.
	// Default: false
	ArchiveInputs bool `yaml:"archive_inputs"`

	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputNameFormat defines the output file name, without extension.
	// Placeholders:
	//   {name}      - Input file base name without extension
	//   {lang}      - Target language (csv2xlf only, empty otherwise)
	//   {uuid}      - A random UUID
	//   {timestamp} - Current timestamp (YYYYMMDD_HHMMSS)
	//   {date}      - Current date (YYYYMMDD)
	// Default: "{name}"
	OutputNameFormat string `yaml:"output_name_format"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel controls the verbosity of logging.
	// Valid values: "debug", "info", "warn", "error"
	// Default: "info"
	LogLevel string `yaml:"log_level"`

	// LogFormat selects the log formatter: "text" or "json".
	// Default: "text"
	LogFormat string `yaml:"log_format"`

	// =========================================================================
	// PROCESSING SETTINGS
	// =========================================================================

	// MaxConcurrency bounds how many files 'process' converts at once.
	// Default: 4
	MaxConcurrency int `yaml:"max_concurrency"`

	// Strict turns validation warnings (duplicate ids, duplicate resnames)
	// into errors.
	// Default: false
	Strict bool `yaml:"strict"`

	CSV   CSVSettings   `yaml:"csv"`
	XLIFF XLIFFSettings `yaml:"xliff"`
	XLSX  XLSXSettings  `yaml:"xlsx"`
}

// =============================================================================
// FORMAT SETTINGS
// =============================================================================

// CSVSettings contains settings for reading and writing CSV files.
type CSVSettings struct {
	// Delimiter separates fields. Accepts a single character or one of
	// "tab", "pipe", "semicolon".
	// Default: ","
	Delimiter string `yaml:"delimiter"`

	// Encoding of CSV input, as a WHATWG label ("utf-8", "windows-1252", ...).
	// A byte-order mark always wins over this setting.
	// Default: "utf-8"
	Encoding string `yaml:"encoding"`

	// CRLF terminates written rows with "\r\n".
	// Default: true
	CRLF *bool `yaml:"crlf"`
}

// XLIFFSettings contains the fixed attributes of generated <file> elements.
type XLIFFSettings struct {
	// SourceLanguage is written as source-language.
	// Default: "en"
	SourceLanguage string `yaml:"source_language"`

	// Original is written as the original attribute.
	// Default: "source"
	Original string `yaml:"original"`

	// Datatype is written as the datatype attribute.
	// Default: "plaintext"
	Datatype string `yaml:"datatype"`

	// Indent switches from one-element-per-line output to indented output.
	// Default: "" (one element per line)
	Indent string `yaml:"indent"`
}

// XLSXSettings contains settings for spreadsheet input.
type XLSXSettings struct {
	// Sheet is the worksheet to read. Empty means the first sheet.
	Sheet string `yaml:"sheet"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration with every default applied.
func Default() *MainConfig {
	config := &MainConfig{}
	applyMainConfigDefaults(config)
	return config
}

// LoadMainConfig loads the main configuration from a YAML file.
//
// PARAMETERS:
//   - configPath: The path to the configuration file. An empty path returns
//     the defaults.
//
// RETURNS:
//   - A pointer to the MainConfig struct.
//   - An error if the file cannot be read, parsed or validated.
func LoadMainConfig(configPath string) (*MainConfig, error) {
	if configPath == "" {
		return Default(), nil
	}

	// Read the configuration file.
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse the YAML.
	var config MainConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	// Apply default values.
	applyMainConfigDefaults(&config)

	// Validate the configuration.
	if err := validateMainConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// applyMainConfigDefaults sets default values for any unset configuration options.
func applyMainConfigDefaults(config *MainConfig) {
	if config.InputDir == "" {
		config.InputDir = "./input"
	}
	if config.OutputDir == "" {
		config.OutputDir = "out"
	}
	if config.InputArchiveDir == "" {
		config.InputArchiveDir = "./input_archive"
	}
	if config.OutputNameFormat == "" {
		config.OutputNameFormat = "{name}"
	}
	if config.LogLevel == "" {
		config.LogLevel = "info"
	}
	if config.LogFormat == "" {
		config.LogFormat = "text"
	}
	if config.MaxConcurrency == 0 {
		config.MaxConcurrency = 4
	}

	// CSV defaults.
	if config.CSV.Delimiter == "" {
		config.CSV.Delimiter = ","
	}
	if config.CSV.Encoding == "" {
		config.CSV.Encoding = "utf-8"
	}
	if config.CSV.CRLF == nil {
		crlf := true
		config.CSV.CRLF = &crlf
	}

	// XLIFF defaults.
	if config.XLIFF.SourceLanguage == "" {
		config.XLIFF.SourceLanguage = "en"
	}
	if config.XLIFF.Original == "" {
		config.XLIFF.Original = "source"
	}
	if config.XLIFF.Datatype == "" {
		config.XLIFF.Datatype = "plaintext"
	}
}

// validateMainConfig validates the main configuration.
func validateMainConfig(config *MainConfig) error {
	if config.MaxConcurrency < 1 {
		return fmt.Errorf("max_concurrency must be at least 1, got %d", config.MaxConcurrency)
	}

	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}

	switch strings.ToLower(config.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("log_format must be \"text\" or \"json\", got %q", config.LogFormat)
	}

	if _, err := DelimiterRune(config.CSV.Delimiter); err != nil {
		return err
	}

	return nil
}

// DelimiterRune resolves the configured CSV delimiter to a single rune.
func DelimiterRune(delimiter string) (rune, error) {
	switch delimiter {
	case "\\t", "tab", "TAB":
		return '\t', nil
	case "pipe", "PIPE":
		return '|', nil
	case "semicolon":
		return ';', nil
	}

	if utf8.RuneCountInString(delimiter) != 1 {
		return 0, fmt.Errorf("csv delimiter must be a single character, got %q", delimiter)
	}

	r, _ := utf8.DecodeRuneInString(delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid csv delimiter %q", delimiter)
	}

	return r, nil
}

// WriteCRLF reports whether CSV output uses "\r\n" line endings.
func (c CSVSettings) WriteCRLF() bool {
	return c.CRLF == nil || *c.CRLF
}
