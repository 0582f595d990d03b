// =============================================================================
// CSV/XLF Converter - Validation Engine
// =============================================================================
//
// This module checks the inputs of a conversion that the mappers themselves
// do not reject:
//   - The target language code must be a well-formed BCP 47 tag
//   - id values should be unique within one document
//   - resname values should be unique within one document
//
// Language problems are errors. Uniqueness problems are warnings: the
// converter logs them and carries on, unless strict mode promotes them.
//
// =============================================================================

package validation

import (
	"fmt"
	"strings"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
	"golang.org/x/text/language"
)

// =============================================================================
// VALIDATION ERROR TYPES
// =============================================================================

// Severity levels.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// ValidationError represents a single validation finding.
type ValidationError struct {
	// Severity is SeverityError or SeverityWarning.
	Severity string

	// Field is the record field or attribute concerned ("id", "resname", "lang").
	Field string

	// Value is the offending value.
	Value string

	// Rule names the violated rule, e.g. "unique", "bcp47".
	Rule string

	// Message is a human-readable message.
	Message string

	// Record is the 1-based position of the record, 0 when not record-bound.
	Record int
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Record > 0 {
		return fmt.Sprintf("[%s] record %d, field '%s': %s (value: '%s')",
			strings.ToUpper(e.Severity), e.Record, e.Field, e.Message, e.Value)
	}
	return fmt.Sprintf("[%s] field '%s': %s (value: '%s')",
		strings.ToUpper(e.Severity), e.Field, e.Message, e.Value)
}

// =============================================================================
// VALIDATION RESULT
// =============================================================================

// ValidationResult contains the results of validation.
type ValidationResult struct {
	// IsValid is false when a warning was raised while TreatWarningsAsErrors
	// is set.
	IsValid bool

	// Errors holds every finding, in record order per check.
	Errors       []*ValidationError
	WarningCount int

	// RecordsValidated is the number of records inspected.
	RecordsValidated int
}

// =============================================================================
// VALIDATOR
// =============================================================================

// ValidationOptions contains options for validation.
type ValidationOptions struct {
	// TreatWarningsAsErrors makes any warning invalidate the result.
	TreatWarningsAsErrors bool

	// SkipUniqueness disables the id/resname uniqueness checks.
	SkipUniqueness bool
}

// Validator performs validation on translation records.
type Validator struct {
	options ValidationOptions
}

// NewValidator creates a Validator with default options.
func NewValidator() *Validator {
	return &Validator{}
}

// NewValidatorWithOptions creates a Validator with custom options.
func NewValidatorWithOptions(options ValidationOptions) *Validator {
	return &Validator{options: options}
}

// ValidateLanguage checks that code is a well-formed language tag such as
// "fr", "zh-Hans" or "pt-BR".
func ValidateLanguage(code string) error {
	if strings.TrimSpace(code) == "" {
		return &ValidationError{
			Severity: SeverityError,
			Field:    "lang",
			Rule:     "required",
			Message:  "target language code is required",
		}
	}

	if _, err := language.Parse(code); err != nil {
		return &ValidationError{
			Severity: SeverityError,
			Field:    "lang",
			Value:    code,
			Rule:     "bcp47",
			Message:  fmt.Sprintf("not a valid language tag: %v", err),
		}
	}

	return nil
}

// ValidateRecords inspects records and returns every finding.
func (v *Validator) ValidateRecords(records []types.TranslationRecord) *ValidationResult {
	result := &ValidationResult{
		IsValid:          true,
		Errors:           make([]*ValidationError, 0),
		RecordsValidated: len(records),
	}

	if !v.options.SkipUniqueness {
		v.checkUnique(result, records, "id", func(r types.TranslationRecord) string { return r.ID })
		v.checkUnique(result, records, "resname", func(r types.TranslationRecord) string { return r.Resname })
	}

	return result
}

// checkUnique adds a warning for every record whose field value was already
// used by an earlier record. Empty values are not compared.
func (v *Validator) checkUnique(result *ValidationResult, records []types.TranslationRecord, field string, value func(types.TranslationRecord) string) {
	firstSeen := make(map[string]int, len(records))

	for i, rec := range records {
		val := value(rec)
		if val == "" {
			continue
		}

		if first, exists := firstSeen[val]; exists {
			v.addWarning(result, &ValidationError{
				Severity: SeverityWarning,
				Field:    field,
				Value:    val,
				Rule:     "unique",
				Message:  fmt.Sprintf("duplicate %s, first used by record %d", field, first),
				Record:   i + 1,
			})
			continue
		}

		firstSeen[val] = i + 1
	}
}

// addWarning records a warning finding. Warnings invalidate the result only
// when TreatWarningsAsErrors is set.
func (v *Validator) addWarning(result *ValidationResult, finding *ValidationError) {
	result.Errors = append(result.Errors, finding)
	result.WarningCount++
	if v.options.TreatWarningsAsErrors {
		result.IsValid = false
	}
}

// =============================================================================
// ERROR FORMATTING
// =============================================================================

// FormatErrors formats validation findings for display or logging.
func FormatErrors(errors []*ValidationError) string {
	if len(errors) == 0 {
		return "No validation errors."
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Validation completed with %d finding(s):\n\n", len(errors)))

	for i, err := range errors {
		builder.WriteString(fmt.Sprintf("%d. %s\n", i+1, err.Error()))
	}

	return builder.String()
}
