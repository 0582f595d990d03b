// =============================================================================
// CSV/XLF Converter - XML Writer Module
// =============================================================================
//
// This module serializes translation records into an XLIFF 1.2 document.
//
// OUTPUT SHAPE (default options):
//   <?xml version="1.0" encoding="UTF-8"?>
//   <xliff version="1.2">
//   <file original="source" datatype="plaintext" source-language="en" target-language="fr">
//   <body>
//   <trans-unit id="1" resname="resource1">
//   <source>Hello</source>
//   <target>Bonjour</target>
//   </trans-unit>
//   </body>
//   </file>
//   </xliff>
//
// Every element starts on its own line. Setting GenerateOptions.Indent
// switches to conventionally indented output instead.
//
// =============================================================================

package xmlwriter

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"os"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/config"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/xliff"
)

// =============================================================================
// XML GENERATION OPTIONS
// =============================================================================

// GenerateOptions contains options for XLIFF generation.
type GenerateOptions struct {
	// File holds the attributes of the <file> element.
	File xliff.FileAttributes

	// Indent, when non-empty, indents nested elements with this string.
	// When empty, elements are separated by newlines only.
	Indent string

	// IncludeXMLDeclaration writes the <?xml ...?> prolog.
	// Default: true
	IncludeXMLDeclaration bool
}

// DefaultGenerateOptions returns the default generation options for a target
// language.
func DefaultGenerateOptions(targetLanguage string) GenerateOptions {
	return GenerateOptions{
		File: xliff.FileAttributes{
			Original:       "source",
			Datatype:       "plaintext",
			SourceLanguage: "en",
			TargetLanguage: targetLanguage,
		},
		IncludeXMLDeclaration: true,
	}
}

// OptionsFromConfig builds generation options from the XLIFF settings.
func OptionsFromConfig(settings config.XLIFFSettings, targetLanguage string) GenerateOptions {
	options := DefaultGenerateOptions(targetLanguage)
	options.File.Original = settings.Original
	options.File.Datatype = settings.Datatype
	options.File.SourceLanguage = settings.SourceLanguage
	options.Indent = settings.Indent
	return options
}

// =============================================================================
// XML GENERATION FUNCTIONS
// =============================================================================

// Generate creates an XLIFF document with one trans-unit per record.
func Generate(records []types.TranslationRecord, targetLanguage string) ([]byte, error) {
	return GenerateWithOptions(records, DefaultGenerateOptions(targetLanguage))
}

// GenerateWithOptions creates an XLIFF document with custom options.
func GenerateWithOptions(records []types.TranslationRecord, options GenerateOptions) ([]byte, error) {
	var buffer bytes.Buffer

	if options.IncludeXMLDeclaration {
		buffer.WriteString(xml.Header)
	}

	doc := xliff.NewDocument(records, options.File)

	var (
		body []byte
		err  error
	)
	if options.Indent != "" {
		body, err = xml.MarshalIndent(doc, "", options.Indent)
	} else {
		body, err = xml.Marshal(doc)
		body = splitTags(body)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal XML: %w", err)
	}

	buffer.Write(body)
	buffer.WriteByte('\n')

	return buffer.Bytes(), nil
}

// splitTags starts every tag of marshalled XML on its own line. The end tag of
// an empty element stays next to its start tag, so <source></source> keeps
// its empty text. Markup inside text and attribute values is escaped, so "><"
// only ever joins two tags.
func splitTags(body []byte) []byte {
	var out bytes.Buffer
	out.Grow(len(body) + len(body)/8)

	tagStart := 0
	for i, c := range body {
		if c == '<' {
			tagStart = i
		}
		out.WriteByte(c)

		if c != '>' || i+1 >= len(body) || body[i+1] != '<' {
			continue
		}

		opening := tagStart+1 < len(body) && body[tagStart+1] != '/' && body[tagStart+1] != '?'
		closingNext := i+2 < len(body) && body[i+2] == '/'
		if opening && closingNext {
			continue
		}
		out.WriteByte('\n')
	}

	return out.Bytes()
}

// WriteFile generates the document and writes it to filePath.
func WriteFile(filePath string, records []types.TranslationRecord, options GenerateOptions) error {
	data, err := GenerateWithOptions(records, options)
	if err != nil {
		return err
	}

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
