// =============================================================================
// CSV/XLF Converter - XLIFF 1.2 Document Model
// =============================================================================
//
// The structs below describe the subset of XLIFF 1.2 the converter emits:
//
//   <xliff version="1.2">
//     <file original="source" datatype="plaintext"
//           source-language="en" target-language="fr">
//       <body>
//         <trans-unit id="1" resname="resource1">
//           <source>Hello</source>
//           <target>Bonjour</target>      <!-- omitted when absent -->
//         </trans-unit>
//       </body>
//     </file>
//   </xliff>
//
// Reading does not use these structs; see reader.go.
//
// =============================================================================

package xliff

import (
	"encoding/xml"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
)

// Version is the XLIFF version written to the root element.
const Version = "1.2"

// Document is the <xliff> root element.
type Document struct {
	XMLName xml.Name `xml:"xliff"`
	Version string   `xml:"version,attr"`
	File    File     `xml:"file"`
}

// File is the single <file> element of a generated document.
type File struct {
	Original       string `xml:"original,attr"`
	Datatype       string `xml:"datatype,attr"`
	SourceLanguage string `xml:"source-language,attr"`
	TargetLanguage string `xml:"target-language,attr"`
	Body           Body   `xml:"body"`
}

// Body holds the translation units in record order.
type Body struct {
	TransUnits []TransUnit `xml:"trans-unit"`
}

// TransUnit is one <trans-unit>. A nil Target emits no <target> element.
type TransUnit struct {
	ID      string  `xml:"id,attr"`
	Resname string  `xml:"resname,attr"`
	Source  string  `xml:"source"`
	Target  *string `xml:"target,omitempty"`
}

// FileAttributes are the fixed attributes of the generated <file> element.
type FileAttributes struct {
	Original       string
	Datatype       string
	SourceLanguage string
	TargetLanguage string
}

// NewDocument builds a document with one trans-unit per record, in order.
func NewDocument(records []types.TranslationRecord, attrs FileAttributes) *Document {
	units := make([]TransUnit, len(records))
	for i, rec := range records {
		units[i] = TransUnit{
			ID:      rec.ID,
			Resname: rec.Resname,
			Source:  rec.Source,
			Target:  rec.Target,
		}
	}

	return &Document{
		Version: Version,
		File: File{
			Original:       attrs.Original,
			Datatype:       attrs.Datatype,
			SourceLanguage: attrs.SourceLanguage,
			TargetLanguage: attrs.TargetLanguage,
			Body:           Body{TransUnits: units},
		},
	}
}
