package xliff

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ginjaninja78/CSV-to-XLF-conversion/internal/types"
	"golang.org/x/text/encoding/htmlindex"
)

// ErrMissingSource is wrapped by UnitError when a trans-unit has no <source>.
var ErrMissingSource = errors.New("trans-unit has no source element")

// xmlNamespace is the URI bound to the reserved "xml" prefix.
const xmlNamespace = "http://www.w3.org/XML/1998/namespace"

// UnitError reports a malformed trans-unit.
type UnitError struct {
	// Index is the 1-based position of the unit in document order.
	Index int
	// ID is the unit's id attribute, if it had one.
	ID  string
	Err error
}

func (e *UnitError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("trans-unit %d (id %q): %v", e.Index, e.ID, e.Err)
	}
	return fmt.Sprintf("trans-unit %d: %v", e.Index, e.Err)
}

func (e *UnitError) Unwrap() error { return e.Err }

// ParseFile reads every trans-unit of the XLIFF file at filePath.
func ParseFile(filePath string) ([]types.TranslationRecord, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	records, err := Parse(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filePath, err)
	}

	return records, nil
}

// Parse returns one record per <trans-unit> element, in document order.
//
// Units are found at any depth and matched by local name, so both plain and
// namespaced (urn:oasis:names:tc:xliff:document:1.2) documents work. The id
// and resname attributes fill ID and Resname; every other attribute lands in
// ExtraAttributes in the order it was written.
func Parse(r io.Reader) ([]types.TranslationRecord, error) {
	decoder := xml.NewDecoder(r)
	decoder.CharsetReader = charsetReader

	var records []types.TranslationRecord
	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse XML: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "trans-unit" {
			continue
		}

		record, err := readUnit(decoder, start, len(records)+1)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}

	return records, nil
}

// readUnit consumes a trans-unit up to and including its end tag.
func readUnit(decoder *xml.Decoder, start xml.StartElement, index int) (types.TranslationRecord, error) {
	var record types.TranslationRecord
	for _, attr := range start.Attr {
		if isNamespaceDecl(attr) {
			continue
		}
		name := attributeName(attr.Name)
		switch name {
		case "id":
			record.ID, record.HasID = attr.Value, true
		case "resname":
			record.Resname, record.HasResname = attr.Value, true
		default:
			record.ExtraAttributes = append(record.ExtraAttributes, types.Attribute{Name: name, Value: attr.Value})
		}
	}

	var source *string
	for {
		token, err := decoder.Token()
		if err != nil {
			return record, fmt.Errorf("failed to parse trans-unit %d: %w", index, err)
		}

		switch t := token.(type) {
		case xml.StartElement:
			// Direct children only; the first source/target wins.
			text, err := readText(decoder)
			if err != nil {
				return record, fmt.Errorf("failed to parse trans-unit %d: %w", index, err)
			}
			switch {
			case t.Name.Local == "source" && source == nil:
				source = &text
			case t.Name.Local == "target" && record.Target == nil:
				record.Target = types.NewTarget(text)
			}
		case xml.EndElement:
			if source == nil {
				return record, &UnitError{Index: index, ID: record.ID, Err: ErrMissingSource}
			}
			record.Source = *source
			return record, nil
		}
	}
}

// readText returns the character data of the current element, nested inline
// markup included, and consumes its end tag.
func readText(decoder *xml.Decoder) (string, error) {
	var sb strings.Builder
	depth := 1
	for depth > 0 {
		token, err := decoder.Token()
		if err != nil {
			return "", err
		}
		switch t := token.(type) {
		case xml.CharData:
			sb.Write(t)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return sb.String(), nil
}

// isNamespaceDecl reports whether attr is an xmlns declaration.
func isNamespaceDecl(attr xml.Attr) bool {
	return attr.Name.Space == "xmlns" || (attr.Name.Space == "" && attr.Name.Local == "xmlns")
}

// attributeName renders an attribute name as a column name: "approved",
// "xml:space", or "{uri}local" for other namespaces.
func attributeName(name xml.Name) string {
	switch name.Space {
	case "":
		return name.Local
	case xmlNamespace, "xml":
		return "xml:" + name.Local
	default:
		return "{" + name.Space + "}" + name.Local
	}
}

// charsetReader decodes documents that declare a non-UTF-8 encoding.
func charsetReader(label string, input io.Reader) (io.Reader, error) {
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("unsupported XML encoding %q: %w", label, err)
	}
	return enc.NewDecoder().Reader(input), nil
}
