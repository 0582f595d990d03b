// =============================================================================
// CSV/XLF Converter - Shared Types
// =============================================================================
//
// This package contains the record model exchanged between the readers, the
// mappers and the writers. It lives on its own to avoid import cycles between:
//   - converter
//   - validation
//   - xliff
//   - xmlwriter
//
// =============================================================================

package types

// =============================================================================
// TRANSLATION RECORD
// =============================================================================

// TranslationRecord is one translatable segment: a single CSV data row or a
// single XLIFF trans-unit.
type TranslationRecord struct {
	// ID identifies the record within one document.
	// It is either taken from the input or generated from the row position.
	ID string

	// Resname is the human-readable resource name.
	// Positional CSV input derives it from the row index ("resource1", ...).
	Resname string

	// Source is the source-language text. It may be empty, never absent.
	Source string

	// Target is the target-language text.
	// nil means "no target" and is not the same thing as an empty translation.
	Target *string

	// HasID and HasResname report whether the id and resname attributes are
	// present. An attribute can be present with an empty value.
	HasID      bool
	HasResname bool

	// ExtraAttributes holds trans-unit attributes other than id and resname,
	// in document order. Only filled when reading XLIFF.
	ExtraAttributes []Attribute
}

// Attribute is a single name/value pair read from a trans-unit.
type Attribute struct {
	Name  string
	Value string
}

// NewTarget returns a target holding text.
func NewTarget(text string) *string {
	return &text
}

// HasTarget reports whether the record carries a target.
func (r TranslationRecord) HasTarget() bool {
	return r.Target != nil
}

// TargetText returns the target text, or "" when the target is absent.
func (r TranslationRecord) TargetText() string {
	if r.Target == nil {
		return ""
	}
	return *r.Target
}

// AttributeNames returns the names of all attributes the record carries:
// id and resname first (when present), then the extra attributes in order.
func (r TranslationRecord) AttributeNames() []string {
	names := make([]string, 0, len(r.ExtraAttributes)+2)
	if r.HasID {
		names = append(names, "id")
	}
	if r.HasResname {
		names = append(names, "resname")
	}
	for _, attr := range r.ExtraAttributes {
		names = append(names, attr.Name)
	}
	return names
}

// Attribute looks up an attribute value by name.
func (r TranslationRecord) Attribute(name string) (string, bool) {
	switch name {
	case "id":
		return r.ID, r.HasID
	case "resname":
		return r.Resname, r.HasResname
	}
	for _, attr := range r.ExtraAttributes {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return "", false
}
