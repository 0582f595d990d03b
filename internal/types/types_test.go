package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetAbsentVersusEmpty(t *testing.T) {
	absent := TranslationRecord{Source: "Hello"}
	empty := TranslationRecord{Source: "Hello", Target: NewTarget("")}

	assert.False(t, absent.HasTarget())
	assert.True(t, empty.HasTarget())
	assert.Equal(t, "", absent.TargetText())
	assert.Equal(t, "", empty.TargetText())
}

func TestAttributeNamesAndLookup(t *testing.T) {
	rec := TranslationRecord{
		ID:     "7",
		HasID:  true,
		Source: "Bye",
		Target: NewTarget("Au revoir"),
		ExtraAttributes: []Attribute{
			{Name: "approved", Value: "yes"},
			{Name: "xml:space", Value: "preserve"},
		},
	}

	assert.Equal(t, []string{"id", "approved", "xml:space"}, rec.AttributeNames())

	value, ok := rec.Attribute("id")
	assert.True(t, ok)
	assert.Equal(t, "7", value)

	value, ok = rec.Attribute("approved")
	assert.True(t, ok)
	assert.Equal(t, "yes", value)

	_, ok = rec.Attribute("resname")
	assert.False(t, ok)

	_, ok = rec.Attribute("state")
	assert.False(t, ok)
}

func TestAttributePresentWithEmptyValue(t *testing.T) {
	rec := TranslationRecord{HasID: true, HasResname: true, Source: "x"}

	assert.Equal(t, []string{"id", "resname"}, rec.AttributeNames())

	value, ok := rec.Attribute("resname")
	assert.True(t, ok)
	assert.Equal(t, "", value)

	assert.Empty(t, TranslationRecord{ID: "set but not read", Source: "x"}.AttributeNames())
}
