package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGlossary_FirstEntryWins(t *testing.T) {
	g := NewGlossary()

	assert.True(t, g.Add("Brussels", "Brussels is the capital of Belgium."))
	assert.False(t, g.Add("Brussels", "A different definition."))
	assert.True(t, g.Add("NATO", "NATO is an alliance."))

	assert.Equal(t, 2, g.Len())
	def, ok := g.Lookup("Brussels")
	assert.True(t, ok)
	assert.Equal(t, "Brussels is the capital of Belgium.", def)

	assert.Equal(t, []GlossaryEntry{
		{Term: "Brussels", Definition: "Brussels is the capital of Belgium."},
		{Term: "NATO", Definition: "NATO is an alliance."},
	}, g.Entries)
}

func TestGlossary_DefinitionsEmpty(t *testing.T) {
	g := NewGlossary()
	defs := g.Definitions()
	assert.NotNil(t, defs)
	assert.Empty(t, defs)

	_, ok := g.Lookup("missing")
	assert.False(t, ok)
}

func TestResolution_Found(t *testing.T) {
	assert.True(t, Resolution{Status: ResolutionResolved}.Found())
	assert.False(t, Resolution{Status: ResolutionNotFound}.Found())
	assert.False(t, Resolution{Status: ResolutionFailed}.Found())
}
