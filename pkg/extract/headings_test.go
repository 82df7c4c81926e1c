package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdforge/mdforge/pkg/types"
)

func TestExtractHeadings(t *testing.T) {
	text := "# One\nbody\n### Three\n## Two\n####### not a heading\n#missing space\n"

	headings := ExtractHeadings(text)
	require.Len(t, headings, 3)

	// document order is preserved, including same-level ordering
	assert.Equal(t, types.Heading{Level: 1, Text: "One"}, headings[0])
	assert.Equal(t, types.Heading{Level: 3, Text: "Three"}, headings[1])
	assert.Equal(t, types.Heading{Level: 2, Text: "Two"}, headings[2])
}

func TestSplitIntoSections(t *testing.T) {
	text := "preamble line\n" +
		"# First\n" +
		"alpha\n" +
		"\n" +
		"beta\n" +
		"#### deep heading stays in body\n" +
		"## Second\n"

	sections := SplitIntoSections(text)
	require.Len(t, sections, 3)

	assert.Equal(t, "", sections[0].Heading)
	assert.Equal(t, "preamble line", sections[0].Content)

	assert.Equal(t, "First", sections[1].Heading)
	// body lines accumulate verbatim, blank lines included
	assert.Equal(t, "alpha\n\nbeta\n#### deep heading stays in body", sections[1].Content)

	// a section with a heading and empty body is kept
	assert.Equal(t, "Second", sections[2].Heading)
	assert.Equal(t, "", sections[2].Content)
}

func TestSplitIntoSectionsDropsEmptyPreamble(t *testing.T) {
	sections := SplitIntoSections("\n\n# Only\ncontent\n")
	require.Len(t, sections, 1)
	assert.Equal(t, "Only", sections[0].Heading)
}

func TestSplitIntoSectionsEmptyInput(t *testing.T) {
	assert.Empty(t, SplitIntoSections(""))
	assert.Empty(t, SplitIntoSections("   \n\t\n"))
}
