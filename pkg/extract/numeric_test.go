package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractNumericalData(t *testing.T) {
	tests := []struct {
		name  string
		line  string
		label string
		value float64
	}{
		{"colon separator with thousands", "Revenue: 1,234.5", "Revenue", 1234.5},
		{"equals separator", "Growth = 12", "Growth", 12},
		{"dash separator", "Errors - 3", "Errors", 3},
		{"percent unit", "Margin: 42%", "Margin", 42},
		{"currency prefix", "Budget: $9,000", "Budget", 9000},
		{"bulleted line", "- Users: 250", "Users", 250},
		{"negative value", "Delta: -7.5", "Delta", -7.5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			data := ExtractNumericalData(tc.line)
			require.Len(t, data, 1)
			assert.Equal(t, tc.label, data[0].Label)
			assert.InDelta(t, tc.value, data[0].Value, 1e-9)
		})
	}
}

func TestExtractNumericalDataSkipsNonMatches(t *testing.T) {
	assert.Empty(t, ExtractNumericalData("Some text without numbers"))
	assert.Empty(t, ExtractNumericalData(""))

	// labels longer than 49 characters are rejected
	long := strings.Repeat("x", 50) + ": 5"
	assert.Empty(t, ExtractNumericalData(long))
}

func TestExtractNumericalDataHyphenatedLabel(t *testing.T) {
	data := ExtractNumericalData("Year-over-year: 8")
	require.Len(t, data, 1)
	assert.Equal(t, "Year-over-year", data[0].Label)
	assert.InDelta(t, 8, data[0].Value, 1e-9)
}

func TestExtractNumericalDataMultipleLines(t *testing.T) {
	text := "Alpha: 1\nnot a datum\nBeta: 2\n"
	data := ExtractNumericalData(text)
	require.Len(t, data, 2)
	assert.Equal(t, "Alpha", data[0].Label)
	assert.Equal(t, "Beta", data[1].Label)
}
