package convert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mdforge/mdforge/pkg/types"
)

func surveyForm() *types.Form {
	return &types.Form{
		Title: "Survey",
		Items: []types.FormItem{
			{
				ID:       "q1",
				Kind:     types.ItemQuestion,
				Title:    "Color",
				Question: &types.FormQuestion{Type: types.FormRadio},
			},
			{
				ID:       "q2",
				Kind:     types.ItemQuestion,
				Title:    "Comments",
				Question: &types.FormQuestion{Type: types.FormParagraph},
			},
			{Kind: types.ItemPageBreak, Title: "Part 2"},
		},
	}
}

func TestResponsesToMarkdown(t *testing.T) {
	c := NewFormConverter()

	responses := []types.FormResponse{
		{
			Timestamp: "2026-08-01T10:00:00Z",
			Answers: map[string][]string{
				"q1": {"A"},
				"q2": {"line one\nline two"},
			},
		},
		{
			Timestamp: "2026-08-02T11:00:00Z",
			Answers: map[string][]string{
				"q1": {"A", "B"},
			},
		},
	}

	got := c.ResponsesToMarkdown(surveyForm(), responses)

	// page breaks never become columns
	want := "# Survey Responses\n\n" +
		"| Timestamp | Color | Comments |\n" +
		"| --- | --- | --- |\n" +
		"| 2026-08-01T10:00:00Z | A | line one line two |\n" +
		"| 2026-08-02T11:00:00Z | A, B |  |\n" +
		"\n*2 responses*\n"
	assert.Equal(t, want, got)
}

func TestResponsesToMarkdownEscapesPipes(t *testing.T) {
	c := NewFormConverter()

	responses := []types.FormResponse{{
		Timestamp: "t1",
		Answers:   map[string][]string{"q2": {"a|b"}},
	}}

	got := c.ResponsesToMarkdown(surveyForm(), responses)
	assert.Contains(t, got, `a\|b`)
}

func TestSummaryToMarkdownChoiceCounts(t *testing.T) {
	c := NewFormConverter()

	responses := []types.FormResponse{
		{Timestamp: "t1", Answers: map[string][]string{"q1": {"A"}}},
		{Timestamp: "t2", Answers: map[string][]string{"q1": {"A"}}},
		{Timestamp: "t3", Answers: map[string][]string{"q1": {"B"}}},
	}

	got := c.SummaryToMarkdown(surveyForm(), responses)
	assert.Contains(t, got, "# Survey Summary\n\n*3 responses*\n")
	assert.Contains(t, got, "- A: 2 (67%)\n")
	assert.Contains(t, got, "- B: 1 (33%)\n")
	// the text question saw no answers
	assert.Contains(t, got, "### Comments\n\n*No responses*\n")
}

func TestSummaryToMarkdownTextVerbatim(t *testing.T) {
	c := NewFormConverter()

	responses := []types.FormResponse{
		{Timestamp: "t1", Answers: map[string][]string{"q2": {"great", "great"}}},
		{Timestamp: "t2", Answers: map[string][]string{"q2": {"needs work"}}},
	}

	got := c.SummaryToMarkdown(surveyForm(), responses)
	// duplicates collapse, unique answers list verbatim
	assert.Contains(t, got, "- \"great\"\n- \"needs work\"\n")
}

func TestSummaryToMarkdownTextOverflow(t *testing.T) {
	c := NewFormConverter()

	responses := []types.FormResponse{{
		Timestamp: "t1",
		Answers:   map[string][]string{"q2": {"a1", "a2", "a3", "a4", "a5", "a6"}},
	}}

	got := c.SummaryToMarkdown(surveyForm(), responses)
	assert.Contains(t, got, "- \"a1\"\n- \"a2\"\n- …and 4 more\n")
	assert.NotContains(t, got, "a3")
}

func TestResponsesToMarkdownEmpty(t *testing.T) {
	c := NewFormConverter()

	got := c.ResponsesToMarkdown(surveyForm(), nil)
	assert.Contains(t, got, "| Timestamp | Color | Comments |")
	assert.Contains(t, got, "*0 responses*")
}
