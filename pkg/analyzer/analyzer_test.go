package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdforge/mdforge/pkg/logger"
	"github.com/mdforge/mdforge/pkg/types"
)

func newTestAnalyzer() *Analyzer {
	return New(nil, logger.NewTestLogger())
}

func TestResolveTitle(t *testing.T) {
	a := newTestAnalyzer()

	tests := []struct {
		name     string
		text     string
		fallback string
		want     string
	}{
		{"h1 wins", "# Hello\n\nSome text.", "fallback.md", "Hello"},
		{"fallback strips suffix", "no heading here", "MyNote.md", "MyNote"},
		{"front matter title", "---\ntitle: \"Quarterly Plan\"\n---\nbody", "x.md", "Quarterly Plan"},
		{"loose title line", "title: 'Loose'\nbody", "x.md", "Loose"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, a.Analyze(tc.text, tc.fallback).Title)
		})
	}
}

func TestWordCountExcludesFrontMatter(t *testing.T) {
	a := newTestAnalyzer()
	analysis := a.Analyze("---\ntitle: Meta\ntags: [a, b]\n---\none two three", "n.md")
	assert.Equal(t, 3, analysis.WordCount)
}

func TestContentTypeOverrideOrder(t *testing.T) {
	a := newTestAnalyzer()

	// four headings, six paragraphs: the article rule holds and the
	// notes rule does not
	article := "# A\n\np1 words here\n\np2 words here\n\n## B\n\np3 words here\n\np4 words here\n\n" +
		"## C\n\np5 words here\n\n## D\n\np6 words here\n"
	got := a.Analyze(article, "n.md")
	assert.Equal(t, "article", got.Document.ContentType)

	// same shape opening with a salutation: the letter rule runs after
	// the article rule and overwrites it
	letter := "Dear Sir,\n\n" + article
	assert.Equal(t, "letter", a.Analyze(letter, "n.md").Document.ContentType)

	// sparse documents classify as notes even when nothing else matched
	assert.Equal(t, "notes", a.Analyze("just a line\n\nand another", "n.md").Document.ContentType)
}

func TestContentTypeReport(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Analyze("## Abstract\n\nfindings follow\n", "n.md")
	// the notes rule runs last and overwrites report for tiny documents
	assert.Equal(t, "notes", got.Document.ContentType)

	big := "## Abstract\n\n" + strings.Repeat("plain paragraph text\n\n", 6)
	assert.Equal(t, "report", a.Analyze(big, "n.md").Document.ContentType)
}

func TestEstimatedPages(t *testing.T) {
	a := newTestAnalyzer()
	assert.Equal(t, 1, a.Analyze("", "n.md").Document.EstimatedPages)
	assert.Equal(t, 1, a.Analyze(strings.Repeat("word ", 250), "n.md").Document.EstimatedPages)
	assert.Equal(t, 2, a.Analyze(strings.Repeat("word ", 251), "n.md").Document.EstimatedPages)
}

func TestChartSuggestion(t *testing.T) {
	a := newTestAnalyzer()

	assert.Equal(t, "none", a.Analyze("no data at all", "n.md").Spreadsheet.ChartSuggestion)

	pie := "Alpha: 1\nBeta: 2\nGamma: 3\n"
	assert.Equal(t, "pie", a.Analyze(pie, "n.md").Spreadsheet.ChartSuggestion)

	var sb strings.Builder
	for _, label := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		sb.WriteString(label + ": 1\n")
	}
	assert.Equal(t, "bar", a.Analyze(sb.String(), "n.md").Spreadsheet.ChartSuggestion)
}

func TestChartSuggestionLargeTableOverride(t *testing.T) {
	a := newTestAnalyzer()

	table := "| H1 | H2 |\n|---|---|\n" + strings.Repeat("| a | b |\n", 6)

	// the table override wins even with pie-sized numeric data present
	text := "Alpha: 1\nBeta: 2\n\n" + table
	got := a.Analyze(text, "n.md")
	require.Len(t, got.Spreadsheet.Tables, 1)
	assert.Len(t, got.Spreadsheet.Tables[0].Rows, 6)
	assert.Equal(t, "bar", got.Spreadsheet.ChartSuggestion)
}

func TestPresentationSlides(t *testing.T) {
	a := newTestAnalyzer()

	text := "# Deck\n\n## Agenda\n\n- first\n- second\n\n## Prose\n\n" +
		"This sentence is long enough to keep. No. " +
		"Another sentence of a reasonable length here.\n"

	got := a.Analyze(text, "n.md").Presentation
	require.Len(t, got.Slides, 4)

	assert.Equal(t, "Deck", got.Slides[0].Title)
	assert.Equal(t, "TITLE", got.Slides[0].Layout)

	assert.Equal(t, "Deck", got.Slides[1].Title)
	assert.Empty(t, got.Slides[1].Bullets)

	assert.Equal(t, "Agenda", got.Slides[2].Title)
	assert.Equal(t, []string{"first", "second"}, got.Slides[2].Bullets)

	// no explicit bullets: sentences of 10-119 chars become pseudo-bullets
	assert.Equal(t, "Prose", got.Slides[3].Title)
	assert.Equal(t, []string{
		"This sentence is long enough to keep.",
		"Another sentence of a reasonable length here.",
	}, got.Slides[3].Bullets)

	assert.Equal(t, 6, got.EstimatedDuration)
}

func TestPresentationTheme(t *testing.T) {
	a := newTestAnalyzer()
	assert.Equal(t, "academic", a.Analyze("## Introduction\n\nbody text", "n.md").Presentation.Theme)
	assert.Equal(t, "professional", a.Analyze("## Roadmap\n\nbody text", "n.md").Presentation.Theme)
}

func TestFormTypeResolution(t *testing.T) {
	a := newTestAnalyzer()

	quiz := "Pop quiz!\n\nWhat is 2+2?\n- 3\n- 4\n"
	got := a.Analyze(quiz, "n.md").Form
	assert.True(t, got.IsQuizLikely)
	assert.Equal(t, "quiz", got.FormType)

	survey := "Customer survey\n\nRate us from 1 to 5\n"
	got = a.Analyze(survey, "n.md").Form
	assert.True(t, got.IsSurveyLikely)
	assert.Equal(t, "survey", got.FormType)

	correct := "Which is red?\n- [x] apple\n- [ ] sky\n"
	got = a.Analyze(correct, "n.md").Form
	assert.True(t, got.IsQuizLikely)
	assert.Equal(t, "quiz", got.FormType)

	registration := "Sign up for the workshop\n\nWhat is your name?\n"
	assert.Equal(t, "registration", a.Analyze(registration, "n.md").Form.FormType)

	plain := "What is your name?\n"
	assert.Equal(t, "general", a.Analyze(plain, "n.md").Form.FormType)
}

func TestAnalysisQuestions(t *testing.T) {
	a := newTestAnalyzer()
	got := a.Analyze("What is 2+2?\n- 3\n- 4\n- 5\n", "n.md").Form
	require.Len(t, got.Questions, 1)
	assert.Equal(t, types.QuestionMultipleChoice, got.Questions[0].Type)
}
