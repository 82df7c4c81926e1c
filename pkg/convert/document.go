// Package convert maps between structured document models (documents,
// spreadsheets, presentations, forms) and Markdown text. Converters
// never validate their input's internal consistency: short rows,
// missing cells and empty elements are rendered best-effort, not
// rejected.
package convert

import (
	"fmt"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// DocumentConverter implements interfaces.DocumentConverter.
type DocumentConverter struct{}

// NewDocumentConverter creates a document converter.
func NewDocumentConverter() *DocumentConverter {
	return &DocumentConverter{}
}

var headingPrefixes = map[types.ParagraphStyle]string{
	types.StyleTitle:    "# ",
	types.StyleHeading1: "# ",
	types.StyleHeading2: "## ",
	types.StyleHeading3: "### ",
	types.StyleHeading4: "#### ",
	types.StyleHeading5: "##### ",
	types.StyleHeading6: "###### ",
}

// ToMarkdown walks the document's ordered blocks. Paragraph styles map
// to heading markers (TITLE shares "#", SUBTITLE renders italic); run
// styles wrap each run individually so mixed styled/unstyled runs keep
// their boundaries. Tables render as pipe tables with a synthesized
// separator row after the first row.
func (c *DocumentConverter) ToMarkdown(doc *types.Document) string {
	var sb strings.Builder

	for _, block := range doc.Blocks {
		switch {
		case block.Paragraph != nil:
			sb.WriteString(paragraphToMarkdown(block.Paragraph))
			sb.WriteString("\n")
		case block.Table != nil:
			sb.WriteString(tableToMarkdown(block.Table.Rows))
		}
	}

	return sb.String()
}

func paragraphToMarkdown(p *types.ParagraphBlock) string {
	var sb strings.Builder
	for _, run := range p.Runs {
		sb.WriteString(runToMarkdown(run))
	}
	text := sb.String()

	if prefix, ok := headingPrefixes[p.Style]; ok {
		return prefix + text
	}
	if p.Style == types.StyleSubtitle {
		if text == "" {
			return text
		}
		return "*" + text + "*"
	}
	return text
}

// runToMarkdown wraps one run's text in the Markdown syntax for its
// styles. Links wrap innermost so styling applies to the whole link.
func runToMarkdown(run types.TextRun) string {
	text := run.Text
	if text == "" {
		return ""
	}
	if run.LinkURL != "" {
		text = fmt.Sprintf("[%s](%s)", text, run.LinkURL)
	}
	if run.Strikethrough {
		text = "~~" + text + "~~"
	}
	if run.Italic {
		text = "*" + text + "*"
	}
	if run.Bold {
		text = "**" + text + "**"
	}
	return text
}

// tableToMarkdown renders rows as a pipe table. The separator row is
// synthesized after the first row regardless of source formatting, and
// missing trailing cells render empty against the grid's widest row.
func tableToMarkdown(rows [][]string) string {
	if len(rows) == 0 {
		return ""
	}

	width := len(rows[0])
	for _, row := range rows[1:] {
		if len(row) > width {
			width = len(row)
		}
	}
	if width == 0 {
		return ""
	}

	var sb strings.Builder
	writeRow := func(row []string) {
		sb.WriteString("|")
		for i := 0; i < width; i++ {
			cell := ""
			if i < len(row) {
				cell = escapePipes(row[i])
			}
			sb.WriteString(" " + cell + " |")
		}
		sb.WriteString("\n")
	}

	writeRow(rows[0])
	sb.WriteString("|")
	for i := 0; i < width; i++ {
		sb.WriteString(" --- |")
	}
	sb.WriteString("\n")
	for _, row := range rows[1:] {
		writeRow(row)
	}

	return sb.String()
}
