package convert

import (
	"strconv"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// SpreadsheetConverter implements interfaces.SpreadsheetConverter.
type SpreadsheetConverter struct{}

// NewSpreadsheetConverter creates a spreadsheet converter.
func NewSpreadsheetConverter() *SpreadsheetConverter {
	return &SpreadsheetConverter{}
}

// ToMarkdown renders each sheet's grid as one pipe table. Sheets get a
// heading with their name when the spreadsheet has more than one.
// Missing cells render as empty strings; pipes are escaped.
func (c *SpreadsheetConverter) ToMarkdown(ss *types.Spreadsheet) string {
	var sb strings.Builder

	multi := len(ss.Sheets) > 1
	for i, sheet := range ss.Sheets {
		if multi {
			if i > 0 {
				sb.WriteString("\n")
			}
			sb.WriteString("## " + sheet.Title + "\n\n")
		}

		grid := make([][]string, len(sheet.Rows))
		for r, row := range sheet.Rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = cellString(cell)
			}
			grid[r] = cells
		}
		sb.WriteString(ArrayToMarkdownTable(grid))
	}

	return sb.String()
}

// cellString resolves a cell's display text: formattedValue first, then
// effectiveValue, then userEnteredValue; within a typed value, string
// beats number beats boolean (rendered TRUE/FALSE).
func cellString(cell types.Cell) string {
	if cell.FormattedValue != "" {
		return cell.FormattedValue
	}
	if s := cellValueString(cell.EffectiveValue); s != "" {
		return s
	}
	return cellValueString(cell.UserEnteredValue)
}

func cellValueString(v *types.CellValue) string {
	if v == nil {
		return ""
	}
	if v.StringValue != nil {
		return *v.StringValue
	}
	if v.NumberValue != nil {
		return strconv.FormatFloat(*v.NumberValue, 'f', -1, 64)
	}
	if v.BoolValue != nil {
		if *v.BoolValue {
			return "TRUE"
		}
		return "FALSE"
	}
	return ""
}

// ArrayToMarkdownTable renders a 2-D grid as a pipe table with a
// separator row after the first row. Rows render against the grid's
// widest row; short rows pad with empty cells.
func ArrayToMarkdownTable(grid [][]string) string {
	return tableToMarkdown(grid)
}

// MarkdownTableToArray re-ingests the first pipe table found in
// locally edited Markdown back into a 2-D grid, skipping separator rows
// and unescaping "\|".
func (c *SpreadsheetConverter) MarkdownTableToArray(markdown string) [][]string {
	tables := ExtractMarkdownTables(markdown)
	if len(tables) == 0 {
		return nil
	}
	return tables[0]
}

// ExtractMarkdownTables returns every pipe table in the text as a 2-D
// grid, header row included, separator rows skipped, "\|" unescaped.
func ExtractMarkdownTables(markdown string) [][][]string {
	var tables [][][]string
	var current [][]string

	flush := func() {
		if len(current) > 0 {
			tables = append(tables, current)
			current = nil
		}
	}

	for _, line := range strings.Split(markdown, "\n") {
		trimmed := strings.TrimSpace(line)
		if isGridRow(trimmed) {
			if isGridSeparator(trimmed) {
				continue
			}
			current = append(current, splitGridRow(trimmed))
			continue
		}
		flush()
	}
	flush()

	return tables
}

func isGridRow(trimmed string) bool {
	return len(trimmed) > 1 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

func isGridSeparator(trimmed string) bool {
	sawDash := false
	for _, r := range trimmed {
		switch r {
		case '|', ':', ' ', '\t':
		case '-':
			sawDash = true
		default:
			return false
		}
	}
	return sawDash
}

// splitGridRow splits a table row on unescaped pipes and unescapes
// "\|" inside cells.
func splitGridRow(trimmed string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "|"), "|")

	var cells []string
	var cell strings.Builder
	escaped := false
	for _, r := range inner {
		switch {
		case escaped:
			if r != '|' {
				cell.WriteRune('\\')
			}
			cell.WriteRune(r)
			escaped = false
		case r == '\\':
			escaped = true
		case r == '|':
			cells = append(cells, strings.TrimSpace(cell.String()))
			cell.Reset()
		default:
			cell.WriteRune(r)
		}
	}
	if escaped {
		cell.WriteRune('\\')
	}
	cells = append(cells, strings.TrimSpace(cell.String()))

	return cells
}

// escapePipes escapes literal pipes so cell text survives a pipe-table
// round trip.
func escapePipes(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
