// Package extract lifts structured fragments (tables, lists, numeric
// data, headings, sections) out of free-form Markdown text. All
// functions are total: malformed input yields empty results, never an
// error. Pipe-table and loose-list semantics here intentionally differ
// from CommonMark (short rows survive, separator rows are invisible),
// so the scanners work on raw lines instead of a parsed AST.
package extract

import (
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// ExtractTables scans text line by line for pipe tables. A line belongs
// to a table iff its trimmed form starts and ends with "|". Separator
// rows (only pipes, dashes, colons and whitespace) are consumed without
// becoming data and without opening or closing a table. The first
// non-separator row of a contiguous run becomes the header; data rows
// are never padded to the header width.
func ExtractTables(text string) []types.StructuredTable {
	var tables []types.StructuredTable
	var current *types.StructuredTable

	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isTableRow(trimmed) {
			if isSeparatorRow(trimmed) {
				continue
			}
			cells := splitTableRow(trimmed)
			if current == nil {
				current = &types.StructuredTable{Headers: cells, Position: i}
			} else {
				current.Rows = append(current.Rows, cells)
			}
			continue
		}

		if current != nil {
			tables = append(tables, *current)
			current = nil
		}
	}

	if current != nil {
		tables = append(tables, *current)
	}

	return tables
}

func isTableRow(trimmed string) bool {
	return len(trimmed) > 1 && strings.HasPrefix(trimmed, "|") && strings.HasSuffix(trimmed, "|")
}

// isSeparatorRow reports whether a table row contains only the
// characters of an alignment separator: pipes, dashes, colons, spaces.
func isSeparatorRow(trimmed string) bool {
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

// splitTableRow strips the outer pipes, splits on "|", and trims each
// cell. Literal pipes inside cells are not unescaped here; that belongs
// to the spreadsheet converter's re-ingestion path.
func splitTableRow(trimmed string) []string {
	inner := strings.TrimSuffix(strings.TrimPrefix(trimmed, "|"), "|")
	parts := strings.Split(inner, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = strings.TrimSpace(p)
	}
	return cells
}
