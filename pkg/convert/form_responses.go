package convert

import (
	"fmt"
	"math"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// maxVerbatimAnswers is how many unique free-text answers a summary
// lists before collapsing to the first two plus an overflow count.
const maxVerbatimAnswers = 5

// ResponsesToMarkdown builds a table of raw responses keyed by
// timestamp, one column per question item in form order. Multi-valued
// answers join with ", "; pipes and newlines are escaped so every
// answer stays one table cell.
func (c *FormConverter) ResponsesToMarkdown(f *types.Form, responses []types.FormResponse) string {
	var sb strings.Builder

	sb.WriteString("# " + f.Title + " Responses\n\n")

	items := questionItems(f)
	header := make([]string, 0, len(items)+1)
	header = append(header, "Timestamp")
	for _, item := range items {
		header = append(header, item.Title)
	}

	grid := [][]string{header}
	for _, resp := range responses {
		row := make([]string, 0, len(items)+1)
		row = append(row, resp.Timestamp)
		for _, item := range items {
			row = append(row, cellAnswer(resp.Answers[item.ID]))
		}
		grid = append(grid, row)
	}

	sb.WriteString(tableToMarkdown(grid))
	sb.WriteString(fmt.Sprintf("\n*%d responses*\n", len(responses)))

	return sb.String()
}

// SummaryToMarkdown aggregates responses per question. Choice questions
// get per-option counts with percentages rounded to the nearest
// integer; free-text questions list up to five unique answers verbatim,
// otherwise the first two plus an overflow count.
func (c *FormConverter) SummaryToMarkdown(f *types.Form, responses []types.FormResponse) string {
	var sb strings.Builder

	sb.WriteString("# " + f.Title + " Summary\n\n")
	sb.WriteString(fmt.Sprintf("*%d responses*\n", len(responses)))

	for _, item := range questionItems(f) {
		sb.WriteString("\n### " + item.Title + "\n\n")

		answers := collectAnswers(responses, item.ID)
		if len(answers) == 0 {
			sb.WriteString("*No responses*\n")
			continue
		}

		if isChoiceQuestion(item.Question.Type) {
			writeChoiceSummary(&sb, answers)
		} else {
			writeTextSummary(&sb, answers)
		}
	}

	return sb.String()
}

// questionItems filters a form's items down to direct questions, the
// only kind that appears in response tables.
func questionItems(f *types.Form) []types.FormItem {
	var items []types.FormItem
	for _, item := range f.Items {
		if item.Kind == types.ItemQuestion && item.Question != nil {
			items = append(items, item)
		}
	}
	return items
}

func collectAnswers(responses []types.FormResponse, itemID string) []string {
	var answers []string
	for _, resp := range responses {
		answers = append(answers, resp.Answers[itemID]...)
	}
	return answers
}

func isChoiceQuestion(t types.FormQuestionType) bool {
	switch t {
	case types.FormRadio, types.FormCheckbox, types.FormDropdown, types.FormScale:
		return true
	}
	return false
}

func writeChoiceSummary(sb *strings.Builder, answers []string) {
	counts := make(map[string]int)
	var order []string
	for _, a := range answers {
		if _, seen := counts[a]; !seen {
			order = append(order, a)
		}
		counts[a]++
	}

	total := len(answers)
	for _, opt := range order {
		pct := int(math.Round(float64(counts[opt]) * 100 / float64(total)))
		sb.WriteString(fmt.Sprintf("- %s: %d (%d%%)\n", opt, counts[opt], pct))
	}
}

func writeTextSummary(sb *strings.Builder, answers []string) {
	seen := make(map[string]bool)
	var unique []string
	for _, a := range answers {
		if seen[a] {
			continue
		}
		seen[a] = true
		unique = append(unique, a)
	}

	if len(unique) <= maxVerbatimAnswers {
		for _, a := range unique {
			sb.WriteString(fmt.Sprintf("- %q\n", a))
		}
		return
	}

	for _, a := range unique[:2] {
		sb.WriteString(fmt.Sprintf("- %q\n", a))
	}
	sb.WriteString(fmt.Sprintf("- …and %d more\n", len(unique)-2))
}

// cellAnswer joins multi-valued answers and flattens newlines so the
// answer stays one table cell; pipe escaping happens during table
// rendering.
func cellAnswer(values []string) string {
	joined := strings.Join(values, ", ")
	return strings.ReplaceAll(joined, "\n", " ")
}
