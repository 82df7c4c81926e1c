package convert

import (
	"fmt"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

// FormConverter implements interfaces.FormConverter.
type FormConverter struct{}

// NewFormConverter creates a form converter.
func NewFormConverter() *FormConverter {
	return &FormConverter{}
}

// questionTypeLabels maps the external question taxonomy to the human
// labels shown in rendered Markdown.
var questionTypeLabels = map[types.FormQuestionType]string{
	types.FormRadio:       "Multiple choice",
	types.FormCheckbox:    "Checkboxes",
	types.FormDropdown:    "Dropdown",
	types.FormShortAnswer: "Short answer",
	types.FormParagraph:   "Paragraph",
	types.FormScale:       "Linear scale",
}

// detectedToFormType translates detected question types into the
// external taxonomy. This is a fixed translation table, not free-form.
var detectedToFormType = map[types.QuestionType]types.FormQuestionType{
	types.QuestionMultipleChoice: types.FormRadio,
	types.QuestionCheckbox:       types.FormCheckbox,
	types.QuestionDropdown:       types.FormDropdown,
	types.QuestionShortAnswer:    types.FormShortAnswer,
	types.QuestionParagraph:      types.FormParagraph,
	types.QuestionScale:          types.FormScale,
}

// MapQuestionType translates a detected question type into the external
// form taxonomy, defaulting to short answer for unknown tags.
func MapQuestionType(t types.QuestionType) types.FormQuestionType {
	if mapped, ok := detectedToFormType[t]; ok {
		return mapped
	}
	return types.FormShortAnswer
}

// QuestionTypeLabel returns the human label for an external question
// type.
func QuestionTypeLabel(t types.FormQuestionType) string {
	if label, ok := questionTypeLabels[t]; ok {
		return label
	}
	return string(t)
}

// ToMarkdown renders a form as one "###"-level block per item in form
// order. Question items show a required badge, the human label for
// their type, and option lines; grouped items list each sub-question's
// type only; text, page-break, image and video items each have their
// own rendering.
func (c *FormConverter) ToMarkdown(f *types.Form) string {
	var sb strings.Builder

	sb.WriteString("# " + f.Title + "\n")
	if f.Description != "" {
		sb.WriteString("\n" + f.Description + "\n")
	}

	for i, item := range f.Items {
		sb.WriteString(fmt.Sprintf("\n### %d. %s\n", i+1, item.Title))

		switch item.Kind {
		case types.ItemQuestion:
			c.writeQuestion(&sb, item.Question)
		case types.ItemGroup:
			for _, row := range item.Rows {
				sb.WriteString(fmt.Sprintf("- %s (%s)\n", row.Title, QuestionTypeLabel(row.Question.Type)))
			}
		case types.ItemText:
			if item.Description != "" {
				sb.WriteString("\n" + item.Description + "\n")
			}
		case types.ItemPageBreak:
			sb.WriteString("\n*Page break*\n")
		case types.ItemImage:
			if item.URL != "" {
				sb.WriteString(fmt.Sprintf("\n![%s](%s)\n", item.Title, item.URL))
			}
		case types.ItemVideo:
			if item.URL != "" {
				sb.WriteString(fmt.Sprintf("\n[Video: %s](%s)\n", item.Title, item.URL))
			}
		}
	}

	return sb.String()
}

func (c *FormConverter) writeQuestion(sb *strings.Builder, q *types.FormQuestion) {
	if q == nil {
		return
	}

	badge := ""
	if q.Required {
		badge = " *(required)*"
	}
	sb.WriteString(fmt.Sprintf("\n*Type: %s*%s\n", QuestionTypeLabel(q.Type), badge))

	if q.Points > 0 {
		sb.WriteString(fmt.Sprintf("*Points: %d*\n", q.Points))
	}

	if q.Type == types.FormScale {
		low := q.LowLabel
		high := q.HighLabel
		sb.WriteString(fmt.Sprintf("\n- %d (%s) to %d (%s)\n", q.ScaleMin, low, q.ScaleMax, high))
		return
	}

	if len(q.Options) > 0 {
		sb.WriteString("\n")
		for _, opt := range q.Options {
			sb.WriteString("- " + opt + "\n")
		}
	}
}
