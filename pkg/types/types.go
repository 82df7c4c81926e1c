// Package types provides core data structures for mdforge
package types

// ErrorType represents broad categories of errors
type ErrorType string

const (
	// ErrorTypeValidation for input validation failures
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfig for configuration loading failures
	ErrorTypeConfig ErrorType = "config"

	// ErrorTypeInternal for unexpected internal failures
	ErrorTypeInternal ErrorType = "internal"

	// ErrorTypeExternal for failures in wrapped third-party engines
	ErrorTypeExternal ErrorType = "external"
)

// StructuredTable is a pipe table lifted out of Markdown text.
// Headers is the authoritative column count; data rows may carry fewer
// cells and are never padded by the extractor.
type StructuredTable struct {
	// Headers contains the cells of the first non-separator row
	Headers []string `json:"headers"`

	// Rows contains the data rows in document order
	Rows [][]string `json:"rows"`

	// Position is the zero-based line index where the table starts
	Position int `json:"position"`
}

// StructuredList is a contiguous run of bullet or numbered list items.
type StructuredList struct {
	// Title is the nearest preceding non-blank line, if any, with
	// heading markers and a trailing colon stripped
	Title string `json:"title,omitempty"`

	// Items contains the item texts in document order
	Items []string `json:"items"`

	// Ordered marks a numbered-list origin
	Ordered bool `json:"ordered"`
}

// NumericDatum is a labelled numeric value found on a single line.
type NumericDatum struct {
	// Label is the trimmed text before the separator (1-49 chars)
	Label string `json:"label"`

	// Value is the parsed numeric portion
	Value float64 `json:"value"`
}

// Heading is a Markdown ATX heading.
type Heading struct {
	// Level is the heading depth, 1-6
	Level int `json:"level"`

	// Text is the trimmed heading text
	Text string `json:"text"`
}

// Section is a span of body text delimited by level 1-3 headings.
// An empty Heading means content appearing before any such heading.
type Section struct {
	// Heading is the heading text opening the section, possibly empty
	Heading string `json:"heading"`

	// Content is the raw body text up to the next level 1-3 heading
	Content string `json:"content"`
}

// QuestionType classifies a detected question.
type QuestionType string

const (
	QuestionMultipleChoice QuestionType = "multiple_choice"
	QuestionCheckbox       QuestionType = "checkbox"
	QuestionShortAnswer    QuestionType = "short_answer"
	QuestionParagraph      QuestionType = "paragraph"
	QuestionScale          QuestionType = "scale"
	QuestionDropdown       QuestionType = "dropdown"
)

// DetectedQuestion is a quiz or survey question found in Markdown text.
// Identity for deduplication is the lower-cased question text; the first
// occurrence wins and keeps its full record.
type DetectedQuestion struct {
	// Text is the cleaned question text
	Text string `json:"text"`

	// Type is the classified question type
	Type QuestionType `json:"type"`

	// Options contains answer options in document order
	Options []string `json:"options,omitempty"`

	// Required marks whether an answer is expected
	Required bool `json:"required"`

	// CorrectAnswer holds the detected correct option text, if any
	CorrectAnswer string `json:"correct_answer,omitempty"`

	// Points holds an optional point value attached to the question
	Points int `json:"points,omitempty"`
}

// Analysis is the derived, read-only summary of a Markdown note, one
// sub-analysis per conversion target. Each Analysis is owned by the
// single call that produced it.
type Analysis struct {
	// Title resolved from H1, front matter, or the fallback title
	Title string `json:"title"`

	// WordCount excludes any leading front matter block
	WordCount int `json:"word_count"`

	Document     DocumentAnalysis     `json:"document"`
	Spreadsheet  SpreadsheetAnalysis  `json:"spreadsheet"`
	Presentation PresentationAnalysis `json:"presentation"`
	Form         FormAnalysis         `json:"form"`
}

// DocumentAnalysis summarizes the note for rich-text document conversion.
type DocumentAnalysis struct {
	// ContentType is one of general, article, report, letter, notes
	ContentType string `json:"content_type"`

	// HeadingCount is the number of ATX headings
	HeadingCount int `json:"heading_count"`

	// ParagraphCount is the number of blank-line delimited text blocks
	ParagraphCount int `json:"paragraph_count"`

	// EstimatedPages is ceil(words/250), minimum 1
	EstimatedPages int `json:"estimated_pages"`
}

// SpreadsheetAnalysis summarizes tabular and numeric content.
type SpreadsheetAnalysis struct {
	// Tables are the extracted pipe tables
	Tables []StructuredTable `json:"tables"`

	// NumericData are the extracted label/value pairs
	NumericData []NumericDatum `json:"numeric_data"`

	// ChartSuggestion is one of none, pie, bar
	ChartSuggestion string `json:"chart_suggestion"`
}

// SlideOutline is a proposed slide derived from one document section.
type SlideOutline struct {
	// Title is the slide title
	Title string `json:"title"`

	// Bullets are up to six body bullet texts
	Bullets []string `json:"bullets,omitempty"`

	// Layout tags the proposed slide layout
	Layout string `json:"layout"`
}

// PresentationAnalysis summarizes the note as a slide outline.
type PresentationAnalysis struct {
	// Slides always starts with a title slide
	Slides []SlideOutline `json:"slides"`

	// EstimatedDuration is ceil(slides * 1.5) minutes, minimum 1
	EstimatedDuration int `json:"estimated_duration"`

	// Theme is academic or professional
	Theme string `json:"theme"`
}

// FormAnalysis summarizes the note as quiz/survey material.
type FormAnalysis struct {
	// Questions are the detected questions after deduplication
	Questions []DetectedQuestion `json:"questions"`

	// FormType is one of quiz, survey, feedback, registration, general
	FormType string `json:"form_type"`

	IsQuizLikely   bool `json:"is_quiz_likely"`
	IsSurveyLikely bool `json:"is_survey_likely"`
}

// ParagraphStyle names a document paragraph style.
type ParagraphStyle string

const (
	StyleNormalText ParagraphStyle = "NORMAL_TEXT"
	StyleTitle      ParagraphStyle = "TITLE"
	StyleSubtitle   ParagraphStyle = "SUBTITLE"
	StyleHeading1   ParagraphStyle = "HEADING_1"
	StyleHeading2   ParagraphStyle = "HEADING_2"
	StyleHeading3   ParagraphStyle = "HEADING_3"
	StyleHeading4   ParagraphStyle = "HEADING_4"
	StyleHeading5   ParagraphStyle = "HEADING_5"
	StyleHeading6   ParagraphStyle = "HEADING_6"
)

// TextRun is a contiguous span of paragraph text sharing one style.
type TextRun struct {
	Text          string `json:"text"`
	Bold          bool   `json:"bold,omitempty"`
	Italic        bool   `json:"italic,omitempty"`
	Strikethrough bool   `json:"strikethrough,omitempty"`

	// LinkURL makes the run a hyperlink when non-empty
	LinkURL string `json:"link_url,omitempty"`
}

// ParagraphBlock is a styled paragraph composed of runs.
type ParagraphBlock struct {
	Style ParagraphStyle `json:"style"`
	Runs  []TextRun      `json:"runs"`
}

// TableBlock is an embedded document table.
type TableBlock struct {
	Rows [][]string `json:"rows"`
}

// DocumentBlock is one ordered content block of a document. Exactly one
// of the pointer fields is set.
type DocumentBlock struct {
	Paragraph *ParagraphBlock `json:"paragraph,omitempty"`
	Table     *TableBlock     `json:"table,omitempty"`
}

// Document is the structured rich-text document model.
type Document struct {
	Title  string          `json:"title"`
	Blocks []DocumentBlock `json:"blocks"`
}

// CellValue mirrors the remote API's typed cell value union.
type CellValue struct {
	StringValue *string  `json:"string_value,omitempty"`
	NumberValue *float64 `json:"number_value,omitempty"`
	BoolValue   *bool    `json:"bool_value,omitempty"`
}

// Cell is one spreadsheet grid cell. Resolution preference when
// rendering is FormattedValue, then EffectiveValue, then
// UserEnteredValue.
type Cell struct {
	FormattedValue   string     `json:"formatted_value,omitempty"`
	EffectiveValue   *CellValue `json:"effective_value,omitempty"`
	UserEnteredValue *CellValue `json:"user_entered_value,omitempty"`
}

// Sheet is one named row/column grid.
type Sheet struct {
	Title string   `json:"title"`
	Rows  [][]Cell `json:"rows"`
}

// Spreadsheet is the structured spreadsheet model.
type Spreadsheet struct {
	Title  string  `json:"title"`
	Sheets []Sheet `json:"sheets"`
}

// ElementKind classifies a slide page element.
type ElementKind string

const (
	ElementText  ElementKind = "text"
	ElementTable ElementKind = "table"
	ElementImage ElementKind = "image"
)

// PageElement is one element on a slide. The first text element with
// non-empty text is treated as the slide title.
type PageElement struct {
	Kind ElementKind `json:"kind"`

	// Text holds the element text for text elements
	Text string `json:"text,omitempty"`

	// Table holds cell text for table elements
	Table [][]string `json:"table,omitempty"`

	// ContentURL and SourceURL locate image elements
	ContentURL string `json:"content_url,omitempty"`
	SourceURL  string `json:"source_url,omitempty"`

	// AltText is the image description
	AltText string `json:"alt_text,omitempty"`
}

// Slide is one structured presentation page.
type Slide struct {
	Elements     []PageElement `json:"elements"`
	SpeakerNotes string        `json:"speaker_notes,omitempty"`
	Layout       string        `json:"layout,omitempty"`
}

// Presentation is the structured presentation model.
type Presentation struct {
	Title  string  `json:"title"`
	Slides []Slide `json:"slides"`
}

// SlideContent is the Markdown-side slide model: a title plus body
// lines, each either a plain bullet or a pipe-delimited table row
// literal.
type SlideContent struct {
	Title string   `json:"title"`
	Body  []string `json:"body"`

	// Notes holds speaker notes carried alongside the body
	Notes string `json:"notes,omitempty"`

	// Layout tags the slide layout
	Layout string `json:"layout,omitempty"`
}

// FormQuestionType is the external form question taxonomy.
type FormQuestionType string

const (
	FormRadio       FormQuestionType = "RADIO"
	FormCheckbox    FormQuestionType = "CHECKBOX"
	FormDropdown    FormQuestionType = "DROP_DOWN"
	FormShortAnswer FormQuestionType = "SHORT_ANSWER"
	FormParagraph   FormQuestionType = "PARAGRAPH"
	FormScale       FormQuestionType = "SCALE"
)

// FormQuestion is one question in the external taxonomy.
type FormQuestion struct {
	Type     FormQuestionType `json:"type"`
	Options  []string         `json:"options,omitempty"`
	Required bool             `json:"required"`

	// Points is the quiz point value, when graded
	Points int `json:"points,omitempty"`

	// Scale bounds and labels, for SCALE questions
	ScaleMin  int    `json:"scale_min,omitempty"`
	ScaleMax  int    `json:"scale_max,omitempty"`
	LowLabel  string `json:"low_label,omitempty"`
	HighLabel string `json:"high_label,omitempty"`
}

// ItemKind classifies a form item.
type ItemKind string

const (
	ItemQuestion  ItemKind = "question"
	ItemGroup     ItemKind = "question_group"
	ItemText      ItemKind = "text"
	ItemPageBreak ItemKind = "page_break"
	ItemImage     ItemKind = "image"
	ItemVideo     ItemKind = "video"
)

// GroupRow is one sub-question of a grouped/grid item.
type GroupRow struct {
	Title    string       `json:"title"`
	Question FormQuestion `json:"question"`
}

// FormItem is one ordered item of a form.
type FormItem struct {
	// ID is the remote item identifier, used to key responses
	ID string `json:"id"`

	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Kind        ItemKind `json:"kind"`

	// Question is set for question items
	Question *FormQuestion `json:"question,omitempty"`

	// Rows are set for grouped/grid items
	Rows []GroupRow `json:"rows,omitempty"`

	// URL locates image and video items
	URL string `json:"url,omitempty"`
}

// Form is the structured form model.
type Form struct {
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Items       []FormItem `json:"items"`
}

// FormResponse is one submitted response, answers keyed by item ID.
type FormResponse struct {
	Timestamp string              `json:"timestamp"`
	Answers   map[string][]string `json:"answers"`
}

// Range is a half-open character range [Start, End) into the evolving
// document, using 0-based character indices.
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// InsertTextRequest inserts text at a character index.
type InsertTextRequest struct {
	Text  string `json:"text"`
	Index int    `json:"index"`
}

// UpdateParagraphStyleRequest applies a named paragraph style to a range.
type UpdateParagraphStyleRequest struct {
	Style ParagraphStyle `json:"style"`
	Range Range          `json:"range"`
}

// UpdateTextStyleRequest applies run styling to a range.
type UpdateTextStyleRequest struct {
	Bold   bool  `json:"bold,omitempty"`
	Italic bool  `json:"italic,omitempty"`
	Range  Range `json:"range"`
}

// CreateBulletsRequest turns the paragraphs in a range into list items.
type CreateBulletsRequest struct {
	Range Range `json:"range"`

	// Ordered selects a numbered list preset
	Ordered bool `json:"ordered,omitempty"`
}

// Request is one edit operation for a batch-update style API. Exactly
// one field is set.
type Request struct {
	InsertText           *InsertTextRequest           `json:"insert_text,omitempty"`
	UpdateParagraphStyle *UpdateParagraphStyleRequest `json:"update_paragraph_style,omitempty"`
	UpdateTextStyle      *UpdateTextStyleRequest      `json:"update_text_style,omitempty"`
	CreateBullets        *CreateBulletsRequest        `json:"create_bullets,omitempty"`
}
