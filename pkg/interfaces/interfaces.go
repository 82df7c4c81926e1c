// Package interfaces defines the core contracts for mdforge
package interfaces

import (
	"github.com/mdforge/mdforge/pkg/types"
)

// Logger defines the logging interface
type Logger interface {
	// Debug logs debug level messages
	Debug(msg string, fields ...map[string]interface{})

	// Info logs info level messages
	Info(msg string, fields ...map[string]interface{})

	// Warn logs warning level messages
	Warn(msg string, fields ...map[string]interface{})

	// Error logs error level messages
	Error(msg string, err error, fields ...map[string]interface{})

	// WithFields returns a logger with additional fields
	WithFields(fields map[string]interface{}) Logger
}

// ContentAnalyzer derives per-target analyses from Markdown text.
// Implementations must be pure: no I/O, no shared mutable state, safe
// for concurrent use across documents.
type ContentAnalyzer interface {
	// Analyze produces a fresh Analysis for the given Markdown text,
	// falling back to fallbackTitle when the text carries no title
	Analyze(text, fallbackTitle string) *types.Analysis
}

// DocumentConverter maps between the rich-text document model and
// Markdown, including the edit-request reverse direction.
type DocumentConverter interface {
	ToMarkdown(doc *types.Document) string
	MarkdownToRequests(markdown string) []types.Request
}

// SpreadsheetConverter maps between the sheet grid model and Markdown.
type SpreadsheetConverter interface {
	ToMarkdown(ss *types.Spreadsheet) string
	MarkdownTableToArray(markdown string) [][]string
}

// PresentationConverter maps between the slide model and Markdown.
type PresentationConverter interface {
	ToMarkdown(p *types.Presentation) string
	ParseMarkdownToSlides(markdown string) []types.SlideContent
}

// FormConverter renders the form model, its responses, and a response
// summary as Markdown.
type FormConverter interface {
	ToMarkdown(f *types.Form) string
	ResponsesToMarkdown(f *types.Form, responses []types.FormResponse) string
	SummaryToMarkdown(f *types.Form, responses []types.FormResponse) string
}

// MarkdownRenderer renders Markdown into HTML for previews.
type MarkdownRenderer interface {
	Render(markdown []byte) ([]byte, error)
}
