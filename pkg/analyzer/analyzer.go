// Package analyzer derives per-target conversion proposals from
// free-form Markdown text. One Analyze call produces one fresh,
// read-only Analysis; the analyzer itself holds no state between calls
// and is safe for concurrent use across documents.
package analyzer

import (
	"math"
	"regexp"
	"strings"

	"github.com/adrg/frontmatter"

	"github.com/mdforge/mdforge/pkg/config"
	"github.com/mdforge/mdforge/pkg/extract"
	"github.com/mdforge/mdforge/pkg/interfaces"
	"github.com/mdforge/mdforge/pkg/logger"
	"github.com/mdforge/mdforge/pkg/questions"
	"github.com/mdforge/mdforge/pkg/types"
)

var (
	h1Regex          = regexp.MustCompile(`(?m)^#\s+(.+)$`)
	titleLineRegex   = regexp.MustCompile(`(?m)^title:\s*(.+)$`)
	fileSuffixRegex  = regexp.MustCompile(`\.(md|markdown|txt)$`)
	frontMatterRegex = regexp.MustCompile(`(?s)^---\s*\n.*?\n---\s*\n?`)
	blankBlockRegex  = regexp.MustCompile(`\n\s*\n`)
	bulletLineRegex  = regexp.MustCompile(`^\s*(?:[-*+]|\d+\.)\s+(.+)$`)

	// sentence boundaries for the pseudo-bullet fallback
	sentenceBoundaryRegex = regexp.MustCompile(`[.!?]+\s+`)
)

// Analyzer implements interfaces.ContentAnalyzer.
type Analyzer struct {
	cfg      *config.AnalyzerConfig
	detector *questions.Detector
	log      interfaces.Logger
}

// New creates an Analyzer. A nil cfg selects the defaults; a nil log
// selects the standard console logger.
func New(cfg *config.AnalyzerConfig, log interfaces.Logger) *Analyzer {
	if cfg == nil {
		cfg = config.DefaultAnalyzerConfig()
	}
	if log == nil {
		log = logger.NewLogger()
	}
	return &Analyzer{
		cfg:      cfg,
		detector: questions.NewDetector(cfg),
		log:      log,
	}
}

// Analyze produces the four sub-analyses for the given Markdown text.
func (a *Analyzer) Analyze(text, fallbackTitle string) *types.Analysis {
	body := stripFrontMatter(text)
	title := a.resolveTitle(text, fallbackTitle)
	wordCount := len(strings.Fields(body))

	analysis := &types.Analysis{
		Title:        title,
		WordCount:    wordCount,
		Document:     a.analyzeDocument(body, wordCount),
		Spreadsheet:  a.analyzeSpreadsheet(body),
		Presentation: a.analyzePresentation(body, title),
		Form:         a.analyzeForm(body),
	}

	a.log.Debug("analyzed markdown", map[string]interface{}{
		"title":      title,
		"word_count": wordCount,
		"slides":     len(analysis.Presentation.Slides),
		"questions":  len(analysis.Form.Questions),
	})

	return analysis
}

// resolveTitle picks the first H1, else a front-matter title line with
// quotes stripped, else the fallback title without a Markdown-ish file
// suffix.
func (a *Analyzer) resolveTitle(text, fallbackTitle string) string {
	if m := h1Regex.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}

	var matter struct {
		Title string `yaml:"title"`
	}
	if _, err := frontmatter.Parse(strings.NewReader(text), &matter); err == nil && matter.Title != "" {
		return strings.TrimSpace(matter.Title)
	}

	if m := titleLineRegex.FindStringSubmatch(text); m != nil {
		return strings.Trim(strings.TrimSpace(m[1]), `"'`)
	}

	return fileSuffixRegex.ReplaceAllString(strings.TrimSpace(fallbackTitle), "")
}

// stripFrontMatter removes a leading "---...---" block. The frontmatter
// library handles well-formed blocks; the regex catches loose ones it
// rejects.
func stripFrontMatter(text string) string {
	var matter map[string]interface{}
	if rest, err := frontmatter.Parse(strings.NewReader(text), &matter); err == nil {
		return string(rest)
	}
	return frontMatterRegex.ReplaceAllString(text, "")
}

func (a *Analyzer) analyzeDocument(body string, wordCount int) types.DocumentAnalysis {
	headings := extract.ExtractHeadings(body)
	paragraphs := countParagraphs(body)

	pages := int(math.Ceil(float64(wordCount) / float64(a.cfg.WordsPerPage)))
	if pages < 1 {
		pages = 1
	}

	return types.DocumentAnalysis{
		ContentType:    a.classifyContentType(body, len(headings), paragraphs),
		HeadingCount:   len(headings),
		ParagraphCount: paragraphs,
		EstimatedPages: pages,
	}
}

// classifyContentType applies its rules strictly in order, each rule
// overwriting the previous result when its condition holds. "notes" can
// therefore overwrite "article"; this matches the long-standing
// observed behavior and is kept for output compatibility.
func (a *Analyzer) classifyContentType(body string, headingCount, paragraphCount int) string {
	opening := strings.ToLower(stripLinePrefix(firstNonEmptyLine(body)))

	contentType := "general"
	if headingCount >= 3 && paragraphCount >= 5 {
		contentType = "article"
	}
	if hasAnyPrefix(opening, a.cfg.Keywords.ReportKeywords) {
		contentType = "report"
	}
	if hasAnyPrefix(opening, a.cfg.Keywords.LetterKeywords) {
		contentType = "letter"
	}
	if headingCount <= 2 && paragraphCount <= 3 {
		contentType = "notes"
	}
	return contentType
}

// countParagraphs counts blank-line delimited blocks that carry text
// and are not headings, tables, or lists.
func countParagraphs(body string) int {
	count := 0
	for _, block := range blankBlockRegex.Split(body, -1) {
		trimmed := strings.TrimSpace(block)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "|") || strings.HasPrefix(trimmed, "-") {
			continue
		}
		count++
	}
	return count
}

func (a *Analyzer) analyzeSpreadsheet(body string) types.SpreadsheetAnalysis {
	tables := extract.ExtractTables(body)
	numeric := extract.ExtractNumericalData(body)

	chart := "none"
	if len(numeric) >= 2 {
		if len(numeric) <= 6 {
			chart = "pie"
		} else {
			chart = "bar"
		}
	}
	// a large first table always forces a bar chart
	if len(tables) > 0 && len(tables[0].Rows) > 5 {
		chart = "bar"
	}

	return types.SpreadsheetAnalysis{
		Tables:          tables,
		NumericData:     numeric,
		ChartSuggestion: chart,
	}
}

func (a *Analyzer) analyzePresentation(body, title string) types.PresentationAnalysis {
	slides := []types.SlideOutline{{Title: title, Layout: "TITLE"}}

	for _, section := range extract.SplitIntoSections(body) {
		bullets := a.sectionBullets(section.Content)
		slides = append(slides, types.SlideOutline{
			Title:   section.Heading,
			Bullets: bullets,
			Layout:  "TITLE_AND_BODY",
		})
	}

	duration := int(math.Ceil(float64(len(slides)) * 1.5))
	if duration < 1 {
		duration = 1
	}

	theme := "professional"
	opening := strings.ToLower(stripLinePrefix(firstNonEmptyLine(body)))
	if hasAnyPrefix(opening, a.cfg.Keywords.AcademicKeywords) {
		theme = "academic"
	}

	return types.PresentationAnalysis{
		Slides:            slides,
		EstimatedDuration: duration,
		Theme:             theme,
	}
}

// sectionBullets pulls up to MaxBullets explicit bullet or numbered
// lines from a section body; with none present it falls back to up to
// MaxSentenceBullets sentences of 10-119 characters.
func (a *Analyzer) sectionBullets(content string) []string {
	var bullets []string
	for _, line := range strings.Split(content, "\n") {
		m := bulletLineRegex.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		bullets = append(bullets, strings.TrimSpace(m[1]))
		if len(bullets) >= a.cfg.MaxBullets {
			break
		}
	}
	if len(bullets) > 0 {
		return bullets
	}

	for _, sentence := range splitSentences(content) {
		n := len([]rune(sentence))
		if n < 10 || n > 119 {
			continue
		}
		bullets = append(bullets, sentence)
		if len(bullets) >= a.cfg.MaxSentenceBullets {
			break
		}
	}
	return bullets
}

// splitSentences cuts text at punctuation boundaries, keeping the
// punctuation with the preceding sentence.
func splitSentences(text string) []string {
	flat := strings.Join(strings.Fields(text), " ")
	if flat == "" {
		return nil
	}

	var sentences []string
	last := 0
	for _, loc := range sentenceBoundaryRegex.FindAllStringIndex(flat, -1) {
		s := strings.TrimSpace(flat[last:loc[1]])
		if s != "" {
			sentences = append(sentences, s)
		}
		last = loc[1]
	}
	if tail := strings.TrimSpace(flat[last:]); tail != "" {
		sentences = append(sentences, tail)
	}
	return sentences
}

func (a *Analyzer) analyzeForm(body string) types.FormAnalysis {
	qs := a.detector.Detect(body)
	lower := strings.ToLower(body)

	hasAnswerKey := containsAny(lower, a.cfg.Keywords.AnswerKeyKeywords)
	hasCorrect := false
	hasScale := false
	for _, q := range qs {
		if q.CorrectAnswer != "" {
			hasCorrect = true
		}
		if q.Type == types.QuestionScale {
			hasScale = true
		}
	}

	isQuiz := hasAnswerKey || hasCorrect || containsAny(lower, a.cfg.Keywords.QuizKeywords)
	isSurvey := containsAny(lower, a.cfg.Keywords.SurveyKeywords) || hasScale

	formType := "general"
	switch {
	case isQuiz:
		formType = "quiz"
	case isSurvey:
		formType = "survey"
	case containsAny(lower, a.cfg.Keywords.FeedbackKeywords):
		formType = "feedback"
	case containsAny(lower, a.cfg.Keywords.RegistrationKeywords):
		formType = "registration"
	}

	return types.FormAnalysis{
		Questions:      qs,
		FormType:       formType,
		IsQuizLikely:   isQuiz,
		IsSurveyLikely: isSurvey,
	}
}

func firstNonEmptyLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

var linePrefixRegex = regexp.MustCompile(`^(?:#{1,6}\s+|[-*+]\s+|\d+\.\s+)`)

func stripLinePrefix(line string) string {
	return strings.TrimSpace(linePrefixRegex.ReplaceAllString(line, ""))
}

func hasAnyPrefix(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.HasPrefix(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
