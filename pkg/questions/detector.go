// Package questions heuristically finds quiz and survey style
// questions, their options, and correct answers in Markdown text.
package questions

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/mdforge/mdforge/pkg/config"
	"github.com/mdforge/mdforge/pkg/types"
)

var (
	listPrefixRegex = regexp.MustCompile(`^(?:[-*+]\s+|\d+\.\s+|#{1,6}\s+)`)

	letteredOptionRegex = regexp.MustCompile(`^\s*([a-eA-E])[.)]\s+(.+)$`)
	checkboxOptionRegex = regexp.MustCompile(`^\s*[-*]\s*\[([ xX])\]\s*(.+)$`)
	bulletOptionRegex   = regexp.MustCompile(`^\s*[-*]\s+(.+)$`)

	pointsRegex = regexp.MustCompile(`\((\d+)\s*(?:points?|pts?|puntos?)\)`)

	digitRegex = regexp.MustCompile(`\d`)

	checkmarkRegex = regexp.MustCompile(`[✓✔]`)
)

// Detector runs the question heuristics with a given keyword table.
// A Detector is stateless after construction and safe for concurrent
// use.
type Detector struct {
	cfg            *config.AnalyzerConfig
	prefixRegex    *regexp.Regexp
	imperativeSet  []string
	ratingSet      []string
	correctRegexps []*regexp.Regexp
}

// NewDetector builds a Detector from the given configuration, falling
// back to the defaults when cfg is nil.
func NewDetector(cfg *config.AnalyzerConfig) *Detector {
	if cfg == nil {
		cfg = config.DefaultAnalyzerConfig()
	}

	alts := make([]string, 0, len(cfg.Keywords.QuestionPrefixes))
	for _, p := range cfg.Keywords.QuestionPrefixes {
		alts = append(alts, regexp.QuoteMeta(p))
	}
	prefix := regexp.MustCompile(fmt.Sprintf(`(?i)^\s*(?:%s)\s*\d*\s*[:.)]\s*(.+)$`, strings.Join(alts, "|")))

	// per-keyword case-insensitive patterns locate the keyword in the
	// original line; lower-casing a copy can change byte offsets
	correct := make([]*regexp.Regexp, 0, len(cfg.Keywords.CorrectKeywords))
	for _, kw := range cfg.Keywords.CorrectKeywords {
		correct = append(correct, regexp.MustCompile(`(?i)`+regexp.QuoteMeta(kw)))
	}

	return &Detector{
		cfg:            cfg,
		prefixRegex:    prefix,
		imperativeSet:  lowerAll(cfg.Keywords.Imperatives),
		ratingSet:      lowerAll(cfg.Keywords.RatingKeywords),
		correctRegexps: correct,
	}
}

// DetectQuestions is a convenience wrapper using the default keyword
// tables.
func DetectQuestions(text string) []types.DetectedQuestion {
	return NewDetector(nil).Detect(text)
}

// Detect runs four pattern passes over every line, in fixed precedence:
//
//  1. lines ending in "?" (length > 5) become multiple_choice/dropdown/
//     short_answer depending on options found in the following window
//  2. "Q:"/"Question N:" prefixed lines that do NOT end in "?"; the
//     guard means such lines ending in "?" are classified only by pass 1
//  3. rating/scale keyword plus a digit becomes a scale question
//  4. imperative openers ("describe", "explain") become paragraph
//     questions, the only type defaulting to not required
//
// A line may produce several candidates; deduplication by lower-cased
// question text keeps the first occurrence's full record.
func (d *Detector) Detect(text string) []types.DetectedQuestion {
	lines := strings.Split(text, "\n")

	var found []types.DetectedQuestion
	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if q, ok := d.passQuestionMark(lines, i, line); ok {
			found = append(found, q)
		}
		if q, ok := d.passPrefix(lines, i, line); ok {
			found = append(found, q)
		}
		if q, ok := d.passScale(line); ok {
			found = append(found, q)
		}
		if q, ok := d.passImperative(line); ok {
			found = append(found, q)
		}
	}

	return dedupe(found)
}

// passQuestionMark handles lines that end with "?" and are longer than
// five characters.
func (d *Detector) passQuestionMark(lines []string, i int, line string) (types.DetectedQuestion, bool) {
	if !strings.HasSuffix(line, "?") || len(line) <= 5 {
		return types.DetectedQuestion{}, false
	}

	text := stripListPrefix(line)
	text, points := extractPoints(text)

	opts := d.collectOptions(lines, i+1)

	q := types.DetectedQuestion{
		Text:          text,
		Required:      true,
		Options:       opts,
		CorrectAnswer: d.detectCorrectOption(lines, i+1),
		Points:        points,
	}

	switch {
	case len(opts) >= 2 && len(opts) <= 5:
		q.Type = types.QuestionMultipleChoice
	case len(opts) > 5:
		q.Type = types.QuestionDropdown
	default:
		q.Type = types.QuestionShortAnswer
		q.Options = nil
	}

	return q, true
}

// passPrefix handles explicit "Q:"/"Question N:" markers. Lines that
// also end in "?" are left to pass 1. No correct-answer detection runs
// on this path.
func (d *Detector) passPrefix(lines []string, i int, line string) (types.DetectedQuestion, bool) {
	if strings.HasSuffix(line, "?") {
		return types.DetectedQuestion{}, false
	}
	m := d.prefixRegex.FindStringSubmatch(line)
	if m == nil {
		return types.DetectedQuestion{}, false
	}

	text, points := extractPoints(strings.TrimSpace(m[1]))
	opts := d.collectOptions(lines, i+1)

	q := types.DetectedQuestion{
		Text:     text,
		Required: true,
		Points:   points,
	}
	if len(opts) >= 2 {
		q.Type = types.QuestionMultipleChoice
		q.Options = opts
	} else {
		q.Type = types.QuestionShortAnswer
	}

	return q, true
}

// passScale handles rating prompts: a rating keyword plus any digit.
func (d *Detector) passScale(line string) (types.DetectedQuestion, bool) {
	lower := strings.ToLower(line)
	if !containsAny(lower, d.ratingSet) || !digitRegex.MatchString(line) {
		return types.DetectedQuestion{}, false
	}

	text, points := extractPoints(stripListPrefix(line))
	return types.DetectedQuestion{
		Text:     text,
		Type:     types.QuestionScale,
		Required: true,
		Points:   points,
	}, true
}

// passImperative handles open prompts starting with an imperative verb.
func (d *Detector) passImperative(line string) (types.DetectedQuestion, bool) {
	stripped := stripListPrefix(line)
	lower := strings.ToLower(stripped)

	matched := false
	for _, verb := range d.imperativeSet {
		if strings.HasPrefix(lower, verb+" ") || lower == verb {
			matched = true
			break
		}
	}
	if !matched {
		return types.DetectedQuestion{}, false
	}

	text, points := extractPoints(stripped)
	return types.DetectedQuestion{
		Text:     text,
		Type:     types.QuestionParagraph,
		Required: false,
		Points:   points,
	}, true
}

// collectOptions scans up to OptionScanWindow lines from start for
// lettered options ("a)", "A."), checkbox options ("- [ ]", "- [x]"),
// or plain bullets under 80 characters; over-long bullets are skipped
// without ending the scan. Scanning stops at a blank line or a
// non-list, non-empty line once at least one option has been collected;
// before that, both are skipped. At most MaxOptions options are
// returned.
func (d *Detector) collectOptions(lines []string, start int) []string {
	var opts []string

	end := start + d.cfg.OptionScanWindow
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		line := strings.TrimSpace(lines[i])

		if line == "" {
			if len(opts) > 0 {
				break
			}
			continue
		}

		var opt string
		switch {
		case letteredOptionRegex.MatchString(line):
			opt = letteredOptionRegex.FindStringSubmatch(line)[2]
		case checkboxOptionRegex.MatchString(line):
			opt = checkboxOptionRegex.FindStringSubmatch(line)[2]
		case bulletOptionRegex.MatchString(line):
			candidate := bulletOptionRegex.FindStringSubmatch(line)[1]
			if len(candidate) >= 80 {
				// still a list line, so it never terminates the scan
				continue
			}
			opt = candidate
		}

		if opt == "" {
			if len(opts) > 0 {
				break
			}
			continue
		}

		opts = append(opts, strings.TrimSpace(opt))
		if len(opts) >= d.cfg.MaxOptions {
			break
		}
	}

	return opts
}

// detectCorrectOption scans the option window for a checked box, a
// correctness keyword, or a checkmark symbol and returns the cleaned
// answer text, or "" when absent.
func (d *Detector) detectCorrectOption(lines []string, start int) string {
	end := start + d.cfg.OptionScanWindow
	if end > len(lines) {
		end = len(lines)
	}

	for i := start; i < end; i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}

		if m := checkboxOptionRegex.FindStringSubmatch(line); m != nil {
			if m[1] == "x" || m[1] == "X" {
				return cleanAnswer(m[2])
			}
			continue
		}

		for _, re := range d.correctRegexps {
			if loc := re.FindStringIndex(line); loc != nil {
				return cleanAnswer(line[loc[1]:])
			}
		}

		if checkmarkRegex.MatchString(line) {
			cleaned := checkmarkRegex.ReplaceAllString(line, "")
			cleaned = stripListPrefix(strings.TrimSpace(cleaned))
			if answer := cleanAnswer(cleaned); answer != "" {
				return answer
			}
		}
	}

	return ""
}

func cleanAnswer(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, "*_`")
	if m := letteredOptionRegex.FindStringSubmatch(s); m != nil {
		s = m[2]
	}
	return strings.TrimSpace(s)
}

// dedupe keeps the first question seen per lower-cased text key.
func dedupe(qs []types.DetectedQuestion) []types.DetectedQuestion {
	seen := make(map[string]bool, len(qs))
	out := qs[:0:0]
	for _, q := range qs {
		key := strings.ToLower(q.Text)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, q)
	}
	return out
}

func stripListPrefix(line string) string {
	return strings.TrimSpace(listPrefixRegex.ReplaceAllString(line, ""))
}

// extractPoints pulls an optional "(N points)" annotation off the text.
func extractPoints(text string) (string, int) {
	m := pointsRegex.FindStringSubmatch(text)
	if m == nil {
		return strings.TrimSpace(text), 0
	}
	points, err := strconv.Atoi(m[1])
	if err != nil {
		return strings.TrimSpace(text), 0
	}
	cleaned := strings.TrimSpace(pointsRegex.ReplaceAllString(text, ""))
	return cleaned, points
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}
