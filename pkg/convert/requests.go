package convert

import (
	"regexp"
	"strings"

	"github.com/mdforge/mdforge/pkg/types"
)

var (
	requestHeadingRegex  = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	requestBulletRegex   = regexp.MustCompile(`^[-*]\s+(.+)$`)
	requestNumberedRegex = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

	// bold first so "**x**" is never consumed as two italics
	inlineSpanRegex = regexp.MustCompile(`\*\*([^*]+)\*\*|\*([^*]+)\*|_([^_]+)_`)
)

var headingStyles = map[int]types.ParagraphStyle{
	1: types.StyleHeading1,
	2: types.StyleHeading2,
	3: types.StyleHeading3,
	4: types.StyleHeading4,
	5: types.StyleHeading5,
	6: types.StyleHeading6,
}

// styleSpan is one inline style range, in characters relative to the
// cleaned line.
type styleSpan struct {
	start, end int
	bold       bool
	italic     bool
}

// insertCursor is the single running offset threaded through request
// generation. Offsets are 0-based character indices into the evolving
// document and accumulate monotonically across all lines; they never
// reset per line.
type insertCursor struct {
	index int
}

func (c *insertCursor) advance(chars int) {
	c.index += chars
}

// MarkdownToRequests walks Markdown lines and emits edit operations for
// a batch-update style API: text insertions, named paragraph styles for
// headings, bullet creation for list markers, and bold/italic run
// styles located by their marker spans.
func (c *DocumentConverter) MarkdownToRequests(markdown string) []types.Request {
	var reqs []types.Request
	cur := &insertCursor{}

	for _, line := range strings.Split(markdown, "\n") {
		reqs = appendLineRequests(reqs, line, cur)
	}

	return reqs
}

func appendLineRequests(reqs []types.Request, line string, cur *insertCursor) []types.Request {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		reqs = append(reqs, types.Request{
			InsertText: &types.InsertTextRequest{Text: "\n", Index: cur.index},
		})
		cur.advance(1)
		return reqs
	}

	var style types.ParagraphStyle
	content := trimmed
	bullet := false
	ordered := false

	switch {
	case requestHeadingRegex.MatchString(trimmed):
		m := requestHeadingRegex.FindStringSubmatch(trimmed)
		style = headingStyles[len(m[1])]
		content = m[2]
	case requestBulletRegex.MatchString(trimmed):
		content = requestBulletRegex.FindStringSubmatch(trimmed)[1]
		bullet = true
	case requestNumberedRegex.MatchString(trimmed):
		content = requestNumberedRegex.FindStringSubmatch(trimmed)[2]
		bullet = true
		ordered = true
	}

	clean, spans := parseInlineSpans(content)
	length := len([]rune(clean))
	start := cur.index

	reqs = append(reqs, types.Request{
		InsertText: &types.InsertTextRequest{Text: clean + "\n", Index: start},
	})

	if style != "" {
		reqs = append(reqs, types.Request{
			UpdateParagraphStyle: &types.UpdateParagraphStyleRequest{
				Style: style,
				Range: types.Range{Start: start, End: start + length},
			},
		})
	}

	if bullet {
		reqs = append(reqs, types.Request{
			CreateBullets: &types.CreateBulletsRequest{
				Range:   types.Range{Start: start, End: start + length},
				Ordered: ordered,
			},
		})
	}

	for _, span := range spans {
		reqs = append(reqs, types.Request{
			UpdateTextStyle: &types.UpdateTextStyleRequest{
				Bold:   span.bold,
				Italic: span.italic,
				Range:  types.Range{Start: start + span.start, End: start + span.end},
			},
		})
	}

	cur.advance(length + 1)
	return reqs
}

// parseInlineSpans strips "**bold**", "*italic*" and "_italic_" markers
// from a line, returning the cleaned text and the style spans in
// character offsets relative to it.
func parseInlineSpans(line string) (string, []styleSpan) {
	matches := inlineSpanRegex.FindAllStringSubmatchIndex(line, -1)
	if matches == nil {
		return line, nil
	}

	var clean strings.Builder
	var spans []styleSpan
	cleanLen := 0
	last := 0

	for _, m := range matches {
		literal := line[last:m[0]]
		clean.WriteString(literal)
		cleanLen += len([]rune(literal))

		var inner string
		span := styleSpan{start: cleanLen}
		switch {
		case m[2] >= 0:
			inner = line[m[2]:m[3]]
			span.bold = true
		case m[4] >= 0:
			inner = line[m[4]:m[5]]
			span.italic = true
		default:
			inner = line[m[6]:m[7]]
			span.italic = true
		}

		clean.WriteString(inner)
		cleanLen += len([]rune(inner))
		span.end = cleanLen
		spans = append(spans, span)

		last = m[1]
	}

	tail := line[last:]
	clean.WriteString(tail)

	return clean.String(), spans
}
